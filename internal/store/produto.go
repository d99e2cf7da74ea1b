package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/lucaseduardo5855/ABarateira/internal/notify"
)

var (
	errNomeProdutoObrigatorio = errors.New("nome do produto é obrigatório")
	errPrecoProdutoInvalido   = errors.New("preço do produto deve ser maior ou igual a zero")
	errProdutoNaoEncontrado   = errors.New("produto não encontrado")
)

// Produto is the legacy demo product; it only ever lives in memory and is
// never written to the database.
type Produto struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProdutoInput struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ProdutoStore keeps the legacy screen working against seeded sample data.
// Ids are unix-milli timestamps, bumped when two writes land in the same
// millisecond.
type ProdutoStore struct {
	mu       sync.Mutex
	produtos []Produto
	lastID   int64
	notify   notify.Notifier
}

func NewProdutoStore(n notify.Notifier) *ProdutoStore {
	seedDate := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	return &ProdutoStore{
		produtos: []Produto{
			{ID: 1, Name: "Dipirona 500mg", Price: 8.50, Quantity: 45, CreatedAt: seedDate, UpdatedAt: seedDate},
			{ID: 2, Name: "Paracetamol 750mg", Price: 12.30, Quantity: 8, CreatedAt: seedDate.AddDate(0, 0, 1), UpdatedAt: seedDate.AddDate(0, 0, 1)},
			{ID: 3, Name: "Ibuprofeno 600mg", Price: 15.80, Quantity: 22, CreatedAt: seedDate.AddDate(0, 0, 2), UpdatedAt: seedDate.AddDate(0, 0, 2)},
		},
		notify: n,
	}
}

func (s *ProdutoStore) List() []Produto {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Produto, len(s.produtos))
	copy(out, s.produtos)
	return out
}

func (s *ProdutoStore) Add(input ProdutoInput) (*Produto, error) {
	if err := input.validate(); err != nil {
		s.notify.Error(tituloErro, err.Error())
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	now := time.Now()
	produto := Produto{
		ID:        id,
		Name:      strings.TrimSpace(input.Name),
		Price:     input.Price,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.produtos = append(s.produtos, produto)

	s.notify.Success(tituloSucesso, "Produto cadastrado com sucesso!")
	return &produto, nil
}

func (s *ProdutoStore) Update(id int64, input ProdutoInput) (*Produto, error) {
	if err := input.validate(); err != nil {
		s.notify.Error(tituloErro, err.Error())
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.produtos {
		if s.produtos[i].ID == id {
			s.produtos[i].Name = strings.TrimSpace(input.Name)
			s.produtos[i].Price = input.Price
			s.produtos[i].Quantity = input.Quantity
			s.produtos[i].UpdatedAt = time.Now()

			s.notify.Success(tituloSucesso, "Produto atualizado com sucesso!")
			produto := s.produtos[i]
			return &produto, nil
		}
	}

	s.notify.Error(tituloErro, errProdutoNaoEncontrado.Error())
	return nil, errProdutoNaoEncontrado
}

func (s *ProdutoStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.produtos {
		if s.produtos[i].ID == id {
			s.produtos = append(s.produtos[:i], s.produtos[i+1:]...)
			s.notify.Success(tituloSucesso, "Produto excluído com sucesso!")
			return nil
		}
	}

	s.notify.Error(tituloErro, errProdutoNaoEncontrado.Error())
	return errProdutoNaoEncontrado
}

func (in ProdutoInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errNomeProdutoObrigatorio
	}
	if in.Price < 0 {
		return errPrecoProdutoInvalido
	}
	return nil
}
