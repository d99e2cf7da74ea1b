package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lucaseduardo5855/ABarateira/internal/cache"
	"github.com/lucaseduardo5855/ABarateira/internal/database/models"
	"github.com/lucaseduardo5855/ABarateira/internal/notify"
)

var (
	errNumeroVendaObrigatorio     = errors.New("numero_venda é obrigatório")
	errClienteNomeObrigatorio     = errors.New("cliente_nome é obrigatório")
	errMedicamentoNomeObrigatorio = errors.New("medicamento_nome é obrigatório")
	errQuantidadeInvalida         = errors.New("quantidade deve ser no mínimo 1")
)

type VendaStore struct {
	db     *gorm.DB
	cache  cache.Cache
	notify notify.Notifier
	logger *logrus.Logger
}

func NewVendaStore(db *gorm.DB, c cache.Cache, n notify.Notifier, logger *logrus.Logger) *VendaStore {
	return &VendaStore{db: db, cache: c, notify: n, logger: logger}
}

type VendaInput struct {
	NumeroVenda     string `json:"numero_venda"`
	ClienteNome     string `json:"cliente_nome"`
	ClienteCPF      string `json:"cliente_cpf"`
	ClienteTelefone string `json:"cliente_telefone"`
	MedicamentoID   string `json:"medicamento_id"`
	MedicamentoNome string `json:"medicamento_nome"`
	Quantidade      int    `json:"quantidade"`
	PrecoUnitario   string `json:"preco_unitario"`
	PrecoTotal      string `json:"preco_total"`
	Desconto        string `json:"desconto"`
	VendedorNome    string `json:"vendedor_nome"`
	FormaPagamento  string `json:"forma_pagamento"`
	DataVenda       string `json:"data_venda"` // RFC 3339; defaults to now
}

// VendaFilter filters an already-listed collection, never the database.
type VendaFilter struct {
	Cliente string `form:"cliente"`
	Produto string `form:"produto"`
	Data    string `form:"data"` // calendar day, 2006-01-02
}

// List returns sales newest-first, read through the cache.
func (s *VendaStore) List(ctx context.Context) ([]models.Venda, error) {
	var vendas []models.Venda

	if cached, err := s.cache.Get(ctx, VENDAS_CACHE_KEY); err == nil {
		if err := json.Unmarshal([]byte(cached), &vendas); err == nil {
			return vendas, nil
		}
	}

	if err := s.db.WithContext(ctx).Order("data_venda DESC").Find(&vendas).Error; err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(vendas); err == nil {
		_ = s.cache.Set(ctx, VENDAS_CACHE_KEY, string(payload), CACHE_TTL_SHORT)
	}

	return vendas, nil
}

// Create persists the sale as given: preco_total is whatever the caller
// computed, it is not recomputed here.
func (s *VendaStore) Create(ctx context.Context, input VendaInput) (*models.Venda, error) {
	venda, err := input.normalize()
	if err != nil {
		s.notify.Error(tituloErro, err.Error())
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(venda).Error; err != nil {
		s.logger.WithField("numero_venda", venda.NumeroVenda).WithError(err).Error("failed to create venda")
		s.notify.Error(tituloErro, "Erro ao registrar venda. Tente novamente.")
		return nil, err
	}

	_ = s.cache.Del(ctx, VENDAS_CACHE_KEY)
	s.notify.Success(tituloSucesso, "Venda registrada com sucesso!")

	return venda, nil
}

// Search lists (through the cache) and then applies the in-memory filter.
func (s *VendaStore) Search(ctx context.Context, filter VendaFilter) ([]models.Venda, error) {
	vendas, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterVendas(vendas, filter), nil
}

// FilterVendas matches case-insensitive substrings on cliente_nome and
// medicamento_nome and an exact calendar date on data_venda. Blank filter
// fields match everything.
func FilterVendas(vendas []models.Venda, filter VendaFilter) []models.Venda {
	cliente := strings.ToLower(filter.Cliente)
	produto := strings.ToLower(filter.Produto)

	matched := make([]models.Venda, 0, len(vendas))
	for _, venda := range vendas {
		if cliente != "" && !strings.Contains(strings.ToLower(venda.ClienteNome), cliente) {
			continue
		}
		if produto != "" && !strings.Contains(strings.ToLower(venda.MedicamentoNome), produto) {
			continue
		}
		if filter.Data != "" && venda.DataVenda.Format("2006-01-02") != filter.Data {
			continue
		}
		matched = append(matched, venda)
	}
	return matched
}

func (in VendaInput) normalize() (*models.Venda, error) {
	numero := strings.TrimSpace(in.NumeroVenda)
	if numero == "" {
		return nil, errNumeroVendaObrigatorio
	}
	cliente := strings.TrimSpace(in.ClienteNome)
	if cliente == "" {
		return nil, errClienteNomeObrigatorio
	}
	medicamento := strings.TrimSpace(in.MedicamentoNome)
	if medicamento == "" {
		return nil, errMedicamentoNomeObrigatorio
	}
	if in.Quantidade < 1 {
		return nil, errQuantidadeInvalida
	}

	precoUnitario, err := parseMoney("preco_unitario", in.PrecoUnitario)
	if err != nil {
		return nil, err
	}
	precoTotal, err := parseMoney("preco_total", in.PrecoTotal)
	if err != nil {
		return nil, err
	}
	desconto, err := parseMoneyDefault("desconto", in.Desconto, "0.00")
	if err != nil {
		return nil, err
	}

	dataVenda := time.Now()
	if in.DataVenda != "" {
		parsed, err := time.Parse(time.RFC3339, in.DataVenda)
		if err != nil {
			return nil, errors.New("data_venda deve estar no formato RFC 3339")
		}
		dataVenda = parsed
	}

	return &models.Venda{
		NumeroVenda:     numero,
		ClienteNome:     cliente,
		ClienteCPF:      trimPtr(in.ClienteCPF),
		ClienteTelefone: trimPtr(in.ClienteTelefone),
		MedicamentoID:   trimPtr(in.MedicamentoID),
		MedicamentoNome: medicamento,
		Quantidade:      in.Quantidade,
		PrecoUnitario:   precoUnitario,
		PrecoTotal:      precoTotal,
		Desconto:        desconto,
		VendedorNome:    trimPtr(in.VendedorNome),
		FormaPagamento:  trimPtr(in.FormaPagamento),
		DataVenda:       dataVenda,
	}, nil
}
