package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lucaseduardo5855/ABarateira/internal/cache"
	"github.com/lucaseduardo5855/ABarateira/internal/database/models"
	"github.com/lucaseduardo5855/ABarateira/internal/notify"
)

var errNomeMedicamentoObrigatorio = errors.New("nome do medicamento é obrigatório")

type MedicamentoStore struct {
	db     *gorm.DB
	cache  cache.Cache
	notify notify.Notifier
	logger *logrus.Logger
}

func NewMedicamentoStore(db *gorm.DB, c cache.Cache, n notify.Notifier, logger *logrus.Logger) *MedicamentoStore {
	return &MedicamentoStore{db: db, cache: c, notify: n, logger: logger}
}

// MedicamentoInput carries the create payload. Money fields arrive as
// strings and are coerced with decimal before anything touches the database.
type MedicamentoInput struct {
	Nome           string `json:"nome"`
	PrincipioAtivo string `json:"principio_ativo"`
	Descricao      string `json:"descricao"`
	PrecoCompra    string `json:"preco_compra"`
	PrecoVenda     string `json:"preco_venda"`
	CodigoBarras   string `json:"codigo_barras"`
	Validade       string `json:"validade"`
	Lote           string `json:"lote"`
	Fabricante     string `json:"fabricante"`
	Categoria      string `json:"categoria"`
	FornecedorID   string `json:"fornecedor_id"`
	EstoqueMinimo  *int   `json:"estoque_minimo"`
	Ativo          *bool  `json:"ativo"`
}

// MedicamentoUpdate is the partial-update payload: only non-nil fields are
// applied.
type MedicamentoUpdate struct {
	Nome           *string `json:"nome"`
	PrincipioAtivo *string `json:"principio_ativo"`
	Descricao      *string `json:"descricao"`
	PrecoCompra    *string `json:"preco_compra"`
	PrecoVenda     *string `json:"preco_venda"`
	CodigoBarras   *string `json:"codigo_barras"`
	Validade       *string `json:"validade"`
	Lote           *string `json:"lote"`
	Fabricante     *string `json:"fabricante"`
	Categoria      *string `json:"categoria"`
	FornecedorID   *string `json:"fornecedor_id"`
	EstoqueMinimo  *int    `json:"estoque_minimo"`
	Ativo          *bool   `json:"ativo"`
}

// List returns the active catalog ordered by nome, read through the cache.
func (s *MedicamentoStore) List(ctx context.Context) ([]models.Medicamento, error) {
	var meds []models.Medicamento

	if cached, err := s.cache.Get(ctx, MEDICAMENTOS_CACHE_KEY); err == nil {
		if err := json.Unmarshal([]byte(cached), &meds); err == nil {
			return meds, nil
		}
	}

	if err := s.db.WithContext(ctx).
		Where("ativo = ?", true).
		Order("nome").
		Find(&meds).Error; err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(meds); err == nil {
		_ = s.cache.Set(ctx, MEDICAMENTOS_CACHE_KEY, string(payload), CACHE_TTL_SHORT)
	}

	return meds, nil
}

// Consulta is the price-lookup search: active medicines whose nome or
// principio_ativo contains termo, case-insensitively, ordered by nome. An
// empty termo returns every active medicine. Read-only, never cached.
func (s *MedicamentoStore) Consulta(ctx context.Context, termo string) ([]models.Medicamento, error) {
	query := s.db.WithContext(ctx).Where("ativo = ?", true)

	if termo = strings.TrimSpace(termo); termo != "" {
		like := "%" + strings.ToLower(termo) + "%"
		query = query.Where("LOWER(nome) LIKE ? OR LOWER(principio_ativo) LIKE ?", like, like)
	}

	var meds []models.Medicamento
	if err := query.Order("nome").Find(&meds).Error; err != nil {
		return nil, err
	}
	return meds, nil
}

func (s *MedicamentoStore) Create(ctx context.Context, input MedicamentoInput) (*models.Medicamento, error) {
	med, err := input.normalize()
	if err != nil {
		s.notify.Error(tituloErro, err.Error())
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(med).Error; err != nil {
		wrapped := fmt.Errorf("erro ao criar medicamento: %w", err)
		s.logger.WithField("nome", med.Nome).WithError(err).Error("failed to create medicamento")
		s.notify.Error(tituloErro, wrapped.Error())
		return nil, wrapped
	}

	_ = s.cache.Del(ctx, MEDICAMENTOS_CACHE_KEY)
	s.notify.Success(tituloSucesso, fmt.Sprintf("Medicamento %q criado com sucesso!", med.Nome))

	return med, nil
}

func (s *MedicamentoStore) Update(ctx context.Context, id string, updates MedicamentoUpdate) (*models.Medicamento, error) {
	staged, err := updates.normalize()
	if err != nil {
		s.notify.Error(tituloErro, err.Error())
		return nil, err
	}

	var med models.Medicamento
	if err := s.db.WithContext(ctx).First(&med, "id = ?", id).Error; err != nil {
		s.notify.Error(tituloErro, err.Error())
		return nil, err
	}

	staged.apply(&med)

	if err := s.db.WithContext(ctx).Save(&med).Error; err != nil {
		s.logger.WithField("id", id).WithError(err).Error("failed to update medicamento")
		s.notify.Error(tituloErro, err.Error())
		return nil, err
	}

	_ = s.cache.Del(ctx, MEDICAMENTOS_CACHE_KEY)
	s.notify.Success(tituloSucesso, "Medicamento atualizado com sucesso!")

	return &med, nil
}

// Delete deactivates the medicine instead of removing the row: historical
// sales reference it by id and must not be orphaned.
func (s *MedicamentoStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).
		Model(&models.Medicamento{}).
		Where("id = ?", id).
		Update("ativo", false).Error; err != nil {
		s.logger.WithField("id", id).WithError(err).Error("failed to deactivate medicamento")
		s.notify.Error(tituloErro, err.Error())
		return err
	}

	_ = s.cache.Del(ctx, MEDICAMENTOS_CACHE_KEY)
	s.notify.Success(tituloSucesso, "Medicamento removido com sucesso!")

	return nil
}

func (in MedicamentoInput) normalize() (*models.Medicamento, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return nil, errNomeMedicamentoObrigatorio
	}

	precoCompra, err := parseMoney("preco_compra", in.PrecoCompra)
	if err != nil {
		return nil, err
	}
	precoVenda, err := parseMoney("preco_venda", in.PrecoVenda)
	if err != nil {
		return nil, err
	}

	med := &models.Medicamento{
		Nome:           nome,
		PrincipioAtivo: trimPtr(in.PrincipioAtivo),
		Descricao:      trimPtr(in.Descricao),
		PrecoCompra:    precoCompra,
		PrecoVenda:     precoVenda,
		CodigoBarras:   trimPtr(in.CodigoBarras),
		Validade:       trimPtr(in.Validade),
		Lote:           trimPtr(in.Lote),
		Fabricante:     trimPtr(in.Fabricante),
		Categoria:      trimPtr(in.Categoria),
		FornecedorID:   trimPtr(in.FornecedorID),
		EstoqueMinimo:  10,
		Ativo:          true,
	}

	if in.EstoqueMinimo != nil && *in.EstoqueMinimo > 0 {
		med.EstoqueMinimo = *in.EstoqueMinimo
	}
	if in.Ativo != nil {
		med.Ativo = *in.Ativo
	}

	return med, nil
}

// medicamentoStaged holds an update payload after normalization, before the
// row is fetched.
type medicamentoStaged struct {
	updates MedicamentoUpdate
	nome    string
	compra  string
	venda   string
}

func (u MedicamentoUpdate) normalize() (*medicamentoStaged, error) {
	staged := &medicamentoStaged{updates: u}

	if u.Nome != nil {
		staged.nome = strings.TrimSpace(*u.Nome)
		if staged.nome == "" {
			return nil, errNomeMedicamentoObrigatorio
		}
	}

	var err error
	if u.PrecoCompra != nil {
		if staged.compra, err = moneyOrZero("preco_compra", *u.PrecoCompra); err != nil {
			return nil, err
		}
	}
	if u.PrecoVenda != nil {
		if staged.venda, err = moneyOrZero("preco_venda", *u.PrecoVenda); err != nil {
			return nil, err
		}
	}

	return staged, nil
}

func (st *medicamentoStaged) apply(med *models.Medicamento) {
	u := st.updates

	if u.Nome != nil {
		med.Nome = st.nome
	}
	if u.PrecoCompra != nil {
		med.PrecoCompra = st.compra
	}
	if u.PrecoVenda != nil {
		med.PrecoVenda = st.venda
	}
	if u.PrincipioAtivo != nil {
		med.PrincipioAtivo = trimPtr(*u.PrincipioAtivo)
	}
	if u.Descricao != nil {
		med.Descricao = trimPtr(*u.Descricao)
	}
	if u.CodigoBarras != nil {
		med.CodigoBarras = trimPtr(*u.CodigoBarras)
	}
	if u.Validade != nil {
		med.Validade = trimPtr(*u.Validade)
	}
	if u.Lote != nil {
		med.Lote = trimPtr(*u.Lote)
	}
	if u.Fabricante != nil {
		med.Fabricante = trimPtr(*u.Fabricante)
	}
	if u.Categoria != nil {
		med.Categoria = trimPtr(*u.Categoria)
	}
	if u.FornecedorID != nil {
		med.FornecedorID = trimPtr(*u.FornecedorID)
	}
	if u.EstoqueMinimo != nil {
		med.EstoqueMinimo = *u.EstoqueMinimo
	}
	if u.Ativo != nil {
		med.Ativo = *u.Ativo
	}
}
