package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lucaseduardo5855/ABarateira/internal/cache"
	"github.com/lucaseduardo5855/ABarateira/internal/database/models"
	"github.com/lucaseduardo5855/ABarateira/internal/notify"
)

var (
	errNomeFornecedorObrigatorio = errors.New("nome do fornecedor é obrigatório")
	errCNPJObrigatorio           = errors.New("cnpj do fornecedor é obrigatório")
)

type FornecedorStore struct {
	db     *gorm.DB
	cache  cache.Cache
	notify notify.Notifier
	logger *logrus.Logger
}

func NewFornecedorStore(db *gorm.DB, c cache.Cache, n notify.Notifier, logger *logrus.Logger) *FornecedorStore {
	return &FornecedorStore{db: db, cache: c, notify: n, logger: logger}
}

type FornecedorInput struct {
	Nome               string `json:"nome"`
	CNPJ               string `json:"cnpj"`
	Telefone           string `json:"telefone"`
	Email              string `json:"email"`
	Endereco           string `json:"endereco"`
	ContatoResponsavel string `json:"contato_responsavel"`
}

type FornecedorUpdate struct {
	Nome               *string `json:"nome"`
	CNPJ               *string `json:"cnpj"`
	Telefone           *string `json:"telefone"`
	Email              *string `json:"email"`
	Endereco           *string `json:"endereco"`
	ContatoResponsavel *string `json:"contato_responsavel"`
}

func (s *FornecedorStore) List(ctx context.Context) ([]models.Fornecedor, error) {
	var fornecedores []models.Fornecedor

	if cached, err := s.cache.Get(ctx, FORNECEDORES_CACHE_KEY); err == nil {
		if err := json.Unmarshal([]byte(cached), &fornecedores); err == nil {
			return fornecedores, nil
		}
	}

	if err := s.db.WithContext(ctx).Order("nome").Find(&fornecedores).Error; err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(fornecedores); err == nil {
		_ = s.cache.Set(ctx, FORNECEDORES_CACHE_KEY, string(payload), CACHE_TTL_SHORT)
	}

	return fornecedores, nil
}

func (s *FornecedorStore) Create(ctx context.Context, input FornecedorInput) (*models.Fornecedor, error) {
	nome := strings.TrimSpace(input.Nome)
	if nome == "" {
		s.notify.Error(tituloErro, errNomeFornecedorObrigatorio.Error())
		return nil, errNomeFornecedorObrigatorio
	}
	cnpj := strings.TrimSpace(input.CNPJ)
	if cnpj == "" {
		s.notify.Error(tituloErro, errCNPJObrigatorio.Error())
		return nil, errCNPJObrigatorio
	}

	fornecedor := &models.Fornecedor{
		Nome:               nome,
		CNPJ:               cnpj,
		Telefone:           trimPtr(input.Telefone),
		Email:              trimPtr(input.Email),
		Endereco:           trimPtr(input.Endereco),
		ContatoResponsavel: trimPtr(input.ContatoResponsavel),
	}

	if err := s.db.WithContext(ctx).Create(fornecedor).Error; err != nil {
		s.logger.WithField("nome", nome).WithError(err).Error("failed to create fornecedor")
		s.notify.Error(tituloErro, "Erro ao criar fornecedor. Tente novamente.")
		return nil, err
	}

	_ = s.cache.Del(ctx, FORNECEDORES_CACHE_KEY)
	s.notify.Success(tituloSucesso, "Fornecedor criado com sucesso!")

	return fornecedor, nil
}

func (s *FornecedorStore) Update(ctx context.Context, id string, updates FornecedorUpdate) (*models.Fornecedor, error) {
	if updates.Nome != nil && strings.TrimSpace(*updates.Nome) == "" {
		s.notify.Error(tituloErro, errNomeFornecedorObrigatorio.Error())
		return nil, errNomeFornecedorObrigatorio
	}
	if updates.CNPJ != nil && strings.TrimSpace(*updates.CNPJ) == "" {
		s.notify.Error(tituloErro, errCNPJObrigatorio.Error())
		return nil, errCNPJObrigatorio
	}

	var fornecedor models.Fornecedor
	if err := s.db.WithContext(ctx).First(&fornecedor, "id = ?", id).Error; err != nil {
		s.notify.Error(tituloErro, err.Error())
		return nil, err
	}

	if updates.Nome != nil {
		fornecedor.Nome = strings.TrimSpace(*updates.Nome)
	}
	if updates.CNPJ != nil {
		fornecedor.CNPJ = strings.TrimSpace(*updates.CNPJ)
	}
	if updates.Telefone != nil {
		fornecedor.Telefone = trimPtr(*updates.Telefone)
	}
	if updates.Email != nil {
		fornecedor.Email = trimPtr(*updates.Email)
	}
	if updates.Endereco != nil {
		fornecedor.Endereco = trimPtr(*updates.Endereco)
	}
	if updates.ContatoResponsavel != nil {
		fornecedor.ContatoResponsavel = trimPtr(*updates.ContatoResponsavel)
	}

	if err := s.db.WithContext(ctx).Save(&fornecedor).Error; err != nil {
		s.logger.WithField("id", id).WithError(err).Error("failed to update fornecedor")
		s.notify.Error(tituloErro, "Erro ao atualizar fornecedor. Tente novamente.")
		return nil, err
	}

	_ = s.cache.Del(ctx, FORNECEDORES_CACHE_KEY)
	s.notify.Success(tituloSucesso, "Fornecedor atualizado com sucesso!")

	return &fornecedor, nil
}

// Delete removes the row. Suppliers are hard-deleted; medicines referencing
// one keep a dangling fornecedor_id until the next full reload.
func (s *FornecedorStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&models.Fornecedor{}, "id = ?", id).Error; err != nil {
		s.logger.WithField("id", id).WithError(err).Error("failed to delete fornecedor")
		s.notify.Error(tituloErro, "Erro ao remover fornecedor. Tente novamente.")
		return err
	}

	_ = s.cache.Del(ctx, FORNECEDORES_CACHE_KEY)
	s.notify.Success(tituloSucesso, "Fornecedor removido com sucesso!")

	return nil
}
