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
	errTituloObrigatorio       = errors.New("titulo da promoção é obrigatório")
	errTipoDescontoInvalido    = errors.New("tipo_desconto deve ser percentual ou valor_fixo")
	errPeriodoPromocaoInvalido = errors.New("data_inicio e data_fim são obrigatórias")
)

type PromocaoStore struct {
	db     *gorm.DB
	cache  cache.Cache
	notify notify.Notifier
	logger *logrus.Logger
}

func NewPromocaoStore(db *gorm.DB, c cache.Cache, n notify.Notifier, logger *logrus.Logger) *PromocaoStore {
	return &PromocaoStore{db: db, cache: c, notify: n, logger: logger}
}

type PromocaoInput struct {
	Titulo           string `json:"titulo"`
	Descricao        string `json:"descricao"`
	MedicamentoID    string `json:"medicamento_id"`
	TipoDesconto     string `json:"tipo_desconto"`
	ValorDesconto    string `json:"valor_desconto"`
	PrecoPromocional string `json:"preco_promocional"`
	DataInicio       string `json:"data_inicio"`
	DataFim          string `json:"data_fim"`
	Ativo            *bool  `json:"ativo"`
}

type PromocaoUpdate struct {
	Titulo           *string `json:"titulo"`
	Descricao        *string `json:"descricao"`
	MedicamentoID    *string `json:"medicamento_id"`
	TipoDesconto     *string `json:"tipo_desconto"`
	ValorDesconto    *string `json:"valor_desconto"`
	PrecoPromocional *string `json:"preco_promocional"`
	DataInicio       *string `json:"data_inicio"`
	DataFim          *string `json:"data_fim"`
	Ativo            *bool   `json:"ativo"`
}

// List returns promotions newest-first with the referenced medicine joined
// in for display.
func (s *PromocaoStore) List(ctx context.Context) ([]models.Promocao, error) {
	var promocoes []models.Promocao

	if cached, err := s.cache.Get(ctx, PROMOCOES_CACHE_KEY); err == nil {
		if err := json.Unmarshal([]byte(cached), &promocoes); err == nil {
			return promocoes, nil
		}
	}

	if err := s.db.WithContext(ctx).
		Preload("Medicamento").
		Order("created_at DESC").
		Find(&promocoes).Error; err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(promocoes); err == nil {
		_ = s.cache.Set(ctx, PROMOCOES_CACHE_KEY, string(payload), CACHE_TTL_SHORT)
	}

	return promocoes, nil
}

func (s *PromocaoStore) Create(ctx context.Context, input PromocaoInput) (*models.Promocao, error) {
	promocao, err := input.normalize()
	if err != nil {
		s.notify.Error(tituloErro, err.Error())
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(promocao).Error; err != nil {
		s.logger.WithField("titulo", promocao.Titulo).WithError(err).Error("failed to create promocao")
		s.notify.Error(tituloErro, "Erro ao criar promoção. Tente novamente.")
		return nil, err
	}

	_ = s.cache.Del(ctx, PROMOCOES_CACHE_KEY)
	s.notify.Success(tituloSucesso, "Promoção criada com sucesso!")

	return promocao, nil
}

func (s *PromocaoStore) Update(ctx context.Context, id string, updates PromocaoUpdate) (*models.Promocao, error) {
	if updates.Titulo != nil && strings.TrimSpace(*updates.Titulo) == "" {
		s.notify.Error(tituloErro, errTituloObrigatorio.Error())
		return nil, errTituloObrigatorio
	}
	if updates.TipoDesconto != nil && !tipoDescontoValido(*updates.TipoDesconto) {
		s.notify.Error(tituloErro, errTipoDescontoInvalido.Error())
		return nil, errTipoDescontoInvalido
	}

	var valorDesconto string
	if updates.ValorDesconto != nil {
		var err error
		if valorDesconto, err = moneyOrZero("valor_desconto", *updates.ValorDesconto); err != nil {
			s.notify.Error(tituloErro, err.Error())
			return nil, err
		}
	}

	var promocao models.Promocao
	if err := s.db.WithContext(ctx).First(&promocao, "id = ?", id).Error; err != nil {
		s.notify.Error(tituloErro, err.Error())
		return nil, err
	}

	if updates.Titulo != nil {
		promocao.Titulo = strings.TrimSpace(*updates.Titulo)
	}
	if updates.Descricao != nil {
		promocao.Descricao = trimPtr(*updates.Descricao)
	}
	if updates.MedicamentoID != nil {
		promocao.MedicamentoID = trimPtr(*updates.MedicamentoID)
	}
	if updates.TipoDesconto != nil {
		promocao.TipoDesconto = *updates.TipoDesconto
	}
	if updates.ValorDesconto != nil {
		promocao.ValorDesconto = valorDesconto
	}
	if updates.PrecoPromocional != nil {
		promocao.PrecoPromocional = trimPtr(*updates.PrecoPromocional)
	}
	if updates.DataInicio != nil {
		promocao.DataInicio = strings.TrimSpace(*updates.DataInicio)
	}
	if updates.DataFim != nil {
		promocao.DataFim = strings.TrimSpace(*updates.DataFim)
	}
	if updates.Ativo != nil {
		promocao.Ativo = *updates.Ativo
	}

	if err := s.db.WithContext(ctx).Save(&promocao).Error; err != nil {
		s.logger.WithField("id", id).WithError(err).Error("failed to update promocao")
		s.notify.Error(tituloErro, "Erro ao atualizar promoção. Tente novamente.")
		return nil, err
	}

	_ = s.cache.Del(ctx, PROMOCOES_CACHE_KEY)
	s.notify.Success(tituloSucesso, "Promoção atualizada com sucesso!")

	return &promocao, nil
}

func (s *PromocaoStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&models.Promocao{}, "id = ?", id).Error; err != nil {
		s.logger.WithField("id", id).WithError(err).Error("failed to delete promocao")
		s.notify.Error(tituloErro, "Erro ao excluir promoção. Tente novamente.")
		return err
	}

	_ = s.cache.Del(ctx, PROMOCOES_CACHE_KEY)
	s.notify.Success(tituloSucesso, "Promoção excluída com sucesso!")

	return nil
}

func tipoDescontoValido(tipo string) bool {
	return tipo == models.TipoDescontoPercentual || tipo == models.TipoDescontoValorFixo
}

func (in PromocaoInput) normalize() (*models.Promocao, error) {
	titulo := strings.TrimSpace(in.Titulo)
	if titulo == "" {
		return nil, errTituloObrigatorio
	}
	if !tipoDescontoValido(in.TipoDesconto) {
		return nil, errTipoDescontoInvalido
	}

	valorDesconto, err := parseMoney("valor_desconto", in.ValorDesconto)
	if err != nil {
		return nil, err
	}

	var precoPromocional *string
	if strings.TrimSpace(in.PrecoPromocional) != "" {
		parsed, err := parseMoney("preco_promocional", in.PrecoPromocional)
		if err != nil {
			return nil, err
		}
		precoPromocional = &parsed
	}

	dataInicio := strings.TrimSpace(in.DataInicio)
	dataFim := strings.TrimSpace(in.DataFim)
	if dataInicio == "" || dataFim == "" {
		return nil, errPeriodoPromocaoInvalido
	}

	promocao := &models.Promocao{
		Titulo:           titulo,
		Descricao:        trimPtr(in.Descricao),
		MedicamentoID:    trimPtr(in.MedicamentoID),
		TipoDesconto:     in.TipoDesconto,
		ValorDesconto:    valorDesconto,
		PrecoPromocional: precoPromocional,
		DataInicio:       dataInicio,
		DataFim:          dataFim,
		Ativo:            true,
	}
	if in.Ativo != nil {
		promocao.Ativo = *in.Ativo
	}

	return promocao, nil
}
