package store

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/lucaseduardo5855/ABarateira/internal/cache"
	"github.com/lucaseduardo5855/ABarateira/internal/database/models"
)

// EstoqueStore is read-only: branch stock is maintained by the restock
// flows outside this system, the dashboard only displays it.
type EstoqueStore struct {
	db     *gorm.DB
	cache  cache.Cache
	logger *logrus.Logger
}

func NewEstoqueStore(db *gorm.DB, c cache.Cache, logger *logrus.Logger) *EstoqueStore {
	return &EstoqueStore{db: db, cache: c, logger: logger}
}

func (s *EstoqueStore) List(ctx context.Context) ([]models.EstoqueFilial, error) {
	var estoques []models.EstoqueFilial

	if cached, err := s.cache.Get(ctx, ESTOQUE_CACHE_KEY); err == nil {
		if err := json.Unmarshal([]byte(cached), &estoques); err == nil {
			return estoques, nil
		}
	}

	if err := s.db.WithContext(ctx).
		Preload("Medicamento").
		Preload("Filial").
		Order("ultima_atualizacao DESC").
		Find(&estoques).Error; err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(estoques); err == nil {
		_ = s.cache.Set(ctx, ESTOQUE_CACHE_KEY, string(payload), CACHE_TTL_MEDIUM)
	}

	return estoques, nil
}

// ListByFilial narrows the listing to one branch. Not cached: the dashboard
// always goes through List first.
func (s *EstoqueStore) ListByFilial(ctx context.Context, filialID string) ([]models.EstoqueFilial, error) {
	var estoques []models.EstoqueFilial
	if err := s.db.WithContext(ctx).
		Preload("Medicamento").
		Preload("Filial").
		Where("filial_id = ?", filialID).
		Order("ultima_atualizacao DESC").
		Find(&estoques).Error; err != nil {
		return nil, err
	}
	return estoques, nil
}
