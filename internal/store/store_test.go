package store

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lucaseduardo5855/ABarateira/internal/cache"
	"github.com/lucaseduardo5855/ABarateira/internal/database/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Fornecedor{},
		&models.Medicamento{},
		&models.Venda{},
		&models.Promocao{},
		&models.Filial{},
		&models.EstoqueFilial{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeCache records every Del so tests can assert exactly which keys a
// mutation invalidated.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
	ttls    map[string]time.Duration
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[string]string),
		ttls:    make(map[string]time.Duration),
	}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return value, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.deleted = append(c.deleted, keys...)
	return nil
}

func (c *fakeCache) deletions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.deleted))
	copy(out, c.deleted)
	return out
}

// fakeNotifier counts outcome notifications per mutation.
type fakeNotifier struct {
	mu        sync.Mutex
	successes int
	errors    int
	lastError string
}

func (n *fakeNotifier) Success(title, description string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes++
}

func (n *fakeNotifier) Error(title, description string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors++
	n.lastError = description
}

func (n *fakeNotifier) counts() (successes, errors int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.successes, n.errors
}
