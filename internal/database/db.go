package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lucaseduardo5855/ABarateira/internal/database/models"
)

func NewConnection(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		log.Fatal("DSN is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return db, nil
}

func MigratePharmacyDB(db *gorm.DB) error {
	db.AutoMigrate(&models.Fornecedor{})
	db.AutoMigrate(&models.Medicamento{})
	db.AutoMigrate(&models.Venda{})
	db.AutoMigrate(&models.Promocao{})
	db.AutoMigrate(&models.Filial{})
	db.AutoMigrate(&models.EstoqueFilial{})
	db.AutoMigrate(&models.Profile{})
	db.AutoMigrate(&models.LoginLog{})
	return nil
}
