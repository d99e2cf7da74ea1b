package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Filial struct {
	ID       string  `gorm:"type:uuid;primaryKey" json:"id"`
	Nome     string  `gorm:"size:255;not null" json:"nome"`
	Endereco string  `gorm:"size:255;not null" json:"endereco"`
	Telefone *string `gorm:"size:50" json:"telefone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Filial) TableName() string { return "filiais" }

func (f *Filial) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// EstoqueFilial is the per-branch stock relation. The dashboard only reads
// it; restock flows live outside this system.
type EstoqueFilial struct {
	ID            string  `gorm:"type:uuid;primaryKey" json:"id"`
	MedicamentoID *string `gorm:"type:uuid;index" json:"medicamento_id"`
	FilialID      *string `gorm:"type:uuid;index" json:"filial_id"`
	Quantidade    int     `gorm:"not null;default:0" json:"quantidade"`
	EstoqueMinimo int     `gorm:"not null;default:10" json:"estoque_minimo"`

	UltimaAtualizacao time.Time `gorm:"autoUpdateTime" json:"ultima_atualizacao"`

	Medicamento *Medicamento `gorm:"foreignKey:MedicamentoID" json:"medicamento,omitempty"`
	Filial      *Filial      `gorm:"foreignKey:FilialID" json:"filial,omitempty"`
}

func (EstoqueFilial) TableName() string { return "estoque_filiais" }

func (e *EstoqueFilial) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type Profile struct {
	ID       string  `gorm:"type:uuid;primaryKey" json:"id"`
	Nome     string  `gorm:"size:255;not null" json:"nome"`
	Email    string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Tipo     string  `gorm:"size:20;not null" json:"tipo"` // admin | gerente | vendedor
	FilialID *string `gorm:"type:uuid" json:"filial_id"`
	Ativo    bool    `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type LoginLog struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Sucesso bool   `gorm:"not null" json:"sucesso"`

	CreatedAt time.Time `json:"created_at"`
}

func (LoginLog) TableName() string { return "login_log" }

func (l *LoginLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
