package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TipoDescontoPercentual = "percentual"
	TipoDescontoValorFixo  = "valor_fixo"
)

// Venda keeps a denormalized MedicamentoNome so the row stays readable after
// the referenced medicine is deactivated. MedicamentoID is nullable for the
// same reason. There is no delete path for sales.
type Venda struct {
	ID              string  `gorm:"type:uuid;primaryKey" json:"id"`
	NumeroVenda     string  `gorm:"size:50;uniqueIndex;not null" json:"numero_venda"`
	ClienteNome     string  `gorm:"size:255;not null" json:"cliente_nome"`
	ClienteCPF      *string `gorm:"column:cliente_cpf;size:20" json:"cliente_cpf"`
	ClienteTelefone *string `gorm:"size:50" json:"cliente_telefone"`
	MedicamentoID   *string `gorm:"type:uuid;index" json:"medicamento_id"`
	MedicamentoNome string  `gorm:"size:255;not null" json:"medicamento_nome"`
	Quantidade      int     `gorm:"not null" json:"quantidade"`
	PrecoUnitario   string  `gorm:"type:decimal(10,2);not null" json:"preco_unitario"`
	PrecoTotal      string  `gorm:"type:decimal(10,2);not null" json:"preco_total"`
	Desconto        string  `gorm:"type:decimal(10,2);not null;default:0" json:"desconto"`
	FilialID        *string `gorm:"type:uuid" json:"filial_id"`
	VendedorNome    *string `gorm:"size:255" json:"vendedor_nome"`
	FormaPagamento  *string `gorm:"size:50" json:"forma_pagamento"`

	DataVenda time.Time `gorm:"index;not null" json:"data_venda"`
	CreatedAt time.Time `json:"created_at"`
}

func (Venda) TableName() string { return "vendas" }

func (v *Venda) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// Promocao.TipoDesconto decides how ValorDesconto reads: a percentage for
// "percentual", a currency amount for "valor_fixo".
type Promocao struct {
	ID               string  `gorm:"type:uuid;primaryKey" json:"id"`
	MedicamentoID    *string `gorm:"type:uuid;index" json:"medicamento_id"`
	Titulo           string  `gorm:"size:255;not null" json:"titulo"`
	Descricao        *string `gorm:"type:text" json:"descricao"`
	TipoDesconto     string  `gorm:"size:20;not null" json:"tipo_desconto"`
	ValorDesconto    string  `gorm:"type:decimal(10,2);not null" json:"valor_desconto"`
	PrecoPromocional *string `gorm:"type:decimal(10,2)" json:"preco_promocional"`
	DataInicio       string  `gorm:"size:20;not null" json:"data_inicio"`
	DataFim          string  `gorm:"size:20;not null" json:"data_fim"`
	Ativo            bool    `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Medicamento *Medicamento `gorm:"foreignKey:MedicamentoID" json:"medicamento,omitempty"`
}

func (Promocao) TableName() string { return "promocoes" }

func (p *Promocao) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
