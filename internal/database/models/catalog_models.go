package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Medicamento is the catalog row behind the medicines screen. Removal is a
// soft delete (Ativo=false): historical sales keep their medicamento_id.
type Medicamento struct {
	ID             string  `gorm:"type:uuid;primaryKey" json:"id"`
	Nome           string  `gorm:"size:255;not null" json:"nome"`
	PrincipioAtivo *string `gorm:"size:255" json:"principio_ativo"`
	Descricao      *string `gorm:"type:text" json:"descricao"`
	PrecoCompra    string  `gorm:"type:decimal(10,2);not null" json:"preco_compra"`
	PrecoVenda     string  `gorm:"type:decimal(10,2);not null" json:"preco_venda"`
	CodigoBarras   *string `gorm:"size:100" json:"codigo_barras"`
	Validade       *string `gorm:"size:20" json:"validade"`
	Lote           *string `gorm:"size:100" json:"lote"`
	Fabricante     *string `gorm:"size:255" json:"fabricante"`
	Categoria      *string `gorm:"size:100" json:"categoria"`
	FornecedorID   *string `gorm:"type:uuid;index" json:"fornecedor_id"`
	EstoqueMinimo  int     `gorm:"not null;default:10" json:"estoque_minimo"`
	Ativo          bool    `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Fornecedor *Fornecedor `gorm:"foreignKey:FornecedorID" json:"fornecedor,omitempty"`
}

func (Medicamento) TableName() string { return "medicamentos" }

func (m *Medicamento) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

type Fornecedor struct {
	ID                 string  `gorm:"type:uuid;primaryKey" json:"id"`
	Nome               string  `gorm:"size:255;not null" json:"nome"`
	CNPJ               string  `gorm:"column:cnpj;size:20;not null" json:"cnpj"`
	Telefone           *string `gorm:"size:50" json:"telefone"`
	Email              *string `gorm:"size:100" json:"email"`
	Endereco           *string `gorm:"size:255" json:"endereco"`
	ContatoResponsavel *string `gorm:"size:100" json:"contato_responsavel"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Medicamentos []Medicamento `gorm:"foreignKey:FornecedorID" json:"medicamentos,omitempty"`
}

func (Fornecedor) TableName() string { return "fornecedores" }

func (f *Fornecedor) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
