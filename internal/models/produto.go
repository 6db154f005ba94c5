package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto is a sellable item. Estoque is decremented when the product is
// added to a Pedido.
type Produto struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Nome        string          `json:"nome" gorm:"type:varchar(150);not null"`
	Preco       decimal.Decimal `json:"preco" gorm:"type:numeric(12,2);not null"`
	Estoque     int             `json:"estoque" gorm:"not null;default:0"`
	CategoriaID uint            `json:"categoriaId" gorm:"not null;index"`
	Categoria   *Categoria      `json:"categoria,omitempty" gorm:"foreignKey:CategoriaID"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (Produto) TableName() string { return "produtos" }
