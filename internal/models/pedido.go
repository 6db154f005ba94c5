package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pedido is a customer order. Total is the sum of its items and is kept in
// sync by the repository whenever items change.
type Pedido struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	ClienteID uint            `json:"clienteId" gorm:"not null;index"`
	Cliente   *Cliente        `json:"cliente,omitempty" gorm:"foreignKey:ClienteID"`
	Data      time.Time       `json:"data" gorm:"not null"`
	Status    string          `json:"status" gorm:"type:varchar(20);not null;default:pendente"`
	Total     decimal.Decimal `json:"total" gorm:"type:numeric(12,2);not null"`
	Itens     []PedidoItem    `json:"itens,omitempty" gorm:"foreignKey:PedidoID"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (Pedido) TableName() string { return "pedidos" }

// PedidoItem is one product line of a Pedido, priced at the time it was added.
type PedidoItem struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	PedidoID      uint            `json:"pedidoId" gorm:"not null;index"`
	ProdutoID     uint            `json:"produtoId" gorm:"not null;index"`
	Produto       *Produto        `json:"produto,omitempty" gorm:"foreignKey:ProdutoID"`
	Quantidade    int             `json:"quantidade" gorm:"not null"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario" gorm:"type:numeric(12,2);not null"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (PedidoItem) TableName() string { return "pedido_itens" }

// Subtotal is Quantidade * PrecoUnitario.
func (i PedidoItem) Subtotal() decimal.Decimal {
	return i.PrecoUnitario.Mul(decimal.NewFromInt(int64(i.Quantidade)))
}
