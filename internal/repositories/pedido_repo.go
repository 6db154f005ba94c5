package repositories

import (
	"context"

	"loja/internal/models"
)

// PedidoRepository defines the interface for order data access. Item changes
// adjust product stock and the order total in the same transaction.
type PedidoRepository interface {
	GetAll(ctx context.Context) ([]models.Pedido, error)
	GetByID(ctx context.Context, id uint) (*models.Pedido, error)
	Create(ctx context.Context, pedido *models.Pedido) error
	Update(ctx context.Context, pedido *models.Pedido) error
	// Delete removes the order and its items, returning their stock.
	Delete(ctx context.Context, id uint) error
	// AddItem reserves stock for item and appends it to its order.
	AddItem(ctx context.Context, item *models.PedidoItem) error
	// RemoveItem deletes one item of an order and returns its stock.
	RemoveItem(ctx context.Context, pedidoID, itemID uint) error
}
