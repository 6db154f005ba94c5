package repositories

import (
	"context"

	"loja/internal/models"
)

// ProdutoRepository defines the interface for product data access.
type ProdutoRepository interface {
	// GetAll lists products, restricted to one category when categoriaID is set.
	GetAll(ctx context.Context, categoriaID *uint) ([]models.Produto, error)
	GetByID(ctx context.Context, id uint) (*models.Produto, error)
	Create(ctx context.Context, produto *models.Produto) error
	Update(ctx context.Context, produto *models.Produto) error
	Delete(ctx context.Context, id uint) error
	CountItens(ctx context.Context, id uint) (int64, error)
}
