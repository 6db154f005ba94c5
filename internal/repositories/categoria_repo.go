package repositories

import (
	"context"

	"loja/internal/models"
)

// CategoriaRepository defines the interface for category data access.
type CategoriaRepository interface {
	GetAll(ctx context.Context) ([]models.Categoria, error)
	GetByID(ctx context.Context, id uint) (*models.Categoria, error)
	Create(ctx context.Context, categoria *models.Categoria) error
	Update(ctx context.Context, categoria *models.Categoria) error
	Delete(ctx context.Context, id uint) error
	CountProdutos(ctx context.Context, id uint) (int64, error)
}
