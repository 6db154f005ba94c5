package repositories

import (
	"context"
	"fmt"

	"loja/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProdutoRepository is a GORM implementation of ProdutoRepository.
type GORMProdutoRepository struct {
	db *gorm.DB
}

// NewGORMProdutoRepository creates a new instance of GORMProdutoRepository.
func NewGORMProdutoRepository(db *gorm.DB) *GORMProdutoRepository {
	return &GORMProdutoRepository{db: db}
}

// GetAll retrieves products with their category, ordered by name.
func (r *GORMProdutoRepository) GetAll(ctx context.Context, categoriaID *uint) ([]models.Produto, error) {
	q := r.db.WithContext(ctx).Preload("Categoria").Order("nome ASC")
	if categoriaID != nil {
		q = q.Where("categoria_id = ?", *categoriaID)
	}

	produtos := []models.Produto{}
	if err := q.Find(&produtos).Error; err != nil {
		return nil, fmt.Errorf("failed to get all produtos: %w", translate(err))
	}
	return produtos, nil
}

// GetByID retrieves a single product and its category.
func (r *GORMProdutoRepository) GetByID(ctx context.Context, id uint) (*models.Produto, error) {
	var produto models.Produto
	if err := r.db.WithContext(ctx).Preload("Categoria").First(&produto, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get produto %d: %w", id, translate(err))
	}
	return &produto, nil
}

// Create inserts a new product. An unknown categoria fails with ErrForeignKey.
func (r *GORMProdutoRepository) Create(ctx context.Context, produto *models.Produto) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(produto).Error; err != nil {
		return fmt.Errorf("failed to create produto: %w", translate(err))
	}
	return nil
}

// Update writes every column of produto.
func (r *GORMProdutoRepository) Update(ctx context.Context, produto *models.Produto) error {
	res := r.db.WithContext(ctx).Model(produto).Select("*").Omit(clause.Associations, "created_at").Updates(produto)
	if res.Error != nil {
		return fmt.Errorf("failed to update produto: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("produto %d not found for update: %w", produto.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a product. Products on existing orders fail with ErrForeignKey.
func (r *GORMProdutoRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Produto{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete produto: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("produto %d not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// CountItens counts order lines that reference the product.
func (r *GORMProdutoRepository) CountItens(ctx context.Context, id uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.PedidoItem{}).Where("produto_id = ?", id).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count itens of produto %d: %w", id, translate(err))
	}
	return n, nil
}
