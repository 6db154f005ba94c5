package repositories

import (
	"context"
	"fmt"

	"loja/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCategoriaRepository is a GORM implementation of CategoriaRepository.
type GORMCategoriaRepository struct {
	db *gorm.DB
}

// NewGORMCategoriaRepository creates a new instance of GORMCategoriaRepository.
func NewGORMCategoriaRepository(db *gorm.DB) *GORMCategoriaRepository {
	return &GORMCategoriaRepository{db: db}
}

// GetAll retrieves every category ordered by name.
func (r *GORMCategoriaRepository) GetAll(ctx context.Context) ([]models.Categoria, error) {
	categorias := []models.Categoria{}
	if err := r.db.WithContext(ctx).Order("nome ASC").Find(&categorias).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categorias: %w", translate(err))
	}
	return categorias, nil
}

// GetByID retrieves a single category by its ID.
func (r *GORMCategoriaRepository) GetByID(ctx context.Context, id uint) (*models.Categoria, error) {
	var categoria models.Categoria
	if err := r.db.WithContext(ctx).First(&categoria, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get categoria %d: %w", id, translate(err))
	}
	return &categoria, nil
}

// Create inserts a new category.
func (r *GORMCategoriaRepository) Create(ctx context.Context, categoria *models.Categoria) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(categoria).Error; err != nil {
		return fmt.Errorf("failed to create categoria: %w", translate(err))
	}
	return nil
}

// Update writes every column of categoria.
func (r *GORMCategoriaRepository) Update(ctx context.Context, categoria *models.Categoria) error {
	res := r.db.WithContext(ctx).Model(categoria).Select("*").Omit(clause.Associations, "created_at").Updates(categoria)
	if res.Error != nil {
		return fmt.Errorf("failed to update categoria: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("categoria %d not found for update: %w", categoria.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a category. Categories still referenced by products fail
// with ErrForeignKey.
func (r *GORMCategoriaRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Categoria{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete categoria: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("categoria %d not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// CountProdutos counts the products in a category.
func (r *GORMCategoriaRepository) CountProdutos(ctx context.Context, id uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Produto{}).Where("categoria_id = ?", id).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count produtos of categoria %d: %w", id, translate(err))
	}
	return n, nil
}
