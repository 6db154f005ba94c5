package repositories

import (
	"context"
	"fmt"

	"loja/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMPedidoRepository is a GORM implementation of PedidoRepository.
type GORMPedidoRepository struct {
	db *gorm.DB
}

// NewGORMPedidoRepository creates a new instance of GORMPedidoRepository.
func NewGORMPedidoRepository(db *gorm.DB) *GORMPedidoRepository {
	return &GORMPedidoRepository{db: db}
}

// GetAll retrieves every order with its items, newest first.
func (r *GORMPedidoRepository) GetAll(ctx context.Context) ([]models.Pedido, error) {
	pedidos := []models.Pedido{}
	err := r.db.WithContext(ctx).
		Preload("Itens").
		Scopes(pedidosNewestFirst).
		Find(&pedidos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all pedidos: %w", translate(err))
	}
	return pedidos, nil
}

// GetByID retrieves an order with its client and its items' products.
func (r *GORMPedidoRepository) GetByID(ctx context.Context, id uint) (*models.Pedido, error) {
	var pedido models.Pedido
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Itens", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Itens.Produto").
		First(&pedido, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pedido %d: %w", id, translate(err))
	}
	return &pedido, nil
}

// Create inserts an order without items.
func (r *GORMPedidoRepository) Create(ctx context.Context, pedido *models.Pedido) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(pedido).Error; err != nil {
		return fmt.Errorf("failed to create pedido: %w", translate(err))
	}
	return nil
}

// Update writes the order's own columns; items are managed separately.
func (r *GORMPedidoRepository) Update(ctx context.Context, pedido *models.Pedido) error {
	res := r.db.WithContext(ctx).Model(pedido).
		Select("cliente_id", "data", "status").
		Updates(pedido)
	if res.Error != nil {
		return fmt.Errorf("failed to update pedido: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("pedido %d not found for update: %w", pedido.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the order and its items and puts their quantities back in stock.
func (r *GORMPedidoRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var itens []models.PedidoItem
		if err := tx.Where("pedido_id = ?", id).Find(&itens).Error; err != nil {
			return translate(err)
		}
		for _, item := range itens {
			if err := restock(tx, item); err != nil {
				return err
			}
		}
		if err := tx.Where("pedido_id = ?", id).Delete(&models.PedidoItem{}).Error; err != nil {
			return translate(err)
		}

		res := tx.Delete(&models.Pedido{}, id)
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete pedido %d: %w", id, err)
	}
	return nil
}

// AddItem checks that the order exists, takes the quantity out of stock only
// if enough is available, inserts the item and recomputes the total.
func (r *GORMPedidoRepository) AddItem(ctx context.Context, item *models.PedidoItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Pedido{}, item.PedidoID).Error; err != nil {
			return translate(err)
		}

		res := tx.Model(&models.Produto{}).
			Where("id = ? AND estoque >= ?", item.ProdutoID, item.Quantidade).
			UpdateColumn("estoque", gorm.Expr("estoque - ?", item.Quantidade))
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
			return translate(err)
		}
		return recomputeTotal(tx, item.PedidoID)
	})
	if err != nil {
		return fmt.Errorf("failed to add item to pedido %d: %w", item.PedidoID, err)
	}
	return nil
}

// RemoveItem deletes one item, restocks it and recomputes the total.
func (r *GORMPedidoRepository) RemoveItem(ctx context.Context, pedidoID, itemID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.PedidoItem
		if err := tx.Where("id = ? AND pedido_id = ?", itemID, pedidoID).First(&item).Error; err != nil {
			return translate(err)
		}
		if err := restock(tx, item); err != nil {
			return err
		}
		if err := tx.Delete(&item).Error; err != nil {
			return translate(err)
		}
		return recomputeTotal(tx, pedidoID)
	})
	if err != nil {
		return fmt.Errorf("failed to remove item %d from pedido %d: %w", itemID, pedidoID, err)
	}
	return nil
}

func restock(tx *gorm.DB, item models.PedidoItem) error {
	err := tx.Model(&models.Produto{}).
		Where("id = ?", item.ProdutoID).
		UpdateColumn("estoque", gorm.Expr("estoque + ?", item.Quantidade)).Error
	return translate(err)
}

func recomputeTotal(tx *gorm.DB, pedidoID uint) error {
	var itens []models.PedidoItem
	if err := tx.Where("pedido_id = ?", pedidoID).Find(&itens).Error; err != nil {
		return translate(err)
	}
	total := decimal.Zero
	for _, item := range itens {
		total = total.Add(item.Subtotal())
	}
	err := tx.Model(&models.Pedido{}).Where("id = ?", pedidoID).Update("total", total).Error
	return translate(err)
}
