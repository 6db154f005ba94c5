package repositories

import (
	"context"
	"fmt"

	"loja/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMClienteRepository is a GORM implementation of ClienteRepository.
type GORMClienteRepository struct {
	db *gorm.DB
}

// NewGORMClienteRepository creates a new instance of GORMClienteRepository.
func NewGORMClienteRepository(db *gorm.DB) *GORMClienteRepository {
	return &GORMClienteRepository{db: db}
}

func pedidosNewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("data DESC").Order("id DESC")
}

// GetAll runs two queries: clients, then the summary columns of their
// orders. The per-client cut happens here because a LIMIT on a preload
// would apply to all clients together.
func (r *GORMClienteRepository) GetAll(ctx context.Context, recentPedidos int) ([]models.Cliente, error) {
	db := r.db.WithContext(ctx)

	clientes := []models.Cliente{}
	if err := db.Order("nome ASC").Order("id ASC").Find(&clientes).Error; err != nil {
		return nil, fmt.Errorf("failed to get all clientes: %w", translate(err))
	}
	if len(clientes) == 0 || recentPedidos <= 0 {
		return clientes, nil
	}

	ids := make([]uint, len(clientes))
	for i, c := range clientes {
		ids[i] = c.ID
	}

	var pedidos []models.Pedido
	err := db.Select("id", "cliente_id", "data", "total", "status").
		Where("cliente_id IN ?", ids).
		Scopes(pedidosNewestFirst).
		Find(&pedidos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pedidos of clientes: %w", translate(err))
	}

	byCliente := make(map[uint][]models.Pedido, len(clientes))
	for _, p := range pedidos {
		if len(byCliente[p.ClienteID]) < recentPedidos {
			byCliente[p.ClienteID] = append(byCliente[p.ClienteID], p)
		}
	}
	for i := range clientes {
		clientes[i].Pedidos = byCliente[clientes[i].ID]
	}
	return clientes, nil
}

// GetByID retrieves a client with every order, its items, their products and
// the products' categories.
func (r *GORMClienteRepository) GetByID(ctx context.Context, id uint) (*models.Cliente, error) {
	var cliente models.Cliente
	err := r.db.WithContext(ctx).
		Preload("Pedidos", pedidosNewestFirst).
		Preload("Pedidos.Itens").
		Preload("Pedidos.Itens.Produto").
		Preload("Pedidos.Itens.Produto.Categoria").
		First(&cliente, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cliente %d: %w", id, translate(err))
	}
	return &cliente, nil
}

// GetByEmail retrieves a client by email with orders, items and products.
func (r *GORMClienteRepository) GetByEmail(ctx context.Context, email string) (*models.Cliente, error) {
	var cliente models.Cliente
	err := r.db.WithContext(ctx).
		Preload("Pedidos", pedidosNewestFirst).
		Preload("Pedidos.Itens").
		Preload("Pedidos.Itens.Produto").
		Where("email = ?", email).
		First(&cliente).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cliente by email %s: %w", email, translate(err))
	}
	return &cliente, nil
}

func (r *GORMClienteRepository) exists(ctx context.Context, column, value string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Cliente{}).Where(column+" = ?", value).Limit(1).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to check cliente %s: %w", column, translate(err))
	}
	return n > 0, nil
}

// Exists reports whether a client with id exists.
func (r *GORMClienteRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Cliente{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check cliente %d: %w", id, translate(err))
	}
	return n > 0, nil
}

// EmailExists reports whether any client uses email.
func (r *GORMClienteRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

// CPFExists reports whether any client uses cpf.
func (r *GORMClienteRepository) CPFExists(ctx context.Context, cpf string) (bool, error) {
	return r.exists(ctx, "cpf", cpf)
}

// Create inserts a client. A concurrent duplicate email/CPF fails with ErrDuplicate.
func (r *GORMClienteRepository) Create(ctx context.Context, cliente *models.Cliente) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(cliente).Error; err != nil {
		return fmt.Errorf("failed to create cliente: %w", translate(err))
	}
	return nil
}

// Update writes every column of cliente.
func (r *GORMClienteRepository) Update(ctx context.Context, cliente *models.Cliente) error {
	res := r.db.WithContext(ctx).Model(cliente).Select("*").Omit(clause.Associations, "created_at").Updates(cliente)
	if res.Error != nil {
		return fmt.Errorf("failed to update cliente: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cliente %d not found for update: %w", cliente.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a client. Clients with orders fail with ErrForeignKey.
func (r *GORMClienteRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Cliente{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cliente: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cliente %d not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// CountPedidos counts the orders a client owns.
func (r *GORMClienteRepository) CountPedidos(ctx context.Context, id uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Pedido{}).Where("cliente_id = ?", id).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count pedidos of cliente %d: %w", id, translate(err))
	}
	return n, nil
}

// Count returns the number of clients.
func (r *GORMClienteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Cliente{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count clientes: %w", translate(err))
	}
	return n, nil
}
