package repositories

import (
	"context"

	"loja/internal/models"
)

// ClienteRepository defines the interface for client data access.
type ClienteRepository interface {
	// GetAll lists clients by name, each with its most recent pedidos
	// (at most recentPedidos, newest first).
	GetAll(ctx context.Context, recentPedidos int) ([]models.Cliente, error)
	// GetByID loads the client with its full order history.
	GetByID(ctx context.Context, id uint) (*models.Cliente, error)
	GetByEmail(ctx context.Context, email string) (*models.Cliente, error)
	Exists(ctx context.Context, id uint) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CPFExists(ctx context.Context, cpf string) (bool, error)
	Create(ctx context.Context, cliente *models.Cliente) error
	Update(ctx context.Context, cliente *models.Cliente) error
	Delete(ctx context.Context, id uint) error
	CountPedidos(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}
