package services_test

import (
	"context"

	"loja/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCategoriaRepository is a mock implementation of repositories.CategoriaRepository
type MockCategoriaRepository struct {
	mock.Mock
}

func (m *MockCategoriaRepository) GetAll(ctx context.Context) ([]models.Categoria, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Categoria), args.Error(1)
}

func (m *MockCategoriaRepository) GetByID(ctx context.Context, id uint) (*models.Categoria, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Categoria), args.Error(1)
}

func (m *MockCategoriaRepository) Create(ctx context.Context, categoria *models.Categoria) error {
	args := m.Called(ctx, categoria)
	return args.Error(0)
}

func (m *MockCategoriaRepository) Update(ctx context.Context, categoria *models.Categoria) error {
	args := m.Called(ctx, categoria)
	return args.Error(0)
}

func (m *MockCategoriaRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoriaRepository) CountProdutos(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockProdutoRepository is a mock implementation of repositories.ProdutoRepository
type MockProdutoRepository struct {
	mock.Mock
}

func (m *MockProdutoRepository) GetAll(ctx context.Context, categoriaID *uint) ([]models.Produto, error) {
	args := m.Called(ctx, categoriaID)
	return args.Get(0).([]models.Produto), args.Error(1)
}

func (m *MockProdutoRepository) GetByID(ctx context.Context, id uint) (*models.Produto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Produto), args.Error(1)
}

func (m *MockProdutoRepository) Create(ctx context.Context, produto *models.Produto) error {
	args := m.Called(ctx, produto)
	return args.Error(0)
}

func (m *MockProdutoRepository) Update(ctx context.Context, produto *models.Produto) error {
	args := m.Called(ctx, produto)
	return args.Error(0)
}

func (m *MockProdutoRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProdutoRepository) CountItens(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockClienteRepository is a mock implementation of repositories.ClienteRepository
type MockClienteRepository struct {
	mock.Mock
}

func (m *MockClienteRepository) GetAll(ctx context.Context, recentPedidos int) ([]models.Cliente, error) {
	args := m.Called(ctx, recentPedidos)
	return args.Get(0).([]models.Cliente), args.Error(1)
}

func (m *MockClienteRepository) GetByID(ctx context.Context, id uint) (*models.Cliente, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cliente), args.Error(1)
}

func (m *MockClienteRepository) GetByEmail(ctx context.Context, email string) (*models.Cliente, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cliente), args.Error(1)
}

func (m *MockClienteRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockClienteRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockClienteRepository) CPFExists(ctx context.Context, cpf string) (bool, error) {
	args := m.Called(ctx, cpf)
	return args.Bool(0), args.Error(1)
}

func (m *MockClienteRepository) Create(ctx context.Context, cliente *models.Cliente) error {
	args := m.Called(ctx, cliente)
	return args.Error(0)
}

func (m *MockClienteRepository) Update(ctx context.Context, cliente *models.Cliente) error {
	args := m.Called(ctx, cliente)
	return args.Error(0)
}

func (m *MockClienteRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClienteRepository) CountPedidos(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClienteRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockPedidoRepository is a mock implementation of repositories.PedidoRepository
type MockPedidoRepository struct {
	mock.Mock
}

func (m *MockPedidoRepository) GetAll(ctx context.Context) ([]models.Pedido, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) GetByID(ctx context.Context, id uint) (*models.Pedido, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) Create(ctx context.Context, pedido *models.Pedido) error {
	args := m.Called(ctx, pedido)
	return args.Error(0)
}

func (m *MockPedidoRepository) Update(ctx context.Context, pedido *models.Pedido) error {
	args := m.Called(ctx, pedido)
	return args.Error(0)
}

func (m *MockPedidoRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPedidoRepository) AddItem(ctx context.Context, item *models.PedidoItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPedidoRepository) RemoveItem(ctx context.Context, pedidoID, itemID uint) error {
	args := m.Called(ctx, pedidoID, itemID)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
