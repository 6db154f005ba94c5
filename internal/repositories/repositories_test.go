package repositories_test

import (
	"context"
	"testing"
	"time"

	"loja/internal/models"
	"loja/internal/repositories"
	"loja/internal/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	categorias *repositories.GORMCategoriaRepository
	produtos   *repositories.GORMProdutoRepository
	clientes   *repositories.GORMClienteRepository
	pedidos    *repositories.GORMPedidoRepository
}

func newFixture(t *testing.T) *fixture {
	db := testdb.Open(t)
	return &fixture{
		db:         db,
		categorias: repositories.NewGORMCategoriaRepository(db),
		produtos:   repositories.NewGORMProdutoRepository(db),
		clientes:   repositories.NewGORMClienteRepository(db),
		pedidos:    repositories.NewGORMPedidoRepository(db),
	}
}

func (f *fixture) categoria(t *testing.T, nome string) *models.Categoria {
	c := &models.Categoria{Nome: nome}
	require.NoError(t, f.categorias.Create(context.Background(), c))
	return c
}

func (f *fixture) produto(t *testing.T, nome string, categoriaID uint, preco string, estoque int) *models.Produto {
	p := &models.Produto{Nome: nome, Preco: decimal.RequireFromString(preco), Estoque: estoque, CategoriaID: categoriaID}
	require.NoError(t, f.produtos.Create(context.Background(), p))
	return p
}

func (f *fixture) cliente(t *testing.T, nome, email, cpf string) *models.Cliente {
	c := &models.Cliente{Nome: nome, Email: email, CPF: cpf}
	require.NoError(t, f.clientes.Create(context.Background(), c))
	return c
}

func (f *fixture) pedido(t *testing.T, clienteID uint, data time.Time) *models.Pedido {
	p := &models.Pedido{ClienteID: clienteID, Data: data, Status: models.StatusPendente, Total: decimal.Zero}
	require.NoError(t, f.pedidos.Create(context.Background(), p))
	return p
}

func (f *fixture) estoque(t *testing.T, produtoID uint) int {
	p, err := f.produtos.GetByID(context.Background(), produtoID)
	require.NoError(t, err)
	return p.Estoque
}

func TestCategoriaRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.categoria(t, "Livros")
	eletronicos := f.categoria(t, "Eletrônicos")

	all, err := f.categorias.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Eletrônicos", all[0].Nome)
	assert.Equal(t, "Livros", all[1].Nome)

	eletronicos.Nome = "Informática"
	require.NoError(t, f.categorias.Update(ctx, eletronicos))
	got, err := f.categorias.GetByID(ctx, eletronicos.ID)
	require.NoError(t, err)
	assert.Equal(t, "Informática", got.Nome)

	require.NoError(t, f.categorias.Delete(ctx, eletronicos.ID))
	_, err = f.categorias.GetByID(ctx, eletronicos.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCategoriaRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := f.categorias.Update(ctx, &models.Categoria{ID: 42, Nome: "Nada"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = f.categorias.Delete(ctx, 42)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCategoriaRepository_DeleteWithProdutos(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c := f.categoria(t, "Livros")
	f.produto(t, "Go em Ação", c.ID, "89.90", 3)

	n, err := f.categorias.CountProdutos(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	err = f.categorias.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, repositories.ErrForeignKey)
}

func TestProdutoRepository_FilterByCategoria(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	livros := f.categoria(t, "Livros")
	jogos := f.categoria(t, "Jogos")
	f.produto(t, "Xadrez", jogos.ID, "120.00", 2)
	f.produto(t, "Dom Casmurro", livros.ID, "35.50", 10)
	f.produto(t, "Banco Imobiliário", jogos.ID, "99.99", 4)

	all, err := f.produtos.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := f.produtos.GetAll(ctx, &jogos.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "Banco Imobiliário", filtered[0].Nome)
	assert.Equal(t, "Xadrez", filtered[1].Nome)
	for _, p := range filtered {
		assert.Equal(t, jogos.ID, p.CategoriaID)
		require.NotNil(t, p.Categoria)
		assert.Equal(t, "Jogos", p.Categoria.Nome)
	}

	var none uint = 999
	empty, err := f.produtos.GetAll(ctx, &none)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProdutoRepository_InvalidCategoria(t *testing.T) {
	f := newFixture(t)

	p := &models.Produto{Nome: "Órfão", Preco: decimal.NewFromInt(1), Estoque: 1, CategoriaID: 999}
	err := f.produtos.Create(context.Background(), p)
	assert.ErrorIs(t, err, repositories.ErrForeignKey)
}

func TestProdutoRepository_UpdateKeepsPrecision(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c := f.categoria(t, "Livros")
	p := f.produto(t, "Dom Casmurro", c.ID, "35.50", 10)

	p.Preco = decimal.RequireFromString("42.25")
	p.Estoque = 0
	require.NoError(t, f.produtos.Update(ctx, p))

	got, err := f.produtos.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("42.25").Equal(got.Preco), got.Preco.String())
	assert.Equal(t, 0, got.Estoque)
}

func TestClienteRepository_UniqueEmailAndCPF(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.cliente(t, "Ana", "ana@example.com", "12345678901")

	exists, err := f.clientes.EmailExists(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = f.clientes.CPFExists(ctx, "10987654321")
	require.NoError(t, err)
	assert.False(t, exists)

	err = f.clientes.Create(ctx, &models.Cliente{Nome: "Bia", Email: "ana@example.com", CPF: "10987654321"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	err = f.clientes.Create(ctx, &models.Cliente{Nome: "Bia", Email: "bia@example.com", CPF: "12345678901"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	n, err := f.clientes.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestClienteRepository_GetAllKeepsFiveMostRecentPedidos(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	bruno := f.cliente(t, "Bruno", "bruno@example.com", "11111111111")
	ana := f.cliente(t, "Ana", "ana@example.com", "22222222222")

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		f.pedido(t, bruno.ID, base.AddDate(0, 0, i))
	}
	f.pedido(t, ana.ID, base)

	clientes, err := f.clientes.GetAll(ctx, 5)
	require.NoError(t, err)
	require.Len(t, clientes, 2)

	assert.Equal(t, "Ana", clientes[0].Nome)
	assert.Len(t, clientes[0].Pedidos, 1)

	assert.Equal(t, "Bruno", clientes[1].Nome)
	require.Len(t, clientes[1].Pedidos, 5)
	for i, p := range clientes[1].Pedidos {
		assert.True(t, base.AddDate(0, 0, 6-i).Equal(p.Data), "pedido %d out of order: %s", i, p.Data)
	}
}

func TestClienteRepository_GetByIDLoadsHistory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c := f.cliente(t, "Ana", "ana@example.com", "12345678901")
	cat := f.categoria(t, "Livros")
	prod := f.produto(t, "Dom Casmurro", cat.ID, "35.50", 10)
	ped := f.pedido(t, c.ID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, f.pedidos.AddItem(ctx, &models.PedidoItem{
		PedidoID: ped.ID, ProdutoID: prod.ID, Quantidade: 2, PrecoUnitario: prod.Preco,
	}))

	got, err := f.clientes.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Pedidos, 1)
	require.Len(t, got.Pedidos[0].Itens, 1)
	item := got.Pedidos[0].Itens[0]
	require.NotNil(t, item.Produto)
	require.NotNil(t, item.Produto.Categoria)
	assert.Equal(t, "Livros", item.Produto.Categoria.Nome)

	byEmail, err := f.clientes.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byEmail.ID)

	_, err = f.clientes.GetByEmail(ctx, "ninguem@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestClienteRepository_DeleteWithPedidos(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c := f.cliente(t, "Ana", "ana@example.com", "12345678901")
	f.pedido(t, c.ID, time.Now().UTC())

	n, err := f.clientes.CountPedidos(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	err = f.clientes.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, repositories.ErrForeignKey)
}

func TestPedidoRepository_ItensAdjustStockAndTotal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c := f.cliente(t, "Ana", "ana@example.com", "12345678901")
	cat := f.categoria(t, "Livros")
	livro := f.produto(t, "Dom Casmurro", cat.ID, "35.50", 10)
	caneta := f.produto(t, "Caneta", cat.ID, "2.25", 5)
	ped := f.pedido(t, c.ID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	first := &models.PedidoItem{PedidoID: ped.ID, ProdutoID: livro.ID, Quantidade: 2, PrecoUnitario: livro.Preco}
	require.NoError(t, f.pedidos.AddItem(ctx, first))
	require.NoError(t, f.pedidos.AddItem(ctx, &models.PedidoItem{
		PedidoID: ped.ID, ProdutoID: caneta.ID, Quantidade: 4, PrecoUnitario: caneta.Preco,
	}))

	got, err := f.pedidos.GetByID(ctx, ped.ID)
	require.NoError(t, err)
	require.Len(t, got.Itens, 2)
	require.NotNil(t, got.Cliente)
	assert.True(t, decimal.RequireFromString("80").Equal(got.Total), got.Total.String())
	assert.Equal(t, 8, f.estoque(t, livro.ID))
	assert.Equal(t, 1, f.estoque(t, caneta.ID))

	err = f.pedidos.AddItem(ctx, &models.PedidoItem{
		PedidoID: ped.ID, ProdutoID: caneta.ID, Quantidade: 2, PrecoUnitario: caneta.Preco,
	})
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)
	assert.Equal(t, 1, f.estoque(t, caneta.ID))

	require.NoError(t, f.pedidos.RemoveItem(ctx, ped.ID, first.ID))
	got, err = f.pedidos.GetByID(ctx, ped.ID)
	require.NoError(t, err)
	assert.Len(t, got.Itens, 1)
	assert.True(t, decimal.RequireFromString("9").Equal(got.Total), got.Total.String())
	assert.Equal(t, 10, f.estoque(t, livro.ID))

	err = f.pedidos.RemoveItem(ctx, ped.ID, first.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestPedidoRepository_AddItemUnknownPedido(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	cat := f.categoria(t, "Livros")
	livro := f.produto(t, "Dom Casmurro", cat.ID, "35.50", 10)

	err := f.pedidos.AddItem(ctx, &models.PedidoItem{PedidoID: 99, ProdutoID: livro.ID, Quantidade: 1, PrecoUnitario: livro.Preco})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Equal(t, 10, f.estoque(t, livro.ID))
}

func TestPedidoRepository_DeleteRestoresStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c := f.cliente(t, "Ana", "ana@example.com", "12345678901")
	cat := f.categoria(t, "Livros")
	livro := f.produto(t, "Dom Casmurro", cat.ID, "35.50", 10)
	ped := f.pedido(t, c.ID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, f.pedidos.AddItem(ctx, &models.PedidoItem{
		PedidoID: ped.ID, ProdutoID: livro.ID, Quantidade: 3, PrecoUnitario: livro.Preco,
	}))
	assert.Equal(t, 7, f.estoque(t, livro.ID))

	n, err := f.produtos.CountItens(ctx, livro.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.ErrorIs(t, f.produtos.Delete(ctx, livro.ID), repositories.ErrForeignKey)

	require.NoError(t, f.pedidos.Delete(ctx, ped.ID))
	assert.Equal(t, 10, f.estoque(t, livro.ID))

	_, err = f.pedidos.GetByID(ctx, ped.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, f.pedidos.Delete(ctx, ped.ID), repositories.ErrNotFound)

	n, err = f.produtos.CountItens(ctx, livro.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, f.produtos.Delete(ctx, livro.ID))
}

func TestPedidoRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	c := f.cliente(t, "Ana", "ana@example.com", "12345678901")
	ped := f.pedido(t, c.ID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	ped.Status = models.StatusPago
	require.NoError(t, f.pedidos.Update(ctx, ped))

	all, err := f.pedidos.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusPago, all[0].Status)

	err = f.pedidos.Update(ctx, &models.Pedido{ID: 99, ClienteID: c.ID, Data: time.Now().UTC(), Status: models.StatusPago})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
