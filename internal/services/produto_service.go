package services

import (
	"context"
	"errors"

	"loja/internal/models"
	"loja/internal/repositories"
	"loja/internal/validation"
)

const (
	msgProdutoNaoEncontrado = "Produto não encontrado"
	msgProdutoComItens      = "Não é possível excluir produto com itens de pedido associados"
)

// ProdutoService handles business logic related to products.
type ProdutoService struct {
	produtos   repositories.ProdutoRepository
	categorias repositories.CategoriaRepository
}

// NewProdutoService creates a new ProdutoService.
func NewProdutoService(produtos repositories.ProdutoRepository, categorias repositories.CategoriaRepository) *ProdutoService {
	return &ProdutoService{
		produtos:   produtos,
		categorias: categorias,
	}
}

// FindAll retrieves all products, narrowed by filter.
func (s *ProdutoService) FindAll(ctx context.Context, filter validation.ProdutoFilter) ([]models.Produto, error) {
	return s.produtos.GetAll(ctx, filter.CategoriaID)
}

// FindByID returns nil without error when the product does not exist.
func (s *ProdutoService) FindByID(ctx context.Context, id uint) (*models.Produto, error) {
	produto, err := s.produtos.GetByID(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	return produto, err
}

// Create validates input, checks the category and stores a new product.
func (s *ProdutoService) Create(ctx context.Context, input validation.ProdutoInput) (*models.Produto, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	categoriaID := uint(*input.CategoriaID)
	if err := s.checkCategoria(ctx, categoriaID); err != nil {
		return nil, err
	}

	produto := &models.Produto{
		Nome:        *input.Nome,
		Preco:       input.Preco.Decimal,
		Estoque:     *input.Estoque,
		CategoriaID: categoriaID,
	}
	if err := s.produtos.Create(ctx, produto); err != nil {
		return nil, s.translate(err)
	}
	return s.produtos.GetByID(ctx, produto.ID)
}

// Update applies the fields present in input.
func (s *ProdutoService) Update(ctx context.Context, id uint, input validation.ProdutoInput) (*models.Produto, error) {
	if err := validation.Partial(input); err != nil {
		return nil, err
	}
	produto, err := s.produtos.GetByID(ctx, id)
	if isNotFound(err) {
		return nil, newError(ErrNotFound, msgProdutoNaoEncontrado)
	}
	if err != nil {
		return nil, err
	}

	if input.Nome != nil {
		produto.Nome = *input.Nome
	}
	if input.Preco != nil {
		produto.Preco = input.Preco.Decimal
	}
	if input.Estoque != nil {
		produto.Estoque = *input.Estoque
	}
	if input.CategoriaID != nil && uint(*input.CategoriaID) != produto.CategoriaID {
		categoriaID := uint(*input.CategoriaID)
		if err := s.checkCategoria(ctx, categoriaID); err != nil {
			return nil, err
		}
		produto.CategoriaID = categoriaID
	}

	if err := s.produtos.Update(ctx, produto); err != nil {
		return nil, s.translate(err)
	}
	return s.produtos.GetByID(ctx, id)
}

// Delete removes a product that no order item references.
func (s *ProdutoService) Delete(ctx context.Context, id uint) error {
	if _, err := s.produtos.GetByID(ctx, id); err != nil {
		return s.translate(err)
	}

	n, err := s.produtos.CountItens(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return newError(ErrConflict, msgProdutoComItens)
	}

	if err := s.produtos.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrForeignKey) {
			return newError(ErrConflict, msgProdutoComItens)
		}
		return s.translate(err)
	}
	return nil
}

func (s *ProdutoService) checkCategoria(ctx context.Context, id uint) error {
	_, err := s.categorias.GetByID(ctx, id)
	if isNotFound(err) {
		return newError(ErrInvalidReference, msgCategoriaNaoEncontrada)
	}
	return err
}

func (s *ProdutoService) translate(err error) error {
	switch {
	case isNotFound(err):
		return newError(ErrNotFound, msgProdutoNaoEncontrado)
	case errors.Is(err, repositories.ErrForeignKey):
		return newError(ErrInvalidReference, msgCategoriaNaoEncontrada)
	}
	return err
}
