package services

import (
	"context"
	"errors"

	"loja/internal/models"
	"loja/internal/repositories"
	"loja/internal/validation"
)

const (
	msgCategoriaNaoEncontrada = "Categoria não encontrada"
	msgCategoriaComProdutos   = "Não é possível excluir categoria com produtos associados"
)

// CategoriaService handles business logic related to categories.
type CategoriaService struct {
	repo repositories.CategoriaRepository
}

// NewCategoriaService creates a new CategoriaService.
func NewCategoriaService(repo repositories.CategoriaRepository) *CategoriaService {
	return &CategoriaService{repo: repo}
}

// FindAll retrieves all categories.
func (s *CategoriaService) FindAll(ctx context.Context) ([]models.Categoria, error) {
	return s.repo.GetAll(ctx)
}

// FindByID returns nil without error when the category does not exist.
func (s *CategoriaService) FindByID(ctx context.Context, id uint) (*models.Categoria, error) {
	categoria, err := s.repo.GetByID(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	return categoria, err
}

// Create validates input and stores a new category.
func (s *CategoriaService) Create(ctx context.Context, input validation.CategoriaInput) (*models.Categoria, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	categoria := &models.Categoria{Nome: *input.Nome}
	if err := s.repo.Create(ctx, categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

// Update applies the fields present in input.
func (s *CategoriaService) Update(ctx context.Context, id uint, input validation.CategoriaInput) (*models.Categoria, error) {
	if err := validation.Partial(input); err != nil {
		return nil, err
	}
	categoria, err := s.repo.GetByID(ctx, id)
	if isNotFound(err) {
		return nil, newError(ErrNotFound, msgCategoriaNaoEncontrada)
	}
	if err != nil {
		return nil, err
	}

	if input.Nome != nil {
		categoria.Nome = *input.Nome
	}
	if err := s.repo.Update(ctx, categoria); err != nil {
		if isNotFound(err) {
			return nil, newError(ErrNotFound, msgCategoriaNaoEncontrada)
		}
		return nil, err
	}
	return categoria, nil
}

// Delete removes a category that no product references.
func (s *CategoriaService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return newError(ErrNotFound, msgCategoriaNaoEncontrada)
		}
		return err
	}

	n, err := s.repo.CountProdutos(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return newError(ErrConflict, msgCategoriaComProdutos)
	}

	err = s.repo.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case isNotFound(err):
		return newError(ErrNotFound, msgCategoriaNaoEncontrada)
	case errors.Is(err, repositories.ErrForeignKey):
		return newError(ErrConflict, msgCategoriaComProdutos)
	}
	return err
}
