package services

import (
	"context"
	"errors"

	"loja/internal/models"
	"loja/internal/repositories"
	"loja/internal/validation"
)

// RecentPedidos is how many orders each client carries in listings.
const RecentPedidos = 5

const (
	msgClienteNaoEncontrado = "Cliente não encontrado"
	msgEmailDuplicado       = "Email já cadastrado"
	msgCPFDuplicado         = "CPF já cadastrado"
	msgEmailOuCPFDuplicado  = "Email ou CPF já cadastrado"
	msgClienteComPedidos    = "Não é possível excluir cliente com pedidos associados"
)

// ClienteService handles business logic related to clients.
type ClienteService struct {
	repo repositories.ClienteRepository
}

// NewClienteService creates a new ClienteService.
func NewClienteService(repo repositories.ClienteRepository) *ClienteService {
	return &ClienteService{repo: repo}
}

// FindAll lists clients by name, each with its most recent orders.
func (s *ClienteService) FindAll(ctx context.Context) ([]models.Cliente, error) {
	return s.repo.GetAll(ctx, RecentPedidos)
}

// FindByID returns the client with its full order history, or nil when it
// does not exist.
func (s *ClienteService) FindByID(ctx context.Context, id uint) (*models.Cliente, error) {
	cliente, err := s.repo.GetByID(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	return cliente, err
}

// FindByEmail returns nil without error when no client uses email.
func (s *ClienteService) FindByEmail(ctx context.Context, email string) (*models.Cliente, error) {
	cliente, err := s.repo.GetByEmail(ctx, email)
	if isNotFound(err) {
		return nil, nil
	}
	return cliente, err
}

// Count returns how many clients exist.
func (s *ClienteService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Create validates input, rejects a taken email or CPF and stores the client.
func (s *ClienteService) Create(ctx context.Context, input validation.ClienteInput) (*models.Cliente, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := s.checkEmail(ctx, *input.Email); err != nil {
		return nil, err
	}
	if err := s.checkCPF(ctx, *input.CPF); err != nil {
		return nil, err
	}

	cliente := &models.Cliente{
		Nome:     *input.Nome,
		Email:    *input.Email,
		CPF:      *input.CPF,
		Telefone: input.Telefone,
	}
	if err := s.repo.Create(ctx, cliente); err != nil {
		return nil, s.translate(err)
	}
	return cliente, nil
}

// Update applies the fields present in input. Email and CPF are checked for
// uniqueness only when they change.
func (s *ClienteService) Update(ctx context.Context, id uint, input validation.ClienteInput) (*models.Cliente, error) {
	if err := validation.Partial(input); err != nil {
		return nil, err
	}
	cliente, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(err)
	}

	if input.Email != nil && *input.Email != cliente.Email {
		if err := s.checkEmail(ctx, *input.Email); err != nil {
			return nil, err
		}
		cliente.Email = *input.Email
	}
	if input.CPF != nil && *input.CPF != cliente.CPF {
		if err := s.checkCPF(ctx, *input.CPF); err != nil {
			return nil, err
		}
		cliente.CPF = *input.CPF
	}
	if input.Nome != nil {
		cliente.Nome = *input.Nome
	}
	if input.Telefone != nil {
		cliente.Telefone = input.Telefone
	}

	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, s.translate(err)
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes a client that owns no orders.
func (s *ClienteService) Delete(ctx context.Context, id uint) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return newError(ErrNotFound, msgClienteNaoEncontrado)
	}

	n, err := s.repo.CountPedidos(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return newError(ErrConflict, msgClienteComPedidos)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(err)
	}
	return nil
}

func (s *ClienteService) checkEmail(ctx context.Context, email string) error {
	taken, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return newError(ErrDuplicate, msgEmailDuplicado)
	}
	return nil
}

func (s *ClienteService) checkCPF(ctx context.Context, cpf string) error {
	taken, err := s.repo.CPFExists(ctx, cpf)
	if err != nil {
		return err
	}
	if taken {
		return newError(ErrDuplicate, msgCPFDuplicado)
	}
	return nil
}

func (s *ClienteService) translate(err error) error {
	switch {
	case isNotFound(err):
		return newError(ErrNotFound, msgClienteNaoEncontrado)
	case errors.Is(err, repositories.ErrDuplicate):
		return newError(ErrDuplicate, msgEmailOuCPFDuplicado)
	case errors.Is(err, repositories.ErrForeignKey):
		return newError(ErrConflict, msgClienteComPedidos)
	}
	return err
}
