package services

import (
	"context"
	"errors"
	"fmt"

	"loja/internal/models"
	"loja/internal/repositories"
	"loja/internal/validation"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RoutingKeyPedidoCriado is published after an order is stored.
const RoutingKeyPedidoCriado = "pedido.criado"

const (
	msgPedidoNaoEncontrado      = "Pedido não encontrado"
	msgItemNaoEncontrado        = "Item do pedido não encontrado"
	msgPedidoClienteInexistente = "Cliente não encontrado"
	msgTotalExcedido            = "Total do pedido excede o valor máximo permitido"
)

// EventPublisher delivers domain events. pkg/rabbitmq.Client implements it.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// PedidoCriado is the payload of RoutingKeyPedidoCriado.
type PedidoCriado struct {
	PedidoID  uint            `json:"pedidoId"`
	ClienteID uint            `json:"clienteId"`
	Data      string          `json:"data"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
}

// PedidoService handles business logic related to orders.
type PedidoService struct {
	pedidos   repositories.PedidoRepository
	clientes  repositories.ClienteRepository
	produtos  repositories.ProdutoRepository
	publisher EventPublisher
}

// NewPedidoService creates a new PedidoService. publisher may be nil.
func NewPedidoService(pedidos repositories.PedidoRepository, clientes repositories.ClienteRepository, produtos repositories.ProdutoRepository, publisher EventPublisher) *PedidoService {
	return &PedidoService{
		pedidos:   pedidos,
		clientes:  clientes,
		produtos:  produtos,
		publisher: publisher,
	}
}

// FindAll retrieves all orders, newest first.
func (s *PedidoService) FindAll(ctx context.Context) ([]models.Pedido, error) {
	return s.pedidos.GetAll(ctx)
}

// FindByID returns the order with its client and items, or nil when it does
// not exist.
func (s *PedidoService) FindByID(ctx context.Context, id uint) (*models.Pedido, error) {
	pedido, err := s.pedidos.GetByID(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	return pedido, err
}

// Create validates input, checks the client and stores an empty order.
func (s *PedidoService) Create(ctx context.Context, input validation.PedidoInput) (*models.Pedido, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	data, err := validation.ParseDate(*input.DataPedido)
	if err != nil {
		return nil, err
	}
	clienteID := uint(*input.ClienteID)
	if err := s.checkCliente(ctx, clienteID); err != nil {
		return nil, err
	}

	pedido := &models.Pedido{
		ClienteID: clienteID,
		Data:      data,
		Status:    models.StatusPendente,
		Total:     decimal.Zero,
	}
	if input.Status != nil {
		pedido.Status = *input.Status
	}
	if err := s.pedidos.Create(ctx, pedido); err != nil {
		return nil, s.translate(err)
	}

	s.publish(ctx, RoutingKeyPedidoCriado, PedidoCriado{
		PedidoID:  pedido.ID,
		ClienteID: pedido.ClienteID,
		Data:      pedido.Data.Format("2006-01-02T15:04:05.000Z07:00"),
		Status:    pedido.Status,
		Total:     pedido.Total,
	})

	return s.pedidos.GetByID(ctx, pedido.ID)
}

// Update applies the fields present in input. Items are changed through
// AddItem and RemoveItem.
func (s *PedidoService) Update(ctx context.Context, id uint, input validation.PedidoInput) (*models.Pedido, error) {
	if err := validation.Partial(input); err != nil {
		return nil, err
	}
	pedido, err := s.pedidos.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(err)
	}

	if input.ClienteID != nil && uint(*input.ClienteID) != pedido.ClienteID {
		clienteID := uint(*input.ClienteID)
		if err := s.checkCliente(ctx, clienteID); err != nil {
			return nil, err
		}
		pedido.ClienteID = clienteID
	}
	if input.DataPedido != nil {
		data, err := validation.ParseDate(*input.DataPedido)
		if err != nil {
			return nil, err
		}
		pedido.Data = data
	}
	if input.Status != nil {
		pedido.Status = *input.Status
	}

	if err := s.pedidos.Update(ctx, pedido); err != nil {
		return nil, s.translate(err)
	}
	return s.pedidos.GetByID(ctx, id)
}

// Delete removes the order and its items, returning their stock.
func (s *PedidoService) Delete(ctx context.Context, id uint) error {
	if err := s.pedidos.Delete(ctx, id); err != nil {
		return s.translate(err)
	}
	return nil
}

// AddItem appends a product line to the order at pedidoID. The unit price
// defaults to the product's current price.
func (s *PedidoService) AddItem(ctx context.Context, pedidoID uint, input validation.PedidoItemInput) (*models.Pedido, error) {
	id := int(pedidoID)
	input.PedidoID = &id
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	pedido, err := s.pedidos.GetByID(ctx, pedidoID)
	if err != nil {
		return nil, s.translate(err)
	}
	produto, err := s.produtos.GetByID(ctx, uint(*input.ProdutoID))
	if isNotFound(err) {
		return nil, newError(ErrInvalidReference, msgProdutoNaoEncontrado)
	}
	if err != nil {
		return nil, err
	}
	if produto.Estoque < *input.Quantidade {
		return nil, insufficientStock(produto)
	}

	item := &models.PedidoItem{
		PedidoID:      pedidoID,
		ProdutoID:     produto.ID,
		Quantidade:    *input.Quantidade,
		PrecoUnitario: produto.Preco,
	}
	if input.PrecoUnitario != nil {
		item.PrecoUnitario = input.PrecoUnitario.Decimal
	}
	if pedido.Total.Add(item.Subtotal()).GreaterThanOrEqual(validation.MaxAmount) {
		return nil, newError(ErrConflict, msgTotalExcedido)
	}

	if err := s.pedidos.AddItem(ctx, item); err != nil {
		switch {
		case errors.Is(err, repositories.ErrInsufficientStock):
			return nil, insufficientStock(produto)
		case errors.Is(err, repositories.ErrForeignKey):
			return nil, newError(ErrInvalidReference, msgProdutoNaoEncontrado)
		}
		return nil, s.translate(err)
	}
	return s.pedidos.GetByID(ctx, pedidoID)
}

// RemoveItem deletes one item of the order and returns its stock.
func (s *PedidoService) RemoveItem(ctx context.Context, pedidoID, itemID uint) error {
	if _, err := s.pedidos.GetByID(ctx, pedidoID); err != nil {
		return s.translate(err)
	}
	if err := s.pedidos.RemoveItem(ctx, pedidoID, itemID); err != nil {
		if isNotFound(err) {
			return newError(ErrNotFound, msgItemNaoEncontrado)
		}
		return err
	}
	return nil
}

func (s *PedidoService) checkCliente(ctx context.Context, id uint) error {
	exists, err := s.clientes.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return newError(ErrInvalidReference, msgPedidoClienteInexistente)
	}
	return nil
}

func (s *PedidoService) publish(ctx context.Context, routingKey string, payload interface{}) {
	if s.publisher == nil {
		log.Ctx(ctx).Debug().Str("routing_key", routingKey).Msg("event publisher not configured, skipping")
		return
	}
	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("routing_key", routingKey).Msg("failed to publish event")
		return
	}
	log.Ctx(ctx).Debug().Str("routing_key", routingKey).Msg("event published")
}

func (s *PedidoService) translate(err error) error {
	switch {
	case isNotFound(err):
		return newError(ErrNotFound, msgPedidoNaoEncontrado)
	case errors.Is(err, repositories.ErrForeignKey):
		return newError(ErrInvalidReference, msgPedidoClienteInexistente)
	}
	return err
}

func insufficientStock(produto *models.Produto) *Error {
	return newError(ErrInsufficientStock,
		fmt.Sprintf("Estoque insuficiente para o produto %s (disponível: %d)", produto.Nome, produto.Estoque))
}
