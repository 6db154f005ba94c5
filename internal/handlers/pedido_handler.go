package handlers

import (
	"loja/internal/services"
	"loja/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PedidoHandler handles HTTP requests for orders and their items.
type PedidoHandler struct {
	service *services.PedidoService
}

// NewPedidoHandler creates a new PedidoHandler.
func NewPedidoHandler(service *services.PedidoService) *PedidoHandler {
	return &PedidoHandler{service: service}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *PedidoHandler) RegisterRoutes(router fiber.Router) {
	pedidos := router.Group("/pedidos")
	pedidos.Get("/", h.HandleGetPedidos)
	pedidos.Get("/:id", h.HandleGetPedidoByID)
	pedidos.Post("/", h.HandleCreatePedido)
	pedidos.Put("/:id", h.HandleUpdatePedido)
	pedidos.Patch("/:id", h.HandleUpdatePedido)
	pedidos.Delete("/:id", h.HandleDeletePedido)
	pedidos.Post("/:id/itens", h.HandleAddItem)
	pedidos.Delete("/:id/itens/:itemId", h.HandleRemoveItem)
}

// HandleGetPedidos lists every order, newest first.
func (h *PedidoHandler) HandleGetPedidos(c *fiber.Ctx) error {
	pedidos, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return respondError(c, err, "buscar pedidos")
	}
	return c.JSON(pedidos)
}

// HandleGetPedidoByID retrieves an order with its client and items.
func (h *PedidoHandler) HandleGetPedidoByID(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "buscar pedido")
	}
	pedido, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "buscar pedido")
	}
	if pedido == nil {
		return notFound(c, "Pedido não encontrado")
	}
	return c.JSON(pedido)
}

// HandleCreatePedido creates an empty order for a client.
func (h *PedidoHandler) HandleCreatePedido(c *fiber.Ctx) error {
	var input validation.PedidoInput
	if err := parseBody(c, &input); err != nil {
		return respondError(c, err, "criar pedido")
	}
	pedido, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "criar pedido")
	}
	return c.Status(fiber.StatusCreated).JSON(pedido)
}

// HandleUpdatePedido serves both PUT and PATCH.
func (h *PedidoHandler) HandleUpdatePedido(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "atualizar pedido")
	}
	var input validation.PedidoInput
	if err := parseBody(c, &input); err != nil {
		return respondError(c, err, "atualizar pedido")
	}
	pedido, err := h.service.Update(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err, "atualizar pedido")
	}
	return c.JSON(pedido)
}

// HandleDeletePedido deletes an order and restocks its items.
func (h *PedidoHandler) HandleDeletePedido(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "excluir pedido")
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "excluir pedido")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAddItem adds a product line and responds with the updated order.
func (h *PedidoHandler) HandleAddItem(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "adicionar item ao pedido")
	}
	var input validation.PedidoItemInput
	if err := parseBody(c, &input); err != nil {
		return respondError(c, err, "adicionar item ao pedido")
	}
	pedido, err := h.service.AddItem(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err, "adicionar item ao pedido")
	}
	return c.Status(fiber.StatusCreated).JSON(pedido)
}

// HandleRemoveItem removes one item from an order.
func (h *PedidoHandler) HandleRemoveItem(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "remover item do pedido")
	}
	itemID, err := validation.ParseID(c.Params("itemId"))
	if err != nil {
		return respondError(c, err, "remover item do pedido")
	}
	if err := h.service.RemoveItem(c.UserContext(), id, itemID); err != nil {
		return respondError(c, err, "remover item do pedido")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
