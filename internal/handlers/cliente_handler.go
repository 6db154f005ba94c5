package handlers

import (
	"net/url"

	"loja/internal/services"
	"loja/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ClienteHandler handles HTTP requests for clients.
type ClienteHandler struct {
	service *services.ClienteService
}

// NewClienteHandler creates a new ClienteHandler.
func NewClienteHandler(service *services.ClienteService) *ClienteHandler {
	return &ClienteHandler{service: service}
}

// RegisterRoutes registers the client routes with the Fiber app. The fixed
// paths go first so they are not captured by /:id.
func (h *ClienteHandler) RegisterRoutes(router fiber.Router) {
	clientes := router.Group("/clientes")
	clientes.Get("/contagem", h.HandleCountClientes)
	clientes.Get("/email/:email", h.HandleGetClienteByEmail)
	clientes.Get("/", h.HandleGetClientes)
	clientes.Get("/:id", h.HandleGetClienteByID)
	clientes.Post("/", h.HandleCreateCliente)
	clientes.Put("/:id", h.HandleUpdateCliente)
	clientes.Patch("/:id", h.HandleUpdateCliente)
	clientes.Delete("/:id", h.HandleDeleteCliente)
}

// HandleGetClientes lists clients with their latest orders.
func (h *ClienteHandler) HandleGetClientes(c *fiber.Ctx) error {
	clientes, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return respondError(c, err, "buscar clientes")
	}
	return c.JSON(clientes)
}

// HandleGetClienteByID retrieves a client with its full order history.
func (h *ClienteHandler) HandleGetClienteByID(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "buscar cliente")
	}
	cliente, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "buscar cliente")
	}
	if cliente == nil {
		return notFound(c, "Cliente não encontrado")
	}
	return c.JSON(cliente)
}

// HandleGetClienteByEmail retrieves a client by email address.
func (h *ClienteHandler) HandleGetClienteByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	if unescaped, err := url.PathUnescape(email); err == nil {
		email = unescaped
	}
	cliente, err := h.service.FindByEmail(c.UserContext(), email)
	if err != nil {
		return respondError(c, err, "buscar cliente")
	}
	if cliente == nil {
		return notFound(c, "Cliente não encontrado")
	}
	return c.JSON(cliente)
}

// HandleCountClientes returns {"total": n}.
func (h *ClienteHandler) HandleCountClientes(c *fiber.Ctx) error {
	total, err := h.service.Count(c.UserContext())
	if err != nil {
		return respondError(c, err, "contar clientes")
	}
	return c.JSON(fiber.Map{"total": total})
}

// HandleCreateCliente creates a new client.
func (h *ClienteHandler) HandleCreateCliente(c *fiber.Ctx) error {
	var input validation.ClienteInput
	if err := parseBody(c, &input); err != nil {
		return respondError(c, err, "criar cliente")
	}
	cliente, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "criar cliente")
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// HandleUpdateCliente serves both PUT and PATCH.
func (h *ClienteHandler) HandleUpdateCliente(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "atualizar cliente")
	}
	var input validation.ClienteInput
	if err := parseBody(c, &input); err != nil {
		return respondError(c, err, "atualizar cliente")
	}
	cliente, err := h.service.Update(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err, "atualizar cliente")
	}
	return c.JSON(cliente)
}

// HandleDeleteCliente deletes a client without orders.
func (h *ClienteHandler) HandleDeleteCliente(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "excluir cliente")
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "excluir cliente")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
