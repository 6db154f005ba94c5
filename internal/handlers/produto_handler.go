package handlers

import (
	"loja/internal/services"
	"loja/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProdutoHandler handles HTTP requests for products.
type ProdutoHandler struct {
	service *services.ProdutoService
}

// NewProdutoHandler creates a new ProdutoHandler.
func NewProdutoHandler(service *services.ProdutoService) *ProdutoHandler {
	return &ProdutoHandler{service: service}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProdutoHandler) RegisterRoutes(router fiber.Router) {
	produtos := router.Group("/produtos")
	produtos.Get("/", h.HandleGetProdutos)
	produtos.Get("/:id", h.HandleGetProdutoByID)
	produtos.Post("/", h.HandleCreateProduto)
	produtos.Put("/:id", h.HandleUpdateProduto)
	produtos.Patch("/:id", h.HandleUpdateProduto)
	produtos.Delete("/:id", h.HandleDeleteProduto)
}

// HandleGetProdutos lists products, optionally filtered by ?categoriaId=.
func (h *ProdutoHandler) HandleGetProdutos(c *fiber.Ctx) error {
	filter, err := validation.ParseProdutoFilter(c.Query("categoriaId"))
	if err != nil {
		return respondError(c, err, "buscar produtos")
	}
	produtos, err := h.service.FindAll(c.UserContext(), filter)
	if err != nil {
		return respondError(c, err, "buscar produtos")
	}
	return c.JSON(produtos)
}

// HandleGetProdutoByID retrieves a single product by its ID.
func (h *ProdutoHandler) HandleGetProdutoByID(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "buscar produto")
	}
	produto, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "buscar produto")
	}
	if produto == nil {
		return notFound(c, "Produto não encontrado")
	}
	return c.JSON(produto)
}

// HandleCreateProduto creates a new product.
func (h *ProdutoHandler) HandleCreateProduto(c *fiber.Ctx) error {
	var input validation.ProdutoInput
	if err := parseBody(c, &input); err != nil {
		return respondError(c, err, "criar produto")
	}
	produto, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "criar produto")
	}
	return c.Status(fiber.StatusCreated).JSON(produto)
}

// HandleUpdateProduto serves both PUT and PATCH.
func (h *ProdutoHandler) HandleUpdateProduto(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "atualizar produto")
	}
	var input validation.ProdutoInput
	if err := parseBody(c, &input); err != nil {
		return respondError(c, err, "atualizar produto")
	}
	produto, err := h.service.Update(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err, "atualizar produto")
	}
	return c.JSON(produto)
}

// HandleDeleteProduto deletes a product no order references.
func (h *ProdutoHandler) HandleDeleteProduto(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "excluir produto")
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "excluir produto")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
