package handlers

import (
	"loja/internal/services"
	"loja/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CategoriaHandler handles HTTP requests for categories.
type CategoriaHandler struct {
	service *services.CategoriaService
}

// NewCategoriaHandler creates a new CategoriaHandler.
func NewCategoriaHandler(service *services.CategoriaService) *CategoriaHandler {
	return &CategoriaHandler{service: service}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoriaHandler) RegisterRoutes(router fiber.Router) {
	categorias := router.Group("/categorias")
	categorias.Get("/", h.HandleGetCategorias)
	categorias.Get("/:id", h.HandleGetCategoriaByID)
	categorias.Post("/", h.HandleCreateCategoria)
	categorias.Put("/:id", h.HandleUpdateCategoria)
	categorias.Patch("/:id", h.HandleUpdateCategoria)
	categorias.Delete("/:id", h.HandleDeleteCategoria)
}

// HandleGetCategorias lists every category.
func (h *CategoriaHandler) HandleGetCategorias(c *fiber.Ctx) error {
	categorias, err := h.service.FindAll(c.UserContext())
	if err != nil {
		return respondError(c, err, "buscar categorias")
	}
	return c.JSON(categorias)
}

// HandleGetCategoriaByID retrieves a single category by its ID.
func (h *CategoriaHandler) HandleGetCategoriaByID(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "buscar categoria")
	}
	categoria, err := h.service.FindByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "buscar categoria")
	}
	if categoria == nil {
		return notFound(c, "Categoria não encontrada")
	}
	return c.JSON(categoria)
}

// HandleCreateCategoria creates a new category.
func (h *CategoriaHandler) HandleCreateCategoria(c *fiber.Ctx) error {
	var input validation.CategoriaInput
	if err := parseBody(c, &input); err != nil {
		return respondError(c, err, "criar categoria")
	}
	categoria, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "criar categoria")
	}
	return c.Status(fiber.StatusCreated).JSON(categoria)
}

// HandleUpdateCategoria serves both PUT and PATCH; fields left out are kept.
func (h *CategoriaHandler) HandleUpdateCategoria(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "atualizar categoria")
	}
	var input validation.CategoriaInput
	if err := parseBody(c, &input); err != nil {
		return respondError(c, err, "atualizar categoria")
	}
	categoria, err := h.service.Update(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err, "atualizar categoria")
	}
	return c.JSON(categoria)
}

// HandleDeleteCategoria deletes a category without products.
func (h *CategoriaHandler) HandleDeleteCategoria(c *fiber.Ctx) error {
	id, err := validation.ParseID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "excluir categoria")
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, "excluir categoria")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
