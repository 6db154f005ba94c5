// Package server assembles the fiber application: middleware, entity
// routes, health check and API documentation.
package server

import (
	"context"
	"errors"
	"time"

	"loja/internal/docs"
	"loja/internal/handlers"
	"loja/internal/middleware"
	"loja/internal/repositories"
	"loja/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

// Options are the dependencies of the application.
type Options struct {
	DB *gorm.DB
	// Publisher may be nil; order events are then skipped.
	Publisher services.EventPublisher
	DocsPath  string
	Logger    zerolog.Logger
}

// NewApp wires repositories, services and handlers into a fiber app.
func NewApp(opts Options) (*fiber.App, error) {
	if opts.DB == nil {
		return nil, errors.New("server: database is required")
	}

	app := fiber.New(fiber.Config{
		AppName:               "loja",
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(opts.Logger))

	categoriaRepo := repositories.NewGORMCategoriaRepository(opts.DB)
	produtoRepo := repositories.NewGORMProdutoRepository(opts.DB)
	clienteRepo := repositories.NewGORMClienteRepository(opts.DB)
	pedidoRepo := repositories.NewGORMPedidoRepository(opts.DB)

	categoriaService := services.NewCategoriaService(categoriaRepo)
	produtoService := services.NewProdutoService(produtoRepo, categoriaRepo)
	clienteService := services.NewClienteService(clienteRepo)
	pedidoService := services.NewPedidoService(pedidoRepo, clienteRepo, produtoRepo, opts.Publisher)

	handlers.NewCategoriaHandler(categoriaService).RegisterRoutes(app)
	handlers.NewProdutoHandler(produtoService).RegisterRoutes(app)
	handlers.NewClienteHandler(clienteService).RegisterRoutes(app)
	handlers.NewPedidoHandler(pedidoService).RegisterRoutes(app)

	app.Get("/health", healthHandler(opts.DB))

	if opts.DocsPath != "" {
		if err := docs.Register(app, opts.DocsPath); err != nil {
			return nil, err
		}
	}

	return app, nil
}

func healthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "unhealthy",
				"database": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().UTC().Format(time.RFC3339),
			"database": "connected",
		})
	}
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes and recovered panics, in the same {"error": msg} shape.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Erro interno do servidor"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
		if code == fiber.StatusNotFound {
			msg = "Rota não encontrada"
		}
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
