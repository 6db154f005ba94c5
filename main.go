package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loja/internal/config"
	"loja/internal/database"
	"loja/internal/logger"
	"loja/internal/server"
	"loja/internal/services"
	"loja/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	l := logger.Configure(cfg.LogLevel, cfg.LogFormat)

	app, cleanup, err := newApp(context.Background(), cfg, l)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer cleanup()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		l.Info().Str("addr", cfg.Addr()).Msg("starting server")
		l.Info().Msgf("Swagger docs available at http://localhost:%s%s", cfg.Port, cfg.DocsPath)
		if err := app.Listen(cfg.Addr()); err != nil {
			l.Error().Err(err).Msg("server failed")
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	l.Info().Msg("shutting down server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		l.Error().Err(err).Msg("error during fiber shutdown")
	}
	l.Info().Msg("server gracefully stopped")
}

// newApp opens and migrates the database, connects the event publisher when
// RABBITMQ_URL is set, and builds the fiber app. cleanup releases both.
func newApp(ctx context.Context, cfg *config.Config, l zerolog.Logger) (*fiber.App, func(), error) {
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL, l)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(ctx, db, cfg.DatabaseDriver, l); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}

	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.RabbitMQExchange})
		if err != nil {
			l.Warn().Err(err).Msg("RabbitMQ unavailable, order events will not be published")
		} else {
			publisher = mqClient
		}
	}

	cleanup := func() {
		if mqClient != nil {
			if err := mqClient.Close(); err != nil {
				l.Error().Err(err).Msg("failed to close RabbitMQ client")
			}
		}
		if err := database.Close(db); err != nil {
			l.Error().Err(err).Msg("failed to close database")
		}
	}

	app, err := server.NewApp(server.Options{
		DB:        db,
		Publisher: publisher,
		DocsPath:  cfg.DocsPath,
		Logger:    l,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to build app: %w", err)
	}
	return app, cleanup, nil
}
