// Package config loads runtime settings from the environment and an optional
// dotenv file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds every setting the API needs at startup.
type Config struct {
	Port             string `mapstructure:"PORT" validate:"required,numeric"`
	DatabaseDriver   string `mapstructure:"DATABASE_DRIVER" validate:"required,oneof=postgres sqlite"`
	DatabaseURL      string `mapstructure:"DATABASE_URL" validate:"required"`
	LogLevel         string `mapstructure:"LOG_LEVEL" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	LogFormat        string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`
	RabbitMQURL      string `mapstructure:"RABBITMQ_URL" validate:"omitempty,url"`
	RabbitMQExchange string `mapstructure:"RABBITMQ_EXCHANGE" validate:"required"`
	DocsPath         string `mapstructure:"DOCS_PATH" validate:"required,startswith=/"`
}

// Addr returns the listen address for fiber.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=loja port=5432 sslmode=disable")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "loja.eventos")
	v.SetDefault("DOCS_PATH", "/api-docs")
}

// Load reads defaults, then envFile (if it exists), then environment variables.
// An empty envFile skips the file step.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.DatabaseDriver = strings.ToLower(cfg.DatabaseDriver)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
