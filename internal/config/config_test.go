package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"loja/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/api-docs", cfg.DocsPath)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("PORT", "8089")
	t.Setenv("DATABASE_DRIVER", "SQLITE")
	t.Setenv("DATABASE_URL", "loja.db")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "8089", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "loja.db", cfg.DatabaseURL)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=4000\nLOG_FORMAT=console\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
