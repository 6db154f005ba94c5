// Package logger configures the process-wide zerolog logger and provides
// adapters so GORM and goose write through it.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure builds the application logger, installs it as the zerolog global
// and returns it. Unknown levels fall back to info.
func Configure(level, format string) zerolog.Logger {
	return ConfigureOutput(level, format, os.Stdout)
}

// ConfigureOutput is Configure with an explicit destination.
func ConfigureOutput(level, format string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	l := zerolog.New(out).With().Timestamp().Str("service", "loja").Logger()
	log.Logger = l
	// Contexts without a request logger fall back to the global one.
	zerolog.DefaultContextLogger = &log.Logger
	return l
}
