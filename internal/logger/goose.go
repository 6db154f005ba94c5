package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// GooseLogger adapts zerolog to goose.Logger. Fatalf logs at error level and
// returns; the caller handles the failure through goose's returned error.
type GooseLogger struct {
	logger zerolog.Logger
}

func NewGooseLogger(l zerolog.Logger) *GooseLogger {
	return &GooseLogger{logger: l.With().Str("component", "goose").Logger()}
}

func (g *GooseLogger) Printf(format string, v ...interface{}) {
	g.logger.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g *GooseLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
