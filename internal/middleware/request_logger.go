package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// RequestLogger attaches a logger carrying the request id to the request
// context and writes one access log entry per request. It must run after
// the requestid middleware.
func RequestLogger(base zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqID, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		l := base.With().Str("request_id", reqID).Logger()
		c.SetUserContext(l.WithContext(c.UserContext()))

		if chainErr := c.Next(); chainErr != nil {
			// Render the error now so the logged status is the one sent.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		var event *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			event = l.Error()
		case status >= fiber.StatusBadRequest:
			event = l.Debug()
		default:
			event = l.Info()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")
		return nil
	}
}
