package handlers

import (
	"errors"

	"loja/internal/services"
	"loja/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const msgCorpoInvalido = "Corpo da requisição inválido"

var errInvalidBody = errors.New(msgCorpoInvalido)

// parseBody decodes the JSON body into dst. Type mismatches become field
// errors; anything else unreadable is errInvalidBody.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		if verr := validation.FromDecodeError(err); verr != nil {
			return verr
		}
		log.Ctx(c.UserContext()).Debug().Err(err).Msg("unreadable request body")
		return errInvalidBody
	}
	return nil
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

// respondError maps err onto the HTTP error contract. operation completes
// the generic 500 message, e.g. "buscar produtos".
func respondError(c *fiber.Ctx, err error, operation string) error {
	var verr *validation.Error
	var serr *services.Error

	switch {
	case errors.As(err, &verr):
		log.Ctx(c.UserContext()).Debug().Err(err).Msg("validation failed")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   verr.Error(),
			"details": verr.Fields,
		})
	case errors.Is(err, errInvalidBody):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msgCorpoInvalido})
	case errors.As(err, &serr) && errors.Is(serr, services.ErrNotFound):
		return notFound(c, serr.Message)
	case errors.As(err, &serr):
		log.Ctx(c.UserContext()).Debug().Err(err).Msg("domain rule violated")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": serr.Message})
	}

	log.Ctx(c.UserContext()).Error().Err(err).Str("operation", operation).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao " + operation})
}
