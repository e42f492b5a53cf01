package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/alshoaa/siteadmin/internal/auth"
	"github.com/alshoaa/siteadmin/internal/db/query"
	"github.com/alshoaa/siteadmin/internal/validation"
)

var (
	// ErrNilDeps is returned by Init when routes or collaborators are missing.
	ErrNilDeps = errors.New(ErrNilDepsLogMsg)

	// ErrInvalidID is returned when the :id route parameter is not a positive integer.
	ErrInvalidID = errors.New("invalid id")
)

// Response bodies of the error responses.
const (
	msgInvalidBody = "invalid request body"
	msgNotFound    = "not found"
	msgInternal    = "internal server error"
)

// Body parses the JSON request body into out.
func Body(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, msgInvalidBody)
	}

	return nil
}

// ID returns the :id route parameter.
func ID(c fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, ErrInvalidID.Error())
	}

	return id, nil
}

// Fail writes the response for err. Validation failures name the field,
// transport failures are logged and answered with a generic message.
func Fail(c fiber.Ctx, err error) error {
	var (
		verr *validation.Error
		ferr *fiber.Error
	)

	switch {
	case errors.As(err, &verr):
		status := fiber.StatusUnprocessableEntity
		if verr.Reason == validation.ReasonTaken {
			status = fiber.StatusConflict
		}

		return c.Status(status).JSON(fiber.Map{
			"error":  verr.Error(),
			"field":  verr.Field,
			"reason": verr.Reason,
		})
	case errors.Is(err, query.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msgNotFound})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": auth.ErrInvalidCredentials.Error()})
	case errors.As(err, &ferr):
		return c.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
	default:
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgInternal})
	}
}

// ErrorHandler renders errors returned by handlers and routing as JSON.
func ErrorHandler(c fiber.Ctx, err error) error {
	return Fail(c, err)
}
