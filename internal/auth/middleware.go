package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

const bearerPrefix = "Bearer "

// RequireToken creates Fiber middleware that only passes requests carrying
// "Authorization: Bearer <token>". With an empty token every request is
// answered with 404.
func RequireToken(token string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if token == "" {
			return c.SendStatus(fiber.StatusNotFound)
		}

		header := c.Get(fiber.HeaderAuthorization)

		presented, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			log.Warn().Str("path", c.Path()).Str("ip", c.IP()).Msg("admin request without valid token")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		return c.Next()
	}
}
