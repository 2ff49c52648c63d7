package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ShesaiXD/auth-service/internal/auth/service"
	authconstant "github.com/ShesaiXD/auth-service/pkg/constant"
)

// RequireAuth rejects any request without a valid Bearer access token and
// attaches the resolved identity to the request context. Refresh tokens
// presented here fail the type check.
func RequireAuth(tokens service.TokenGenerator, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msgInvalidToken})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != authconstant.AuthScheme {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msgInvalidToken})
		}

		claims, err := tokens.VerifyAccessToken(parts[1])
		if err != nil {
			log.Info().Err(err).Msg("access token rejected")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msgInvalidToken})
		}

		c.Locals(authconstant.ContextUserID, claims.UserID)
		c.Locals(authconstant.ContextUserEmail, claims.Email)

		return c.Next()
	}
}
