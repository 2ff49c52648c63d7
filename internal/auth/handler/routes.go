package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the public endpoints first, then installs the auth
// middleware on the group. Every route registered after the Use call is
// protected, so new endpoints are deny-by-default and the public ones are
// the explicit exemptions.
func RegisterRoutes(app *fiber.App, h *AuthHandler, requireAuth fiber.Handler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	api.Post("/register", h.Register)
	api.Post("/login", h.Login)
	api.Post("/refresh", h.Refresh)
	api.Post("/logout", h.Logout)

	api.Use(requireAuth)
	api.Get("/me", h.Me)
}
