package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Use(requestid.New())
	app.Use(SecurityHeaders())

	auth := app.Group("/api/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Get("/validate", h.Validate)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/logout", h.Logout)
	auth.Get("/health", h.Health)
}
