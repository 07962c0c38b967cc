package routes

import "github.com/gofiber/fiber/v2"

// SetupAuthRoutes configures account and session routes
func SetupAuthRoutes(app fiber.Router, h Handlers) {
	app.Post("/users", h.AuthRateLimit, h.Auth.Register)
	app.Post("/sessions", h.AuthRateLimit, h.Auth.Login)
	app.Post("/users/avatar", h.Protected, h.Profile.UploadAvatar)
}
