package routes

import "github.com/gofiber/fiber/v2"

func SetupProviderRoutes(app fiber.Router, h Handlers) {
	provider := app.Group("/providers", h.Protected)
	provider.Get("/", h.Providers.List)
	provider.Get("/:id/available", h.Providers.Available)
}

func SetupNotificationRoutes(app fiber.Router, h Handlers) {
	notification := app.Group("/notifications", h.Protected, h.RequireProvider)
	notification.Get("/", h.Notifications.Index)
	notification.Put("/:id", h.Notifications.MarkRead)
}
