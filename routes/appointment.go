package routes

import "github.com/gofiber/fiber/v2"

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app fiber.Router, h Handlers) {
	appointment := app.Group("/appointments", h.Protected)
	appointment.Get("/", h.Appointments.ListMine)
	appointment.Post("/", h.Appointments.Create)
}

func SetupScheduleRoutes(app fiber.Router, h Handlers) {
	app.Get("/schedule", h.Protected, h.Schedule.Index)
}
