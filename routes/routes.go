package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/slot-booking/controllers"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth          *controllers.AuthController
	Appointments  *controllers.AppointmentController
	Schedule      *controllers.ScheduleController
	Providers     *controllers.ProviderController
	Notifications *controllers.NotificationController
	Profile       *controllers.ProfileController

	// Protected authenticates the caller; RequireProvider must follow it.
	Protected       fiber.Handler
	RequireProvider fiber.Handler
	AuthRateLimit   fiber.Handler
}

// Setup registers every route on app.
func Setup(app fiber.Router, h Handlers) {
	SetupAuthRoutes(app, h)
	SetupAppointmentRoutes(app, h)
	SetupScheduleRoutes(app, h)
	SetupProviderRoutes(app, h)
	SetupNotificationRoutes(app, h)
}
