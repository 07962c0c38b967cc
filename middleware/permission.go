package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/services"
	"github.com/meinhoongagan/slot-booking/utils"
)

// RequireProvider only lets providers through. It must run after Protected.
func RequireProvider(directory services.UserDirectory, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provider, err := directory.FindProviderByID(c.UserContext(), UserID(c))
		if err != nil {
			log.Error("provider lookup failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Internal server error",
				Error:   "internal",
			})
		}
		if provider == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
				Message: "User is not a provider",
				Error:   services.KindInvalidProvider.String(),
			})
		}
		return c.Next()
	}
}
