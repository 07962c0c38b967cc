package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/services"
	"github.com/meinhoongagan/slot-booking/utils"
)

var kindStatus = map[services.Kind]int{
	services.KindValidation:         fiber.StatusBadRequest,
	services.KindInvalidProvider:    fiber.StatusUnauthorized,
	services.KindPastDate:           fiber.StatusBadRequest,
	services.KindSlotUnavailable:    fiber.StatusConflict,
	services.KindSelfBooking:        fiber.StatusBadRequest,
	services.KindNotFound:           fiber.StatusNotFound,
	services.KindInvalidCredentials: fiber.StatusUnauthorized,
	services.KindEmailTaken:         fiber.StatusConflict,
}

// respondError writes the response for a service error. Internal errors are
// logged and answered with a generic message.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var svcErr *services.Error
	if !errors.As(err, &svcErr) || svcErr.Kind == services.KindInternal {
		log.Error("request failed",
			zap.String("route", c.Route().Path),
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Internal server error",
			Error:   services.KindInternal.String(),
		})
	}

	return c.Status(kindStatus[svcErr.Kind]).JSON(utils.ErrorResponse{
		Message: svcErr.Message,
		Error:   svcErr.Kind.String(),
		Fields:  svcErr.Fields,
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
		Message: msg,
		Error:   services.KindValidation.String(),
	})
}
