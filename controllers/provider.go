package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/services"
)

type ProviderController struct {
	providers    *services.ProviderService
	availability *services.AvailabilityService
	log          *zap.Logger
}

func NewProviderController(providers *services.ProviderService, availability *services.AvailabilityService, log *zap.Logger) *ProviderController {
	return &ProviderController{providers: providers, availability: availability, log: log}
}

// List godoc
// @Summary List providers
// @Tags providers
// @Produce json
// @Success 200 {array} services.ProviderSummary
// @Router /providers [get]
func (ctl *ProviderController) List(c *fiber.Ctx) error {
	providers, err := ctl.providers.ListProviders(c.UserContext())
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(providers)
}

// Available godoc
// @Summary Provider availability for a day
// @Tags providers
// @Produce json
// @Param id path int true "Provider ID"
// @Param date query string true "Day (ISO 8601)"
// @Success 200 {array} services.Slot
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /providers/{id}/available [get]
func (ctl *ProviderController) Available(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "Invalid provider ID")
	}

	slots, err := ctl.availability.DayAvailability(c.UserContext(), uint(id), c.Query("date"))
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(slots)
}
