package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/middleware"
	"github.com/meinhoongagan/slot-booking/services"
)

type AppointmentController struct {
	booking *services.BookingService
	list    *services.AppointmentListService
	log     *zap.Logger
}

func NewAppointmentController(booking *services.BookingService, list *services.AppointmentListService, log *zap.Logger) *AppointmentController {
	return &AppointmentController{booking: booking, list: list, log: log}
}

type createAppointmentBody struct {
	ProviderID *int64 `json:"provider_id"`
	Date       string `json:"date"`
}

// Create godoc
// @Summary Book an appointment
// @Description Books the hour slot containing date with a provider
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body createAppointmentBody true "Appointment"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments [post]
func (ctl *AppointmentController) Create(c *fiber.Ctx) error {
	var body createAppointmentBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Failed to parse request body")
	}

	req := services.BookingRequest{
		RequesterID: middleware.UserID(c),
		Date:        body.Date,
	}
	if body.ProviderID != nil {
		req.ProviderID = *body.ProviderID
	}

	appt, err := ctl.booking.RequestBooking(c.UserContext(), req)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(appt)
}

// ListMine godoc
// @Summary List my appointments
// @Description Active appointments of the caller, 20 per page, ordered by date
// @Tags appointments
// @Produce json
// @Param page query int false "Page (1-based)"
// @Success 200 {array} services.AppointmentView
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments [get]
func (ctl *AppointmentController) ListMine(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	appts, err := ctl.list.ListMine(c.UserContext(), middleware.UserID(c), page)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(appts)
}
