package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/middleware"
	"github.com/meinhoongagan/slot-booking/services"
)

type ScheduleController struct {
	schedule *services.ScheduleService
	log      *zap.Logger
}

func NewScheduleController(schedule *services.ScheduleService, log *zap.Logger) *ScheduleController {
	return &ScheduleController{schedule: schedule, log: log}
}

// Index godoc
// @Summary Provider schedule
// @Description Active appointments of the calling provider on one day
// @Tags schedule
// @Produce json
// @Param date query string true "Day (ISO 8601)"
// @Success 200 {array} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /schedule [get]
func (ctl *ScheduleController) Index(c *fiber.Ctx) error {
	appts, err := ctl.schedule.ListSchedule(c.UserContext(), middleware.UserID(c), c.Query("date"))
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(appts)
}
