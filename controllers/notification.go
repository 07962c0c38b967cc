package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/middleware"
	"github.com/meinhoongagan/slot-booking/services"
)

type NotificationController struct {
	notifications *services.NotificationService
	log           *zap.Logger
}

func NewNotificationController(notifications *services.NotificationService, log *zap.Logger) *NotificationController {
	return &NotificationController{notifications: notifications, log: log}
}

// Index godoc
// @Summary Latest notifications of the calling provider
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Failure 401 {object} utils.ErrorResponse
// @Router /notifications [get]
func (ctl *NotificationController) Index(c *fiber.Ctx) error {
	items, err := ctl.notifications.List(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(items)
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} models.Notification
// @Failure 404 {object} utils.ErrorResponse
// @Router /notifications/{id} [put]
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	n, err := ctl.notifications.MarkRead(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(n)
}
