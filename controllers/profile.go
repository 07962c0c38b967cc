package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/middleware"
	"github.com/meinhoongagan/slot-booking/services"
)

const maxAvatarSize = 5 << 20

type ProfileController struct {
	profiles *services.ProfileService
	log      *zap.Logger
}

func NewProfileController(profiles *services.ProfileService, log *zap.Logger) *ProfileController {
	return &ProfileController{profiles: profiles, log: log}
}

// UploadAvatar godoc
// @Summary Upload the caller's avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Image"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.ErrorResponse
// @Router /users/avatar [post]
func (ctl *ProfileController) UploadAvatar(c *fiber.Ctx) error {
	header, err := c.FormFile("avatar")
	if err != nil {
		return badRequest(c, "Avatar file is required")
	}
	if header.Size > maxAvatarSize {
		return badRequest(c, "Avatar must be at most 5MB")
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return badRequest(c, "Avatar must be an image")
	}

	file, err := header.Open()
	if err != nil {
		return badRequest(c, "Cannot read avatar file")
	}
	defer file.Close()

	url, err := ctl.profiles.UpdateAvatar(c.UserContext(), middleware.UserID(c), file)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{"avatar_url": url})
}
