package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/services"
)

type AuthController struct {
	accounts *services.AccountService
	log      *zap.Logger
}

func NewAuthController(accounts *services.AccountService, log *zap.Logger) *AuthController {
	return &AuthController{accounts: accounts, log: log}
}

type registerBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Provider bool   `json:"provider"`
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /users [post]
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var body registerBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}

	user, err := ctl.accounts.Register(c.UserContext(), services.RegisterRequest{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Provider: body.Provider,
	})
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary Open a session
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} services.Session
// @Failure 401 {object} utils.ErrorResponse
// @Router /sessions [post]
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var body loginBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}

	session, err := ctl.accounts.Authenticate(c.UserContext(), body.Email, body.Password)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(session)
}
