package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/meinhoongagan/slot-booking/models"
	"github.com/meinhoongagan/slot-booking/utils"
)

const minPasswordLength = 6

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Provider bool
}

// Session is the result of a successful login.
type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// AccountService registers users and issues tokens.
type AccountService struct {
	users     UserStore
	providers *ProviderService
	secret    string
	log       *zap.Logger
	settings
}

func NewAccountService(users UserStore, providers *ProviderService, secret string, log *zap.Logger, opts ...Option) *AccountService {
	return &AccountService{users: users, providers: providers, secret: secret, log: log, settings: newSettings(opts)}
}

func (s *AccountService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	fields := map[string]string{}
	if req.Name == "" {
		fields["name"] = "is required"
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		fields["email"] = "must be a valid email"
	}
	if len(req.Password) < minPasswordLength {
		fields["password"] = "must have at least 6 characters"
	}
	if len(fields) > 0 {
		return nil, validationError(fields)
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, internalError("lookup email", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, internalError("hash password", err)
	}
	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Provider: req.Provider,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, internalError("create user", err)
	}

	if user.Provider && s.providers != nil {
		s.providers.Invalidate(ctx)
	}
	s.log.Info("user registered", zap.Uint("user_id", user.ID), zap.Bool("provider", user.Provider))
	return user, nil
}

func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, validationError(map[string]string{"credentials": "email and password are required"})
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, internalError("lookup email", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.SignToken(s.secret, user.ID, user.Provider, s.clock.Now())
	if err != nil {
		return nil, internalError("sign token", err)
	}
	return &Session{User: user, Token: token}, nil
}
