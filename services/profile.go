package services

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ProfileService manages the caller's own profile.
type ProfileService struct {
	users     UserStore
	avatars   AvatarStore
	providers *ProviderService
	log       *zap.Logger
}

func NewProfileService(users UserStore, avatars AvatarStore, providers *ProviderService, log *zap.Logger) *ProfileService {
	return &ProfileService{users: users, avatars: avatars, providers: providers, log: log}
}

// UpdateAvatar uploads the picture and stores its URL on the user.
func (s *ProfileService) UpdateAvatar(ctx context.Context, userID uint, file io.Reader) (string, error) {
	if s.avatars == nil {
		return "", internalError("upload avatar", fmt.Errorf("avatar storage is not configured"))
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", internalError("lookup user", err)
	}
	if user == nil {
		return "", &Error{Kind: KindNotFound, Message: "User not found"}
	}

	url, err := s.avatars.Upload(ctx, file, fmt.Sprintf("user_%d", userID))
	if err != nil {
		return "", internalError("upload avatar", err)
	}
	if err := s.users.UpdateAvatar(ctx, userID, url); err != nil {
		return "", internalError("save avatar", err)
	}

	if user.Provider && s.providers != nil {
		s.providers.Invalidate(ctx)
	}
	s.log.Info("avatar updated", zap.Uint("user_id", userID))
	return url, nil
}
