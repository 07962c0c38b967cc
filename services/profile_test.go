package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/models"
)

func TestUpdateAvatar(t *testing.T) {
	users := newFakeUsers(models.User{ID: providerID, Name: "Paulo", Provider: true})
	avatars := &fakeAvatars{}
	cache := &fakeCache{hit: true}
	svc := NewProfileService(users, avatars, NewProviderService(users, cache, zap.NewNop()), zap.NewNop())

	url, err := svc.UpdateAvatar(context.Background(), providerID, strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "user_2", avatars.publicID)
	assert.Equal(t, url, users.avatars[providerID])
	assert.Equal(t, 1, cache.invalidated)
}

func TestUpdateAvatarUnknownUser(t *testing.T) {
	svc := NewProfileService(newFakeUsers(), &fakeAvatars{}, nil, zap.NewNop())

	_, err := svc.UpdateAvatar(context.Background(), 5, strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAvatarWithoutStorage(t *testing.T) {
	svc := NewProfileService(newFakeUsers(models.User{ID: 1}), nil, nil, zap.NewNop())

	_, err := svc.UpdateAvatar(context.Background(), 1, strings.NewReader("x"))
	assert.Equal(t, KindInternal, KindOf(err))
}
