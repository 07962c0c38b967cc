package services

import (
	"context"

	"go.uber.org/zap"
)

// ProviderService lists providers, reading through an optional cache.
type ProviderService struct {
	users UserStore
	cache ProviderCache
	log   *zap.Logger
}

// NewProviderService accepts a nil cache.
func NewProviderService(users UserStore, cache ProviderCache, log *zap.Logger) *ProviderService {
	return &ProviderService{users: users, cache: cache, log: log}
}

func (s *ProviderService) ListProviders(ctx context.Context) ([]ProviderSummary, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetProviders(ctx)
		if err != nil {
			s.log.Warn("provider cache read failed", zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	users, err := s.users.ListProviders(ctx)
	if err != nil {
		return nil, internalError("list providers", err)
	}
	out := make([]ProviderSummary, 0, len(users))
	for i := range users {
		out = append(out, summarize(&users[i]))
	}

	if s.cache != nil {
		if err := s.cache.SetProviders(ctx, out); err != nil {
			s.log.Warn("provider cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

// Invalidate drops the cached listing after a provider changes.
func (s *ProviderService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProviders(ctx); err != nil {
		s.log.Warn("provider cache invalidation failed", zap.Error(err))
	}
}
