package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/meinhoongagan/slot-booking/services"
)

const providersKey = "providers:list"

// ProviderCache stores the provider directory listing as JSON.
type ProviderCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewProviderCache(client redis.Cmdable, ttl time.Duration) *ProviderCache {
	return &ProviderCache{client: client, ttl: ttl}
}

func (c *ProviderCache) GetProviders(ctx context.Context) ([]services.ProviderSummary, bool, error) {
	raw, err := c.client.Get(ctx, providersKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var providers []services.ProviderSummary
	if err := json.Unmarshal(raw, &providers); err != nil {
		return nil, false, err
	}
	return providers, true, nil
}

func (c *ProviderCache) SetProviders(ctx context.Context, providers []services.ProviderSummary) error {
	raw, err := json.Marshal(providers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, providersKey, raw, c.ttl).Err()
}

func (c *ProviderCache) InvalidateProviders(ctx context.Context) error {
	return c.client.Del(ctx, providersKey).Err()
}
