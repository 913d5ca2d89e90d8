package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	profileUC "github.com/devlinkhq/devlink/internal/application/usecase/profile"
	"github.com/devlinkhq/devlink/internal/domain/profile"
)

const (
	profileListingKey = "devlink:profiles:all"
	profileListingTTL = 60 * time.Second
)

// redisProfileCache backs the public profile browse listing. Every profile
// mutation invalidates it; GitHub enrichment responses are never stored here.
type redisProfileCache struct {
	rdb *redis.Client
}

func NewRedisProfileCache(rdb *redis.Client) profileUC.ListingCache {
	return &redisProfileCache{rdb: rdb}
}

func (c *redisProfileCache) GetAll(ctx context.Context) ([]*profile.Profile, error) {
	raw, err := c.rdb.Get(ctx, profileListingKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile listing from redis: %w", err)
	}

	var profiles []*profile.Profile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode cached profile listing: %w", err)
	}
	return profiles, nil
}

func (c *redisProfileCache) SetAll(ctx context.Context, profiles []*profile.Profile) error {
	raw, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("failed to encode profile listing: %w", err)
	}
	if err := c.rdb.Set(ctx, profileListingKey, raw, profileListingTTL).Err(); err != nil {
		return fmt.Errorf("failed to write profile listing to redis: %w", err)
	}
	return nil
}

func (c *redisProfileCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, profileListingKey).Err(); err != nil {
		return fmt.Errorf("failed to drop profile listing key: %w", err)
	}
	return nil
}
