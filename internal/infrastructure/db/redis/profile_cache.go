package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pharmatrack/inventory-auth/internal/core/domain"
)

const profileTTL = 15 * time.Minute

// ProfileCache caches user profiles in Redis for authenticated profile
// fetches. User records are immutable after creation, so entries only ever
// age out.
// Key format: profile:<user_id>
type ProfileCache struct {
	client *redis.Client
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

// Get returns the cached profile, or (nil, nil) on a miss.
func (c *ProfileCache) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile cache get: %w", err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		// Unreadable entry: treat as a miss so the caller refills it.
		return nil, nil
	}
	return &profile, nil
}

// Set stores the profile with the cache TTL.
func (c *ProfileCache) Set(ctx context.Context, profile *domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("profile cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, c.key(profile.ID), raw, profileTTL).Err(); err != nil {
		return fmt.Errorf("profile cache set: %w", err)
	}
	return nil
}

func (c *ProfileCache) key(userID string) string {
	return "profile:" + userID
}
