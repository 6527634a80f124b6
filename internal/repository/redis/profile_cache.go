package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sakeCompass/domain"

	"github.com/redis/go-redis/v9"
)

const profileTTL = 15 * time.Minute

// ProfileCache keeps preference profiles in Redis so the recommend path
// skips a postgres round trip on warm users. Scores are never cached;
// the daily jitter must be recomputed on every call.
type ProfileCache struct {
	client *redis.Client
}

func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{
		client: client,
	}
}

func profileKey(userID uint) string {
	return fmt.Sprintf("profile:user:%d", userID)
}

// Get returns (nil, nil) on a cache miss.
func (c *ProfileCache) Get(ctx context.Context, userID uint) (*domain.PreferenceProfile, error) {
	val, err := c.client.Get(ctx, profileKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile from Redis: %w", err)
	}

	var profile domain.PreferenceProfile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached profile: %w", err)
	}

	return &profile, nil
}

func (c *ProfileCache) Set(ctx context.Context, profile *domain.PreferenceProfile) error {
	jsonData, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	err = c.client.Set(ctx, profileKey(profile.UserID), jsonData, profileTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to store profile in Redis: %w", err)
	}

	return nil
}

// Invalidate drops the cached profile after a preference write.
func (c *ProfileCache) Invalidate(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, profileKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate profile cache: %w", err)
	}

	return nil
}
