package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/tably-app/backoffice-service/internal/models"
)

// PlaylistCache keeps each tenant's screensaver playlist in Redis so idle
// tablets polling for banners do not hit Postgres on every rotation.
type PlaylistCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPlaylistCache(rdb *redis.Client, ttl time.Duration) *PlaylistCache {
	return &PlaylistCache{rdb: rdb, ttl: ttl}
}

func key(restaurantID uuid.UUID) string {
	return fmt.Sprintf("screensaver:playlist:%s", restaurantID)
}

// Get returns the cached playlist, a miss flag, and an error. A nil cache
// behaves as a permanent miss so callers need no nil checks.
func (c *PlaylistCache) Get(ctx context.Context, restaurantID uuid.UUID) ([]models.Banner, bool, error) {
	if c == nil || c.rdb == nil {
		return nil, false, nil
	}

	data, err := c.rdb.Get(ctx, key(restaurantID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("playlist cache get: %w", err)
	}

	var banners []models.Banner
	if err := json.Unmarshal(data, &banners); err != nil {
		return nil, false, fmt.Errorf("playlist cache decode: %w", err)
	}

	return banners, true, nil
}

// Set stores the playlist with the configured TTL.
func (c *PlaylistCache) Set(ctx context.Context, restaurantID uuid.UUID, banners []models.Banner) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	data, err := json.Marshal(banners)
	if err != nil {
		return fmt.Errorf("playlist cache encode: %w", err)
	}

	if err := c.rdb.Set(ctx, key(restaurantID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("playlist cache set: %w", err)
	}

	return nil
}

// Invalidate drops a tenant's cached playlist after a banner mutation.
func (c *PlaylistCache) Invalidate(ctx context.Context, restaurantID uuid.UUID) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	if err := c.rdb.Del(ctx, key(restaurantID)).Err(); err != nil {
		return fmt.Errorf("playlist cache invalidate: %w", err)
	}

	return nil
}
