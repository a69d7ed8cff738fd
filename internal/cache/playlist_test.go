package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tably-app/backoffice-service/internal/models"
)

func newTestCache(t *testing.T) (*PlaylistCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewPlaylistCache(rdb, 5*time.Minute), mr
}

func TestPlaylistCacheRoundtrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	restaurantID := uuid.New()

	_, hit, err := c.Get(ctx, restaurantID)
	require.NoError(t, err)
	assert.False(t, hit)

	banners := []models.Banner{
		{ID: uuid.New(), RestaurantID: restaurantID, ImageURL: "https://cdn.example/1.png", DisplayOrder: 0},
		{ID: uuid.New(), RestaurantID: restaurantID, ImageURL: "https://cdn.example/2.png", DisplayOrder: 1},
	}
	require.NoError(t, c.Set(ctx, restaurantID, banners))

	cached, hit, err := c.Get(ctx, restaurantID)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Len(t, cached, 2)
	assert.Equal(t, banners[0].ImageURL, cached[0].ImageURL)
}

func TestPlaylistCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	restaurantID := uuid.New()

	require.NoError(t, c.Set(ctx, restaurantID, []models.Banner{{ID: uuid.New()}}))
	require.NoError(t, c.Invalidate(ctx, restaurantID))

	_, hit, err := c.Get(ctx, restaurantID)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestPlaylistCacheExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	restaurantID := uuid.New()

	require.NoError(t, c.Set(ctx, restaurantID, []models.Banner{{ID: uuid.New()}}))
	mr.FastForward(6 * time.Minute)

	_, hit, err := c.Get(ctx, restaurantID)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestNilCacheIsAlwaysMiss(t *testing.T) {
	var c *PlaylistCache
	ctx := context.Background()
	restaurantID := uuid.New()

	_, hit, err := c.Get(ctx, restaurantID)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, c.Set(ctx, restaurantID, nil))
	assert.NoError(t, c.Invalidate(ctx, restaurantID))
}
