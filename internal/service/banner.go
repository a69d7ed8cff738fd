package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tably-app/backoffice-service/internal/cache"
	"github.com/tably-app/backoffice-service/internal/db/repository"
	"github.com/tably-app/backoffice-service/internal/metrics"
	"github.com/tably-app/backoffice-service/internal/models"
	"github.com/tably-app/backoffice-service/internal/websockets"
)

// BannerService handles screensaver banner business logic
type BannerService struct {
	repos    *repository.Repositories
	playlist *cache.PlaylistCache
	hub      *websockets.Hub
	logger   zerolog.Logger
}

// NewBannerService creates a new banner service
func NewBannerService(repos *repository.Repositories, playlist *cache.PlaylistCache, hub *websockets.Hub, logger zerolog.Logger) *BannerService {
	return &BannerService{
		repos:    repos,
		playlist: playlist,
		hub:      hub,
		logger:   logger.With().Str("component", "screensaver").Logger(),
	}
}

// List returns a tenant's banner playlist, served from cache when possible.
// Cache failures degrade to a database read, never to an error.
func (s *BannerService) List(ctx context.Context, restaurantID uuid.UUID) ([]models.Banner, error) {
	banners, hit, err := s.playlist.Get(ctx, restaurantID)
	if err != nil {
		s.logger.Warn().Err(err).Str("restaurant_id", restaurantID.String()).Msg("playlist cache read failed")
	}
	if hit {
		return banners, nil
	}

	banners, err = s.repos.Banner.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if err := s.playlist.Set(ctx, restaurantID, banners); err != nil {
		s.logger.Warn().Err(err).Str("restaurant_id", restaurantID.String()).Msg("playlist cache write failed")
	}

	return banners, nil
}

// Create creates a banner, invalidates the playlist cache and pushes a
// refresh event to the tenant's tablets.
func (s *BannerService) Create(ctx context.Context, req models.BannerRequest) (*models.Banner, error) {
	if req.ImageURL == "" {
		return nil, fmt.Errorf("image url is required")
	}

	banner := models.Banner{
		RestaurantID: req.RestaurantID,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	}

	created, err := s.repos.Banner.Create(ctx, banner)
	if err != nil {
		return nil, err
	}

	metrics.IncBannerMutation("create")
	s.afterMutation(ctx, created.RestaurantID)

	return created, nil
}

// Delete removes a banner and refreshes the tenant's playlist.
func (s *BannerService) Delete(ctx context.Context, id uuid.UUID) error {
	banner, err := s.repos.Banner.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repos.Banner.Delete(ctx, id); err != nil {
		return err
	}

	metrics.IncBannerMutation("delete")
	s.afterMutation(ctx, banner.RestaurantID)

	return nil
}

func (s *BannerService) afterMutation(ctx context.Context, restaurantID uuid.UUID) {
	if err := s.playlist.Invalidate(ctx, restaurantID); err != nil {
		s.logger.Warn().Err(err).Str("restaurant_id", restaurantID.String()).Msg("playlist cache invalidate failed")
	}

	message := websockets.Message{
		Type:         websockets.TypeScreensaverUpdate,
		RestaurantID: restaurantID.String(),
	}
	payload, err := json.Marshal(message)
	if err != nil {
		return
	}
	s.hub.BroadcastToTenant(restaurantID.String(), payload)
}
