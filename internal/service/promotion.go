package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tably-app/backoffice-service/internal/db/repository"
	"github.com/tably-app/backoffice-service/internal/metrics"
	"github.com/tably-app/backoffice-service/internal/models"
	"github.com/tably-app/backoffice-service/internal/websockets"
)

// PromotionService handles promotion business logic
type PromotionService struct {
	repos     *repository.Repositories
	hub       *websockets.Hub
	uploadDir string
	logger    zerolog.Logger
}

// NewPromotionService creates a new promotion service
func NewPromotionService(repos *repository.Repositories, hub *websockets.Hub, uploadDir string, logger zerolog.Logger) *PromotionService {
	return &PromotionService{
		repos:     repos,
		hub:       hub,
		uploadDir: uploadDir,
		logger:    logger.With().Str("component", "promotions").Logger(),
	}
}

// Create validates a promotion request, stores the optional image and
// persists the promotion. Validation failures happen before any side effect.
func (s *PromotionService) Create(ctx context.Context, req models.PromotionRequest, image io.Reader, imageName string) (*models.Promotion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	promo := models.Promotion{
		RestaurantID:  req.RestaurantID,
		Title:         req.Title,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		ActiveDays:    req.ActiveDays,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
	}

	if image != nil {
		path, err := s.storeImage(image, imageName)
		if err != nil {
			return nil, fmt.Errorf("failed to store promotion image: %w", err)
		}
		promo.ImagePath = &path
	}

	created, err := s.repos.Promotion.Create(ctx, promo)
	if err != nil {
		return nil, err
	}

	metrics.IncPromotionCreated()
	s.logger.Info().
		Str("promotion_id", created.ID.String()).
		Str("discount_type", string(created.DiscountType)).
		Ints("active_days", created.ActiveDays).
		Msg("promotion created")

	s.broadcastUpdate(created)

	return created, nil
}

// List retrieves promotions, optionally scoped to one restaurant
func (s *PromotionService) List(ctx context.Context, restaurantID *uuid.UUID) ([]models.Promotion, error) {
	return s.repos.Promotion.List(ctx, restaurantID)
}

// Get retrieves a promotion by ID
func (s *PromotionService) Get(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	return s.repos.Promotion.GetByID(ctx, id)
}

// Delete removes a promotion
func (s *PromotionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repos.Promotion.Delete(ctx, id)
}

// storeImage writes the uploaded file under the configured upload dir with
// a generated name so unrelated uploads cannot collide.
func (s *PromotionService) storeImage(image io.Reader, imageName string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + filepath.Ext(imageName)
	path := filepath.Join(s.uploadDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, image); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}

// broadcastUpdate notifies connected clients that promotions changed so idle
// tablets refresh their rotation without polling.
func (s *PromotionService) broadcastUpdate(promo *models.Promotion) {
	message := websockets.Message{
		Type: websockets.TypePromotionUpdate,
	}
	data, err := json.Marshal(struct {
		ID string `json:"id"`
	}{ID: promo.ID.String()})
	if err != nil {
		return
	}
	message.Data = data

	payload, err := json.Marshal(message)
	if err != nil {
		return
	}

	if promo.RestaurantID != nil {
		s.hub.BroadcastToTenant(promo.RestaurantID.String(), payload)
		return
	}
	s.hub.BroadcastMessage(payload)
}
