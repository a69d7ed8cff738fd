package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tably-app/backoffice-service/internal/models"
)

// BannerRepository handles screensaver banner data access
type BannerRepository struct {
	db *sqlx.DB
}

// NewBannerRepository creates a new banner repository
func NewBannerRepository(db *sqlx.DB) *BannerRepository {
	return &BannerRepository{db: db}
}

// ListByRestaurant retrieves a tenant's banners ordered for playback
func (r *BannerRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]models.Banner, error) {
	query := `
		SELECT id, restaurant_id, image_url, display_order, created_at
		FROM screensaver_banners
		WHERE restaurant_id = $1
		ORDER BY display_order ASC, created_at ASC
	`

	var banners []models.Banner
	err := r.db.SelectContext(ctx, &banners, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}

	return banners, nil
}

// Create creates a new banner
func (r *BannerRepository) Create(ctx context.Context, banner models.Banner) (*models.Banner, error) {
	query := `
		INSERT INTO screensaver_banners (restaurant_id, image_url, display_order)
		VALUES ($1, $2, $3)
		RETURNING id, restaurant_id, image_url, display_order, created_at
	`

	var created models.Banner
	err := r.db.GetContext(
		ctx,
		&created,
		query,
		banner.RestaurantID,
		banner.ImageURL,
		banner.DisplayOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create banner: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a banner by ID
func (r *BannerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	query := `
		SELECT id, restaurant_id, image_url, display_order, created_at
		FROM screensaver_banners
		WHERE id = $1
	`

	var banner models.Banner
	err := r.db.GetContext(ctx, &banner, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get banner: %w", err)
	}

	return &banner, nil
}

// Delete removes a banner
func (r *BannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM screensaver_banners
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("banner not found")
	}

	return nil
}
