package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tably-app/backoffice-service/internal/models"
)

// PromotionRepository handles promotion data access
type PromotionRepository struct {
	db *sqlx.DB
}

// NewPromotionRepository creates a new promotion repository
func NewPromotionRepository(db *sqlx.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

// Create creates a new promotion
func (r *PromotionRepository) Create(ctx context.Context, promo models.Promotion) (*models.Promotion, error) {
	query := `
		INSERT INTO promotions (restaurant_id, title, discount_type, discount_value,
		                        active_days, start_time, end_time, image_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, restaurant_id, title, discount_type, discount_value,
		          active_days, start_time, end_time, image_path, created_at, updated_at
	`

	var created models.Promotion
	err := r.db.GetContext(
		ctx,
		&created,
		query,
		promo.RestaurantID,
		promo.Title,
		promo.DiscountType,
		promo.DiscountValue,
		promo.ActiveDays,
		promo.StartTime,
		promo.EndTime,
		promo.ImagePath,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a promotion by ID
func (r *PromotionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	query := `
		SELECT id, restaurant_id, title, discount_type, discount_value,
		       active_days, start_time, end_time, image_path, created_at, updated_at
		FROM promotions
		WHERE id = $1
	`

	var promo models.Promotion
	err := r.db.GetContext(ctx, &promo, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get promotion: %w", err)
	}

	return &promo, nil
}

// List retrieves promotions, optionally filtered by restaurant
func (r *PromotionRepository) List(ctx context.Context, restaurantID *uuid.UUID) ([]models.Promotion, error) {
	var query string
	var args []interface{}

	if restaurantID != nil {
		query = `
			SELECT id, restaurant_id, title, discount_type, discount_value,
			       active_days, start_time, end_time, image_path, created_at, updated_at
			FROM promotions
			WHERE restaurant_id = $1
			ORDER BY created_at DESC
		`
		args = append(args, *restaurantID)
	} else {
		query = `
			SELECT id, restaurant_id, title, discount_type, discount_value,
			       active_days, start_time, end_time, image_path, created_at, updated_at
			FROM promotions
			ORDER BY created_at DESC
		`
	}

	var promos []models.Promotion
	err := r.db.SelectContext(ctx, &promos, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}

	return promos, nil
}

// Delete removes a promotion
func (r *PromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM promotions
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete promotion: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("promotion not found")
	}

	return nil
}
