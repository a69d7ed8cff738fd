package models

import (
	"time"

	"github.com/google/uuid"
)

// Banner is an image shown on an idle tablet screensaver.
type Banner struct {
	ID           uuid.UUID `db:"id" json:"id"`
	RestaurantID uuid.UUID `db:"restaurant_id" json:"restaurant_id"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	DisplayOrder int       `db:"display_order" json:"order"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// BannerRequest is used for banner creation
type BannerRequest struct {
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
	ImageURL     string    `json:"image_url" validate:"required,url"`
	DisplayOrder int       `json:"order"`
}
