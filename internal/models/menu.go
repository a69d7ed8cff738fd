package models

import (
	"time"

	"github.com/google/uuid"
)

// MenuCategory is the top level of the menu tree.
type MenuCategory struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`

	// Not stored in the database directly
	Subcategories []MenuSubcategory `db:"-" json:"subcategories,omitempty"`
}

type MenuSubcategory struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CategoryID   uuid.UUID `db:"category_id" json:"category_id"`
	Name         string    `db:"name" json:"name"`
	DisplayOrder int       `db:"display_order" json:"display_order"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`

	// Not stored in the database directly
	Products []Product `db:"-" json:"products,omitempty"`
}

type Product struct {
	ID            uuid.UUID `db:"id" json:"id"`
	SubcategoryID uuid.UUID `db:"subcategory_id" json:"subcategory_id"`
	Name          string    `db:"name" json:"name"`
	Price         float64   `db:"price" json:"price"`
	Available     bool      `db:"available" json:"available"`
	Description   *string   `db:"description" json:"description"`
	ImagePath     *string   `db:"image_path" json:"image_path"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
