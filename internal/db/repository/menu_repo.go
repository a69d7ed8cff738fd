package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tably-app/backoffice-service/internal/models"
)

// MenuRepository handles menu data access
type MenuRepository struct {
	db *sqlx.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *sqlx.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// ListCategories retrieves all menu categories
func (r *MenuRepository) ListCategories(ctx context.Context) ([]models.MenuCategory, error) {
	query := `
		SELECT id, name, display_order, created_at, updated_at
		FROM menu_categories
		ORDER BY display_order ASC, name ASC
	`

	var categories []models.MenuCategory
	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu categories: %w", err)
	}

	return categories, nil
}

// ListSubcategories retrieves all subcategories for a category
func (r *MenuRepository) ListSubcategories(ctx context.Context, categoryID uuid.UUID) ([]models.MenuSubcategory, error) {
	query := `
		SELECT id, category_id, name, display_order, created_at, updated_at
		FROM menu_subcategories
		WHERE category_id = $1
		ORDER BY display_order ASC, name ASC
	`

	var subcategories []models.MenuSubcategory
	err := r.db.SelectContext(ctx, &subcategories, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu subcategories: %w", err)
	}

	return subcategories, nil
}

// ListProducts retrieves all products for a subcategory
func (r *MenuRepository) ListProducts(ctx context.Context, subcategoryID uuid.UUID) ([]models.Product, error) {
	query := `
		SELECT id, subcategory_id, name, price, available, description, image_path, created_at, updated_at
		FROM products
		WHERE subcategory_id = $1
		ORDER BY name ASC
	`

	var products []models.Product
	err := r.db.SelectContext(ctx, &products, query, subcategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
