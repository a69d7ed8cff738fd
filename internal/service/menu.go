package service

import (
	"context"
	"fmt"

	"github.com/tably-app/backoffice-service/internal/db/repository"
	"github.com/tably-app/backoffice-service/internal/models"
)

// MenuService handles menu-related business logic
type MenuService struct {
	repos *repository.Repositories
}

// NewMenuService creates a new menu service
func NewMenuService(repos *repository.Repositories) *MenuService {
	return &MenuService{
		repos: repos,
	}
}

// GetTree assembles the full category -> subcategory -> product tree.
func (s *MenuService) GetTree(ctx context.Context) ([]models.MenuCategory, error) {
	categories, err := s.repos.Menu.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu categories: %w", err)
	}

	for i := range categories {
		subcategories, err := s.repos.Menu.ListSubcategories(ctx, categories[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load subcategories: %w", err)
		}

		for j := range subcategories {
			products, err := s.repos.Menu.ListProducts(ctx, subcategories[j].ID)
			if err != nil {
				return nil, fmt.Errorf("failed to load products: %w", err)
			}
			subcategories[j].Products = products
		}

		categories[i].Subcategories = subcategories
	}

	return categories, nil
}
