package repository

import (
	"github.com/jmoiron/sqlx"
)

// Repositories provides access to all repository instances
type Repositories struct {
	User      *UserRepository
	Tenant    *TenantRepository
	Promotion *PromotionRepository
	Banner    *BannerRepository
	Menu      *MenuRepository
}

// NewRepositories creates a new repositories container
func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:      NewUserRepository(db),
		Tenant:    NewTenantRepository(db),
		Promotion: NewPromotionRepository(db),
		Banner:    NewBannerRepository(db),
		Menu:      NewMenuRepository(db),
	}
}
