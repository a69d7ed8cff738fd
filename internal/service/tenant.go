package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tably-app/backoffice-service/internal/config"
	"github.com/tably-app/backoffice-service/internal/db/repository"
	"github.com/tably-app/backoffice-service/internal/metrics"
	"github.com/tably-app/backoffice-service/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// TenantService handles tenant onboarding and billing lookups
type TenantService struct {
	repos   *repository.Repositories
	catalog models.PlanCatalog
	logger  zerolog.Logger
}

// NewTenantService creates a new tenant service
func NewTenantService(repos *repository.Repositories, catalog models.PlanCatalog, logger zerolog.Logger) *TenantService {
	return &TenantService{
		repos:   repos,
		catalog: catalog,
		logger:  logger.With().Str("component", "tenants").Logger(),
	}
}

// NewPlanCatalog builds the plan catalog from configuration.
func NewPlanCatalog(cfg config.Billing) models.PlanCatalog {
	catalog := models.PlanCatalog{POSSurcharge: cfg.POSSurcharge}
	for _, p := range cfg.Plans {
		catalog.Plans = append(catalog.Plans, models.Plan{
			Tier:      models.PlanTier(p.Tier),
			Name:      p.Name,
			BasePrice: p.BasePrice,
		})
	}
	return catalog
}

// Catalog returns the plan catalog
func (s *TenantService) Catalog() models.PlanCatalog {
	return s.catalog
}

// List retrieves all tenants
func (s *TenantService) List(ctx context.Context) ([]models.Tenant, error) {
	return s.repos.Tenant.List(ctx)
}

// Get retrieves a tenant by ID
func (s *TenantService) Get(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	return s.repos.Tenant.GetByID(ctx, id)
}

// Delete removes a tenant and, via cascade, its users and content.
func (s *TenantService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repos.Tenant.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("tenant_id", id.String()).Msg("tenant deleted")
	return nil
}

// CreateFromOnboarding performs the terminal onboarding creation: the full
// aggregate arrives in one call and the tenant plus its manager login are
// created in a single transaction.
func (s *TenantService) CreateFromOnboarding(ctx context.Context, req models.TenantRequest) (*models.Tenant, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.catalog.Plan(req.PlanTier); err != nil {
		return nil, err
	}

	tx, err := s.repos.Tenant.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	tenant := models.Tenant{
		CompanyName:    req.CompanyName,
		TaxID:          req.TaxID,
		Address:        req.Address,
		ContactName:    req.ContactName,
		LoginEmail:     req.LoginEmail,
		PlanTier:       req.PlanTier,
		TabletCount:    req.TabletCount,
		POSIntegration: req.POSIntegration,
		StartDate:      req.StartDate,
		RenewalMode:    req.RenewalMode,
	}

	created, err := s.repos.Tenant.CreateTx(ctx, tx, tenant)
	if err != nil {
		return nil, err
	}

	// The manager account starts with an unguessable password.
	// TODO: send an invite email with a password reset link.
	initialPassword, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash initial password: %w", err)
	}

	manager := models.User{
		Email:        req.LoginEmail,
		PasswordHash: string(initialPassword),
		Name:         req.ContactName,
		Role:         models.RoleManager,
		RestaurantID: &created.ID,
		IsActive:     true,
	}

	if _, err := s.repos.User.CreateTx(ctx, tx, manager); err != nil {
		return nil, fmt.Errorf("failed to create manager login: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit onboarding: %w", err)
	}

	metrics.IncOnboardingCompleted(string(created.PlanTier))
	s.logger.Info().
		Str("tenant_id", created.ID.String()).
		Str("plan_tier", string(created.PlanTier)).
		Int("tablet_count", created.TabletCount).
		Msg("tenant onboarded")

	return created, nil
}

// MonthlyCharge computes the billing summary for a plan selection.
func (s *TenantService) MonthlyCharge(tier models.PlanTier, posIntegration bool) (float64, error) {
	return s.catalog.MonthlyCharge(tier, posIntegration)
}
