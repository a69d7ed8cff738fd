package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/tably-app/backoffice-service/internal/models"
)

// TenantRepository handles tenant (restaurant client) data access
type TenantRepository struct {
	db *sqlx.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *sqlx.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	query := `
		SELECT id, company_name, tax_id, address, contact_name, login_email,
		       plan_tier, tablet_count, pos_integration, start_date, renewal_mode,
		       created_at, updated_at
		FROM tenants
		WHERE id = $1
	`

	var tenant models.Tenant
	err := r.db.GetContext(ctx, &tenant, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &tenant, nil
}

// List retrieves all tenants
func (r *TenantRepository) List(ctx context.Context) ([]models.Tenant, error) {
	query := `
		SELECT id, company_name, tax_id, address, contact_name, login_email,
		       plan_tier, tablet_count, pos_integration, start_date, renewal_mode,
		       created_at, updated_at
		FROM tenants
		ORDER BY company_name ASC
	`

	var tenants []models.Tenant
	err := r.db.SelectContext(ctx, &tenants, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	return tenants, nil
}

// CreateTx creates a new tenant inside an existing transaction
func (r *TenantRepository) CreateTx(ctx context.Context, tx *sqlx.Tx, tenant models.Tenant) (*models.Tenant, error) {
	query := `
		INSERT INTO tenants (company_name, tax_id, address, contact_name, login_email,
		                     plan_tier, tablet_count, pos_integration, start_date, renewal_mode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, company_name, tax_id, address, contact_name, login_email,
		          plan_tier, tablet_count, pos_integration, start_date, renewal_mode,
		          created_at, updated_at
	`

	var created models.Tenant
	err := tx.GetContext(
		ctx,
		&created,
		query,
		tenant.CompanyName,
		tenant.TaxID,
		tenant.Address,
		tenant.ContactName,
		tenant.LoginEmail,
		tenant.PlanTier,
		tenant.TabletCount,
		tenant.POSIntegration,
		tenant.StartDate,
		tenant.RenewalMode,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return &created, nil
}

// BeginTx starts a transaction for the atomic onboarding create
func (r *TenantRepository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Delete removes a tenant
func (r *TenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM tenants
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("tenant not found")
	}

	return nil
}
