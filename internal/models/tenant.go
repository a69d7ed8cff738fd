package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type RenewalMode string

const (
	RenewalAutoMonthly  RenewalMode = "auto-monthly"
	RenewalManualAnnual RenewalMode = "manual-annual"
)

// Tenant is a restaurant client account managed by the back office.
type Tenant struct {
	ID             uuid.UUID   `db:"id" json:"id"`
	CompanyName    string      `db:"company_name" json:"company_name"`
	TaxID          string      `db:"tax_id" json:"tax_id"`
	Address        string      `db:"address" json:"address"`
	ContactName    string      `db:"contact_name" json:"contact_name"`
	LoginEmail     string      `db:"login_email" json:"login_email"`
	PlanTier       PlanTier    `db:"plan_tier" json:"plan_tier"`
	TabletCount    int         `db:"tablet_count" json:"tablet_count"`
	POSIntegration bool        `db:"pos_integration" json:"pos_integration"`
	StartDate      time.Time   `db:"start_date" json:"start_date"`
	RenewalMode    RenewalMode `db:"renewal_mode" json:"renewal_mode"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updated_at"`
}

// TenantRequest is the full onboarding aggregate: registration, plan and
// contract data arrive together in one atomic creation call.
type TenantRequest struct {
	CompanyName    string      `json:"company_name" validate:"required"`
	TaxID          string      `json:"tax_id" validate:"required"`
	Address        string      `json:"address" validate:"required"`
	ContactName    string      `json:"contact_name" validate:"required"`
	LoginEmail     string      `json:"login_email" validate:"required,email"`
	PlanTier       PlanTier    `json:"plan_tier" validate:"required,oneof=basic pro enterprise"`
	TabletCount    int         `json:"tablet_count" validate:"required,gte=1"`
	POSIntegration bool        `json:"pos_integration"`
	StartDate      time.Time   `json:"start_date" validate:"required"`
	RenewalMode    RenewalMode `json:"renewal_mode" validate:"required,oneof=auto-monthly manual-annual"`
}

func (r TenantRequest) Validate() error {
	switch {
	case r.CompanyName == "":
		return errors.New("company name is required")
	case r.TaxID == "":
		return errors.New("tax id is required")
	case r.ContactName == "":
		return errors.New("contact name is required")
	case r.LoginEmail == "":
		return errors.New("login email is required")
	case r.TabletCount < 1:
		return errors.New("tablet count must be at least 1")
	case r.StartDate.IsZero():
		return errors.New("start date is required")
	}
	switch r.PlanTier {
	case PlanBasic, PlanPro, PlanEnterprise:
	default:
		return errors.New("plan tier must be basic, pro or enterprise")
	}
	switch r.RenewalMode {
	case RenewalAutoMonthly, RenewalManualAnnual:
	default:
		return errors.New("renewal mode must be auto-monthly or manual-annual")
	}
	return nil
}
