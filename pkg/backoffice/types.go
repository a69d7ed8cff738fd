package backoffice

import "time"

// Wire types for the back-office REST API. These mirror the server's JSON
// shapes without pulling server internals into the SDK.

type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleManager    Role = "manager"
	RoleWaiter     Role = "waiter"
)

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	RestaurantID string `json:"restaurant_id,omitempty"`
}

type Banner struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	ImageURL     string `json:"image_url"`
	Order        int    `json:"order"`
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Promotion struct {
	ID            string            `json:"id"`
	Title         map[string]string `json:"title"`
	DiscountType  DiscountType      `json:"discount_type"`
	DiscountValue float64           `json:"discount_value"`
	ActiveDays    []int             `json:"active_days"`
	StartTime     string            `json:"start_time"`
	EndTime       string            `json:"end_time"`
}

type PlanTier string

const (
	PlanBasic      PlanTier = "basic"
	PlanPro        PlanTier = "pro"
	PlanEnterprise PlanTier = "enterprise"
)

type Plan struct {
	Tier      PlanTier `json:"tier"`
	Name      string   `json:"name"`
	BasePrice float64  `json:"base_price"`
}

// PlanCatalog is fetched from the server so prices are never hard-coded in
// the client.
type PlanCatalog struct {
	Plans        []Plan  `json:"plans"`
	POSSurcharge float64 `json:"pos_surcharge"`
}

type RenewalMode string

const (
	RenewalAutoMonthly  RenewalMode = "auto-monthly"
	RenewalManualAnnual RenewalMode = "manual-annual"
)

type Tenant struct {
	ID          string   `json:"id"`
	CompanyName string   `json:"company_name"`
	PlanTier    PlanTier `json:"plan_tier"`
}

// TenantPayload is the full onboarding aggregate submitted in one call.
type TenantPayload struct {
	CompanyName    string      `json:"company_name"`
	TaxID          string      `json:"tax_id"`
	Address        string      `json:"address"`
	ContactName    string      `json:"contact_name"`
	LoginEmail     string      `json:"login_email"`
	PlanTier       PlanTier    `json:"plan_tier"`
	TabletCount    int         `json:"tablet_count"`
	POSIntegration bool        `json:"pos_integration"`
	StartDate      time.Time   `json:"start_date"`
	RenewalMode    RenewalMode `json:"renewal_mode"`
}

type MenuCategory struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Subcategories []MenuSubcategory `json:"subcategories,omitempty"`
}

type MenuSubcategory struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products,omitempty"`
}

type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}
