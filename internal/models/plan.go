package models

import "fmt"

type PlanTier string

const (
	PlanBasic      PlanTier = "basic"
	PlanPro        PlanTier = "pro"
	PlanEnterprise PlanTier = "enterprise"
)

// Plan is one subscription tier from the catalog. Prices live in
// configuration, not in code.
type Plan struct {
	Tier      PlanTier `json:"tier"`
	Name      string   `json:"name"`
	BasePrice float64  `json:"base_price"`
}

// PlanCatalog holds the purchasable tiers and the flat monthly surcharge
// applied when POS integration is enabled.
type PlanCatalog struct {
	Plans        []Plan  `json:"plans"`
	POSSurcharge float64 `json:"pos_surcharge"`
}

func (c PlanCatalog) Plan(tier PlanTier) (Plan, error) {
	for _, p := range c.Plans {
		if p.Tier == tier {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("unknown plan tier %q", tier)
}

// MonthlyCharge computes the recurring charge for a tier. Tablet count is
// collected during onboarding but carries no per-unit price yet.
func (c PlanCatalog) MonthlyCharge(tier PlanTier, posIntegration bool) (float64, error) {
	p, err := c.Plan(tier)
	if err != nil {
		return 0, err
	}
	charge := p.BasePrice
	if posIntegration {
		charge += c.POSSurcharge
	}
	return charge, nil
}
