package backoffice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlanCatalog() PlanCatalog {
	return PlanCatalog{
		POSSurcharge: 20,
		Plans: []Plan{
			{Tier: PlanBasic, Name: "Basic", BasePrice: 49},
			{Tier: PlanPro, Name: "Pro", BasePrice: 99},
			{Tier: PlanEnterprise, Name: "Enterprise", BasePrice: 199},
		},
	}
}

func TestWizardStepIsClamped(t *testing.T) {
	w := NewOnboardingWizard(nil, testPlanCatalog())

	assert.Equal(t, 1, w.Step())

	for i := 0; i < 10; i++ {
		w.Next()
	}
	assert.Equal(t, 3, w.Step())

	for i := 0; i < 10; i++ {
		w.Prev()
	}
	assert.Equal(t, 1, w.Step())
}

func TestWizardFieldsAccumulateAcrossSteps(t *testing.T) {
	w := NewOnboardingWizard(nil, testPlanCatalog())

	w.SetRegistration(Registration{CompanyName: "Cantina da Praça", LoginEmail: "dono@cantina.br"})
	w.Next()
	w.SetPlan(PlanSelection{Tier: PlanPro, TabletCount: 4, POSIntegration: true})
	w.Next()
	w.SetContract(Contract{StartDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), RenewalMode: RenewalAutoMonthly})

	// Reaching step 3 did not discard earlier fields.
	assert.Equal(t, "Cantina da Praça", w.Registration().CompanyName)
	assert.Equal(t, PlanPro, w.Plan().Tier)
	assert.Equal(t, RenewalAutoMonthly, w.Contract().RenewalMode)
}

func TestWizardBillingSummary(t *testing.T) {
	tests := []struct {
		name     string
		plan     PlanSelection
		expected float64
	}{
		{"pro with pos integration", PlanSelection{Tier: PlanPro, POSIntegration: true}, 119},
		{"basic without pos integration", PlanSelection{Tier: PlanBasic}, 49},
		{"enterprise with pos integration", PlanSelection{Tier: PlanEnterprise, POSIntegration: true}, 219},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewOnboardingWizard(nil, testPlanCatalog())
			w.SetPlan(tt.plan)

			charge, err := w.BillingSummary()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, charge)
		})
	}

	t.Run("unknown tier errors", func(t *testing.T) {
		w := NewOnboardingWizard(nil, testPlanCatalog())
		w.SetPlan(PlanSelection{Tier: "platinum"})
		_, err := w.BillingSummary()
		assert.Error(t, err)
	})
}

func TestWizardCreateRequiresFinalStep(t *testing.T) {
	w := NewOnboardingWizard(nil, testPlanCatalog())

	_, err := w.Create(context.Background())
	assert.ErrorIs(t, err, ErrWizardIncomplete)
}

func TestWizardCreateSubmitsFullAggregateOnce(t *testing.T) {
	var payload TenantPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/clients", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"t1","company_name":"Cantina da Praça","plan_tier":"pro"}`))
	}))
	defer server.Close()

	w := NewOnboardingWizard(NewClient(server.URL, NewSession()), testPlanCatalog())
	w.SetRegistration(Registration{
		CompanyName: "Cantina da Praça",
		TaxID:       "12.345.678/0001-00",
		Address:     "Praça Central, 1",
		ContactName: "Marina",
		LoginEmail:  "dono@cantina.br",
	})
	w.Next()
	w.SetPlan(PlanSelection{Tier: PlanPro, TabletCount: 4, POSIntegration: true})
	w.Next()
	w.SetContract(Contract{
		StartDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		RenewalMode: RenewalAutoMonthly,
	})

	tenant, err := w.Create(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t1", tenant.ID)

	// One call carried the whole aggregate, not per-step fragments.
	assert.Equal(t, "Cantina da Praça", payload.CompanyName)
	assert.Equal(t, "12.345.678/0001-00", payload.TaxID)
	assert.Equal(t, PlanPro, payload.PlanTier)
	assert.Equal(t, 4, payload.TabletCount)
	assert.True(t, payload.POSIntegration)
	assert.Equal(t, RenewalAutoMonthly, payload.RenewalMode)
}

func TestWizardReopenResetsEverything(t *testing.T) {
	w := NewOnboardingWizard(nil, testPlanCatalog())

	w.SetRegistration(Registration{CompanyName: "Abandoned Run"})
	w.Next()
	w.SetPlan(PlanSelection{Tier: PlanEnterprise, TabletCount: 9})
	w.Next()

	// User cancels, then reopens the dialog.
	w.Open()

	assert.Equal(t, 1, w.Step())
	assert.Equal(t, Registration{}, w.Registration())
	assert.Equal(t, PlanSelection{}, w.Plan())
	assert.Equal(t, Contract{}, w.Contract())
}
