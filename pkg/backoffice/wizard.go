package backoffice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	wizardFirstStep = 1
	wizardLastStep  = 3
)

var ErrWizardIncomplete = errors.New("wizard must be on the final step to create")

// Registration holds the step-1 fields.
type Registration struct {
	CompanyName string
	TaxID       string
	Address     string
	ContactName string
	LoginEmail  string
}

// PlanSelection holds the step-2 fields.
type PlanSelection struct {
	Tier           PlanTier
	TabletCount    int
	POSIntegration bool
}

// Contract holds the step-3 fields.
type Contract struct {
	StartDate   time.Time
	RenewalMode RenewalMode
}

// OnboardingWizard guides tenant creation through three ordered,
// non-skippable steps. Fields accumulate across steps and are submitted in
// one atomic creation call at the end. Reopening the wizard always starts
// over from step 1 with everything cleared.
type OnboardingWizard struct {
	client  *Client
	catalog PlanCatalog

	mu           sync.Mutex
	step         int
	busy         bool
	registration Registration
	plan         PlanSelection
	contract     Contract
}

func NewOnboardingWizard(client *Client, catalog PlanCatalog) *OnboardingWizard {
	return &OnboardingWizard{
		client:  client,
		catalog: catalog,
		step:    wizardFirstStep,
	}
}

// Open resets the wizard to step 1 and clears every field, regardless of any
// prior cancelled run.
func (w *OnboardingWizard) Open() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = wizardFirstStep
	w.registration = Registration{}
	w.plan = PlanSelection{}
	w.contract = Contract{}
}

// Step returns the current step, always within [1,3].
func (w *OnboardingWizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Next advances one step. Advancing past the last step is a no-op.
func (w *OnboardingWizard) Next() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step < wizardLastStep {
		w.step++
	}
}

// Prev goes back one step. Going back from the first step is a no-op.
func (w *OnboardingWizard) Prev() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > wizardFirstStep {
		w.step--
	}
}

func (w *OnboardingWizard) SetRegistration(r Registration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.registration = r
}

func (w *OnboardingWizard) Registration() Registration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.registration
}

func (w *OnboardingWizard) SetPlan(p PlanSelection) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.plan = p
}

func (w *OnboardingWizard) Plan() PlanSelection {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.plan
}

func (w *OnboardingWizard) SetContract(c Contract) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.contract = c
}

func (w *OnboardingWizard) Contract() Contract {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.contract
}

// BillingSummary computes the monthly charge for the selected plan from the
// catalog: base price plus the POS surcharge when integration is enabled.
// Tablet count is shown but carries no per-unit price.
func (w *OnboardingWizard) BillingSummary() (float64, error) {
	w.mu.Lock()
	tier := w.plan.Tier
	pos := w.plan.POSIntegration
	w.mu.Unlock()

	for _, p := range w.catalog.Plans {
		if p.Tier == tier {
			charge := p.BasePrice
			if pos {
				charge += w.catalog.POSSurcharge
			}
			return charge, nil
		}
	}
	return 0, fmt.Errorf("unknown plan tier %q", tier)
}

// Create performs the terminal creation call with the accumulated aggregate.
// It is only valid on the final step, and at most one call may be in flight.
func (w *OnboardingWizard) Create(ctx context.Context) (Tenant, error) {
	w.mu.Lock()
	if w.step != wizardLastStep {
		w.mu.Unlock()
		return Tenant{}, ErrWizardIncomplete
	}
	if w.busy {
		w.mu.Unlock()
		return Tenant{}, ErrSubmitInFlight
	}
	w.busy = true

	payload := TenantPayload{
		CompanyName:    w.registration.CompanyName,
		TaxID:          w.registration.TaxID,
		Address:        w.registration.Address,
		ContactName:    w.registration.ContactName,
		LoginEmail:     w.registration.LoginEmail,
		PlanTier:       w.plan.Tier,
		TabletCount:    w.plan.TabletCount,
		POSIntegration: w.plan.POSIntegration,
		StartDate:      w.contract.StartDate,
		RenewalMode:    w.contract.RenewalMode,
	}
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.busy = false
		w.mu.Unlock()
	}()

	return w.client.CreateTenant(ctx, payload)
}
