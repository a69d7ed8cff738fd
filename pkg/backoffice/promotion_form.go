package backoffice

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// Form-level errors. ErrNoDaysSelected is a validation failure: it is raised
// before any network traffic and the form stays open with its data intact.
var (
	ErrNoDaysSelected = errors.New("select at least one day")
	ErrSubmitInFlight = errors.New("submission already in progress")
)

// PromotionForm collects a recurring promotional-offer definition and
// submits it as a single multipart creation request. One form owns its draft
// exclusively until submission.
type PromotionForm struct {
	client *Client

	mu           sync.Mutex
	busy         bool
	restaurantID string
	title        map[string]string
	discountType DiscountType
	value        float64
	days         []int
	startTime    string
	endTime      string
	imageName    string
	image        []byte
}

func NewPromotionForm(client *Client, restaurantID string) *PromotionForm {
	return &PromotionForm{
		client:       client,
		restaurantID: restaurantID,
		title:        make(map[string]string),
		discountType: DiscountPercentage,
	}
}

// ToggleDay flips membership of day (0=Sunday .. 6=Saturday) in the active
// set. Toggling twice restores the original state. The set is kept sorted
// ascending.
func (f *PromotionForm) ToggleDay(day int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := f.days[:0]
	found := false
	for _, d := range f.days {
		if d == day {
			found = true
			continue
		}
		out = append(out, d)
	}
	if !found {
		out = append(out, day)
	}
	sort.Ints(out)
	f.days = out
}

// ActiveDays returns a copy of the selected days, sorted ascending.
func (f *PromotionForm) ActiveDays() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.days...)
}

// SetDiscountType switches the mutually-exclusive percentage/fixed selector.
// The entered value is kept; only its unit is reinterpreted.
func (f *PromotionForm) SetDiscountType(t DiscountType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.discountType = t
}

func (f *PromotionForm) DiscountType() DiscountType {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.discountType
}

func (f *PromotionForm) SetDiscountValue(v float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = v
}

func (f *PromotionForm) DiscountValue() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// SetTitle sets the display string for a locale, e.g. ("pt", "Happy hour").
func (f *PromotionForm) SetTitle(locale, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.title[locale] = text
}

// SetWindow sets the daily activation window (HH:MM). No ordering is
// enforced: an end before the start means the window wraps past midnight.
func (f *PromotionForm) SetWindow(start, end string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.startTime = start
	f.endTime = end
}

// AttachImage attaches an optional image to be sent as a multipart file.
func (f *PromotionForm) AttachImage(name string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.imageName = name
	f.image = data
}

// Busy reports whether a submission is in flight.
func (f *PromotionForm) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// Submit validates the draft and issues one creation request. With an empty
// day selection it fails before any network call. While a submission is in
// flight, re-invocation fails immediately (single-flight). On success the
// done callback receives true so the caller can close the form and refresh
// its list; on failure the entered data is left untouched for a manual
// retry.
func (f *PromotionForm) Submit(ctx context.Context, done func(created bool)) error {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	if len(f.days) == 0 {
		f.mu.Unlock()
		return ErrNoDaysSelected
	}
	f.busy = true

	payload := PromotionPayload{
		RestaurantID:  f.restaurantID,
		Title:         f.title,
		DiscountType:  f.discountType,
		DiscountValue: f.value,
		ActiveDays:    append([]int(nil), f.days...),
		StartTime:     f.startTime,
		EndTime:       f.endTime,
		ImageName:     f.imageName,
		Image:         f.image,
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.busy = false
		f.mu.Unlock()
	}()

	if _, err := f.client.CreatePromotion(ctx, payload); err != nil {
		return err
	}

	if done != nil {
		done(true)
	}
	return nil
}
