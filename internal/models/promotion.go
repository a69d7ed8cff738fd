package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Validation errors surfaced to the client before anything is persisted.
var (
	ErrNoActiveDays       = errors.New("select at least one day")
	ErrInvalidDiscount    = errors.New("discount value out of range")
	ErrBadDiscountType    = errors.New("discount type must be percentage or fixed")
	ErrBadActivationClock = errors.New("start and end time must be HH:MM")
)

// LocalizedText maps a locale code to a display string, e.g. {"pt": "Happy hour"}.
type LocalizedText map[string]string

func (t LocalizedText) Value() (driver.Value, error) {
	if t == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(t)
}

func (t *LocalizedText) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into LocalizedText", src)
	}
	return json.Unmarshal(b, t)
}

// ActiveDays is a set of weekdays (0=Sunday .. 6=Saturday) kept sorted ascending.
type ActiveDays []int

// Toggle flips membership of day in the set. Toggling twice restores the
// original set. The result is always sorted ascending.
func (d ActiveDays) Toggle(day int) ActiveDays {
	out := make(ActiveDays, 0, len(d)+1)
	found := false
	for _, v := range d {
		if v == day {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, day)
	}
	sort.Ints(out)
	return out
}

func (d ActiveDays) Contains(day int) bool {
	for _, v := range d {
		if v == day {
			return true
		}
	}
	return false
}

func (d ActiveDays) Value() (driver.Value, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d)
}

func (d *ActiveDays) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into ActiveDays", src)
	}
	return json.Unmarshal(b, d)
}

type Promotion struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	RestaurantID  *uuid.UUID    `db:"restaurant_id" json:"restaurant_id,omitempty"`
	Title         LocalizedText `db:"title" json:"title"`
	DiscountType  DiscountType  `db:"discount_type" json:"discount_type"`
	DiscountValue float64       `db:"discount_value" json:"discount_value"`
	ActiveDays    ActiveDays    `db:"active_days" json:"active_days"`
	StartTime     string        `db:"start_time" json:"start_time"`
	EndTime       string        `db:"end_time" json:"end_time"`
	ImagePath     *string       `db:"image_path" json:"image_path,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// PromotionRequest carries the decoded multipart creation payload.
type PromotionRequest struct {
	RestaurantID  *uuid.UUID    `json:"restaurant_id"`
	Title         LocalizedText `json:"title" validate:"required"`
	DiscountType  DiscountType  `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue float64       `json:"discount_value" validate:"required,gt=0"`
	ActiveDays    ActiveDays    `json:"active_days" validate:"required,min=1"`
	StartTime     string        `json:"start_time" validate:"required"`
	EndTime       string        `json:"end_time" validate:"required"`
}

// Validate checks the request before any side effect takes place.
func (r PromotionRequest) Validate() error {
	if len(r.ActiveDays) == 0 {
		return ErrNoActiveDays
	}
	for _, d := range r.ActiveDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("active day %d out of range 0..6", d)
		}
	}
	if r.DiscountType != DiscountPercentage && r.DiscountType != DiscountFixed {
		return ErrBadDiscountType
	}
	if r.DiscountValue <= 0 {
		return ErrInvalidDiscount
	}
	if r.DiscountType == DiscountPercentage && r.DiscountValue > 100 {
		return ErrInvalidDiscount
	}
	if _, err := parseClock(r.StartTime); err != nil {
		return ErrBadActivationClock
	}
	if _, err := parseClock(r.EndTime); err != nil {
		return ErrBadActivationClock
	}
	return nil
}

// parseClock converts an HH:MM string to minutes since midnight. The whole
// string must match; trailing text or single-digit hours are rejected.
func parseClock(s string) (int, error) {
	if len(s) != len("15:04") {
		return 0, fmt.Errorf("clock %q must be HH:MM", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsActiveAt reports whether the promotion's activation window covers t.
// Windows where the end precedes the start wrap past midnight: the stretch
// after midnight still belongs to the preceding day's window, so a Friday
// 22:00-02:00 promotion is active early Saturday morning.
func (p Promotion) IsActiveAt(t time.Time) bool {
	start, err := parseClock(p.StartTime)
	if err != nil {
		return false
	}
	end, err := parseClock(p.EndTime)
	if err != nil {
		return false
	}

	day := int(t.Weekday())
	minute := t.Hour()*60 + t.Minute()

	if start <= end {
		return p.ActiveDays.Contains(day) && minute >= start && minute < end
	}

	// Overnight window
	if p.ActiveDays.Contains(day) && minute >= start {
		return true
	}
	prev := (day + 6) % 7
	return p.ActiveDays.Contains(prev) && minute < end
}
