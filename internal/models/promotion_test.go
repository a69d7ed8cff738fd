package models

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveDaysToggle(t *testing.T) {
	tests := []struct {
		name     string
		toggles  []int
		expected ActiveDays
	}{
		{
			name:     "single toggle adds",
			toggles:  []int{3},
			expected: ActiveDays{3},
		},
		{
			name:     "double toggle restores",
			toggles:  []int{3, 3},
			expected: ActiveDays{},
		},
		{
			name:     "result is sorted ascending",
			toggles:  []int{6, 0, 3, 1},
			expected: ActiveDays{0, 1, 3, 6},
		},
		{
			name:     "mixed adds and removes",
			toggles:  []int{1, 2, 3, 2},
			expected: ActiveDays{1, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := ActiveDays{}
			for _, d := range tt.toggles {
				days = days.Toggle(d)
			}
			assert.Equal(t, tt.expected, days)
		})
	}
}

func TestActiveDaysToggleSymmetricDifference(t *testing.T) {
	// Any toggle sequence must leave exactly the days toggled an odd
	// number of times, in ascending order.
	sequence := []int{5, 2, 5, 0, 2, 2, 6, 1, 1}

	counts := make(map[int]int)
	for _, d := range sequence {
		counts[d]++
	}
	var expected []int
	for d, n := range counts {
		if n%2 == 1 {
			expected = append(expected, d)
		}
	}
	sort.Ints(expected)

	days := ActiveDays{}
	for _, d := range sequence {
		days = days.Toggle(d)
	}

	require.Equal(t, len(expected), len(days))
	for i := range expected {
		assert.Equal(t, expected[i], days[i])
	}
	assert.True(t, sort.IntsAreSorted(days))
}

func TestPromotionRequestValidate(t *testing.T) {
	valid := PromotionRequest{
		Title:         LocalizedText{"pt": "Happy hour"},
		DiscountType:  DiscountPercentage,
		DiscountValue: 10,
		ActiveDays:    ActiveDays{1, 2},
		StartTime:     "18:00",
		EndTime:       "20:00",
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("empty day selection is rejected", func(t *testing.T) {
		req := valid
		req.ActiveDays = ActiveDays{}
		assert.ErrorIs(t, req.Validate(), ErrNoActiveDays)
	})

	t.Run("day out of range is rejected", func(t *testing.T) {
		req := valid
		req.ActiveDays = ActiveDays{7}
		assert.Error(t, req.Validate())
	})

	t.Run("zero discount is rejected", func(t *testing.T) {
		req := valid
		req.DiscountValue = 0
		assert.ErrorIs(t, req.Validate(), ErrInvalidDiscount)
	})

	t.Run("percentage above 100 is rejected", func(t *testing.T) {
		req := valid
		req.DiscountValue = 150
		assert.ErrorIs(t, req.Validate(), ErrInvalidDiscount)
	})

	t.Run("unknown discount type is rejected", func(t *testing.T) {
		req := valid
		req.DiscountType = "bogo"
		assert.ErrorIs(t, req.Validate(), ErrBadDiscountType)
	})

	t.Run("malformed clock is rejected", func(t *testing.T) {
		for _, clock := range []string{"6pm", "18:00:30", "18:00x", "8:00", "25:00", "18:61"} {
			req := valid
			req.StartTime = clock
			assert.ErrorIs(t, req.Validate(), ErrBadActivationClock, clock)
		}
	})

	t.Run("overnight window is allowed", func(t *testing.T) {
		req := valid
		req.StartTime = "22:00"
		req.EndTime = "02:00"
		assert.NoError(t, req.Validate())
	})
}

func TestPromotionIsActiveAt(t *testing.T) {
	// 2026-09-04 is a Friday.
	friday := func(hour, min int) time.Time {
		return time.Date(2026, 9, 4, hour, min, 0, 0, time.UTC)
	}
	saturday := func(hour, min int) time.Time {
		return time.Date(2026, 9, 5, hour, min, 0, 0, time.UTC)
	}

	t.Run("daytime window", func(t *testing.T) {
		promo := Promotion{
			ActiveDays: ActiveDays{5}, // Friday
			StartTime:  "12:00",
			EndTime:    "15:00",
		}
		assert.True(t, promo.IsActiveAt(friday(12, 0)))
		assert.True(t, promo.IsActiveAt(friday(14, 59)))
		assert.False(t, promo.IsActiveAt(friday(15, 0)))
		assert.False(t, promo.IsActiveAt(friday(11, 59)))
		assert.False(t, promo.IsActiveAt(saturday(13, 0)))
	})

	t.Run("overnight window spills into the next day", func(t *testing.T) {
		promo := Promotion{
			ActiveDays: ActiveDays{5}, // Friday
			StartTime:  "22:00",
			EndTime:    "02:00",
		}
		assert.True(t, promo.IsActiveAt(friday(23, 30)))
		assert.True(t, promo.IsActiveAt(saturday(1, 30)))
		assert.False(t, promo.IsActiveAt(saturday(2, 0)))
		assert.False(t, promo.IsActiveAt(friday(21, 0)))
		// Saturday evening is not covered: only the Friday window is active.
		assert.False(t, promo.IsActiveAt(saturday(23, 0)))
	})
}

func TestLocalizedTextRoundtrip(t *testing.T) {
	title := LocalizedText{"pt": "Sexta do chopp"}

	value, err := title.Value()
	require.NoError(t, err)

	var decoded LocalizedText
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, title, decoded)
}
