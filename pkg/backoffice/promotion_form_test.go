package backoffice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleDayKeepsSetSortedAscending(t *testing.T) {
	form := NewPromotionForm(nil, "")

	form.ToggleDay(6)
	form.ToggleDay(0)
	form.ToggleDay(3)
	assert.Equal(t, []int{0, 3, 6}, form.ActiveDays())

	// Toggling twice returns to the original state.
	form.ToggleDay(3)
	assert.Equal(t, []int{0, 6}, form.ActiveDays())
	form.ToggleDay(3)
	assert.Equal(t, []int{0, 3, 6}, form.ActiveDays())
}

func TestSetDiscountTypeKeepsValue(t *testing.T) {
	form := NewPromotionForm(nil, "")
	form.SetDiscountValue(15)

	form.SetDiscountType(DiscountFixed)
	assert.Equal(t, DiscountFixed, form.DiscountType())
	assert.Equal(t, 15.0, form.DiscountValue())

	form.SetDiscountType(DiscountPercentage)
	assert.Equal(t, 15.0, form.DiscountValue())
}

func TestSubmitWithoutDaysNeverTouchesNetwork(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	form := NewPromotionForm(NewClient(server.URL, NewSession()), "r1")
	form.SetTitle("pt", "Sexta do chopp")
	form.SetDiscountValue(10)
	form.SetWindow("18:00", "20:00")

	err := form.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoDaysSelected)
	assert.Zero(t, requests.Load())

	// Entered data is preserved verbatim for a manual retry.
	assert.Equal(t, 10.0, form.DiscountValue())
	assert.False(t, form.Busy())
}

func TestSubmitSendsMultipartAndSignalsDone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))

		var title map[string]string
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("title")), &title))
		assert.Equal(t, "Sexta do chopp", title["pt"])

		var days []int
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("activeDays")), &days))
		assert.Equal(t, []int{1, 5}, days)

		assert.Equal(t, "percentage", r.FormValue("discountType"))
		assert.Equal(t, "15", r.FormValue("discountValue"))
		assert.Equal(t, "18:00", r.FormValue("startTime"))
		assert.Equal(t, "20:00", r.FormValue("endTime"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "promo.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"p1"}`))
	}))
	defer server.Close()

	form := NewPromotionForm(NewClient(server.URL, NewSession()), "")
	form.SetTitle("pt", "Sexta do chopp")
	form.SetDiscountType(DiscountPercentage)
	form.SetDiscountValue(15)
	form.SetWindow("18:00", "20:00")
	form.ToggleDay(5)
	form.ToggleDay(1)
	form.AttachImage("promo.png", []byte("png-bytes"))

	var created bool
	require.NoError(t, form.Submit(context.Background(), func(ok bool) { created = ok }))
	assert.True(t, created)
	assert.False(t, form.Busy())
}

func TestSubmitFailureKeepsFormOpenWithData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"database unavailable"}`))
	}))
	defer server.Close()

	form := NewPromotionForm(NewClient(server.URL, NewSession()), "")
	form.SetTitle("pt", "Sexta do chopp")
	form.SetDiscountValue(15)
	form.SetWindow("18:00", "20:00")
	form.ToggleDay(5)

	var doneCalled bool
	err := form.Submit(context.Background(), func(bool) { doneCalled = true })
	require.Error(t, err)
	assert.EqualError(t, err, "database unavailable")
	assert.False(t, doneCalled)

	// No partial save, no cleared fields: the user may retry manually.
	assert.Equal(t, []int{5}, form.ActiveDays())
	assert.Equal(t, 15.0, form.DiscountValue())
	assert.False(t, form.Busy())
}

func TestSubmitIsSingleFlight(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"p1"}`))
	}))
	defer server.Close()

	form := NewPromotionForm(NewClient(server.URL, NewSession()), "")
	form.SetTitle("pt", "Sexta do chopp")
	form.SetDiscountValue(15)
	form.SetWindow("18:00", "20:00")
	form.ToggleDay(5)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- form.Submit(context.Background(), nil)
	}()

	// Wait for the first submission to be in flight.
	require.Eventually(t, form.Busy, 2*time.Second, 10*time.Millisecond)

	err := form.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-firstDone)
	assert.False(t, form.Busy())
}
