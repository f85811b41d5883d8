package pricing

import (
	"testing"
	"time"

	"SaveNServe-Backend/entities"

	"github.com/stretchr/testify/assert"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	// Time of day never changes the bucket, only the calendar date does.
	assert.Equal(t, 1, DaysUntil(now, time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)))
	assert.Equal(t, 0, DaysUntil(now, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, -2, DaysUntil(now, time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 5, DaysUntil(now, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
}

func TestSalePrice_CustomSchedule(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	custom := entities.DiscountSchedule{"1": 50, "2": 20, "5": 10}

	tests := []struct {
		name       string
		bestBefore *time.Time
		want       float64
	}{
		{"one day left takes the steepest bucket", datePtr(now.AddDate(0, 0, 1)), 50.00},
		{"two days left", datePtr(now.AddDate(0, 0, 2)), 80.00},
		{"three days left falls into the five-day bucket", datePtr(now.AddDate(0, 0, 3)), 90.00},
		{"five days left", datePtr(now.AddDate(0, 0, 5)), 90.00},
		{"ten days left matches nothing", datePtr(now.AddDate(0, 0, 10)), 100.00},
		{"expires today", datePtr(now), 50.00},
		{"already expired", datePtr(now.AddDate(0, 0, -3)), 50.00},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SalePrice(now, 100, tc.bestBefore, false, custom)
			assert.InDelta(t, tc.want, got, 0.001)
		})
	}
}

func TestSalePrice_AutoSchedule(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		days int
		want float64
	}{
		{10, 40.00},
		{5, 36.00},
		{3, 36.00},
		{2, 30.00},
		{1, 20.00},
		{0, 20.00},
		{-1, 20.00},
	}
	for _, tc := range tests {
		got := SalePrice(now, 40, datePtr(now.AddDate(0, 0, tc.days)), true, nil)
		assert.InDelta(t, tc.want, got, 0.001, "days=%d", tc.days)
	}
}

func TestSalePrice_NoBestBefore(t *testing.T) {
	now := time.Now()

	// Discount flags without a best-before date are inert.
	assert.Equal(t, 25.0, SalePrice(now, 25, nil, true, nil))
	assert.Equal(t, 25.0, SalePrice(now, 25, nil, false, entities.DiscountSchedule{"1": 90}))
}

func TestSalePrice_NoPolicy(t *testing.T) {
	now := time.Now()
	bb := datePtr(now.AddDate(0, 0, 1))

	assert.Equal(t, 12.5, SalePrice(now, 12.5, bb, false, nil))
}

func TestSalePrice_Clamping(t *testing.T) {
	now := time.Now()
	bb := datePtr(now.AddDate(0, 0, 1))

	// Percentages over 100 floor the price at zero instead of going negative.
	assert.Equal(t, 0.0, SalePrice(now, 30, bb, false, entities.DiscountSchedule{"1": 150}))
	// Negative percentages never raise the price above list.
	assert.Equal(t, 30.0, SalePrice(now, 30, bb, false, entities.DiscountSchedule{"1": -20}))
}

func TestSalePrice_Rounding(t *testing.T) {
	now := time.Now()
	bb := datePtr(now.AddDate(0, 0, 1))

	got := SalePrice(now, 9.99, bb, false, entities.DiscountSchedule{"1": 33})
	assert.InDelta(t, 6.69, got, 0.001)
}

func TestSalePrice_MalformedScheduleKeys(t *testing.T) {
	now := time.Now()
	bb := datePtr(now.AddDate(0, 0, 1))

	// Non-numeric and non-positive keys are skipped, valid ones still apply.
	custom := entities.DiscountSchedule{"soon": 90, "0": 80, "-1": 70, "2": 25}
	assert.InDelta(t, 75.0, SalePrice(now, 100, bb, false, custom), 0.001)
}
