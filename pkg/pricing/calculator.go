package pricing

import (
	"math"
	"strconv"
	"time"

	"SaveNServe-Backend/entities"
)

// DefaultSchedule is the built-in day-bucket schedule applied when an
// item has auto_discount enabled: within 5 days 10% off, within 2 days
// 25%, on the last day (or past it) 50%.
var DefaultSchedule = map[int]float64{
	5: 10,
	2: 25,
	1: 50,
}

// DaysUntil returns the whole-day difference between bestBefore and now,
// ignoring time of day.
func DaysUntil(now, bestBefore time.Time) int {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := bestBefore.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// bucketPercent looks up the discount for the given days-remaining:
// every threshold with days <= threshold matches, the smallest matching
// threshold wins. Expired items fall into the smallest bucket.
func bucketPercent(days int, schedule map[int]float64) float64 {
	if days < 0 {
		days = 0
	}
	best := -1
	for threshold := range schedule {
		if days <= threshold && (best == -1 || threshold < best) {
			best = threshold
		}
	}
	if best == -1 {
		return 0
	}
	return schedule[best]
}

func parseSchedule(custom entities.DiscountSchedule) map[int]float64 {
	schedule := make(map[int]float64, len(custom))
	for key, pct := range custom {
		days, err := strconv.Atoi(key)
		if err != nil || days <= 0 {
			continue
		}
		schedule[days] = pct
	}
	return schedule
}

// SalePrice computes the effective price for an item at the given time.
// Without a best-before date no time-based discount applies regardless
// of flags. The result is always within [0, price].
func SalePrice(now time.Time, price float64, bestBefore *time.Time, autoDiscount bool, custom entities.DiscountSchedule) float64 {
	if bestBefore == nil || price <= 0 {
		return price
	}

	days := DaysUntil(now, *bestBefore)

	var pct float64
	switch {
	case autoDiscount:
		pct = bucketPercent(days, DefaultSchedule)
	case len(custom) > 0:
		pct = bucketPercent(days, parseSchedule(custom))
	default:
		return price
	}

	if pct <= 0 {
		return price
	}
	if pct > 100 {
		pct = 100
	}

	sale := price * (1 - pct/100)
	if sale < 0 {
		sale = 0
	}
	if sale > price {
		sale = price
	}
	return math.Round(sale*100) / 100
}
