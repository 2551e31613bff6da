// Package money holds the arithmetic used by the settlement pipeline.
//
// All persisted amounts are int64 in the smallest whole currency unit.
// Splitting an amount between workers produces fractional intermediates;
// those are carried as float64 in full precision and only rounded at the
// final step of each formula. Rounding earlier changes the totals.
package money

import "math"

// Round rounds half-up toward positive infinity: 0.5 -> 1, -0.5 -> 0.
// Settlement figures have always been rounded this way, so negative
// intermediates (possible when fees exceed a worker's share) must keep
// the same behavior.
func Round(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// ApplyRate returns amount * rate / 100 without rounding.
func ApplyRate(amount float64, rate float64) float64 {
	return amount * rate / 100
}

// Split divides an amount into n equal fractional shares. n is clamped to a
// minimum of 1 so a degenerate worker list cannot divide by zero.
func Split(amount int64, n int) float64 {
	if n < 1 {
		n = 1
	}
	return float64(amount) / float64(n)
}
