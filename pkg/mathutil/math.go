// Package mathutil provides guarded float helpers shared by the analysis
// components. Every ratio in the engine goes through SafeRatio so that
// degenerate denominators produce the sentinel 0 instead of NaN or Inf.
package mathutil

import "math"

// Clamp01 clips v into [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}

// SafeRatio returns num/den, or 0 when den is 0. Non-finite results are
// also masked to 0 so they never propagate into reports.
func SafeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	r := num / den
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}

	return r
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))

	return math.Round(v*pow) / pow
}

// Min calculates the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// Max calculates the maximum of two integers.
func Max(a, b int) int {
	if a < b {
		return b
	}

	return a
}
