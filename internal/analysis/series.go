// Package analysis reconciles the planned and actual progress curves into
// the daily analysis series, the central artifact every downstream consumer
// (earned value, breakdowns, rollups, reports) reads.
package analysis

import "time"

// Point is one reconciled day of the analysis series.
type Point struct {
	// Date is the calendar day, UTC midnight.
	Date time.Time `yaml:"date" json:"date"`

	// Planned is the planned completion fraction in [0, 1].
	Planned float64 `yaml:"planned" json:"planned"`

	// Actual is the cumulative actual progress fraction in [0, 1].
	Actual float64 `yaml:"actual" json:"actual"`

	// Deviation is Actual - Planned.
	Deviation float64 `yaml:"deviation" json:"deviation"`

	// DeviationPct is Deviation relative to Planned, in percent. Defined
	// as 0 when Planned is 0.
	DeviationPct float64 `yaml:"deviation_pct" json:"deviation_pct"`
}

// Series is the full ordered analysis series: ascending by date, one point
// per calendar day, no gaps.
type Series []Point

// Start returns the first day of the series, or the zero time when empty.
func (s Series) Start() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}

	return s[0].Date
}

// End returns the last day of the series, or the zero time when empty.
func (s Series) End() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}

	return s[len(s)-1].Date
}

// Last returns the most recent point and true, or a zero point and false
// when the series is empty.
func (s Series) Last() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}

	return s[len(s)-1], true
}
