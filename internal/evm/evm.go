// Package evm computes earned-value metrics (PV, EV, AC, indices, and the
// completion forecast) from the baseline schedule and progress reports.
// Every ratio degrades to a defined sentinel on a zero denominator; the
// package never emits NaN or Inf and never fails on degenerate numbers.
package evm

import (
	"time"

	"github.com/chantier-labs/avancement/internal/schedule"
	"github.com/chantier-labs/avancement/internal/timeline"
	"github.com/chantier-labs/avancement/pkg/dateutil"
	"github.com/chantier-labs/avancement/pkg/mathutil"
)

// Metrics holds one earned-value snapshot. Recomputed on demand; never
// persisted by this package.
type Metrics struct {
	// PV is the planned value of all baseline work.
	PV float64 `yaml:"pv" json:"pv"`

	// EV is the value earned by reported progress.
	EV float64 `yaml:"ev" json:"ev"`

	// AC is the actual cost (proxied from EV when no cost actuals exist).
	AC float64 `yaml:"ac" json:"ac"`

	// BAC is the budget at completion.
	BAC float64 `yaml:"bac" json:"bac"`

	// CV is the cost variance, EV - AC.
	CV float64 `yaml:"cv" json:"cv"`

	// SV is the schedule variance, EV - PV.
	SV float64 `yaml:"sv" json:"sv"`

	// VAC is the variance at completion, BAC - EAC (0 when CPI is 0).
	VAC float64 `yaml:"vac" json:"vac"`

	// SPI is the schedule performance index, EV / PV (0 when PV is 0).
	SPI float64 `yaml:"spi" json:"spi"`

	// CPI is the cost performance index, EV / AC (0 when AC is 0).
	CPI float64 `yaml:"cpi" json:"cpi"`

	// EAC is the estimate at completion, BAC / CPI (BAC when CPI is 0).
	EAC float64 `yaml:"eac" json:"eac"`

	// EstimatedCompletion scales the baseline duration by 1/SPI from the
	// baseline start. Falls back to the baseline end when SPI is not
	// positive.
	EstimatedCompletion time.Time `yaml:"estimated_completion" json:"estimated_completion"`
}

// Options configures the calculator. The zero value selects the flat-rate
// cost model and the default overrun factor.
type Options struct {
	// Model prices reference tasks; nil selects FlatRate with
	// DefaultUnitValue.
	Model CostModel

	// OverrunFactor turns EV into the proxy actual cost; non-positive
	// selects DefaultOverrunFactor.
	OverrunFactor float64
}

func (o Options) model() CostModel {
	if o.Model == nil {
		return NewFlatRate(DefaultUnitValue)
	}

	return o.Model
}

func (o Options) overrun() float64 {
	if o.OverrunFactor <= 0 {
		return DefaultOverrunFactor
	}

	return o.OverrunFactor
}

// Compute calculates the earned-value snapshot with default options.
func Compute(tasks []schedule.Task, reports []schedule.Report) (Metrics, error) {
	return ComputeWith(tasks, reports, Options{})
}

// ComputeWith calculates the earned-value snapshot. Fails only on an empty
// schedule; every numeric edge case is handled locally.
func ComputeWith(tasks []schedule.Task, reports []schedule.Report, opts Options) (Metrics, error) {
	// Reuse the timeline builder's empty-schedule check so both operations
	// fail the same way.
	days, err := timeline.Build(tasks)
	if err != nil {
		return Metrics{}, err
	}

	bac := budgetAtCompletion(opts.model(), tasks)
	pv := bac

	ev := completionFraction(tasks, reports) * bac
	ac := ev * opts.overrun()

	spi := mathutil.SafeRatio(ev, pv)
	cpi := mathutil.SafeRatio(ev, ac)

	eac := bac
	vac := 0.0

	if cpi > 0 {
		eac = bac / cpi
		vac = bac - eac
	}

	return Metrics{
		PV:                  pv,
		EV:                  ev,
		AC:                  ac,
		BAC:                 bac,
		CV:                  ev - ac,
		SV:                  ev - pv,
		VAC:                 vac,
		SPI:                 spi,
		CPI:                 cpi,
		EAC:                 eac,
		EstimatedCompletion: estimatedCompletion(days, spi),
	}, nil
}

// completionFraction is the overall project completion implied by the
// reports: the sum of normalized report values over the task count.
// Unclamped: duplicate incremental reports for one task can push it past 1,
// and the resulting EV above BAC stays visible in the variances.
func completionFraction(tasks []schedule.Task, reports []schedule.Report) float64 {
	var sum float64
	for _, r := range reports {
		sum += r.NormalizedProgress()
	}

	return mathutil.SafeRatio(sum, float64(len(tasks)))
}

// estimatedCompletion scales the baseline duration by 1/SPI from the
// baseline start date. A non-positive SPI means no progress signal, so no
// extrapolation: the baseline end is returned unchanged.
func estimatedCompletion(days []time.Time, spi float64) time.Time {
	start, end := days[0], days[len(days)-1]
	if spi <= 0 {
		return end
	}

	baselineDays := float64(dateutil.DaysBetween(start, end))
	projected := int(baselineDays / spi)

	return start.AddDate(0, 0, projected-1)
}
