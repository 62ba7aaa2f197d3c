package evm

import "github.com/chantier-labs/avancement/internal/schedule"

// DefaultUnitValue is the per-task planned value used when no real cost
// data is wired in. The surrounding system does not model task costs yet,
// so budgets are proxied from task counts.
const DefaultUnitValue = 1000.0

// DefaultOverrunFactor scales EV into a proxy actual cost when true cost
// actuals are unavailable. Provisional figure; only the shape (a
// deterministic function of EV) is contractual.
const DefaultOverrunFactor = 1.10

// CostModel prices a single reference task. Implementations let real cost
// data replace the flat proxy without touching the EVM formulas.
type CostModel interface {
	Cost(task schedule.Task) float64
}

// FlatRate prices every task at the same unit value.
type FlatRate struct {
	UnitValue float64
}

// NewFlatRate returns a FlatRate model, defaulting the unit value when
// non-positive.
func NewFlatRate(unitValue float64) FlatRate {
	if unitValue <= 0 {
		unitValue = DefaultUnitValue
	}

	return FlatRate{UnitValue: unitValue}
}

// Cost implements CostModel.
func (f FlatRate) Cost(_ schedule.Task) float64 {
	return f.UnitValue
}

// budgetAtCompletion sums the cost model over all reference tasks.
func budgetAtCompletion(model CostModel, tasks []schedule.Task) float64 {
	var total float64
	for _, t := range tasks {
		total += model.Cost(t)
	}

	return total
}
