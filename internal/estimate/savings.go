package estimate

import (
	"math"

	"github.com/shenergia/solarcalc/internal/model"
)

// Savings projects the savings, system size and payback for a monthly bill.
//
// System size and payback are rounded up to the nearest tenth: rounding down
// would undersize the system and understate the payback period.
func Savings(bill float64, c model.Coefficients, s Sizing) model.SavingsResult {
	monthly := bill * c.SavingsRatio
	annual := monthly * s.MonthsPerYear
	lifetime := annual * s.HorizonYears

	consumptionKWh := bill / s.EnergyPrice
	kwp := ceilTenth(consumptionKWh / s.KWhPerKWp)

	cost := kwp * c.UnitCost
	payback := 0.0
	if annual > 0 {
		payback = ceilTenth(cost / annual)
	}

	return model.SavingsResult{
		Bill:            bill,
		MonthlySavings:  monthly,
		AnnualSavings:   annual,
		LifetimeSavings: lifetime,
		SystemKWp:       kwp,
		SystemCost:      cost,
		PaybackYears:    payback,
	}
}

// Savings evaluates the bill-savings formula for a validated input.
func (t *Table) Savings(in model.EstimateInput) (model.SavingsResult, error) {
	c, err := t.Lookup(in.Tier)
	if err != nil {
		return model.SavingsResult{}, err
	}
	return Savings(in.Amount, c, t.Sizing), nil
}

func ceilTenth(v float64) float64 {
	return math.Ceil(v*10) / 10
}
