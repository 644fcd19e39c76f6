package estimate

import (
	"math"

	"github.com/shenergia/solarcalc/internal/model"
)

// DaysPerMonth converts a monthly amount into a daily run-rate.
const DaysPerMonth = 30

// ROI projects revenue and profit for an investment amount.
func ROI(amount, multiplier float64) model.ROIResult {
	if amount <= 0 {
		return model.ROIResult{}
	}
	revenue := amount * multiplier
	return model.ROIResult{
		Amount:   amount,
		Daily:    amount / DaysPerMonth,
		Revenue:  revenue,
		Profit:   revenue - amount,
		Multiple: int(math.Round(revenue / amount)),
	}
}

// ROI evaluates the investment projection with the standard tier multiplier.
func (t *Table) ROI(amount float64) (model.ROIResult, error) {
	c, err := t.Lookup(model.TierStandard)
	if err != nil {
		return model.ROIResult{}, err
	}
	return ROI(amount, c.RevenueMultiplier), nil
}
