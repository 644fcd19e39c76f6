package estimate

import (
	"math"

	"github.com/shenergia/solarcalc/internal/model"
)

// MaxGaugePercent caps the savings gauge so it never reads as a full 100%.
const MaxGaugePercent = 95.0

// GaugeRadius is the radius of the savings arc on the landing page.
const GaugeRadius = 90.0

// SavingsPercent is the share of the bill saved each month, capped at
// MaxGaugePercent.
func SavingsPercent(r model.SavingsResult) float64 {
	if r.Bill <= 0 {
		return 0
	}
	return clampPercent(r.MonthlySavings / r.Bill * 100)
}

// ArcOffset returns the stroke offset that fills pct percent of a circle.
func ArcOffset(pct, radius float64) float64 {
	circumference := 2 * math.Pi * radius
	return circumference - clampPercent(pct)/100*circumference
}

func clampPercent(pct float64) float64 {
	if pct < 0 || math.IsNaN(pct) {
		return 0
	}
	return math.Min(pct, MaxGaugePercent)
}
