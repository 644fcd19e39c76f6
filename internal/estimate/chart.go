package estimate

import (
	"fmt"

	"github.com/shenergia/solarcalc/internal/model"
)

// PaybackChart compares the payback period of every savings tier for the
// same bill, with the selected tier highlighted.
func (t *Table) PaybackChart(bill float64, selected model.Tier) model.Dataset {
	ds := model.Dataset{Highlight: -1}
	for _, tier := range model.SavingsTiers {
		c, ok := t.Tiers[tier]
		if !ok {
			continue
		}
		if tier == selected {
			ds.Highlight = len(ds.Values)
		}
		ds.Labels = append(ds.Labels, tier.Label())
		ds.Values = append(ds.Values, Savings(bill, c, t.Sizing).PaybackYears)
	}
	return ds
}

// ROIChart projects revenue for each preset amount. The preset equal to
// amount is highlighted; a custom amount highlights nothing.
func ROIChart(amount float64, presets []float64, multiplier float64) model.Dataset {
	ds := model.Dataset{
		Labels:    make([]string, len(presets)),
		Values:    make([]float64, len(presets)),
		Highlight: -1,
	}
	for i, p := range presets {
		ds.Labels[i] = compactAmount(p)
		ds.Values[i] = ROI(p, multiplier).Revenue
		if p == amount {
			ds.Highlight = i
		}
	}
	return ds
}

func compactAmount(v float64) string {
	switch {
	case v >= 1000 && v == float64(int64(v/1000))*1000:
		return fmt.Sprintf("%.0fk", v/1000)
	case v >= 1000:
		return fmt.Sprintf("%.1fk", v/1000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
