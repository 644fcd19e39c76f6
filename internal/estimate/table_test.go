package estimate

import (
	"errors"
	"strings"
	"testing"

	"github.com/shenergia/solarcalc/internal/model"
)

func TestDefault_HasAllTiers(t *testing.T) {
	tbl := mustDefault(t)
	for _, tier := range append(model.SavingsTiers, model.TierStandard) {
		if _, err := tbl.Lookup(tier); err != nil {
			t.Errorf("Lookup(%s): %v", tier, err)
		}
	}
	c, _ := tbl.Lookup(model.TierCommercial)
	if c.UnitCost != 4200 {
		t.Errorf("commercial unit cost = %.0f, want 4200", c.UnitCost)
	}
}

func TestLookup_UnknownTier(t *testing.T) {
	tbl := mustDefault(t)
	_, err := tbl.Lookup("orbital")
	if !errors.Is(err, model.ErrUnknownTier) {
		t.Fatalf("err = %v, want ErrUnknownTier", err)
	}
}

func TestParse_RejectsInvalidTable(t *testing.T) {
	raw := []byte(`
sizing: {energy_price: 0.8, kwh_per_kwp: 130, months_per_year: 12, horizon_years: 25}
tiers:
  residential: {savings_ratio: 1.5, unit_cost: 4500}
`)
	_, err := Parse(raw)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"savings_ratio", "commercial: missing", "revenue_multiplier"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestWithOverrides(t *testing.T) {
	tbl := mustDefault(t)
	cost := 3900.0
	out, err := tbl.WithOverrides(map[string]model.CoefficientOverride{
		"comercial": {UnitCost: &cost},
	})
	if err != nil {
		t.Fatalf("WithOverrides: %v", err)
	}
	c, _ := out.Lookup(model.TierCommercial)
	if c.UnitCost != 3900 {
		t.Errorf("overridden unit cost = %.0f, want 3900", c.UnitCost)
	}
	if c.SavingsRatio != 0.80 {
		t.Errorf("untouched savings ratio = %.2f, want 0.80", c.SavingsRatio)
	}

	orig, _ := tbl.Lookup(model.TierCommercial)
	if orig.UnitCost != 4200 {
		t.Errorf("default table mutated: unit cost = %.0f", orig.UnitCost)
	}
}

func TestWithOverrides_UnknownTier(t *testing.T) {
	tbl := mustDefault(t)
	ratio := 0.5
	_, err := tbl.WithOverrides(map[string]model.CoefficientOverride{"lunar": {SavingsRatio: &ratio}})
	if !errors.Is(err, model.ErrUnknownTier) {
		t.Fatalf("err = %v, want ErrUnknownTier", err)
	}
}

func TestPaybackChart_HighlightsSelectedTier(t *testing.T) {
	tbl := mustDefault(t)
	ds := tbl.PaybackChart(500, model.TierRural)
	if len(ds.Values) != len(model.SavingsTiers) {
		t.Fatalf("len(Values) = %d, want %d", len(ds.Values), len(model.SavingsTiers))
	}
	if ds.Labels[ds.Highlight] != "Rural" {
		t.Errorf("highlighted label = %q, want Rural", ds.Labels[ds.Highlight])
	}
}

func TestROIChart(t *testing.T) {
	presets := []float64{300, 900, 3000, 10000}

	ds := ROIChart(900, presets, 66.67)
	if ds.Highlight != 1 {
		t.Errorf("Highlight = %d, want 1", ds.Highlight)
	}
	wantLabels := []string{"300", "900", "3k", "10k"}
	for i, l := range wantLabels {
		if ds.Labels[i] != l {
			t.Errorf("Labels[%d] = %q, want %q", i, ds.Labels[i], l)
		}
	}

	if custom := ROIChart(1234, presets, 66.67); custom.Highlight != -1 {
		t.Errorf("custom amount Highlight = %d, want -1", custom.Highlight)
	}
}
