// Package estimate implements the solar financial formulas: bill savings with
// system sizing and payback, and the investment ROI projection.
package estimate

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/shenergia/solarcalc/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed tiers.yaml
var defaultTiersYAML []byte

// Sizing holds the constants used to size a system from a monthly bill.
type Sizing struct {
	EnergyPrice   float64 `yaml:"energy_price"` // R$ per kWh
	KWhPerKWp     float64 `yaml:"kwh_per_kwp"`  // monthly generation per kWp
	MonthsPerYear float64 `yaml:"months_per_year"`
	HorizonYears  float64 `yaml:"horizon_years"`
}

// Table is the full coefficient table: sizing constants plus one record per tier.
type Table struct {
	Sizing Sizing                             `yaml:"sizing"`
	Tiers  map[model.Tier]model.Coefficients `yaml:"tiers"`
}

var loadDefault = sync.OnceValues(func() (*Table, error) {
	return Parse(defaultTiersYAML)
})

// Default returns the embedded coefficient table. Callers must not mutate it;
// use WithOverrides to derive a customized copy.
func Default() (*Table, error) {
	return loadDefault()
}

// Parse decodes and validates a YAML coefficient table.
func Parse(raw []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parsing coefficient table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that every savings tier is usable and the ROI tier has a multiplier.
func (t *Table) Validate() error {
	var errs []error
	if t.Sizing.EnergyPrice <= 0 {
		errs = append(errs, errors.New("sizing.energy_price must be positive"))
	}
	if t.Sizing.KWhPerKWp <= 0 {
		errs = append(errs, errors.New("sizing.kwh_per_kwp must be positive"))
	}
	if t.Sizing.MonthsPerYear <= 0 || t.Sizing.HorizonYears <= 0 {
		errs = append(errs, errors.New("sizing.months_per_year and sizing.horizon_years must be positive"))
	}
	for _, tier := range model.SavingsTiers {
		c, ok := t.Tiers[tier]
		if !ok {
			errs = append(errs, fmt.Errorf("tier %s: missing", tier))
			continue
		}
		if c.SavingsRatio <= 0 || c.SavingsRatio > 1 {
			errs = append(errs, fmt.Errorf("tier %s: savings_ratio %.2f outside (0, 1]", tier, c.SavingsRatio))
		}
		if c.UnitCost <= 0 {
			errs = append(errs, fmt.Errorf("tier %s: unit_cost must be positive", tier))
		}
	}
	if c, ok := t.Tiers[model.TierStandard]; !ok || c.RevenueMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("tier %s: revenue_multiplier must be positive", model.TierStandard))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid coefficient table: %w", errors.Join(errs...))
	}
	return nil
}

// Lookup returns the coefficient record for a tier.
func (t *Table) Lookup(tier model.Tier) (model.Coefficients, error) {
	c, ok := t.Tiers[tier]
	if !ok {
		return model.Coefficients{}, fmt.Errorf("%w: %q", model.ErrUnknownTier, tier)
	}
	return c, nil
}

// Names returns the tiers present in the table, savings tiers first in
// display order, then anything else alphabetically.
func (t *Table) Names() []model.Tier {
	seen := make(map[model.Tier]bool, len(t.Tiers))
	var names []model.Tier
	for _, tier := range model.SavingsTiers {
		if _, ok := t.Tiers[tier]; ok {
			names = append(names, tier)
			seen[tier] = true
		}
	}
	var rest []model.Tier
	for tier := range t.Tiers {
		if !seen[tier] {
			rest = append(rest, tier)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(names, rest...)
}

// WithOverrides returns a copy of the table with the given per-tier fields
// replaced. Overrides naming an unknown tier are rejected.
func (t *Table) WithOverrides(overrides map[string]model.CoefficientOverride) (*Table, error) {
	out := &Table{
		Sizing: t.Sizing,
		Tiers:  make(map[model.Tier]model.Coefficients, len(t.Tiers)),
	}
	for k, v := range t.Tiers {
		out.Tiers[k] = v
	}

	for name, ov := range overrides {
		tier, err := model.ParseTier(name)
		if err != nil {
			return nil, fmt.Errorf("coefficient override: %w", err)
		}
		c := out.Tiers[tier]
		if ov.SavingsRatio != nil {
			c.SavingsRatio = *ov.SavingsRatio
		}
		if ov.UnitCost != nil {
			c.UnitCost = *ov.UnitCost
		}
		if ov.PaybackFactor != nil {
			c.PaybackFactor = *ov.PaybackFactor
		}
		if ov.RevenueMultiplier != nil {
			c.RevenueMultiplier = *ov.RevenueMultiplier
		}
		out.Tiers[tier] = c
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
