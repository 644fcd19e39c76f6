// Package model defines the value types shared by the estimator packages.
package model

import "errors"

// ErrInvalidAmount is returned when a monetary input is missing, non-numeric
// or below the configured minimum.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrUnknownTier is returned when a tier key has no coefficient record.
var ErrUnknownTier = errors.New("unknown tier")

// EstimateInput is one user interaction: an amount and the tier it applies to.
type EstimateInput struct {
	Amount float64
	Tier   Tier
}

// Coefficients is the fixed constant record attached to a tier.
type Coefficients struct {
	SavingsRatio      float64 `yaml:"savings_ratio" toml:"savings_ratio"`
	UnitCost          float64 `yaml:"unit_cost" toml:"unit_cost"` // R$ per kWp installed
	PaybackFactor     float64 `yaml:"payback_factor" toml:"payback_factor"`
	RevenueMultiplier float64 `yaml:"revenue_multiplier" toml:"revenue_multiplier"`
}

// SavingsResult holds the bill-savings projection for a monthly bill.
type SavingsResult struct {
	Bill            float64 `json:"bill"`
	MonthlySavings  float64 `json:"monthly_savings"`
	AnnualSavings   float64 `json:"annual_savings"`
	LifetimeSavings float64 `json:"lifetime_savings"`
	SystemKWp       float64 `json:"system_kwp"`
	SystemCost      float64 `json:"system_cost"`
	PaybackYears    float64 `json:"payback_years"`
}

// ROIResult holds the investment projection for a single amount.
type ROIResult struct {
	Amount   float64 `json:"amount"`
	Daily    float64 `json:"daily"`
	Revenue  float64 `json:"revenue"`
	Profit   float64 `json:"profit"`
	Multiple int     `json:"multiple"`
}

// Dataset is what the chart renderer consumes. Highlight is the index of the
// emphasized bar, or -1 when no bar is selected.
type Dataset struct {
	Labels    []string
	Values    []float64
	Highlight int
}

// CoefficientOverride replaces individual fields of a tier's coefficient
// record. Nil fields keep the built-in value.
type CoefficientOverride struct {
	SavingsRatio      *float64 `toml:"savings_ratio,omitempty"`
	UnitCost          *float64 `toml:"unit_cost,omitempty"`
	PaybackFactor     *float64 `toml:"payback_factor,omitempty"`
	RevenueMultiplier *float64 `toml:"revenue_multiplier,omitempty"`
}
