package model

import (
	"fmt"
	"strings"
)

// Tier is a customer segment with its own coefficient record.
type Tier string

const (
	TierResidential Tier = "residential"
	TierCommercial  Tier = "commercial"
	TierRural       Tier = "rural"
	TierIndustrial  Tier = "industrial"

	// TierStandard is the single investment tier of the ROI estimator.
	TierStandard Tier = "standard"
)

// SavingsTiers lists the bill-savings tiers in display order.
var SavingsTiers = []Tier{TierResidential, TierCommercial, TierRural, TierIndustrial}

var tierAliases = map[string]Tier{
	"residential": TierResidential,
	"residencial": TierResidential,
	"commercial":  TierCommercial,
	"comercial":   TierCommercial,
	"rural":       TierRural,
	"industrial":  TierIndustrial,
	"standard":    TierStandard,
	"padrao":      TierStandard,
	"padrão":      TierStandard,
}

// ParseTier maps an English or Portuguese tier name to a Tier.
func ParseTier(name string) (Tier, error) {
	t, ok := tierAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, name)
	}
	return t, nil
}

// Label returns the Portuguese display label used in the UI.
func (t Tier) Label() string {
	switch t {
	case TierResidential:
		return "Residencial"
	case TierCommercial:
		return "Comercial"
	case TierRural:
		return "Rural"
	case TierIndustrial:
		return "Industrial"
	case TierStandard:
		return "Padrão"
	default:
		return string(t)
	}
}
