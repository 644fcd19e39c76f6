// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatBRL formats a value as whole reais with pt-BR grouping.
// e.g., 120000 -> "R$ 120.000"
func FormatBRL(v float64) string {
	return "R$ " + FormatNumber(v)
}

// FormatNumber formats a value with pt-BR thousands separators and no
// decimals, rounding half up. e.g., 59103 -> "59.103"
func FormatNumber(v float64) string {
	if v < 0 {
		return "-" + FormatNumber(-v)
	}
	return humanize.FormatFloat("#.###,", v)
}

// FormatAmount formats an input amount: whole values without decimals,
// fractional values with two. e.g., 1500 -> "1.500", 812.5 -> "812,50"
func FormatAmount(v float64) string {
	if v == math.Trunc(v) {
		return FormatNumber(v)
	}
	if v < 0 {
		return "-" + FormatAmount(-v)
	}
	return humanize.FormatFloat("#.###,##", v)
}

// FormatDecimal formats v with the given number of decimals and a comma
// separator. e.g., FormatDecimal(30, 2) -> "30,00"
func FormatDecimal(v float64, decimals int) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', decimals, 64), ".", ",", 1)
}

// FormatKWp formats a system size. e.g., 4.9 -> "4,9 kWp"
func FormatKWp(kwp float64) string {
	return FormatDecimal(kwp, 1) + " kWp"
}

// FormatYears formats a payback period. e.g., 4.6 -> "~4,6 anos"
func FormatYears(years float64) string {
	return "~" + FormatDecimal(years, 1) + " anos"
}

// FormatMultiple formats an ROI multiple as an "Nx" label.
func FormatMultiple(n int) string {
	return strconv.Itoa(n) + "x"
}

// FormatPercent formats a 0-100 value as a whole percentage.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}
