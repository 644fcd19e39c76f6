package components

import (
	"fmt"
	"strings"

	"github.com/shenergia/solarcalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForSavings returns the gauge colour for a 0-100 savings share.
func ColorForSavings(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 70:
		return t.Accent
	case pct >= 40:
		return t.Yellow
	default:
		return t.Highlight
	}
}

// Gauge renders the savings share as a labelled bar. pct is 0-100.
func Gauge(label string, pct float64, barWidth int) string {
	t := theme.Active
	pct = min(max(pct, 0), 100)
	color := ColorForSavings(pct)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.SurfaceBright)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(label) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct/100) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}

// ProgressBar renders a plain block bar for a 0-1 fraction. The ROI tab
// draws its slider track with it.
func ProgressBar(frac float64, width int) string {
	t := theme.Active
	frac = min(max(frac, 0), 1)
	filled := int(frac * float64(width))

	filledStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}
