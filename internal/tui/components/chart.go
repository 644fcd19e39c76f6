package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/shenergia/solarcalc/internal/model"
	"github.com/shenergia/solarcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// BarChart renders a dataset as vertical bars with a labelled Y axis. The
// dataset's highlighted bar is drawn in the highlight colour.
func BarChart(ds model.Dataset, width, height int) string {
	values := ds.Values
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return HBarChart(ds, func(v float64) string { return formatChartLabel(v) }, width)
	}

	t := theme.Active

	maxVal := 0.0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: nice tick step, doubled until the ticks fit
	tickStep := chartTickStep(maxVal)
	maxIntervals := max(height/2, 2)
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := max(int(math.Round(ceiling/tickStep)), 1)
	rowsPerTick := max(height/numIntervals, 2)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(len(formatChartLabel(ceiling))+1, 4)
	tickLabels := make(map[int]string, numIntervals)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}

	n := len(values)
	chartW := max(width-yLabelW-1, 5)
	gap := 2
	if n <= 1 {
		gap = 0
	}
	barW := min(max((chartW-(n-1)*gap)/n, 1), 8)
	axisLen := n*barW + max(0, n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	hiStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(blankStyle.Render(strings.Repeat(" ", gap)))
			}
			style := barStyle
			if i == ds.Highlight {
				style = hiStyle
			}
			switch {
			case v >= rowTop:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * 8)
				idx = min(max(idx, 1), 8)
				b.WriteString(style.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(blankStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))

	if len(ds.Labels) == n {
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		hiLabelStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface).Bold(true)

		b.WriteString("\n")
		b.WriteString(blankStyle.Render(strings.Repeat(" ", yLabelW+1)))
		for i, lbl := range ds.Labels {
			if i > 0 && gap > 0 {
				b.WriteString(blankStyle.Render(strings.Repeat(" ", gap)))
			}
			cell := truncLabel(lbl, barW)
			cell += strings.Repeat(" ", barW-lipgloss.Width(cell))
			if i == ds.Highlight {
				b.WriteString(hiLabelStyle.Render(cell))
			} else {
				b.WriteString(labelStyle.Render(cell))
			}
		}
	}

	return b.String()
}

// HBarChart renders one horizontal bar per label, value text at the end.
// The highlighted row is drawn in the highlight colour with a marker.
func HBarChart(ds model.Dataset, format func(float64) string, width int) string {
	if len(ds.Values) == 0 {
		return ""
	}
	t := theme.Active

	maxVal := 0.0
	labelW := 0
	valueW := 0
	for i, v := range ds.Values {
		maxVal = max(maxVal, v)
		if i < len(ds.Labels) {
			labelW = max(labelW, lipgloss.Width(ds.Labels[i]))
		}
		valueW = max(valueW, lipgloss.Width(format(v)))
	}
	if maxVal == 0 {
		maxVal = 1
	}

	barMax := max(width-labelW-valueW-5, 4)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	hiStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface).Bold(true)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for i, v := range ds.Values {
		label := ""
		if i < len(ds.Labels) {
			label = ds.Labels[i]
		}
		filled := int(math.Round(v / maxVal * float64(barMax)))
		filled = min(max(filled, 0), barMax)

		lStyle, bStyle, marker := labelStyle, barStyle, "  "
		if i == ds.Highlight {
			lStyle, bStyle, marker = hiStyle, hiStyle, " ◀"
		}

		b.WriteString(lStyle.Render(fmt.Sprintf("%-*s ", labelW, label)))
		b.WriteString(bStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(blankStyle.Render(strings.Repeat(" ", barMax-filled+1)))
		b.WriteString(lStyle.Render(fmt.Sprintf("%*s", valueW, format(v))))
		b.WriteString(lStyle.Render(marker))
		if i < len(ds.Values)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel abbreviates axis values: 1500 -> "1,5k", 2e6 -> "2mi".
func formatChartLabel(v float64) string {
	var s string
	switch {
	case v >= 1e6:
		s = trimZero(fmt.Sprintf("%.1f", v/1e6)) + "mi"
	case v >= 1e3:
		s = trimZero(fmt.Sprintf("%.1f", v/1e3)) + "k"
	case v >= 1:
		s = fmt.Sprintf("%.0f", v)
	default:
		s = fmt.Sprintf("%.1f", v)
	}
	return strings.Replace(s, ".", ",", 1)
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

func truncLabel(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}
