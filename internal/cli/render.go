package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shenergia/solarcalc/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (SH Solar brand over Flexoki Dark neutrals)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#878580")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#1A9E8E")
	ColorOrange    = lipgloss.Color("#F37021")
	ColorRed       = lipgloss.Color("#FF6B6B")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	noticeStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorRed).
			Bold(true).
			Padding(0, 2)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. A row holding
// only "---" draws a separator. The first column is left-aligned, the rest
// right-aligned.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := t.Widths
	if widths == nil {
		widths = columnWidths(numCols, t.Headers, t.Rows)
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	b.WriteString(tableRule("╭", "┬", "╮", widths))
	if len(t.Headers) > 0 {
		b.WriteString(tableRow(t.Headers, widths, headerStyle))
		b.WriteString(tableRule("├", "┼", "┤", widths))
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(tableRule("├", "┼", "┤", widths))
			continue
		}
		b.WriteString(tableRow(row, widths, valueStyle))
	}
	b.WriteString(tableRule("╰", "┴", "╯", widths))

	return b.String()
}

func columnWidths(numCols int, headers []string, rows [][]string) []int {
	widths := make([]int, numCols)
	grow := func(cells []string) {
		for i, cell := range cells {
			if n := utf8.RuneCountInString(cell); i < numCols && n > widths[i] {
				widths[i] = n
			}
		}
	}
	grow(headers)
	for _, row := range rows {
		if len(row) == 1 && row[0] == "---" {
			continue
		}
		grow(row)
	}
	return widths
}

func tableRule(left, mid, right string, widths []int) string {
	segs := make([]string, len(widths))
	for i, w := range widths {
		segs[i] = strings.Repeat("─", w+2)
	}
	return dimStyle.Render(left+strings.Join(segs, mid)+right) + "\n"
}

func tableRow(cells []string, widths []int, style lipgloss.Style) string {
	sep := dimStyle.Render("│")
	var b strings.Builder
	b.WriteString(sep)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == 0 {
			b.WriteString(style.Render(fmt.Sprintf(" %-*s ", w, cell)))
		} else {
			b.WriteString(style.Render(fmt.Sprintf(" %*s ", w, cell)))
		}
		b.WriteString(sep)
	}
	b.WriteString("\n")
	return b.String()
}

// RenderGauge renders a percentage (0-100) as a filled bar with its label.
func RenderGauge(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	bar := barStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("  %s %s", bar, highlightStyle.Render(FormatPercent(pct)))
}

// RenderDataset renders a dataset as horizontal bars, one per label, with the
// highlighted entry drawn in the accent colour.
func RenderDataset(title string, ds model.Dataset, format func(float64) string, maxWidth int) string {
	if len(ds.Values) == 0 {
		return ""
	}

	maxValue := 0.0
	labelW := 0
	for i, v := range ds.Values {
		if v > maxValue {
			maxValue = v
		}
		if i < len(ds.Labels) && utf8.RuneCountInString(ds.Labels[i]) > labelW {
			labelW = utf8.RuneCountInString(ds.Labels[i])
		}
	}

	var b strings.Builder
	if title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(title))
		b.WriteString("\n")
	}
	for i, v := range ds.Values {
		label := ""
		if i < len(ds.Labels) {
			label = ds.Labels[i]
		}
		bar := RenderHorizontalBar(v, maxValue, maxWidth)
		line := fmt.Sprintf("  %-*s %s %s", labelW, label, bar, format(v))
		if i == ds.Highlight {
			b.WriteString(highlightStyle.Render(line + "  ◀"))
		} else {
			b.WriteString(mutedStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderHorizontalBar renders a bar proportional to value/maxValue.
func RenderHorizontalBar(value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 {
		return ""
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	return strings.Repeat("█", barLen) + strings.Repeat(" ", maxWidth-barLen)
}

// RenderNotice renders a short error notice banner.
func RenderNotice(msg string) string {
	return "  " + noticeStyle.Render(msg)
}
