package components

import (
	"strings"

	"github.com/shenergia/solarcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // rune index of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Calculadora", Key: 'c', KeyPos: 0},
	{Name: "ROI", Key: 'r', KeyPos: 0},
	{Name: "Números", Key: 'n', KeyPos: 0},
	{Name: "FAQ", Key: 'f', KeyPos: 0},
	{Name: "Ajustes", Key: 'x', KeyPos: -1}, // x is not in "Ajustes"
}

// TabVisualWidth returns the rendered width of a tab, including its padding.
// Inactive tabs show the shortcut letter in brackets.
func TabVisualWidth(tab Tab, active bool) int {
	w := lipgloss.Width(tab.Name) + 2
	if !active {
		w += 2 // "[" "]"
		if tab.KeyPos < 0 {
			w++ // the key letter itself is appended
		}
	}
	return w
}

// RenderTabBar renders the tab bar with the given active index, padded to
// width. Tabs are separated by one column.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface).Bold(true)
	dimKeyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	sepStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for i, tab := range Tabs {
		if i > 0 {
			b.WriteString(sepStyle.Render(" "))
		}
		if i == activeIdx {
			b.WriteString(activeStyle.Render(" " + tab.Name + " "))
			continue
		}

		name := []rune(tab.Name)
		b.WriteString(inactiveStyle.Render(" "))
		if tab.KeyPos >= 0 && tab.KeyPos < len(name) {
			b.WriteString(inactiveStyle.Render(string(name[:tab.KeyPos])))
			b.WriteString(dimKeyStyle.Render("[") + keyStyle.Render(string(name[tab.KeyPos])) + dimKeyStyle.Render("]"))
			b.WriteString(inactiveStyle.Render(string(name[tab.KeyPos+1:])))
		} else {
			b.WriteString(inactiveStyle.Render(tab.Name))
			b.WriteString(dimKeyStyle.Render("[") + keyStyle.Render(string(tab.Key)) + dimKeyStyle.Render("]"))
		}
		b.WriteString(inactiveStyle.Render(" "))
	}

	row := b.String()
	if pad := width - lipgloss.Width(row); pad > 0 {
		row += sepStyle.Render(strings.Repeat(" ", pad))
	}
	return row
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
