package components

import (
	"strings"
	"testing"

	"github.com/shenergia/solarcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, total := range []int{10, 79, 80, 121} {
		for n := 1; n <= 5; n++ {
			sum := 0
			for _, w := range LayoutRow(total, n) {
				sum += w
			}
			if sum != total {
				t.Errorf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowPadsShortCards(t *testing.T) {
	theme.SetActive("sh-solar")

	shortCard := ContentCard("Curto", "Conteúdo", 22)
	tallCard := ContentCard("Alto", "1\n2\n3\n4\n5", 22)
	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}

	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width %d, want %d", i, w, want)
		}
		if i >= shortLines && !strings.Contains(line, "\x1b[") {
			t.Errorf("padding line %d has no styling: %q", i, line)
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("sh-solar")
	row := MetricCardRow([]Metric{
		{Label: "Economia mensal", Value: "R$ 400"},
		{Label: "Economia anual", Value: "R$ 4.800"},
		{Label: "Em 25 anos", Value: "R$ 120.000", Note: "estimativa"},
	}, 90, 0)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width %d, want 90", i, w)
		}
	}
}
