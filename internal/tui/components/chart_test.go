package components

import (
	"strings"
	"testing"

	"github.com/shenergia/solarcalc/internal/model"
	"github.com/shenergia/solarcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatChartLabel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0.5, "0,5"},
		{4, "4"},
		{1000, "1k"},
		{1500, "1,5k"},
		{200000, "200k"},
		{2_000_000, "2mi"},
	}
	for _, tt := range tests {
		if got := formatChartLabel(tt.v); got != tt.want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestHBarChartMarksHighlight(t *testing.T) {
	theme.SetActive("sh-solar")
	ds := model.Dataset{
		Labels:    []string{"Residencial", "Comercial", "Rural"},
		Values:    []float64{4.6, 4.0, 5.2},
		Highlight: 1,
	}
	out := HBarChart(ds, func(v float64) string { return formatChartLabel(v) }, 60)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	for i, l := range lines {
		has := strings.Contains(l, "◀")
		if has != (i == 1) {
			t.Errorf("line %d marker = %v:\n%s", i, has, out)
		}
	}

	// No highlight: no marker anywhere.
	ds.Highlight = -1
	if strings.Contains(HBarChart(ds, formatChartLabel, 60), "◀") {
		t.Error("marker drawn with Highlight = -1")
	}
}

func TestHBarChartRowsShareWidth(t *testing.T) {
	theme.SetActive("sh-solar")
	ds := model.Dataset{
		Labels:    []string{"300", "900", "3k", "10k"},
		Values:    []float64{20001, 60003, 200010, 666700},
		Highlight: 2,
	}
	lines := strings.Split(HBarChart(ds, formatChartLabel, 50), "\n")
	want := lipgloss.Width(lines[0])
	for i, l := range lines {
		if w := lipgloss.Width(l); w != want {
			t.Errorf("line %d width %d, want %d", i, w, want)
		}
	}
}

func TestBarChartHeightAndLabels(t *testing.T) {
	theme.SetActive("sh-solar")
	ds := model.Dataset{
		Labels:    []string{"300", "900", "3k", "10k"},
		Values:    []float64{20001, 60003, 200010, 666700},
		Highlight: 1,
	}
	out := BarChart(ds, 60, 8)
	if out == "" {
		t.Fatal("empty chart")
	}
	lines := strings.Split(out, "\n")
	last := lines[len(lines)-1]
	for _, lbl := range ds.Labels {
		if !strings.Contains(last, lbl) {
			t.Errorf("x-axis missing %q: %q", lbl, last)
		}
	}
	if BarChart(model.Dataset{}, 60, 8) != "" {
		t.Error("empty dataset should render nothing")
	}
}
