package components

import (
	"strings"
	"testing"

	"github.com/shenergia/solarcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func TestGaugeClampsLabel(t *testing.T) {
	theme.SetActive("sh-solar")
	out := Gauge("Economia", 140, 20)
	if !strings.Contains(out, "100%") {
		t.Errorf("gauge over 100 = %q", out)
	}
	out = Gauge("Economia", -3, 20)
	if !strings.Contains(out, "  0%") {
		t.Errorf("gauge below 0 = %q", out)
	}
}

func TestGaugeWidthIsStable(t *testing.T) {
	theme.SetActive("sh-solar")
	w := lipgloss.Width(Gauge("Economia", 0, 30))
	for _, pct := range []float64{12, 50, 80, 95} {
		if got := lipgloss.Width(Gauge("Economia", pct, 30)); got != w {
			t.Errorf("width at %v%% = %d, want %d", pct, got, w)
		}
	}
}

func TestProgressBar(t *testing.T) {
	theme.SetActive("sh-solar")
	out := ProgressBar(0.5, 10)
	if strings.Count(out, "█") != 5 || strings.Count(out, "░") != 5 {
		t.Errorf("half bar = %q", out)
	}
	if lipgloss.Width(ProgressBar(2, 10)) != 10 {
		t.Error("overfull bar changed width")
	}
}

func TestColorForSavings(t *testing.T) {
	theme.SetActive("sh-solar")
	if ColorForSavings(80) != theme.Active.Accent {
		t.Error("80% should use the accent colour")
	}
	if ColorForSavings(10) != theme.Active.Highlight {
		t.Error("10% should use the highlight colour")
	}
}
