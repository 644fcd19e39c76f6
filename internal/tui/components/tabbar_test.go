package components

import (
	"testing"

	"github.com/shenergia/solarcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTabBarMatchesVisualWidths(t *testing.T) {
	theme.SetActive("sh-solar")
	for active := range Tabs {
		want := 0
		for i, tab := range Tabs {
			want += TabVisualWidth(tab, i == active)
		}
		want += len(Tabs) - 1

		if got := lipgloss.Width(RenderTabBar(active, 0)); got != want {
			t.Errorf("active=%d width %d, want %d", active, got, want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('x'); got != len(Tabs)-1 {
		t.Errorf("x -> %d", got)
	}
	if got := TabIdxByKey('n'); Tabs[got].Name != "Números" {
		t.Errorf("n -> %q", Tabs[got].Name)
	}
	if TabIdxByKey('z') != -1 {
		t.Error("unknown key matched a tab")
	}
}
