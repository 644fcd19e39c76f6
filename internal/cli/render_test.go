package cli

import (
	"strings"
	"testing"

	"github.com/shenergia/solarcalc/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderDataset_MarksHighlightOnce(t *testing.T) {
	ds := model.Dataset{
		Labels:    []string{"R$ 200", "R$ 500", "R$ 800"},
		Values:    []float64{4, 4.6, 4.8},
		Highlight: 1,
	}
	out := RenderDataset("Retorno", ds, FormatYears, 20)

	if got := strings.Count(out, "◀"); got != 1 {
		t.Fatalf("highlight markers = %d, want 1\n%s", got, out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want title + 3 rows", len(lines))
	}
	if !strings.Contains(lines[2], "◀") {
		t.Errorf("marker on wrong row:\n%s", out)
	}
}

func TestRenderDataset_Empty(t *testing.T) {
	if out := RenderDataset("x", model.Dataset{}, FormatYears, 10); out != "" {
		t.Errorf("empty dataset rendered %q", out)
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	if got := RenderHorizontalBar(5, 0, 10); got != "" {
		t.Errorf("zero max = %q, want empty", got)
	}
	got := RenderHorizontalBar(5, 10, 10)
	if strings.Count(got, "█") != 5 {
		t.Errorf("half bar = %q", got)
	}
	if n := len([]rune(got)); n != 10 {
		t.Errorf("bar width = %d, want 10", n)
	}
}

func TestRenderTable_AccentedHeadersAlign(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Potência", "Valor"},
		Rows:    [][]string{{"kWp", "4,9"}},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := lipgloss.Width(lines[0])
	for i, l := range lines {
		if n := lipgloss.Width(l); n != want {
			t.Errorf("line %d width %d, want %d:\n%s", i, n, want, out)
		}
	}
}

func TestRenderTable_SeparatorRows(t *testing.T) {
	out := RenderTable(Table{
		Rows: [][]string{
			{"Economia mensal", "R$ 400"},
			{"---"},
			{"Sistema", "4,9 kWp"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "┼") {
		t.Errorf("separator row not drawn: %q", lines[2])
	}
	if RenderTable(Table{}) != "" {
		t.Error("empty table rendered output")
	}
}
