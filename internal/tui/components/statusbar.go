package components

import (
	"strings"

	"github.com/shenergia/solarcalc/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// right-aligned context. An active notice replaces the hint; isError picks
// the alert colour over the accent.
func RenderStatusBar(width int, hint, right, notice string, isError bool) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	rightStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	noticeBg := t.Accent
	if isError {
		noticeBg = t.Red
	}
	noticeStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(noticeBg).Bold(true)

	left := hintStyle.Render(" " + hint)
	if notice != "" {
		left = noticeStyle.Render(" " + notice + " ")
	}
	rightR := rightStyle.Render(right + " ")

	pad := max(width-lipgloss.Width(left)-lipgloss.Width(rightR), 0)
	return left + barStyle.Render(strings.Repeat(" ", pad)) + rightR
}
