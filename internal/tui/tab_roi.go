package tui

import (
	"fmt"
	"strings"

	"github.com/shenergia/solarcalc/internal/cli"
	"github.com/shenergia/solarcalc/internal/config"
	"github.com/shenergia/solarcalc/internal/pipeline"
	"github.com/shenergia/solarcalc/internal/tui/components"
	"github.com/shenergia/solarcalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	keyRevenue = "roi.revenue"
	keyProfit  = "roi.profit"
)

// roiState tracks the investment slider of the ROI estimator.
type roiState struct {
	input   textinput.Model
	amount  float64
	presets pipeline.Shortcuts
	plan    *pipeline.ROIPlan
}

func newROIState(cfg config.Config) roiState {
	ti := textinput.New()
	ti.Prompt = "R$ "
	ti.Placeholder = fmt.Sprintf("%s a %s", cli.FormatNumber(cfg.ROI.Min), cli.FormatNumber(cfg.ROI.Max))
	ti.CharLimit = 10
	ti.Width = 20

	amount := cfg.ROI.Min
	if len(cfg.ROI.Presets) > 1 {
		amount = cfg.ROI.Presets[1]
	}
	return roiState{
		input:   ti,
		amount:  amount,
		presets: pipeline.NewShortcuts(cfg.ROI.Presets),
	}
}

// roiCompute evaluates the projection for amount, clamped to the slider
// range, without animating.
func (a *App) roiCompute(amount float64) bool {
	plan, err := a.est.ROIAmount(amount)
	if err != nil {
		a.logger.Debug("roi estimate failed", "amount", amount, "err", err)
		return false
	}
	a.roi.plan = &plan
	a.roi.amount = plan.Result.Amount
	a.roi.presets.Match(a.roi.amount)
	return true
}

// roiAnimate moves the displayed ROI figures toward the current plan.
func (a *App) roiAnimate() tea.Cmd {
	if a.roi.plan == nil {
		return nil
	}
	r := a.roi.plan.Result
	return tea.Batch(
		a.results.Animate(keyRevenue, r.Revenue),
		a.results.Animate(keyProfit, r.Profit),
	)
}

func (a *App) roiRecompute(amount float64) tea.Cmd {
	if !a.roiCompute(amount) {
		return nil
	}
	return a.roiAnimate()
}

func (a App) updateROIInput(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case msg.Type == tea.KeyEnter:
		plan, err := a.est.ROI(a.roi.input.Value())
		if err != nil {
			cmd := a.showNotice(pipeline.NoticeFor(err), true)
			return a, cmd, true
		}
		a.roi.input.Blur()
		a.roi.input.SetValue("")
		cmd := a.roiRecompute(plan.Result.Amount)
		return a, cmd, true
	case msg.Type == tea.KeyEsc:
		a.roi.input.Blur()
		a.roi.input.SetValue("")
		return a, nil, true
	case isAmountKey(msg):
		var cmd tea.Cmd
		a.roi.input, cmd = a.roi.input.Update(msg)
		return a, cmd, true
	}
	return a, nil, false
}

func (a App) updateROIKey(key string) (tea.Model, tea.Cmd, bool) {
	step := a.cfg.ROI.Step
	switch key {
	case "-", "h":
		cmd := a.roiRecompute(a.roi.amount - step)
		return a, cmd, true
	case "+", "=", "l":
		cmd := a.roiRecompute(a.roi.amount + step)
		return a, cmd, true
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx >= len(a.roi.presets.Values) {
			return a, nil, true
		}
		cmd := a.roiRecompute(a.roi.presets.Values[idx])
		return a, cmd, true
	case "e", "i", "/":
		cmd := a.roi.input.Focus()
		return a, cmd, true
	}
	return a, nil, false
}

func (a App) renderROITab(cw int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)
	rc := a.cfg.ROI

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface).Bold(true)
	chipStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Padding(0, 1)
	activeChipStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true).Padding(0, 1)
	gapStyle := lipgloss.NewStyle().Background(t.Surface)
	linkStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Underline(true)

	// Slider
	var s strings.Builder
	s.WriteString(labelStyle.Render("Investimento  "))
	s.WriteString(valueStyle.Render(cli.FormatBRL(a.roi.amount)))
	s.WriteString("\n")
	frac := 0.0
	if rc.Max > rc.Min {
		frac = (a.roi.amount - rc.Min) / (rc.Max - rc.Min)
	}
	minLabel, maxLabel := cli.FormatBRL(rc.Min), cli.FormatBRL(rc.Max)
	barW := max(inner-lipgloss.Width(minLabel)-lipgloss.Width(maxLabel)-2, 10)
	s.WriteString(labelStyle.Render(minLabel+" "))
	s.WriteString(components.ProgressBar(frac, barW))
	s.WriteString(labelStyle.Render(" " + maxLabel))
	s.WriteString("\n\n")

	s.WriteString(labelStyle.Render("Predefinidos  "))
	for i, v := range a.roi.presets.Values {
		if i > 0 {
			s.WriteString(gapStyle.Render(" "))
		}
		style := chipStyle
		if i == a.roi.presets.Active() {
			style = activeChipStyle
		}
		s.WriteString(keyStyle.Render(fmt.Sprintf("%d", i+1)))
		s.WriteString(style.Render(cli.FormatBRL(v)))
	}
	if a.roi.input.Focused() {
		s.WriteString("\n\n")
		s.WriteString(labelStyle.Render("Valor exato  "))
		s.WriteString(a.roi.input.View())
	}

	parts := []string{components.ContentCard("Simule seu retorno", s.String(), cw)}

	if plan := a.roi.plan; plan != nil {
		r := plan.Result
		parts = append(parts,
			components.MetricCardRow([]components.Metric{
				{Label: "Receita projetada", Value: cli.FormatBRL(a.results.Display(keyRevenue))},
				{Label: "Lucro", Value: cli.FormatBRL(a.results.Display(keyProfit))},
				{Label: "Retorno", Value: cli.FormatMultiple(r.Multiple), Note: "sobre o investimento"},
				{Label: "Por dia", Value: "R$ " + cli.FormatDecimal(r.Daily, 2)},
			}, cw, 2),
			components.ContentCard("Receita por investimento",
				components.BarChart(plan.Chart, inner, 8), cw),
			components.ContentCard("Solicite uma proposta pelo WhatsApp",
				linkStyle.Render(truncStr(plan.Link, inner))+"\n"+
					keyStyle.Render("[y]")+labelStyle.Render(" copiar link"), cw),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
