package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenergia/solarcalc/internal/cli"
	"github.com/shenergia/solarcalc/internal/config"
	"github.com/shenergia/solarcalc/internal/model"
	"github.com/shenergia/solarcalc/internal/pipeline"
	"github.com/shenergia/solarcalc/internal/tui/components"
	"github.com/shenergia/solarcalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Animated fields of the calculator.
const (
	keyMonthly  = "calc.monthly"
	keyAnnual   = "calc.annual"
	keyLifetime = "calc.lifetime"
	keyGauge    = "calc.gauge"
)

// gaugeStartMsg starts the gauge for estimate run, after the gauge delay.
type gaugeStartMsg struct {
	run int
}

// calcState tracks the bill-savings calculator.
type calcState struct {
	input     textinput.Model
	tier      int // index into model.SavingsTiers
	shortcuts pipeline.Shortcuts
	plan      *pipeline.SavingsPlan
	run       int // bumped per estimate; stale gauge starts are dropped
	scroll    int
}

func newCalcState(cfg config.Config) calcState {
	ti := textinput.New()
	ti.Prompt = "R$ "
	ti.Placeholder = billPlaceholder(cfg)
	ti.CharLimit = 14
	ti.Width = 28
	ti.Focus()

	tier := 0
	if def, err := model.ParseTier(cfg.General.DefaultTier); err == nil {
		for i, t := range model.SavingsTiers {
			if t == def {
				tier = i
			}
		}
	}

	return calcState{
		input:     ti,
		tier:      tier,
		shortcuts: pipeline.NewShortcuts(cfg.General.QuickValues),
	}
}

func billPlaceholder(cfg config.Config) string {
	return fmt.Sprintf("ex.: 500 (mínimo %s)", cli.FormatBRL(cfg.General.MinBill))
}

func (c calcState) selectedTier() model.Tier {
	return model.SavingsTiers[c.tier]
}

// scrollBy moves the view one line, never past limit.
func (c *calcState) scrollBy(up bool, limit int) {
	if up {
		c.scroll = max(c.scroll-1, 0)
		return
	}
	c.scroll = min(c.scroll+1, max(limit, 0))
}

// isAmountKey reports whether msg edits the amount rather than commanding
// the app. Letters stay free for tab switching.
func isAmountKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlW:
		return true
	case tea.KeyRunes:
		if msg.Paste {
			return true
		}
		for _, r := range msg.Runes {
			if (r < '0' || r > '9') && r != ',' && r != '.' {
				return false
			}
		}
		return len(msg.Runes) > 0
	}
	return false
}

func (a App) updateCalcInput(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case msg.Type == tea.KeyEnter:
		m, cmd := a.calculate()
		return m, cmd, true
	case msg.Type == tea.KeyEsc:
		a.calc.input.Blur()
		return a, nil, true
	case isAmountKey(msg):
		var cmd tea.Cmd
		a.calc.input, cmd = a.calc.input.Update(msg)
		// A typed value is a custom value
		a.calc.shortcuts.Clear()
		return a, cmd, true
	}
	return a, nil, false
}

func (a App) updateCalcKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "enter":
		m, cmd := a.calculate()
		return m, cmd, true
	case "i", "e", "/":
		cmd := a.calc.input.Focus()
		return a, cmd, true
	case "1", "2", "3", "4", "5":
		if raw, ok := a.calc.shortcuts.Select(int(key[0] - '1')); ok {
			a.calc.input.SetValue(raw)
			a.calc.input.CursorEnd()
		}
		return a, nil, true
	case "t", "T":
		n := len(model.SavingsTiers)
		if key == "t" {
			a.calc.tier = (a.calc.tier + 1) % n
		} else {
			a.calc.tier = (a.calc.tier - 1 + n) % n
		}
		// A shown estimate follows the tier
		if a.calc.plan != nil {
			m, cmd := a.calculate()
			return m, cmd, true
		}
		return a, nil, true
	case "j", "down":
		a.calc.scrollBy(false, a.calcMaxScroll())
		return a, nil, true
	case "k", "up":
		a.calc.scrollBy(true, a.calcMaxScroll())
		return a, nil, true
	case "g":
		a.calc.scroll = 0
		return a, nil, true
	}
	return a, nil, false
}

// calculate validates the typed bill and presents the estimate. Invalid
// input only raises a notice; the previous result stays on screen.
func (a App) calculate() (tea.Model, tea.Cmd) {
	plan, err := a.est.Savings(a.calc.input.Value(), a.calc.selectedTier())
	if err != nil {
		cmd := a.showNotice(pipeline.NoticeFor(err), true)
		return a, cmd
	}

	a.calc.plan = &plan
	a.calc.shortcuts.Match(plan.Input.Amount)
	a.calc.input.Blur()
	a.calc.run++
	a.calc.scroll = a.resultOffset()

	run := a.calc.run
	r := plan.Result
	return a, tea.Batch(
		a.results.Animate(keyMonthly, r.MonthlySavings),
		a.results.Animate(keyAnnual, r.AnnualSavings),
		a.results.Animate(keyLifetime, r.LifetimeSavings),
		tea.Tick(a.cfg.Animation.GaugeDelay(), func(time.Time) tea.Msg {
			return gaugeStartMsg{run: run}
		}),
	)
}

// calcMaxScroll is the last scroll position that still fills the content
// zone.
func (a App) calcMaxScroll() int {
	if a.height == 0 {
		return 0
	}
	avail := a.height - 3 // tab bar, brand line, status bar
	return max(lipgloss.Height(a.renderCalculatorTab(a.contentWidth()))-avail, 0)
}

// resultOffset is the scroll position that brings the result cards into
// view, or 0 when everything fits.
func (a App) resultOffset() int {
	limit := a.calcMaxScroll()
	if limit == 0 {
		return 0
	}
	return min(lipgloss.Height(a.renderCalcInputCard(a.contentWidth())), limit)
}

func (a App) renderCalcInputCard(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface).Bold(true)
	chipStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Padding(0, 1)
	activeChipStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true).Padding(0, 1)
	radioStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	radioOnStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	gapStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(labelStyle.Render("Valor médio da sua conta de luz"))
	b.WriteString("\n")
	b.WriteString(a.calc.input.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Valores rápidos  "))
	for i, v := range a.calc.shortcuts.Values {
		if i > 0 {
			b.WriteString(gapStyle.Render(" "))
		}
		style := chipStyle
		if i == a.calc.shortcuts.Active() {
			style = activeChipStyle
		}
		b.WriteString(keyStyle.Render(fmt.Sprintf("%d", i+1)))
		b.WriteString(style.Render(cli.FormatBRL(v)))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Tipo de instalação "))
	for i, tier := range model.SavingsTiers {
		if i == a.calc.tier {
			b.WriteString(radioOnStyle.Render(" (●) " + tier.Label()))
		} else {
			b.WriteString(radioStyle.Render(" ( ) " + tier.Label()))
		}
	}

	return components.ContentCard("Simule sua economia", b.String(), cw)
}

func (a App) renderCalculatorTab(cw int) string {
	input := a.renderCalcInputCard(cw)
	if a.calc.plan == nil {
		return input
	}

	t := theme.Active
	plan := a.calc.plan
	r := plan.Result
	inner := components.CardInnerWidth(cw)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	linkStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Underline(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface).Bold(true)

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Economia mensal", Value: cli.FormatBRL(a.results.Display(keyMonthly))},
		{Label: "Economia anual", Value: cli.FormatBRL(a.results.Display(keyAnnual))},
		{Label: "Economia em 25 anos", Value: cli.FormatBRL(a.results.Display(keyLifetime))},
	}, cw, 2)

	var sys strings.Builder
	row := func(label, value string) {
		sys.WriteString(labelStyle.Render(fmt.Sprintf("%-26s", label)))
		sys.WriteString(valueStyle.Render(value))
		sys.WriteString("\n")
	}
	row("Conta informada", cli.FormatBRL(r.Bill)+" · "+plan.Input.Tier.Label())
	row("Sistema recomendado", cli.FormatKWp(r.SystemKWp))
	row("Investimento estimado", cli.FormatBRL(r.SystemCost))
	row("Retorno do investimento", cli.FormatYears(r.PaybackYears))
	sys.WriteString("\n")
	sys.WriteString(components.Gauge("Redução na conta", a.results.Value(keyGauge), max(inner-30, 10)))

	chart := components.HBarChart(plan.Chart, cli.FormatYears, inner)

	contact := linkStyle.Render(truncStr(plan.Link, inner)) + "\n" +
		keyStyle.Render("[y]") + labelStyle.Render(" copiar link para pedir seu orçamento")

	return lipgloss.JoinVertical(lipgloss.Left,
		input,
		metrics,
		components.ContentCard("Seu sistema", sys.String(), cw),
		components.ContentCard("Retorno por tipo de instalação", chart, cw),
		components.ContentCard("Solicite um orçamento pelo WhatsApp", contact, cw),
	)
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
