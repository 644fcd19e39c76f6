// Package tui provides the interactive Bubble Tea estimator for solarcalc.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shenergia/solarcalc/internal/anim"
	"github.com/shenergia/solarcalc/internal/config"
	"github.com/shenergia/solarcalc/internal/contact"
	"github.com/shenergia/solarcalc/internal/pipeline"
	"github.com/shenergia/solarcalc/internal/tui/components"
	"github.com/shenergia/solarcalc/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabCalculator = iota
	tabROI
	tabStats
	tabFAQ
	tabSettings
)

// headerWords cycle in the brand line's typing effect.
var headerWords = []string{"Economia", "Sustentabilidade", "Independência", "Futuro"}

const (
	minTerminalWidth = 80
	maxContentWidth  = 120
	minContentHeight = 5
)

// copyDoneMsg reports the outcome of a clipboard copy.
type copyDoneMsg struct {
	err error
}

// App is the root Bubble Tea model.
type App struct {
	est    *pipeline.Estimator
	cfg    config.Config
	logger *slog.Logger

	// Animation
	results  *anim.Animator // result fields and the gauge
	counters *anim.Animator // Números tab
	wheel    *anim.Throttle
	typer    *anim.Typewriter

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	notice    notice

	// Per-tab state
	calc     calcState
	roi      roiState
	stats    statsState
	faq      faqState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
}

// NewApp creates the TUI model around an estimator. needSetup shows the
// first-run form before the calculator.
func NewApp(est *pipeline.Estimator, logger *slog.Logger, needSetup bool) App {
	cfg := est.Config()
	if logger == nil {
		logger = slog.Default()
	}

	a := App{
		est:    est,
		cfg:    cfg,
		logger: logger,
		results: anim.New(anim.Timing{
			Duration: cfg.Animation.Duration(),
			Frame:    cfg.Animation.Frame(),
		}),
		counters: anim.New(anim.Timing{
			Duration: cfg.Animation.CounterDuration(),
			Frame:    cfg.Animation.Frame(),
		}),
		wheel:     anim.NewThrottle(cfg.Animation.Throttle()),
		typer:     anim.NewTypewriter(headerWords...),
		calc:      newCalcState(cfg),
		roi:       newROIState(cfg),
		faq:       newFAQState(),
		needSetup: needSetup,
	}

	if needSetup {
		a.setupVals = newSetupValues(cfg)
		a.setupForm = newSetupForm(a.setupVals)
	}
	a.roiCompute(a.roi.amount)
	return a
}

// NewSession builds the estimator for cfg and the app around it. Invalid
// coefficient overrides do not stop the session: the built-in table is used
// and the app opens with a notice saying so.
func NewSession(cfg config.Config, logger *slog.Logger, needSetup bool) (App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	est, err := pipeline.NewEstimator(cfg, logger)
	if err == nil {
		return NewApp(est, logger, needSetup), nil
	}

	logger.Warn("ignoring coefficient overrides", "path", config.Path(), "err", err)
	cfg.Coefficients = config.DefaultConfig().Coefficients
	est, err = pipeline.NewEstimator(cfg, logger)
	if err != nil {
		return App{}, err
	}
	a := NewApp(est, logger, needSetup)
	a.notice = notice{id: 1, text: "Coeficientes inválidos no config.toml; usando os padrões", isError: true}
	return a, nil
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		anim.StartTyping(),
		a.calc.input.Cursor.BlinkCmd(),
		a.roiAnimate(),
	}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	if a.notice.text != "" {
		cmds = append(cmds, a.expireNotice())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case anim.FrameMsg:
		if strings.HasPrefix(msg.Key, statKeyPrefix) {
			return a, a.counters.Update(msg)
		}
		return a, a.results.Update(msg)

	case anim.TypeMsg:
		return a, anim.TypeAfter(a.typer.Next())

	case gaugeStartMsg:
		// A newer estimate owns the gauge now.
		if msg.run != a.calc.run || a.calc.plan == nil {
			return a, nil
		}
		return a, a.results.Animate(keyGauge, a.calc.plan.GaugePercent)

	case noticeExpiredMsg:
		a.notice = a.notice.expire(msg.id)
		return a, nil

	case copyDoneMsg:
		var cmd tea.Cmd
		if msg.err != nil {
			a.logger.Debug("clipboard unavailable", "err", msg.err)
			cmd = a.showNotice("Não foi possível copiar o link", true)
		} else {
			cmd = a.showNotice("Link do WhatsApp copiado!", false)
		}
		return a, cmd

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	// Cursor blink for whichever input is focused
	return a.updateFocusedInput(msg)
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Text inputs own the keyboard while focused
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}
	if a.activeTab == tabCalculator && a.calc.input.Focused() {
		if m, cmd, handled := a.updateCalcInput(msg); handled {
			return m, cmd
		}
	}
	if a.activeTab == tabROI && a.roi.input.Focused() {
		if m, cmd, handled := a.updateROIInput(msg); handled {
			return m, cmd
		}
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Per-tab bindings
	switch a.activeTab {
	case tabCalculator:
		if m, cmd, handled := a.updateCalcKey(key); handled {
			return m, cmd
		}
	case tabROI:
		if m, cmd, handled := a.updateROIKey(key); handled {
			return m, cmd
		}
	case tabFAQ:
		if m, cmd, handled := a.updateFAQKey(key); handled {
			return m, cmd
		}
	case tabSettings:
		if m, cmd, handled := a.updateSettingsKey(key); handled {
			return m, cmd
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "y":
		return a, a.copyLink()
	case "left", "shift+tab":
		return a.switchTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
	case "right", "tab":
		return a.switchTab((a.activeTab + 1) % len(components.Tabs))
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			return a.switchTab(idx)
		}
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.showHelp || (a.needSetup && a.setupForm != nil) {
		return a, nil
	}
	if msg.Action != tea.MouseActionPress {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if !a.wheel.Allow() {
			return a, nil
		}
		up := msg.Button == tea.MouseButtonWheelUp
		switch a.activeTab {
		case tabROI:
			delta := a.cfg.ROI.Step
			if !up {
				delta = -delta
			}
			cmd := a.roiRecompute(a.roi.amount + delta)
			return a, cmd
		case tabCalculator:
			a.calc.scrollBy(up, a.calcMaxScroll())
		case tabFAQ:
			a.faq.move(up)
		}
		return a, nil

	case tea.MouseButtonLeft:
		// The tab bar is the first line of the header.
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				return a.switchTab(tab)
			}
		}
	}
	return a, nil
}

// switchTab activates tab idx. The Números counters start the first time
// their tab becomes visible.
func (a App) switchTab(idx int) (tea.Model, tea.Cmd) {
	a.activeTab = idx
	a.calc.input.Blur()
	a.roi.input.Blur()

	var cmd tea.Cmd
	if idx == tabStats && !a.stats.seen {
		a.stats.seen = true
		cmd = a.startCounters()
	}
	return a, cmd
}

func (a App) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case a.activeTab == tabCalculator && a.calc.input.Focused():
		a.calc.input, cmd = a.calc.input.Update(msg)
	case a.activeTab == tabROI && a.roi.input.Focused():
		a.roi.input, cmd = a.roi.input.Update(msg)
	case a.activeTab == tabSettings && a.settings.editing:
		a.settings.input, cmd = a.settings.input.Update(msg)
	}
	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.needSetup = false
		a.setupForm = nil
		if err := a.applyConfig(a.setupVals.apply(a.cfg)); err != nil {
			cmd := a.showNotice("Falha ao salvar: "+err.Error(), true)
			return a, cmd
		}
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

// applyConfig saves cfg, then rebuilds the estimator from it and applies the
// theme. The running session keeps its previous settings on failure.
func (a *App) applyConfig(cfg config.Config) error {
	est, err := pipeline.NewEstimator(cfg, a.logger)
	if err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	a.logger.Debug("config saved", "path", config.Path())

	a.est = est
	a.cfg = cfg
	a.results.SetTiming(anim.Timing{Duration: cfg.Animation.Duration(), Frame: cfg.Animation.Frame()})
	a.counters.SetTiming(anim.Timing{Duration: cfg.Animation.CounterDuration(), Frame: cfg.Animation.Frame()})
	a.wheel = anim.NewThrottle(cfg.Animation.Throttle())
	a.calc.input.Placeholder = billPlaceholder(cfg)
	theme.SetActive(cfg.Appearance.Theme)
	return nil
}

// currentLink returns the WhatsApp link of the visible estimate, falling
// back to a link without an amount.
func (a App) currentLink() string {
	switch {
	case a.activeTab == tabROI && a.roi.plan != nil:
		return a.roi.plan.Link
	case a.calc.plan != nil:
		return a.calc.plan.Link
	}
	return contact.Link(config.GetWhatsAppPhone(a.cfg), "Olá! Gostaria de um orçamento de energia solar.")
}

func (a App) copyLink() tea.Cmd {
	link := a.currentLink()
	return func() tea.Msg {
		return copyDoneMsg{err: contact.Copy(link)}
	}
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal muito estreito (%d colunas)\n\n  O solarcalc precisa de pelo menos %d colunas.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings [][2]string
	}{
		{"Navegação", [][2]string{
			{"c r n f x", "Ir para a aba"},
			{"← →", "Aba anterior / próxima"},
			{"j k", "Rolar / mover"},
		}},
		{"Calculadora", [][2]string{
			{"Enter", "Calcular"},
			{"Esc  i", "Sair / voltar ao campo de valor"},
			{"1-5", "Valores rápidos"},
			{"t T", "Tipo de instalação"},
		}},
		{"ROI", [][2]string{
			{"- +", "Ajustar investimento"},
			{"1-4", "Valores predefinidos"},
			{"e", "Digitar valor"},
		}},
		{"Geral", [][2]string{
			{"y", "Copiar link do WhatsApp"},
			{"?", "Ajuda"},
			{"q", "Sair"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("☀ Atalhos do teclado"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, bind := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind[0])),
				descStyle.Render(bind[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Pressione qualquer tecla para fechar"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + brand line with the typing effect
	brandStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	typedStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.Surface).Bold(true)
	brandRow := lipgloss.NewStyle().Background(t.Surface).Width(w)
	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		brandRow.Render(brandStyle.Render(" ☀ SH Energia Solar · ")+typedStyle.Render(a.typer.Text()+"▌"))

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.statusHint(), theme.Active.Name, a.notice.text, a.notice.isError)

	// 3. Content zone height
	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabCalculator:
		content = scrollLines(a.renderCalculatorTab(cw), a.calc.scroll)
	case tabROI:
		content = a.renderROITab(cw)
	case tabStats:
		content = a.renderStatsTab(cw)
	case tabFAQ:
		content = a.renderFAQTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines, fill backgrounds
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusHint() string {
	switch a.activeTab {
	case tabCalculator:
		if a.calc.input.Focused() {
			return "[Enter] calcular  [Esc] atalhos  [?] ajuda"
		}
		return "[1-5] valores  [t] tipo  [Enter] calcular  [i] editar  [y] copiar link  [q] sair"
	case tabROI:
		if a.roi.input.Focused() {
			return "[Enter] aplicar  [Esc] cancelar"
		}
		return "[-/+] ajustar  [1-4] predefinidos  [e] digitar  [y] copiar link  [q] sair"
	case tabFAQ:
		return "[j/k] navegar  [Enter] abrir/fechar  [q] sair"
	case tabSettings:
		return "[j/k] navegar  [Enter] editar  [Esc] cancelar"
	}
	return "[?] ajuda  [q] sair"
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // one-column separator
	}
	return -1
}

// scrollLines drops the first offset lines of s.
func scrollLines(s string, offset int) string {
	if offset <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	return strings.Join(lines[offset:], "\n")
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
