package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shenergia/solarcalc/internal/anim"
	"github.com/shenergia/solarcalc/internal/config"
	"github.com/shenergia/solarcalc/internal/logging"
	"github.com/shenergia/solarcalc/internal/model"
	"github.com/shenergia/solarcalc/internal/pipeline"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func newTestApp(t *testing.T) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SOLARCALC_WHATSAPP_PHONE", "")

	est, err := pipeline.NewEstimator(config.DefaultConfig(), logging.Discard())
	if err != nil {
		t.Fatalf("NewEstimator: %v", err)
	}
	a, _ := update(t, NewApp(est, logging.Discard(), false), tea.WindowSizeMsg{Width: 120, Height: 40})
	return a
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return next, cmd
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, a App, msgs ...tea.KeyMsg) App {
	t.Helper()
	for _, msg := range msgs {
		a, _ = update(t, a, msg)
	}
	return a
}

// settle plays every frame of key through Update.
func settle(t *testing.T, a App, key string) App {
	t.Helper()
	for i := 0; i < 10_000; i++ {
		if !a.results.Running(key) {
			return a
		}
		a, _ = update(t, a, anim.FrameMsg{Key: key, Gen: a.results.Generation(key)})
	}
	t.Fatalf("%s never settled", key)
	return a
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestCalculator_InvalidBillShowsNotice(t *testing.T) {
	a := newTestApp(t)

	a, cmd := update(t, press(t, a, keys("50")), enter)
	if a.calc.plan != nil {
		t.Fatal("invalid bill produced a plan")
	}
	if !a.notice.isError || !strings.Contains(a.notice.text, "mínimo R$ 100") {
		t.Fatalf("notice = %+v", a.notice)
	}
	if cmd == nil {
		t.Fatal("notice has no dismissal scheduled")
	}

	a, _ = update(t, a, noticeExpiredMsg{id: a.notice.id})
	if a.notice.text != "" {
		t.Errorf("notice not dismissed: %q", a.notice.text)
	}
}

func TestCalculator_NewerNoticeSurvivesOldDismissal(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, keys("1"), enter)
	first := a.notice.id
	a = press(t, a, keys("i"), keys("2"), enter)
	if a.notice.id == first {
		t.Fatal("second notice reused the first id")
	}

	a, _ = update(t, a, noticeExpiredMsg{id: first})
	if a.notice.text == "" {
		t.Error("stale dismissal cleared the newer notice")
	}
}

func TestCalculator_ComputesAndAnimates(t *testing.T) {
	a := newTestApp(t)

	a, cmd := update(t, press(t, a, keys("500")), enter)
	if cmd == nil {
		t.Fatal("no animation commands")
	}
	if a.calc.plan == nil {
		t.Fatal("no plan after a valid bill")
	}
	if a.calc.input.Focused() {
		t.Error("input still focused after computing")
	}
	r := a.calc.plan.Result
	if r.MonthlySavings != 400 || r.AnnualSavings != 4800 || r.LifetimeSavings != 120000 {
		t.Fatalf("result = %+v", r)
	}
	if !a.results.Running(keyLifetime) {
		t.Fatal("lifetime savings not animating")
	}

	for _, key := range []string{keyMonthly, keyAnnual, keyLifetime} {
		a = settle(t, a, key)
	}
	if got := a.results.Display(keyLifetime); got != 120000 {
		t.Errorf("lifetime settled at %v, want 120000", got)
	}
}

func TestCalculator_GaugeStartsAfterDelay(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, keys("500"), enter)

	if a.results.Target(keyGauge) != 0 {
		t.Fatal("gauge started before its delay")
	}
	a, _ = update(t, a, gaugeStartMsg{run: a.calc.run})
	if got := a.results.Target(keyGauge); got != 80 {
		t.Errorf("gauge target = %v, want 80", got)
	}
}

func TestCalculator_StaleGaugeStartIgnored(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, keys("500"), enter)
	stale := a.calc.run
	a = press(t, a, keys("t"))
	if a.calc.run == stale {
		t.Fatal("tier change did not start a new estimate")
	}

	a, _ = update(t, a, gaugeStartMsg{run: stale})
	if a.results.Running(keyGauge) {
		t.Error("stale gauge start animated the gauge")
	}
}

func TestCalculator_QuickValues(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, esc, keys("3"))
	if got := a.calc.input.Value(); got != "500" {
		t.Fatalf("input = %q, want 500", got)
	}
	if a.calc.shortcuts.Active() != 2 {
		t.Fatalf("active shortcut = %d, want 2", a.calc.shortcuts.Active())
	}

	// Typing a custom value clears the marker
	a = press(t, a, keys("i"), keys("0"))
	if a.calc.shortcuts.Active() != -1 {
		t.Errorf("active shortcut = %d after typing, want -1", a.calc.shortcuts.Active())
	}
	if got := a.calc.input.Value(); got != "5000" {
		t.Errorf("input = %q, want 5000", got)
	}
}

func TestCalculator_TierFollowsShownEstimate(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, keys("500"), enter, keys("t"))

	if a.calc.plan.Input.Tier != model.TierCommercial {
		t.Errorf("tier = %s, want commercial", a.calc.plan.Input.Tier)
	}
	if a.calc.plan.Chart.Highlight != 1 {
		t.Errorf("chart highlight = %d, want 1", a.calc.plan.Chart.Highlight)
	}
}

func TestROI_SliderClampsAndPresets(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, keys("r"))

	if a.roi.plan == nil || a.roi.amount != 900 {
		t.Fatalf("initial amount = %v, want 900", a.roi.amount)
	}
	if a.roi.plan.Result.Revenue != 60003 {
		t.Errorf("revenue = %v, want 60003", a.roi.plan.Result.Revenue)
	}

	a = press(t, a, keys("+"))
	if a.roi.amount != 1000 {
		t.Errorf("after + amount = %v, want 1000", a.roi.amount)
	}
	if a.roi.plan.Chart.Highlight != -1 {
		t.Errorf("custom amount highlighted preset %d", a.roi.plan.Chart.Highlight)
	}

	a = press(t, a, keys("4"), keys("+"))
	if a.roi.amount != 10000 {
		t.Errorf("amount above max = %v, want 10000", a.roi.amount)
	}
	if a.roi.plan.Chart.Highlight != 3 {
		t.Errorf("highlight = %d, want 3", a.roi.plan.Chart.Highlight)
	}

	a = press(t, a, keys("1"), keys("-"))
	if a.roi.amount != 300 {
		t.Errorf("amount below min = %v, want 300", a.roi.amount)
	}
}

func TestROI_TypedAmount(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, keys("r"), keys("e"), keys("3000"), enter)
	if a.roi.amount != 3000 {
		t.Errorf("amount = %v, want 3000", a.roi.amount)
	}
	if a.roi.input.Focused() {
		t.Error("input still focused")
	}

	a = press(t, a, keys("e"), keys("0"), enter)
	if !a.notice.isError {
		t.Error("zero amount raised no notice")
	}
}

func TestROI_WheelIsThrottled(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, keys("r"))

	wheel := tea.MouseMsg{X: 10, Y: 10, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}
	a, _ = update(t, a, wheel)
	a, _ = update(t, a, wheel)
	if a.roi.amount != 1000 {
		t.Errorf("two wheel ticks inside the cooldown moved to %v, want 1000", a.roi.amount)
	}
}

func TestStats_CountersStartOnce(t *testing.T) {
	a := newTestApp(t)
	key := companyStats[0].key

	a, cmd := update(t, a, keys("n"))
	if cmd == nil || !a.stats.seen {
		t.Fatal("counters did not start on first view")
	}
	if a.counters.Target(key) != companyStats[0].target {
		t.Fatalf("target = %v", a.counters.Target(key))
	}
	gen := a.counters.Generation(key)

	a = press(t, a, keys("c"), keys("n"))
	if a.counters.Generation(key) != gen {
		t.Error("counters restarted on a second visit")
	}
}

func TestFAQ_OneItemOpen(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, keys("f"), enter)
	if a.faq.open != 0 {
		t.Fatalf("open = %d, want 0", a.faq.open)
	}

	a = press(t, a, keys("j"), enter)
	if a.faq.open != 1 {
		t.Fatalf("open = %d, want 1", a.faq.open)
	}

	a = press(t, a, enter)
	if a.faq.open != -1 {
		t.Errorf("toggling the open item left %d open", a.faq.open)
	}
}

func TestSettings_MinBillSavedAndApplied(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, keys("x"), keys("j"), keys("j"), keys("j"), enter)
	if !a.settings.editing || a.settings.cursor != settingsFieldMinBill {
		t.Fatalf("editing=%v cursor=%d", a.settings.editing, a.settings.cursor)
	}
	a.settings.input.SetValue("150")
	a = press(t, a, enter)

	if a.settings.saveErr != nil {
		t.Fatalf("save: %v", a.settings.saveErr)
	}
	if a.cfg.General.MinBill != 150 {
		t.Errorf("min bill = %v, want 150", a.cfg.General.MinBill)
	}
	if _, err := os.Stat(config.Path()); err != nil {
		t.Errorf("config not written: %v", err)
	}

	a = press(t, a, keys("c"), keys("i"), keys("120"), enter)
	if a.calc.plan != nil {
		t.Error("bill below the new minimum was accepted")
	}
}

func TestSettings_FailedSaveKeepsSession(t *testing.T) {
	a := newTestApp(t)

	// A regular file where the config directory should be makes Save fail
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", blocker)

	a = press(t, a, keys("x"), keys("j"), keys("j"), keys("j"), enter)
	a.settings.input.SetValue("150")
	a = press(t, a, enter)
	if a.settings.saveErr == nil {
		t.Fatal("save into a regular file succeeded")
	}
	if a.cfg.General.MinBill != 100 || a.est.Config().General.MinBill != 100 {
		t.Errorf("unsaved minimum went live: cfg=%v est=%v",
			a.cfg.General.MinBill, a.est.Config().General.MinBill)
	}
	if !strings.Contains(a.calc.input.Placeholder, "R$ 100") {
		t.Errorf("placeholder = %q", a.calc.input.Placeholder)
	}

	a = press(t, a, keys("k"), keys("k"), enter)
	a.settings.input.SetValue("comercial")
	a = press(t, a, enter)
	if a.settings.saveErr == nil {
		t.Fatal("tier save succeeded")
	}
	if a.calc.selectedTier() != model.TierResidential {
		t.Errorf("unsaved tier selected: %s", a.calc.selectedTier())
	}

	a = press(t, a, keys("c"), keys("i"), keys("120"), enter)
	if a.calc.plan == nil {
		t.Error("bill above the saved minimum was rejected")
	}
}

func TestSettings_MinBillRefreshesPlaceholder(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, keys("x"), keys("j"), keys("j"), keys("j"), enter)
	a.settings.input.SetValue("150")
	a = press(t, a, enter)

	if !strings.Contains(a.calc.input.Placeholder, "R$ 150") {
		t.Errorf("placeholder = %q, want the new minimum", a.calc.input.Placeholder)
	}
}

func TestSettings_TierSaveSelectsTier(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, keys("x"), keys("j"), enter)
	a.settings.input.SetValue("rural")
	a = press(t, a, enter)

	if a.settings.saveErr != nil {
		t.Fatalf("save: %v", a.settings.saveErr)
	}
	if a.calc.selectedTier() != model.TierRural {
		t.Errorf("selected tier = %s, want rural", a.calc.selectedTier())
	}
}

func TestNewSession_InvalidOverridesFallBack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SOLARCALC_WHATSAPP_PHONE", "")

	ratio := 1.5
	tests := map[string]map[string]model.CoefficientOverride{
		"ratio above one": {"residencial": {SavingsRatio: &ratio}},
		"unknown tier":    {"lunar": {SavingsRatio: &ratio}},
	}
	for name, overrides := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Coefficients.Overrides = overrides

			a, err := NewSession(cfg, logging.Discard(), false)
			if err != nil {
				t.Fatalf("NewSession: %v", err)
			}
			if !a.notice.isError || a.notice.text == "" {
				t.Errorf("no startup notice: %+v", a.notice)
			}
			if a.Init() == nil {
				t.Error("Init scheduled nothing")
			}

			plan, err := a.est.Savings("500", model.TierResidential)
			if err != nil {
				t.Fatal(err)
			}
			if plan.Result.MonthlySavings != 400 {
				t.Errorf("monthly = %v, want the built-in 400", plan.Result.MonthlySavings)
			}
		})
	}
}

func TestNewSession_ValidConfigHasNoNotice(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a, err := NewSession(config.DefaultConfig(), logging.Discard(), false)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if a.notice.text != "" {
		t.Errorf("unexpected notice %q", a.notice.text)
	}
}

func TestCalculator_ScrollStopsAtContentEnd(t *testing.T) {
	a := newTestApp(t)
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 20})
	a = press(t, a, keys("500"), enter)

	limit := a.calcMaxScroll()
	if limit == 0 {
		t.Fatal("results fit in 20 rows; nothing to scroll")
	}
	if a.calc.scroll > limit {
		t.Fatalf("result offset %d past the end %d", a.calc.scroll, limit)
	}

	for i := 0; i < 50; i++ {
		a = press(t, a, keys("j"))
	}
	if a.calc.scroll != limit {
		t.Fatalf("scroll = %d after 50 downs, want %d", a.calc.scroll, limit)
	}
	a = press(t, a, keys("k"))
	if a.calc.scroll != limit-1 {
		t.Errorf("one up moved to %d, want %d", a.calc.scroll, limit-1)
	}
}

func TestSettings_RejectsUnknownTheme(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, keys("x"), enter)
	a.settings.input.SetValue("neon")
	a = press(t, a, enter)

	if a.settings.saveErr == nil {
		t.Fatal("unknown theme saved")
	}
	if a.cfg.Appearance.Theme != "sh-solar" {
		t.Errorf("theme = %q", a.cfg.Appearance.Theme)
	}
}

func TestCopyFailureRaisesNotice(t *testing.T) {
	a := newTestApp(t)
	a, _ = update(t, a, copyDoneMsg{err: errors.New("no clipboard")})
	if !a.notice.isError {
		t.Error("copy failure not reported")
	}
	a, _ = update(t, a, copyDoneMsg{})
	if a.notice.isError || a.notice.text == "" {
		t.Errorf("copy success notice = %+v", a.notice)
	}
}

func TestView(t *testing.T) {
	a := newTestApp(t)
	out := a.View()
	if !strings.Contains(out, "Calculadora") {
		t.Error("tab bar missing")
	}
	if h := lipgloss.Height(out); h != 40 {
		t.Errorf("view height = %d, want 40", h)
	}

	a, _ = update(t, a, tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(a.View(), "Terminal muito estreito") {
		t.Error("narrow terminal message missing")
	}
}
