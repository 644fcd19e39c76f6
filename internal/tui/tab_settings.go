package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shenergia/solarcalc/internal/cli"
	"github.com/shenergia/solarcalc/internal/config"
	"github.com/shenergia/solarcalc/internal/model"
	"github.com/shenergia/solarcalc/internal/tui/components"
	"github.com/shenergia/solarcalc/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldTier
	settingsFieldPhone
	settingsFieldMinBill
	settingsFieldDuration
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) updateSettingsKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "enter":
		m, cmd := a.settingsStartEdit()
		return m, cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := a.cfg
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldTheme:
		names := make([]string, len(theme.All))
		for i, th := range theme.All {
			names[i] = th.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldTier:
		ti.Placeholder = "residencial, comercial, rural, industrial"
		ti.SetValue(cfg.General.DefaultTier)
	case settingsFieldPhone:
		ti.Placeholder = "5551984922780"
		ti.SetValue(cfg.Contact.WhatsAppPhone)
	case settingsFieldMinBill:
		ti.Placeholder = "100"
		ti.SetValue(strconv.FormatFloat(cfg.General.MinBill, 'f', -1, 64))
	case settingsFieldDuration:
		ti.Placeholder = "1500 (ms)"
		ti.SetValue(strconv.Itoa(cfg.Animation.DurationMS))
	}

	cmd := ti.Focus()
	a.settings.input = ti
	return a, cmd
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave validates the edited field and applies it. Invalid values
// leave the config untouched and report why.
func (a *App) settingsSave() {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		if theme.ByName(val).Name != val {
			a.settings.saveErr = fmt.Errorf("tema desconhecido %q", val)
			return
		}
		cfg.Appearance.Theme = val
	case settingsFieldTier:
		tier, err := model.ParseTier(val)
		if err != nil || tier == model.TierStandard {
			a.settings.saveErr = fmt.Errorf("tipo inválido %q", val)
			return
		}
		cfg.General.DefaultTier = string(tier)
	case settingsFieldPhone:
		if err := validatePhone(val); err != nil {
			a.settings.saveErr = err
			return
		}
		cfg.Contact.WhatsAppPhone = val
	case settingsFieldMinBill:
		v, err := strconv.ParseFloat(strings.ReplaceAll(val, ",", "."), 64)
		if err != nil || v <= 0 {
			a.settings.saveErr = fmt.Errorf("valor mínimo inválido %q", val)
			return
		}
		cfg.General.MinBill = v
	case settingsFieldDuration:
		ms, err := strconv.Atoi(val)
		if err != nil || ms <= 0 {
			a.settings.saveErr = fmt.Errorf("duração inválida %q", val)
			return
		}
		cfg.Animation.DurationMS = ms
	}

	a.settings.saveErr = a.applyConfig(cfg)
	if a.settings.saveErr != nil || a.settings.cursor != settingsFieldTier {
		return
	}
	for i, t := range model.SavingsTiers {
		if string(t) == cfg.General.DefaultTier {
			a.calc.tier = i
		}
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.Highlight).Background(t.SurfaceBright)

	tierLabel := cfg.General.DefaultTier
	if tier, err := model.ParseTier(cfg.General.DefaultTier); err == nil {
		tierLabel = tier.Label()
	}
	phone := config.GetWhatsAppPhone(cfg)
	if phone != cfg.Contact.WhatsAppPhone {
		phone += " (SOLARCALC_WHATSAPP_PHONE)"
	}

	fields := []struct{ label, value string }{
		{"Tema", cfg.Appearance.Theme},
		{"Tipo padrão", tierLabel},
		{"WhatsApp", phone},
		{"Conta mínima", cli.FormatBRL(cfg.General.MinBill)},
		{"Animação", fmt.Sprintf("%d ms", cfg.Animation.DurationMS)},
	}

	innerW := components.CardInnerWidth(cw)
	var form strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			form.WriteString(markerStyle.Render("▸ "))
			form.WriteString(accentStyle.Render(fmt.Sprintf("%-16s ", f.label)))
			form.WriteString(a.settings.input.View())
			form.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-16s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			form.WriteString(marker + label + value)
			if pad := innerW - lipgloss.Width(marker+label+value); pad > 0 {
				form.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			form.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			form.WriteString(labelStyle.Render(fmt.Sprintf("%-16s ", f.label+":")))
			form.WriteString(valueStyle.Render(f.value))
		}
		form.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
		form.WriteString("\n")
		form.WriteString(warnStyle.Render(fmt.Sprintf("Não salvo: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		form.WriteString("\n")
		form.WriteString(greenStyle.Render("Salvo!"))
	}
	form.WriteString("\n")
	form.WriteString(labelStyle.Render("[j/k] navegar  [Enter] editar  [Esc] cancelar"))

	var info strings.Builder
	info.WriteString(labelStyle.Render("Arquivo de config: ") + valueStyle.Render(config.Path()) + "\n")
	info.WriteString(labelStyle.Render("Faixa do ROI:      ") +
		valueStyle.Render(cli.FormatBRL(cfg.ROI.Min)+" a "+cli.FormatBRL(cfg.ROI.Max)))

	return lipgloss.JoinVertical(lipgloss.Left,
		components.ContentCard("Ajustes", form.String(), cw),
		components.ContentCard("Geral", info.String(), cw),
	)
}
