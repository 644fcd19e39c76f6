package tui

import (
	"fmt"
	"strings"

	"github.com/shenergia/solarcalc/internal/config"
	"github.com/shenergia/solarcalc/internal/model"
	"github.com/shenergia/solarcalc/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the answers of the first-run form.
type setupValues struct {
	Tier  string
	Phone string
	Theme string
}

func newSetupValues(cfg config.Config) *setupValues {
	return &setupValues{
		Tier:  cfg.General.DefaultTier,
		Phone: cfg.Contact.WhatsAppPhone,
		Theme: cfg.Appearance.Theme,
	}
}

// apply returns cfg with the answers written in.
func (v *setupValues) apply(cfg config.Config) config.Config {
	if tier, err := model.ParseTier(v.Tier); err == nil {
		cfg.General.DefaultTier = string(tier)
	}
	if phone := strings.TrimSpace(v.Phone); phone != "" {
		cfg.Contact.WhatsAppPhone = phone
	}
	if v.Theme != "" {
		cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	}
	return cfg
}

// validatePhone accepts a phone with country and area code, formatting
// characters allowed.
func validatePhone(s string) error {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune(" +-()", r):
		default:
			return fmt.Errorf("caractere inválido %q", r)
		}
	}
	if digits < 10 || digits > 15 {
		return fmt.Errorf("informe DDI + DDD + número")
	}
	return nil
}

// newSetupForm builds the first-run form. Answers are written into vals.
func newSetupForm(vals *setupValues) *huh.Form {
	tierOpts := make([]huh.Option[string], 0, len(model.SavingsTiers))
	for _, t := range model.SavingsTiers {
		tierOpts = append(tierOpts, huh.NewOption(t.Label(), string(t)))
	}
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Bem-vindo ao solarcalc").
				Description("Simule sua economia com energia solar.\nVamos ajustar três coisas rápidas."),
			huh.NewSelect[string]().
				Title("Tipo de instalação padrão").
				Options(tierOpts...).
				Value(&vals.Tier),
			huh.NewInput().
				Title("WhatsApp para orçamentos").
				Description("Número que recebe os pedidos de orçamento.").
				Placeholder("5551984922780").
				Validate(validatePhone).
				Value(&vals.Phone),
			huh.NewSelect[string]().
				Title("Tema").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}

// RunSetup runs the setup form on its own and saves the result.
func RunSetup(cfg config.Config) (config.Config, error) {
	vals := newSetupValues(cfg)
	if err := newSetupForm(vals).Run(); err != nil {
		return cfg, err
	}
	cfg = vals.apply(cfg)
	if err := config.Save(cfg); err != nil {
		return cfg, fmt.Errorf("saving config: %w", err)
	}
	return cfg, nil
}
