// Package config loads and saves the solarcalc preferences file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shenergia/solarcalc/internal/model"

	"github.com/BurntSushi/toml"
)

// Config holds all solarcalc configuration.
type Config struct {
	General      GeneralConfig      `toml:"general"`
	Contact      ContactConfig      `toml:"contact"`
	ROI          ROIConfig          `toml:"roi"`
	Animation    AnimationConfig    `toml:"animation"`
	Appearance   AppearanceConfig   `toml:"appearance"`
	Coefficients CoefficientsConfig `toml:"coefficients"`
}

// GeneralConfig holds bill-savings calculator preferences.
type GeneralConfig struct {
	DefaultTier string    `toml:"default_tier"`
	MinBill     float64   `toml:"min_bill"`
	QuickValues []float64 `toml:"quick_values"`
}

// ContactConfig holds the WhatsApp quote link settings.
type ContactConfig struct {
	WhatsAppPhone   string `toml:"whatsapp_phone"`
	MessageTemplate string `toml:"message_template,omitempty"`
}

// ROIConfig holds the investment slider bounds and presets.
type ROIConfig struct {
	Min     float64   `toml:"min"`
	Max     float64   `toml:"max"`
	Step    float64   `toml:"step"`
	Presets []float64 `toml:"presets"`
}

// AnimationConfig holds presenter timing, in milliseconds.
type AnimationConfig struct {
	DurationMS        int `toml:"duration_ms"`
	CounterDurationMS int `toml:"counter_duration_ms"`
	FrameMS           int `toml:"frame_ms"`
	GaugeDelayMS      int `toml:"gauge_delay_ms"`
	NoticeMS          int `toml:"notice_ms"`
	ThrottleMS        int `toml:"throttle_ms"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// CoefficientsConfig allows user-defined coefficients for specific tiers.
type CoefficientsConfig struct {
	Overrides map[string]model.CoefficientOverride `toml:"overrides,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultTier: string(model.TierResidential),
			MinBill:     100,
			QuickValues: []float64{200, 350, 500, 800, 1500},
		},
		Contact: ContactConfig{
			WhatsAppPhone: "5551984922780",
		},
		ROI: ROIConfig{
			Min:     300,
			Max:     10000,
			Step:    100,
			Presets: []float64{300, 900, 3000, 10000},
		},
		Animation: AnimationConfig{
			DurationMS:        1500,
			CounterDurationMS: 2000,
			FrameMS:           16,
			GaugeDelayMS:      100,
			NoticeMS:          3000,
			ThrottleMS:        100,
		},
		Appearance: AppearanceConfig{
			Theme: "sh-solar",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "solarcalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "solarcalc")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// LoadOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func LoadOrDefault() Config {
	cfg, err := Load()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// GetWhatsAppPhone returns the contact phone from env var or config, in that order.
func GetWhatsAppPhone(cfg Config) string {
	if phone := os.Getenv("SOLARCALC_WHATSAPP_PHONE"); phone != "" {
		return phone
	}
	return cfg.Contact.WhatsAppPhone
}

// normalize replaces zero or inconsistent values left by a partial file
// with the defaults.
func (c *Config) normalize() {
	def := DefaultConfig()

	if c.General.MinBill <= 0 {
		c.General.MinBill = def.General.MinBill
	}
	if len(c.General.QuickValues) == 0 {
		c.General.QuickValues = def.General.QuickValues
	}
	if c.General.DefaultTier == "" {
		c.General.DefaultTier = def.General.DefaultTier
	}
	if c.ROI.Min <= 0 || c.ROI.Max <= c.ROI.Min {
		c.ROI.Min, c.ROI.Max = def.ROI.Min, def.ROI.Max
	}
	if c.ROI.Step <= 0 {
		c.ROI.Step = def.ROI.Step
	}
	if len(c.ROI.Presets) == 0 {
		c.ROI.Presets = def.ROI.Presets
	}

	a := &c.Animation
	if a.DurationMS <= 0 {
		a.DurationMS = def.Animation.DurationMS
	}
	if a.CounterDurationMS <= 0 {
		a.CounterDurationMS = def.Animation.CounterDurationMS
	}
	if a.FrameMS <= 0 {
		a.FrameMS = def.Animation.FrameMS
	}
	if a.GaugeDelayMS < 0 {
		a.GaugeDelayMS = def.Animation.GaugeDelayMS
	}
	if a.NoticeMS <= 0 {
		a.NoticeMS = def.Animation.NoticeMS
	}
	if a.ThrottleMS <= 0 {
		a.ThrottleMS = def.Animation.ThrottleMS
	}
}

// Duration returns the result-field animation length.
func (a AnimationConfig) Duration() time.Duration {
	return time.Duration(a.DurationMS) * time.Millisecond
}

// CounterDuration returns the statistic counter animation length.
func (a AnimationConfig) CounterDuration() time.Duration {
	return time.Duration(a.CounterDurationMS) * time.Millisecond
}

// Frame returns the animation frame interval.
func (a AnimationConfig) Frame() time.Duration {
	return time.Duration(a.FrameMS) * time.Millisecond
}

// GaugeDelay returns the delay before the gauge starts moving.
func (a AnimationConfig) GaugeDelay() time.Duration {
	return time.Duration(a.GaugeDelayMS) * time.Millisecond
}

// Notice returns how long a transient notice stays visible.
func (a AnimationConfig) Notice() time.Duration {
	return time.Duration(a.NoticeMS) * time.Millisecond
}

// Throttle returns the cooldown for repeated wheel/scroll triggers.
func (a AnimationConfig) Throttle() time.Duration {
	return time.Duration(a.ThrottleMS) * time.Millisecond
}
