// Package theme defines the color themes of the estimator dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	SurfaceBright lipgloss.Color // Extra bright surface for emphasis
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Brand green: results, active states
	AccentBright  lipgloss.Color
	AccentDim     lipgloss.Color
	Highlight     lipgloss.Color // Brand orange: selected bar, call to action
	Green         lipgloss.Color
	Red           lipgloss.Color // Notices
	Yellow        lipgloss.Color
}

// Active is the currently selected theme.
var Active = SHSolar

// SHSolar is the default theme, built on the company's green and orange.
var SHSolar = Theme{
	Name:          "sh-solar",
	Background:    lipgloss.Color("#0F1716"),
	Surface:       lipgloss.Color("#16211F"),
	SurfaceHover:  lipgloss.Color("#1F2E2B"),
	SurfaceBright: lipgloss.Color("#2A3D39"),
	Border:        lipgloss.Color("#2F4540"),
	BorderBright:  lipgloss.Color("#4A6A63"),
	BorderAccent:  lipgloss.Color("#1A9E8E"),
	TextDim:       lipgloss.Color("#52706A"),
	TextMuted:     lipgloss.Color("#8FA9A3"),
	TextPrimary:   lipgloss.Color("#F4FBF9"),
	Accent:        lipgloss.Color("#1A9E8E"),
	AccentBright:  lipgloss.Color("#3CC7B5"),
	AccentDim:     lipgloss.Color("#12453F"),
	Highlight:     lipgloss.Color("#F37021"),
	Green:         lipgloss.Color("#7BC96F"),
	Red:           lipgloss.Color("#E5484D"),
	Yellow:        lipgloss.Color("#F5B83D"),
}

// Sunrise is a warm variant that leads with the orange.
var Sunrise = Theme{
	Name:          "sunrise",
	Background:    lipgloss.Color("#1A120D"),
	Surface:       lipgloss.Color("#241912"),
	SurfaceHover:  lipgloss.Color("#33241A"),
	SurfaceBright: lipgloss.Color("#443024"),
	Border:        lipgloss.Color("#4D372A"),
	BorderBright:  lipgloss.Color("#6E5140"),
	BorderAccent:  lipgloss.Color("#F37021"),
	TextDim:       lipgloss.Color("#7A6250"),
	TextMuted:     lipgloss.Color("#B59C88"),
	TextPrimary:   lipgloss.Color("#FFF8F1"),
	Accent:        lipgloss.Color("#F37021"),
	AccentBright:  lipgloss.Color("#FF9452"),
	AccentDim:     lipgloss.Color("#4A2410"),
	Highlight:     lipgloss.Color("#1A9E8E"),
	Green:         lipgloss.Color("#9CCB5A"),
	Red:           lipgloss.Color("#E5484D"),
	Yellow:        lipgloss.Color("#F5C542"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	AccentDim:     lipgloss.Color("0"),
	Highlight:     lipgloss.Color("3"),
	Green:         lipgloss.Color("2"),
	Red:           lipgloss.Color("1"),
	Yellow:        lipgloss.Color("11"),
}

// All available themes.
var All = []Theme{SHSolar, Sunrise, Terminal}

// ByName returns a theme by its name, defaulting to SHSolar.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return SHSolar
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
