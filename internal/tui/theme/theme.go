// Package theme defines color themes for the fitfuel TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Highlighted surface (active tab, selected row)
	Border       lipgloss.Color // Subtle borders
	BorderAccent lipgloss.Color // Accent-colored borders for focus states
	TextDim      lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted    lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary  lipgloss.Color // Primary content text
	Accent       lipgloss.Color // Primary accent (active states, today's bar)
	Green        lipgloss.Color // Protein bar, under-goal progress
	Orange       lipgloss.Color // Fat bar, near-goal warning
	Red          lipgloss.Color // Over goal
	Blue         lipgloss.Color // History bars
	Yellow       lipgloss.Color
}

// Active is the currently selected theme.
var Active = FitFuelDark

// FitFuelDark is the default theme, matching the dashboard's dark navy look.
var FitFuelDark = Theme{
	Name:         "fitfuel-dark",
	Background:   lipgloss.Color("#0B1437"),
	Surface:      lipgloss.Color("#111C44"),
	SurfaceHover: lipgloss.Color("#1B254B"),
	Border:       lipgloss.Color("#1B254B"),
	BorderAccent: lipgloss.Color("#4318FF"),
	TextDim:      lipgloss.Color("#3B4979"),
	TextMuted:    lipgloss.Color("#A3AED0"),
	TextPrimary:  lipgloss.Color("#FFFFFF"),
	Accent:       lipgloss.Color("#4318FF"),
	Green:        lipgloss.Color("#05CD99"),
	Orange:       lipgloss.Color("#FFB547"),
	Red:          lipgloss.Color("#EE5D50"),
	Blue:         lipgloss.Color("#6AD2FF"),
	Yellow:       lipgloss.Color("#FFCE20"),
}

// FitFuelLight is the light counterpart.
var FitFuelLight = Theme{
	Name:         "fitfuel-light",
	Background:   lipgloss.Color("#F4F7FE"),
	Surface:      lipgloss.Color("#FFFFFF"),
	SurfaceHover: lipgloss.Color("#E0E7FF"),
	Border:       lipgloss.Color("#E0E5F2"),
	BorderAccent: lipgloss.Color("#4318FF"),
	TextDim:      lipgloss.Color("#B0BBD5"),
	TextMuted:    lipgloss.Color("#707EAE"),
	TextPrimary:  lipgloss.Color("#2B3674"),
	Accent:       lipgloss.Color("#4318FF"),
	Green:        lipgloss.Color("#05CD99"),
	Orange:       lipgloss.Color("#FFB547"),
	Red:          lipgloss.Color("#EE5D50"),
	Blue:         lipgloss.Color("#6AD2FF"),
	Yellow:       lipgloss.Color("#FFCE20"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("5"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("5"),
	Green:        lipgloss.Color("2"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
	Blue:         lipgloss.Color("4"),
	Yellow:       lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{FitFuelDark, FitFuelLight, Terminal}

// ByName returns a theme by its name, defaulting to FitFuelDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FitFuelDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
