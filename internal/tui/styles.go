package tui

import "github.com/charmbracelet/lipgloss"

// Theme is a named color palette. The profile's theme setting picks one;
// unknown names fall back to the default palette.
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Subtle  lipgloss.Color
	Danger  lipgloss.Color
}

var themes = map[string]Theme{
	"default": {
		Primary: lipgloss.Color("205"),
		Accent:  lipgloss.Color("212"),
		Subtle:  lipgloss.Color("240"),
		Danger:  lipgloss.Color("196"),
	},
	"ocean": {
		Primary: lipgloss.Color("39"),
		Accent:  lipgloss.Color("45"),
		Subtle:  lipgloss.Color("240"),
		Danger:  lipgloss.Color("196"),
	},
	"forest": {
		Primary: lipgloss.Color("34"),
		Accent:  lipgloss.Color("114"),
		Subtle:  lipgloss.Color("240"),
		Danger:  lipgloss.Color("196"),
	},
	"sunset": {
		Primary: lipgloss.Color("208"),
		Accent:  lipgloss.Color("214"),
		Subtle:  lipgloss.Color("240"),
		Danger:  lipgloss.Color("196"),
	},
}

// ThemeNames lists the selectable themes in menu order.
func ThemeNames() []string {
	return []string{"default", "ocean", "forest", "sunset"}
}

// LookupTheme resolves a theme name, falling back to the default palette.
func LookupTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

// Styles holds the pre-built lipgloss styles for the active theme.
type Styles struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	Danger      lipgloss.Style
	Status      lipgloss.Style
	Doc         lipgloss.Style
}

func NewStyles(theme Theme) Styles {
	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(theme.Subtle).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Subtle: lipgloss.NewStyle().
			Foreground(theme.Subtle),
		Danger: lipgloss.NewStyle().
			Foreground(theme.Danger).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Padding(0, 1),
		Doc: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
