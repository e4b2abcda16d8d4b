package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeNight = Theme{
		Name:       "night",
		Primary:    lipgloss.Color("#7aa2f7"), // Launch-pad blue
		Secondary:  lipgloss.Color("#bb9af7"),
		Accent:     lipgloss.Color("#ff9e64"),
		Background: lipgloss.Color("#1a1b26"),
		Text:       lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#aaaaaa"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Success:    lipgloss.Color("#eeeeee"),
		Warning:    lipgloss.Color("#bbbbbb"),
		Error:      lipgloss.Color("#888888"),
	}

	ThemeAurora = Theme{
		Name:       "aurora",
		Primary:    lipgloss.Color("#00ff9f"), // Polar green
		Secondary:  lipgloss.Color("#00b8a9"),
		Accent:     lipgloss.Color("#b388ff"),
		Background: lipgloss.Color("#001520"),
		Text:       lipgloss.Color("#d8fff4"),
		Muted:      lipgloss.Color("#33706a"),
		Success:    lipgloss.Color("#69ffc3"),
		Warning:    lipgloss.Color("#ffd166"),
		Error:      lipgloss.Color("#ff5e78"),
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#00ff00"), // Green phosphor
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Success:    lipgloss.Color("#88ff88"),
		Warning:    lipgloss.Color("#ffff00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeDawn = Theme{
		Name:       "dawn",
		Primary:    lipgloss.Color("#ff6b6b"), // First-light coral
		Secondary:  lipgloss.Color("#feca57"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Success:    lipgloss.Color("#5fd068"),
		Warning:    lipgloss.Color("#ffc048"),
		Error:      lipgloss.Color("#ff4757"),
	}

	// Default theme
	CurrentTheme = ThemeNight

	// All available themes
	Themes = []Theme{
		ThemeNight,
		ThemeMono,
		ThemeAurora,
		ThemeRetro,
		ThemeDawn,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNight
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
