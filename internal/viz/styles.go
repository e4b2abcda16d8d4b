package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are built from [CurrentTheme] at render time, so a theme switch
// recolors the very next frame.

func canvasStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(1, 2).
		Foreground(CurrentTheme.Primary)
}

func panelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(CurrentTheme.Muted).
		Padding(1, 2).
		Width(42)
}

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(CurrentTheme.Accent).
		Bold(true).
		MarginBottom(1)
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Width(10)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Text)
}

func runningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Success).Bold(true)
}

func pausedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Warning).Bold(true)
}

func graphStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Secondary).Padding(1, 0)
}

func helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).MarginTop(1)
}

// ProgressBar renders a fuel-gauge style bar colored by how full it is.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	switch {
	case percent > 0.5:
		return lipgloss.NewStyle().Foreground(CurrentTheme.Success).Render(bar)
	case percent > 0.2:
		return lipgloss.NewStyle().Foreground(CurrentTheme.Warning).Render(bar)
	}
	return lipgloss.NewStyle().Foreground(CurrentTheme.Error).Render(bar)
}

// Sparkline renders a mini chart of recent values, newest on the right.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	var result strings.Builder
	for _, v := range values {
		idx := int((v - min) / rng * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		result.WriteRune(chars[idx])
	}
	return lipgloss.NewStyle().Foreground(CurrentTheme.Secondary).Render(result.String())
}
