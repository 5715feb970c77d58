package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-terminal/internal/theme"
)

var (
	colorMuted = lipgloss.Color("#6C757D") // Gray

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// styles is the per-render style set derived from a Theme. It is rebuilt on
// every View call and never kept on the model.
type styles struct {
	screen    lipgloss.Style
	title     lipgloss.Style
	searchBox lipgloss.Style
	hero      lipgloss.Style
	heroTemp  lipgloss.Style
	card      lipgloss.Style
	cardTitle lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	accent    lipgloss.Style
	stars     lipgloss.Style
	marquee   lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	bg := lipgloss.Color(t.Background)
	panel := lipgloss.Color(t.Panel)
	accent := lipgloss.Color(t.Accent)
	accentAlt := lipgloss.Color(t.AccentAlt)
	text := lipgloss.Color(t.Text)

	return styles{
		screen: lipgloss.NewStyle().
			Background(bg).
			Padding(1, 2),

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		searchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Width(48),

		hero: lipgloss.NewStyle().
			Foreground(text).
			Padding(0, 1),

		heroTemp: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentAlt).
			Background(panel).
			Foreground(text).
			Padding(0, 1).
			MarginRight(1).
			Width(24),

		cardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(0, 0, 1, 0),

		label: lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true),

		value: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),

		accent: lipgloss.NewStyle().
			Foreground(accentAlt),

		stars: lipgloss.NewStyle().
			Foreground(text),

		marquee: lipgloss.NewStyle().
			Foreground(accent).
			Background(panel),
	}
}
