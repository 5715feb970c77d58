package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-terminal/internal/dashboard"
	"github.com/ngmaloney/weather-terminal/internal/derived"
)

const barWidth = 16

// renderDashboard lays out the full widget set for a loaded snapshot
func (m Model) renderDashboard(v dashboard.View, st styles) string {
	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}

	var rows []string

	if v.Theme.Starfield {
		rows = append(rows, renderStarfield(st, inner, m.frame))
	}

	rows = append(rows,
		renderHero(v, st, m.frame),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			renderWindCard(v, st),
			renderHumidityCard(v, st),
			renderPressureCard(v, st),
			renderUVCard(v, st),
		),
		renderMarquee(st, marqueeText(v), inner, m.frame),
	)

	if v.Theme.Starfield {
		rows = append(rows, renderStarfield(st, inner, m.frame+7))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderHero renders identity, condition artwork and the temperature
func renderHero(v dashboard.View, st styles, frame int) string {
	s := v.Snapshot
	c := s.Current

	identity := lipgloss.JoinVertical(lipgloss.Left,
		st.heroTemp.Render(strings.ToUpper(s.Location.DisplayName())),
		st.hero.Render(s.Location.Country),
		st.hero.Render(fmt.Sprintf("Feels like %.1f °C", c.FeelsLikeC)),
	)

	art := st.accent.Render(v.Animation.Frame(frame))

	temp := lipgloss.JoinVertical(lipgloss.Left,
		st.hero.Render(c.Condition.Text),
		st.heroTemp.Render(fmt.Sprintf("%d°C", v.TempCRounded)),
		mutedStyle.Render(fmt.Sprintf("%.0f°F", c.TempF)),
	)

	return lipgloss.JoinHorizontal(lipgloss.Center, identity, "    ", art, "  ", temp)
}

func renderWindCard(v dashboard.View, st styles) string {
	c := v.Snapshot.Current
	lines := []string{
		st.cardTitle.Render("WIND"),
		st.value.Render(fmt.Sprintf("%.0f", c.WindKph)) + " km/h",
		"",
		st.label.Render("From") + " " + st.value.Render(v.WindFrom),
		st.label.Render("Toward") + " " + st.value.Render(c.WindDir),
		"",
		renderCompass(st, c.WindDegree),
	}
	return st.card.Render(strings.Join(lines, "\n"))
}

func renderHumidityCard(v dashboard.View, st styles) string {
	c := v.Snapshot.Current
	lines := []string{
		st.cardTitle.Render("HUMIDITY"),
		st.value.Render(fmt.Sprintf("%.0f", c.Humidity)) + " %",
		"",
		st.label.Render("Dewpoint") + " " + st.value.Render(fmt.Sprintf("%.1f °C", c.DewpointC)),
		"",
		renderBar(v.Theme.Accent, v.HumidityFraction),
	}
	return st.card.Render(strings.Join(lines, "\n"))
}

func renderPressureCard(v dashboard.View, st styles) string {
	c := v.Snapshot.Current
	lines := []string{
		st.cardTitle.Render("PRESSURE"),
		st.value.Render(fmt.Sprintf("%.0f", c.PressureMb)) + " mb",
	}
	return st.card.Render(strings.Join(lines, "\n"))
}

func renderUVCard(v dashboard.View, st styles) string {
	c := v.Snapshot.Current
	risk := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(v.UVRisk.Color))
	lines := []string{
		st.cardTitle.Render("UV INDEX"),
		st.value.Render(fmt.Sprintf("%.1f", c.UV)),
		"",
		risk.Render(v.UVRisk.Label),
		"",
		renderBar(v.UVRisk.Color, v.UVFraction),
	}
	return st.card.Render(strings.Join(lines, "\n"))
}

// renderBar draws a fill bar for a fraction already clamped to [0,1]
func renderBar(color string, fraction float64) string {
	p := progress.New(
		progress.WithSolidFill(color),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)
	return p.ViewAs(fraction)
}

// renderCompass draws a small rose with the arrow pointing along wind_degree
func renderCompass(st styles, deg int) string {
	arrow := st.accent.Render(derived.CompassArrow(deg))
	return strings.Join([]string{
		"    N",
		"  W " + arrow + " E",
		"    S",
		mutedStyle.Render(fmt.Sprintf("   %d°", deg)),
	}, "\n")
}

func marqueeText(v dashboard.View) string {
	s := v.Snapshot
	c := s.Current
	parts := []string{
		strings.ToUpper(s.Location.Name),
		strings.ToUpper(s.Location.Country),
		strings.ToUpper(c.Condition.Text),
		fmt.Sprintf("%d°C", v.TempCRounded),
		fmt.Sprintf("WIND %.0f KPH FROM %s", c.WindKph, v.WindFrom),
		fmt.Sprintf("UV %s", v.UVRisk.Label),
	}
	return " ☼ " + strings.Join(parts, " ☼ ") + " "
}

// renderMarquee shows a width-wide window of text that scrolls one rune per frame
func renderMarquee(st styles, text string, width, frame int) string {
	return st.marquee.Render(marqueeWindow(text, width, frame))
}

func marqueeWindow(text string, width, frame int) string {
	runes := []rune(text)
	if len(runes) == 0 || width <= 0 {
		return ""
	}
	if frame < 0 {
		frame = -frame
	}
	start := frame % len(runes)
	out := make([]rune, width)
	for i := range out {
		out[i] = runes[(start+i)%len(runes)]
	}
	return string(out)
}

// renderStarfield draws a twinkling row of stars; the pattern is a pure
// function of width and frame
func renderStarfield(st styles, width, frame int) string {
	return st.stars.Render(starRow(width, frame))
}

func starRow(width, frame int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		switch (i*7919 + frame*31) % 29 {
		case 0:
			b.WriteRune('*')
		case 9:
			b.WriteRune('.')
		case 17:
			b.WriteRune('+')
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}
