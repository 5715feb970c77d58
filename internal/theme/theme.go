// Package theme derives the dashboard palette and condition artwork from a
// weather snapshot. Everything here is a pure function of its inputs.
package theme

import "github.com/ngmaloney/weather-terminal/internal/models"

// Theme bundles the colors and flags used to paint the dashboard
type Theme struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Panel      string `json:"panel"`
	Accent     string `json:"accent"`
	AccentAlt  string `json:"accent_alt"`
	Text       string `json:"text"`
	Starfield  bool   `json:"starfield"`
}

// Palettes
var (
	Night = Theme{
		Name:       "night",
		Background: "#0A0A23",
		Panel:      "#1B1B4B",
		Accent:     "#7799CC",
		AccentAlt:  "#FF0088",
		Text:       "#DDE0E8",
		Starfield:  true,
	}

	Sunny = Theme{
		Name:       "sunny",
		Background: "#0284C7",
		Panel:      "#1E3A8A",
		Accent:     "#FFD93D",
		AccentAlt:  "#FF8C42",
		Text:       "#FFFBEB",
	}

	Overcast = Theme{
		Name:       "overcast",
		Background: "#4B5563",
		Panel:      "#374151",
		Accent:     "#87CEEB",
		AccentAlt:  "#D1D5DB",
		Text:       "#F3F4F6",
	}

	Precipitation = Theme{
		Name:       "precipitation",
		Background: "#1E293B",
		Panel:      "#0F3460",
		Accent:     "#4FC3F7",
		AccentAlt:  "#00BFFF",
		Text:       "#E0F2FE",
	}

	Storm = Theme{
		Name:       "storm",
		Background: "#111827",
		Panel:      "#2E1065",
		Accent:     "#FACC15",
		AccentAlt:  "#B57EDC",
		Text:       "#EDE9FE",
		Starfield:  true,
	}

	Default = Theme{
		Name:       "default",
		Background: "#0EA5E9",
		Panel:      "#1E3A8A",
		Accent:     "#FFD93D",
		AccentAlt:  "#FF8C42",
		Text:       "#FFFBEB",
	}
)

// codeRange is an inclusive span of provider condition codes
type codeRange struct {
	lo, hi int
	theme  Theme
}

// dayRules are evaluated top to bottom and the first match wins, so narrow
// spans must precede the broader ones they sit inside (1087 thunder is within
// the precipitation span).
var dayRules = []codeRange{
	{1000, 1000, Sunny},
	{1003, 1030, Overcast},
	{1135, 1147, Overcast},
	{1087, 1087, Storm},
	{1273, 1282, Storm},
	{1063, 1264, Precipitation},
}

// Resolve maps a snapshot's (condition code, is_day) pair to a Theme.
// Night wins over any condition; unknown codes and a nil snapshot get Default.
func Resolve(s *models.WeatherSnapshot) Theme {
	if s == nil {
		return Default
	}
	return ForCode(s.Current.Condition.Code, s.Current.IsDay)
}

// ForCode is Resolve on raw values
func ForCode(code, isDay int) Theme {
	if isDay != 1 {
		return Night
	}
	for _, r := range dayRules {
		if code >= r.lo && code <= r.hi {
			return r.theme
		}
	}
	return Default
}
