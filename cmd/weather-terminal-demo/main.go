package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/ui"
)

// mockClient serves a couple of canned cities so the UI can be explored
// without an API key
type mockClient struct{}

func (mockClient) FetchCurrent(ctx context.Context, query string) *models.WeatherSnapshot {
	return mockCities[query]
}

var mockCities = map[string]*models.WeatherSnapshot{
	"Manila": {
		Location: models.Location{Name: "Manila", Region: "Manila", Country: "Philippines"},
		Current: models.Current{
			TempC: 31.4, TempF: 88.5, IsDay: 1, FeelsLikeC: 37.2,
			WindKph: 13, WindDir: "NE", WindDegree: 45,
			Humidity: 66, DewpointC: 24.1, PressureMb: 1009, UV: 9,
			Condition: models.Condition{Code: 1000, Text: "Sunny"},
		},
	},
	"London": {
		Location: models.Location{Name: "London", Region: "City of London, Greater London", Country: "United Kingdom"},
		Current: models.Current{
			TempC: 11.2, TempF: 52.2, IsDay: 0, FeelsLikeC: 9.8,
			WindKph: 22, WindDir: "WSW", WindDegree: 247,
			Humidity: 87, DewpointC: 9.1, PressureMb: 1002, UV: 0,
			Condition: models.Condition{Code: 1183, Text: "Light rain"},
		},
	},
	"Tampa": {
		Location: models.Location{Name: "Tampa", Region: "Florida", Country: "United States of America"},
		Current: models.Current{
			TempC: 27.8, TempF: 82.0, IsDay: 1, FeelsLikeC: 31.5,
			WindKph: 31, WindDir: "SSE", WindDegree: 160,
			Humidity: 79, DewpointC: 23.6, PressureMb: 1006, UV: 6,
			Condition: models.Condition{Code: 1276, Text: "Moderate or heavy rain with thunder"},
		},
	},
}

// This demo runs the UI against mock data. Try Manila, London or Tampa.
func main() {
	m := ui.NewModel(mockClient{}, "Manila")

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
