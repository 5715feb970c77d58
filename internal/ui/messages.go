package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

const animationInterval = 300 * time.Millisecond

// weatherFetchedMsg is sent when a search resolves. A nil snapshot means the
// fetch produced no data.
type weatherFetchedMsg struct {
	query    string
	snapshot *models.WeatherSnapshot
}

// animationTickMsg advances the widget animations by one frame
type animationTickMsg time.Time

// fetchWeather runs a search in the background. There is no deadline: a hung
// provider keeps the spinner going until it answers.
func fetchWeather(client weatherapi.WeatherClient, query string) tea.Cmd {
	return func() tea.Msg {
		snapshot := client.FetchCurrent(context.Background(), query)
		return weatherFetchedMsg{query: query, snapshot: snapshot}
	}
}

func tickAnimation() tea.Cmd {
	return tea.Tick(animationInterval, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}
