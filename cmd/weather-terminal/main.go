package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/ui"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (default: ./config.yaml if present)")
	city := flag.String("city", "", "City to load on startup (overrides default_city)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.LogPath)
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if config.WeatherAPIKey() == "" {
		logger.Warnw("no API key set; searches will fail", "env", config.APIKeyEnv)
	}

	startCity := cfg.DefaultCity
	if *city != "" {
		startCity = *city
	}

	client := weatherapi.NewClient(
		weatherapi.WithBaseURL(cfg.BaseURL),
		weatherapi.WithTimeout(cfg.HTTPTimeout),
		weatherapi.WithLogger(logger),
	)

	p := tea.NewProgram(ui.NewModel(client, startCity), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
