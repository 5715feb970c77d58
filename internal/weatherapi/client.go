package weatherapi

import (
	"context"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// WeatherClient defines the interface for fetching current conditions
type WeatherClient interface {
	// FetchCurrent retrieves the current snapshot for a free-text location
	// query. Any failure is logged and reported as a nil snapshot.
	FetchCurrent(ctx context.Context, query string) *models.WeatherSnapshot
}

// KeyFunc supplies the provider API key at request time
type KeyFunc func() string
