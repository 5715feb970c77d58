package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// APIKeyEnv is the environment variable holding the WeatherAPI.com key
	APIKeyEnv = "WEATHER_API_KEY"

	envPrefix = "WEATHERTERM"
)

// Config holds the non-secret application settings
type Config struct {
	BaseURL     string
	DefaultCity string
	LogPath     string
	HTTPTimeout time.Duration // 0 means no timeout
	ServerPort  string
}

// Load reads settings from defaults, an optional config file and the
// environment (WEATHERTERM_ prefix). An empty path looks for config.yaml in
// the working directory.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("api.base_url", "https://api.weatherapi.com/v1")
	v.SetDefault("default_city", "Manila")
	v.SetDefault("log.path", "weather-terminal.log")
	v.SetDefault("http.timeout", "0s")
	v.SetDefault("server.port", "8080")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("http.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid http.timeout: %w", err)
	}

	return &Config{
		BaseURL:     v.GetString("api.base_url"),
		DefaultCity: v.GetString("default_city"),
		LogPath:     v.GetString("log.path"),
		HTTPTimeout: timeout,
		ServerPort:  v.GetString("server.port"),
	}, nil
}

// WeatherAPIKey returns the provider key from the environment. It is read on
// every call so a key exported mid-session is picked up by the next search.
func WeatherAPIKey() string {
	return os.Getenv(APIKeyEnv)
}

// NewLogger builds a development logger. The TUI owns stdout, so a non-empty
// path sends output to that file instead of stderr.
func NewLogger(path string) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if path != "" {
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return l.Sugar(), nil
}
