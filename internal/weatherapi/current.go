package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.weatherapi.com/v1"

// Client implements WeatherClient against WeatherAPI.com's current.json
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	apiKey     KeyFunc
	logger     *zap.SugaredLogger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the provider base URL (tests, self-hosted mirrors)
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout sets an overall request timeout. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithKeyFunc replaces the environment lookup for the API key
func WithKeyFunc(fn KeyFunc) Option {
	return func(c *Client) {
		if fn != nil {
			c.apiKey = fn
		}
	}
}

// WithLogger sets the logger used to report failed fetches
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a new WeatherAPI.com client
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
		userAgent:  "WeatherTerminal/1.0 (github.com/ngmaloney/weather-terminal)",
		apiKey:     config.WeatherAPIKey,
		logger:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCurrent retrieves current conditions, collapsing every failure
// (transport, provider status, undecodable body) into a nil snapshot.
func (c *Client) FetchCurrent(ctx context.Context, query string) *models.WeatherSnapshot {
	snapshot, err := c.GetCurrent(ctx, query)
	if err != nil {
		c.logger.Warnw("weather fetch failed", "query", query, "error", err)
		return nil
	}
	c.logger.Debugw("weather fetched",
		"query", query,
		"location", snapshot.Location.Name,
		"code", snapshot.Current.Condition.Code)
	return snapshot
}

// GetCurrent performs a single GET against current.json. The body is decoded
// into the snapshot shape without further validation.
func (c *Client) GetCurrent(ctx context.Context, query string) (*models.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("key", c.apiKey())
	params.Set("q", query)

	reqURL := fmt.Sprintf("%s/current.json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current conditions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var snapshot models.WeatherSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &snapshot, nil
}
