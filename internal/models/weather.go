package models

// Location identifies the place a snapshot was observed for (display only)
type Location struct {
	Country string `json:"country"`
	Name    string `json:"name"`
	Region  string `json:"region"`
}

// Condition is the provider's weather phenomenon description
type Condition struct {
	Code int    `json:"code"` // provider-defined, e.g. 1000 = Sunny/Clear
	Icon string `json:"icon"` // provider icon URL
	Text string `json:"text"` // e.g. "Partly cloudy"
}

// Current holds the current-conditions block of a snapshot
type Current struct {
	TempC      float64   `json:"temp_c"`
	TempF      float64   `json:"temp_f"`
	IsDay      int       `json:"is_day"` // 1 = day, 0 = night
	FeelsLikeC float64   `json:"feelslike_c"`
	WindKph    float64   `json:"wind_kph"`
	WindDir    string    `json:"wind_dir"`    // 16-point compass abbreviation, e.g. "NE"
	WindDegree int       `json:"wind_degree"` // 0-359
	Humidity   float64   `json:"humidity"`    // percent
	DewpointC  float64   `json:"dewpoint_c"`
	PressureMb float64   `json:"pressure_mb"`
	UV         float64   `json:"uv"`
	Condition  Condition `json:"condition"`
}

// WeatherSnapshot is a single point-in-time observation as returned by the
// provider's current.json endpoint
type WeatherSnapshot struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

// IsDaytime reports whether the provider flagged the observation as daytime.
// Only an exact 1 counts; anything else is treated as night.
func (c Current) IsDaytime() bool {
	return c.IsDay == 1
}

// DisplayName returns the best available place label for headers
func (l Location) DisplayName() string {
	if l.Region != "" {
		return l.Region
	}
	return l.Name
}
