package dashboard

import (
	"github.com/ngmaloney/weather-terminal/internal/derived"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/theme"
)

// View is everything the presentation layer needs for one render, derived
// fresh from a snapshot
type View struct {
	Snapshot         *models.WeatherSnapshot `json:"snapshot"`
	Theme            theme.Theme             `json:"theme"`
	Animation        theme.Animation         `json:"animation"`
	TempCRounded     int                     `json:"temp_c_rounded"`
	WindFrom         string                  `json:"wind_from"`
	WindArrow        string                  `json:"wind_arrow"`
	UVRisk           derived.Risk            `json:"uv_risk"`
	HumidityFraction float64                 `json:"humidity_fraction"`
	UVFraction       float64                 `json:"uv_fraction"`
}

// Build derives a View. A nil snapshot yields the default theme and zero values.
func Build(s *models.WeatherSnapshot) View {
	v := View{
		Snapshot:  s,
		Theme:     theme.Resolve(s),
		Animation: theme.AnimSunny,
		WindFrom:  derived.UnknownDirection,
		UVRisk:    derived.UVRisk(0),
	}
	if s == nil {
		return v
	}

	c := s.Current
	v.Animation = theme.AnimationFor(c.Condition.Text, c.IsDay)
	v.TempCRounded = derived.RoundTemp(c.TempC)
	v.WindFrom = derived.OppositeDirection(c.WindDir)
	v.WindArrow = derived.CompassArrow(c.WindDegree)
	v.UVRisk = derived.UVRisk(c.UV)
	v.HumidityFraction = derived.BarFraction(c.Humidity, 100)
	v.UVFraction = derived.BarFraction(c.UV, derived.UVMax)
	return v
}
