package dashboard

import (
	"testing"

	"github.com/ngmaloney/weather-terminal/internal/derived"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/theme"
	"github.com/stretchr/testify/assert"
)

func manila() *models.WeatherSnapshot {
	return &models.WeatherSnapshot{
		Location: models.Location{Name: "Manila", Region: "Manila", Country: "Philippines"},
		Current: models.Current{
			TempC:      31.6,
			TempF:      88.9,
			IsDay:      1,
			WindKph:    13,
			WindDir:    "NE",
			WindDegree: 45,
			Humidity:   50,
			UV:         11,
			Condition:  models.Condition{Code: 1000, Text: "Sunny"},
		},
	}
}

func TestBuild_Manila(t *testing.T) {
	v := Build(manila())

	assert.Equal(t, theme.Sunny, v.Theme)
	assert.Equal(t, theme.AnimSunny, v.Animation)
	assert.Equal(t, 32, v.TempCRounded)
	assert.Equal(t, "SW", v.WindFrom)
	assert.Equal(t, "↗", v.WindArrow)
	assert.Equal(t, "EXTREME", v.UVRisk.Label)
	assert.Equal(t, 0.5, v.HumidityFraction)
	assert.Equal(t, 1.0, v.UVFraction)
}

func TestBuild_Nil(t *testing.T) {
	v := Build(nil)

	assert.Nil(t, v.Snapshot)
	assert.Equal(t, theme.Default, v.Theme)
	assert.Equal(t, derived.UnknownDirection, v.WindFrom)
	assert.Equal(t, "LOW", v.UVRisk.Label)
}

func TestBuild_UnmappedValuesFallBack(t *testing.T) {
	s := manila()
	s.Current.WindDir = "Variable"
	s.Current.Condition = models.Condition{Code: 9999, Text: "Volcanic ash"}

	v := Build(s)

	assert.Equal(t, derived.UnknownDirection, v.WindFrom)
	assert.Equal(t, theme.Default, v.Theme)
	assert.Equal(t, theme.AnimSunny, v.Animation)
}

func TestBuild_NightClear(t *testing.T) {
	s := manila()
	s.Current.IsDay = 0
	s.Current.Condition.Text = "Clear"

	v := Build(s)

	assert.Equal(t, theme.Night, v.Theme)
	assert.True(t, v.Theme.Starfield)
	assert.Equal(t, theme.AnimMoon, v.Animation)
}
