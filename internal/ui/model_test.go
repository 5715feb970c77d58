package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWeatherClient returns canned snapshots keyed by query; unknown queries
// produce no data, like any failed provider call
type mockWeatherClient struct {
	snapshots map[string]*models.WeatherSnapshot
	calls     []string
}

func (m *mockWeatherClient) FetchCurrent(ctx context.Context, query string) *models.WeatherSnapshot {
	m.calls = append(m.calls, query)
	return m.snapshots[query]
}

func manilaSnapshot() *models.WeatherSnapshot {
	return &models.WeatherSnapshot{
		Location: models.Location{Name: "Manila", Region: "Manila", Country: "Philippines"},
		Current: models.Current{
			TempC:      31.6,
			TempF:      88.9,
			IsDay:      1,
			FeelsLikeC: 37.2,
			WindKph:    13,
			WindDir:    "NE",
			WindDegree: 45,
			Humidity:   66,
			DewpointC:  24.1,
			PressureMb: 1009,
			UV:         11,
			Condition:  models.Condition{Code: 1000, Text: "Sunny"},
		},
	}
}

func londonSnapshot() *models.WeatherSnapshot {
	return &models.WeatherSnapshot{
		Location: models.Location{Name: "London", Region: "City of London, Greater London", Country: "United Kingdom"},
		Current: models.Current{
			TempC:     11.2,
			IsDay:     0,
			WindDir:   "WSW",
			Humidity:  87,
			UV:        0,
			Condition: models.Condition{Code: 1183, Text: "Light rain"},
		},
	}
}

func newMockClient() *mockWeatherClient {
	return &mockWeatherClient{snapshots: map[string]*models.WeatherSnapshot{
		"Manila": manilaSnapshot(),
		"London": londonSnapshot(),
	}}
}

// typeText feeds characters to the model one key at a time
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, char := range text {
		updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{char}})
		m = updatedModel.(Model)
	}
	return m
}

// submit presses Enter and returns the model plus the fetch command
func submit(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updatedModel.(Model), cmd
}

func resolve(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updatedModel, _ := m.Update(msg)
	return updatedModel.(Model)
}

func TestNewModel(t *testing.T) {
	m := NewModel(newMockClient(), "")

	if m.state != StateIdle {
		t.Errorf("NewModel() state = %v, want StateIdle", m.state)
	}
	if m.Weather() != nil {
		t.Error("NewModel() should start without a snapshot")
	}
	if !m.searchInput.Focused() {
		t.Error("Expected search input to be focused initially")
	}
}

func TestNewModel_DefaultCityStartsLoading(t *testing.T) {
	m := NewModel(newMockClient(), "  Manila ")

	assert.Equal(t, StateLoading, m.state)
	assert.Equal(t, "Manila", m.searchQuery)
	assert.Equal(t, 1, m.inflight)
}

func TestModel_Init_FetchesDefaultCity(t *testing.T) {
	client := newMockClient()
	m := NewModel(client, "Manila")

	cmd := m.Init()
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "Init should batch its startup commands")

	var fetched *weatherFetchedMsg
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(weatherFetchedMsg); ok {
			fetched = &msg
		}
	}
	require.NotNil(t, fetched, "Init should search the default city")
	assert.Equal(t, []string{"Manila"}, client.calls)

	m = resolve(t, m, *fetched)
	assert.Equal(t, StateLoaded, m.state)
	assert.Equal(t, "Manila", m.Weather().Location.Name)
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := NewModel(newMockClient(), "")

	m = resolve(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 {
		t.Errorf("After WindowSizeMsg, width = %d, want 120", m.width)
	}
	if m.height != 40 {
		t.Errorf("After WindowSizeMsg, height = %d, want 40", m.height)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m := NewModel(newMockClient(), "")
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, "expected %s to return a command", key)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestModel_QIsTypeable(t *testing.T) {
	m := NewModel(newMockClient(), "")
	m = typeText(t, m, "quezon city")

	assert.Equal(t, "quezon city", m.searchInput.Value())
}

// TestTextInputHandling verifies that text input works correctly
func TestTextInputHandling(t *testing.T) {
	m := NewModel(newMockClient(), "")

	m = typeText(t, m, "Manila")
	if m.searchInput.Value() != "Manila" {
		t.Errorf("Expected search input to be 'Manila', got '%s'", m.searchInput.Value())
	}

	m = resolve(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.searchInput.Value() != "Manil" {
		t.Errorf("Expected search input to be 'Manil' after backspace, got '%s'", m.searchInput.Value())
	}
}

// TestEnterKeyWithEmptyInput verifies that pressing Enter with empty input does nothing
func TestEnterKeyWithEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   "} {
		client := newMockClient()
		m := NewModel(client, "")
		m = typeText(t, m, input)

		m, cmd := submit(t, m)

		assert.Nil(t, cmd, "blank input %q should not start a search", input)
		assert.Equal(t, StateIdle, m.state)
		assert.Empty(t, client.calls)
	}
}

func TestModel_SubmitStartsLoading(t *testing.T) {
	m := NewModel(newMockClient(), "")
	m = typeText(t, m, "Manila")

	m, cmd := submit(t, m)

	require.NotNil(t, cmd)
	assert.Equal(t, StateLoading, m.state)
	assert.True(t, m.Loading())
	assert.Equal(t, "Manila", m.searchQuery)
	assert.Equal(t, "", m.searchInput.Value(), "input is cleared after submitting")
}

func TestModel_AnimationTick(t *testing.T) {
	m := NewModel(newMockClient(), "")

	updatedModel, cmd := m.Update(animationTickMsg{})
	m = updatedModel.(Model)

	assert.Equal(t, 1, m.frame)
	assert.NotNil(t, cmd, "animation keeps ticking")
}

func TestModel_SetWeather(t *testing.T) {
	m := NewModel(newMockClient(), "")
	m.SetWeather(manilaSnapshot())

	assert.Equal(t, StateLoaded, m.state)
	assert.Equal(t, "Manila", m.Weather().Location.Name)
}

func TestModel_View_States(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *Model)
		want    string
		notWant string
	}{
		{
			name:    "idle shell",
			setup:   func(m *Model) {},
			want:    "No weather loaded yet",
			notWant: "Fetching weather",
		},
		{
			name: "loading",
			setup: func(m *Model) {
				m.state = StateLoading
				m.searchQuery = "Manila"
			},
			want: "Fetching weather for Manila",
		},
		{
			name:    "loaded",
			setup:   func(m *Model) { m.SetWeather(manilaSnapshot()) },
			want:    "MANILA",
			notWant: "No weather loaded yet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(newMockClient(), "")
			m.width = 160
			m.height = 50
			tt.setup(&m)

			view := m.View()
			assert.Contains(t, view, tt.want)
			if tt.notWant != "" {
				assert.NotContains(t, view, tt.notWant)
			}
		})
	}
}

func TestModel_View_InitialLoading(t *testing.T) {
	m := NewModel(newMockClient(), "")
	view := m.View()

	if view != "Loading..." {
		t.Errorf("View() before window size = %q, want 'Loading...'", view)
	}
}

func TestAppState_Constants(t *testing.T) {
	if StateIdle != 0 {
		t.Errorf("StateIdle = %d, want 0", StateIdle)
	}
	if StateLoading != 1 {
		t.Errorf("StateLoading = %d, want 1", StateLoading)
	}
	if StateLoaded != 2 {
		t.Errorf("StateLoaded = %d, want 2", StateLoaded)
	}
	if StateLoaded.String() != "loaded" {
		t.Errorf("StateLoaded.String() = %q, want loaded", StateLoaded.String())
	}
}
