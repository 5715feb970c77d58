package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-terminal/internal/dashboard"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

// AppState represents the current state of the application
type AppState int

const (
	StateIdle    AppState = iota // Nothing loaded yet
	StateLoading                 // At least one search in flight
	StateLoaded                  // A snapshot is on screen
)

func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	}
	return fmt.Sprintf("AppState(%d)", int(s))
}

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int

	// Search
	searchInput textinput.Model
	searchQuery string // Last submitted query
	defaultCity string

	// API client
	weatherClient weatherapi.WeatherClient

	// Data; replaced wholesale on each successful fetch
	weather *models.WeatherSnapshot

	// Searches that have not resolved yet. Responses are applied in the
	// order they arrive, so a slow early search can overwrite a later one.
	inflight int

	spinner spinner.Model
	frame   int
}

// NewModel creates a new application model. A non-empty defaultCity is
// searched as soon as the program starts.
func NewModel(client weatherapi.WeatherClient, defaultCity string) Model {
	ti := textinput.New()
	ti.Placeholder = "Change city (e.g. Manila, London, Chatham MA)..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 44

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		state:         StateIdle,
		searchInput:   ti,
		defaultCity:   strings.TrimSpace(defaultCity),
		weatherClient: client,
		spinner:       s,
	}

	if m.defaultCity != "" {
		m.searchQuery = m.defaultCity
		m.inflight = 1
		m.state = StateLoading
	}

	return m
}

// Init starts the blink/spinner/animation loops and the initial search
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick, tickAnimation()}
	if m.defaultCity != "" {
		cmds = append(cmds, fetchWeather(m.weatherClient, m.defaultCity))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case weatherFetchedMsg:
		if m.inflight > 0 {
			m.inflight--
		}
		// Absent data leaves whatever is on screen untouched
		if msg.snapshot != nil {
			m.weather = msg.snapshot
		}
		m.state = m.settledState()
		return m, nil

	case animationTickMsg:
		m.frame++
		return m, tickAnimation()

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			return m.handleSubmit()
		}
	}

	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleSubmit starts a search for the current input. Blank input is ignored.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		return m, nil
	}

	m.searchQuery = query
	m.searchInput.SetValue("")
	m.inflight++
	m.state = StateLoading
	return m, fetchWeather(m.weatherClient, query)
}

func (m Model) settledState() AppState {
	switch {
	case m.inflight > 0:
		return StateLoading
	case m.weather != nil:
		return StateLoaded
	}
	return StateIdle
}

// Loading reports whether the loading indicator is shown
func (m Model) Loading() bool {
	return m.state == StateLoading
}

// Weather returns the snapshot on screen, or nil before the first success
func (m Model) Weather() *models.WeatherSnapshot {
	return m.weather
}

// SetWeather places a snapshot on screen without going through a search
func (m *Model) SetWeather(s *models.WeatherSnapshot) {
	m.weather = s
	m.state = m.settledState()
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// Derived per render; the theme follows whichever snapshot is shown now
	v := dashboard.Build(m.weather)
	st := newStyles(v.Theme)

	var sections []string

	sections = append(sections,
		st.title.Render("☼ WEATHER TERMINAL ☼"),
		st.searchBox.Render(m.searchInput.View()),
	)

	if m.Loading() {
		sections = append(sections, fmt.Sprintf("%s %s", m.spinner.View(),
			mutedStyle.Render(fmt.Sprintf("Fetching weather for %s...", m.searchQuery))))
	}

	if m.weather == nil {
		sections = append(sections, "", mutedStyle.Render("No weather loaded yet. Type a city and press Enter."))
	} else {
		sections = append(sections, "", m.renderDashboard(v, st))
	}

	help := helpStyle.Render("Enter: Search • Esc/Ctrl+C: Quit")
	sections = append(sections, help)

	return st.screen.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
