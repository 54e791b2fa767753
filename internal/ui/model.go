package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"safar/internal/config"
	"safar/internal/dispatch"
	"safar/internal/i18n"
	"safar/internal/nav"
)

type Model struct {
	app *dispatch.App
	res dispatch.Result

	Config    config.Config
	tr        *i18n.Translator
	configDir string

	spinner spinner.Model
	input   textinput.Model
	cursor  int

	// Multi-field text screens (signup, parcel form) collect one field at a
	// time; formStage tracks which, formFields holds the collected values.
	formStage  int
	formFields []string

	panel   Panel
	mapView MapView

	termWidth  int
	termHeight int
	Quitting   bool

	onlineStatus string
	traffic      string
	prevSent     uint64
	prevRecv     uint64
	prevSample   time.Time

	// Timer ids follow the schedule-with-id pattern: a fired message whose id
	// no longer matches is stale and dropped.
	nextTimerID   int
	searchTimerID int
	otpTimerID    int
	panelTimerID  int
	ratingTimerID int
}

// InitialModel loads config and prefs, seeds application state, and runs the
// first dispatch pass.
func InitialModel() Model {
	configDir, err := config.GetConfigDir()
	if err != nil {
		log.Printf("ui: no config dir, running with defaults: %v", err)
	}

	cfg := config.LoadConfig(configDir)
	prefs := config.LoadPrefs(configDir)
	applyPrefOverrides(&cfg, prefs)
	applyThemeStyles(cfg)

	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))

	in := textinput.New()
	in.CharLimit = 64

	m := Model{
		app:          dispatch.NewApp(prefs),
		Config:       cfg,
		tr:           i18n.New(cfg.Language),
		configDir:    configDir,
		spinner:      s,
		input:        in,
		panel:        NewPanel(),
		mapView:      NewMapView(),
		onlineStatus: "checking...",
		traffic:      "calculating...",
	}
	m.res = m.app.Dispatch()
	m.syncInput()
	return m
}

// applyPrefOverrides lets persisted settings-screen choices win over the
// config file for the display preferences.
func applyPrefOverrides(cfg *config.Config, prefs *config.Prefs) {
	if theme := prefs.Get(config.PrefTheme); theme != "" {
		cfg.Theme = theme
	}
	if lang := prefs.Get(config.PrefLanguage); lang != "" {
		cfg.Language = lang
	}
	switch prefs.Get(config.PrefTextSize) {
	case "1":
		cfg.TextSize = 1
	case "2":
		cfg.TextSize = 2
	case "3":
		cfg.TextSize = 3
	}
	config.ClampConfig(cfg)
}

// refresh re-runs dispatch after an event fired and resets per-screen UI
// state when the screen actually changed. It returns any timer commands the
// new screen needs.
func (m *Model) refresh() tea.Cmd {
	before := m.res.Screen
	m.res = m.app.Dispatch()
	if m.res.Screen == before {
		return nil
	}

	m.cursor = 0
	m.formStage = 0
	m.formFields = nil
	m.panel.Reset()
	m.syncInput()

	switch m.res.Screen {
	case nav.ScreenSearchingRides:
		return m.scheduleSearchTimer()
	}
	return nil
}

// syncInput focuses or blurs the text input to match the screen.
func (m *Model) syncInput() {
	m.input.Reset()
	if m.res.Props.Editing {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

func (m *Model) scheduleSearchTimer() tea.Cmd {
	m.nextTimerID++
	id := m.nextTimerID
	m.searchTimerID = id
	return tea.Tick(searchDuration, func(time.Time) tea.Msg {
		return searchDoneMsg{id: id}
	})
}

func (m *Model) scheduleOTPTimer() tea.Cmd {
	m.nextTimerID++
	id := m.nextTimerID
	m.otpTimerID = id
	return tea.Tick(otpAutoSubmitDelay, func(time.Time) tea.Msg {
		return otpAutoSubmitMsg{id: id}
	})
}

func (m *Model) schedulePanelTimer() tea.Cmd {
	m.nextTimerID++
	id := m.nextTimerID
	m.panelTimerID = id
	return tea.Tick(panelSettleDuration, func(time.Time) tea.Msg {
		return panelSettleMsg{id: id}
	})
}

func (m *Model) scheduleRatingTimer() tea.Cmd {
	m.nextTimerID++
	id := m.nextTimerID
	m.ratingTimerID = id
	return tea.Tick(ratingHomeDelay, func(time.Time) tea.Msg {
		return ratingDoneMsg{id: id}
	})
}

// fire sends an event into the dispatcher and refreshes the render input.
func (m *Model) fire(ev dispatch.Event, arg any) tea.Cmd {
	m.res.Fire(ev, arg)
	return m.refresh()
}
