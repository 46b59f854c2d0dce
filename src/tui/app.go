// Package tui implements the interactive scoreboard: a list view of
// the day's games and a per-game detail view, refreshed on a
// wall-clock cadence.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/apimgr/courtside/src/api"
	"github.com/apimgr/courtside/src/scoreboard"
	"github.com/apimgr/courtside/src/terminal"
)

// Default refresh cadence in seconds. Two independent wall-clock
// checks: the data interval re-fetches the scoreboard, the pulse
// interval flashes a "refreshing" status.
const (
	defaultDataInterval  = 5
	defaultPulseInterval = 30
)

// Footer status hints
const (
	selectHint     = "Press (#) to select game"
	backHint       = "Press 'b' to back"
	refreshingHint = "Refreshing..."
	failedHint     = "Refresh failed, showing last scores"
)

// keyMap defines the non-digit keybindings
type keyMap struct {
	Back key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Back: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "back to game list"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// model owns all mutable UI state for one session. The game batch is
// replaced wholesale by each successful refresh; focus is an index
// into it, or -1 for the overview.
type model struct {
	client *api.Client
	date   string // MM/DD/YYYY, as the endpoint wants it
	offset int

	games  []*scoreboard.Game
	focus  int
	status string

	width  int
	height int

	dataInterval  int
	pulseInterval int
	cellWidth     int
}

// batchMsg carries the outcome of one scoreboard fetch
type batchMsg struct {
	games []*scoreboard.Game
	err   error
}

// tickMsg drives the refresh scheduler, once per second
type tickMsg time.Time

func newModel(client *api.Client, date string, offset int, games []*scoreboard.Game) model {
	size := terminal.GetSize()

	dataInterval := viper.GetInt("refresh.data_interval")
	if dataInterval <= 0 {
		dataInterval = defaultDataInterval
	}
	pulseInterval := viper.GetInt("refresh.pulse_interval")
	if pulseInterval <= 0 {
		pulseInterval = defaultPulseInterval
	}
	cellWidth := viper.GetInt("display.cell_width")
	if cellWidth <= 0 {
		cellWidth = scoreboard.DefaultCellWidth
	}

	return model{
		client:        client,
		date:          date,
		offset:        offset,
		games:         games,
		focus:         -1,
		status:        selectHint,
		width:         size.Cols,
		height:        size.Rows,
		dataInterval:  dataInterval,
		pulseInterval: pulseInterval,
		cellWidth:     cellWidth,
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case batchMsg:
		if msg.err != nil {
			// Keep the previous batch on screen; the failure is
			// retried on the next scheduled tick.
			m.status = failedHint
			slog.Warn("scoreboard refresh failed", "error", msg.err)
			return m, nil
		}
		m.games = msg.games
		if m.focus >= len(m.games) {
			m.focus = -1
			m.status = selectHint
		}
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Back):
		m.focus = -1
		m.status = selectHint

	default:
		// Digits 0-9 select a game; out-of-range digits and every
		// other key are ignored.
		s := msg.String()
		if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			idx := int(s[0] - '0')
			if idx < len(m.games) {
				m.focus = idx
				m.status = backHint
			}
		}
	}

	return m, nil
}

// handleTick evaluates the two refresh cadences. The checks are
// wall-clock modulus tests, deliberately kept separate: the finer one
// re-fetches data, the coarser one flashes the status pulse whether or
// not a fetch is in flight.
func (m model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	sec := t.Unix()

	cmds := []tea.Cmd{tickCmd()}
	if refreshDue(sec, m.dataInterval) {
		cmds = append(cmds, m.fetch)
	}
	if refreshDue(sec, m.pulseInterval) {
		m.status = refreshingHint
	}

	return m, tea.Batch(cmds...)
}

// refreshDue reports whether a clock-aligned interval fires at the
// given wall-clock second.
func refreshDue(sec int64, interval int) bool {
	return sec%int64(interval) == 0
}

// fetch runs one scoreboard fetch as a command. The batch swap happens
// in Update, so the renderer always sees a consistent snapshot.
func (m model) fetch() tea.Msg {
	sb, err := m.client.Scoreboard(context.Background(), m.date, m.offset)
	if err != nil {
		return batchMsg{err: err}
	}
	return batchMsg{games: scoreboard.BuildBatch(sb)}
}

// Run starts the interactive scoreboard with an initial batch
func Run(client *api.Client, date string, offset int, games []*scoreboard.Game) error {
	p := tea.NewProgram(newModel(client, date, offset, games), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
