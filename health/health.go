// Package health polls the API's liveness endpoint and renders a single
// shared status indicator.
package health

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PollInterval is how often the API is probed after the initial check.
const PollInterval = 30 * time.Second

// Pinger is the slice of the API client the monitor needs.
type Pinger interface {
	Health(ctx context.Context) error
}

// Status is the last known state of the backend. Any successful response is
// Online; any HTTP or transport error is Offline, with no distinction
// between degraded and fully down.
type Status int

const (
	StatusUnknown Status = iota
	StatusOnline
	StatusOffline
)

func (s Status) String() string {
	switch s {
	case StatusOnline:
		return "Online"
	case StatusOffline:
		return "Offline"
	}
	return "Checking..."
}

// ResultMsg carries one poll outcome back into the update loop.
type ResultMsg struct {
	Status Status
}

type tickMsg struct{}

// Styles are the per-status indicator styles.
type Styles struct {
	Online  lipgloss.Style
	Offline lipgloss.Style
	Unknown lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Online:  lipgloss.NewStyle().Foreground(lipgloss.Color("#22ba46")),
		Offline: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		Unknown: lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

// Model is the health indicator.
type Model struct {
	Styles Styles

	pinger   Pinger
	status   Status
	interval time.Duration
}

// Option configures a Model.
type Option func(*Model)

// WithInterval overrides the default poll interval.
func WithInterval(interval time.Duration) Option {
	return func(m *Model) {
		m.interval = interval
	}
}

// New creates a monitor that probes through pinger.
func New(pinger Pinger, opts ...Option) Model {
	m := Model{
		Styles:   defaultStyles(),
		pinger:   pinger,
		interval: PollInterval,
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Status returns the last known backend status.
func (m Model) Status() Status { return m.status }

// Init fires the first poll immediately and starts the interval timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.poll, m.tick())
}

// Update records poll results and keeps the timer running. Ticks fire on
// the interval regardless of whether the previous poll has resolved, so
// polls may overlap; the last result to arrive wins.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultMsg:
		m.status = msg.Status
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.poll, m.tick())
	}

	return m, nil
}

func (m Model) poll() tea.Msg {
	if err := m.pinger.Health(context.Background()); err != nil {
		return ResultMsg{Status: StatusOffline}
	}
	return ResultMsg{Status: StatusOnline}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// View renders the status indicator.
func (m Model) View() string {
	switch m.status {
	case StatusOnline:
		return m.Styles.Online.Render("API ● " + m.status.String())
	case StatusOffline:
		return m.Styles.Offline.Render("API ● " + m.status.String())
	}
	return m.Styles.Unknown.Render("API ○ " + m.status.String())
}
