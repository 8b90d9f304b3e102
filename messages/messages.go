// Package messages renders transient user notifications. Every posted
// notice gets its own expiry timer; notices are shown oldest first and are
// never deduplicated.
package messages

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultTTL is how long a notice stays visible.
const DefaultTTL = 5 * time.Second

// Severity determines a notice's styling.
type Severity int

const (
	Info Severity = iota
	Success
	Error
)

// PostMsg asks the bus to show one notice.
type PostMsg struct {
	Text     string
	Severity Severity
}

type expireMsg struct {
	id int
}

// Post returns a command that posts one notice to the bus.
func Post(text string, severity Severity) tea.Cmd {
	return func() tea.Msg {
		return PostMsg{Text: text, Severity: severity}
	}
}

// Notice is one visible notification.
type Notice struct {
	ID       int
	Text     string
	Severity Severity
}

// Styles are the per-severity notice styles.
type Styles struct {
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#22ba46")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Bold(true),
	}
}

// Model holds the visible notices.
type Model struct {
	Styles Styles

	notices []Notice
	nextID  int
	ttl     time.Duration
}

// Option configures a Model.
type Option func(*Model)

// WithTTL overrides the default notice lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(m *Model) {
		m.ttl = ttl
	}
}

// New creates an empty message bus.
func New(opts ...Option) Model {
	m := Model{
		Styles: defaultStyles(),
		ttl:    DefaultTTL,
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Notices returns the currently visible notices, oldest first.
func (m Model) Notices() []Notice {
	return m.notices
}

// Init initializes the message bus.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update appends posted notices and removes expired ones. Each notice
// schedules its own expiry, independent of every other notice's timer.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PostMsg:
		id := m.nextID
		m.nextID++
		m.notices = append(m.notices, Notice{ID: id, Text: msg.Text, Severity: msg.Severity})

		return m, tea.Tick(m.ttl, func(time.Time) tea.Msg {
			return expireMsg{id: id}
		})

	case expireMsg:
		kept := make([]Notice, 0, len(m.notices))
		for _, n := range m.notices {
			if n.ID != msg.id {
				kept = append(kept, n)
			}
		}
		m.notices = kept

		return m, nil
	}

	return m, nil
}

// View renders the notices, one per line, oldest first.
func (m Model) View() string {
	if len(m.notices) == 0 {
		return ""
	}

	var b strings.Builder
	for i, n := range m.notices {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styleFor(n.Severity).Render(n.Text))
	}

	return b.String()
}

func (m Model) styleFor(severity Severity) lipgloss.Style {
	switch severity {
	case Success:
		return m.Styles.Success
	case Error:
		return m.Styles.Error
	default:
		return m.Styles.Info
	}
}
