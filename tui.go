package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"banktui/bankclient"
	"banktui/health"
	"banktui/history"
	"banktui/messages"
	"banktui/session"
)

type model struct {
	keys   keyMap
	help   help.Model
	styles styles
	theme  Theme

	// sessionState is the currently visible section
	sessionState sessionState

	client *bankclient.Client
	// store holds the credential and session display values; commands share
	// it by pointer, so whichever response resolves last wins
	store *session.Store

	messages messages.Model
	health   health.Model
	history  history.Model

	// loginForm is live whenever the login section is visible
	loginForm *huh.Form
	// amountForm is non-nil while a deposit or withdrawal amount is being
	// entered
	amountForm *huh.Form
	pendingOp  operation

	// requestSpinner renders while any API call is outstanding; there is no
	// mutual exclusion between calls
	requestSpinner spinner.Model
	inFlight       int

	width, height int
}

func newModel(cfg Config, client *bankclient.Client) model {
	theme := newTheme(cfg.Colors)

	m := model{
		keys:         initializeKeyMap(),
		help:         createHelpModel(theme),
		styles:       createStyles(theme),
		theme:        theme,
		sessionState: loggedOut,
		client:       client,
		store:        session.NewStore(),
		messages:     messages.New(),
		health:       health.New(client),
		history:      history.New(),
		loginForm:    newLoginForm(),
		requestSpinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
		),
	}

	m.messages.Styles = createMessageStyles(theme)
	m.health.Styles = createHealthStyles(theme)

	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.loginForm.Init(),
		m.health.Init(),
		m.requestSpinner.Tick,
	)
}

// settleRequest marks one outstanding API call as resolved.
func (m *model) settleRequest() {
	if m.inFlight > 0 {
		m.inFlight--
	}
}

func rootAction(ctx context.Context, cfg Config, client *bankclient.Client) error {
	m := newModel(cfg, client)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("banktui ran into an error: %w", err)
	}

	return nil
}
