package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"banktui/history"
	"banktui/messages"
)

type keyMap struct {
	deposit          key.Binding
	withdraw         key.Binding
	balance          key.Binding
	transactions     key.Binding
	hideTransactions key.Binding
	refresh          key.Binding
	logout           key.Binding
	fullHelp         key.Binding
	quit             key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.deposit,
		km.withdraw,
		km.balance,
		km.transactions,
		km.logout,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.deposit,
			km.withdraw,
			km.balance,
			km.transactions,
		},
		{
			km.hideTransactions,
			km.refresh,
			km.logout,
			km.quit,
		},
	}
}

func initializeKeyMap() keyMap {
	return keyMap{
		deposit: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "deposit"),
		),
		withdraw: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "withdraw"),
		),
		balance: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "balance"),
		),
		transactions: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transactions"),
		),
		hideTransactions: key.NewBinding(
			key.WithKeys("esc", "h"),
			key.WithHelp("esc", "hide transactions"),
		),
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		logout: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "logout"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// handleKeyPress routes key events that change the visible section or start
// an operation. The boolean reports whether the key was consumed; unconsumed
// keys fall through to the focused form or table.
func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd, bool) {
	k := msg.String()
	log.Debug("key pressed", "key", k)

	// ctrl+c always quits, even mid-form
	if k == "ctrl+c" {
		return m, tea.Quit, true
	}

	// esc cancels a pending amount entry without leaving the section
	if m.amountForm != nil && k == "esc" {
		m.amountForm = nil
		m.pendingOp = opNone
		return m, nil, true
	}

	if m.isTyping() {
		return m, nil, false
	}

	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit, true
	}

	if key.Matches(msg, m.keys.fullHelp) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil, true
	}

	switch m.sessionState {
	case banking, bankingTransactions:
		return handleBankingKeys(msg, m)
	case loggedOut:
	}

	return m, nil, false
}

// isTyping reports whether a text input currently has focus, in which case
// printable keys belong to the form.
func (m *model) isTyping() bool {
	if m.sessionState == loggedOut {
		return m.loginForm != nil && m.loginForm.State == huh.StateNormal
	}

	return m.amountForm != nil
}

func handleBankingKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.deposit):
		m.amountForm = newAmountForm("Deposit amount")
		m.pendingOp = opDeposit
		return m, m.amountForm.Init(), true

	case key.Matches(msg, m.keys.withdraw):
		m.amountForm = newAmountForm("Withdraw amount")
		m.pendingOp = opWithdraw
		return m, m.amountForm.Init(), true

	case key.Matches(msg, m.keys.balance):
		m.inFlight++
		return m, m.balanceCmd(), true

	case key.Matches(msg, m.keys.transactions):
		m.inFlight++
		return m, m.transactionsCmd(), true

	case key.Matches(msg, m.keys.refresh):
		m.inFlight++
		return m, m.refreshCmd(), true

	case key.Matches(msg, m.keys.hideTransactions):
		if m.sessionState == bankingTransactions {
			m.sessionState = banking
			m.history.SetFocus(false)
			return m, nil, true
		}

	case key.Matches(msg, m.keys.logout):
		return handleLogout(m)
	}

	return m, nil, false
}

// handleLogout clears the session and returns to the login section. Logout
// is idempotent at the store level; the transactions view is not preserved.
func handleLogout(m *model) (tea.Model, tea.Cmd, bool) {
	m.store.Logout()
	m.sessionState = loggedOut
	m.history = history.New()
	m.loginForm = newLoginForm()

	return m, tea.Batch(
		m.loginForm.Init(),
		messages.Post("Logged out successfully", messages.Info),
	), true
}
