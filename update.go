package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if mdl, cmd, handled := handleKeyPress(keyMsg, &m); handled {
			return mdl, cmd
		}
	}

	var cmds []tea.Cmd

	// the notification area and health indicator run on their own timers
	// and see every message
	var cmd tea.Cmd
	m.messages, cmd = m.messages.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	m.health, cmd = m.health.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg, cmds)

	case spinner.TickMsg:
		m.requestSpinner, cmd = m.requestSpinner.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case registerResultMsg:
		m, cmd = m.handleRegisterResult(msg)
		return m, batchWith(cmds, cmd)

	case loginResultMsg:
		m, cmd = m.handleLoginResult(msg)
		return m, batchWith(cmds, cmd)

	case depositResultMsg:
		m, cmd = m.handleDepositResult(msg)
		return m, batchWith(cmds, cmd)

	case withdrawResultMsg:
		m, cmd = m.handleWithdrawResult(msg)
		return m, batchWith(cmds, cmd)

	case balanceResultMsg:
		m, cmd = m.handleBalanceResult(msg)
		return m, batchWith(cmds, cmd)

	case transactionsResultMsg:
		m, cmd = m.handleTransactionsResult(msg)
		return m, batchWith(cmds, cmd)

	case refreshResultMsg:
		m, cmd = m.handleRefreshResult(msg)
		return m, batchWith(cmds, cmd)
	}

	// remaining messages drive whichever input has focus
	switch m.sessionState {
	case loggedOut:
		m, cmd = m.updateLoginForm(msg)
		return m, batchWith(cmds, cmd)

	case banking, bankingTransactions:
		if m.amountForm != nil {
			m, cmd = m.updateAmountForm(msg)
			return m, batchWith(cmds, cmd)
		}

		if m.sessionState == bankingTransactions {
			m.history, cmd = m.history.Update(msg)
			return m, batchWith(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func batchWith(cmds []tea.Cmd, cmd tea.Cmd) tea.Cmd {
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m model) handleWindowSize(msg tea.WindowSizeMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	takenHeight := 12
	m.width = msg.Width
	m.height = msg.Height
	m.history.SetSize(msg.Width-h, max(msg.Height-v-takenHeight, 3))
	m.help.Width = msg.Width

	return m, tea.Batch(cmds...)
}

// updateLoginForm runs the credentials form and dispatches the chosen call
// once the form completes. The form is rebuilt immediately so the fields
// are cleared for the next attempt.
func (m model) updateLoginForm(msg tea.Msg) (model, tea.Cmd) {
	form, cmd := m.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.loginForm = f
	} else {
		log.Debug("login form did not return a form")
		return m, nil
	}

	if m.loginForm.State != huh.StateCompleted {
		return m, cmd
	}

	username := strings.TrimSpace(m.loginForm.GetString("username"))
	password := m.loginForm.GetString("password")
	action := m.loginForm.GetString("action")

	m.loginForm = newLoginForm()
	m.inFlight++

	dispatch := m.loginCmd(username, password)
	if action == loginActionRegister {
		dispatch = m.registerCmd(username, password)
	}

	return m, tea.Batch(cmd, m.loginForm.Init(), dispatch)
}

// updateAmountForm runs the amount form for the pending deposit or
// withdrawal and dispatches the call once the form completes. The form's
// validator guarantees the amount parses and is positive.
func (m model) updateAmountForm(msg tea.Msg) (model, tea.Cmd) {
	form, cmd := m.amountForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.amountForm = f
	} else {
		log.Debug("amount form did not return a form")
		return m, nil
	}

	switch m.amountForm.State {
	case huh.StateAborted:
		m.amountForm = nil
		m.pendingOp = opNone
		return m, cmd

	case huh.StateCompleted:
		amount, err := strconv.ParseFloat(strings.TrimSpace(m.amountForm.GetString("amount")), 64)
		if err != nil {
			log.Debug("amount did not parse after validation", "error", err)
			m.amountForm = nil
			m.pendingOp = opNone
			return m, cmd
		}

		op := m.pendingOp
		m.amountForm = nil
		m.pendingOp = opNone
		m.inFlight++

		if op == opWithdraw {
			return m, tea.Batch(cmd, m.withdrawCmd(amount))
		}
		return m, tea.Batch(cmd, m.depositCmd(amount))

	case huh.StateNormal:
	}

	return m, cmd
}
