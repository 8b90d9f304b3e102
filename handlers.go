package main

import (
	"context"
	"fmt"

	"github.com/Rhymond/go-money"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"banktui/bankclient"
	"banktui/history"
	"banktui/messages"
	"banktui/session"
)

// Message types for API call results.
type (
	registerResultMsg struct {
		err error
	}

	loginResultMsg struct {
		session session.Session
		err     error
	}

	depositResultMsg struct {
		amount     float64
		newBalance float64
		err        error
	}

	withdrawResultMsg struct {
		amount     float64
		newBalance float64
		err        error
	}

	balanceResultMsg struct {
		balance float64
		err     error
	}

	transactionsResultMsg struct {
		ts  []bankclient.Transaction
		err error
	}

	refreshResultMsg struct {
		balance float64
		ts      []bankclient.Transaction
		err     error
	}
)

// API call commands. Each runs off the update loop and re-enters it as a
// result message. Authenticated commands obtain the stored credential
// first; with no session they fail locally without touching the network.

func (m model) registerCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		creds := bankclient.Credentials{Username: username, Password: password}
		return registerResultMsg{err: m.client.Register(context.Background(), creds)}
	}
}

func (m model) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		sess, err := m.store.Login(context.Background(), m.client, username, password)
		return loginResultMsg{session: sess, err: err}
	}
}

func (m model) depositCmd(amount float64) tea.Cmd {
	return func() tea.Msg {
		creds, err := m.store.Credentials()
		if err != nil {
			return depositResultMsg{amount: amount, err: err}
		}

		newBalance, err := m.client.Deposit(context.Background(), creds, amount)
		return depositResultMsg{amount: amount, newBalance: newBalance, err: err}
	}
}

func (m model) withdrawCmd(amount float64) tea.Cmd {
	return func() tea.Msg {
		creds, err := m.store.Credentials()
		if err != nil {
			return withdrawResultMsg{amount: amount, err: err}
		}

		newBalance, err := m.client.Withdraw(context.Background(), creds, amount)
		return withdrawResultMsg{amount: amount, newBalance: newBalance, err: err}
	}
}

func (m model) balanceCmd() tea.Cmd {
	return func() tea.Msg {
		creds, err := m.store.Credentials()
		if err != nil {
			return balanceResultMsg{err: err}
		}

		balance, err := m.client.Balance(context.Background(), creds)
		return balanceResultMsg{balance: balance, err: err}
	}
}

func (m model) transactionsCmd() tea.Cmd {
	return func() tea.Msg {
		creds, err := m.store.Credentials()
		if err != nil {
			return transactionsResultMsg{err: err}
		}

		ts, err := m.client.Transactions(context.Background(), creds)
		return transactionsResultMsg{ts: ts, err: err}
	}
}

// refreshCmd fetches the balance and the transaction history in parallel.
func (m model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		creds, err := m.store.Credentials()
		if err != nil {
			return refreshResultMsg{err: err}
		}

		ctx := context.Background()

		var errGroup errgroup.Group
		var balance float64
		var ts []bankclient.Transaction

		errGroup.Go(func() error {
			b, balanceErr := m.client.Balance(ctx, creds)
			if balanceErr != nil {
				return balanceErr
			}
			balance = b
			return nil
		})

		errGroup.Go(func() error {
			fetched, txErr := m.client.Transactions(ctx, creds)
			if txErr != nil {
				return txErr
			}
			ts = fetched
			return nil
		})

		if err := errGroup.Wait(); err != nil {
			return refreshResultMsg{err: err}
		}

		return refreshResultMsg{balance: balance, ts: ts}
	}
}

// Result handlers. A failed call never changes the visible section; it only
// posts an error notice.

func (m model) handleRegisterResult(msg registerResultMsg) (model, tea.Cmd) {
	m.settleRequest()

	if msg.err != nil {
		return m, messages.Post("Registration failed: "+msg.err.Error(), messages.Error)
	}

	return m, messages.Post("Registration successful! You can now login.", messages.Success)
}

func (m model) handleLoginResult(msg loginResultMsg) (model, tea.Cmd) {
	m.settleRequest()

	if msg.err != nil {
		return m, messages.Post("Login failed: "+msg.err.Error(), messages.Error)
	}

	m.sessionState = banking

	return m, messages.Post(fmt.Sprintf("Welcome back, %s!", msg.session.Username), messages.Success)
}

func (m model) handleDepositResult(msg depositResultMsg) (model, tea.Cmd) {
	m.settleRequest()

	if msg.err != nil {
		return m, messages.Post("Deposit failed: "+msg.err.Error(), messages.Error)
	}

	m.store.SetBalance(msg.newBalance)

	return m, messages.Post(
		fmt.Sprintf("Successfully deposited %s", money.NewFromFloat(msg.amount, money.USD).Display()),
		messages.Success,
	)
}

func (m model) handleWithdrawResult(msg withdrawResultMsg) (model, tea.Cmd) {
	m.settleRequest()

	if msg.err != nil {
		return m, messages.Post("Withdrawal failed: "+msg.err.Error(), messages.Error)
	}

	m.store.SetBalance(msg.newBalance)

	return m, messages.Post(
		fmt.Sprintf("Successfully withdrew %s", money.NewFromFloat(msg.amount, money.USD).Display()),
		messages.Success,
	)
}

func (m model) handleBalanceResult(msg balanceResultMsg) (model, tea.Cmd) {
	m.settleRequest()

	if msg.err != nil {
		return m, messages.Post("Failed to get balance: "+msg.err.Error(), messages.Error)
	}

	m.store.SetBalance(msg.balance)

	return m, messages.Post("Balance updated", messages.Info)
}

func (m model) handleTransactionsResult(msg transactionsResultMsg) (model, tea.Cmd) {
	m.settleRequest()

	if msg.err != nil {
		return m, messages.Post("Failed to get transactions: "+msg.err.Error(), messages.Error)
	}

	// an empty history never opens the transactions section
	if len(msg.ts) == 0 {
		return m, messages.Post("No transactions found", messages.Info)
	}

	m.history.SetTransactions(history.Rows(msg.ts))

	if m.sessionState == banking {
		m.sessionState = bankingTransactions
		m.history.SetFocus(true)
	}

	return m, nil
}

func (m model) handleRefreshResult(msg refreshResultMsg) (model, tea.Cmd) {
	m.settleRequest()

	if msg.err != nil {
		return m, messages.Post("Refresh failed: "+msg.err.Error(), messages.Error)
	}

	m.store.SetBalance(msg.balance)

	if m.sessionState == bankingTransactions {
		m.history.SetTransactions(history.Rows(msg.ts))
	}

	return m, messages.Post("Balance updated", messages.Info)
}
