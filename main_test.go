package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/carlmjohnson/be"
	tea "github.com/charmbracelet/bubbletea"

	"banktui/bankclient"
	"banktui/messages"
	"banktui/session"
)

func newTestModel(t *testing.T, handler http.Handler) model {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := bankclient.New(srv.URL + "/api/v1/banking")
	be.NilErr(t, err)

	return newModel(Config{}, client)
}

func bankingAPIStub(calls *atomic.Int64) http.Handler {
	mux := http.NewServeMux()

	jsonBody := func(w http.ResponseWriter, body string) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}

	mux.HandleFunc("/api/v1/banking/login", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		jsonBody(w, `{"username":"alice","balance":100.00}`)
	})
	mux.HandleFunc("/api/v1/banking/deposit", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		jsonBody(w, `{"newBalance":150.00}`)
	})
	mux.HandleFunc("/api/v1/banking/withdraw", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		jsonBody(w, `{"newBalance":80.00}`)
	})
	mux.HandleFunc("/api/v1/banking/balance", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		jsonBody(w, `{"balance":100.00}`)
	})
	mux.HandleFunc("/api/v1/banking/transactions", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		jsonBody(w, `[{"type":"DEPOSIT","amount":50,"timestamp":"2024-01-01T10:00:00"}]`)
	})

	return mux
}

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		state sessionState
		want  string
	}{
		{state: loggedOut, want: "login"},
		{state: banking, want: "account"},
		{state: bankingTransactions, want: "transactions"},
		{state: sessionState(99), want: "unknown"},
	}

	for _, tt := range tests {
		be.Equal(t, tt.want, tt.state.String())
	}
}

func TestHandleLoginResult(t *testing.T) {
	var calls atomic.Int64
	m := newTestModel(t, bankingAPIStub(&calls))
	m.inFlight = 1

	result, cmd := m.handleLoginResult(loginResultMsg{
		session: session.Session{Username: "alice", Balance: 100.00},
	})

	be.Equal(t, banking, result.sessionState)
	be.Equal(t, 0, result.inFlight)
	be.Nonzero(t, cmd)

	postMsg, ok := cmd().(messages.PostMsg)
	be.True(t, ok)
	be.True(t, strings.Contains(postMsg.Text, "Welcome back, alice!"))
	be.Equal(t, messages.Success, postMsg.Severity)
}

func TestHandleLoginResultFailureStaysLoggedOut(t *testing.T) {
	var calls atomic.Int64
	m := newTestModel(t, bankingAPIStub(&calls))
	m.inFlight = 1

	result, cmd := m.handleLoginResult(loginResultMsg{err: errors.New("HTTP 401: Unauthorized")})

	be.Equal(t, loggedOut, result.sessionState)

	postMsg, ok := cmd().(messages.PostMsg)
	be.True(t, ok)
	be.Equal(t, messages.Error, postMsg.Severity)
}

func TestLoginThenLogoutReturnsToLoggedOut(t *testing.T) {
	var calls atomic.Int64
	m := newTestModel(t, bankingAPIStub(&calls))

	msg, ok := m.loginCmd("alice", "pw")().(loginResultMsg)
	be.True(t, ok)
	be.NilErr(t, msg.err)

	m, _ = m.handleLoginResult(msg)
	be.Equal(t, banking, m.sessionState)

	resultModel, cmd, handled := handleLogout(&m)
	be.True(t, handled)
	be.Nonzero(t, cmd)

	result := resultModel.(*model)
	be.Equal(t, loggedOut, result.sessionState)

	_, active := result.store.Current()
	be.False(t, active)

	// logout is idempotent: a second logout changes nothing
	resultModel, _, handled = handleLogout(result)
	be.True(t, handled)
	result = resultModel.(*model)
	be.Equal(t, loggedOut, result.sessionState)
}

func TestHandleTransactionsResult(t *testing.T) {
	tests := []struct {
		name      string
		initial   sessionState
		msg       transactionsResultMsg
		wantState sessionState
		wantMsg   string
	}{
		{
			name:    "non-empty history opens the transactions section",
			initial: banking,
			msg: transactionsResultMsg{ts: []bankclient.Transaction{
				{Type: "DEPOSIT", Amount: 50, Timestamp: "2024-01-01T10:00:00"},
			}},
			wantState: bankingTransactions,
		},
		{
			name:      "empty history stays in the account section",
			initial:   banking,
			msg:       transactionsResultMsg{ts: nil},
			wantState: banking,
			wantMsg:   "No transactions found",
		},
		{
			name:      "a failed fetch leaves the section unchanged",
			initial:   banking,
			msg:       transactionsResultMsg{err: errors.New("HTTP 500: Internal Server Error")},
			wantState: banking,
			wantMsg:   "Failed to get transactions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int64
			m := newTestModel(t, bankingAPIStub(&calls))
			m.sessionState = tt.initial
			m.inFlight = 1

			result, cmd := m.handleTransactionsResult(tt.msg)

			be.Equal(t, tt.wantState, result.sessionState)

			if tt.wantMsg != "" {
				postMsg, ok := cmd().(messages.PostMsg)
				be.True(t, ok)
				be.True(t, strings.Contains(postMsg.Text, tt.wantMsg))
			}
		})
	}
}

func TestHideTransactions(t *testing.T) {
	var calls atomic.Int64
	m := newTestModel(t, bankingAPIStub(&calls))
	m.sessionState = bankingTransactions

	resultModel, _, handled := handleKeyPress(tea.KeyMsg{Type: tea.KeyEsc}, &m)
	be.True(t, handled)

	result := resultModel.(*model)
	be.Equal(t, banking, result.sessionState)
}

func TestFailedDepositLeavesStateUnchanged(t *testing.T) {
	var calls atomic.Int64
	m := newTestModel(t, bankingAPIStub(&calls))
	m.sessionState = banking
	m.inFlight = 1

	result, cmd := m.handleDepositResult(depositResultMsg{amount: 50, err: errors.New("HTTP 400: Bad Request")})

	be.Equal(t, banking, result.sessionState)

	postMsg, ok := cmd().(messages.PostMsg)
	be.True(t, ok)
	be.Equal(t, messages.Error, postMsg.Severity)
}

func TestAuthenticatedOpsWithoutSessionIssueNoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	m := newTestModel(t, bankingAPIStub(&calls))

	tests := []struct {
		name string
		err  error
	}{
		{name: "deposit", err: m.depositCmd(50)().(depositResultMsg).err},
		{name: "withdraw", err: m.withdrawCmd(20)().(withdrawResultMsg).err},
		{name: "balance", err: m.balanceCmd()().(balanceResultMsg).err},
		{name: "transactions", err: m.transactionsCmd()().(transactionsResultMsg).err},
		{name: "refresh", err: m.refreshCmd()().(refreshResultMsg).err},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.True(t, errors.Is(tt.err, session.ErrNotAuthenticated))
		})
	}

	be.Equal(t, int64(0), calls.Load())
}

func TestEndToEndLoginAndDeposit(t *testing.T) {
	var calls atomic.Int64
	m := newTestModel(t, bankingAPIStub(&calls))

	// login: the API answers with the account's display values
	loginMsg, ok := m.loginCmd("alice", "pw")().(loginResultMsg)
	be.True(t, ok)
	be.NilErr(t, loginMsg.err)

	m, _ = m.handleLoginResult(loginMsg)
	be.Equal(t, banking, m.sessionState)

	view := m.View()
	be.True(t, strings.Contains(view, "alice"))
	be.True(t, strings.Contains(view, "100.00"))

	// deposit: the new balance from the API replaces the displayed one
	depositMsg, ok := m.depositCmd(50)().(depositResultMsg)
	be.True(t, ok)
	be.NilErr(t, depositMsg.err)
	be.Equal(t, 150.00, depositMsg.newBalance)

	m, cmd := m.handleDepositResult(depositMsg)
	be.Equal(t, banking, m.sessionState)
	be.True(t, strings.Contains(m.View(), "150.00"))

	// the success notice becomes visible once its post message lands
	resultModel, _ := m.Update(cmd())
	result, ok := resultModel.(model)
	be.True(t, ok)
	be.True(t, strings.Contains(result.View(), "Successfully deposited"))
}

func TestEndToEndTransactionsFlow(t *testing.T) {
	var calls atomic.Int64
	m := newTestModel(t, bankingAPIStub(&calls))

	loginMsg, ok := m.loginCmd("alice", "pw")().(loginResultMsg)
	be.True(t, ok)
	m, _ = m.handleLoginResult(loginMsg)

	txMsg, ok := m.transactionsCmd()().(transactionsResultMsg)
	be.True(t, ok)
	be.NilErr(t, txMsg.err)
	be.Equal(t, 1, len(txMsg.ts))

	m, _ = m.handleTransactionsResult(txMsg)
	be.Equal(t, bankingTransactions, m.sessionState)
	be.Equal(t, 1, m.history.Count())
	be.True(t, strings.Contains(m.View(), "+$50.00"))
}
