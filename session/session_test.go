package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/carlmjohnson/be"

	"banktui/bankclient"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*bankclient.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := bankclient.New(srv.URL + "/api/v1/banking")
	be.NilErr(t, err)

	return c, srv
}

func loginOKHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"username":"alice","balance":100.00}`))
}

func TestLoginStoresSessionAndCredentials(t *testing.T) {
	c, _ := newTestClient(t, loginOKHandler)
	store := NewStore()

	sess, err := store.Login(context.Background(), c, "alice", "pw")
	be.NilErr(t, err)
	be.Equal(t, Session{Username: "alice", Balance: 100.00}, sess)

	current, ok := store.Current()
	be.True(t, ok)
	be.Equal(t, "alice", current.Username)

	creds, err := store.Credentials()
	be.NilErr(t, err)
	be.Equal(t, bankclient.Credentials{Username: "alice", Password: "pw"}, creds)
}

func TestLoginFailureLeavesStoreUntouched(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	store := NewStore()

	_, err := store.Login(context.Background(), c, "alice", "wrong")

	var httpErr *bankclient.HTTPError
	be.True(t, errors.As(err, &httpErr))

	_, ok := store.Current()
	be.False(t, ok)

	_, err = store.Credentials()
	be.True(t, errors.Is(err, ErrNotAuthenticated))
}

func TestLogoutClearsSessionAndIsIdempotent(t *testing.T) {
	c, _ := newTestClient(t, loginOKHandler)
	store := NewStore()

	_, err := store.Login(context.Background(), c, "alice", "pw")
	be.NilErr(t, err)

	store.Logout()
	_, ok := store.Current()
	be.False(t, ok)

	// second logout with no active session is a no-op, not an error
	store.Logout()
	_, err = store.Credentials()
	be.True(t, errors.Is(err, ErrNotAuthenticated))
}

func TestReentrantLoginReplacesSession(t *testing.T) {
	var calls atomic.Int64
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		n := calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if n == 1 {
			_, _ = w.Write([]byte(`{"username":"alice","balance":100.00}`))
			return
		}
		_, _ = w.Write([]byte(`{"username":"bob","balance":7.00}`))
	})
	store := NewStore()

	_, err := store.Login(context.Background(), c, "alice", "pw")
	be.NilErr(t, err)

	sess, err := store.Login(context.Background(), c, "bob", "pw2")
	be.NilErr(t, err)
	be.Equal(t, "bob", sess.Username)

	creds, err := store.Credentials()
	be.NilErr(t, err)
	be.Equal(t, "bob", creds.Username)
	be.Equal(t, "pw2", creds.Password)
}

func TestCredentialsWithoutSessionIssuesNoNetworkCall(t *testing.T) {
	var calls atomic.Int64
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	})
	store := NewStore()

	// the guard runs before any request is attempted
	_, err := store.Credentials()
	be.True(t, errors.Is(err, ErrNotAuthenticated))
	be.Equal(t, int64(0), calls.Load())

	_ = c
}

func TestSetBalance(t *testing.T) {
	c, _ := newTestClient(t, loginOKHandler)
	store := NewStore()

	// no-op when logged out
	store.SetBalance(10)
	_, ok := store.Current()
	be.False(t, ok)

	_, err := store.Login(context.Background(), c, "alice", "pw")
	be.NilErr(t, err)

	store.SetBalance(150.00)
	sess, ok := store.Current()
	be.True(t, ok)
	be.Equal(t, 150.00, sess.Balance)
}
