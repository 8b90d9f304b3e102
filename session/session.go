// Package session owns the client-side session for the stateless banking
// API. Because the API issues no token, the store keeps the submitted
// credentials in memory for the lifetime of the session and hands them to
// every authenticated call. Credentials live nowhere else and are never
// persisted.
package session

import (
	"context"
	"errors"

	"banktui/bankclient"
)

// ErrNotAuthenticated is returned when an authenticated operation is
// attempted with no active session. Callers must check this before making
// any network call.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session is the display state of the logged-in account. The balance is a
// cached copy of the API's answer, not a ledger.
type Session struct {
	Username string
	Balance  float64
}

// Store holds at most one session. The zero value is a logged-out store.
type Store struct {
	creds   *bankclient.Credentials
	session *Session
}

// NewStore returns an empty, logged-out store.
func NewStore() *Store {
	return &Store{}
}

// Login verifies the submitted credentials against the API. On success the
// submitted credentials become the stored credential for all subsequent
// authenticated calls and the returned username/balance become the session
// display values. On failure the store is left untouched and the error
// propagates unchanged.
//
// Logging in while already authenticated silently replaces the previous
// session; no explicit logout is required.
func (s *Store) Login(ctx context.Context, c *bankclient.Client, username, password string) (Session, error) {
	creds := bankclient.Credentials{Username: username, Password: password}

	resp, err := c.Login(ctx, creds)
	if err != nil {
		return Session{}, err
	}

	s.creds = &creds
	s.session = &Session{Username: resp.Username, Balance: resp.Balance}

	return *s.session, nil
}

// Logout unconditionally clears the stored session and credentials.
// Calling it with no active session is a no-op.
func (s *Store) Logout() {
	s.creds = nil
	s.session = nil
}

// Current returns the active session, if any.
func (s *Store) Current() (Session, bool) {
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// Credentials returns the stored credential for an authenticated call, or
// ErrNotAuthenticated when no session is active.
func (s *Store) Credentials() (bankclient.Credentials, error) {
	if s.creds == nil {
		return bankclient.Credentials{}, ErrNotAuthenticated
	}
	return *s.creds, nil
}

// SetBalance updates the cached balance after a deposit, withdrawal, or
// balance inquiry. It is a no-op when logged out, which can happen if a
// response resolves after the user logged out.
func (s *Store) SetBalance(balance float64) {
	if s.session == nil {
		return
	}
	s.session.Balance = balance
}
