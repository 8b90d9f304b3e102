package main

const standardMargin = 2

// Session states. Exactly one section is visible at a time; the only way to
// move between them is through the transitions in the result handlers and
// key handlers.
type sessionState int

const (
	loggedOut sessionState = iota
	banking
	bankingTransactions
)

func (ss sessionState) String() string {
	switch ss {
	case loggedOut:
		return "login"
	case banking:
		return "account"
	case bankingTransactions:
		return "transactions"
	}

	return "unknown"
}

// Pending amount operations.
type operation int

const (
	opNone operation = iota
	opDeposit
	opWithdraw
)
