package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

const (
	loginActionLogin    = "login"
	loginActionRegister = "register"
)

// newLoginForm builds the credentials form for the login section. The same
// form serves registration; the action select decides which call is made.
func newLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Validate(requireValue("username")),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(requireValue("password")),
			huh.NewSelect[string]().
				Key("action").
				Title("Action").
				Options(
					huh.NewOption("Login", loginActionLogin),
					huh.NewOption("Register", loginActionRegister),
				),
		),
	)
}

// newAmountForm builds the single-field amount form for deposits and
// withdrawals.
func newAmountForm(title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title(title).
				Placeholder("0.00").
				Validate(validateAmount),
		),
	)
}

func requireValue(field string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("please enter a %s", field)
		}
		return nil
	}
}

// validateAmount rejects non-numeric and non-positive amounts before any
// network call is made.
func validateAmount(v string) error {
	amount, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return errors.New("please enter a valid amount")
	}

	if amount <= 0 {
		return errors.New("amount must be greater than zero")
	}

	return nil
}
