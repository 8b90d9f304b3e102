package main

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	switch m.sessionState {
	case loggedOut:
		b.WriteString(m.loginForm.View())
	case banking:
		b.WriteString(m.accountView())
	case bankingTransactions:
		b.WriteString(m.accountView())
		b.WriteString("\n\n")
		b.WriteString(m.history.View())
	}

	if notices := m.messages.View(); notices != "" {
		b.WriteString("\n\n")
		b.WriteString(notices)
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	parts := []string{
		m.styles.titleStyle.Render(fmt.Sprintf("banktui | %s", m.sessionState.String())),
		m.health.View(),
	}

	if m.inFlight > 0 {
		parts = append(parts, m.requestSpinner.View())
	}

	return strings.Join(parts, "  ")
}

func (m model) accountView() string {
	var b strings.Builder

	sess, ok := m.store.Current()
	if !ok {
		b.WriteString(m.styles.labelStyle.Render("No active session"))
		return b.String()
	}

	b.WriteString(m.styles.labelStyle.Render("Logged in as "))
	b.WriteString(sess.Username)
	b.WriteString("\n")
	b.WriteString(m.styles.labelStyle.Render("Balance: "))
	b.WriteString(m.styles.balanceStyle.Render(money.NewFromFloat(sess.Balance, money.USD).Display()))

	if m.amountForm != nil {
		b.WriteString("\n\n")
		b.WriteString(m.amountForm.View())
	}

	return b.String()
}
