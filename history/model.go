package history

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the transactions section: a scrollable table of display rows.
type Model struct {
	historyTable table.Model
	count        int
}

// New creates an empty transactions view.
func New() Model {
	historyTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Type", Width: 24},
			{Title: "Date", Width: 28},
			{Title: "Amount", Width: 14},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color("#ffd644"))

	historyTable.SetStyles(tableStyle)

	return Model{historyTable: historyTable}
}

// SetTransactions replaces the table contents with rendered rows.
func (m *Model) SetTransactions(rows []Row) {
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row{r.Label, r.When, r.Amount}
	}

	m.count = len(rows)
	m.historyTable.SetRows(tableRows)
}

// Count returns the number of rows currently shown, the placeholder
// included.
func (m *Model) Count() int { return m.count }

// SetFocus sets the focus state of the table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.historyTable.Focus()
	} else {
		m.historyTable.Blur()
	}
}

// SetSize sets the size of the table.
func (m *Model) SetSize(width, height int) {
	m.historyTable.SetWidth(width)
	m.historyTable.SetHeight(height)
}

// Init initializes the transactions view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the transactions view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.historyTable, cmd = m.historyTable.Update(msg)
	return m, cmd
}

// View renders the transactions view.
func (m Model) View() string {
	return m.historyTable.View()
}
