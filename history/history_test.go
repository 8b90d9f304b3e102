package history

import (
	"testing"

	"github.com/carlmjohnson/be"

	"banktui/bankclient"
)

func TestRowsEmptyInputYieldsPlaceholder(t *testing.T) {
	rows := Rows(nil)

	be.Equal(t, 1, len(rows))
	be.Equal(t, KindPlaceholder, rows[0].Kind)
	be.Equal(t, NoTransactionsLabel, rows[0].Label)
}

func TestRowsClassification(t *testing.T) {
	tests := []struct {
		name       string
		tx         bankclient.Transaction
		wantKind   Kind
		wantAmount string
	}{
		{
			name:       "uppercase deposit",
			tx:         bankclient.Transaction{Type: "DEPOSIT", Amount: 50, Timestamp: "2024-01-01T10:00:00"},
			wantKind:   KindDeposit,
			wantAmount: "+$50.00",
		},
		{
			name:       "withdrawal",
			tx:         bankclient.Transaction{Type: "Withdrawal", Amount: 20, Timestamp: "2024-01-02T11:30:00"},
			wantKind:   KindWithdrawal,
			wantAmount: "-$20.00",
		},
		{
			name:       "deposit as substring of free text",
			tx:         bankclient.Transaction{Type: "Initial deposit bonus", Amount: 5, Timestamp: "2024-01-03"},
			wantKind:   KindDeposit,
			wantAmount: "+$5.00",
		},
		{
			name:       "unknown type treated as withdrawal",
			tx:         bankclient.Transaction{Type: "fee", Amount: 1.5, Timestamp: "2024-01-04"},
			wantKind:   KindWithdrawal,
			wantAmount: "-$1.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Rows([]bankclient.Transaction{tt.tx})

			be.Equal(t, 1, len(rows))
			be.Equal(t, tt.wantKind, rows[0].Kind)
			be.Equal(t, tt.wantAmount, rows[0].Amount)
		})
	}
}

func TestRowsAmountAlwaysTwoDecimals(t *testing.T) {
	rows := Rows([]bankclient.Transaction{
		{Type: "deposit", Amount: 100, Timestamp: "2024-01-01"},
	})

	be.Equal(t, "+$100.00", rows[0].Amount)
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "iso without zone",
			raw:  "2024-01-15T14:30:00",
			want: "Jan 15, 2024 2:30 PM",
		},
		{
			name: "date only",
			raw:  "2024-06-01",
			want: "Jun 1, 2024 12:00 AM",
		},
		{
			name: "unparseable string shown verbatim",
			raw:  "last tuesday-ish",
			want: "last tuesday-ish",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.want, formatTimestamp(tt.raw))
		})
	}
}

func TestAllIsRestartable(t *testing.T) {
	ts := []bankclient.Transaction{
		{Type: "deposit", Amount: 1, Timestamp: "2024-01-01"},
		{Type: "withdrawal", Amount: 2, Timestamp: "2024-01-02"},
	}

	seq := All(ts)

	var first, second int
	for range seq {
		first++
	}
	for range seq {
		second++
	}

	be.Equal(t, 2, first)
	be.Equal(t, first, second)
}

func TestAllStopsWhenYieldReturnsFalse(t *testing.T) {
	ts := []bankclient.Transaction{
		{Type: "deposit", Amount: 1, Timestamp: "2024-01-01"},
		{Type: "withdrawal", Amount: 2, Timestamp: "2024-01-02"},
	}

	var seen int
	for range All(ts) {
		seen++
		break
	}

	be.Equal(t, 1, seen)
}

func TestModelSetTransactions(t *testing.T) {
	m := New()

	m.SetTransactions(Rows([]bankclient.Transaction{
		{Type: "DEPOSIT", Amount: 50, Timestamp: "2024-01-01T10:00:00"},
	}))

	be.Equal(t, 1, m.Count())
	be.Nonzero(t, m.View())
}
