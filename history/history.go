// Package history turns the API's transaction list into display rows for
// the transactions section.
package history

import (
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"banktui/bankclient"
)

var titleCaser = cases.Title(language.English)

// timestamp layouts the API has been seen to produce, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Kind classifies a row for styling.
type Kind int

const (
	// KindPlaceholder marks the single row shown when there are no
	// transactions.
	KindPlaceholder Kind = iota
	KindDeposit
	KindWithdrawal
)

// Row is one renderable line of transaction history.
type Row struct {
	Kind   Kind
	Label  string
	Amount string
	When   string
}

// NoTransactionsLabel is the placeholder shown for an empty history.
const NoTransactionsLabel = "No transactions found."

// All yields one row per transaction, in input order. The sequence is pure
// and restartable. An empty input yields a single placeholder row rather
// than nothing, so the section always has something to show.
func All(ts []bankclient.Transaction) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		if len(ts) == 0 {
			yield(Row{Kind: KindPlaceholder, Label: NoTransactionsLabel})
			return
		}

		for _, t := range ts {
			if !yield(render(t)) {
				return
			}
		}
	}
}

// Rows collects All into a slice.
func Rows(ts []bankclient.Transaction) []Row {
	return slices.Collect(All(ts))
}

func render(t bankclient.Transaction) Row {
	kind := KindWithdrawal
	prefix := "-"
	// the API's type field is free text; anything mentioning "deposit"
	// counts as one, everything else displays as a withdrawal
	if strings.Contains(strings.ToLower(t.Type), "deposit") {
		kind = KindDeposit
		prefix = "+"
	}

	return Row{
		Kind:   kind,
		Label:  titleCaser.String(strings.ToLower(t.Type)),
		Amount: prefix + money.NewFromFloat(t.Amount, money.USD).Display(),
		When:   formatTimestamp(t.Timestamp),
	}
}

// formatTimestamp renders a parseable timestamp in a readable local form
// and falls back to the raw string verbatim when parsing fails.
func formatTimestamp(raw string) string {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format("Jan 2, 2006 3:04 PM")
		}
	}
	return raw
}
