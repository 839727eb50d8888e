// Package statement generates monthly account statements: the running
// transaction history through the end of the target month plus a single
// synthesized interest line computed by day-granular accrual.
package statement

import (
	"errors"
	"fmt"
	"time"

	"github.com/awesomegic/gicbank/internal/caldate"
	"github.com/awesomegic/gicbank/internal/interest"
	"github.com/awesomegic/gicbank/internal/ledger"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownAccount is returned when the account has no transactions.
	ErrUnknownAccount = errors.New("account does not exist")

	// ErrNotYetOpen is returned when the target month precedes the
	// account's first transaction.
	ErrNotYetOpen = errors.New("account was not created yet")
)

// InterestKind marks the synthesized accrued-interest statement line.
const InterestKind = "I"

// Line is one statement row. Real transactions carry their ledger kind
// and id; the interest line has kind "I" and an empty id.
type Line struct {
	Date    caldate.Date    `json:"date"`
	ID      string          `json:"id,omitempty"`
	Kind    string          `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Balance decimal.Decimal `json:"balance"`
}

// Statement is a monthly report for one account: the transaction history
// through the end of the month followed by the interest line.
type Statement struct {
	Account string     `json:"account"`
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Lines   []Line     `json:"lines"`
}

// Generator reads the ledger and the rate table to build statements. It
// never mutates either store.
type Generator struct {
	Book  *ledger.Book
	Rates *interest.RateTable
}

// Generate builds the statement for one account and month. The account
// must exist and must have opened no later than the target month.
func (g *Generator) Generate(account string, year int, month time.Month) (*Statement, error) {
	all := g.Book.Transactions(account)
	if all == nil {
		return nil, fmt.Errorf("account %s does not exists: %w", account, ErrUnknownAccount)
	}
	targetYM := fmt.Sprintf("%04d%02d", year, int(month))
	if all[0].Date.YearMonth() > targetYM {
		return nil, fmt.Errorf("account %s was not created yet: %w", account, ErrNotYetOpen)
	}

	daysInMonth := caldate.DaysIn(year, month)
	boundary := caldate.MonthEnd(year, month)

	// Statement history runs through the end of the target month; the
	// rule timeline is cut strictly before the boundary.
	txns := all
	for len(txns) > 0 && txns[len(txns)-1].Date.After(boundary) {
		txns = txns[:len(txns)-1]
	}
	rules := g.Rates.RulesBefore(boundary)

	accrued := accrue(txns, rules, year, month, daysInMonth)
	final := accrued.
		Div(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(caldate.DaysInYear(year))))

	lines := make([]Line, 0, len(txns)+1)
	for _, t := range txns {
		lines = append(lines, Line{Date: t.Date, ID: t.ID, Kind: string(t.Kind), Amount: t.Amount, Balance: t.Balance})
	}
	lines = append(lines, Line{
		Date:    boundary,
		Kind:    InterestKind,
		Amount:  final,
		Balance: txns[len(txns)-1].Balance.Add(final),
	})

	return &Statement{Account: account, Year: year, Month: month, Lines: lines}, nil
}

// accrue walks the days of the target month backward with two cursors:
// one over the date-descending transactions, one over the date-descending
// rule timeline. Each cursor only ever moves backward, so every day is a
// constant-time step. It returns the sum of balance*rate over the accrual
// days, before the /100 and per-annum division.
func accrue(txns []ledger.Transaction, rules []interest.Rule, year int, month time.Month, daysInMonth int) decimal.Decimal {
	ti := len(txns) - 1
	ri := len(rules) - 1

	total := decimal.Zero
	for day := daysInMonth; day >= 1; day-- {
		d := caldate.New(year, month, day)

		// Land the rule cursor on the latest rule effective on or
		// before this day. Days before the first-ever rule earn
		// nothing, and neither can any earlier day.
		for ri >= 0 && rules[ri].Date.After(d) {
			ri--
		}
		if ri < 0 {
			break
		}

		// The balance in effect on day d is the one carried by the
		// most recent transaction not later than d.
		if !txns[ti].Date.After(d) {
			total = total.Add(txns[ti].Balance.Mul(rules[ri].Rate))
		}

		// Step past today's transactions so the next day back sees the
		// balance that preceded them. An exhausted cursor means the
		// account did not exist yet.
		for ti >= 0 && txns[ti].Date == d {
			ti--
		}
		if ti < 0 {
			break
		}
	}
	return total
}
