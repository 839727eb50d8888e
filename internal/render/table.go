// Package render formats core results as the console tables the
// interactive session prints. Column widths follow the data: amount and
// balance columns grow to fit the widest 2-decimal value.
package render

import (
	"fmt"
	"strings"

	"github.com/awesomegic/gicbank/internal/interest"
	"github.com/awesomegic/gicbank/internal/ledger"
	"github.com/awesomegic/gicbank/internal/statement"
)

const (
	dateWidth = 8  // YYYYMMDD
	idWidth   = 11 // YYYYMMDD-NN
	typeWidth = 4
)

// TransactionTable renders an account's transaction history.
func TransactionTable(account string, txns []ledger.Transaction) string {
	amountWidth := len("Amount")
	for _, t := range txns {
		amountWidth = max(amountWidth, len(t.Amount.StringFixed(2)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Account: %s\n", account)
	fmt.Fprintf(&b, "| %-*s | %-*s | %-*s | %-*s |\n", dateWidth, "Date", idWidth, "Txn Id", typeWidth, "Type", amountWidth, "Amount")
	for _, t := range txns {
		fmt.Fprintf(&b, "| %s | %s | %-*s | %*s |\n", t.Date, t.ID, typeWidth, t.Kind, amountWidth, t.Amount.StringFixed(2))
	}
	return b.String()
}

// RuleTable renders the interest-rule timeline.
func RuleTable(rules []interest.Rule) string {
	ruleIDWidth := len("RuleId")
	rateWidth := len("Rate (%)")
	for _, r := range rules {
		ruleIDWidth = max(ruleIDWidth, len(r.RuleID))
		rateWidth = max(rateWidth, len(r.Rate.StringFixed(2)))
	}

	var b strings.Builder
	b.WriteString("Interest rules:\n")
	fmt.Fprintf(&b, "| %-*s | %-*s | %-*s |\n", dateWidth, "Date", ruleIDWidth, "RuleId", rateWidth, "Rate (%)")
	for _, r := range rules {
		fmt.Fprintf(&b, "| %s | %-*s | %*s |\n", r.Date, ruleIDWidth, r.RuleID, rateWidth, r.Rate.StringFixed(2))
	}
	return b.String()
}

// StatementTable renders a monthly statement, interest line included.
func StatementTable(st *statement.Statement) string {
	amountWidth := len("Amount")
	balanceWidth := len("Balance")
	for _, l := range st.Lines {
		amountWidth = max(amountWidth, len(l.Amount.StringFixed(2)))
		balanceWidth = max(balanceWidth, len(l.Balance.StringFixed(2)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Account: %s\n", st.Account)
	fmt.Fprintf(&b, "| %-*s | %-*s | %-*s | %-*s | %-*s |\n", dateWidth, "Date", idWidth, "Txn Id", typeWidth, "Type", amountWidth, "Amount", balanceWidth, "Balance")
	for _, l := range st.Lines {
		fmt.Fprintf(&b, "| %s | %-*s | %-*s | %*s | %*s |\n",
			l.Date, idWidth, l.ID, typeWidth, l.Kind,
			amountWidth, l.Amount.StringFixed(2), balanceWidth, l.Balance.StringFixed(2))
	}
	return b.String()
}
