// Package ledger holds the in-memory transaction ledger: one append-only,
// date-ordered sequence of transactions per account, with the running
// balance and sequence-id invariants enforced on every append.
package ledger

import (
	"fmt"

	"github.com/awesomegic/gicbank/internal/caldate"
	"github.com/shopspring/decimal"
)

// Kind identifies the direction of a transaction.
type Kind string

const (
	// Deposit adds to the account balance.
	Deposit Kind = "D"
	// Withdrawal subtracts from the account balance.
	Withdrawal Kind = "W"
)

// dailyLimit caps the number of transactions per account per calendar day.
const dailyLimit = 99

// Transaction is one immutable ledger entry. Balance is the running
// balance after this transaction was applied.
type Transaction struct {
	Date    caldate.Date    `json:"date"`
	ID      string          `json:"id"`
	Kind    Kind            `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Balance decimal.Decimal `json:"balance"`

	// seq is the numeric counter behind ID, kept so the next same-day
	// append does not have to parse it back out of the string.
	seq int
}

// Book is the ledger: per-account transaction sequences keyed by the
// external account id. The zero value is not usable; call NewBook.
type Book struct {
	accounts map[string][]Transaction
}

// NewBook creates an empty ledger.
func NewBook() *Book {
	return &Book{accounts: make(map[string][]Transaction)}
}

// Append validates and records one transaction for the given account,
// creating the account on first deposit. On success it returns a copy of
// the account's full transaction history; on failure nothing is mutated.
func (b *Book) Append(account string, date caldate.Date, kind Kind, amount decimal.Decimal) ([]Transaction, error) {
	txns, ok := b.accounts[account]
	if !ok {
		if kind == Withdrawal {
			return nil, fmt.Errorf("%s is a new account and the first transaction should be a deposit: %w", account, ErrFirstDeposit)
		}
		b.accounts[account] = []Transaction{{
			Date:    date,
			ID:      sequenceID(date, 1),
			Kind:    kind,
			Amount:  amount,
			Balance: amount,
			seq:     1,
		}}
		return b.Transactions(account), nil
	}

	last := txns[len(txns)-1]
	if date.Before(last.Date) {
		return nil, fmt.Errorf("transaction date must be later or equal to %s: %w", last.Date, ErrDateOrder)
	}

	seq := 1
	if date == last.Date {
		seq = last.seq + 1
		if seq > dailyLimit {
			return nil, fmt.Errorf("daily transaction limit (%d) reached for account %s on %s: %w", dailyLimit, account, date, ErrDailyLimit)
		}
	}

	balance := last.Balance
	if kind == Withdrawal {
		if amount.GreaterThan(balance) {
			return nil, fmt.Errorf("account %s does not have enough balance for withdrawal: %w", account, ErrInsufficientBalance)
		}
		balance = balance.Sub(amount)
	} else {
		balance = balance.Add(amount)
	}

	b.accounts[account] = append(txns, Transaction{
		Date:    date,
		ID:      sequenceID(date, seq),
		Kind:    kind,
		Amount:  amount,
		Balance: balance,
		seq:     seq,
	})
	return b.Transactions(account), nil
}

// Transactions returns a copy of the account's transaction history in
// append order, or nil if the account does not exist.
func (b *Book) Transactions(account string) []Transaction {
	txns, ok := b.accounts[account]
	if !ok {
		return nil
	}
	out := make([]Transaction, len(txns))
	copy(out, txns)
	return out
}

// sequenceID renders the "{date}-{NN}" transaction id.
func sequenceID(date caldate.Date, seq int) string {
	return fmt.Sprintf("%s-%02d", date, seq)
}
