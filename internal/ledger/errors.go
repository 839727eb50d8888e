package ledger

import "errors"

var (
	// ErrFirstDeposit is returned when the first transaction for a new
	// account is a withdrawal.
	ErrFirstDeposit = errors.New("first transaction must be a deposit")

	// ErrDateOrder is returned when a transaction is dated before the
	// account's most recent transaction.
	ErrDateOrder = errors.New("transaction date precedes last transaction")

	// ErrDailyLimit is returned when an account already has 99
	// transactions on the given date.
	ErrDailyLimit = errors.New("daily transaction limit reached")

	// ErrInsufficientBalance is returned when a withdrawal exceeds the
	// current balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)
