// Package console implements the interactive banking session: input
// tokenizing, field-level validation and the prompt loop. The core stores
// only ever see inputs that passed the checks here.
package console

import (
	"errors"
	"strings"
	"time"

	"github.com/awesomegic/gicbank/internal/caldate"
	"github.com/awesomegic/gicbank/internal/ledger"
	"github.com/shopspring/decimal"
)

// Validation errors echo the prompt texts users see.
var (
	ErrTransactionFormat = errors.New("Invalid input format! Input has to be follow <Date> <Account> <Type> <Amount> format.")
	ErrRuleFormat        = errors.New("Invalid input format! Input has to be follow <Date> <RuleId> <Rate in %> format.")
	ErrStatementFormat   = errors.New("Invalid input format! Input has to be follow <Account> <Year><Month> format.")
	ErrDateFormat        = errors.New("Invalid date format! Date should be in YYYYMMDD format.")
	ErrDateValue         = errors.New("Date is invalid! Ensure that the date YYYYMMDD is valid.")
	ErrType              = errors.New("Invalid type! Type should only be 'D' for deposit or 'W' for withdrawal.")
	ErrAmountValue       = errors.New("Invalid amount! Amount should be a positive number.")
	ErrAmountPrecision   = errors.New("Invalid amount! Amount should not have more than 2 decimal places.")
	ErrRateValue         = errors.New("Invalid interest rate! Interest rate should be a number.")
	ErrMonthFormat       = errors.New("Invalid month format! Date should be in <YYYY><MM> format.")
	ErrMonthValue        = errors.New("Month is invalid! Ensure that the month YYYYMM is valid.")
)

// TransactionInput is a validated <Date> <Account> <Type> <Amount> entry.
type TransactionInput struct {
	Date    caldate.Date
	Account string
	Kind    ledger.Kind
	Amount  decimal.Decimal
}

// ParseTransactionInput tokenizes and validates a transaction entry.
func ParseTransactionInput(line string) (TransactionInput, error) {
	var in TransactionInput
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return in, ErrTransactionFormat
	}

	date, err := parseDate(fields[0])
	if err != nil {
		return in, err
	}

	kind := ledger.Kind(strings.ToUpper(fields[2]))
	if kind != ledger.Deposit && kind != ledger.Withdrawal {
		return in, ErrType
	}

	amount, err := decimal.NewFromString(fields[3])
	if err != nil || !amount.IsPositive() {
		return in, ErrAmountValue
	}
	if amount.Exponent() < -2 {
		return in, ErrAmountPrecision
	}

	in = TransactionInput{Date: date, Account: fields[1], Kind: kind, Amount: amount}
	return in, nil
}

// RuleInput is a validated <Date> <RuleId> <Rate in %> entry. Range
// checking stays with the rate table; only syntax is validated here.
type RuleInput struct {
	Date   caldate.Date
	RuleID string
	Rate   decimal.Decimal
}

// ParseRuleInput tokenizes and validates an interest-rule entry.
func ParseRuleInput(line string) (RuleInput, error) {
	var in RuleInput
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return in, ErrRuleFormat
	}

	date, err := parseDate(fields[0])
	if err != nil {
		return in, err
	}

	rate, err := decimal.NewFromString(fields[2])
	if err != nil {
		return in, ErrRateValue
	}

	in = RuleInput{Date: date, RuleID: fields[1], Rate: rate}
	return in, nil
}

// StatementInput is a validated <Account> <Year><Month> entry.
type StatementInput struct {
	Account string
	Year    int
	Month   time.Month
}

// ParseStatementInput tokenizes and validates a statement request.
func ParseStatementInput(line string) (StatementInput, error) {
	var in StatementInput
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return in, ErrStatementFormat
	}

	if len(fields[1]) != 6 {
		return in, ErrMonthFormat
	}
	year, month, err := caldate.ParseYearMonth(fields[1])
	if err != nil {
		return in, ErrMonthValue
	}

	in = StatementInput{Account: fields[0], Year: year, Month: month}
	return in, nil
}

func parseDate(s string) (caldate.Date, error) {
	if len(s) != 8 {
		return "", ErrDateFormat
	}
	date, err := caldate.Parse(s)
	if err != nil {
		return "", ErrDateValue
	}
	return date, nil
}
