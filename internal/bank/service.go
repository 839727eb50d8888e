// Package bank composes the ledger, the rate table and the statement
// generator into one explicitly owned unit of state. Every operation runs
// under a single mutex, so the HTTP facade observes the same strictly
// sequential semantics as the interactive console loop.
package bank

import (
	"sync"
	"time"

	"github.com/awesomegic/gicbank/internal/caldate"
	"github.com/awesomegic/gicbank/internal/interest"
	"github.com/awesomegic/gicbank/internal/ledger"
	"github.com/awesomegic/gicbank/internal/statement"
	"github.com/shopspring/decimal"
)

// Service owns all bank state for one process.
type Service struct {
	mu         sync.Mutex
	book       *ledger.Book
	rates      *interest.RateTable
	statements *statement.Generator
}

// New creates an empty bank.
func New() *Service {
	book := ledger.NewBook()
	rates := interest.NewRateTable()
	return &Service{
		book:       book,
		rates:      rates,
		statements: &statement.Generator{Book: book, Rates: rates},
	}
}

// InputTransaction appends one transaction and returns the account's full
// updated history.
func (s *Service) InputTransaction(account string, date caldate.Date, kind ledger.Kind, amount decimal.Decimal) ([]ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Append(account, date, kind, amount)
}

// DefineRule stores an interest rule and returns the full rule timeline.
func (s *Service) DefineRule(date caldate.Date, ruleID string, rate decimal.Decimal) ([]interest.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rates.Define(date, ruleID, rate)
}

// Statement generates the monthly statement for one account.
func (s *Service) Statement(account string, year int, month time.Month) (*statement.Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statements.Generate(account, year, month)
}
