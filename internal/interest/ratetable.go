// Package interest holds the time-versioned interest rules: each rule id
// denotes one fixed annual rate for its lifetime, and a date-ordered
// timeline records which rule takes effect from which day onward.
package interest

import (
	"errors"
	"fmt"
	"sort"

	"github.com/awesomegic/gicbank/internal/caldate"
	"github.com/shopspring/decimal"
)

var (
	// ErrRateOutOfRange is returned when a rate is not strictly between
	// 0 and 100.
	ErrRateOutOfRange = errors.New("interest rate out of range")

	// ErrRuleConflict is returned when an existing rule id is redefined
	// with a different rate.
	ErrRuleConflict = errors.New("interest rule already exists with a different rate")
)

// Rule is one resolved timeline entry: the rule in effect from Date until
// superseded by a later entry.
type Rule struct {
	Date   caldate.Date    `json:"date"`
	RuleID string          `json:"rule_id"`
	Rate   decimal.Decimal `json:"rate"`
}

// timelineEntry binds an effective date to a rule id. Rates live in the
// separate per-rule map so redefinitions of a rule id stay consistent.
type timelineEntry struct {
	date   caldate.Date
	ruleID string
}

// RateTable owns the rule rates and their effective-date timeline. The
// timeline is kept sorted on insert so reads never need to re-sort.
type RateTable struct {
	rates    map[string]decimal.Decimal
	timeline []timelineEntry
}

// NewRateTable creates an empty rate table.
func NewRateTable() *RateTable {
	return &RateTable{rates: make(map[string]decimal.Decimal)}
}

var hundred = decimal.NewFromInt(100)

// Define stores or confirms the rate for ruleID and makes it the rule in
// effect from date onward. Redefining a rule id with its existing rate is
// idempotent; a later Define for the same date replaces that date's rule.
// On success it returns the full resolved timeline in date order.
func (t *RateTable) Define(date caldate.Date, ruleID string, rate decimal.Decimal) ([]Rule, error) {
	if existing, ok := t.rates[ruleID]; ok && !existing.Equal(rate) {
		return nil, fmt.Errorf("rule %s already exists with a rate of %s%%: %w", ruleID, existing, ErrRuleConflict)
	}
	if rate.LessThanOrEqual(decimal.Zero) || rate.GreaterThanOrEqual(hundred) {
		return nil, fmt.Errorf("interest rate should be greater than 0 and less than 100: %w", ErrRateOutOfRange)
	}

	t.rates[ruleID] = rate

	i := sort.Search(len(t.timeline), func(i int) bool {
		return !t.timeline[i].date.Before(date)
	})
	switch {
	case i < len(t.timeline) && t.timeline[i].date == date:
		// Last write for a date wins.
		t.timeline[i].ruleID = ruleID
	default:
		t.timeline = append(t.timeline, timelineEntry{})
		copy(t.timeline[i+1:], t.timeline[i:])
		t.timeline[i] = timelineEntry{date: date, ruleID: ruleID}
	}

	return t.Rules(), nil
}

// Rules returns the full resolved timeline in ascending date order.
func (t *RateTable) Rules() []Rule {
	out := make([]Rule, len(t.timeline))
	for i, e := range t.timeline {
		out[i] = Rule{Date: e.date, RuleID: e.ruleID, Rate: t.rates[e.ruleID]}
	}
	return out
}

// RulesBefore returns the resolved timeline entries strictly before
// boundary, in ascending date order.
func (t *RateTable) RulesBefore(boundary caldate.Date) []Rule {
	n := sort.Search(len(t.timeline), func(i int) bool {
		return !t.timeline[i].date.Before(boundary)
	})
	out := make([]Rule, n)
	for i, e := range t.timeline[:n] {
		out[i] = Rule{Date: e.date, RuleID: e.ruleID, Rate: t.rates[e.ruleID]}
	}
	return out
}
