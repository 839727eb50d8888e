package interest

import (
	"errors"
	"strings"
	"testing"

	"github.com/awesomegic/gicbank/internal/caldate"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDefineRateRange(t *testing.T) {
	tests := []struct {
		name    string
		rate    string
		wantErr bool
	}{
		{"small positive", "0.01", false},
		{"typical", "1.90", false},
		{"just under cap", "99.99", false},
		{"zero", "0", true},
		{"negative", "-1", true},
		{"exactly 100", "100", true},
		{"above 100", "100.01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewRateTable()
			_, err := table.Define("20230101", "RULE01", dec(tt.rate))
			if tt.wantErr {
				if !errors.Is(err, ErrRateOutOfRange) {
					t.Errorf("Define(rate=%s) expected ErrRateOutOfRange, got %v", tt.rate, err)
				}
				if len(table.Rules()) != 0 {
					t.Error("rejected rule must not enter the timeline")
				}
				return
			}
			if err != nil {
				t.Errorf("Define(rate=%s) unexpected error: %v", tt.rate, err)
			}
		})
	}
}

func TestDefineRuleConflict(t *testing.T) {
	table := NewRateTable()
	if _, err := table.Define("20230520", "RULE02", dec("1.90")); err != nil {
		t.Fatal(err)
	}

	// Redefining with the identical rate is idempotent.
	rules, err := table.Define("20230615", "RULE02", dec("1.9"))
	if err != nil {
		t.Fatalf("idempotent redefinition: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 timeline entries, got %d", len(rules))
	}

	// A different rate for the same id is rejected and reports the
	// stored rate.
	_, err = table.Define("20230701", "RULE02", dec("2.20"))
	if !errors.Is(err, ErrRuleConflict) {
		t.Fatalf("expected ErrRuleConflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "1.9") {
		t.Errorf("conflict error %q should report the existing rate", err.Error())
	}
	if len(table.Rules()) != 2 {
		t.Error("rejected redefinition must not mutate the timeline")
	}
}

func TestDefineTimelineOrderAndOverwrite(t *testing.T) {
	table := NewRateTable()
	for _, def := range []struct {
		date   string
		ruleID string
		rate   string
	}{
		{"20230615", "RULE03", "2.20"},
		{"20230101", "RULE01", "1.95"},
		{"20230520", "RULE02", "1.90"},
	} {
		if _, err := table.Define(caldate.Date(def.date), def.ruleID, dec(def.rate)); err != nil {
			t.Fatalf("Define(%s): %v", def.ruleID, err)
		}
	}

	rules := table.Rules()
	wantOrder := []string{"RULE01", "RULE02", "RULE03"}
	for i, want := range wantOrder {
		if rules[i].RuleID != want {
			t.Fatalf("timeline[%d] = %s, expected %s", i, rules[i].RuleID, want)
		}
	}

	// The last rule defined for a date wins.
	rules, err := table.Define("20230520", "RULE04", dec("2.00"))
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 3 {
		t.Fatalf("same-date redefinition must replace, got %d entries", len(rules))
	}
	if rules[1].RuleID != "RULE04" || !rules[1].Rate.Equal(dec("2.00")) {
		t.Errorf("timeline[1] = %s %s, expected RULE04 2.00", rules[1].RuleID, rules[1].Rate)
	}
}

func TestRulesBefore(t *testing.T) {
	table := NewRateTable()
	for _, def := range []struct {
		date   string
		ruleID string
	}{
		{"20230520", "RULE02"},
		{"20230615", "RULE03"},
		{"20230630", "RULE05"},
	} {
		if _, err := table.Define(caldate.Date(def.date), def.ruleID, dec("1.50")); err != nil {
			t.Fatal(err)
		}
	}

	// The boundary itself is excluded.
	rules := table.RulesBefore("20230630")
	if len(rules) != 2 {
		t.Fatalf("RulesBefore(20230630) returned %d entries, expected 2", len(rules))
	}
	if rules[1].RuleID != "RULE03" {
		t.Errorf("last entry = %s, expected RULE03", rules[1].RuleID)
	}

	if got := table.RulesBefore("20230101"); len(got) != 0 {
		t.Errorf("RulesBefore before first rule returned %d entries", len(got))
	}
}
