package console

import (
	"errors"
	"testing"
	"time"

	"github.com/awesomegic/gicbank/internal/ledger"
)

func TestParseTransactionInput(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"valid deposit", "20230626 AC001 D 100.00", nil},
		{"valid withdrawal lowercase", "20230626 AC001 w 25.5", nil},
		{"too few fields", "20230626 AC001 D", ErrTransactionFormat},
		{"too many fields", "20230626 AC001 D 100 extra", ErrTransactionFormat},
		{"short date", "2023066 AC001 D 100", ErrDateFormat},
		{"impossible date", "20230631 AC001 D 100", ErrDateValue},
		{"bad type", "20230626 AC001 X 100", ErrType},
		{"zero amount", "20230626 AC001 D 0", ErrAmountValue},
		{"negative amount", "20230626 AC001 D -5", ErrAmountValue},
		{"non numeric amount", "20230626 AC001 D ten", ErrAmountValue},
		{"three decimals", "20230626 AC001 D 1.999", ErrAmountPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseTransactionInput(tt.line)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseTransactionInput(%q) error = %v, expected %v", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTransactionInput(%q): %v", tt.line, err)
			}
			if in.Kind != ledger.Deposit && in.Kind != ledger.Withdrawal {
				t.Errorf("Kind = %q after parsing", in.Kind)
			}
		})
	}
}

func TestParseTransactionInputNormalizesType(t *testing.T) {
	in, err := ParseTransactionInput("20230626 AC001 d 100")
	if err != nil {
		t.Fatal(err)
	}
	if in.Kind != ledger.Deposit {
		t.Errorf("Kind = %q, expected D", in.Kind)
	}
}

func TestParseRuleInput(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"valid", "20230615 RULE03 2.20", nil},
		{"wrong field count", "20230615 RULE03", ErrRuleFormat},
		{"bad date", "20231315 RULE03 2.20", ErrDateValue},
		{"non numeric rate", "20230615 RULE03 high", ErrRateValue},
		// Out-of-range rates pass here; the rate table owns that check.
		{"out of range rate", "20230615 RULE03 250", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseRuleInput(tt.line)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseRuleInput(%q) error = %v, expected %v", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRuleInput(%q): %v", tt.line, err)
			}
			if in.RuleID == "" {
				t.Error("RuleID empty after parsing")
			}
		})
	}
}

func TestParseStatementInput(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"valid", "AC001 202306", nil},
		{"wrong field count", "AC001", ErrStatementFormat},
		{"short month", "AC001 20236", ErrMonthFormat},
		{"bad month", "AC001 202313", ErrMonthValue},
		{"non numeric", "AC001 2023XY", ErrMonthValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseStatementInput(tt.line)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseStatementInput(%q) error = %v, expected %v", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatementInput(%q): %v", tt.line, err)
			}
			if in.Year != 2023 || in.Month != time.June {
				t.Errorf("parsed %d-%v, expected 2023-June", in.Year, in.Month)
			}
		})
	}
}
