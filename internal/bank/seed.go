package bank

import (
	"fmt"
	"os"

	"github.com/awesomegic/gicbank/internal/caldate"
	"github.com/awesomegic/gicbank/internal/ledger"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Seed describes demo data applied at startup. Entries go through the
// normal Append/Define operations, so a seed file cannot violate any
// ledger invariant; it is not a persistence format.
type Seed struct {
	Rules        []SeedRule        `yaml:"rules"`
	Transactions []SeedTransaction `yaml:"transactions"`
}

// SeedRule is one interest rule in a seed file.
type SeedRule struct {
	Date   string `yaml:"date"`
	RuleID string `yaml:"rule_id"`
	Rate   string `yaml:"rate"`
}

// SeedTransaction is one ledger transaction in a seed file.
type SeedTransaction struct {
	Date    string `yaml:"date"`
	Account string `yaml:"account"`
	Type    string `yaml:"type"`
	Amount  string `yaml:"amount"`
}

// ReadSeedFile parses a YAML seed file.
func ReadSeedFile(path string) (Seed, error) {
	var seed Seed
	data, err := os.ReadFile(path)
	if err != nil {
		return seed, fmt.Errorf("failed to read seed file: %w", err)
	}
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return seed, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return seed, nil
}

// ApplySeed replays the seed entries through the service, rules first so
// seeded transactions can accrue interest from their first statement.
func (s *Service) ApplySeed(seed Seed) error {
	for _, r := range seed.Rules {
		date, err := caldate.Parse(r.Date)
		if err != nil {
			return fmt.Errorf("seed rule %s: %w", r.RuleID, err)
		}
		rate, err := decimal.NewFromString(r.Rate)
		if err != nil {
			return fmt.Errorf("seed rule %s: invalid rate %q", r.RuleID, r.Rate)
		}
		if _, err := s.DefineRule(date, r.RuleID, rate); err != nil {
			return fmt.Errorf("seed rule %s: %w", r.RuleID, err)
		}
	}
	for _, t := range seed.Transactions {
		date, err := caldate.Parse(t.Date)
		if err != nil {
			return fmt.Errorf("seed transaction for %s: %w", t.Account, err)
		}
		amount, err := decimal.NewFromString(t.Amount)
		if err != nil {
			return fmt.Errorf("seed transaction for %s: invalid amount %q", t.Account, t.Amount)
		}
		kind := ledger.Kind(t.Type)
		if kind != ledger.Deposit && kind != ledger.Withdrawal {
			return fmt.Errorf("seed transaction for %s: invalid type %q", t.Account, t.Type)
		}
		if _, err := s.InputTransaction(t.Account, date, kind, amount); err != nil {
			return fmt.Errorf("seed transaction for %s: %w", t.Account, err)
		}
	}
	return nil
}
