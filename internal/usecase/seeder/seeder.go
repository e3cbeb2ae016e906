package seeder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/simaogato/moneytransfer/internal/domain"
)

// SeedAccount defines an account to be created at startup with an opening balance
type SeedAccount struct {
	ID             domain.AccountID
	OpeningBalance domain.Money
}

// Seeder creates the configured accounts in the ledger
type Seeder struct {
	ledger domain.Ledger
}

// NewSeeder creates a new Seeder instance
func NewSeeder(ledger domain.Ledger) *Seeder {
	return &Seeder{
		ledger: ledger,
	}
}

// Seed ensures every account exists.
// If an account doesn't exist, it is created and credited with its opening balance.
// Existing accounts are left untouched. Returns the number of accounts created.
func (s *Seeder) Seed(accounts []SeedAccount) (int, error) {
	created := 0
	for _, acc := range accounts {
		if _, err := s.ledger.CreateAccount(acc.ID); err != nil {
			if errors.Is(err, domain.ErrAccountExists) {
				continue
			}
			return created, err
		}
		created++

		if acc.OpeningBalance.IsZero() {
			continue
		}
		if err := s.ledger.Deposit(acc.ID, acc.OpeningBalance); err != nil {
			return created, fmt.Errorf("failed to credit opening balance of %s: %w", acc.ID, err)
		}
	}

	return created, nil
}

// ParseAccounts parses a comma separated list of "id" or "id:balance" items,
// e.g. "alice:100.00, bob". Empty input yields no accounts.
func ParseAccounts(raw string) ([]SeedAccount, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	seen := make(map[domain.AccountID]bool)
	accounts := make([]SeedAccount, 0)
	for _, item := range strings.Split(raw, ",") {
		idPart, balancePart, hasBalance := strings.Cut(strings.TrimSpace(item), ":")

		id := domain.AccountID(strings.TrimSpace(idPart))
		if err := id.Validate(); err != nil {
			return nil, fmt.Errorf("seed item %q: %w", item, err)
		}
		if seen[id] {
			return nil, fmt.Errorf("seed item %q: %w", item, domain.ErrAccountExists)
		}
		seen[id] = true

		balance := domain.Zero
		if hasBalance {
			parsed, err := domain.ParseMoney(strings.TrimSpace(balancePart))
			if err != nil {
				return nil, fmt.Errorf("seed item %q: %w", item, err)
			}
			balance = parsed
		}

		accounts = append(accounts, SeedAccount{ID: id, OpeningBalance: balance})
	}

	return accounts, nil
}
