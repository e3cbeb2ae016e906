package seeder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/moneytransfer/internal/domain"
	"github.com/simaogato/moneytransfer/internal/mocks"
	"github.com/simaogato/moneytransfer/internal/usecase/ledger"
)

func TestSeeder_Seed_AccountsMissing(t *testing.T) {
	mockLedger := new(mocks.MockLedger)
	seeder := NewSeeder(mockLedger)

	mockLedger.On("CreateAccount", domain.AccountID("alice")).Return(domain.AccountID("alice"), nil)
	mockLedger.On("CreateAccount", domain.AccountID("bob")).Return(domain.AccountID("bob"), nil)
	mockLedger.On("Deposit", domain.AccountID("alice"), mocks.MoneyEq("100.00")).Return(nil)

	// Execute
	created, err := seeder.Seed([]SeedAccount{
		{ID: "alice", OpeningBalance: domain.MustMoney("100")},
		{ID: "bob", OpeningBalance: domain.Zero},
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 2, created)
	mockLedger.AssertExpectations(t)
	// Zero opening balances are not deposited
	mockLedger.AssertNumberOfCalls(t, "Deposit", 1)
}

func TestSeeder_Seed_AccountsExist(t *testing.T) {
	mockLedger := new(mocks.MockLedger)
	seeder := NewSeeder(mockLedger)

	mockLedger.On("CreateAccount", domain.AccountID("alice")).
		Return(domain.AccountID(""), domain.ErrAccountExists)

	created, err := seeder.Seed([]SeedAccount{
		{ID: "alice", OpeningBalance: domain.MustMoney("100")},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, created)
	mockLedger.AssertExpectations(t)
	mockLedger.AssertNotCalled(t, "Deposit")
}

func TestSeeder_Seed_DepositFails(t *testing.T) {
	mockLedger := new(mocks.MockLedger)
	seeder := NewSeeder(mockLedger)

	depositErr := errors.New("boom")
	mockLedger.On("CreateAccount", domain.AccountID("alice")).Return(domain.AccountID("alice"), nil)
	mockLedger.On("Deposit", domain.AccountID("alice"), mocks.MoneyEq("1")).Return(depositErr)

	created, err := seeder.Seed([]SeedAccount{
		{ID: "alice", OpeningBalance: domain.MustMoney("1")},
		{ID: "bob"},
	})

	assert.ErrorIs(t, err, depositErr)
	assert.Equal(t, 1, created)
	mockLedger.AssertNotCalled(t, "CreateAccount", domain.AccountID("bob"))
}

func TestSeeder_Seed_RealLedgerIsIdempotent(t *testing.T) {
	l := ledger.New()
	seeder := NewSeeder(l)
	accounts := []SeedAccount{
		{ID: "alice", OpeningBalance: domain.MustMoney("12.34")},
		{ID: "bob"},
	}

	created, err := seeder.Seed(accounts)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	created, err = seeder.Seed(accounts)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	balance, err := l.GetBalance("alice")
	require.NoError(t, err)
	assert.Equal(t, "12.34", balance.String(), "second run must not credit again")
}

func TestParseAccounts(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantIDs  []domain.AccountID
		wantBals []string
		wantErr  error
	}{
		{
			name: "Empty input",
			raw:  "  ",
		},
		{
			name:     "Ids with and without balances",
			raw:      "alice:100.00, bob ,carol: 2.345",
			wantIDs:  []domain.AccountID{"alice", "bob", "carol"},
			wantBals: []string{"100.00", "0.00", "2.35"},
		},
		{
			name:    "Negative balance should fail",
			raw:     "alice:-1",
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "Malformed balance should fail",
			raw:     "alice:lots",
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "Empty id should fail",
			raw:     "alice,,bob",
			wantErr: domain.ErrInvalidAccountID,
		},
		{
			name:    "Duplicate id should fail",
			raw:     "alice,alice:5",
			wantErr: domain.ErrAccountExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts, err := ParseAccounts(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, accounts, len(tt.wantIDs))
			for i, acc := range accounts {
				assert.Equal(t, tt.wantIDs[i], acc.ID)
				assert.Equal(t, tt.wantBals[i], acc.OpeningBalance.String())
			}
		})
	}
}
