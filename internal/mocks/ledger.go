package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/simaogato/moneytransfer/internal/domain"
)

// MockLedger is a mock implementation of domain.Ledger for testing
type MockLedger struct {
	mock.Mock
}

var _ domain.Ledger = (*MockLedger)(nil)

func (m *MockLedger) CreateAccount(id domain.AccountID) (domain.AccountID, error) {
	args := m.Called(id)
	return args.Get(0).(domain.AccountID), args.Error(1)
}

func (m *MockLedger) GetBalance(id domain.AccountID) (domain.Money, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return domain.Money{}, args.Error(1)
	}
	return args.Get(0).(domain.Money), args.Error(1)
}

func (m *MockLedger) Deposit(id domain.AccountID, amount domain.Money) error {
	args := m.Called(id, amount)
	return args.Error(0)
}

func (m *MockLedger) Withdraw(id domain.AccountID, amount domain.Money) error {
	args := m.Called(id, amount)
	return args.Error(0)
}

func (m *MockLedger) Transfer(from, to domain.AccountID, amount domain.Money) error {
	args := m.Called(from, to, amount)
	return args.Error(0)
}

// MoneyEq matches a Money argument by numeric value
func MoneyEq(raw string) interface{} {
	want := domain.MustMoney(raw)
	return mock.MatchedBy(func(m domain.Money) bool {
		return m.Equal(want)
	})
}
