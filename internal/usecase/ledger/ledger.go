package ledger

import (
	"fmt"
	"sync"

	"github.com/simaogato/moneytransfer/internal/domain"
)

// Ledger is the in-memory store of account balances.
// Mutations (create, deposit, withdraw, transfer) run under the write lock and are
// totally ordered; balance reads share the read lock.
type Ledger struct {
	mu       sync.RWMutex
	balances map[domain.AccountID]domain.Money
}

var _ domain.Ledger = (*Ledger)(nil)

// New creates an empty Ledger
func New() *Ledger {
	return &Ledger{
		balances: make(map[domain.AccountID]domain.Money),
	}
}

// CreateAccount registers id with a zero balance
func (l *Ledger) CreateAccount(id domain.AccountID) (domain.AccountID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.balances[id]; ok {
		return "", fmt.Errorf("%w: %s", domain.ErrAccountExists, id)
	}

	l.balances[id] = domain.Zero
	return id, nil
}

// GetBalance returns the current balance of id
func (l *Ledger) GetBalance(id domain.AccountID) (domain.Money, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.balanceLocked(id)
}

// Deposit adds amount to the balance of id
func (l *Ledger) Deposit(id domain.AccountID, amount domain.Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance, err := l.balanceLocked(id)
	if err != nil {
		return err
	}

	l.balances[id] = balance.Plus(amount)
	return nil
}

// Withdraw removes amount from the balance of id
// Logic:
//  1. Check the account exists
//  2. Check the balance covers amount
//  3. Store balance - amount
func (l *Ledger) Withdraw(id domain.AccountID, amount domain.Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance, err := l.balanceLocked(id)
	if err != nil {
		return err
	}

	remaining, err := debit(id, balance, amount)
	if err != nil {
		return err
	}

	l.balances[id] = remaining
	return nil
}

// Transfer moves amount from one account to another
// Logic (any failing step aborts with no mutation):
//  1. Check the source account exists
//  2. Check the source balance covers amount
//  3. Check the destination account exists
//  4. Debit the source, then credit the destination
//
// Both writes happen under the same write lock, so no reader sees only one side.
func (l *Ledger) Transfer(from, to domain.AccountID, amount domain.Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	fromBalance, err := l.balanceLocked(from)
	if err != nil {
		return err
	}

	remaining, err := debit(from, fromBalance, amount)
	if err != nil {
		return err
	}

	if _, err := l.balanceLocked(to); err != nil {
		return err
	}

	l.balances[from] = remaining
	// Re-read after the debit so that from == to nets out to no change
	l.balances[to] = l.balances[to].Plus(amount)

	return nil
}

// Accounts returns the number of accounts in the ledger
func (l *Ledger) Accounts() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.balances)
}

// balanceLocked looks up id. The caller must hold l.mu.
func (l *Ledger) balanceLocked(id domain.AccountID) (domain.Money, error) {
	balance, ok := l.balances[id]
	if !ok {
		return domain.Money{}, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}
	return balance, nil
}

// debit checks that balance covers amount and returns the remaining balance
func debit(id domain.AccountID, balance, amount domain.Money) (domain.Money, error) {
	if balance.LessThan(amount) {
		return domain.Money{}, fmt.Errorf("%w: account %s holds %s, requested %s",
			domain.ErrInsufficientFunds, id, balance, amount)
	}

	// Cannot fail after the sufficiency check; Minus still guards non-negativity
	return balance.Minus(amount)
}
