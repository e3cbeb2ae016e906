package ledger

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/moneytransfer/internal/domain"
)

func TestConcurrentDeposits_NoLostUpdates(t *testing.T) {
	l := New()
	_, err := l.CreateAccount("A")
	require.NoError(t, err)

	const workers = 200
	amount := domain.MustMoney("1.25")

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, l.Deposit("A", amount))
		}()
	}
	wg.Wait()

	requireBalance(t, l, "A", "250.00")
}

func TestConcurrentWithdrawals_NeverOverdraw(t *testing.T) {
	l := New()
	_, err := l.CreateAccount("A")
	require.NoError(t, err)
	require.NoError(t, l.Deposit("A", domain.MustMoney("10")))

	const workers = 100
	var succeeded atomic.Int64

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			err := l.Withdraw("A", domain.MustMoney("1"))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrInsufficientFunds):
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), succeeded.Load())
	requireBalance(t, l, "A", "0.00")
}

// Opposite-direction transfers between the same pair must neither deadlock nor
// create or destroy money.
func TestConcurrentTransfers_ConserveTotal(t *testing.T) {
	l := New()
	ids := []domain.AccountID{"A", "B", "C"}
	for _, id := range ids {
		_, err := l.CreateAccount(id)
		require.NoError(t, err)
		require.NoError(t, l.Deposit(id, domain.MustMoney("50")))
	}

	const rounds = 300
	var wg sync.WaitGroup
	wg.Add(rounds)
	for i := 0; i < rounds; i++ {
		from := ids[i%len(ids)]
		to := ids[(i+1)%len(ids)]
		if i%2 == 0 {
			from, to = to, from
		}
		go func(from, to domain.AccountID) {
			defer wg.Done()
			err := l.Transfer(from, to, domain.MustMoney("7.77"))
			if err != nil && !errors.Is(err, domain.ErrInsufficientFunds) {
				t.Errorf("transfer %s -> %s: %v", from, to, err)
			}
		}(from, to)
	}
	wg.Wait()

	total := sum(t, l, ids...)
	assert.Equal(t, "150.00", total.String())
	for _, id := range ids {
		balance, err := l.GetBalance(id)
		require.NoError(t, err)
		assert.False(t, balance.LessThan(domain.Zero), "balance of %s went negative", id)
	}
}

// Readers running alongside transfers must only ever see totals from before or after
// a transfer, never one side of it.
func TestConcurrentReads_SeeNoPartialTransfer(t *testing.T) {
	l := New()
	for _, id := range []domain.AccountID{"A", "B"} {
		_, err := l.CreateAccount(id)
		require.NoError(t, err)
	}
	require.NoError(t, l.Deposit("A", domain.MustMoney("1000")))

	done := make(chan struct{})
	var readers sync.WaitGroup
	for r := 0; r < 4; r++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				snapshot := l.snapshot("A", "B")
				if snapshot != "1000.00" {
					t.Errorf("observed partial transfer: total %s", snapshot)
					return
				}
			}
		}()
	}

	for i := 0; i < 500; i++ {
		from, to := domain.AccountID("A"), domain.AccountID("B")
		if i%2 == 1 {
			from, to = to, from
		}
		require.NoError(t, l.Transfer(from, to, domain.MustMoney("3.33")))
	}
	close(done)
	readers.Wait()
}

func TestConcurrentCreate_OnlyOneWins(t *testing.T) {
	l := New()

	const workers = 50
	var created atomic.Int64

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := l.CreateAccount("A")
			if err == nil {
				created.Add(1)
				return
			}
			assert.ErrorIs(t, err, domain.ErrAccountExists)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), created.Load())
	assert.Equal(t, 1, l.Accounts())
}

func TestConcurrentMixedOperations(t *testing.T) {
	l := New()
	const accounts = 10
	for i := 0; i < accounts; i++ {
		_, err := l.CreateAccount(domain.AccountID(fmt.Sprintf("acc-%d", i)))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < accounts; i++ {
		id := domain.AccountID(fmt.Sprintf("acc-%d", i))
		next := domain.AccountID(fmt.Sprintf("acc-%d", (i+1)%accounts))
		wg.Add(3)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				assert.NoError(t, l.Deposit(id, domain.MustMoney("1")))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = l.Withdraw(id, domain.MustMoney("0.50"))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = l.Transfer(id, next, domain.MustMoney("0.25"))
			}
		}()
	}
	wg.Wait()

	for i := 0; i < accounts; i++ {
		balance, err := l.GetBalance(domain.AccountID(fmt.Sprintf("acc-%d", i)))
		require.NoError(t, err)
		assert.False(t, balance.LessThan(domain.Zero))
	}
}

// snapshot sums balances under a single read lock
func (l *Ledger) snapshot(ids ...domain.AccountID) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := domain.Zero
	for _, id := range ids {
		total = total.Plus(l.balances[id])
	}
	return total.String()
}
