package domain

// Ledger defines the operations the transport adapters call on the balance store.
// Every implementation must keep balances non-negative and apply transfers atomically.
type Ledger interface {
	// CreateAccount registers id with a zero balance
	// Returns ErrAccountExists if id is already present
	CreateAccount(id AccountID) (AccountID, error)

	// GetBalance returns the current balance of id
	// Returns ErrAccountNotFound if id is absent
	GetBalance(id AccountID) (Money, error)

	// Deposit adds amount to the balance of id
	Deposit(id AccountID, amount Money) error

	// Withdraw removes amount from the balance of id
	// Returns ErrInsufficientFunds if the balance is lower than amount
	Withdraw(id AccountID, amount Money) error

	// Transfer moves amount from one account to another as a single atomic unit
	Transfer(from, to AccountID, amount Money) error
}
