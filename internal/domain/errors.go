package domain

import "errors"

// Ledger errors. They describe expected conditions and are returned, never panicked.
// Callers match them with errors.Is since the ledger wraps them with the account id.
var (
	ErrAccountExists     = errors.New("account already exists")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidAccountID  = errors.New("invalid account id")
)
