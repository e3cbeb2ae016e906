package domain

import (
	"fmt"
	"strings"
)

// AccountID is the opaque identifier naming one balance entry in the ledger
type AccountID string

// Validate ensures the identifier is usable as a ledger key
// Returns ErrInvalidAccountID if it is empty or only whitespace
func (id AccountID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return fmt.Errorf("%w: account id cannot be empty", ErrInvalidAccountID)
	}
	return nil
}

// String returns the raw identifier
func (id AccountID) String() string {
	return string(id)
}
