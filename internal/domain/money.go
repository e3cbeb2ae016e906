package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits every Money value carries
const moneyScale = 2

// Bounds on accepted amounts. Rounding cost grows with the exponent, so values
// outside them are rejected before any arithmetic.
const (
	maxIntegerDigits  = 18
	maxFractionDigits = 18
	maxAmountLength   = 64
)

// Zero is the normalized zero amount, the opening balance of every account
var Zero = Money{amount: decimal.New(0, -moneyScale)}

// Money represents a non-negative monetary amount with exactly 2 fractional digits.
// Values are immutable: every operation returns a new Money.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal, rounding half-up to 2 fractional digits
// Returns ErrInvalidAmount if the value is negative, has more than 18 integer
// digits or carries more than 18 fractional digits
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, amount.String())
	}
	exp := int(amount.Exponent())
	if exp < -maxFractionDigits || amount.NumDigits()+exp > maxIntegerDigits {
		return Money{}, fmt.Errorf("%w: value out of range", ErrInvalidAmount)
	}

	// Round is half away from zero, which is half-up for non-negative values
	return Money{amount: amount.Round(moneyScale)}, nil
}

// ParseMoney parses a decimal string such as "12.34" into Money
func ParseMoney(raw string) (Money, error) {
	if len(raw) > maxAmountLength {
		return Money{}, fmt.Errorf("%w: longer than %d characters", ErrInvalidAmount, maxAmountLength)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a decimal", ErrInvalidAmount, raw)
	}

	return NewMoney(amount)
}

// MustMoney is like ParseMoney but panics on error.
// It is meant for constants and tests.
func MustMoney(raw string) Money {
	m, err := ParseMoney(raw)
	if err != nil {
		panic(err)
	}
	return m
}

// Plus returns m + other. The sum of two non-negative values is never negative.
func (m Money) Plus(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(moneyScale)}
}

// Minus returns m - other, or ErrInvalidAmount if the result would be negative
func (m Money) Minus(other Money) (Money, error) {
	if m.LessThan(other) {
		return Money{}, fmt.Errorf("%w: %s - %s is negative", ErrInvalidAmount, m, other)
	}
	return Money{amount: m.amount.Sub(other.amount).Round(moneyScale)}, nil
}

// Cmp compares m and other numerically:
//
//	-1 if m <  other
//	 0 if m == other
//	+1 if m >  other
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// LessThan reports whether m < other
func (m Money) LessThan(other Money) bool {
	return m.Cmp(other) < 0
}

// Equal reports whether m and other hold the same normalized value
func (m Money) Equal(other Money) bool {
	return m.Cmp(other) == 0
}

// IsZero reports whether m is 0.00
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with exactly 2 fractional digits, e.g. "12.30"
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// MarshalJSON encodes Money as a JSON string to keep the 2-digit precision on the wire
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes Money from a JSON string or number
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// Accept bare numbers as well as strings
		raw = string(data)
	}

	parsed, err := ParseMoney(raw)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
