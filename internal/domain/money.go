package domain

import (
	"fmt"
	"strings"
)

// Money is an amount in minor currency units (cents) with an ISO 4217 code.
// It is comparable, so two values are equal iff amount and currency match.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// NewMoney validates and builds a Money value. The currency code is upper-cased.
func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: amount cannot be negative", ErrInvalidArgument)
	}
	code := strings.ToUpper(strings.TrimSpace(currency))
	if len(code) != 3 {
		return Money{}, fmt.Errorf("%w: currency %q is not a three-letter code", ErrInvalidArgument, currency)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return Money{}, fmt.Errorf("%w: currency %q is not a three-letter code", ErrInvalidArgument, currency)
		}
	}
	return Money{Amount: amount, Currency: code}, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.Amount/100, m.Amount%100, m.Currency)
}
