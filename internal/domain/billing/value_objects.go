package billing

import (
	"errors"
	"fmt"
)

// Money is an amount in minor currency units plus an ISO 4217 currency code.
// All fee arithmetic happens in integer cents; floats never touch amounts.
type Money struct {
	cents    int64
	currency string
}

func NewMoney(cents int64, currency string) Money {
	return Money{cents: cents, currency: currency}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Equal(other Money) bool {
	return m.cents == other.cents && m.currency == other.currency
}

// Add sums two amounts of the same currency. Mixed-currency bookings are not
// modeled; summing across currencies is an error, not a silent conversion.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, errors.New("cannot add amounts with different currencies")
	}
	return Money{cents: m.cents + other.cents, currency: m.currency}, nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.cents, m.currency)
}
