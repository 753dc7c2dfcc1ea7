package billing

// FeePolicy derives the no-show penalty from a booking's service total.
type FeePolicy struct {
	// Percent of the service total charged as the fee, e.g. 30.
	Percent int
}

func NewFeePolicy(percent int) FeePolicy {
	return FeePolicy{Percent: percent}
}

// Calculate returns the fee rounded to the nearest cent (half up). A zero or
// negative result means no fee is charged; callers treat that as a skip.
func (p FeePolicy) Calculate(serviceTotal Money) (Money, bool) {
	if serviceTotal.Cents() <= 0 {
		return Money{}, false
	}
	cents := (serviceTotal.Cents()*int64(p.Percent) + 50) / 100
	if cents <= 0 {
		return Money{}, false
	}
	return NewMoney(cents, serviceTotal.Currency()), true
}
