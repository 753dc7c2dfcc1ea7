//go:build unit

package billing_test

import (
	"testing"

	"washbay/internal/domain/billing"

	"github.com/stretchr/testify/assert"
)

func TestFeePolicyCalculate(t *testing.T) {
	tests := []struct {
		name      string
		percent   int
		total     billing.Money
		wantFee   int64
		wantOK    bool
	}{
		{
			name:    "30 percent of 20000",
			percent: 30,
			total:   billing.NewMoney(20000, "USD"),
			wantFee: 6000,
			wantOK:  true,
		},
		{
			name:    "half cents round up",
			percent: 30,
			total:   billing.NewMoney(12345, "USD"), // 3703.5 -> 3704
			wantFee: 3704,
			wantOK:  true,
		},
		{
			name:    "below half cent rounds down",
			percent: 30,
			total:   billing.NewMoney(12344, "USD"), // 3703.2 -> 3703
			wantFee: 3703,
			wantOK:  true,
		},
		{
			name:    "zero total yields no fee",
			percent: 30,
			total:   billing.NewMoney(0, "USD"),
			wantOK:  false,
		},
		{
			name:    "negative total yields no fee",
			percent: 30,
			total:   billing.NewMoney(-500, "USD"),
			wantOK:  false,
		},
		{
			name:    "zero percent yields no fee",
			percent: 0,
			total:   billing.NewMoney(20000, "USD"),
			wantOK:  false,
		},
		{
			name:    "tiny total still rounds to a cent",
			percent: 30,
			total:   billing.NewMoney(2, "USD"), // 0.6 -> 1
			wantFee: 1,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pol := billing.NewFeePolicy(tt.percent)
			fee, ok := pol.Calculate(tt.total)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantFee, fee.Cents())
				assert.Equal(t, tt.total.Currency(), fee.Currency())
			}
		})
	}
}
