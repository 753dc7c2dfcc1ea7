//go:build unit

package billing_test

import (
	"testing"
	"time"

	"washbay/internal/domain/billing"
	"washbay/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

var testPolicy = billing.EligibilityPolicy{
	GracePeriod: 24 * time.Hour,
	Lookback:    30 * 24 * time.Hour,
}

func noShowBooking(startAt time.Time) *booking.Booking {
	return &booking.Booking{
		ID:         "bk_1",
		Status:     booking.StatusNoShow,
		StartAt:    startAt,
		CustomerID: "cust_1",
	}
}

func TestClassify(t *testing.T) {
	now := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)
	fee := billing.NewMoney(6000, "USD")
	cardLedger := billing.Ledger{CardID: "card_abc"}

	tests := []struct {
		name        string
		booking     *booking.Booking
		ledger      billing.Ledger
		wantOutcome billing.Outcome
		wantReason  string
	}{
		{
			name: "accepted booking is ineligible",
			booking: &booking.Booking{
				ID:      "bk_1",
				Status:  booking.StatusAccepted,
				StartAt: now.Add(-48 * time.Hour),
			},
			ledger:      cardLedger,
			wantOutcome: billing.OutcomeIneligible,
			wantReason:  "status ACCEPTED",
		},
		{
			name:        "older than lookback window is ineligible",
			booking:     noShowBooking(now.Add(-31 * 24 * time.Hour)),
			ledger:      cardLedger,
			wantOutcome: billing.OutcomeIneligible,
			wantReason:  "outside lookback window",
		},
		{
			name:        "start exactly at the grace boundary is chargeable",
			booking:     noShowBooking(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
			ledger:      cardLedger,
			wantOutcome: billing.OutcomeChargeable,
		},
		{
			name:        "one second inside the grace period is not yet due",
			booking:     noShowBooking(time.Date(2024, 6, 1, 10, 0, 1, 0, time.UTC)),
			ledger:      cardLedger,
			wantOutcome: billing.OutcomeNotYetDue,
		},
		{
			name:        "no stored card is ineligible",
			booking:     noShowBooking(now.Add(-48 * time.Hour)),
			ledger:      billing.Ledger{OtherTokens: []string{"Vehicle: Blue Sedan"}},
			wantOutcome: billing.OutcomeIneligible,
			wantReason:  "no stored card",
		},
		{
			name:    "matching recorded charge is already settled",
			booking: noShowBooking(now.Add(-48 * time.Hour)),
			ledger: billing.Ledger{
				CardID:             "card_abc",
				ChargedAmountCents: int64Ptr(6000),
				ChargedCurrency:    "USD",
			},
			wantOutcome: billing.OutcomeAlreadySettled,
		},
		{
			name:    "recorded amount differing from fresh fee is a conflict",
			booking: noShowBooking(now.Add(-48 * time.Hour)),
			ledger: billing.Ledger{
				CardID:             "card_abc",
				ChargedAmountCents: int64Ptr(5000),
				ChargedCurrency:    "USD",
			},
			wantOutcome: billing.OutcomeIneligible,
			wantReason:  "conflicting charge record",
		},
		{
			name:    "matching amount in a different currency is a conflict",
			booking: noShowBooking(now.Add(-48 * time.Hour)),
			ledger: billing.Ledger{
				CardID:             "card_abc",
				ChargedAmountCents: int64Ptr(6000),
				ChargedCurrency:    "EUR",
			},
			wantOutcome: billing.OutcomeIneligible,
			wantReason:  "conflicting charge record",
		},
		{
			name:    "recorded zero charge conflicts with a fresh nonzero fee",
			booking: noShowBooking(now.Add(-48 * time.Hour)),
			ledger: billing.Ledger{
				CardID:             "card_abc",
				ChargedAmountCents: int64Ptr(0),
				ChargedCurrency:    "USD",
			},
			wantOutcome: billing.OutcomeIneligible,
			wantReason:  "conflicting charge record",
		},
		{
			name:        "no-show past grace with card and no record is chargeable",
			booking:     noShowBooking(now.Add(-48 * time.Hour)),
			ledger:      cardLedger,
			wantOutcome: billing.OutcomeChargeable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testPolicy.Classify(tt.booking, tt.ledger, fee, now)

			assert.Equal(t, tt.wantOutcome, got.Outcome, "outcome: got %s", got.Outcome)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, got.Reason)
			}
		})
	}
}

func TestPrecheckStopsBeforeSettlementRules(t *testing.T) {
	now := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)

	// Precheck never inspects the charge record, so a booking with a
	// conflicting record but a wrong status reports the status reason.
	b := &booking.Booking{
		ID:      "bk_1",
		Status:  booking.StatusCancelledByCustomer,
		StartAt: now.Add(-48 * time.Hour),
	}
	led := billing.Ledger{
		CardID:             "card_abc",
		ChargedAmountCents: int64Ptr(5000),
	}

	got := testPolicy.Precheck(b, led, now)
	assert.Equal(t, billing.OutcomeIneligible, got.Outcome)
	assert.Equal(t, "status CANCELLED_BY_CUSTOMER", got.Reason)
}
