package billing

import (
	"fmt"
	"time"

	"washbay/internal/domain/booking"
)

// Outcome is the batch-side classification of a booking.
type Outcome int

const (
	OutcomeChargeable Outcome = iota
	OutcomeNotYetDue
	OutcomeAlreadySettled
	OutcomeIneligible
)

func (o Outcome) String() string {
	switch o {
	case OutcomeChargeable:
		return "chargeable"
	case OutcomeNotYetDue:
		return "not yet due"
	case OutcomeAlreadySettled:
		return "already settled"
	case OutcomeIneligible:
		return "ineligible"
	}
	return "unknown"
}

// Classification carries the outcome plus a human-readable reason for skips.
type Classification struct {
	Outcome Outcome
	Reason  string
}

func chargeable() Classification {
	return Classification{Outcome: OutcomeChargeable}
}

func ineligible(reason string) Classification {
	return Classification{Outcome: OutcomeIneligible, Reason: reason}
}

// EligibilityPolicy holds the time windows for the batch rule.
type EligibilityPolicy struct {
	// GracePeriod is the minimum time after the scheduled start before a
	// no-show fee may be charged.
	GracePeriod time.Duration
	// Lookback bounds how old a booking may be and still be processed.
	Lookback time.Duration
}

// Precheck evaluates the rules that need no price data, in order:
// status, lookback window, grace period, stored card. An OutcomeChargeable
// result here means "proceed to settlement checks", not "charge".
func (p EligibilityPolicy) Precheck(b *booking.Booking, led Ledger, now time.Time) Classification {
	if b.Status != booking.StatusNoShow {
		return ineligible(fmt.Sprintf("status %s", b.Status))
	}
	if now.Sub(b.StartAt) > p.Lookback {
		return ineligible("outside lookback window")
	}
	if now.Sub(b.StartAt) < p.GracePeriod {
		return Classification{Outcome: OutcomeNotYetDue, Reason: "grace period not elapsed"}
	}
	if led.CardID == "" {
		return ineligible("no stored card")
	}
	return chargeable()
}

// Classify is the full batch eligibility rule. Rules run in order and the
// first match wins:
//
//  1. status other than NO_SHOW           -> ineligible
//  2. older than the lookback window      -> ineligible
//  3. inside the grace period             -> not yet due
//  4. no stored card in the ledger        -> ineligible
//  5. recorded charge equals fee          -> already settled
//  6. recorded charge differs from fee    -> ineligible (manual review)
//  7. otherwise                           -> chargeable
//
// Rule 6 exists because silently recalculating and re-charging over a
// conflicting record is unsafe; the mismatch is surfaced, never resolved here.
func (p EligibilityPolicy) Classify(b *booking.Booking, led Ledger, fee Money, now time.Time) Classification {
	if c := p.Precheck(b, led, now); c.Outcome != OutcomeChargeable {
		return c
	}
	if recorded, ok := led.Charge(); ok {
		if recorded.Equal(fee) {
			return Classification{Outcome: OutcomeAlreadySettled, Reason: "fee already charged"}
		}
		return ineligible("conflicting charge record")
	}
	return chargeable()
}
