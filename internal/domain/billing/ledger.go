package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The seller note doubles as the billing-state store: a `|`-separated list of
// `Key: value` tokens. Recognized keys below carry charge state; anything else
// (vehicle notes, staff remarks) is round-tripped untouched so this subsystem
// can share the field with the rest of the shop.
const (
	keyCardID           = "Card ID"
	keyChargedCents     = "No-Show Fee Charged (cents)"
	keyChargedCurrency  = "No-Show Fee Charged Currency"
	keyChargedAt        = "No-Show Fee Charged At"
	keyChargedPaymentID = "No-Show Fee Charged Payment ID"
)

const tokenSeparator = " | "

// Ledger is the decoded form of a booking's seller note.
//
// Invariant: once ChargedAmountCents is set the booking is settled for good.
// A recorded amount that disagrees with a freshly computed fee is a
// skip-and-report condition, never an overwrite condition.
type Ledger struct {
	CardID             string
	ChargedAmountCents *int64
	ChargedCurrency    string
	ChargedAt          *time.Time
	ChargedPaymentID   string
	// OtherTokens preserves unrecognized note content in its original
	// relative order.
	OtherTokens []string
}

// DecodeLedger parses a raw seller note. Recognized keys match
// case-insensitively; numeric values that fail to parse leave the field
// absent (a literal "0" is an explicit zero charge, not absence).
func DecodeLedger(raw string) Ledger {
	var led Ledger
	for _, token := range strings.Split(raw, "|") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		key, value, found := strings.Cut(token, ":")
		if !found {
			led.OtherTokens = append(led.OtherTokens, token)
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case strings.EqualFold(key, keyCardID):
			led.CardID = value
		case strings.EqualFold(key, keyChargedCents):
			if cents, err := strconv.ParseInt(value, 10, 64); err == nil {
				led.ChargedAmountCents = &cents
			}
		case strings.EqualFold(key, keyChargedCurrency):
			led.ChargedCurrency = value
		case strings.EqualFold(key, keyChargedAt):
			if at, err := time.Parse(time.RFC3339, value); err == nil {
				led.ChargedAt = &at
			}
		case strings.EqualFold(key, keyChargedPaymentID):
			led.ChargedPaymentID = value
		default:
			led.OtherTokens = append(led.OtherTokens, token)
		}
	}
	return led
}

// Encode renders the ledger back into seller note text. Unrecognized tokens
// come first so unrelated note content stays where a human left it, followed
// by the recognized fields in fixed order. The output re-parses to an equal
// ledger.
func (l Ledger) Encode() string {
	tokens := make([]string, 0, len(l.OtherTokens)+5)
	tokens = append(tokens, l.OtherTokens...)

	if l.CardID != "" {
		tokens = append(tokens, keyCardID+": "+l.CardID)
	}
	if l.ChargedAmountCents != nil {
		tokens = append(tokens, fmt.Sprintf("%s: %d", keyChargedCents, *l.ChargedAmountCents))
	}
	if l.ChargedCurrency != "" {
		tokens = append(tokens, keyChargedCurrency+": "+l.ChargedCurrency)
	}
	if l.ChargedAt != nil {
		tokens = append(tokens, keyChargedAt+": "+l.ChargedAt.UTC().Format(time.RFC3339))
	}
	if l.ChargedPaymentID != "" {
		tokens = append(tokens, keyChargedPaymentID+": "+l.ChargedPaymentID)
	}

	return strings.Join(tokens, tokenSeparator)
}

// HasCharge reports whether a fee was already recorded against this booking.
func (l Ledger) HasCharge() bool {
	return l.ChargedAmountCents != nil
}

// Charge returns the recorded charge amount, if any.
func (l Ledger) Charge() (Money, bool) {
	if l.ChargedAmountCents == nil {
		return Money{}, false
	}
	return NewMoney(*l.ChargedAmountCents, l.ChargedCurrency), true
}

// WithCharge returns a copy of the ledger with the charge outcome recorded.
func (l Ledger) WithCharge(fee Money, paymentID string, at time.Time) Ledger {
	cents := fee.Cents()
	atUTC := at.UTC()
	l.ChargedAmountCents = &cents
	l.ChargedCurrency = fee.Currency()
	l.ChargedAt = &atUTC
	l.ChargedPaymentID = paymentID
	return l
}
