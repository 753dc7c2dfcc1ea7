package booking

import "time"

// LineItem is one service reference on a booking.
type LineItem struct {
	ServiceVariationID string
	Duration           time.Duration
}

// Booking is the normalized view of a platform appointment. The platform owns
// the record; this struct is what the rest of the system sees after the infra
// adapter has flattened the platform's response shapes.
//
// SellerNote is the single free-text annotation field on the booking. The
// billing subsystem treats it as its persistence layer (see billing.Ledger);
// everything else must leave it alone.
type Booking struct {
	ID         string
	Status     Status
	StartAt    time.Time
	CustomerID string
	LineItems  []LineItem
	SellerNote string
	// Version is the platform's optimistic-concurrency token. Every seller
	// note update must send the version the note was read at.
	Version int64
}
