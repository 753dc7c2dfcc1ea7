package commands

import (
	"context"
	"time"

	"washbay/internal/domain/billing"
	"washbay/internal/domain/booking"
)

// BookingSource streams bookings for a location whose start time falls in
// [startMin, startMax], following platform pagination until exhausted. The
// callback style keeps the scanned set out of memory; a callback error or a
// page-fetch error aborts the scan (a partial scan could silently suppress a
// whole page of eligible bookings).
type BookingSource interface {
	ScanBookings(ctx context.Context, locationID string, startMin, startMax time.Time, fn func(booking.Booking) error) error
}

// BookingAnnotator reads and writes the seller note on a single booking.
// Updates carry the version the note was read at; a version conflict fails
// loudly rather than overwriting.
type BookingAnnotator interface {
	GetBooking(ctx context.Context, id string) (booking.Booking, error)
	UpdateSellerNote(ctx context.Context, id string, version int64, note string) error
}

// CatalogSource resolves the price of a single service variation.
type CatalogSource interface {
	GetVariationPrice(ctx context.Context, variationID string) (billing.Money, error)
}

// ChargeRequest is one payment attempt against a saved card.
type ChargeRequest struct {
	// IdempotencyKey must be derived deterministically from the booking and
	// the fee amount so a retried run cannot double-charge; it is the real
	// safety net when a charge succeeded but the annotation write was lost.
	IdempotencyKey string
	SourceID       string
	CustomerID     string
	ReferenceID    string
	Amount         billing.Money
	Note           string
}

// PaymentGateway submits charges to the platform's payments API.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, req ChargeRequest) (paymentID string, err error)
}

// ChargeRecord is the structured billing-state row kept alongside the seller
// note ledger (the note remains the compatibility shim; this is the durable
// record).
type ChargeRecord struct {
	BookingID   string
	PaymentID   string
	AmountCents int64
	Currency    string
	ChargedAt   time.Time
}

// ChargeRecorder persists charge outcomes keyed by booking id.
type ChargeRecorder interface {
	// FindByBookingID returns a KindNotFound repository error when no charge
	// has been recorded for the booking.
	FindByBookingID(ctx context.Context, bookingID string) (*ChargeRecord, error)
	Record(ctx context.Context, rec ChargeRecord) error
}
