package queries

import (
	"context"
	"time"

	"washbay/internal/domain/billing"
	"washbay/internal/domain/booking"
	"washbay/internal/pkg/clock"
	"washbay/internal/pkg/config"
	"washbay/internal/pkg/errs"
)

// displayWindow is the storefront badge rule: an ACCEPTED booking 48 hours
// past its start with a card on file is surfaced as a no-show fee candidate.
// This is a display-time lens and is deliberately not the batch charging rule
// (which acts on confirmed NO_SHOW bookings after the configurable grace
// period); the two look at different moments in a booking's lifecycle.
const displayWindow = 48 * time.Hour

type NoShowCandidateView struct {
	BookingID    string
	CustomerID   string
	StartAt      time.Time
	CardID       string
	HoursOverdue int
}

// BookingReader is the read-side slice of the platform adapter.
type BookingReader interface {
	ScanBookings(ctx context.Context, locationID string, startMin, startMax time.Time, fn func(booking.Booking) error) error
}

type CandidateQueries interface {
	ListNoShowCandidates(ctx context.Context) ([]*NoShowCandidateView, error)
}

type candidateQueriesImpl struct {
	bookings   BookingReader
	locationID string
	lookback   time.Duration
	clock      clock.Clock
}

func NewCandidateQueries(bookings BookingReader, cfg config.Config, clk clock.Clock) CandidateQueries {
	return &candidateQueriesImpl{
		bookings:   bookings,
		locationID: cfg.Platform.LocationID,
		lookback:   cfg.NoShowFee.Lookback(),
		clock:      clk,
	}
}

func (q *candidateQueriesImpl) ListNoShowCandidates(ctx context.Context) ([]*NoShowCandidateView, error) {
	now := q.clock.Now()
	views := []*NoShowCandidateView{}

	err := q.bookings.ScanBookings(ctx, q.locationID, now.Add(-q.lookback), now.Add(-displayWindow),
		func(b booking.Booking) error {
			if b.Status != booking.StatusAccepted {
				return nil
			}
			led := billing.DecodeLedger(b.SellerNote)
			if led.CardID == "" || led.HasCharge() {
				return nil
			}
			views = append(views, &NoShowCandidateView{
				BookingID:    b.ID,
				CustomerID:   b.CustomerID,
				StartAt:      b.StartAt,
				CardID:       led.CardID,
				HoursOverdue: int(now.Sub(b.StartAt).Hours()),
			})
			return nil
		})
	if err != nil {
		return nil, errs.Wrap(err, "failed to list no-show candidates")
	}
	return views, nil
}
