package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"washbay/internal/domain/billing"
	"washbay/internal/domain/booking"
	"washbay/internal/infra"
	"washbay/internal/pkg/clock"
	"washbay/internal/pkg/config"
	"washbay/internal/pkg/errs"

	"github.com/google/uuid"
)

// RunSummary is the per-run aggregate returned to the trigger. It is never
// persisted; the durable outcome of a run lives on the bookings themselves
// and in the billing store.
type RunSummary struct {
	Processed int
	Eligible  int
	Charged   int
	Skipped   []string
	Errors    []string
}

type NoShowFeeCommands interface {
	Run(ctx context.Context) (*RunSummary, error)
}

type noShowFeeUseCaseImpl struct {
	bookings   BookingSource
	annotator  BookingAnnotator
	catalog    CatalogSource
	payments   PaymentGateway
	recorder   ChargeRecorder
	cfg        config.NoShowFeeConfig
	locationID string
	clock      clock.Clock
}

func NewNoShowFeeCommands(
	bookings BookingSource,
	annotator BookingAnnotator,
	catalog CatalogSource,
	payments PaymentGateway,
	recorder ChargeRecorder,
	cfg config.Config,
	clk clock.Clock,
) NoShowFeeCommands {
	return &noShowFeeUseCaseImpl{
		bookings:   bookings,
		annotator:  annotator,
		catalog:    catalog,
		payments:   payments,
		recorder:   recorder,
		cfg:        cfg.NoShowFee,
		locationID: cfg.Platform.LocationID,
		clock:      clk,
	}
}

// chargeNamespace scopes the deterministic idempotency keys. Changing it
// would let already-settled charges replay, so it is fixed forever.
var chargeNamespace = uuid.MustParse("7a3d9c52-8f1e-4b6a-9d2e-c415f0a86b31")

// ChargeIdempotencyKey derives the payment idempotency key from the booking
// and the fee amount. The same booking and amount always produce the same
// key, so a retried run cannot double-charge even when an earlier attempt's
// response was lost before it could be recorded.
func ChargeIdempotencyKey(bookingID string, feeCents int64) string {
	return uuid.NewSHA1(chargeNamespace, fmt.Appendf(nil, "%s:%d", bookingID, feeCents)).String()
}

// Run scans the lookback window and charges every booking that classifies as
// chargeable. Failures on one booking never abort the run; only a scan
// failure is fatal, because a partial scan could silently drop a whole page
// of eligible bookings.
func (u *noShowFeeUseCaseImpl) Run(ctx context.Context) (*RunSummary, error) {
	now := u.clock.Now()
	pol := billing.EligibilityPolicy{
		GracePeriod: u.cfg.GracePeriod(),
		Lookback:    u.cfg.Lookback(),
	}
	feePol := billing.NewFeePolicy(u.cfg.FeePercent)
	prices := newPriceCache(u.catalog)

	summary := &RunSummary{
		Skipped: []string{},
		Errors:  []string{},
	}

	scanErr := u.bookings.ScanBookings(ctx, u.locationID, now.Add(-u.cfg.Lookback()), now,
		func(b booking.Booking) error {
			summary.Processed++
			u.processBooking(ctx, &b, pol, feePol, prices, now, summary)
			return nil
		})
	if scanErr != nil {
		return nil, errs.Mark(scanErr, errs.ErrScanFailed)
	}

	slog.Info("no-show fee run completed",
		"processed", summary.Processed,
		"eligible", summary.Eligible,
		"charged", summary.Charged,
		"skipped", len(summary.Skipped),
		"errors", len(summary.Errors),
	)
	return summary, nil
}

func (u *noShowFeeUseCaseImpl) processBooking(
	ctx context.Context,
	b *booking.Booking,
	pol billing.EligibilityPolicy,
	feePol billing.FeePolicy,
	prices *priceCache,
	now time.Time,
	summary *RunSummary,
) {
	led := billing.DecodeLedger(b.SellerNote)

	// Cheap rules first so ineligible bookings never cost a catalog call.
	if c := pol.Precheck(b, led, now); c.Outcome != billing.OutcomeChargeable {
		summary.Skipped = append(summary.Skipped, skipLine(b.ID, c))
		return
	}

	total, err := prices.serviceTotal(ctx, b)
	if err != nil {
		summary.Errors = append(summary.Errors,
			fmt.Sprintf("booking %s: price resolution failed: %v", b.ID, err))
		return
	}

	fee, ok := feePol.Calculate(total)
	if !ok {
		summary.Skipped = append(summary.Skipped,
			fmt.Sprintf("booking %s: zero fee", b.ID))
		return
	}

	// The structured billing record outranks the note ledger.
	if settled := u.checkBillingRecord(ctx, b.ID, fee, summary); settled {
		return
	}

	if c := pol.Classify(b, led, fee, now); c.Outcome != billing.OutcomeChargeable {
		summary.Skipped = append(summary.Skipped, skipLine(b.ID, c))
		return
	}

	summary.Eligible++

	if err := u.chargeAndRecord(ctx, b, led, fee, now); err != nil {
		if errors.Is(err, errs.ErrChargedNotRecorded) {
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("booking %s: charged but not recorded: %v", b.ID, err))
		} else {
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("booking %s: charge failed: %v", b.ID, err))
		}
		return
	}
	summary.Charged++
}

// checkBillingRecord consults the billing store before the note ledger.
// Returns true when the booking needs no further work this run.
func (u *noShowFeeUseCaseImpl) checkBillingRecord(ctx context.Context, bookingID string, fee billing.Money, summary *RunSummary) bool {
	rec, err := u.recorder.FindByBookingID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false
		}
		// Charging without knowing the recorded state risks relying on the
		// idempotency key alone; surface the lookup failure instead.
		summary.Errors = append(summary.Errors,
			fmt.Sprintf("booking %s: billing record lookup failed: %v", bookingID, err))
		return true
	}

	recorded := billing.NewMoney(rec.AmountCents, rec.Currency)
	if recorded.Equal(fee) {
		summary.Skipped = append(summary.Skipped,
			fmt.Sprintf("booking %s: already settled", bookingID))
	} else {
		summary.Skipped = append(summary.Skipped,
			fmt.Sprintf("booking %s: conflicting charge record", bookingID))
	}
	return true
}

// chargeAndRecord is the two-phase charge: submit the payment, then write the
// outcome back. Once the payment succeeds every later failure is reported as
// ErrChargedNotRecorded. At that point the deterministic idempotency key,
// not the annotation, is what protects the next run from double-charging.
func (u *noShowFeeUseCaseImpl) chargeAndRecord(ctx context.Context, b *booking.Booking, led billing.Ledger, fee billing.Money, now time.Time) error {
	req := ChargeRequest{
		IdempotencyKey: ChargeIdempotencyKey(b.ID, fee.Cents()),
		SourceID:       led.CardID,
		CustomerID:     b.CustomerID,
		ReferenceID:    b.ID,
		Amount:         fee,
		Note:           "No-show fee for booking " + b.ID,
	}

	paymentID, err := u.payments.CreatePayment(ctx, req)
	if err != nil {
		return errs.Mark(err, errs.ErrChargeFailed)
	}

	if err := u.recorder.Record(ctx, ChargeRecord{
		BookingID:   b.ID,
		PaymentID:   paymentID,
		AmountCents: fee.Cents(),
		Currency:    fee.Currency(),
		ChargedAt:   now,
	}); err != nil {
		// The note write below is still attempted; the note remains the
		// compatibility source of truth for older tooling.
		slog.Error("failed to record charge in billing store",
			"booking_id", b.ID, "payment_id", paymentID, "error", err.Error())
	}

	// Read-modify-write on the latest note so unrelated tokens written since
	// the scan are preserved.
	fresh, err := u.annotator.GetBooking(ctx, b.ID)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "payment %s", paymentID), errs.ErrChargedNotRecorded)
	}

	updated := billing.DecodeLedger(fresh.SellerNote).WithCharge(fee, paymentID, now)
	if err := u.annotator.UpdateSellerNote(ctx, fresh.ID, fresh.Version, updated.Encode()); err != nil {
		return errs.Mark(errs.Wrapf(err, "payment %s", paymentID), errs.ErrChargedNotRecorded)
	}
	return nil
}

func skipLine(bookingID string, c billing.Classification) string {
	reason := c.Reason
	if reason == "" {
		reason = c.Outcome.String()
	}
	return fmt.Sprintf("booking %s: %s", bookingID, reason)
}
