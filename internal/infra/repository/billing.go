package repository

import (
	"context"
	"errors"

	"washbay/internal/infra"
	"washbay/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BillingRepository is the durable side of charge bookkeeping. The booking's
// seller note carries the same facts for older tooling, but this table is what
// the batch consults first.
type BillingRepository struct {
	pool *pgxpool.Pool
}

func NewBillingRepository(pool *pgxpool.Pool) *BillingRepository {
	return &BillingRepository{pool: pool}
}

func (r *BillingRepository) FindByBookingID(ctx context.Context, bookingID string) (*commands.ChargeRecord, error) {
	const query = `
		SELECT booking_id, payment_id, amount_cents, currency, charged_at
		FROM no_show_charges
		WHERE booking_id = $1`

	var rec commands.ChargeRecord
	err := r.pool.QueryRow(ctx, query, bookingID).Scan(
		&rec.BookingID, &rec.PaymentID, &rec.AmountCents, &rec.Currency, &rec.ChargedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("charge record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find charge record", err)
	}
	return &rec, nil
}

// Record inserts the charge. A concurrent or repeated insert for the same
// booking is a no-op; the first record wins.
func (r *BillingRepository) Record(ctx context.Context, rec commands.ChargeRecord) error {
	const query = `
		INSERT INTO no_show_charges (booking_id, payment_id, amount_cents, currency, charged_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (booking_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		rec.BookingID, rec.PaymentID, rec.AmountCents, rec.Currency, rec.ChargedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record charge", err)
	}
	return nil
}
