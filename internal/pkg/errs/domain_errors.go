package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// ErrScanFailed marks a run aborted because a page of bookings could not
	// be fetched; a partial scan would silently drop eligible bookings.
	ErrScanFailed = errors.New("booking scan failed")

	// ErrChargeFailed marks a payment that was rejected before any money moved.
	ErrChargeFailed = errors.New("payment charge failed")

	// ErrChargedNotRecorded marks the dangerous window: the payment went
	// through but the outcome could not be written back. The deterministic
	// idempotency key is what keeps the next run from charging twice.
	ErrChargedNotRecorded = errors.New("charged but not recorded")
)
