package platform

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"washbay/internal/domain/booking"
	"washbay/internal/infra"
)

type listBookingsResponse struct {
	Bookings []wireBooking `json:"bookings"`
	Cursor   string        `json:"cursor"`
}

type bookingEnvelope struct {
	Booking wireBooking `json:"booking"`
}

// ScanBookings walks every page of bookings for the location in
// [startMin, startMax] and hands each one to fn. Any page failure aborts the
// scan; the caller decides whether that is fatal.
func (c *Client) ScanBookings(ctx context.Context, locationID string, startMin, startMax time.Time, fn func(booking.Booking) error) error {
	cursor := ""
	for {
		query := url.Values{}
		query.Set("location_id", locationID)
		query.Set("start_at_min", startMin.UTC().Format(time.RFC3339))
		query.Set("start_at_max", startMax.UTC().Format(time.RFC3339))
		if cursor != "" {
			query.Set("cursor", cursor)
		}

		var resp listBookingsResponse
		if err := c.do(ctx, http.MethodGet, "/v2/bookings", query, nil, &resp); err != nil {
			return infra.WrapRepoErr("failed to list bookings", err, infra.KindUnavailable)
		}

		for _, wb := range resp.Bookings {
			if err := fn(wb.toDomain()); err != nil {
				return err
			}
		}

		if resp.Cursor == "" {
			return nil
		}
		cursor = resp.Cursor
	}
}

func (c *Client) GetBooking(ctx context.Context, id string) (booking.Booking, error) {
	var resp bookingEnvelope
	if err := c.do(ctx, http.MethodGet, "/v2/bookings/"+id, nil, nil, &resp); err != nil {
		return booking.Booking{}, err
	}
	return resp.Booking.toDomain(), nil
}

type updateBookingRequest struct {
	Booking updateBookingFields `json:"booking"`
}

type updateBookingFields struct {
	SellerNote string `json:"seller_note"`
	Version    int64  `json:"version"`
}

// UpdateSellerNote writes a new seller note using the version the note was
// read at. The platform rejects a stale version with a conflict, which
// surfaces as a KindConflict repository error.
func (c *Client) UpdateSellerNote(ctx context.Context, id string, version int64, note string) error {
	body := updateBookingRequest{
		Booking: updateBookingFields{
			SellerNote: note,
			Version:    version,
		},
	}
	var resp bookingEnvelope
	return c.do(ctx, http.MethodPut, "/v2/bookings/"+id, nil, body, &resp)
}
