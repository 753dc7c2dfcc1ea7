package platform

import (
	"strings"
	"time"

	"washbay/internal/domain/booking"
)

// Wire types mirror the platform's JSON. The platform has shipped the same
// data under different fields across API revisions (customer id at the top
// level vs. inside creator_details); toDomain flattens all of that so the
// core never does optional-chaining over response shapes.

type wireBooking struct {
	ID                  string              `json:"id"`
	Status              string              `json:"status"`
	StartAt             time.Time           `json:"start_at"`
	CustomerID          string              `json:"customer_id"`
	SellerNote          string              `json:"seller_note"`
	Version             int64               `json:"version"`
	AppointmentSegments []wireSegment       `json:"appointment_segments"`
	CreatorDetails      *wireCreatorDetails `json:"creator_details,omitempty"`
}

type wireSegment struct {
	ServiceVariationID string `json:"service_variation_id"`
	DurationMinutes    int    `json:"duration_minutes"`
}

type wireCreatorDetails struct {
	CustomerID string `json:"customer_id"`
}

type wireMoney struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func (w wireBooking) toDomain() booking.Booking {
	customerID := w.CustomerID
	if customerID == "" && w.CreatorDetails != nil {
		// Older responses only carry the customer inside creator_details.
		customerID = w.CreatorDetails.CustomerID
	}

	items := make([]booking.LineItem, 0, len(w.AppointmentSegments))
	for _, seg := range w.AppointmentSegments {
		items = append(items, booking.LineItem{
			ServiceVariationID: seg.ServiceVariationID,
			Duration:           time.Duration(seg.DurationMinutes) * time.Minute,
		})
	}

	return booking.Booking{
		ID:         w.ID,
		Status:     booking.Status(strings.ToUpper(w.Status)),
		StartAt:    w.StartAt,
		CustomerID: customerID,
		LineItems:  items,
		SellerNote: w.SellerNote,
		Version:    w.Version,
	}
}
