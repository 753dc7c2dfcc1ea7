package response

import (
	"time"

	"washbay/internal/usecase/commands"
	"washbay/internal/usecase/queries"
)

type NoShowRunResponse struct {
	Processed int      `json:"processed"`
	Eligible  int      `json:"eligible"`
	Charged   int      `json:"charged"`
	Skipped   []string `json:"skipped"`
	Errors    []string `json:"errors"`
}

type NoShowCandidateResponse struct {
	BookingID    string    `json:"bookingId"`
	CustomerID   string    `json:"customerId"`
	StartAt      time.Time `json:"startAt"`
	CardID       string    `json:"cardId"`
	HoursOverdue int       `json:"hoursOverdue"`
}

func FromRunSummary(s *commands.RunSummary) *NoShowRunResponse {
	resp := &NoShowRunResponse{
		Processed: s.Processed,
		Eligible:  s.Eligible,
		Charged:   s.Charged,
		Skipped:   s.Skipped,
		Errors:    s.Errors,
	}
	// Arrays must encode as [], never null.
	if resp.Skipped == nil {
		resp.Skipped = []string{}
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	return resp
}

func FromCandidateView(v *queries.NoShowCandidateView) *NoShowCandidateResponse {
	return &NoShowCandidateResponse{
		BookingID:    v.BookingID,
		CustomerID:   v.CustomerID,
		StartAt:      v.StartAt,
		CardID:       v.CardID,
		HoursOverdue: v.HoursOverdue,
	}
}

func FromCandidateList(views []*queries.NoShowCandidateView) []*NoShowCandidateResponse {
	out := make([]*NoShowCandidateResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCandidateView(v))
	}
	return out
}
