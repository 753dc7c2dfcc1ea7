package platform

import (
	"context"
	"net/http"

	"washbay/internal/infra"
	"washbay/internal/usecase/commands"
)

type createPaymentRequest struct {
	IdempotencyKey string    `json:"idempotency_key"`
	SourceID       string    `json:"source_id"`
	CustomerID     string    `json:"customer_id,omitempty"`
	ReferenceID    string    `json:"reference_id,omitempty"`
	AmountMoney    wireMoney `json:"amount_money"`
	Note           string    `json:"note,omitempty"`
}

type createPaymentResponse struct {
	Payment wirePayment `json:"payment"`
}

type wirePayment struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CreatePayment charges a saved card. The platform deduplicates on the
// idempotency key: replaying a request with the same key returns the original
// payment instead of charging again, so a replay is indistinguishable from
// success here.
func (c *Client) CreatePayment(ctx context.Context, req commands.ChargeRequest) (string, error) {
	body := createPaymentRequest{
		IdempotencyKey: req.IdempotencyKey,
		SourceID:       req.SourceID,
		CustomerID:     req.CustomerID,
		ReferenceID:    req.ReferenceID,
		AmountMoney: wireMoney{
			Amount:   req.Amount.Cents(),
			Currency: req.Amount.Currency(),
		},
		Note: req.Note,
	}

	var resp createPaymentResponse
	if err := c.do(ctx, http.MethodPost, "/v2/payments", nil, body, &resp); err != nil {
		return "", err
	}
	if resp.Payment.ID == "" {
		return "", infra.WrapRepoErr("payment response missing id", nil, infra.KindBadResponse)
	}
	return resp.Payment.ID, nil
}
