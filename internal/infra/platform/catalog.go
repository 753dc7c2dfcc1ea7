package platform

import (
	"context"
	"net/http"

	"washbay/internal/domain/billing"
	"washbay/internal/infra"
)

type catalogObjectResponse struct {
	Object wireCatalogObject `json:"object"`
}

type wireCatalogObject struct {
	ID                string                 `json:"id"`
	Type              string                 `json:"type"`
	ItemVariationData *wireItemVariationData `json:"item_variation_data,omitempty"`
}

type wireItemVariationData struct {
	Name       string     `json:"name"`
	PriceMoney *wireMoney `json:"price_money,omitempty"`
}

// GetVariationPrice fetches a catalog variation and returns its price. A
// variation without a price is a data-integrity problem upstream, so it is an
// error here, never a zero amount.
func (c *Client) GetVariationPrice(ctx context.Context, variationID string) (billing.Money, error) {
	var resp catalogObjectResponse
	if err := c.do(ctx, http.MethodGet, "/v2/catalog/object/"+variationID, nil, nil, &resp); err != nil {
		return billing.Money{}, err
	}

	data := resp.Object.ItemVariationData
	if data == nil || data.PriceMoney == nil {
		return billing.Money{}, infra.WrapRepoErr(
			"catalog variation "+variationID+" has no price", nil, infra.KindBadResponse)
	}

	return billing.NewMoney(data.PriceMoney.Amount, data.PriceMoney.Currency), nil
}
