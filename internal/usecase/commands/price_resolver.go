package commands

import (
	"context"

	"washbay/internal/domain/billing"
	"washbay/internal/domain/booking"
	"washbay/internal/pkg/errs"
)

// priceCache memoizes catalog lookups for the lifetime of one run. Prices are
// re-fetched on the next run, so no invalidation is needed.
type priceCache struct {
	catalog CatalogSource
	prices  map[string]billing.Money
}

func newPriceCache(catalog CatalogSource) *priceCache {
	return &priceCache{
		catalog: catalog,
		prices:  make(map[string]billing.Money),
	}
}

func (p *priceCache) variationPrice(ctx context.Context, variationID string) (billing.Money, error) {
	if price, ok := p.prices[variationID]; ok {
		return price, nil
	}
	price, err := p.catalog.GetVariationPrice(ctx, variationID)
	if err != nil {
		return billing.Money{}, err
	}
	p.prices[variationID] = price
	return price, nil
}

// serviceTotal sums the prices of every line item on the booking. The
// currency comes from the first priced item; a mixed-currency booking is an
// error. An unpriced service is an error for the booking, not a silent skip,
// since it points at a data-integrity problem upstream.
func (p *priceCache) serviceTotal(ctx context.Context, b *booking.Booking) (billing.Money, error) {
	if len(b.LineItems) == 0 {
		return billing.Money{}, errs.New("booking has no line items")
	}

	var total billing.Money
	for i, item := range b.LineItems {
		price, err := p.variationPrice(ctx, item.ServiceVariationID)
		if err != nil {
			return billing.Money{}, err
		}
		if i == 0 {
			total = price
			continue
		}
		total, err = total.Add(price)
		if err != nil {
			return billing.Money{}, err
		}
	}
	return total, nil
}
