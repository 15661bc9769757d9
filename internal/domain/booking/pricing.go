package booking

import "parkease/internal/domain/bookingrequest"

type Pricing struct {
	BaseCents  int64
	TaxCents   int64
	FeeCents   int64
	TotalCents int64
}

// PricingPolicy is the flat rate applied on the approval path. The total
// is the staff estimate; taxes and fees are reported alongside it.
type PricingPolicy struct {
	TaxPercent       int64
	PlatformFeeCents int64
}

func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{TaxPercent: 10, PlatformFeeCents: 250}
}

func (p PricingPolicy) Price(estimated bookingrequest.Money) Pricing {
	return Pricing{
		BaseCents:  estimated.Cents(),
		TaxCents:   estimated.Percent(p.TaxPercent).Cents(),
		FeeCents:   p.PlatformFeeCents,
		TotalCents: estimated.Cents(),
	}
}
