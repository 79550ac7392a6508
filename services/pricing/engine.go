package pricing

import (
	"oficio/models"
)

// ComputeQuote derives the full itemized quote for a service request.
//
// basePrice comes from the catalog and is assumed finite and non-negative;
// the caller guards that precondition since the engine has no backend access
// to verify the service exists. formAnswers is the open-ended dynamic-form
// state: only keys present in the surcharge rule table contribute, everything
// else is ignored.
//
// The computation is pure and cheap enough to run on every form change:
// no I/O, no hidden state, identical inputs always yield an identical Quote.
func ComputeQuote(basePrice float64, formAnswers map[string]any, immediateService bool) models.Quote {
	fee := 0.0
	if immediateService {
		fee = UrgencyFee
	}

	var additional []models.AdditionalService
	addOnTotal := 0.0
	for _, rule := range surchargeRules {
		v, ok := formAnswers[rule.FieldKey]
		if !ok || !rule.Matches(v) {
			continue
		}
		additional = append(additional, models.AdditionalService{
			ID:       rule.ID,
			Name:     rule.Name,
			Price:    rule.Price,
			Selected: true,
		})
		addOnTotal += rule.Price
	}

	discounts := []models.Discount{
		{
			ID:     launchPromoID,
			Name:   launchPromoName,
			Amount: launchPromoAmount,
			Type:   models.DiscountFixed,
		},
	}
	discountTotal := 0.0
	for _, d := range discounts {
		discountTotal += d.Amount
	}

	subtotal := basePrice + fee + addOnTotal
	// Flat discount, no clamp: cheap services can legitimately go negative here.
	total := subtotal - discountTotal

	return models.Quote{
		BasePrice:           basePrice,
		ImmediateServiceFee: fee,
		AdditionalServices:  additional,
		Discounts:           discounts,
		Subtotal:            subtotal,
		Total:               total,
		TaxRate:             TaxRate,
		TotalWithTax:        total * (1 + TaxRate),
	}
}
