package models

// AdditionalService is a single selected add-on line item in a quote.
// Line items only exist for add-ons the client actually selected; toggling an
// add-on off removes the line entirely rather than zeroing it.
type AdditionalService struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Selected bool    `bson:"selected" json:"selected"`
}

// DiscountType distinguishes flat discounts from percentage discounts.
type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

// Discount is a promotional reduction applied to a quote.
type Discount struct {
	ID     string       `bson:"id" json:"id"`
	Name   string       `bson:"name" json:"name"`
	Amount float64      `bson:"amount" json:"amount"`
	Type   DiscountType `bson:"type" json:"type"`
}

// Quote is the itemized price breakdown for one service request.
// A Quote is immutable once produced; whenever an input changes the engine
// returns a fresh Quote, never a mutated one.
//
// Invariant: TotalWithTax = (BasePrice + ImmediateServiceFee +
// Σselected additional − Σdiscounts) × (1 + TaxRate).
type Quote struct {
	BasePrice           float64             `bson:"base_price" json:"base_price"`
	ImmediateServiceFee float64             `bson:"immediate_service_fee" json:"immediate_service_fee"`
	AdditionalServices  []AdditionalService `bson:"additional_services" json:"additional_services"`
	Discounts           []Discount          `bson:"discounts" json:"discounts"`
	Subtotal            float64             `bson:"subtotal" json:"subtotal"`
	Total               float64             `bson:"total" json:"total"`
	TaxRate             float64             `bson:"tax_rate" json:"tax_rate"`
	TotalWithTax        float64             `bson:"total_with_tax" json:"total_with_tax"`
}
