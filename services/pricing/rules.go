package pricing

// Pricing constants. The urgency fee is a fixed amount, not a percentage, so
// an expedited visit costs the same surcharge regardless of service price.
const (
	UrgencyFee = 50.0
	TaxRate    = 0.16
)

// Standing launch promotion: a flat amount off every quote. There is
// deliberately no floor at zero, so a service cheaper than the promo produces
// a negative total. TODO(pricing): confirm with product whether sub-promo
// services should clamp at zero before the promo is widened.
const (
	launchPromoID     = "promo-launch"
	launchPromoName   = "Promoción de lanzamiento"
	launchPromoAmount = 10.0
)

// SurchargeRule maps one recognized dynamic-form answer to a fixed-price
// add-on line item. Unrecognized form keys never reach a rule, so new service
// questions cannot break pricing unless they are wired in here.
type SurchargeRule struct {
	FieldKey string
	ID       string
	Name     string
	Price    float64
	// Matches reports whether the answer activates the rule. A non-matching
	// answer emits nothing at all, not an unselected line item.
	Matches func(v any) bool
}

// surchargeRules is the ordered rule table driving add-on pricing. Adding a
// new service-specific question is a data change in this slice, not a code
// change in the engine.
var surchargeRules = []SurchargeRule{
	{
		FieldKey: "needs_uninstall",
		ID:       "addon-uninstall",
		Name:     "Retiro de equipo existente",
		Price:    30.0,
		Matches:  isTrue,
	},
	{
		FieldKey: "needs_materials",
		ID:       "addon-materials",
		Name:     "Materiales incluidos",
		Price:    45.0,
		Matches:  isTrue,
	},
	{
		FieldKey: "property_type",
		ID:       "addon-commercial",
		Name:     "Recargo por inmueble comercial",
		Price:    60.0,
		Matches:  equalsString("comercial"),
	},
}

func isTrue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

func equalsString(want string) func(v any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && s == want
	}
}
