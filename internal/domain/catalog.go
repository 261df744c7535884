package domain

import "github.com/shopspring/decimal"

// DefaultProgramID is the coaching program reconciliation falls back to when
// a payment callback carries no usable transaction identifiers. There is a
// single program today; a second one needs a smarter fallback.
const DefaultProgramID = "breakthrough-coaching"

var catalog = map[string]Plan{
	"bc-plus-quarterly": {
		ID:             "bc-plus-quarterly",
		Title:          "BC Plus — 3 Months",
		BasePrice:      decimal.RequireFromString("299"),
		DurationMonths: 3,
		Kind:           PlanKindMembership,
	},
	"bc-plus-annual": {
		ID:             "bc-plus-annual",
		Title:          "BC Plus — 12 Months",
		BasePrice:      decimal.RequireFromString("599"),
		OriginalPrice:  decimalPtr("1196"),
		DurationMonths: 12,
		Kind:           PlanKindMembership,
	},
	DefaultProgramID: {
		ID:        DefaultProgramID,
		Title:     "Career Breakthrough Coaching",
		BasePrice: decimal.RequireFromString("299"),
		Kind:      PlanKindProgram,
	},
}

// PlanByID looks up a catalog entry. The catalog is config-time data and is
// never mutated at runtime.
func PlanByID(id string) (Plan, error) {
	p, ok := catalog[id]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return p, nil
}

// Plans returns the catalog in no particular order.
func Plans() []Plan {
	out := make([]Plan, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, p)
	}
	return out
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
