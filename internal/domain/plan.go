package domain

import "github.com/shopspring/decimal"

type PlanKind string

const (
	PlanKindMembership PlanKind = "membership"
	PlanKindProgram    PlanKind = "program"
)

// Plan is an immutable catalog entry. All base prices are authored in the
// canonical currency (USD).
type Plan struct {
	ID             string
	Title          string
	BasePrice      decimal.Decimal
	OriginalPrice  *decimal.Decimal
	DurationMonths int
	Kind           PlanKind
}

func (p *Plan) IsMembership() bool {
	return p.Kind == PlanKindMembership
}
