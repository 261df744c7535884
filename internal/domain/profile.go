package domain

import "time"

// CommerceProfile is the per-user commerce state. Membership fields are
// mutated only by the ledger writer, inside a locked transaction.
type CommerceProfile struct {
	UserID           string
	IsMember         bool
	MembershipPlanID string
	MembershipExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (p *CommerceProfile) MembershipActive(now time.Time) bool {
	return p.IsMember && p.MembershipExpiry != nil && p.MembershipExpiry.After(now)
}
