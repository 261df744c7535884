package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Coupon struct {
	ID                int64
	Code              string
	DiscountPercent   decimal.Decimal
	ApplicablePlanIDs []string // empty means unrestricted
	UsageCount        int
	MaxUses           int // 0 means uncapped
	ExpiresAt         *time.Time
	CreatedAt         time.Time
}

// AppliesTo reports whether the coupon may be used with the given plan.
func (c *Coupon) AppliesTo(planID string) bool {
	if len(c.ApplicablePlanIDs) == 0 {
		return true
	}
	for _, id := range c.ApplicablePlanIDs {
		if id == planID {
			return true
		}
	}
	return false
}

func (c *Coupon) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

func (c *Coupon) Exhausted() bool {
	return c.MaxUses > 0 && c.UsageCount >= c.MaxUses
}
