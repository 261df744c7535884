package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/repository/sqlc"
)

type fakeCouponStore struct {
	coupons      map[string]sqlc.Coupon
	incremented  []string
	incrementErr error
}

func (f *fakeCouponStore) GetCouponByCode(_ context.Context, code string) (sqlc.Coupon, error) {
	c, ok := f.coupons[code]
	if !ok {
		return sqlc.Coupon{}, pgx.ErrNoRows
	}
	return c, nil
}

func (f *fakeCouponStore) IncrementCouponUsage(_ context.Context, code string) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.incremented = append(f.incremented, code)
	return nil
}

func newCouponService(coupons ...sqlc.Coupon) (*CouponService, *fakeCouponStore) {
	store := &fakeCouponStore{coupons: map[string]sqlc.Coupon{}}
	for _, c := range coupons {
		store.coupons[c.Code] = c
	}
	return &CouponService{store: store}, store
}

func TestValidateCoupon(t *testing.T) {
	svc, _ := newCouponService(sqlc.Coupon{
		Code:              "HALF50",
		DiscountPercent:   dec("50"),
		ApplicablePlanIds: []string{"bc-plus-annual"},
	})

	coupon, err := svc.Validate(context.Background(), "  half50 ", "bc-plus-annual")
	require.NoError(t, err)
	assert.True(t, coupon.DiscountPercent.Equal(dec("50")))

	_, err = svc.Validate(context.Background(), "HALF50", "bc-plus-quarterly")
	assert.ErrorIs(t, err, domain.ErrCouponNotApplicable)

	_, err = svc.Validate(context.Background(), "NOPE", "bc-plus-annual")
	assert.ErrorIs(t, err, domain.ErrCouponNotFound)
}

func TestValidateCouponUnrestrictedPlans(t *testing.T) {
	svc, _ := newCouponService(sqlc.Coupon{
		Code:            "FULL100",
		DiscountPercent: dec("100"),
	})

	coupon, err := svc.Validate(context.Background(), "FULL100", "breakthrough-coaching")
	require.NoError(t, err)
	assert.True(t, coupon.DiscountPercent.Equal(dec("100")))
}

func TestValidateCouponExpired(t *testing.T) {
	svc, _ := newCouponService(sqlc.Coupon{
		Code:            "OLD",
		DiscountPercent: dec("10"),
		ExpiresAt:       pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true},
	})

	_, err := svc.Validate(context.Background(), "OLD", "bc-plus-annual")
	assert.ErrorIs(t, err, domain.ErrCouponExpired)
}

func TestValidateCouponExhausted(t *testing.T) {
	svc, _ := newCouponService(sqlc.Coupon{
		Code:            "CAPPED",
		DiscountPercent: dec("10"),
		UsageCount:      5,
		MaxUses:         5,
	})

	_, err := svc.Validate(context.Background(), "CAPPED", "bc-plus-annual")
	assert.ErrorIs(t, err, domain.ErrCouponExhausted)
}

func TestRecordUsageBestEffort(t *testing.T) {
	svc, store := newCouponService()

	svc.RecordUsage(context.Background(), "half50")
	assert.Equal(t, []string{"HALF50"}, store.incremented)

	svc.RecordUsage(context.Background(), "")
	assert.Len(t, store.incremented, 1)

	// A failing increment must not propagate.
	store.incrementErr = errors.New("store down")
	svc.RecordUsage(context.Background(), "HALF50")
}
