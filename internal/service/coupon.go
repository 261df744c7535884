package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/repository/sqlc"
)

type couponStore interface {
	GetCouponByCode(ctx context.Context, code string) (sqlc.Coupon, error)
	IncrementCouponUsage(ctx context.Context, code string) error
}

type CouponService struct {
	store couponStore
}

func NewCouponService(queries *sqlc.Queries) *CouponService {
	return &CouponService{store: queries}
}

// Validate checks a coupon against a plan and returns it when usable.
// Rejections are the typed domain errors; callers turn them into user-facing
// messages, never control flow elsewhere.
func (s *CouponService) Validate(ctx context.Context, code, planID string) (*domain.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	row, err := s.store.GetCouponByCode(ctx, code)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("get coupon: %w", err)
	}

	coupon := couponFromRow(row)

	if coupon.Expired(time.Now()) {
		return nil, domain.ErrCouponExpired
	}
	if !coupon.AppliesTo(planID) {
		return nil, domain.ErrCouponNotApplicable
	}
	if coupon.Exhausted() {
		return nil, domain.ErrCouponExhausted
	}

	return coupon, nil
}

// RecordUsage bumps the coupon's usage counter. Best-effort telemetry: it is
// called only after a ledger commit and a failure never rolls the payment
// back, so errors are logged and swallowed.
func (s *CouponService) RecordUsage(ctx context.Context, code string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return
	}
	if err := s.store.IncrementCouponUsage(ctx, code); err != nil {
		slog.Error("increment coupon usage", "code", code, "error", err)
	}
}
