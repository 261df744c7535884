package domain

import "errors"

var (
	ErrPlanNotFound        = errors.New("plan not found")
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponExpired       = errors.New("coupon expired")
	ErrCouponNotApplicable = errors.New("coupon not applicable to this plan")
	ErrCouponExhausted     = errors.New("coupon usage limit reached")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrPurchaseNotFound    = errors.New("purchase not found")
	ErrProfileNotFound     = errors.New("commerce profile not found")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrUnknownGateway      = errors.New("unknown payment gateway")
	ErrPaymentNotVerified  = errors.New("payment signature verification failed")
)
