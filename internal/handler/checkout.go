package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nischal690/beingconsultant1-sub002/internal/config"
	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/payment"
	"github.com/nischal690/beingconsultant1-sub002/internal/service"
)

func (h *Handler) handlePlans(c *gin.Context) {
	plans := domain.Plans()
	out := make([]gin.H, 0, len(plans))
	for _, p := range plans {
		item := gin.H{
			"id":         p.ID,
			"title":      p.Title,
			"base_price": p.BasePrice,
			"currency":   config.CanonicalCurrency,
			"kind":       p.Kind,
		}
		if p.OriginalPrice != nil {
			item["original_price"] = *p.OriginalPrice
		}
		if p.DurationMonths > 0 {
			item["duration_months"] = p.DurationMonths
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, gin.H{"plans": out})
}

type validateCouponReq struct {
	Code   string `json:"code" binding:"required"`
	PlanID string `json:"plan_id" binding:"required"`
}

func (h *Handler) handleValidateCoupon(c *gin.Context) {
	var req validateCouponReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coupon, err := h.coupons.Validate(c.Request.Context(), req.Code, req.PlanID)
	if err != nil {
		status, msg := couponErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":             coupon.Code,
		"discount_percent": coupon.DiscountPercent,
	})
}

type checkoutReq struct {
	UserID     string `json:"user_id" binding:"required"`
	PlanID     string `json:"plan_id" binding:"required"`
	Gateway    string `json:"gateway" binding:"required"`
	CouponCode string `json:"coupon_code"`
	Currency   string `json:"currency"`
}

func (h *Handler) handleCheckout(c *gin.Context) {
	var req checkoutReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := domain.PlanByID(req.PlanID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown plan"})
		return
	}

	discount := decimal.Zero
	if req.CouponCode != "" {
		coupon, err := h.coupons.Validate(c.Request.Context(), req.CouponCode, plan.ID)
		if err != nil {
			status, msg := couponErrorResponse(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		discount = coupon.DiscountPercent
	}

	currency, price, err := h.resolveDisplayPrice(c, plan.BasePrice, discount, req.Currency)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not resolve price"})
		return
	}

	result, err := h.dispatcher.Checkout(c.Request.Context(), payment.CheckoutParams{
		UserID:     req.UserID,
		Plan:       plan,
		Method:     domain.PaymentMethod(req.Gateway),
		Price:      price,
		Currency:   currency,
		CouponCode: strings.ToUpper(strings.TrimSpace(req.CouponCode)),
		SuccessURL: h.buildSuccessURL(req, plan, price, currency, discount),
		CancelURL:  h.cfg.CancelURL(),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownGateway), errors.Is(err, domain.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case result != nil && result.Status == payment.StatusFailed:
			// Payment-side success with a failed entitlement write is the
			// serious class: log loudly, tell the user something went wrong.
			slog.Error("ledger write failed", "user_id", req.UserID, "plan_id", plan.ID, "error", err)
			h.notifier.Error(err, "checkout ledger write")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment could not be recorded, please contact support"})
		default:
			slog.Error("gateway initiation failed", "gateway", req.Gateway, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway unavailable, please retry"})
		}
		return
	}

	resp := gin.H{
		"status":   string(result.Status),
		"price":    price,
		"currency": currency,
	}
	switch result.Status {
	case payment.StatusSettled:
		resp["transaction_id"] = result.Record.TransactionID
		h.notifyPurchase(c, result.Record)
	case payment.StatusPending:
		resp["amount_minor_units"] = result.AmountMinorUnits
		if result.OrderID != "" {
			resp["order_id"] = result.OrderID
		}
		if result.CheckoutURL != "" {
			resp["checkout_url"] = result.CheckoutURL
		}
		if result.KeyID != "" {
			resp["key_id"] = result.KeyID
		}
	}
	c.JSON(http.StatusOK, resp)
}

type confirmReq struct {
	UserID            string          `json:"user_id" binding:"required"`
	PlanID            string          `json:"plan_id" binding:"required"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	CouponCode        string          `json:"coupon_code"`
	RazorpayOrderID   string          `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string          `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string          `json:"razorpay_signature" binding:"required"`
}

// handleConfirm is the synchronous-confirmation callback for the modal
// gateway. The signature check gates the ledger write.
func (h *Handler) handleConfirm(c *gin.Context) {
	var req confirmReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.razorpay.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": domain.ErrPaymentNotVerified.Error()})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = config.CanonicalCurrency
	}

	record, err := h.ledger.Commit(c.Request.Context(), service.CommitParams{
		UserID:        req.UserID,
		PlanID:        req.PlanID,
		PaymentMethod: domain.PaymentMethodRazorpay,
		Amount:        req.Amount,
		Currency:      currency,
		CouponCode:    req.CouponCode,
		TransactionID: req.RazorpayPaymentID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown plan"})
			return
		}
		slog.Error("ledger write failed after payment", "user_id", req.UserID, "payment_id", req.RazorpayPaymentID, "error", err)
		h.notifier.Error(err, "confirm ledger write")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "payment received but could not be recorded, please contact support"})
		return
	}

	h.notifyPurchase(c, record)
	c.JSON(http.StatusOK, gin.H{
		"status":         "settled",
		"transaction_id": record.TransactionID,
	})
}

// resolveDisplayPrice applies the discount and converts to the requested
// display currency. A missing rate falls back to canonical-currency display,
// never to an accidental zero.
func (h *Handler) resolveDisplayPrice(c *gin.Context, base, discount decimal.Decimal, currency string) (string, decimal.Decimal, error) {
	if currency == "" {
		currency = config.CanonicalCurrency
	}
	currency = strings.ToUpper(currency)

	rates := service.Rates{}
	if currency != config.CanonicalCurrency {
		fetched, err := h.rates.Fetch(c.Request.Context())
		if err != nil {
			slog.Warn("rates fetch failed, falling back to canonical currency", "error", err)
			currency = config.CanonicalCurrency
		} else {
			rates = fetched
		}
	}

	price, err := service.ResolvePrice(base, discount, currency, rates)
	if errors.Is(err, domain.ErrUnsupportedCurrency) {
		currency = config.CanonicalCurrency
		price, err = service.ResolvePrice(base, discount, currency, rates)
	}
	return currency, price, err
}

// buildSuccessURL assembles the redirect target for the hosted-checkout
// gateway. The literal {CHECKOUT_SESSION_ID} placeholder is substituted by
// the provider and becomes our transaction id.
func (h *Handler) buildSuccessURL(req checkoutReq, plan domain.Plan, price decimal.Decimal, currency string, discount decimal.Decimal) string {
	q := url.Values{}
	q.Set("user_id", req.UserID)
	q.Set("product_name", plan.ID)
	q.Set("amount", price.String())
	q.Set("currency", currency)
	if req.CouponCode != "" {
		q.Set("coupon_code", strings.ToUpper(strings.TrimSpace(req.CouponCode)))
		q.Set("coupon_discount", discount.String())
	}
	return h.cfg.SuccessURL() + "?" + q.Encode() + "&transaction_id={CHECKOUT_SESSION_ID}"
}

func (h *Handler) notifyPurchase(c *gin.Context, record *domain.PurchaseRecord) {
	amount, _ := record.Amount.Float64()
	h.notifier.Purchase(record.UserID, record.ProductID, record.TransactionID, string(record.PaymentMethod), amount, record.Currency)

	profile, err := h.ledger.Profile(c.Request.Context(), record.UserID)
	if err == nil && profile.MembershipExpiry != nil {
		h.notifier.MembershipExtended(record.UserID, profile.MembershipPlanID, *profile.MembershipExpiry)
	}
}

func couponErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrCouponNotFound):
		return http.StatusBadRequest, "This coupon code is not valid."
	case errors.Is(err, domain.ErrCouponExpired):
		return http.StatusBadRequest, "This coupon has expired."
	case errors.Is(err, domain.ErrCouponNotApplicable):
		return http.StatusBadRequest, "This coupon does not apply to the selected plan."
	case errors.Is(err, domain.ErrCouponExhausted):
		return http.StatusBadRequest, "This coupon has reached its usage limit."
	default:
		return http.StatusInternalServerError, "Could not validate coupon, please try again."
	}
}
