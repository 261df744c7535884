package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/payment"
	"github.com/nischal690/beingconsultant1-sub002/internal/service"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stubCoupons struct {
	coupons map[string]*domain.Coupon
	err     error
}

func (s *stubCoupons) Validate(_ context.Context, code, _ string) (*domain.Coupon, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.coupons[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, domain.ErrCouponNotFound
	}
	return c, nil
}

type stubRates struct {
	rates service.Rates
	err   error
}

func (s *stubRates) Fetch(_ context.Context) (service.Rates, error) {
	return s.rates, s.err
}

type stubDispatcher struct {
	params []payment.CheckoutParams
	result *payment.CheckoutResult
	err    error
}

func (s *stubDispatcher) Checkout(_ context.Context, p payment.CheckoutParams) (*payment.CheckoutResult, error) {
	s.params = append(s.params, p)
	return s.result, s.err
}

func TestCheckoutDiscountedEuroPriceRoutesToGateway(t *testing.T) {
	// $299 with HALF50 at EUR 0.92 resolves to EUR 137.54 and goes to the
	// paid gateway, not the free path.
	coupons := &stubCoupons{coupons: map[string]*domain.Coupon{
		"HALF50": {Code: "HALF50", DiscountPercent: dec("50")},
	}}
	rates := &stubRates{rates: service.Rates{"EUR": dec("0.92")}}
	dispatcher := &stubDispatcher{result: &payment.CheckoutResult{
		Status:           payment.StatusPending,
		OrderID:          "order_1",
		KeyID:            "rzp_test",
		AmountMinorUnits: 13754,
	}}
	r := newTestRouter(Deps{Coupons: coupons, Rates: rates, Dispatcher: dispatcher})

	body := `{"user_id":"u1","plan_id":"bc-plus-quarterly","gateway":"razorpay","coupon_code":"HALF50","currency":"EUR"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Status   string          `json:"status"`
		Price    decimal.Decimal `json:"price"`
		Currency string          `json:"currency"`
		OrderID  string          `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.True(t, resp.Price.Equal(dec("137.54")), "got %s", resp.Price)
	assert.Equal(t, "EUR", resp.Currency)
	assert.Equal(t, "order_1", resp.OrderID)

	require.Len(t, dispatcher.params, 1)
	p := dispatcher.params[0]
	assert.True(t, p.Price.Equal(dec("137.54")))
	assert.Equal(t, domain.PaymentMethodRazorpay, p.Method)
	assert.Contains(t, p.SuccessURL, "transaction_id={CHECKOUT_SESSION_ID}")
	assert.Contains(t, p.SuccessURL, "coupon_code=HALF50")
}

func TestCheckoutFullDiscountTakesFreePath(t *testing.T) {
	// 100% off a $599 plan settles through the free path: exactly one
	// commit, a synthesized transaction id, no gateway involved.
	coupons := &stubCoupons{coupons: map[string]*domain.Coupon{
		"FULL100": {Code: "FULL100", DiscountPercent: dec("100")},
	}}
	ledger := &stubLedger{rec: &domain.PurchaseRecord{
		TransactionID: "free_1712345678_ab12cd34",
		UserID:        "u1",
		ProductID:     "bc-plus-annual",
		PaymentMethod: domain.PaymentMethodFree,
	}}
	dispatcher := payment.NewDispatcher(ledger)
	r := newTestRouter(Deps{Coupons: coupons, Rates: &stubRates{}, Dispatcher: dispatcher, Ledger: ledger})

	body := `{"user_id":"u1","plan_id":"bc-plus-annual","gateway":"stripe","coupon_code":"FULL100"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"settled"`)
	assert.Contains(t, w.Body.String(), "free_1712345678_ab12cd34")

	require.Len(t, ledger.commits, 1)
	commit := ledger.commits[0]
	assert.Equal(t, domain.PaymentMethodFree, commit.PaymentMethod)
	assert.True(t, commit.Amount.IsZero())
	assert.Equal(t, "FULL100", commit.CouponCode)
}

func TestCheckoutRejectsBadCoupon(t *testing.T) {
	r := newTestRouter(Deps{Coupons: &stubCoupons{}, Rates: &stubRates{}, Dispatcher: &stubDispatcher{}})

	body := `{"user_id":"u1","plan_id":"bc-plus-annual","gateway":"stripe","coupon_code":"NOPE"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not valid")
}

func TestCheckoutUnsupportedCurrencyFallsBackToCanonical(t *testing.T) {
	dispatcher := &stubDispatcher{result: &payment.CheckoutResult{Status: payment.StatusPending}}
	r := newTestRouter(Deps{
		Coupons:    &stubCoupons{},
		Rates:      &stubRates{rates: service.Rates{"EUR": dec("0.92")}},
		Dispatcher: dispatcher,
	})

	body := `{"user_id":"u1","plan_id":"bc-plus-annual","gateway":"stripe","currency":"XYZ"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, dispatcher.params, 1)
	assert.Equal(t, "USD", dispatcher.params[0].Currency)
	assert.True(t, dispatcher.params[0].Price.Equal(dec("599")), "missing rate must not price to zero")
}

func TestCheckoutUnknownPlan(t *testing.T) {
	r := newTestRouter(Deps{Coupons: &stubCoupons{}, Rates: &stubRates{}, Dispatcher: &stubDispatcher{}})

	body := `{"user_id":"u1","plan_id":"nope","gateway":"stripe"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
