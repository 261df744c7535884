package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/nischal690/beingconsultant1-sub002/internal/config"
	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/notify"
	"github.com/nischal690/beingconsultant1-sub002/internal/payment"
	"github.com/nischal690/beingconsultant1-sub002/internal/service"
)

type rateFetcher interface {
	Fetch(ctx context.Context) (service.Rates, error)
}

type couponValidator interface {
	Validate(ctx context.Context, code, planID string) (*domain.Coupon, error)
}

type checkoutDispatcher interface {
	Checkout(ctx context.Context, p payment.CheckoutParams) (*payment.CheckoutResult, error)
}

type ledgerWriter interface {
	Commit(ctx context.Context, p service.CommitParams) (*domain.PurchaseRecord, error)
	Profile(ctx context.Context, userID string) (*domain.CommerceProfile, error)
}

type reconciler interface {
	Resolve(ctx context.Context, cb service.Callback) (*domain.PurchaseRecord, error)
}

type scheduler interface {
	Attach(ctx context.Context, transactionID string, session domain.ScheduledSession) (*domain.PurchaseRecord, error)
}

type signatureVerifier interface {
	VerifySignature(orderID, paymentID, signature string) bool
}

type Handler struct {
	cfg        *config.Config
	rates      rateFetcher
	coupons    couponValidator
	dispatcher checkoutDispatcher
	ledger     ledgerWriter
	reconcile  reconciler
	schedule   scheduler
	razorpay   signatureVerifier
	notifier   *notify.Notifier
}

type Deps struct {
	Cfg        *config.Config
	Rates      rateFetcher
	Coupons    couponValidator
	Dispatcher checkoutDispatcher
	Ledger     ledgerWriter
	Reconcile  reconciler
	Schedule   scheduler
	Razorpay   signatureVerifier
	Notifier   *notify.Notifier
}

func New(deps Deps) *Handler {
	return &Handler{
		cfg:        deps.Cfg,
		rates:      deps.Rates,
		coupons:    deps.Coupons,
		dispatcher: deps.Dispatcher,
		ledger:     deps.Ledger,
		reconcile:  deps.Reconcile,
		schedule:   deps.Schedule,
		razorpay:   deps.Razorpay,
		notifier:   deps.Notifier,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/api/plans", h.handlePlans)
	r.POST("/api/coupons/validate", h.handleValidateCoupon)
	r.POST("/api/checkout", h.handleCheckout)
	r.POST("/api/checkout/confirm", h.handleConfirm)
	r.GET("/payment/success", h.handlePaymentSuccess)
	r.POST("/api/bookings", h.handleBooking)
}
