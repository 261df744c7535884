package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/service"
)

type ledgerWriter interface {
	Commit(ctx context.Context, p service.CommitParams) (*domain.PurchaseRecord, error)
}

// Dispatcher routes a resolved checkout to the free-activation path or to one
// of the registered gateways.
type Dispatcher struct {
	ledger   ledgerWriter
	gateways map[domain.PaymentMethod]Gateway
}

func NewDispatcher(ledger ledgerWriter, gateways ...Gateway) *Dispatcher {
	m := make(map[domain.PaymentMethod]Gateway, len(gateways))
	for _, g := range gateways {
		m[domain.PaymentMethod(g.Name())] = g
	}
	return &Dispatcher{ledger: ledger, gateways: m}
}

type CheckoutParams struct {
	UserID     string
	Plan       domain.Plan
	Method     domain.PaymentMethod
	Price      decimal.Decimal
	Currency   string
	CouponCode string
	SuccessURL string
	CancelURL  string
}

type CheckoutResult struct {
	Status           Status
	Record           *domain.PurchaseRecord // set when settled synchronously
	OrderID          string
	CheckoutURL      string
	KeyID            string
	AmountMinorUnits int64
}

// Checkout executes the gateway flow for a resolved price. A zero price is a
// hard branch to the free path, never a zero-amount gateway intent; a
// non-zero price must name a registered gateway.
func (d *Dispatcher) Checkout(ctx context.Context, p CheckoutParams) (*CheckoutResult, error) {
	if service.IsFree(p.Price) {
		record, err := d.ledger.Commit(ctx, service.CommitParams{
			UserID:        p.UserID,
			PlanID:        p.Plan.ID,
			PaymentMethod: domain.PaymentMethodFree,
			Amount:        decimal.Zero,
			Currency:      p.Currency,
			CouponCode:    p.CouponCode,
		})
		if err != nil {
			return &CheckoutResult{Status: StatusFailed}, fmt.Errorf("ledger write failed: %w", err)
		}
		return &CheckoutResult{Status: StatusSettled, Record: record}, nil
	}

	if p.Method == domain.PaymentMethodFree {
		return nil, domain.ErrInvalidAmount
	}

	gateway, ok := d.gateways[p.Method]
	if !ok {
		return nil, domain.ErrUnknownGateway
	}

	init, err := gateway.Initiate(ctx, Intent{
		AmountMinorUnits: service.MinorUnits(p.Price, p.Currency),
		Currency:         p.Currency,
		Description:      p.Plan.Title,
		Metadata: map[string]string{
			"user_id":     p.UserID,
			"plan_id":     p.Plan.ID,
			"coupon_code": p.CouponCode,
		},
		SuccessURL: p.SuccessURL,
		CancelURL:  p.CancelURL,
	})
	if err != nil {
		return nil, fmt.Errorf("initiate %s checkout: %w", gateway.Name(), err)
	}

	return &CheckoutResult{
		Status:           init.Status,
		OrderID:          init.OrderID,
		CheckoutURL:      init.CheckoutURL,
		KeyID:            init.KeyID,
		AmountMinorUnits: service.MinorUnits(p.Price, p.Currency),
	}, nil
}

// Gateway returns a registered gateway by payment method.
func (d *Dispatcher) Gateway(method domain.PaymentMethod) (Gateway, bool) {
	g, ok := d.gateways[method]
	return g, ok
}
