package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodFree     PaymentMethod = "free"
	PaymentMethodRazorpay PaymentMethod = "razorpay"
	PaymentMethodStripe   PaymentMethod = "stripe"
)

type PurchaseStatus string

const (
	PurchaseStatusCompleted PurchaseStatus = "completed"
)

// ScheduledSession is the coaching-session booking attached to a purchase
// after reconciliation.
type ScheduledSession struct {
	ScheduledAt time.Time
	EventRef    string
}

// PurchaseRecord is created exactly once per settled transaction. The
// transaction id is the gateway-issued identifier for paid purchases and a
// locally minted free_<timestamp>_<random> token for the free path.
type PurchaseRecord struct {
	ID               int64
	TransactionID    string
	UserID           string
	ProductID        string
	Amount           decimal.Decimal
	Currency         string
	PaymentMethod    PaymentMethod
	Status           PurchaseStatus
	ScheduledSession *ScheduledSession
	CreatedAt        time.Time
}
