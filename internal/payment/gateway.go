package payment

import "context"

// Status is the dispatcher's view of a checkout attempt. Redirect-style
// gateways leave the process in Pending; Settled is only ever inferred from a
// later confirmation or the success-page callback.
type Status string

const (
	StatusSettled Status = "settled"
	StatusPending Status = "pending"
	StatusFailed  Status = "failed"
)

// Intent is what the dispatcher hands to a gateway: the resolved price in the
// gateway's minor unit plus the metadata that has to survive the round trip.
type Intent struct {
	AmountMinorUnits int64
	Currency         string
	Description      string
	Metadata         map[string]string
	SuccessURL       string
	CancelURL        string
}

// Initiation is a gateway's answer to Initiate. Which fields are set depends
// on the provider's checkout style.
type Initiation struct {
	Status      Status
	OrderID     string
	CheckoutURL string // hosted-checkout redirect target
	KeyID       string // publishable key for modal checkout
}

// Gateway is one interchangeable payment provider. The dispatcher depends
// only on this contract.
type Gateway interface {
	Name() string
	Initiate(ctx context.Context, intent Intent) (*Initiation, error)
}
