package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/nischal690/beingconsultant1-sub002/internal/config"
	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
)

// Razorpay is the synchronous-confirmation gateway: Initiate creates an order
// for the client-side modal, and the browser posts the signed confirmation
// back to us in the same session.
type Razorpay struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

func NewRazorpay(cfg *config.Config) *Razorpay {
	return &Razorpay{
		keyID:      cfg.RazorpayKeyID,
		keySecret:  cfg.RazorpayKeySecret,
		baseURL:    cfg.RazorpayURL,
		httpClient: &http.Client{Timeout: config.GatewayTimeout},
	}
}

func (g *Razorpay) Name() string {
	return string(domain.PaymentMethodRazorpay)
}

func (g *Razorpay) Initiate(ctx context.Context, intent Intent) (*Initiation, error) {
	payload := map[string]interface{}{
		"amount":   intent.AmountMinorUnits,
		"currency": intent.Currency,
		"receipt":  "rcpt_" + uuid.New().String(),
		"notes":    intent.Metadata,
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(payloadJSON))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("razorpay order create returned %d: %s", resp.StatusCode, body)
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &Initiation{
		Status:  StatusPending,
		OrderID: result.ID,
		KeyID:   g.keyID,
	}, nil
}

// VerifySignature checks the confirmation the browser posts back after the
// modal closes: HMAC-SHA256 of "<order_id>|<payment_id>" under the key
// secret. The ledger must not be touched until this passes.
func (g *Razorpay) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
