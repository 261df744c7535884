package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/nischal690/beingconsultant1-sub002/internal/config"
	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
)

// Stripe is the redirect-style gateway: Initiate creates a hosted checkout
// session and the only success signal is the browser coming back to the
// success URL. The ledger is never written from this branch.
type Stripe struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewStripe(cfg *config.Config) *Stripe {
	return &Stripe{
		secretKey:  cfg.StripeSecretKey,
		baseURL:    cfg.StripeURL,
		httpClient: &http.Client{Timeout: config.GatewayTimeout},
	}
}

func (g *Stripe) Name() string {
	return string(domain.PaymentMethodStripe)
}

func (g *Stripe) Initiate(ctx context.Context, intent Intent) (*Initiation, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", intent.SuccessURL)
	form.Set("cancel_url", intent.CancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(intent.Currency))
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(intent.AmountMinorUnits, 10))
	form.Set("line_items[0][price_data][product_data][name]", intent.Description)
	for k, v := range intent.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

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
		return nil, fmt.Errorf("stripe session create returned %d: %s", resp.StatusCode, body)
	}

	var result struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &Initiation{
		Status:      StatusPending,
		OrderID:     result.ID,
		CheckoutURL: result.URL,
	}, nil
}
