package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/nischal690/beingconsultant1-sub002/internal/config"
)

// RatesClient fetches the exchange-rate table from the configured provider.
// Rates are fetched once per checkout; there is no caching contract with the
// provider.
type RatesClient struct {
	url        string
	httpClient *http.Client
}

func NewRatesClient(url string) *RatesClient {
	return &RatesClient{
		url:        url,
		httpClient: &http.Client{Timeout: config.RatesTimeout},
	}
}

func (c *RatesClient) Fetch(ctx context.Context) (Rates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates provider returned %d", resp.StatusCode)
	}

	var result struct {
		Base  string                     `json:"base_code"`
		Rates map[string]decimal.Decimal `json:"rates"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Rates) == 0 {
		return nil, fmt.Errorf("rates provider returned empty table")
	}

	return Rates(result.Rates), nil
}
