package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"arta-api/internal/config"
)

type PaymentStatusClient interface {
	GetTransactionStatus(ctx context.Context, orderID string) (*TransactionStatus, error)
}

// TransactionStatus is the subset of the Midtrans status response the
// workflows read, plus the raw body so callers can return it untouched.
type TransactionStatus struct {
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	TransactionTime   string `json:"transaction_time"`

	Raw json.RawMessage `json:"-"`
}

type midtransClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	serverKey  string
}

func NewMidtransClient(midtransCfg *config.Midtrans) PaymentStatusClient {
	return &midtransClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: midtransCfg.BaseAPIURL,
		serverKey:  midtransCfg.ServerKey,
	}
}

func (c *midtransClientImpl) GetTransactionStatus(ctx context.Context, orderID string) (*TransactionStatus, error) {
	url := fmt.Sprintf("%s/v2/%s/status", c.baseApiURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	// Midtrans basic auth: server key as username, empty password.
	auth := base64.StdEncoding.EncodeToString([]byte(c.serverKey + ":"))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("midtrans status request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read midtrans response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("midtrans error %d: %s", resp.StatusCode, string(body))
	}

	var result TransactionStatus
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode midtrans response: %w", err)
	}
	result.Raw = body

	return &result, nil
}
