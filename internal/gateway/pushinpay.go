package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.pushinpay.com.br"

var (
	// ErrMissingAPIToken means the PushInPay bearer token was never
	// configured. Fatal for any charge or status call, checked before I/O.
	ErrMissingAPIToken = errors.New("pushinpay: API token is not configured")

	// ErrTransactionNotFound is the 404 sentinel on status checks. A charge
	// that has not propagated yet is expected to answer 404, so callers
	// treat this as "still pending", not as a failure.
	ErrTransactionNotFound = errors.New("pushinpay: transaction not found")
)

// GatewayError is any non-2xx, non-404 answer from the provider.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("pushinpay: unexpected status %d: %s", e.StatusCode, e.Body)
}

type Config struct {
	BaseURL    string
	APIToken   string
	WebhookURL string
}

// Charge is the result of a successful cashIn call.
type Charge struct {
	TransactionID string
	PixCode       string
	QRCodeImage   string // data URI, base64 PNG
}

type Client interface {
	// CreateCharge issues a single PIX cashIn request. No retries.
	CreateCharge(ctx context.Context, amountInCents int64) (*Charge, error)
	// FetchChargeStatus returns the provider's raw status string, or
	// ErrTransactionNotFound on 404.
	FetchChargeStatus(ctx context.Context, transactionID string) (string, error)
}

type pushInPayClient struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

func NewPushInPayClient(cfg Config, logger *zap.Logger) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &pushInPayClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

type cashInRequest struct {
	Value      int64    `json:"value"`
	WebhookURL string   `json:"webhook_url,omitempty"`
	SplitRules []string `json:"split_rules"`
}

type cashInResponse struct {
	ID           string `json:"id"`
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
}

type transactionResponse struct {
	Status string `json:"status"`
}

func (p *pushInPayClient) CreateCharge(ctx context.Context, amountInCents int64) (*Charge, error) {
	if p.cfg.APIToken == "" {
		return nil, ErrMissingAPIToken
	}
	if amountInCents <= 0 {
		return nil, fmt.Errorf("pushinpay: amount must be positive, got %d", amountInCents)
	}

	body, err := json.Marshal(cashInRequest{
		Value:      amountInCents,
		WebhookURL: p.cfg.WebhookURL,
		SplitRules: []string{},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/api/pix/cashIn", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	p.setHeaders(req)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pushinpay: cashIn request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &GatewayError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed cashInResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("pushinpay: decoding cashIn response: %w", err)
	}

	p.logger.Info("created PIX charge",
		zap.String("transaction_id", parsed.ID),
		zap.Int64("amount_in_cents", amountInCents))

	return &Charge{
		TransactionID: parsed.ID,
		PixCode:       parsed.QRCode,
		QRCodeImage:   parsed.QRCodeBase64,
	}, nil
}

func (p *pushInPayClient) FetchChargeStatus(ctx context.Context, transactionID string) (string, error) {
	if p.cfg.APIToken == "" {
		return "", ErrMissingAPIToken
	}

	url := fmt.Sprintf("%s/api/transactions/%s", p.cfg.BaseURL, transactionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	p.setHeaders(req)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pushinpay: status request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrTransactionNotFound
	}

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &GatewayError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed transactionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("pushinpay: decoding transaction response: %w", err)
	}

	return parsed.Status, nil
}

func (p *pushInPayClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
}
