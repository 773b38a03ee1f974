package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Order capture statuses reported by the provider.
const (
	StatusCompleted = "COMPLETED"
	StatusDeclined  = "DECLINED"
)

var (
	ErrOrderNotFound = fmt.Errorf("order not found at provider")
	ErrUnauthorized  = fmt.Errorf("provider rejected credentials")
)

// Client talks to the payment provider's order API. Access tokens are
// fetched with the client-credentials grant and cached until expiry.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	client       *http.Client
	logger       zerolog.Logger

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

func NewClient(baseURL, clientID, clientSecret string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger.With().Str("component", "gateway").Logger(),
	}
}

// CreateOrderRequest carries the correlation data embedded on the
// provider order, so the order can be verified later without a local
// lookup.
type CreateOrderRequest struct {
	AccountID int64
	Kind      string
	Amount    float64
}

// CaptureResult is the provider's answer to a capture attempt.
type CaptureResult struct {
	Status string
	Amount float64
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount struct {
		Value string `json:"value"`
	} `json:"amount"`
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp) {
		return c.token, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from token endpoint", resp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	c.token = tok.AccessToken
	// Renew a minute early so in-flight requests never carry a token
	// that expires mid-call.
	c.tokenExp = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - time.Minute)
	return c.token, nil
}

// CreateOrder registers a new payment order with the provider and
// returns the provider-issued order id.
func (c *Client) CreateOrder(ctx context.Context, order CreateOrderRequest) (string, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"amount": map[string]string{
			"value": strconv.FormatFloat(order.Amount, 'f', 2, 64),
		},
		"custom_id": fmt.Sprintf("%d:%s:%s", order.AccountID, order.Kind, strconv.FormatFloat(order.Amount, 'f', 2, 64)),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/checkout/orders", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create order request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to create provider order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d creating provider order", resp.StatusCode)
	}

	var created orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode order response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("provider returned empty order id")
	}

	c.logger.Info().Str("order_id", created.ID).Msg("provider order created")
	return created.ID, nil
}

// CaptureOrder asks the provider to capture the payment for orderID.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (CaptureResult, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return CaptureResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/checkout/orders/"+orderID+"/capture", nil)
	if err != nil {
		return CaptureResult{}, fmt.Errorf("failed to create capture request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return CaptureResult{}, fmt.Errorf("failed to capture order %s: %w", orderID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusNotFound:
		return CaptureResult{}, ErrOrderNotFound
	default:
		return CaptureResult{}, fmt.Errorf("unexpected status %d capturing order %s", resp.StatusCode, orderID)
	}

	var captured orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&captured); err != nil {
		return CaptureResult{}, fmt.Errorf("failed to decode capture response for order %s: %w", orderID, err)
	}

	amount, err := strconv.ParseFloat(captured.Amount.Value, 64)
	if err != nil && captured.Amount.Value != "" {
		return CaptureResult{}, fmt.Errorf("bad amount %q in capture response: %w", captured.Amount.Value, err)
	}

	c.logger.Info().Str("order_id", orderID).Str("status", captured.Status).Msg("capture attempt finished")
	return CaptureResult{Status: captured.Status, Amount: amount}, nil
}
