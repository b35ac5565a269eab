package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// PaymentStatusCaptured is the only gateway status that proves funds
// were received. "authorized", "failed", "refunded" etc. are not proof.
const PaymentStatusCaptured = "captured"

// Client is the interface to the payment gateway.
type Client interface {
	// CreateOrder creates a gateway order for the given amount.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)

	// FetchPayment retrieves the authoritative state of a payment.
	FetchPayment(ctx context.Context, paymentID string) (*Payment, error)
}

// CreateOrderRequest contains the parameters for creating a gateway order.
type CreateOrderRequest struct {
	Amount   int64             `json:"amount"` // paise
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// Order is a gateway order object.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Payment is a gateway payment object.
type Payment struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Status  string `json:"status"`
	Method  string `json:"method"`
}

// RazorpayClient is an HTTP client for the Razorpay REST API.
// All requests use HTTP Basic auth with the key id/secret pair; the
// secret never appears in responses or logs.
type RazorpayClient struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
}

// NewRazorpayClient creates a new Razorpay API client.
func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		baseURL:   defaultBaseURL,
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewRazorpayClientWithBaseURL creates a client against a custom endpoint.
// Used for sandbox environments and tests.
func NewRazorpayClientWithBaseURL(keyID, keySecret, baseURL string) *RazorpayClient {
	c := NewRazorpayClient(keyID, keySecret)
	c.baseURL = baseURL
	return c
}

// CreateOrder calls POST /orders.
func (c *RazorpayClient) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var order Order
	if err := c.do(httpReq, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// FetchPayment calls GET /payments/{id}.
func (c *RazorpayClient) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/payments/"+paymentID, nil)
	if err != nil {
		return nil, err
	}

	var payment Payment
	if err := c.do(httpReq, &payment); err != nil {
		return nil, err
	}

	return &payment, nil
}

// do executes an authenticated request and decodes the JSON response.
func (c *RazorpayClient) do(req *http.Request, out any) error {
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Read a bounded chunk of the error body for server-side logs.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{StatusCode: resp.StatusCode, Body: string(detail)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return nil
}

// APIError is a non-2xx response from the gateway.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Body)
}
