package payments

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the payment gateway's REST API. Requests authenticate
// with Basic auth over the key id/secret pair issued by the gateway.
type Client struct {
	BaseURL    string
	KeyID      string
	KeySecret  string
	HTTPClient *http.Client
}

type CreateOrderRequest struct {
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type GatewayPayment struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Status  string `json:"status"` // created, authorized, captured, refunded, failed
	Method  string `json:"method"`
}

type GatewayRefund struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

type gatewayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func NewClient(baseURL, keyID, keySecret string) *Client {
	return &Client{
		BaseURL:   baseURL,
		KeyID:     keyID,
		KeySecret: keySecret,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateOrder registers a gateway order for the given amount in minor units.
func (c *Client) CreateOrder(amount int64, currency, receipt string) (*GatewayOrder, error) {
	requestData := CreateOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}

	var order GatewayOrder
	if err := c.post("/orders", requestData, &order); err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}
	return &order, nil
}

// FetchPayment retrieves a payment by its gateway id.
func (c *Client) FetchPayment(paymentID string) (*GatewayPayment, error) {
	var payment GatewayPayment
	if err := c.get("/payments/"+paymentID, &payment); err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	return &payment, nil
}

// RefundPayment issues a refund for the given amount in minor units.
func (c *Client) RefundPayment(paymentID string, amount int64) (*GatewayRefund, error) {
	requestData := map[string]int64{"amount": amount}

	var refund GatewayRefund
	if err := c.post("/payments/"+paymentID+"/refund", requestData, &refund); err != nil {
		return nil, fmt.Errorf("failed to refund payment: %w", err)
	}
	return &refund, nil
}

func (c *Client) post(path string, body interface{}, dest interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request data: %w", err)
	}

	req, err := http.NewRequest("POST", c.BaseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, dest)
}

func (c *Client) get(path string, dest interface{}) error {
	req, err := http.NewRequest("GET", c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest interface{}) error {
	auth := base64.StdEncoding.EncodeToString([]byte(c.KeyID + ":" + c.KeySecret))
	req.Header.Set("Authorization", "Basic "+auth)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var gwErr gatewayError
		if err := json.Unmarshal(respBody, &gwErr); err == nil && gwErr.Error.Description != "" {
			return fmt.Errorf("gateway error %s: %s", gwErr.Error.Code, gwErr.Error.Description)
		}
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, dest); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
