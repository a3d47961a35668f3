package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// BkashClient talks to the bKash tokenized-checkout API. Grant tokens are
// cached and refreshed shortly before expiry.
type BkashClient struct {
	httpClient *http.Client
	baseURL    string
	appKey     string
	appSecret  string
	username   string
	password   string

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

func NewBkashClient(baseURL, appKey, appSecret, username, password string) *BkashClient {
	return &BkashClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		appKey:     appKey,
		appSecret:  appSecret,
		username:   username,
		password:   password,
	}
}

// BkashPayment is the subset of the bKash payment object the storefront
// needs across create and execute.
type BkashPayment struct {
	PaymentID             string `json:"paymentID"`
	BkashURL              string `json:"bkashURL"`
	TrxID                 string `json:"trxID"`
	TransactionStatus     string `json:"transactionStatus"`
	Amount                string `json:"amount"`
	MerchantInvoiceNumber string `json:"merchantInvoiceNumber"`
	StatusCode            string `json:"statusCode"`
	StatusMessage         string `json:"statusMessage"`
}

// Completed reports whether the payment reached its terminal success state.
func (p *BkashPayment) Completed() bool {
	return p.TransactionStatus == "Completed"
}

type bkashTokenResponse struct {
	IDToken   string `json:"id_token"`
	ExpiresIn int    `json:"expires_in"`
}

func (c *BkashClient) grantToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp) {
		return c.token, nil
	}

	payload, _ := json.Marshal(map[string]string{
		"app_key":    c.appKey,
		"app_secret": c.appSecret,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tokenized/checkout/token/grant", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("username", c.username)
	req.Header.Set("password", c.password)

	var token bkashTokenResponse
	if err := c.send(req, &token); err != nil {
		return "", err
	}
	if token.IDToken == "" {
		return "", fmt.Errorf("bkash: token grant returned no token")
	}

	c.token = token.IDToken
	// refresh one minute early
	c.tokenExp = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - time.Minute)
	return c.token, nil
}

// CreatePayment opens a tokenized-checkout payment for the given amount in
// BDT against the merchant invoice (the order number).
func (c *BkashClient) CreatePayment(ctx context.Context, amount int, invoice string) (*BkashPayment, error) {
	body := map[string]string{
		"mode":                  "0011",
		"payerReference":        invoice,
		"callbackURL":           "",
		"amount":                strconv.Itoa(amount),
		"currency":              "BDT",
		"intent":                "sale",
		"merchantInvoiceNumber": invoice,
	}
	return c.doCheckout(ctx, "/tokenized/checkout/create", body)
}

// ExecutePayment finalizes a created payment.
func (c *BkashClient) ExecutePayment(ctx context.Context, paymentID string) (*BkashPayment, error) {
	return c.doCheckout(ctx, "/tokenized/checkout/execute", map[string]string{"paymentID": paymentID})
}

func (c *BkashClient) doCheckout(ctx context.Context, path string, body map[string]string) (*BkashPayment, error) {
	token, err := c.grantToken(ctx)
	if err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	req.Header.Set("X-APP-Key", c.appKey)

	var payment BkashPayment
	if err := c.send(req, &payment); err != nil {
		return nil, err
	}
	if payment.StatusCode != "" && payment.StatusCode != "0000" {
		return nil, fmt.Errorf("bkash: %s (%s)", payment.StatusMessage, payment.StatusCode)
	}
	return &payment, nil
}

func (c *BkashClient) send(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("bkash: unexpected status %d", resp.StatusCode)
	}
	return json.Unmarshal(raw, out)
}
