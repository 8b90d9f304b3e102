// Package bankclient is a thin client for the banking REST API. The API is
// stateless: there is no token exchange, so credentials accompany every
// authenticated request body.
package bankclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8080/api/v1/banking"

// Credentials identify a user to the API. They are sent in the request body
// of every authenticated call and must never be logged or serialized outside
// the request path.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Transaction is one entry of a user's transaction history. Type is free
// text owned by the API, not an enumeration.
type Transaction struct {
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Timestamp string  `json:"timestamp"`
}

// LoginResponse is the payload of a successful login.
type LoginResponse struct {
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

type newBalanceResponse struct {
	NewBalance float64 `json:"newBalance"`
}

type amountRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Amount   float64 `json:"amount"`
}

// Client talks to one banking API instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to install a
// logging transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a client for the API at baseURL. An empty baseURL falls back
// to DefaultBaseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Call performs one request against baseURL+endpoint. A non-nil body is
// serialized as JSON. Non-2xx responses become an *HTTPError, transport
// failures a *NetworkError. The parsed payload is returned when the response
// declares a JSON content type; responses without a body yield nil.
//
// There are no retries and no timeout beyond what the transport and the
// caller's context provide.
func (c *Client) Call(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	return c.do(ctx, method, c.baseURL+endpoint, body)
}

func (c *Client) do(ctx context.Context, method, fullURL string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return nil, nil
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}

	return json.RawMessage(payload), nil
}

// Register creates a new user account. The API returns no body on success.
func (c *Client) Register(ctx context.Context, creds Credentials) error {
	_, err := c.Call(ctx, http.MethodPost, "/register", creds)
	return err
}

// Login verifies credentials and returns the account's current state.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	payload, err := c.Call(ctx, http.MethodPost, "/login", creds)
	if err != nil {
		return nil, err
	}

	var lr LoginResponse
	if err := json.Unmarshal(payload, &lr); err != nil {
		return nil, fmt.Errorf("decoding login response: %w", err)
	}

	return &lr, nil
}

// Deposit adds amount to the account and returns the new balance.
func (c *Client) Deposit(ctx context.Context, creds Credentials, amount float64) (float64, error) {
	return c.postAmount(ctx, "/deposit", creds, amount)
}

// Withdraw removes amount from the account and returns the new balance.
func (c *Client) Withdraw(ctx context.Context, creds Credentials, amount float64) (float64, error) {
	return c.postAmount(ctx, "/withdraw", creds, amount)
}

func (c *Client) postAmount(ctx context.Context, endpoint string, creds Credentials, amount float64) (float64, error) {
	req := amountRequest{Username: creds.Username, Password: creds.Password, Amount: amount}

	payload, err := c.Call(ctx, http.MethodPost, endpoint, req)
	if err != nil {
		return 0, err
	}

	var nb newBalanceResponse
	if err := json.Unmarshal(payload, &nb); err != nil {
		return 0, fmt.Errorf("decoding balance response: %w", err)
	}

	return nb.NewBalance, nil
}

// Balance returns the account's current balance.
func (c *Client) Balance(ctx context.Context, creds Credentials) (float64, error) {
	payload, err := c.Call(ctx, http.MethodPost, "/balance", creds)
	if err != nil {
		return 0, err
	}

	var br balanceResponse
	if err := json.Unmarshal(payload, &br); err != nil {
		return 0, fmt.Errorf("decoding balance response: %w", err)
	}

	return br.Balance, nil
}

// Transactions returns the account's transaction history, ordered as the
// API returns it.
func (c *Client) Transactions(ctx context.Context, creds Credentials) ([]Transaction, error) {
	payload, err := c.Call(ctx, http.MethodPost, "/transactions", creds)
	if err != nil {
		return nil, err
	}

	var ts []Transaction
	if err := json.Unmarshal(payload, &ts); err != nil {
		return nil, fmt.Errorf("decoding transactions response: %w", err)
	}

	return ts, nil
}

// Health checks the API's liveness endpoint, which lives at the server root
// rather than under the banking path. Any 2xx response means healthy.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, c.healthURL(), nil)
	return err
}

func (c *Client) healthURL() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return c.baseURL + "/actuator/health"
	}

	u.Path = "/actuator/health"
	u.RawQuery = ""

	return u.String()
}
