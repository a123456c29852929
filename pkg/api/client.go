// Package api provides the client for the campaign submissions endpoint.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"leadboard/pkg/contacts"
	"leadboard/pkg/logging"
)

// DefaultLimit is the number of submissions requested per fetch. The
// whole batch is filtered, sorted and paged client-side.
const DefaultLimit = 500

// LoadError is a failed fetch: transport failure or a non-success status.
// Message is safe to show to the user.
type LoadError struct {
	Message string
	Err     error
}

func (e *LoadError) Error() string { return e.Message }

func (e *LoadError) Unwrap() error { return e.Err }

// Client is an HTTP client for the submissions API.
type Client struct {
	baseURL    string
	token      string
	limit      int
	httpClient *http.Client
	logger     *logging.Logger
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithToken sets the bearer token sent on every request.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithLimit overrides the number of submissions requested per fetch.
func WithLimit(limit int) ClientOption {
	return func(c *Client) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// NewClient creates a submissions API client.
// baseURL is the API root (e.g. "https://api.example.com/v1").
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		limit:   DefaultLimit,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logging.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// submissionsEnvelope is the wire shape of the list endpoint.
type submissionsEnvelope struct {
	Items []contacts.Contact `json:"items"`
}

// FetchSubmissions fetches one batch of campaign-form submissions and
// normalizes each record with the default mutable fields. The raw fields
// are preserved verbatim; absent fields are tolerated, not rejected.
func (c *Client) FetchSubmissions(ctx context.Context) ([]contacts.Contact, error) {
	url := c.baseURL + "/submissions?limit=" + strconv.Itoa(c.limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &LoadError{
			Message: "Could not build the submissions request.",
			Err:     fmt.Errorf("api: create request: %w", err),
		}
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("submissions fetch failed", "error", err)
		return nil, &LoadError{
			Message: "Could not reach the submissions API. Check your connection and retry.",
			Err:     fmt.Errorf("api: fetch submissions: %w", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("submissions fetch rejected", "status", resp.StatusCode)
		return nil, &LoadError{
			Message: fmt.Sprintf("The submissions API answered with status %d.", resp.StatusCode),
			Err:     fmt.Errorf("api: fetch submissions: status %d", resp.StatusCode),
		}
	}

	var envelope submissionsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &LoadError{
			Message: "The submissions API returned an unreadable response.",
			Err:     fmt.Errorf("api: decode submissions: %w", err),
		}
	}

	for i := range envelope.Items {
		envelope.Items[i].Normalize()
	}

	c.logger.Info("submissions loaded", "count", len(envelope.Items))
	return envelope.Items, nil
}
