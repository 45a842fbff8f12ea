// Package http wraps the HTTP transport the client talks through: one
// blocking GET-JSON capability with ordered query parameters, optional
// retries, and debug logging.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/tensix-io/acled-client/internal/constants"
	"github.com/tensix-io/acled-client/pkg/acled"
)

const maxErrorBodyBytes = 512

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Response is the raw result of one request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client issues requests against a single base URL.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
	userAgent  string
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a logger for the client.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging. Has no effect without a
// logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retrying transient failures (>=500, 429, and
// connection errors). Without it the client makes exactly one attempt per
// request.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout bounds each request, independent of the context deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a client for the given base URL. By default it does
// not retry.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Hand back the final response after retries are exhausted so status
	// handling stays in one place.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: retryClient,
		userAgent:  "acled-client/1.0",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get performs a GET request against path with the given query parameters.
// Parameter order is preserved on the wire; url.Values would sort by key,
// which breaks the field/field_where pairing convention.
func (c *Client) Get(ctx context.Context, path string, params []acled.Pair) (*Response, error) {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + encodeParams(params)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": http.MethodGet,
			"url":    requestURL,
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"bytes":  len(body),
		})
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return response, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, maxErrorBodyBytes))
	}

	return response, nil
}

// encodeParams URL-encodes pairs in their given order.
func encodeParams(params []acled.Pair) string {
	var builder strings.Builder

	for i, pair := range params {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.Value))
	}

	return builder.String()
}

func truncate(body []byte, limit int) string {
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}

	return string(body)
}
