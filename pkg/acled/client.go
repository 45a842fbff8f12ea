package acled

import (
	"context"
	"time"
)

// Client is the public surface of the library: one fetch operation per
// endpoint. Each call follows pagination to completion and returns either
// every matching record or an error, never a partial result.
type Client interface {
	// Events queries the "acled" endpoint. A nil query returns everything.
	Events(ctx context.Context, query *EventsQuery) ([]Event, error)
	// DeletedEvents queries the "deleted" endpoint. A nil query returns
	// everything.
	DeletedEvents(ctx context.Context, query *DeletedQuery) ([]DeletedEvent, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an acled.Client.
//
// # Pagination
//
// The API sends no "more pages" signal; a fetch is complete when a page
// comes back with fewer than PageLimit records. PageLimit is therefore
// load-bearing: it is the single value used both to size requests and to
// detect the final page. Leave it zero unless your account's row limit
// differs from the upstream default of 5000; a PageLimit larger than what
// the API actually returns makes every page look final.
//
// # Retries and timeouts
//
// The fetch loop itself never retries; a transport failure ends the fetch.
// RetryMax > 0 opts the underlying transport into retrying transient
// failures (>=500, 429, connection errors) before the loop sees them.
type Config struct {
	// Key is the API key issued for your account. Required.
	Key string
	// Email is the account email registered with the key. Required.
	Email string

	// BaseURL overrides the API endpoint. Defaults to
	// "https://api.acleddata.com". A missing scheme defaults to https;
	// a trailing slash is trimmed.
	BaseURL string

	// PageLimit is the expected number of records per full page. Zero
	// means the upstream default (5000). Any other value is also sent as
	// an explicit "limit" parameter so the requested page size and the
	// termination threshold cannot diverge.
	PageLimit int

	// HTTPTimeout bounds each page request. Zero means the transport
	// default (30s). Per-call deadlines should use the context instead.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of transport-level retries for
	// transient failures. Zero disables retrying.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
