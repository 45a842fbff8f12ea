// Package client implements acled.Client: envelope decoding, record
// conversion, and the sequential page loop over the read endpoints.
package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tensix-io/acled-client/internal/constants"
	internalhttp "github.com/tensix-io/acled-client/internal/http"
	"github.com/tensix-io/acled-client/pkg/acled"
)

// Client implements the acled.Client interface.
type Client struct {
	httpClient *internalhttp.Client
	key        string
	email      string
	pageLimit  int
}

// New creates a client from the given configuration. The key and email are
// required; everything else falls back to defaults.
func New(config *acled.Config) (*Client, error) {
	if config == nil {
		return nil, acled.ErrConfigRequired
	}

	if config.Key == "" {
		return nil, acled.ErrKeyRequired
	}

	if config.Email == "" {
		return nil, acled.ErrEmailRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	pageLimit := config.PageLimit
	if pageLimit == 0 {
		pageLimit = constants.DefaultPageLimit
	}

	httpClient := internalhttp.NewClient(baseURL, httpOptions(config)...)

	return &Client{
		httpClient: httpClient,
		key:        config.Key,
		email:      config.Email,
		pageLimit:  pageLimit,
	}, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *acled.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return opts
}

// Events implements acled.Client.Events.
func (c *Client) Events(ctx context.Context, query *acled.EventsQuery) ([]acled.Event, error) {
	var params []acled.Pair
	if query != nil {
		params = query.Parameters()
	}

	return fetchAll(ctx, c, "acled", params, convertEvent)
}

// DeletedEvents implements acled.Client.DeletedEvents.
func (c *Client) DeletedEvents(ctx context.Context, query *acled.DeletedQuery) ([]acled.DeletedEvent, error) {
	var params []acled.Pair
	if query != nil {
		params = query.Parameters()
	}

	return fetchAll(ctx, c, "deleted", params, convertDeleted)
}

// fetchAll drives the page loop for one endpoint: request, decode, convert,
// and keep going until a page comes back shorter than the page limit. The
// API never says whether more pages exist, so the short page is the only
// completion signal there is. Pages are requested strictly sequentially and
// any failure discards the accumulator.
func fetchAll[R, T any](ctx context.Context, c *Client, endpoint string, query []acled.Pair, convert func(R) (T, error)) ([]T, error) {
	path := "/" + endpoint + "/read"

	var all []T

	for page := 1; ; page++ {
		resp, err := c.httpClient.Get(ctx, path, c.requestParams(query, page))
		if err != nil {
			return nil, fmt.Errorf("fetching %s page %d: %w", endpoint, page, err)
		}

		raws, err := decodePage[R](resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%s page %d: %w", endpoint, page, err)
		}

		for _, raw := range raws {
			typed, err := convert(raw)
			if err != nil {
				return nil, fmt.Errorf("%s page %d: %w", endpoint, page, err)
			}

			all = append(all, typed)
		}

		if len(raws) < c.pageLimit {
			return all, nil
		}
	}
}

// requestParams appends the credential parameters and, past the first
// page, the page number to the encoded query. A non-default page limit is
// sent explicitly so the size we request and the size we treat as "full"
// stay the same value.
func (c *Client) requestParams(query []acled.Pair, page int) []acled.Pair {
	params := make([]acled.Pair, 0, len(query)+4)
	params = append(params, query...)
	params = append(params,
		acled.Pair{Key: "key", Value: c.key},
		acled.Pair{Key: "email", Value: c.email},
	)

	if c.pageLimit != constants.DefaultPageLimit {
		params = append(params, acled.Pair{Key: "limit", Value: strconv.Itoa(c.pageLimit)})
	}

	if page > 1 {
		params = append(params, acled.Pair{Key: "page", Value: strconv.Itoa(page)})
	}

	return params
}

// NormalizeBaseURL trims a trailing slash and defaults the scheme to https.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if baseURL != "" && !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
