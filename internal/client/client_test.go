package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensix-io/acled-client/pkg/acled"
)

func testConfig(baseURL string) *acled.Config {
	return &acled.Config{
		Key:     "test-key",
		Email:   "test@example.com",
		BaseURL: baseURL,
	}
}

// eventJSON renders one wire-form event record with the given identifier.
func eventJSON(id string) string {
	return fmt.Sprintf(`{
		"event_id_cnty": %q,
		"event_date": "2024-02-28",
		"timestamp": "1709164800",
		"disorder_type": "Demonstrations",
		"event_type": "Protests",
		"sub_event_type": "Peaceful protest",
		"country": "Germany",
		"region": "Europe",
		"admin1": "Berlin",
		"latitude": "52.5200",
		"longitude": "13.4050",
		"notes": "test"
	}`, id)
}

func successPage(records ...string) string {
	return fmt.Sprintf(`{"success": true, "count": %d, "data": [%s]}`,
		len(records), strings.Join(records, ","))
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      *acled.Config
		expectedErr error
	}{
		{name: "nil config", config: nil, expectedErr: acled.ErrConfigRequired},
		{name: "missing key", config: &acled.Config{Email: "a@b.c"}, expectedErr: acled.ErrKeyRequired},
		{name: "missing email", config: &acled.Config{Key: "k"}, expectedErr: acled.ErrEmailRequired},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.config)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		client, err := New(testConfig(""))
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestClient_Events_SinglePage(t *testing.T) {
	t.Parallel()

	var requests []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.String())
		_, _ = w.Write([]byte(successPage(eventJSON("GER-1"), eventJSON("GER-2"))))
	}))
	defer server.Close()

	client, err := New(testConfig(server.URL))
	require.NoError(t, err)

	query := &acled.EventsQuery{Country: acled.Matches(acled.Text("Germany"))}
	events, err := client.Events(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "GER-1", events[0].EventID)
	assert.Equal(t, acled.Europe, events[1].Region)

	// A page shorter than the page limit ends the loop after one request,
	// and the default page limit is never sent explicitly.
	require.Len(t, requests, 1)
	assert.Equal(t, "/acled/read?country=Germany&key=test-key&email=test%40example.com", requests[0])
}

func TestClient_Events_Pagination(t *testing.T) {
	t.Parallel()

	var requests []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.String())

		switch r.URL.Query().Get("page") {
		case "":
			_, _ = w.Write([]byte(successPage(eventJSON("GER-1"), eventJSON("GER-2"))))
		case "2":
			_, _ = w.Write([]byte(successPage(eventJSON("GER-3"), eventJSON("GER-4"))))
		default:
			_, _ = w.Write([]byte(successPage(eventJSON("GER-5"))))
		}
	}))
	defer server.Close()

	config := testConfig(server.URL)
	config.PageLimit = 2

	client, err := New(config)
	require.NoError(t, err)

	events, err := client.Events(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, events, 5)
	assert.Equal(t, "GER-5", events[4].EventID)

	require.Len(t, requests, 3)
	// Page 1 carries no page parameter; later pages do. The overridden
	// limit is sent on every request.
	assert.Equal(t, "/acled/read?key=test-key&email=test%40example.com&limit=2", requests[0])
	assert.Equal(t, "/acled/read?key=test-key&email=test%40example.com&limit=2&page=2", requests[1])
	assert.Equal(t, "/acled/read?key=test-key&email=test%40example.com&limit=2&page=3", requests[2])
}

func TestClient_Events_APIErrorDiscardsEarlierPages(t *testing.T) {
	t.Parallel()

	requestCount := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++

		if r.URL.Query().Get("page") == "" {
			_, _ = w.Write([]byte(successPage(eventJSON("GER-1"), eventJSON("GER-2"))))

			return
		}

		_, _ = w.Write([]byte(`{"success": false, "count": 0, "error": {"message": "Rate limited"}}`))
	}))
	defer server.Close()

	config := testConfig(server.URL)
	config.PageLimit = 2

	client, err := New(config)
	require.NoError(t, err)

	events, err := client.Events(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, events)
	assert.Equal(t, 2, requestCount)
	assert.True(t, acled.IsAPIError(err))
	assert.Contains(t, err.Error(), "page 2")
	assert.Contains(t, err.Error(), "Rate limited")
}

func TestClient_Events_RecordParseFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		body := strings.Replace(eventJSON("GER-1"), `"2024-02-28"`, `"tomorrow"`, 1)
		_, _ = w.Write([]byte(successPage(body)))
	}))
	defer server.Close()

	client, err := New(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Events(context.Background(), nil)
	require.Error(t, err)

	parseErr := &acled.ParseError{}
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "event_date", parseErr.Field)
}

func TestClient_Events_EnvelopeViolation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "count": 5, "data": []}`))
	}))
	defer server.Close()

	client, err := New(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Events(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, acled.IsEnvelopeViolation(err))
}

func TestClient_Events_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client, err := New(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Events(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching acled page 1")
	assert.Contains(t, err.Error(), "500")
}

func TestClient_DeletedEvents(t *testing.T) {
	t.Parallel()

	var requests []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.String())
		_, _ = w.Write([]byte(`{
			"success": true,
			"count": 1,
			"data": [{"event_id_cnty": "GER-1", "deleted_timestamp": "1709164800"}]
		}`))
	}))
	defer server.Close()

	client, err := New(testConfig(server.URL))
	require.NoError(t, err)

	query := &acled.DeletedQuery{DeletedTimestamp: acled.GreaterThan(acled.Number(1700000000))}
	deleted, err := client.DeletedEvents(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, "GER-1", deleted[0].EventID)
	assert.Equal(t, uint64(1709164800), deleted[0].DeletedTimestamp)

	require.Len(t, requests, 1)
	assert.Equal(t,
		"/deleted/read?deleted_timestamp_where=%3E&deleted_timestamp=1700000000&key=test-key&email=test%40example.com",
		requests[0])
}

func TestClient_Events_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(successPage()))
	}))
	defer server.Close()

	client, err := New(testConfig(server.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Events(ctx, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty stays empty", input: "", expected: ""},
		{name: "trims trailing slash", input: "https://api.acleddata.com/", expected: "https://api.acleddata.com"},
		{name: "defaults to https", input: "api.acleddata.com", expected: "https://api.acleddata.com"},
		{name: "keeps explicit http", input: "http://localhost:8080", expected: "http://localhost:8080"},
		{name: "already normalized", input: "https://api.acleddata.com", expected: "https://api.acleddata.com"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, NormalizeBaseURL(tt.input))
		})
	}
}
