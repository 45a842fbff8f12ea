package acledclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensix-io/acled-client/pkg/acled"
	"github.com/tensix-io/acled-client/pkg/acledclient"
)

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

			client, err := acledclient.New(tt.config)
			require.Error(t, err)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		client, err := acledclient.New(&acled.Config{Key: "k", Email: "a@b.c"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("normalizes base URL", func(t *testing.T) {
		t.Parallel()

		config := &acled.Config{Key: "k", Email: "a@b.c", BaseURL: "api.example.com/"}

		_, err := acledclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", config.BaseURL)
	})
}

func TestNewWithCredentials(t *testing.T) {
	t.Parallel()

	t.Run("requires both credentials", func(t *testing.T) {
		t.Parallel()

		_, err := acledclient.NewWithCredentials("", "a@b.c")
		assert.ErrorIs(t, err, acled.ErrKeyRequired)

		_, err = acledclient.NewWithCredentials("k", "")
		assert.ErrorIs(t, err, acled.ErrEmailRequired)
	})

	t.Run("creates a working client", func(t *testing.T) {
		t.Parallel()

		client, err := acledclient.NewWithCredentials("k", "a@b.c")
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestClient_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acled/read", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		assert.Equal(t, "a@b.c", r.URL.Query().Get("email"))

		_, _ = w.Write([]byte(`{
			"success": true,
			"count": 1,
			"data": [{
				"event_id_cnty": "GER-1",
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
				"notes": ""
			}]
		}`))
	}))
	defer server.Close()

	client, err := acledclient.New(&acled.Config{Key: "k", Email: "a@b.c", BaseURL: server.URL})
	require.NoError(t, err)

	events, err := client.Events(context.Background(), &acled.EventsQuery{
		Country: acled.Matches(acled.Text("Germany")),
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "GER-1", events[0].EventID)
	assert.Equal(t, "Germany", events[0].Country)
	assert.Equal(t, acled.Europe, events[0].Region)
}
