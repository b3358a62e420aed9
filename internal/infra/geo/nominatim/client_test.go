package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchSuccess(t *testing.T) {
	var gotQuery, gotLimit, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotLimit = r.URL.Query().Get("limit")
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[
			{"display_name":"Delhi, India","lat":"28.6139","lon":"77.2090","type":"city","importance":0.89,
			 "address":{"city":"Delhi","state":"Delhi","country":"India","country_code":"in"}},
			{"display_name":"Delhi, Ontario, Canada","lat":"42.85","lon":"-80.50","type":"town","importance":0.41,
			 "address":{"town":"Delhi","state":"Ontario","country":"Canada","country_code":"ca"}}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "test-agent/1.0")
	places, err := client.Search(context.Background(), "Delhi", 5)
	require.NoError(t, err)
	require.Len(t, places, 2)

	require.Equal(t, "Delhi", gotQuery)
	require.Equal(t, "5", gotLimit)
	require.Equal(t, "test-agent/1.0", gotAgent)

	require.Equal(t, "Delhi, India", places[0].DisplayName)
	require.InDelta(t, 28.6139, places[0].Lat, 1e-9)
	require.InDelta(t, 77.2090, places[0].Lon, 1e-9)
	require.Equal(t, "city", places[0].Type)
	require.Equal(t, "Delhi", places[0].Address.City)
	require.Equal(t, "in", places[0].Address.CountryCode)
}

func TestSearchSkipsUnparseableCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"display_name":"broken","lat":"not-a-number","lon":"77.2"},
			{"display_name":"ok","lat":"12.9","lon":"77.5"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "")
	places, err := client.Search(context.Background(), "x", 5)
	require.NoError(t, err)
	require.Len(t, places, 1)
	require.Equal(t, "ok", places[0].DisplayName)
}

func TestSearchSendsAPIKeyWhenConfigured(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", "")
	_, err := client.Search(context.Background(), "x", 1)
	require.NoError(t, err)
	require.Equal(t, "secret", gotKey)
}

func TestSearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "")
	_, err := client.Search(context.Background(), "x", 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=503")
}

func TestReverseSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reverse", r.URL.Path)
		require.Equal(t, "12", r.URL.Query().Get("zoom"))
		require.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		_, _ = w.Write([]byte(`{"display_name":"New Delhi, Delhi, India",
			"address":{"city":"New Delhi","state":"Delhi","country":"India"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "")
	place, err := client.Reverse(context.Background(), 28.6139, 77.2090)
	require.NoError(t, err)
	require.Equal(t, "New Delhi, Delhi, India", place.DisplayName)
	require.InDelta(t, 28.6139, place.Lat, 1e-9)
	require.Equal(t, "New Delhi", place.Address.City)
}

func TestReverseReportsPayloadError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "")
	_, err := client.Reverse(context.Background(), 0, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unable to geocode")
}
