package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrentSuccess(t *testing.T) {
	var gotLat, gotLon, gotFields string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLat = r.URL.Query().Get("latitude")
		gotLon = r.URL.Query().Get("longitude")
		gotFields = r.URL.Query().Get("current")
		_, _ = w.Write([]byte(`{"current":{"us_aqi":152.4,"pm2_5":76.1,"pm10":91.2,"dust":3.0}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	obs, err := client.Current(context.Background(), 28.6139, 77.2090)
	require.NoError(t, err)

	require.Equal(t, "28.6139", gotLat)
	require.Equal(t, "77.2090", gotLon)
	require.Equal(t, "us_aqi,pm2_5,pm10,dust", gotFields)
	require.InDelta(t, 152.4, obs.AQI, 1e-9)
	require.InDelta(t, 76.1, obs.PM25, 1e-9)
	require.InDelta(t, 91.2, obs.PM10, 1e-9)
}

func TestCurrentFallsBackToDustForPM10(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"current":{"us_aqi":60.0,"pm2_5":12.0,"pm10":0,"dust":44.5}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	obs, err := client.Current(context.Background(), 0, 0)
	require.NoError(t, err)
	require.InDelta(t, 44.5, obs.PM10, 1e-9)
}

func TestCurrentMissingAQI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"current":{"pm2_5":12.0}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Current(context.Background(), 0, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing us_aqi")
}

func TestCurrentUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Current(context.Background(), 0, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=502")
}

func TestHourlyForecastSuccess(t *testing.T) {
	var gotDays string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDays = r.URL.Query().Get("forecast_days")
		_, _ = w.Write([]byte(`{"hourly":{"us_aqi":[50,52,55,60,58,54]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	values, err := client.HourlyForecast(context.Background(), 28.6139, 77.2090)
	require.NoError(t, err)
	require.Equal(t, "2", gotDays)
	require.Equal(t, []float64{50, 52, 55, 60, 58, 54}, values)
}

func TestHourlyForecastFillsNulls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"hourly":{"us_aqi":[null,40,null,null,60]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	values, err := client.HourlyForecast(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 40, 40, 40, 60}, values)
}

func TestHourlyForecastEmptySeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"hourly":{"us_aqi":[]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.HourlyForecast(context.Background(), 0, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing hourly us_aqi")
}
