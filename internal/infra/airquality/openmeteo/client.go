package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aqisense/aqi-sense/internal/domain/airquality"
)

const defaultBaseURL = "https://air-quality-api.open-meteo.com/v1/air-quality"

// Client fetches US AQI readings from the Open-Meteo air-quality API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client. No key is required.
func NewClient(baseURL string) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Current fetches the latest pollutant readings for the given coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64) (airquality.Observation, error) {
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("current", "us_aqi,pm2_5,pm10,dust")
	params.Set("timezone", "auto")

	var payload struct {
		Current struct {
			USAQI *float64 `json:"us_aqi"`
			PM25  *float64 `json:"pm2_5"`
			PM10  *float64 `json:"pm10"`
			Dust  *float64 `json:"dust"`
		} `json:"current"`
	}
	if err := c.get(ctx, params, &payload); err != nil {
		return airquality.Observation{}, err
	}
	if payload.Current.USAQI == nil {
		return airquality.Observation{}, fmt.Errorf("open-meteo response missing us_aqi")
	}

	obs := airquality.Observation{
		AQI:  *payload.Current.USAQI,
		PM25: deref(payload.Current.PM25),
		PM10: deref(payload.Current.PM10),
	}
	// Some grid cells report dust instead of pm10.
	if obs.PM10 == 0 {
		obs.PM10 = deref(payload.Current.Dust)
	}
	return obs, nil
}

// HourlyForecast fetches two days of hourly US AQI values. Gaps in the hourly
// grid come back as JSON nulls; they are filled with the last known value so
// positional sampling downstream stays aligned.
func (c *Client) HourlyForecast(ctx context.Context, lat, lon float64) ([]float64, error) {
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("hourly", "us_aqi,pm2_5")
	params.Set("timezone", "auto")
	params.Set("forecast_days", "2")

	var payload struct {
		Hourly struct {
			USAQI []*float64 `json:"us_aqi"`
		} `json:"hourly"`
	}
	if err := c.get(ctx, params, &payload); err != nil {
		return nil, err
	}
	if len(payload.Hourly.USAQI) == 0 {
		return nil, fmt.Errorf("open-meteo response missing hourly us_aqi")
	}

	values := make([]float64, 0, len(payload.Hourly.USAQI))
	last := 0.0
	for _, v := range payload.Hourly.USAQI {
		if v != nil {
			last = *v
		}
		values = append(values, last)
	}
	return values, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	endpoint := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build air-quality request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("air-quality request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("air-quality request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read air-quality response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode air-quality response: %w", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
