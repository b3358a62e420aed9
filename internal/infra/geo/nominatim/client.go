package nominatim

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

	"github.com/aqisense/aqi-sense/internal/domain/location"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Client fetches geocoding results from a Nominatim-compatible API.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
}

// NewClient builds an API client. apiKey is optional; public Nominatim does
// not require one but hosted mirrors do.
func NewClient(baseURL, apiKey, userAgent string) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = "aqi-sense/1.0"
	}
	return &Client{
		baseURL:   strings.TrimRight(base, "/"),
		apiKey:    strings.TrimSpace(apiKey),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Search performs forward geocoding and returns up to limit places.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]location.Place, error) {
	if limit <= 0 {
		limit = 1
	}
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("addressdetails", "1")

	var raw []searchEntry
	if err := c.get(ctx, "/search", params, &raw); err != nil {
		return nil, err
	}

	places := make([]location.Place, 0, len(raw))
	for _, entry := range raw {
		place, ok := entry.toPlace()
		if !ok {
			continue
		}
		places = append(places, place)
	}
	return places, nil
}

// Reverse performs reverse geocoding for the given coordinates.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (location.Place, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("zoom", "12")
	params.Set("addressdetails", "1")

	var raw reverseEntry
	if err := c.get(ctx, "/reverse", params, &raw); err != nil {
		return location.Place{}, err
	}
	if raw.Error != "" {
		return location.Place{}, fmt.Errorf("reverse geocode error: %s", raw.Error)
	}
	return location.Place{
		DisplayName: raw.DisplayName,
		Lat:         lat,
		Lon:         lon,
		Address:     raw.Address.toAddress(),
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("geocode request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read geocode response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode geocode response: %w", err)
	}
	return nil
}

// Nominatim serializes coordinates as strings.
type searchEntry struct {
	DisplayName string       `json:"display_name"`
	Lat         string       `json:"lat"`
	Lon         string       `json:"lon"`
	Type        string       `json:"type"`
	Importance  float64      `json:"importance"`
	Address     addressEntry `json:"address"`
}

type reverseEntry struct {
	DisplayName string       `json:"display_name"`
	Address     addressEntry `json:"address"`
	Error       string       `json:"error"`
}

type addressEntry struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	County       string `json:"county"`
	State        string `json:"state"`
	Country      string `json:"country"`
	CountryCode  string `json:"country_code"`
	Postcode     string `json:"postcode"`
}

func (e searchEntry) toPlace() (location.Place, bool) {
	lat, err := strconv.ParseFloat(e.Lat, 64)
	if err != nil {
		return location.Place{}, false
	}
	lon, err := strconv.ParseFloat(e.Lon, 64)
	if err != nil {
		return location.Place{}, false
	}
	return location.Place{
		DisplayName: e.DisplayName,
		Lat:         lat,
		Lon:         lon,
		Type:        e.Type,
		Importance:  e.Importance,
		Address:     e.Address.toAddress(),
	}, true
}

func (a addressEntry) toAddress() location.Address {
	return location.Address{
		City:         a.City,
		Town:         a.Town,
		Village:      a.Village,
		Municipality: a.Municipality,
		County:       a.County,
		State:        a.State,
		Country:      a.Country,
		CountryCode:  a.CountryCode,
		Postcode:     a.Postcode,
	}
}
