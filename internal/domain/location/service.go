package location

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/aqisense/aqi-sense/pkg/errors"
)

// Geocoder is the upstream geocoding API contract.
type Geocoder interface {
	Search(ctx context.Context, query string, limit int) ([]Place, error)
	Reverse(ctx context.Context, lat, lon float64) (Place, error)
}

// HistoryRepository counts successful lookups so the frontend can surface
// popular locations.
type HistoryRepository interface {
	Increment(ctx context.Context, canonical, display string) error
	Top(ctx context.Context, limit int) ([]TrendingLocation, error)
}

// Service resolves user location input in either direction.
type Service interface {
	ResolveName(ctx context.Context, name string) (Resolved, error)
	ResolveCoordinate(ctx context.Context, coord Coordinate) Info
	Search(ctx context.Context, query string) ([]SearchResult, error)
	Trending(ctx context.Context) ([]TrendingLocation, error)
}

// Config wires runtime settings for the location domain.
type Config struct {
	SearchLimit  int
	TopLocations int
}

type service struct {
	cfg      Config
	geocoder Geocoder
	history  HistoryRepository
	logger   *slog.Logger
}

// NewService wires up the location domain.
func NewService(cfg Config, geocoder Geocoder, history HistoryRepository, logger *slog.Logger) Service {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 5
	}
	if cfg.TopLocations <= 0 {
		cfg.TopLocations = 10
	}
	return &service{
		cfg:      cfg,
		geocoder: geocoder,
		history:  history,
		logger:   logger.With("component", "location.service"),
	}
}

func (s *service) ResolveName(ctx context.Context, name string) (Resolved, error) {
	query := strings.TrimSpace(name)
	if query == "" {
		return Resolved{}, apperrors.Wrap(apperrors.CodeInvalidInput, "location name cannot be empty", nil)
	}

	places, err := s.geocoder.Search(ctx, query, 1)
	if err != nil {
		return Resolved{}, apperrors.Wrap(apperrors.CodeUpstreamUnavailable, fmt.Sprintf("failed to find location: %s", query), err)
	}
	if len(places) == 0 {
		return Resolved{}, apperrors.Wrap(apperrors.CodeNotFound, fmt.Sprintf("location not found: %s", query), nil)
	}

	place := places[0]
	s.recordLookup(ctx, query, place.DisplayName)
	return Resolved{
		Coordinate: Coordinate{Lat: place.Lat, Lon: place.Lon},
		Info: Info{
			Name:     place.DisplayName,
			FullName: place.DisplayName,
			Address:  place.Address,
		},
	}, nil
}

// ResolveCoordinate never fails: a provider outage degrades to a
// coordinate-formatted placeholder instead of an error. This mirrors the
// forward/reverse asymmetry the dashboard depends on.
func (s *service) ResolveCoordinate(ctx context.Context, coord Coordinate) Info {
	place, err := s.geocoder.Reverse(ctx, coord.Lat, coord.Lon)
	if err != nil {
		s.logger.Warn("reverse geocode failed, using placeholder name", "lat", coord.Lat, "lon", coord.Lon, "error", err)
		return placeholderInfo(coord)
	}

	name := bestAddressName(place.Address)
	if name == "" {
		return placeholderInfo(coord)
	}

	info := Info{
		Name:     name,
		FullName: place.DisplayName,
		Address:  place.Address,
	}
	s.recordLookup(ctx, name, name)
	return info
}

func (s *service) Search(ctx context.Context, query string) ([]SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "search query is required", nil)
	}

	places, err := s.geocoder.Search(ctx, trimmed, s.cfg.SearchLimit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUpstream, "error searching for location", err)
	}
	if len(places) == 0 {
		return nil, apperrors.Wrap(apperrors.CodeNotFound, "no locations found for your search", nil)
	}

	results := make([]SearchResult, 0, len(places))
	for _, place := range places {
		results = append(results, SearchResult{
			Name:       place.DisplayName,
			Lat:        place.Lat,
			Lon:        place.Lon,
			Type:       place.Type,
			Importance: place.Importance,
		})
	}
	s.recordLookup(ctx, trimmed, places[0].DisplayName)
	return results, nil
}

func (s *service) Trending(ctx context.Context) ([]TrendingLocation, error) {
	items, err := s.history.Top(ctx, s.cfg.TopLocations)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUpstream, "failed to load trending locations", err)
	}
	return items, nil
}

// recordLookup is best-effort; history failures never surface to the caller.
func (s *service) recordLookup(ctx context.Context, canonical, display string) {
	if s.history == nil {
		return
	}
	key := strings.ToLower(strings.TrimSpace(canonical))
	if key == "" {
		return
	}
	if err := s.history.Increment(ctx, key, display); err != nil {
		s.logger.Warn("failed to record location lookup", "query", key, "error", err)
	}
}

func bestAddressName(addr Address) string {
	for _, candidate := range []string{addr.City, addr.Town, addr.Village, addr.Municipality, addr.County, addr.State, addr.Country} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}

func placeholderInfo(coord Coordinate) Info {
	return Info{
		Name:     fmt.Sprintf("Location (%.2f°N, %.2f°E)", coord.Lat, coord.Lon),
		FullName: "Unknown Location",
	}
}

// Validate checks the coordinate ranges.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "latitude must be between -90 and 90", nil)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "longitude must be between -180 and 180", nil)
	}
	return nil
}
