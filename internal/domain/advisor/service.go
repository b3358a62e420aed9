package advisor

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/aqisense/aqi-sense/internal/domain/advice"
	"github.com/aqisense/aqi-sense/internal/domain/airquality"
	"github.com/aqisense/aqi-sense/internal/domain/location"
	apperrors "github.com/aqisense/aqi-sense/pkg/errors"
)

// Service orchestrates location resolution, air-quality fetching and advice
// generation for one request.
type Service interface {
	GetAdvice(ctx context.Context, req Request) (Result, error)
	Health(ctx context.Context) airquality.Snapshot
}

type service struct {
	locations location.Service
	air       airquality.Service
	advice    advice.Service
	logger    *slog.Logger
}

// NewService wires up the advisory orchestration.
func NewService(locations location.Service, air airquality.Service, adviceSvc advice.Service, logger *slog.Logger) Service {
	return &service{
		locations: locations,
		air:       air,
		advice:    adviceSvc,
		logger:    logger.With("component", "advisor.service"),
	}
}

func (s *service) GetAdvice(ctx context.Context, req Request) (Result, error) {
	persona, err := resolvePersona(req.Persona)
	if err != nil {
		return Result{}, err
	}

	hasCoords := req.Lat != nil && req.Lon != nil
	name := strings.TrimSpace(req.LocationName)
	if !hasCoords && name == "" {
		return Result{}, apperrors.Wrap(apperrors.CodeInvalidInput, "either latitude/longitude or locationName is required", nil)
	}

	var (
		coord location.Coordinate
		info  location.Info
	)
	if name != "" && !hasCoords {
		resolved, err := s.locations.ResolveName(ctx, name)
		if err != nil {
			return Result{}, err
		}
		coord = resolved.Coordinate
		info = resolved.Info
	} else {
		coord = location.Coordinate{Lat: *req.Lat, Lon: *req.Lon}
		if err := coord.Validate(); err != nil {
			return Result{}, err
		}
		info = s.locations.ResolveCoordinate(ctx, coord)
	}

	s.logger.Info("fetching aqi advice", "lat", coord.Lat, "lon", coord.Lon, "persona", persona, "location", info.Name)

	// The two provider calls are independent; fetch them together.
	var (
		wg       sync.WaitGroup
		current  airquality.Snapshot
		forecast airquality.Series
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		current = s.air.Current(ctx, coord.Lat, coord.Lon)
	}()
	go func() {
		defer wg.Done()
		forecast = s.air.Forecast(ctx, coord.Lat, coord.Lon)
	}()
	wg.Wait()

	generated, err := s.advice.Generate(ctx, advice.Input{
		Snapshot:   current,
		Forecast:   forecast,
		Coordinate: coord,
		Info:       info,
		Persona:    persona,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Location: LocationPayload{
			Lat:      coord.Lat,
			Lon:      coord.Lon,
			Name:     info.Name,
			FullName: info.FullName,
			Address:  info.Address,
		},
		Persona: persona,
		Current: CurrentPayload{
			AQI:      current.AQI,
			Category: current.Category,
			PM25:     current.PM25,
			PM10:     current.PM10,
			Source:   current.Source,
		},
		Forecast: forecast,
		Advice:   generated,
	}, nil
}

// Health probes the air-quality path with a fixed reference location. The
// fetcher always answers thanks to its synthetic fallback, so the returned
// snapshot doubles as a liveness signal for the data plane.
func (s *service) Health(ctx context.Context) airquality.Snapshot {
	return s.air.Current(ctx, 28.6139, 77.2090)
}

func resolvePersona(raw string) (advice.Persona, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return advice.PersonaGeneral, nil
	}
	persona := advice.Persona(trimmed)
	if !persona.Valid() {
		return "", apperrors.Wrap(apperrors.CodeInvalidInput, "invalid persona type", nil)
	}
	return persona, nil
}
