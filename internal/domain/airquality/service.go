package airquality

import (
	"context"
	"log/slog"
	"math/rand"
	"time"
)

// Provider is the upstream air-quality API contract.
type Provider interface {
	Current(ctx context.Context, lat, lon float64) (Observation, error)
	HourlyForecast(ctx context.Context, lat, lon float64) ([]float64, error)
}

// Service exposes current readings and short-term forecasts. Provider outages
// are absorbed: callers always get data, tagged with its source.
type Service interface {
	Current(ctx context.Context, lat, lon float64) Snapshot
	Forecast(ctx context.Context, lat, lon float64) Series
}

type service struct {
	provider Provider
	logger   *slog.Logger
	now      func() time.Time
	randFn   func() float64
}

// NewService wires up the air-quality domain.
func NewService(provider Provider, logger *slog.Logger) Service {
	return &service{
		provider: provider,
		logger:   logger.With("component", "airquality.service"),
		now:      time.Now,
		randFn:   rand.Float64,
	}
}

func (s *service) Current(ctx context.Context, lat, lon float64) Snapshot {
	obs, err := s.provider.Current(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("current air-quality fetch failed, using synthetic data", "lat", lat, "lon", lon, "error", err)
		return s.syntheticSnapshot(lat, lon)
	}

	aqi := int(obs.AQI + 0.5)
	return Snapshot{
		AQI:       aqi,
		Category:  CategoryFor(aqi),
		PM25:      obs.PM25,
		PM10:      obs.PM10,
		Source:    SourceOpenMeteo,
		Timestamp: s.now().UTC(),
	}
}

func (s *service) Forecast(ctx context.Context, lat, lon float64) Series {
	hourly, err := s.provider.HourlyForecast(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("forecast fetch failed, using synthetic data", "lat", lat, "lon", lon, "error", err)
		return s.syntheticSeries()
	}
	return NormalizeSeries(sampleThreeHourly(hourly))
}

// sampleThreeHourly picks every third hourly value over the next day,
// starting one hour out.
func sampleThreeHourly(hourly []float64) []float64 {
	sampled := make([]float64, 0, SeriesLength)
	for i := 1; i <= 24 && i < len(hourly); i += 3 {
		sampled = append(sampled, hourly[i])
	}
	return sampled
}
