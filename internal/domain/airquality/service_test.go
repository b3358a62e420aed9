package airquality

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCurrentUsesProviderReading(t *testing.T) {
	provider := &stubProvider{
		current: Observation{AQI: 87.6, PM25: 34.2, PM10: 51.8},
	}
	svc := newTestService(provider, mustParse(t, "2025-06-10T12:00:00Z"), 0.5)

	snapshot := svc.Current(context.Background(), 28.6139, 77.2090)

	require.Equal(t, 88, snapshot.AQI)
	require.Equal(t, "Moderate", snapshot.Category.Level)
	require.Equal(t, 34.2, snapshot.PM25)
	require.Equal(t, 51.8, snapshot.PM10)
	require.Equal(t, SourceOpenMeteo, snapshot.Source)
	require.Equal(t, 1, provider.currentCalls)
}

func TestCurrentFallsBackToSyntheticOnProviderError(t *testing.T) {
	provider := &stubProvider{currentErr: errors.New("connection refused")}
	svc := newTestService(provider, mustParse(t, "2025-06-10T12:00:00Z"), 0.5)

	snapshot := svc.Current(context.Background(), 28.6139, 77.2090)

	require.Equal(t, SourceSynthetic, snapshot.Source)
	require.GreaterOrEqual(t, snapshot.AQI, 20)
	require.LessOrEqual(t, snapshot.AQI, 300)
	require.Equal(t, CategoryFor(snapshot.AQI), snapshot.Category)
	require.Greater(t, snapshot.PM25, 0.0)
	require.Greater(t, snapshot.PM10, 0.0)
}

func TestSyntheticSnapshotTimeOfDayAdjustments(t *testing.T) {
	provider := &stubProvider{currentErr: errors.New("down")}

	// randFn pinned to 0.5 makes the jitter zero, so the baseline shows through.
	rush := newTestService(provider, mustParse(t, "2025-06-10T08:00:00Z"), 0.5)
	night := newTestService(provider, mustParse(t, "2025-06-10T23:00:00Z"), 0.5)
	midday := newTestService(provider, mustParse(t, "2025-06-10T13:00:00Z"), 0.5)

	rural := func(svc Service) int {
		return svc.Current(context.Background(), 48.85, 2.35).AQI
	}

	require.Equal(t, 110, rural(rush))
	require.Equal(t, 60, rural(night))
	require.Equal(t, 80, rural(midday))

	urban := midday.Current(context.Background(), 17.4, 78.5).AQI
	require.Equal(t, 120, urban)
}

func TestForecastSamplesThreeHourly(t *testing.T) {
	hourly := make([]float64, 48)
	for i := range hourly {
		hourly[i] = float64(i)
	}
	provider := &stubProvider{hourly: hourly}
	svc := newTestService(provider, mustParse(t, "2025-06-10T12:00:00Z"), 0.5)

	series := svc.Forecast(context.Background(), 28.6139, 77.2090)

	require.Equal(t, Series{1, 4, 7, 10, 13, 16, 19, 22}, series)
}

func TestForecastPadsShortProviderSeries(t *testing.T) {
	provider := &stubProvider{hourly: []float64{10, 60, 20, 30, 80}}
	svc := newTestService(provider, mustParse(t, "2025-06-10T12:00:00Z"), 0.5)

	series := svc.Forecast(context.Background(), 28.6139, 77.2090)

	require.Len(t, series, SeriesLength)
	require.Equal(t, 60, series[0])
	require.Equal(t, 80, series[1])
	for _, v := range series[2:] {
		require.Equal(t, 80, v)
	}
}

func TestForecastFallsBackToSyntheticOnProviderError(t *testing.T) {
	provider := &stubProvider{hourlyErr: errors.New("timeout")}
	svc := newTestService(provider, mustParse(t, "2025-06-10T12:00:00Z"), 0.5)

	series := svc.Forecast(context.Background(), 28.6139, 77.2090)

	require.Len(t, series, SeriesLength)
	for _, v := range series {
		require.GreaterOrEqual(t, v, 30)
		require.LessOrEqual(t, v, 250)
	}
}

func newTestService(provider Provider, now time.Time, randValue float64) Service {
	return &service{
		provider: provider,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      func() time.Time { return now },
		randFn:   func() float64 { return randValue },
	}
}

type stubProvider struct {
	current      Observation
	currentErr   error
	currentCalls int
	hourly       []float64
	hourlyErr    error
}

func (s *stubProvider) Current(ctx context.Context, lat, lon float64) (Observation, error) {
	s.currentCalls++
	if s.currentErr != nil {
		return Observation{}, s.currentErr
	}
	return s.current, nil
}

func (s *stubProvider) HourlyForecast(ctx context.Context, lat, lon float64) ([]float64, error) {
	if s.hourlyErr != nil {
		return nil, s.hourlyErr
	}
	return s.hourly, nil
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}
