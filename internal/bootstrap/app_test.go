package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aqisense/aqi-sense/internal/infra/config"
)

func TestRunStopsOnContextCancel(t *testing.T) {
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "127.0.0.1:0"}}
	app := newTestApp(cfg, &http.Server{Addr: cfg.HTTP.Address})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestRunSurfacesListenFailure(t *testing.T) {
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "127.0.0.1:-1"}}
	app := newTestApp(cfg, &http.Server{Addr: cfg.HTTP.Address})

	err := app.Run(context.Background())
	require.Error(t, err)
}

func newTestApp(cfg *config.Config, server *http.Server) *App {
	return NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), server)
}
