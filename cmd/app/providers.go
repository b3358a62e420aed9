package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/aqisense/aqi-sense/internal/domain/advice"
	"github.com/aqisense/aqi-sense/internal/domain/location"
	"github.com/aqisense/aqi-sense/internal/infra/advicestore"
	"github.com/aqisense/aqi-sense/internal/infra/airquality/openmeteo"
	"github.com/aqisense/aqi-sense/internal/infra/config"
	"github.com/aqisense/aqi-sense/internal/infra/geo/nominatim"
	"github.com/aqisense/aqi-sense/internal/infra/llm/gemini"
	"github.com/aqisense/aqi-sense/internal/infra/locationrepo"
)

func provideLocationConfig(cfg *config.Config) location.Config {
	return location.Config{
		SearchLimit:  5,
		TopLocations: cfg.History.TopLocations,
	}
}

func provideAdviceConfig(cfg *config.Config) advice.Config {
	return advice.Config{
		Temperature:     cfg.LLM.Temperature,
		TopP:            cfg.LLM.TopP,
		TopK:            cfg.LLM.TopK,
		MaxOutputTokens: cfg.LLM.MaxOutputTokens,
		CacheTTL:        cfg.Advice.CacheTTL,
	}
}

func provideGeminiClient(cfg *config.Config) *gemini.Client {
	return gemini.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model)
}

func provideGeocoderClient(cfg *config.Config) *nominatim.Client {
	return nominatim.NewClient(cfg.Geocoder.BaseURL, cfg.Geocoder.APIKey, cfg.Geocoder.UserAgent)
}

func provideAirQualityClient(cfg *config.Config) *openmeteo.Client {
	return openmeteo.NewClient(cfg.AirQuality.BaseURL)
}

func provideAdviceStore(cfg *config.Config, logger *slog.Logger) advice.Store {
	if cfg.Advice.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return advicestore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return advicestore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("advice valkey store enabled", "addr", cfg.Advice.Valkey.Addr)
			return advicestore.NewValkeyStore(client, "advice")
		}
	}
	return advicestore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Advice.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Advice.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Advice.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideHistoryRepository(cfg *config.Config, logger *slog.Logger) location.HistoryRepository {
	fallback := locationrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.History.Postgres.DSN)
	if dsn == "" {
		logger.Info("history postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.History.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.History.Postgres.MaxConns
	}
	if cfg.History.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.History.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("history postgres repository enabled")
	return locationrepo.NewPostgresRepository(pool)
}
