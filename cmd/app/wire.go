//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/aqisense/aqi-sense/internal/bootstrap"
	"github.com/aqisense/aqi-sense/internal/domain/advice"
	"github.com/aqisense/aqi-sense/internal/domain/advisor"
	"github.com/aqisense/aqi-sense/internal/domain/airquality"
	"github.com/aqisense/aqi-sense/internal/domain/location"
	"github.com/aqisense/aqi-sense/internal/infra/airquality/openmeteo"
	"github.com/aqisense/aqi-sense/internal/infra/config"
	"github.com/aqisense/aqi-sense/internal/infra/geo/nominatim"
	"github.com/aqisense/aqi-sense/internal/infra/llm/gemini"
	httpiface "github.com/aqisense/aqi-sense/internal/interface/http"
	"github.com/aqisense/aqi-sense/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideLocationConfig,
		provideAdviceConfig,
		provideGeminiClient,
		provideGeocoderClient,
		provideAirQualityClient,
		provideAdviceStore,
		provideHistoryRepository,
		location.NewService,
		airquality.NewService,
		advice.NewService,
		advisor.NewService,
		wire.Bind(new(location.Geocoder), new(*nominatim.Client)),
		wire.Bind(new(airquality.Provider), new(*openmeteo.Client)),
		wire.Bind(new(advice.TextGenerator), new(*gemini.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
