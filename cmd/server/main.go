// Command server runs the retail analytics HTTP API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aristath/retailmind/internal/config"
	"github.com/aristath/retailmind/internal/insights"
	insightshandlers "github.com/aristath/retailmind/internal/insights/handlers"
	"github.com/aristath/retailmind/internal/modules/competitive"
	competitivehandlers "github.com/aristath/retailmind/internal/modules/competitive/handlers"
	"github.com/aristath/retailmind/internal/modules/forecasting"
	forecastinghandlers "github.com/aristath/retailmind/internal/modules/forecasting/handlers"
	scoringhandlers "github.com/aristath/retailmind/internal/modules/scoring/handlers"
	"github.com/aristath/retailmind/internal/modules/seasonality"
	seasonalityhandlers "github.com/aristath/retailmind/internal/modules/seasonality/handlers"
	"github.com/aristath/retailmind/internal/modules/simulation"
	simulationhandlers "github.com/aristath/retailmind/internal/modules/simulation/handlers"
	"github.com/aristath/retailmind/internal/modules/synergy"
	synergyhandlers "github.com/aristath/retailmind/internal/modules/synergy/handlers"
	"github.com/aristath/retailmind/internal/scheduler"
	"github.com/aristath/retailmind/internal/server"
	"github.com/aristath/retailmind/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	appLog := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(appLog)

	appLog.Info().
		Int("port", cfg.Port).
		Int("forecast_horizon_days", cfg.ForecastHorizonDays).
		Msg("Starting retail analytics service")

	// Core analysis services.
	forecaster := forecasting.New(appLog)
	synergyDetector := synergy.NewDetector(synergy.Config{
		CorrelationThreshold: cfg.CorrelationThreshold,
		SynergyThreshold:     cfg.SynergyThreshold,
	}, appLog)
	seasonalityDetector := seasonality.NewDetector(seasonality.Config{
		WindowSize:            cfg.SeasonalityWindow,
		DeviationThresholdPct: cfg.SeasonalityThreshold,
	}, appLog)

	crossElasticity := make(map[simulation.ProductPair]float64, len(cfg.CrossElasticity))
	for pair, e := range cfg.CrossElasticity {
		crossElasticity[simulation.ProductPair{Driver: pair[0], Affected: pair[1]}] = e
	}
	simulator := simulation.NewSimulator(cfg.PriceElasticity, crossElasticity, appLog)
	competitiveAnalyzer := competitive.NewAnalyzer(cfg.CompetitiveElasticity, appLog)

	// Insights state and the analyzer feeding it.
	state := insights.NewStateManager(appLog)
	analyzer := insights.NewAnalyzer(forecaster, synergyDetector, cfg.ForecastHorizonDays, appLog)

	// Periodic snapshot refresh.
	sched := scheduler.New(appLog)
	refreshJob := scheduler.NewSnapshotRefreshJob(state, analyzer)
	if err := sched.AddJob(cfg.SnapshotRefreshSchedule, refreshJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register snapshot refresh job")
	}
	sched.Start()

	srv := server.New(server.Config{
		Log:         appLog,
		Port:        cfg.Port,
		DevMode:     cfg.DevMode,
		Forecasting: forecastinghandlers.NewHandlers(forecaster, cfg.ForecastHorizonDays, appLog),
		Scoring:     scoringhandlers.NewHandlers(appLog),
		Synergy:     synergyhandlers.NewHandlers(synergyDetector, appLog),
		Simulation:  simulationhandlers.NewHandlers(simulator, appLog),
		Seasonality: seasonalityhandlers.NewHandlers(seasonalityDetector, appLog),
		Competitive: competitivehandlers.NewHandlers(competitiveAnalyzer, appLog),
		Insights:    insightshandlers.NewHandlers(state, analyzer, appLog),
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		appLog.Error().Err(err).Msg("Server failed")
	case sig := <-sigCh:
		appLog.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Graceful shutdown failed")
	}

	appLog.Info().Msg("Service stopped")
}
