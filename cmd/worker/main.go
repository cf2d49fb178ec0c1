package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"football_sync/ingestion/internal/cache"
	"football_sync/ingestion/internal/client"
	"football_sync/ingestion/internal/config"
	"football_sync/ingestion/internal/metrics"
	"football_sync/ingestion/internal/repository"
	"football_sync/ingestion/internal/scheduler"
	syncer "football_sync/ingestion/internal/sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	setupLogger()

	log.Info().Msg("Starting football data sync worker")

	cfg := config.MustLoad()
	log.Info().
		Str("env", cfg.AppEnv).
		Str("competition", cfg.CompetitionCode).
		Str("schedule", cfg.SyncSchedule).
		Msg("Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown on interrupt
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("Received shutdown signal, gracefully shutting down...")
		cancel()
	}()

	apiClient := client.NewClient(
		cfg.FootballAPIBaseURL,
		cfg.FootballAPIToken,
		cfg.CompetitionCode,
		cfg.FootballAPITimeout,
	)
	if cfg.FootballAPIToken == "" {
		log.Warn().Msg("No API token configured - using unauthenticated, rate-limited access")
	}
	log.Info().Msg("Football data API client initialized")

	db, err := repository.NewDatabase(ctx, repository.Config{
		Host:     cfg.DatabaseHost,
		Port:     strconv.Itoa(cfg.DatabasePort),
		User:     cfg.DatabaseUser,
		Password: cfg.DatabasePassword,
		Database: cfg.DatabaseName,
		SSLMode:  cfg.DatabaseSSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Redis is optional: worker state caching only
	var stateCache syncer.StateCache
	redisCache, err := cache.NewRedisCache(cache.Config{
		Host:     cfg.RedisHost,
		Port:     strconv.Itoa(cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to connect to Redis - continuing without state cache")
	} else {
		defer redisCache.Close()
		stateCache = redisCache
		log.Info().Msg("Redis state cache connected")
	}

	if cfg.EnableMetrics {
		go startMetricsServer(db, cfg.MetricsPort)

		startTime := time.Now()
		go func() {
			ticker := time.NewTicker(10 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					metrics.SystemUptime.Set(time.Since(startTime).Seconds())
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	s := syncer.NewSyncer(apiClient, db.Standings, db.Matches, db.SyncLog, stateCache, cfg.MatchLookbackDays)

	// Run one full sync immediately on start
	if cfg.InitialSyncEnabled {
		log.Info().Msg("Running initial sync...")
		s.RunDaily(ctx)
	}

	if cfg.EnableScheduler {
		sched, err := scheduler.New(cfg.SyncSchedule, cfg.PollInterval, scheduler.SystemClock(), s.RunDaily)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create scheduler")
		}
		sched.Run(ctx)
	} else {
		log.Info().Msg("Scheduler disabled, waiting for shutdown signal")
		<-ctx.Done()
	}

	log.Info().Msg("Worker shutdown complete")
}

// setupLogger configures the zerolog logger
func setupLogger() {
	// Pretty console logging in development
	if os.Getenv("APP_ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	level := zerolog.InfoLevel
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsedLevel, err := zerolog.ParseLevel(lvl)
		if err == nil {
			level = parsedLevel
		}
	}
	zerolog.SetGlobalLevel(level)
}

// startMetricsServer starts the Prometheus metrics HTTP server
func startMetricsServer(db *repository.Database, port int) {
	http.Handle("/metrics", promhttp.Handler())

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Health(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	addr := fmt.Sprintf(":%d", port)
	log.Info().Int("port", port).Msg("Starting metrics server")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Error().Err(err).Msg("Metrics server failed")
	}
}
