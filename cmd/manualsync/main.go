// Command manualsync runs exactly one daily sync cycle and exits.
// Useful for backfilling after downtime or verifying credentials
// without starting the long-running worker.
package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"football_sync/ingestion/internal/client"
	"football_sync/ingestion/internal/config"
	"football_sync/ingestion/internal/repository"
	syncer "football_sync/ingestion/internal/sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})

	ctx := context.Background()
	cfg := config.MustLoad()

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

	if err := db.Health(ctx); err != nil {
		log.Fatal().Err(err).Msg("Database health check failed")
	}

	apiClient := client.NewClient(
		cfg.FootballAPIBaseURL,
		cfg.FootballAPIToken,
		cfg.CompetitionCode,
		cfg.FootballAPITimeout,
	)

	s := syncer.NewSyncer(apiClient, db.Standings, db.Matches, db.SyncLog, nil, cfg.MatchLookbackDays)
	s.RunDaily(ctx)
}
