// Command schema prints the table DDL this worker expects. Schema
// creation is a one-time manual step: pipe the output into psql against
// the target database. With -check it additionally connects and reports
// which of the expected tables exist.
package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"football_sync/ingestion/internal/config"
	"football_sync/ingestion/internal/repository"

	"github.com/rs/zerolog/log"
)

func main() {
	check := flag.Bool("check", false, "connect to the database and report which expected tables exist")
	flag.Parse()

	if !*check {
		for _, t := range repository.AllDDL {
			fmt.Printf("-- %s\n%s\n", t.Table, t.DDL)
		}
		return
	}

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

	query := `SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`
	for _, t := range repository.AllDDL {
		var exists bool
		if err := db.Pool.QueryRow(ctx, query, t.Table).Scan(&exists); err != nil {
			log.Fatal().Err(err).Str("table", t.Table).Msg("Failed to check table")
		}
		if exists {
			log.Info().Str("table", t.Table).Msg("Table exists")
		} else {
			log.Warn().Str("table", t.Table).Msg("Table missing - run the printed DDL manually")
		}
	}
}
