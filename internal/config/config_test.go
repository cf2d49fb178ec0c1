package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.football-data.org/v4", cfg.FootballAPIBaseURL)
	assert.Equal(t, "", cfg.FootballAPIToken, "API token is optional")
	assert.Equal(t, 30*time.Second, cfg.FootballAPITimeout)
	assert.Equal(t, "PL", cfg.CompetitionCode)
	assert.Equal(t, "0 6 * * *", cfg.SyncSchedule)
	assert.Equal(t, time.Minute, cfg.PollInterval)
	assert.Equal(t, 7, cfg.MatchLookbackDays)
	assert.True(t, cfg.EnableScheduler)
	assert.True(t, cfg.InitialSyncEnabled)
}

func TestLoad_MissingPassword(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "")

	_, err := Load()
	require.Error(t, err, "DATABASE_PASSWORD is required")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("FOOTBALL_API_TOKEN", "token-123")
	t.Setenv("COMPETITION_CODE", "BL1")
	t.Setenv("SYNC_SCHEDULE", "30 4 * * *")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("MATCH_LOOKBACK_DAYS", "14")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token-123", cfg.FootballAPIToken)
	assert.Equal(t, "BL1", cfg.CompetitionCode)
	assert.Equal(t, "30 4 * * *", cfg.SyncSchedule)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, 14, cfg.MatchLookbackDays)
}

func TestLoad_InvalidSchedule(t *testing.T) {
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("SYNC_SCHEDULE", "every day at six")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SYNC_SCHEDULE")
}

func TestValidate(t *testing.T) {
	base := Config{
		DatabasePassword:  "secret",
		CompetitionCode:   "PL",
		SyncSchedule:      "0 6 * * *",
		PollInterval:      time.Minute,
		MatchLookbackDays: 7,
	}

	assert.NoError(t, base.Validate())

	noComp := base
	noComp.CompetitionCode = ""
	assert.Error(t, noComp.Validate())

	negLookback := base
	negLookback.MatchLookbackDays = -1
	assert.Error(t, negLookback.Validate())

	tinyPoll := base
	tinyPoll.PollInterval = 100 * time.Millisecond
	assert.Error(t, tinyPoll.Validate())
}

func TestDatabaseDSN(t *testing.T) {
	cfg := Config{
		DatabaseHost:     "db.example.com",
		DatabasePort:     5432,
		DatabaseUser:     "football_user",
		DatabasePassword: "secret",
		DatabaseName:     "football_sync",
		DatabaseSSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.example.com port=5432 user=football_user password=secret dbname=football_sync sslmode=require",
		cfg.DatabaseDSN(),
	)
}
