package repository

// Table DDL for manual execution. Schema management is deliberately not
// automated: run these statements once against the target database
// before starting the worker (see cmd/schema).

// StandingsDDL creates the standings table
const StandingsDDL = `
CREATE TABLE IF NOT EXISTS standings (
    id BIGSERIAL PRIMARY KEY,
    position INTEGER NOT NULL,
    team_name TEXT NOT NULL,
    team_id INTEGER NOT NULL,
    played_games INTEGER NOT NULL,
    won INTEGER NOT NULL,
    draw INTEGER NOT NULL,
    lost INTEGER NOT NULL,
    points INTEGER NOT NULL,
    goals_for INTEGER NOT NULL,
    goals_against INTEGER NOT NULL,
    goal_difference INTEGER NOT NULL,
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_standings_team_id ON standings(team_id);
CREATE INDEX IF NOT EXISTS idx_standings_updated_at ON standings(updated_at);
`

// MatchesDDL creates the matches table
const MatchesDDL = `
CREATE TABLE IF NOT EXISTS matches (
    id BIGSERIAL PRIMARY KEY,
    match_id INTEGER NOT NULL UNIQUE,
    match_date TIMESTAMP WITH TIME ZONE NOT NULL,
    status TEXT NOT NULL,
    matchday INTEGER NOT NULL,
    home_team TEXT NOT NULL,
    home_team_id INTEGER NOT NULL,
    away_team TEXT NOT NULL,
    away_team_id INTEGER NOT NULL,
    home_score INTEGER,
    away_score INTEGER,
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_matches_match_id ON matches(match_id);
CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(match_date);
`

// SyncLogDDL creates the sync_log audit table
const SyncLogDDL = `
CREATE TABLE IF NOT EXISTS sync_log (
    id BIGSERIAL PRIMARY KEY,
    operation TEXT NOT NULL,
    started_at TIMESTAMP WITH TIME ZONE NOT NULL,
    finished_at TIMESTAMP WITH TIME ZONE NOT NULL,
    rows_written INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL,
    error_text TEXT
);

CREATE INDEX IF NOT EXISTS idx_sync_log_operation ON sync_log(operation, started_at);
`

// AllDDL lists every table's DDL in creation order
var AllDDL = []struct {
	Table string
	DDL   string
}{
	{"standings", StandingsDDL},
	{"matches", MatchesDDL},
	{"sync_log", SyncLogDDL},
}
