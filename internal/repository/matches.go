package repository

import (
	"context"
	"fmt"
	"time"

	"football_sync/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
)

// MatchRepository handles match database operations
type MatchRepository struct {
	db *Database
}

// Upsert inserts or updates a match keyed by its upstream match_id.
// Repeated syncs of the same match converge to the latest values
// (last-write-wins); matches are never deleted by this system.
func (r *MatchRepository) Upsert(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (
			match_id, match_date, status, matchday,
			home_team, home_team_id, away_team, away_team_id,
			home_score, away_score, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (match_id) DO UPDATE SET
			match_date = EXCLUDED.match_date,
			status = EXCLUDED.status,
			matchday = EXCLUDED.matchday,
			home_team = EXCLUDED.home_team,
			home_team_id = EXCLUDED.home_team_id,
			away_team = EXCLUDED.away_team,
			away_team_id = EXCLUDED.away_team_id,
			home_score = EXCLUDED.home_score,
			away_score = EXCLUDED.away_score,
			updated_at = EXCLUDED.updated_at
		RETURNING id
	`

	err := r.db.Pool.QueryRow(
		ctx, query,
		match.MatchID, match.MatchDate, match.Status, match.Matchday,
		match.HomeTeam, match.HomeTeamID, match.AwayTeam, match.AwayTeamID,
		match.HomeScore, match.AwayScore, match.UpdatedAt,
	).Scan(&match.ID)

	if err != nil {
		return fmt.Errorf("failed to upsert match: %w", err)
	}

	return nil
}

// GetByMatchID retrieves a match by its upstream match_id
func (r *MatchRepository) GetByMatchID(ctx context.Context, matchID int) (*models.Match, error) {
	query := `
		SELECT id, match_id, match_date, status, matchday,
		       home_team, home_team_id, away_team, away_team_id,
		       home_score, away_score, updated_at
		FROM matches
		WHERE match_id = $1
	`

	var match models.Match
	err := r.db.Pool.QueryRow(ctx, query, matchID).Scan(
		&match.ID, &match.MatchID, &match.MatchDate, &match.Status, &match.Matchday,
		&match.HomeTeam, &match.HomeTeamID, &match.AwayTeam, &match.AwayTeamID,
		&match.HomeScore, &match.AwayScore, &match.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("match not found: match_id=%d", matchID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return &match, nil
}

// ListByDateRange retrieves matches played within the inclusive
// [from, to] range ordered by kickoff
func (r *MatchRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*models.Match, error) {
	query := `
		SELECT id, match_id, match_date, status, matchday,
		       home_team, home_team_id, away_team, away_team_id,
		       home_score, away_score, updated_at
		FROM matches
		WHERE match_date >= $1 AND match_date <= $2
		ORDER BY match_date
	`

	rows, err := r.db.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []*models.Match
	for rows.Next() {
		var match models.Match
		err := rows.Scan(
			&match.ID, &match.MatchID, &match.MatchDate, &match.Status, &match.Matchday,
			&match.HomeTeam, &match.HomeTeamID, &match.AwayTeam, &match.AwayTeamID,
			&match.HomeScore, &match.AwayScore, &match.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, &match)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matches: %w", err)
	}

	return matches, nil
}

// Count returns the total number of matches
func (r *MatchRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM matches`

	var count int
	err := r.db.Pool.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}

	return count, nil
}
