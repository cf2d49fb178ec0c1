package repository

import (
	"context"
	"fmt"
	"time"

	"football_sync/ingestion/internal/models"

	"github.com/rs/zerolog/log"
)

// StandingRepository handles standings database operations
type StandingRepository struct {
	db *Database
}

// ReplaceForDate deletes the standings rows stamped on the given
// calendar day and inserts the fresh batch, all inside one transaction.
// A crash mid-replace can therefore never leave the table wiped: either
// the old snapshot survives or the new one lands.
//
// Callers must not invoke this with an empty batch - an empty fetch is
// handled upstream by skipping the write entirely.
func (r *StandingRepository) ReplaceForDate(ctx context.Context, day time.Time, standings []*models.Standing) error {
	if len(standings) == 0 {
		return fmt.Errorf("refusing to replace standings with empty batch")
	}

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin standings transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	deleteQuery := `DELETE FROM standings WHERE updated_at::date = $1::date`
	tag, err := tx.Exec(ctx, deleteQuery, day)
	if err != nil {
		return fmt.Errorf("failed to delete standings for date: %w", err)
	}

	insertQuery := `
		INSERT INTO standings (
			position, team_name, team_id, played_games, won, draw, lost,
			points, goals_for, goals_against, goal_difference, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	for _, s := range standings {
		err := tx.QueryRow(
			ctx, insertQuery,
			s.Position, s.TeamName, s.TeamID, s.PlayedGames, s.Won, s.Draw, s.Lost,
			s.Points, s.GoalsFor, s.GoalsAgainst, s.GoalDifference, s.UpdatedAt,
		).Scan(&s.ID)
		if err != nil {
			return fmt.Errorf("failed to insert standing for team_id=%d: %w", s.TeamID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit standings replace: %w", err)
	}

	log.Debug().
		Int64("deleted", tag.RowsAffected()).
		Int("inserted", len(standings)).
		Msg("Standings replaced")

	return nil
}

// ListCurrent retrieves the most recent standings snapshot ordered by
// position
func (r *StandingRepository) ListCurrent(ctx context.Context) ([]*models.Standing, error) {
	query := `
		SELECT id, position, team_name, team_id, played_games, won, draw, lost,
		       points, goals_for, goals_against, goal_difference, updated_at
		FROM standings
		WHERE updated_at::date = (SELECT MAX(updated_at::date) FROM standings)
		ORDER BY position
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list standings: %w", err)
	}
	defer rows.Close()

	var standings []*models.Standing
	for rows.Next() {
		var s models.Standing
		err := rows.Scan(
			&s.ID, &s.Position, &s.TeamName, &s.TeamID, &s.PlayedGames,
			&s.Won, &s.Draw, &s.Lost, &s.Points,
			&s.GoalsFor, &s.GoalsAgainst, &s.GoalDifference, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", err)
		}
		standings = append(standings, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating standings: %w", err)
	}

	return standings, nil
}

// CountForDate returns the number of standings rows stamped on the
// given calendar day
func (r *StandingRepository) CountForDate(ctx context.Context, day time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM standings WHERE updated_at::date = $1::date`

	var count int
	err := r.db.Pool.QueryRow(ctx, query, day).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count standings: %w", err)
	}

	return count, nil
}
