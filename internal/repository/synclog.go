package repository

import (
	"context"
	"fmt"

	"football_sync/ingestion/internal/models"
)

// SyncLogRepository handles the append-only sync audit trail
type SyncLogRepository struct {
	db *Database
}

// Create appends one sync_log row
func (r *SyncLogRepository) Create(ctx context.Context, entry *models.SyncLog) error {
	query := `
		INSERT INTO sync_log (
			operation, started_at, finished_at, rows_written, status, error_text
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(
		ctx, query,
		entry.Operation, entry.StartedAt, entry.FinishedAt,
		entry.RowsWritten, entry.Status, entry.ErrorText,
	).Scan(&entry.ID)

	if err != nil {
		return fmt.Errorf("failed to create sync log entry: %w", err)
	}

	return nil
}

// ListRecent retrieves the most recent sync_log rows, newest first
func (r *SyncLogRepository) ListRecent(ctx context.Context, limit int) ([]*models.SyncLog, error) {
	query := `
		SELECT id, operation, started_at, finished_at, rows_written, status, error_text
		FROM sync_log
		ORDER BY started_at DESC
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync log: %w", err)
	}
	defer rows.Close()

	var entries []*models.SyncLog
	for rows.Next() {
		var entry models.SyncLog
		err := rows.Scan(
			&entry.ID, &entry.Operation, &entry.StartedAt, &entry.FinishedAt,
			&entry.RowsWritten, &entry.Status, &entry.ErrorText,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sync log entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sync log: %w", err)
	}

	return entries, nil
}
