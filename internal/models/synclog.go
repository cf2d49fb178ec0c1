package models

import (
	"database/sql"
	"time"
)

// Sync operation names recorded in the sync_log table
const (
	SyncOpStandings = "standings"
	SyncOpMatches   = "matches"
)

// Sync outcome states
const (
	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
	SyncStatusSkipped = "skipped"
)

// SyncLog is one audit row describing a single sync operation run
type SyncLog struct {
	ID          int            `db:"id"`
	Operation   string         `db:"operation"`
	StartedAt   time.Time      `db:"started_at"`
	FinishedAt  time.Time      `db:"finished_at"`
	RowsWritten int            `db:"rows_written"`
	Status      string         `db:"status"`
	ErrorText   sql.NullString `db:"error_text"`
}
