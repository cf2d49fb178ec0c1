// Package sync implements the two daily sync operations: replacing the
// day's standings snapshot and upserting recently played matches.
package sync

import (
	"context"
	"database/sql"
	"time"

	"football_sync/ingestion/internal/metrics"
	"football_sync/ingestion/internal/models"

	"github.com/rs/zerolog/log"
)

// Fetcher fetches league data from the upstream API
type Fetcher interface {
	FetchStandings(ctx context.Context) (*models.StandingsResponse, error)
	FetchMatches(ctx context.Context, dateFrom, dateTo time.Time) (*models.MatchesResponse, error)
}

// StandingStore writes standings snapshots
type StandingStore interface {
	ReplaceForDate(ctx context.Context, day time.Time, standings []*models.Standing) error
}

// MatchStore writes match rows
type MatchStore interface {
	Upsert(ctx context.Context, match *models.Match) error
}

// AuditStore records sync_log rows
type AuditStore interface {
	Create(ctx context.Context, entry *models.SyncLog) error
}

// StateCache records last-sync state; nil disables state caching
type StateCache interface {
	RecordSyncResult(ctx context.Context, operation string, at time.Time, rows int) error
}

// Syncer runs the sync operations. Operations catch their own errors:
// a failed standings sync never prevents the matches sync from running,
// and a failed fetch never wipes existing rows.
type Syncer struct {
	fetcher      Fetcher
	standings    StandingStore
	matches      MatchStore
	audit        AuditStore
	state        StateCache
	lookbackDays int
	now          func() time.Time
}

// NewSyncer creates a Syncer. state may be nil.
func NewSyncer(fetcher Fetcher, standings StandingStore, matches MatchStore, audit AuditStore, state StateCache, lookbackDays int) *Syncer {
	return &Syncer{
		fetcher:      fetcher,
		standings:    standings,
		matches:      matches,
		audit:        audit,
		state:        state,
		lookbackDays: lookbackDays,
		now:          time.Now,
	}
}

// RunDaily runs the standings sync followed by the matches sync.
// Failure in one does not prevent the other from running.
func (s *Syncer) RunDaily(ctx context.Context) {
	start := s.now()
	log.Info().Time("started_at", start).Msg("Starting daily sync")

	if _, err := s.SyncStandings(ctx); err != nil {
		log.Error().Err(err).Msg("Standings sync failed")
	}

	if _, err := s.SyncMatches(ctx); err != nil {
		log.Error().Err(err).Msg("Matches sync failed")
	}

	log.Info().
		Time("finished_at", s.now()).
		Dur("duration", s.now().Sub(start)).
		Msg("Daily sync complete")
}

// SyncStandings fetches the current standings and replaces today's
// snapshot. An empty or failed fetch skips the write entirely so a bad
// upstream day never wipes existing data. Returns the number of rows
// written.
func (s *Syncer) SyncStandings(ctx context.Context) (int, error) {
	start := s.now()

	resp, err := s.fetcher.FetchStandings(ctx)
	if err != nil {
		metrics.RecordSync(models.SyncOpStandings, "failure", s.now().Sub(start).Seconds())
		metrics.RecordError("sync", "standings_fetch")
		s.writeAudit(ctx, models.SyncOpStandings, start, 0, models.SyncStatusFailed, err)
		return 0, err
	}

	rows := models.MapStandings(resp, start)
	if len(rows) == 0 {
		log.Warn().Msg("No standings data to sync")
		metrics.RecordSync(models.SyncOpStandings, "skipped", s.now().Sub(start).Seconds())
		s.writeAudit(ctx, models.SyncOpStandings, start, 0, models.SyncStatusSkipped, nil)
		return 0, nil
	}

	if err := s.standings.ReplaceForDate(ctx, start, rows); err != nil {
		metrics.RecordSync(models.SyncOpStandings, "failure", s.now().Sub(start).Seconds())
		metrics.RecordError("sync", "standings_write")
		s.writeAudit(ctx, models.SyncOpStandings, start, 0, models.SyncStatusFailed, err)
		return 0, err
	}

	log.Info().Int("count", len(rows)).Msg("Standings synced")
	metrics.RecordSync(models.SyncOpStandings, "success", s.now().Sub(start).Seconds())
	metrics.StandingsRowsWritten.Set(float64(len(rows)))
	s.writeAudit(ctx, models.SyncOpStandings, start, len(rows), models.SyncStatusSuccess, nil)
	s.recordState(ctx, models.SyncOpStandings, len(rows))

	return len(rows), nil
}

// SyncMatches fetches matches from the lookback window through today
// and upserts each row by match_id. A single bad row is logged and
// skipped; the rest of the batch still lands. Returns the number of
// rows upserted.
func (s *Syncer) SyncMatches(ctx context.Context) (int, error) {
	start := s.now()
	dateFrom := start.AddDate(0, 0, -s.lookbackDays)

	resp, err := s.fetcher.FetchMatches(ctx, dateFrom, start)
	if err != nil {
		metrics.RecordSync(models.SyncOpMatches, "failure", s.now().Sub(start).Seconds())
		metrics.RecordError("sync", "matches_fetch")
		s.writeAudit(ctx, models.SyncOpMatches, start, 0, models.SyncStatusFailed, err)
		return 0, err
	}

	rows := models.MapMatches(resp, start)
	if len(rows) == 0 {
		log.Info().Msg("No match data to sync")
		metrics.RecordSync(models.SyncOpMatches, "skipped", s.now().Sub(start).Seconds())
		s.writeAudit(ctx, models.SyncOpMatches, start, 0, models.SyncStatusSkipped, nil)
		return 0, nil
	}

	synced := 0
	for _, match := range rows {
		if err := s.matches.Upsert(ctx, match); err != nil {
			log.Error().Err(err).Int("match_id", match.MatchID).Msg("Failed to upsert match")
			metrics.RecordError("sync", "match_upsert")
			continue
		}
		synced++
	}

	log.Info().
		Int("count", synced).
		Int("fetched", len(rows)).
		Msg("Matches synced")
	metrics.RecordSync(models.SyncOpMatches, "success", s.now().Sub(start).Seconds())
	metrics.MatchesUpserted.Set(float64(synced))
	s.writeAudit(ctx, models.SyncOpMatches, start, synced, models.SyncStatusSuccess, nil)
	s.recordState(ctx, models.SyncOpMatches, synced)

	return synced, nil
}

// writeAudit appends a sync_log row; audit failures are logged but
// never fail the sync itself
func (s *Syncer) writeAudit(ctx context.Context, operation string, startedAt time.Time, rows int, status string, opErr error) {
	if s.audit == nil {
		return
	}

	entry := &models.SyncLog{
		Operation:   operation,
		StartedAt:   startedAt,
		FinishedAt:  s.now(),
		RowsWritten: rows,
		Status:      status,
	}
	if opErr != nil {
		entry.ErrorText = sql.NullString{String: opErr.Error(), Valid: true}
	}

	if err := s.audit.Create(ctx, entry); err != nil {
		log.Warn().Err(err).Str("operation", operation).Msg("Failed to write sync log entry")
	}
}

// recordState stores last-sync state in Redis when available
func (s *Syncer) recordState(ctx context.Context, operation string, rows int) {
	if s.state == nil {
		return
	}

	if err := s.state.RecordSyncResult(ctx, operation, s.now(), rows); err != nil {
		log.Warn().Err(err).Str("operation", operation).Msg("Failed to record sync state in cache")
	}
}
