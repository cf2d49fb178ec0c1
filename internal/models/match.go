package models

import (
	"database/sql"
	"time"
)

// Match statuses as reported by football-data.org
const (
	StatusScheduled = "SCHEDULED"
	StatusTimed     = "TIMED"
	StatusInPlay    = "IN_PLAY"
	StatusLive      = "LIVE"
	StatusPaused    = "PAUSED"
	StatusFinished  = "FINISHED"
	StatusPostponed = "POSTPONED"
)

// Match represents a league match row
type Match struct {
	ID         int       `db:"id"`
	MatchID    int       `db:"match_id"`
	MatchDate  time.Time `db:"match_date"`
	Status     string    `db:"status"`
	Matchday   int       `db:"matchday"`
	HomeTeam   string    `db:"home_team"`
	HomeTeamID int       `db:"home_team_id"`
	AwayTeam   string    `db:"away_team"`
	AwayTeamID int       `db:"away_team_id"`

	// Full-time scores; NULL until the match has been played
	HomeScore sql.NullInt32 `db:"home_score"`
	AwayScore sql.NullInt32 `db:"away_score"`

	UpdatedAt time.Time `db:"updated_at"`
}

// MatchesResponse mirrors the football-data.org /matches payload
type MatchesResponse struct {
	Matches []MatchInput `json:"matches"`
}

// MatchInput is one match as returned by the API
type MatchInput struct {
	ID       int       `json:"id"`
	UTCDate  time.Time `json:"utcDate"`
	Status   string    `json:"status"`
	Matchday int       `json:"matchday"`
	HomeTeam TeamRef   `json:"homeTeam"`
	AwayTeam TeamRef   `json:"awayTeam"`
	Score    Score     `json:"score"`
}

// Score holds the nested score object; full-time fields are null for
// matches that have not finished regular play
type Score struct {
	FullTime ScoreLine `json:"fullTime"`
}

// ScoreLine is one home/away score pair
type ScoreLine struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// ToMatch converts a MatchInput (from API) to a Match row, stamping
// updated_at with the supplied time. Absent full-time scores map to
// NULL rather than failing - in-progress and scheduled matches simply
// have no score yet.
func (mi *MatchInput) ToMatch(now time.Time) *Match {
	m := &Match{
		MatchID:    mi.ID,
		MatchDate:  mi.UTCDate,
		Status:     mi.Status,
		Matchday:   mi.Matchday,
		HomeTeam:   mi.HomeTeam.Name,
		HomeTeamID: mi.HomeTeam.ID,
		AwayTeam:   mi.AwayTeam.Name,
		AwayTeamID: mi.AwayTeam.ID,
		UpdatedAt:  now,
	}

	if mi.Score.FullTime.Home != nil {
		m.HomeScore = sql.NullInt32{Int32: int32(*mi.Score.FullTime.Home), Valid: true}
	}
	if mi.Score.FullTime.Away != nil {
		m.AwayScore = sql.NullInt32{Int32: int32(*mi.Score.FullTime.Away), Valid: true}
	}

	return m
}

// MapMatches converts a matches response into rows, one per match,
// preserving the upstream match id unchanged
func MapMatches(resp *MatchesResponse, now time.Time) []*Match {
	rows := make([]*Match, 0, len(resp.Matches))
	for i := range resp.Matches {
		rows = append(rows, resp.Matches[i].ToMatch(now))
	}
	return rows
}
