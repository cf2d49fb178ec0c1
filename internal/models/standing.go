package models

import (
	"time"
)

// Standing represents one row of a league table snapshot
type Standing struct {
	ID             int       `db:"id"`
	Position       int       `db:"position"`
	TeamName       string    `db:"team_name"`
	TeamID         int       `db:"team_id"`
	PlayedGames    int       `db:"played_games"`
	Won            int       `db:"won"`
	Draw           int       `db:"draw"`
	Lost           int       `db:"lost"`
	Points         int       `db:"points"`
	GoalsFor       int       `db:"goals_for"`
	GoalsAgainst   int       `db:"goals_against"`
	GoalDifference int       `db:"goal_difference"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// StandingsResponse mirrors the football-data.org /standings payload.
// The API returns one standings group per type (TOTAL, HOME, AWAY); the
// overall table is the first group.
type StandingsResponse struct {
	Standings []StandingsGroup `json:"standings"`
}

// StandingsGroup is one ranked table within a standings response
type StandingsGroup struct {
	Type  string       `json:"type"`
	Table []TableEntry `json:"table"`
}

// TableEntry is one team's line in a standings table
type TableEntry struct {
	Position       int     `json:"position"`
	Team           TeamRef `json:"team"`
	PlayedGames    int     `json:"playedGames"`
	Won            int     `json:"won"`
	Draw           int     `json:"draw"`
	Lost           int     `json:"lost"`
	Points         int     `json:"points"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
}

// TeamRef is the nested team object the API embeds in tables and matches
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ToStanding converts a TableEntry (from API) to a Standing row,
// stamping updated_at with the supplied time
func (e *TableEntry) ToStanding(now time.Time) *Standing {
	return &Standing{
		Position:       e.Position,
		TeamName:       e.Team.Name,
		TeamID:         e.Team.ID,
		PlayedGames:    e.PlayedGames,
		Won:            e.Won,
		Draw:           e.Draw,
		Lost:           e.Lost,
		Points:         e.Points,
		GoalsFor:       e.GoalsFor,
		GoalsAgainst:   e.GoalsAgainst,
		GoalDifference: e.GoalDifference,
		UpdatedAt:      now,
	}
}

// TableEntries returns the first standings group's table, or nil when
// the response carries no standings at all
func (r *StandingsResponse) TableEntries() []TableEntry {
	if len(r.Standings) == 0 {
		return nil
	}
	return r.Standings[0].Table
}

// MapStandings converts a standings response into rows, one per table
// entry, preserving input order. Returns an empty slice for an empty
// or group-less response.
func MapStandings(resp *StandingsResponse, now time.Time) []*Standing {
	entries := resp.TableEntries()
	rows := make([]*Standing, 0, len(entries))
	for i := range entries {
		rows = append(rows, entries[i].ToStanding(now))
	}
	return rows
}
