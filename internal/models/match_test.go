package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestMatchInput_ToMatch(t *testing.T) {
	now := time.Date(2026, 8, 30, 6, 0, 12, 0, time.UTC)
	kickoff := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

	input := MatchInput{
		ID:       12345,
		UTCDate:  kickoff,
		Status:   StatusFinished,
		Matchday: 3,
		HomeTeam: TeamRef{ID: 64, Name: "Liverpool FC"},
		AwayTeam: TeamRef{ID: 57, Name: "Arsenal FC"},
		Score: Score{
			FullTime: ScoreLine{Home: intPtr(2), Away: intPtr(1)},
		},
	}

	m := input.ToMatch(now)

	assert.Equal(t, 12345, m.MatchID, "Match id carried through unchanged")
	assert.Equal(t, kickoff, m.MatchDate)
	assert.Equal(t, StatusFinished, m.Status)
	assert.Equal(t, 3, m.Matchday)
	assert.Equal(t, "Liverpool FC", m.HomeTeam)
	assert.Equal(t, 64, m.HomeTeamID)
	assert.Equal(t, "Arsenal FC", m.AwayTeam)
	assert.Equal(t, 57, m.AwayTeamID)
	require.True(t, m.HomeScore.Valid)
	require.True(t, m.AwayScore.Valid)
	assert.Equal(t, int32(2), m.HomeScore.Int32)
	assert.Equal(t, int32(1), m.AwayScore.Int32)
	assert.Equal(t, now, m.UpdatedAt)
}

func TestMatchInput_ToMatch_NoScoreYet(t *testing.T) {
	// Scheduled and in-play matches have no full-time score; mapping
	// must not fail and the row carries NULL scores
	input := MatchInput{
		ID:       12345,
		UTCDate:  time.Now().Add(24 * time.Hour),
		Status:   StatusScheduled,
		Matchday: 4,
		HomeTeam: TeamRef{ID: 64, Name: "Liverpool FC"},
		AwayTeam: TeamRef{ID: 57, Name: "Arsenal FC"},
	}

	m := input.ToMatch(time.Now())

	assert.Equal(t, 12345, m.MatchID)
	assert.False(t, m.HomeScore.Valid, "Absent home score maps to NULL")
	assert.False(t, m.AwayScore.Valid, "Absent away score maps to NULL")
}

func TestMapMatches(t *testing.T) {
	now := time.Now()
	resp := &MatchesResponse{
		Matches: []MatchInput{
			{ID: 1, Status: StatusFinished, HomeTeam: TeamRef{ID: 10}, AwayTeam: TeamRef{ID: 11}},
			{ID: 2, Status: StatusInPlay, HomeTeam: TeamRef{ID: 12}, AwayTeam: TeamRef{ID: 13}},
			{ID: 3, Status: StatusScheduled, HomeTeam: TeamRef{ID: 14}, AwayTeam: TeamRef{ID: 15}},
		},
	}

	rows := MapMatches(resp, now)
	require.Len(t, rows, 3, "Should produce one row per match")

	for i, row := range rows {
		assert.Equal(t, resp.Matches[i].ID, row.MatchID, "Match ids preserved in order")
		assert.Equal(t, now, row.UpdatedAt)
	}
}

func TestMapMatches_Empty(t *testing.T) {
	rows := MapMatches(&MatchesResponse{}, time.Now())
	assert.Empty(t, rows)
}
