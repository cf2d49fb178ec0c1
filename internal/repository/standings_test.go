package repository

import (
	"testing"
	"time"

	"football_sync/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStandings(now time.Time) []*models.Standing {
	return []*models.Standing{
		{Position: 1, TeamName: "Liverpool FC", TeamID: 64, PlayedGames: 3,
			Won: 3, Draw: 0, Lost: 0, Points: 9,
			GoalsFor: 8, GoalsAgainst: 2, GoalDifference: 6, UpdatedAt: now},
		{Position: 2, TeamName: "Arsenal FC", TeamID: 57, PlayedGames: 3,
			Won: 2, Draw: 1, Lost: 0, Points: 7,
			GoalsFor: 7, GoalsAgainst: 1, GoalDifference: 6, UpdatedAt: now},
		{Position: 3, TeamName: "Manchester City FC", TeamID: 65, PlayedGames: 3,
			Won: 2, Draw: 0, Lost: 1, Points: 6,
			GoalsFor: 6, GoalsAgainst: 3, GoalDifference: 3, UpdatedAt: now},
	}
}

func TestStandingRepository_ReplaceForDate(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	now := time.Now()

	err := db.Standings.ReplaceForDate(ctx, now, testStandings(now))
	require.NoError(t, err, "Should insert standings")

	count, err := db.Standings.CountForDate(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "Three rows for today")

	// Replacing the same day swaps the snapshot instead of accumulating
	updated := testStandings(now)
	updated[0].Points = 12
	updated[0].Won = 4
	updated[0].PlayedGames = 4

	err = db.Standings.ReplaceForDate(ctx, now, updated)
	require.NoError(t, err, "Should replace standings")

	count, err = db.Standings.CountForDate(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "Still three rows after replace")

	current, err := db.Standings.ListCurrent(ctx)
	require.NoError(t, err)
	require.Len(t, current, 3)
	assert.Equal(t, 1, current[0].Position, "Ordered by position")
	assert.Equal(t, 12, current[0].Points, "Latest values present")
}

func TestStandingRepository_ReplaceForDate_RejectsEmptyBatch(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	now := time.Now()
	require.NoError(t, db.Standings.ReplaceForDate(ctx, now, testStandings(now)))

	// An empty batch must not wipe the existing snapshot
	err := db.Standings.ReplaceForDate(ctx, now, nil)
	require.Error(t, err)

	count, err := db.Standings.CountForDate(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "Existing rows untouched")
}

func TestStandingRepository_ReplaceForDate_LeavesOtherDaysAlone(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	yesterday := time.Now().AddDate(0, 0, -1)
	today := time.Now()

	require.NoError(t, db.Standings.ReplaceForDate(ctx, yesterday, testStandings(yesterday)))
	require.NoError(t, db.Standings.ReplaceForDate(ctx, today, testStandings(today)))

	count, err := db.Standings.CountForDate(ctx, yesterday)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "Yesterday's snapshot survives today's replace")
}
