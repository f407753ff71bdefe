package periodization

import (
	"testing"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func fixtureOn(day int, opponent string) domain.Fixture {
	return domain.Fixture{
		ID:       opponent,
		Date:     monday.AddDate(0, 0, day),
		Opponent: opponent,
	}
}

func TestBuildTimeline_WeeksHorizon(t *testing.T) {
	timeline, warnings, err := BuildTimeline(nil, BuildOptions{StartDate: monday, Weeks: 2}, DefaultTunables())
	require.NoError(t, err)

	assert.Len(t, timeline, 14)
	assert.Empty(t, warnings)
	assert.Equal(t, 0, timeline[0].DayIndex)
	assert.Equal(t, monday.AddDate(0, 0, 13), timeline[13].Date)
}

func TestBuildTimeline_EndDateWins(t *testing.T) {
	end := monday.AddDate(0, 0, 9)
	timeline, _, err := BuildTimeline(nil, BuildOptions{StartDate: monday, EndDate: &end, Weeks: 4}, DefaultTunables())
	require.NoError(t, err)
	assert.Len(t, timeline, 10)
}

func TestBuildTimeline_TruncatesLongHorizon(t *testing.T) {
	timeline, warnings, err := BuildTimeline(nil, BuildOptions{StartDate: monday, Weeks: 10}, DefaultTunables())
	require.NoError(t, err)

	assert.Len(t, timeline, MaxPlanDays)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "truncated")
}

func TestBuildTimeline_InvalidRanges(t *testing.T) {
	_, _, err := BuildTimeline(nil, BuildOptions{Weeks: 2}, DefaultTunables())
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	before := monday.AddDate(0, 0, -1)
	_, _, err = BuildTimeline(nil, BuildOptions{StartDate: monday, EndDate: &before}, DefaultTunables())
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, _, err = BuildTimeline(nil, BuildOptions{StartDate: monday}, DefaultTunables())
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestBuildTimeline_FixtureAttachment(t *testing.T) {
	fixtures := []domain.Fixture{
		fixtureOn(12, "Second"),
		fixtureOn(5, "First"),
		// timestamped date still lands on the right calendar day
		{ID: "x", Date: monday.AddDate(0, 0, 5).Add(20 * time.Hour), Opponent: "Duplicate"},
		// outside the horizon, dropped
		fixtureOn(40, "Faraway"),
	}

	timeline, _, err := BuildTimeline(fixtures, BuildOptions{StartDate: monday, Weeks: 2}, DefaultTunables())
	require.NoError(t, err)

	require.True(t, timeline[5].IsFixture)
	assert.Equal(t, "First", timeline[5].Fixture.Opponent)
	assert.Equal(t, 1, timeline[5].Fixture.MatchNumber)
	require.True(t, timeline[12].IsFixture)
	assert.Equal(t, 2, timeline[12].Fixture.MatchNumber)

	count := 0
	for _, d := range timeline {
		if d.IsFixture {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestImportanceWeight(t *testing.T) {
	tun := DefaultTunables()

	assert.InDelta(t, 1.0, ImportanceWeight(domain.Fixture{Competition: "League"}, tun), 1e-9)
	assert.InDelta(t, 1.7, ImportanceWeight(domain.Fixture{Competition: "Cup Semi-Final"}, tun), 1e-9)
	assert.InDelta(t, 0.7, ImportanceWeight(domain.Fixture{Competition: "Preseason Friendly"}, tun), 1e-9)
	assert.InDelta(t, 1.2, ImportanceWeight(domain.Fixture{Notes: "derby atmosphere"}, tun), 1e-9)

	// floored, never below the tunable minimum
	low := ImportanceWeight(domain.Fixture{Competition: "friendly friendly"}, tun)
	assert.GreaterOrEqual(t, low, tun.ImportanceFloor)
}
