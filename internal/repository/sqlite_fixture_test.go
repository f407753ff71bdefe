package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureRepo_CreateAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	teams := NewSQLiteTeamRepo(database)
	fixtures := NewSQLiteFixtureRepo(database)
	team := seedTeam(t, teams)

	derby := testutil.NewFixture(time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), "City Rivals",
		testutil.WithNotes("derby"), testutil.WithCompetition("League"))
	cup := testutil.NewFixture(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), "Rovers",
		testutil.Away(), testutil.WithCompetition("Cup Quarter-Final"))
	require.NoError(t, fixtures.Create(context.Background(), team.ID, &derby))
	require.NoError(t, fixtures.Create(context.Background(), team.ID, &cup))

	got, err := fixtures.ListByTeam(context.Background(), team.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "City Rivals", got[0].Opponent)
	assert.True(t, got[0].IsHome)
	assert.False(t, got[1].IsHome)
	assert.Equal(t, "Cup Quarter-Final", got[1].Competition)
}

func TestFixtureRepo_ListRange(t *testing.T) {
	database := testutil.NewTestDB(t)
	teams := NewSQLiteTeamRepo(database)
	fixtures := NewSQLiteFixtureRepo(database)
	team := seedTeam(t, teams)

	for _, day := range []int{1, 10, 20} {
		f := testutil.NewFixture(time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC), "Opp")
		require.NoError(t, fixtures.Create(context.Background(), team.ID, &f))
	}

	got, err := fixtures.ListRange(context.Background(), team.ID,
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 10, got[0].Date.Day())
}

func TestFixtureRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	teams := NewSQLiteTeamRepo(database)
	fixtures := NewSQLiteFixtureRepo(database)
	team := seedTeam(t, teams)

	f := testutil.NewFixture(time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), "Rovers")
	require.NoError(t, fixtures.Create(context.Background(), team.ID, &f))
	require.NoError(t, fixtures.Delete(context.Background(), f.ID))

	got, err := fixtures.ListByTeam(context.Background(), team.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
