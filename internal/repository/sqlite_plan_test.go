package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTeam(t *testing.T, repo *SQLiteTeamRepo) *domain.Team {
	t.Helper()
	team := testutil.NewTeam("Harbour Town FC")
	require.NoError(t, repo.Create(context.Background(), team))
	return team
}

func storedPlan(teamID string) *domain.Plan {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return &domain.Plan{
		ID:        uuid.NewString(),
		TeamID:    teamID,
		TeamName:  "Harbour Town FC",
		Title:     "Spring block",
		Summary:   "Two weeks around the derby.",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 13),
		TotalDays: 14,
		Weeks:     2,
		Timeline: []domain.TimelineDay{
			{Date: start, DayIndex: 0, LoadClass: domain.LoadHigh, Mesocycle: domain.PhaseAccumulation},
		},
		Sessions: []domain.Session{
			{Name: "High Load Training Day", Date: start, OverallLoad: domain.LoadHigh},
		},
		GeneratedAt: time.Now().UTC(),
	}
}

func TestPlanRepo_SaveAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	teams := NewSQLiteTeamRepo(database)
	plans := NewSQLitePlanRepo(database)
	team := seedTeam(t, teams)

	plan := storedPlan(team.ID)
	require.NoError(t, plans.Save(context.Background(), team.ID, plan))

	got, err := plans.GetByID(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.Title, got.Title)
	assert.Equal(t, plan.TotalDays, got.TotalDays)
	require.Len(t, got.Timeline, 1)
	assert.Equal(t, domain.LoadHigh, got.Timeline[0].LoadClass)
	require.Len(t, got.Sessions, 1)
	assert.Equal(t, "High Load Training Day", got.Sessions[0].Name)
}

func TestPlanRepo_SaveUpserts(t *testing.T) {
	database := testutil.NewTestDB(t)
	teams := NewSQLiteTeamRepo(database)
	plans := NewSQLitePlanRepo(database)
	team := seedTeam(t, teams)

	plan := storedPlan(team.ID)
	require.NoError(t, plans.Save(context.Background(), team.ID, plan))

	plan.Title = "Spring block v2"
	plan.Sessions[0].DrillsGenerated = true
	require.NoError(t, plans.Save(context.Background(), team.ID, plan))

	got, err := plans.GetByID(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Spring block v2", got.Title)
	assert.True(t, got.Sessions[0].DrillsGenerated)

	listings, err := plans.List(context.Background(), team.ID)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Spring block v2", listings[0].Title)
	assert.Equal(t, 14, listings[0].DurationDays)
}

func TestPlanRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	plans := NewSQLitePlanRepo(database)

	_, err := plans.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestPlanRepo_UpdateTitleTouchesDocument(t *testing.T) {
	database := testutil.NewTestDB(t)
	teams := NewSQLiteTeamRepo(database)
	plans := NewSQLitePlanRepo(database)
	team := seedTeam(t, teams)

	plan := storedPlan(team.ID)
	require.NoError(t, plans.Save(context.Background(), team.ID, plan))
	require.NoError(t, plans.UpdateTitle(context.Background(), plan.ID, "Renamed"))

	got, err := plans.GetByID(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	listings, err := plans.List(context.Background(), team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", listings[0].Title)
}

func TestPlanRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	teams := NewSQLiteTeamRepo(database)
	plans := NewSQLitePlanRepo(database)
	team := seedTeam(t, teams)

	plan := storedPlan(team.ID)
	require.NoError(t, plans.Save(context.Background(), team.ID, plan))
	require.NoError(t, plans.Delete(context.Background(), plan.ID))

	_, err := plans.GetByID(context.Background(), plan.ID)
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
	assert.ErrorIs(t, plans.Delete(context.Background(), plan.ID), domain.ErrPlanNotFound)
}

func TestTeamRepo_GetByName(t *testing.T) {
	database := testutil.NewTestDB(t)
	teams := NewSQLiteTeamRepo(database)
	team := seedTeam(t, teams)

	got, err := teams.GetByName(context.Background(), "harbour town fc")
	require.NoError(t, err)
	assert.Equal(t, team.ID, got.ID)

	_, err = teams.GetByName(context.Background(), "Nobody United")
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}
