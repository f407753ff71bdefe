package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/intelligence"
	"github.com/alexanderramin/pitchcycle/internal/library"
	"github.com/alexanderramin/pitchcycle/internal/periodization"
	"github.com/alexanderramin/pitchcycle/internal/repository"
	"github.com/alexanderramin/pitchcycle/internal/testutil"
	"github.com/alexanderramin/pitchcycle/internal/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type planEnv struct {
	plans    PlanService
	fixtures FixtureService
	teams    TeamService
}

func newPlanEnv(t *testing.T, generator training.DrillGenerator, assigner intelligence.LoadAssigner) planEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	tun := periodization.DefaultTunables()

	cat, err := library.LoadCatalogue("")
	require.NoError(t, err)

	teamRepo := repository.NewSQLiteTeamRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	fixtureRepo := repository.NewSQLiteFixtureRepo(database)

	teams := NewTeamService(teamRepo)
	if assigner == nil {
		assigner = intelligence.DeterministicAssigner{Tunables: tun}
	}
	summaries := intelligence.NewSummaryService(nil, false)

	return planEnv{
		plans:    NewPlanService(planRepo, fixtureRepo, teams, cat, assigner, summaries, generator, tun),
		fixtures: NewFixtureService(fixtureRepo, teams, tun),
		teams:    teams,
	}
}

var planStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday

func baseOptions() PlanOptions {
	return PlanOptions{
		TeamName:  "Harbour Town FC",
		StartDate: planStart,
		Weeks:     2,
		Seed:      42,
	}
}

func seedFixture(t *testing.T, env planEnv, day int, opponent string, opts ...testutil.FixtureOption) {
	t.Helper()
	f := testutil.NewFixture(planStart.AddDate(0, 0, day), opponent, opts...)
	_, err := env.fixtures.Add(context.Background(), "Harbour Town FC", f)
	require.NoError(t, err)
}

func TestGenerateHighLevelPlan(t *testing.T) {
	env := newPlanEnv(t, nil, nil)
	seedFixture(t, env, 5, "Rovers")
	seedFixture(t, env, 12, "City Rivals", testutil.WithCompetition("Cup Semi-Final"))

	plan, err := env.plans.GenerateHighLevelPlan(context.Background(), baseOptions())
	require.NoError(t, err)

	assert.Equal(t, 14, plan.TotalDays)
	assert.Len(t, plan.Sessions, 14)
	require.Len(t, plan.Matches, 2)
	assert.Equal(t, 1, plan.Matches[0].MatchNumber)
	assert.InDelta(t, 1.7, plan.Matches[1].ImportanceWeight, 1e-9)

	// fixture days fixed, all other days assigned
	for _, d := range plan.Timeline {
		if d.IsFixture {
			assert.Equal(t, domain.LoadMatch, d.LoadClass)
		} else {
			assert.True(t, domain.ValidLoadClasses[d.LoadClass], "day %d", d.DayIndex)
			assert.NotEqual(t, domain.LoadMatch, d.LoadClass, "day %d", d.DayIndex)
		}
	}

	// skeletons only, no drills yet
	assert.Zero(t, plan.GeneratedSessionCount())
	assert.Len(t, plan.WeeklyMetrics, 2)
	assert.NotEmpty(t, plan.Summary)
	assert.NotEmpty(t, plan.Title)
	assert.LessOrEqual(t, len(plan.Title), 50)
	assert.Equal(t, int64(42), plan.Settings.Seed)

	// persisted
	got, err := env.plans.GetPlan(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.TotalDays, got.TotalDays)
}

func TestGenerateHighLevelPlan_LongHorizonTruncated(t *testing.T) {
	env := newPlanEnv(t, nil, nil)

	opts := baseOptions()
	opts.Weeks = 10
	plan, err := env.plans.GenerateHighLevelPlan(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 42, plan.TotalDays)
	assert.Equal(t, 6, plan.Weeks)
	require.NotEmpty(t, plan.Warnings)
	assert.Contains(t, plan.Warnings[0], "truncated")
}

func TestListPlans_UnknownTeam(t *testing.T) {
	env := newPlanEnv(t, nil, nil)

	_, err := env.plans.ListPlans(context.Background(), "No Such FC")
	require.ErrorIs(t, err, domain.ErrTeamNotFound)

	// A mistyped name on a read path must not mint a team row.
	teams, err := env.teams.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestGeneratePlan_PopulatesEverySession(t *testing.T) {
	env := newPlanEnv(t, nil, nil)
	seedFixture(t, env, 5, "Rovers")

	plan, err := env.plans.GeneratePlan(context.Background(), baseOptions())
	require.NoError(t, err)

	assert.Equal(t, len(plan.Sessions), plan.GeneratedSessionCount())
	for i, sess := range plan.Sessions {
		total := 0
		for _, p := range sess.Phases {
			total += len(p.Drills)
		}
		assert.Positive(t, total, "session %d has no drills", i)
		assert.NotNil(t, sess.ComputedIntensity, "session %d", i)
	}
}

func TestGenerateSessionDrills_Idempotent(t *testing.T) {
	env := newPlanEnv(t, nil, nil)
	plan, err := env.plans.GenerateHighLevelPlan(context.Background(), baseOptions())
	require.NoError(t, err)

	first, err := env.plans.GenerateSessionDrills(context.Background(), plan.ID, 3)
	require.NoError(t, err)
	second, err := env.plans.GenerateSessionDrills(context.Background(), plan.ID, 3)
	require.NoError(t, err)

	require.NotNil(t, first.Sessions[3].GeneratedAt)
	assert.Equal(t, first.Sessions[3].GeneratedAt.UnixNano(), second.Sessions[3].GeneratedAt.UnixNano())
	assert.Equal(t, 1, second.GeneratedSessionCount())
}

func TestRegenerateSession(t *testing.T) {
	env := newPlanEnv(t, nil, nil)
	plan, err := env.plans.GenerateHighLevelPlan(context.Background(), baseOptions())
	require.NoError(t, err)

	before, err := env.plans.GenerateSessionDrills(context.Background(), plan.ID, 2)
	require.NoError(t, err)
	beforeAt := *before.Sessions[2].GeneratedAt

	after, err := env.plans.RegenerateSession(context.Background(), plan.ID, 2)
	require.NoError(t, err)

	assert.True(t, after.Sessions[2].DrillsGenerated)
	assert.False(t, after.Sessions[2].GeneratedAt.Before(beforeAt))

	_, err = env.plans.RegenerateSession(context.Background(), plan.ID, 99)
	assert.ErrorIs(t, err, domain.ErrSessionIndexOutOfRange)
}

func TestUpdateDayLoad_Cascade(t *testing.T) {
	env := newPlanEnv(t, nil, nil)
	seedFixture(t, env, 5, "Rovers")
	plan, err := env.plans.GeneratePlan(context.Background(), baseOptions())
	require.NoError(t, err)

	// pick a non-fixture day not already on a recovery load
	dayIdx := -1
	for _, d := range plan.Timeline {
		if !d.IsFixture && d.LoadClass != domain.LoadRecovery {
			dayIdx = d.DayIndex
			break
		}
	}
	require.GreaterOrEqual(t, dayIdx, 0)
	metricsBefore := plan.WeeklyMetrics[0]

	updated, err := env.plans.UpdateDayLoad(context.Background(), plan.ID, dayIdx, domain.LoadRecovery)
	require.NoError(t, err)

	assert.Equal(t, domain.LoadRecovery, updated.Timeline[dayIdx].LoadClass)
	// skeleton rebuilt for the new load, drills discarded
	assert.False(t, updated.Sessions[dayIdx].DrillsGenerated)
	assert.Equal(t, domain.LoadLow, updated.Sessions[dayIdx].OverallLoad)
	// weekly metrics recomputed
	assert.NotEqual(t, metricsBefore.TotalLoad, updated.WeeklyMetrics[0].TotalLoad)
	// untouched sessions keep their drills
	assert.Positive(t, updated.GeneratedSessionCount())
}

func TestUpdateDayLoad_Rejections(t *testing.T) {
	env := newPlanEnv(t, nil, nil)
	seedFixture(t, env, 5, "Rovers")
	plan, err := env.plans.GenerateHighLevelPlan(context.Background(), baseOptions())
	require.NoError(t, err)

	_, err = env.plans.UpdateDayLoad(context.Background(), plan.ID, 5, domain.LoadHigh)
	assert.ErrorContains(t, err, "fixture day")

	_, err = env.plans.UpdateDayLoad(context.Background(), plan.ID, 1, domain.LoadMatch)
	assert.ErrorContains(t, err, "invalid load class")

	_, err = env.plans.UpdateDayLoad(context.Background(), plan.ID, -1, domain.LoadLow)
	assert.ErrorIs(t, err, domain.ErrDayIndexOutOfRange)
}

func TestUpdateDayLoad_PreservesUserRenamedSession(t *testing.T) {
	env := newPlanEnv(t, nil, nil)
	plan, err := env.plans.GenerateHighLevelPlan(context.Background(), baseOptions())
	require.NoError(t, err)

	_, err = env.plans.RenameSession(context.Background(), plan.ID, 2, "Captain's run")
	require.NoError(t, err)

	updated, err := env.plans.UpdateDayLoad(context.Background(), plan.ID, 2, domain.LoadHigh)
	require.NoError(t, err)

	assert.Equal(t, "Captain's run", updated.Sessions[2].Name)
	assert.True(t, updated.Sessions[2].UserRenamed)
	assert.Equal(t, domain.LoadHigh, updated.Sessions[2].OverallLoad)
}

func TestGeneratePlan_SurvivesModelFailures(t *testing.T) {
	failing := &testutil.FailingClient{}
	tun := periodization.DefaultTunables()
	env := newPlanEnv(t,
		intelligence.NewDrillService(failing),
		intelligence.ModelAssigner{Client: failing, Tunables: tun},
	)
	seedFixture(t, env, 5, "Rovers")

	opts := baseOptions()
	opts.GenerationMode = domain.ModeGenerative

	plan, err := env.plans.GeneratePlan(context.Background(), opts)
	require.NoError(t, err)

	// every day assigned and every session populated despite total model
	// unavailability
	for _, d := range plan.Timeline {
		assert.True(t, domain.ValidLoadClasses[d.LoadClass])
	}
	assert.Equal(t, len(plan.Sessions), plan.GeneratedSessionCount())
	assert.NotEmpty(t, plan.Summary)
}

func TestGeneratePlan_SeedReproducible(t *testing.T) {
	run := func() *domain.Plan {
		env := newPlanEnv(t, nil, nil)
		seedFixture(t, env, 5, "Rovers")
		plan, err := env.plans.GeneratePlan(context.Background(), baseOptions())
		require.NoError(t, err)
		return plan
	}

	a, b := run(), run()
	require.Len(t, b.Sessions, len(a.Sessions))
	for i := range a.Sessions {
		require.Len(t, b.Sessions[i].Phases, len(a.Sessions[i].Phases), "session %d", i)
		for j := range a.Sessions[i].Phases {
			ad, bd := a.Sessions[i].Phases[j].Drills, b.Sessions[i].Phases[j].Drills
			require.Len(t, bd, len(ad))
			for k := range ad {
				assert.Equal(t, ad[k].ID, bd[k].ID)
			}
		}
	}
}

func TestUpdateTitle(t *testing.T) {
	env := newPlanEnv(t, nil, nil)
	plan, err := env.plans.GenerateHighLevelPlan(context.Background(), baseOptions())
	require.NoError(t, err)

	require.NoError(t, env.plans.UpdateTitle(context.Background(), plan.ID, "Pre-season block"))
	got, err := env.plans.GetPlan(context.Background(), plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pre-season block", got.Title)

	assert.Error(t, env.plans.UpdateTitle(context.Background(), plan.ID, "   "))
}

func TestTitleFromSummary(t *testing.T) {
	assert.Equal(t, "A short block", titleFromSummary("A short block. More detail follows.", "T"))
	assert.Equal(t, "T training plan", titleFromSummary("", "T"))

	long := "This opening sentence definitely runs past the fifty character mark. Rest."
	title := titleFromSummary(long, "T")
	assert.LessOrEqual(t, len(title), 50)
}
