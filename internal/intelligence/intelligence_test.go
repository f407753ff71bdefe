package intelligence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/llm"
	"github.com/alexanderramin/pitchcycle/internal/periodization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a canned response or error for every task.
type stubClient struct {
	text string
	err  error
}

func (c *stubClient) Generate(context.Context, llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &llm.GenerateResponse{Text: c.text, Model: "stub"}, nil
}

func (c *stubClient) Available(context.Context) bool { return c.err == nil }

func samplePlan() *domain.Plan {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	plan := &domain.Plan{
		TeamName:  "Harbour Town FC",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 13),
		TotalDays: 14,
		Weeks:     2,
		FocusPrinciples: domain.FocusSet{
			Attacking: []string{"Penetration"},
			Defending: []string{"Pressure"},
		},
		Matches: []domain.MatchRef{
			{Date: start.AddDate(0, 0, 5), Opponent: "Rovers", Home: true, MatchNumber: 1, ImportanceWeight: 1.0},
		},
	}
	for i := 0; i < 14; i++ {
		d := domain.TimelineDay{Date: start.AddDate(0, 0, i), DayIndex: i}
		if i == 5 {
			d.IsFixture = true
			d.Fixture = &domain.Fixture{Opponent: "Rovers", Date: d.Date}
		}
		plan.Timeline = append(plan.Timeline, d)
	}
	return plan
}

func TestSummary_FallbackWhenDisabled(t *testing.T) {
	svc := NewSummaryService(nil, false)
	text := svc.Narrative(context.Background(), samplePlan())

	assert.Contains(t, text, "Harbour Town FC")
	assert.Contains(t, text, "2-week")
	assert.Contains(t, text, "Penetration and Pressure")
}

func TestSummary_FallbackOnModelError(t *testing.T) {
	svc := NewSummaryService(&stubClient{err: errors.New("boom")}, true)
	text := svc.Narrative(context.Background(), samplePlan())
	assert.Contains(t, text, "Harbour Town FC")
}

func TestSummary_UsesModelText(t *testing.T) {
	svc := NewSummaryService(&stubClient{text: "  A tidy two-week block.  "}, true)
	text := svc.Narrative(context.Background(), samplePlan())
	assert.Equal(t, "A tidy two-week block.", text)
}

func TestSummary_FallbackOnEmptyModelText(t *testing.T) {
	svc := NewSummaryService(&stubClient{text: "   "}, true)
	text := svc.Narrative(context.Background(), samplePlan())
	assert.Contains(t, text, "Harbour Town FC")
}

func TestModelAssigner_OverlaysValidDays(t *testing.T) {
	plan := samplePlan()
	a := ModelAssigner{
		Client: &stubClient{text: `{"days":[
			{"day_index":0,"load_class":"high","rationale":"early stimulus"},
			{"day_index":5,"load_class":"Off"},
			{"day_index":99,"load_class":"Low"},
			{"day_index":1,"load_class":"Match"},
			{"day_index":2,"load_class":"banana"}
		]}`},
		Tunables: periodization.DefaultTunables(),
	}

	a.Assign(context.Background(), plan.Timeline)

	// valid proposal applied, with case normalized
	assert.Equal(t, domain.LoadHigh, plan.Timeline[0].LoadClass)
	assert.Equal(t, "early stimulus", plan.Timeline[0].Rationale)
	// fixture day untouched
	assert.Equal(t, domain.LoadMatch, plan.Timeline[5].LoadClass)
	// Match and unknown classes rejected; baseline survives
	assert.NotEqual(t, domain.LoadMatch, plan.Timeline[1].LoadClass)
	assert.True(t, domain.ValidLoadClasses[plan.Timeline[2].LoadClass])
}

func TestModelAssigner_BaselineSurvivesFailure(t *testing.T) {
	plan := samplePlan()
	a := ModelAssigner{
		Client:   &stubClient{err: llm.ErrUnavailable},
		Tunables: periodization.DefaultTunables(),
	}

	a.Assign(context.Background(), plan.Timeline)

	for _, d := range plan.Timeline {
		assert.True(t, domain.ValidLoadClasses[d.LoadClass], "day %d unassigned", d.DayIndex)
	}
}

func TestModelAssigner_GarbageResponseKeepsBaseline(t *testing.T) {
	plan := samplePlan()
	a := ModelAssigner{
		Client:   &stubClient{text: "I cannot help with that."},
		Tunables: periodization.DefaultTunables(),
	}

	a.Assign(context.Background(), plan.Timeline)

	for _, d := range plan.Timeline {
		assert.True(t, domain.ValidLoadClasses[d.LoadClass], "day %d unassigned", d.DayIndex)
	}
}

func drillSession() *domain.Session {
	return &domain.Session{
		Name:        "High Load Training Day",
		OverallLoad: domain.LoadHigh,
		Phases: []domain.Phase{
			{Name: "Warm Up", Type: domain.PhaseWarm, TargetIntensity: domain.IntensityLow},
			{Name: "Technical", Type: domain.PhaseTechnical, TargetIntensity: domain.IntensityMedium},
		},
	}
}

func TestDrillService_NormalizesOutput(t *testing.T) {
	plan := samplePlan()
	session := drillSession()
	plan.Sessions = []domain.Session{*session}

	svc := NewDrillService(&stubClient{text: `{"phases":{
		"technical":[
			{"name":"Overload rondo to switch","duration_min":500,"load":"HIGH","objective":"Switch play"},
			{"name":"","duration_min":10,"load":"Low"},
			{"name":"Second drill","duration_min":0,"load":"nonsense"}
		]
	}}`})

	out, err := svc.GenerateDrills(context.Background(), plan, &plan.Sessions[0], map[string]int{"Technical": 2})
	require.NoError(t, err)

	drills := out["Technical"]
	require.Len(t, drills, 2)
	assert.Equal(t, "gen_0_technical_0", drills[0].ID)
	assert.Equal(t, maxDrillDuration, drills[0].DurationMin)
	assert.Equal(t, domain.IntensityHigh, drills[0].Load)
	assert.Equal(t, "ai-generated", drills[0].Source.Name)
	// nameless entry dropped, numbering keeps wire order
	assert.Equal(t, "gen_0_technical_2", drills[1].ID)
	assert.Equal(t, defaultDrillDuration, drills[1].DurationMin)
	// unknown load falls back to the phase target
	assert.Equal(t, domain.IntensityMedium, drills[1].Load)
}

func TestDrillService_ErrorsPropagate(t *testing.T) {
	plan := samplePlan()
	plan.Sessions = []domain.Session{*drillSession()}

	svc := NewDrillService(&stubClient{err: llm.ErrTimeout})
	_, err := svc.GenerateDrills(context.Background(), plan, &plan.Sessions[0], map[string]int{"Technical": 2})
	assert.ErrorIs(t, err, llm.ErrTimeout)

	svc = NewDrillService(&stubClient{text: "no json here"})
	_, err = svc.GenerateDrills(context.Background(), plan, &plan.Sessions[0], map[string]int{"Technical": 2})
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}
