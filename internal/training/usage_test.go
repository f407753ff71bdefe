package training

import (
	"testing"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatedSession(at time.Time, drillIDs []string, principles []string) domain.Session {
	drills := make([]domain.DrillInstance, 0, len(drillIDs))
	for _, id := range drillIDs {
		drills = append(drills, domain.DrillInstance{ID: id})
	}
	return domain.Session{
		DrillsGenerated: true,
		GeneratedAt:     &at,
		Phases: []domain.Phase{{
			Name:              "Technical",
			Type:              domain.PhaseTechnical,
			Drills:            drills,
			PrinciplesApplied: principles,
		}},
	}
}

func TestUsage_RecentWindow(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	plan := &domain.Plan{Sessions: []domain.Session{
		generatedSession(base, []string{"oldest"}, nil),
		generatedSession(base.Add(1*time.Hour), []string{"d1"}, nil),
		generatedSession(base.Add(2*time.Hour), []string{"d2"}, nil),
		generatedSession(base.Add(3*time.Hour), []string{"d3"}, nil),
		{}, // session being populated
	}}

	u := NewUsage()
	u.BeginSession(plan, 4)

	// Only the last three generated sessions count as recent.
	assert.False(t, u.IsRecent("oldest"))
	assert.True(t, u.IsRecent("d1"))
	assert.True(t, u.IsRecent("d2"))
	assert.True(t, u.IsRecent("d3"))

	// Frequency spans all prior sessions, recent or not.
	assert.Equal(t, 1, u.Frequency("oldest"))
	assert.Zero(t, u.Frequency("missing"))
}

func TestUsage_ExcludesCurrentSession(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	plan := &domain.Plan{Sessions: []domain.Session{
		generatedSession(at, []string{"self"}, nil),
	}}

	u := NewUsage()
	u.BeginSession(plan, 0)

	assert.False(t, u.IsRecent("self"))
	assert.Zero(t, u.Frequency("self"))
}

func TestUsage_GlobalSurvivesSessions(t *testing.T) {
	plan := &domain.Plan{Sessions: make([]domain.Session, 2)}
	u := NewUsage()

	u.BeginSession(plan, 0)
	u.RecordPick("d1")
	u.RecordPick("d1")

	u.BeginSession(plan, 1)
	assert.Equal(t, 2, u.GlobalCount("d1"))
}

func TestUsage_PrincipleCoverage(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	plan := &domain.Plan{
		FocusPrinciples: domain.FocusSet{
			Attacking: []string{"Penetration"},
			Defending: []string{"Pressure"},
		},
		Sessions: []domain.Session{
			generatedSession(at, nil, []string{"Penetration"}),
			generatedSession(at.Add(time.Hour), nil, []string{"Penetration", "Width"}),
			{},
		},
	}

	u := NewUsage()
	u.BeginSession(plan, 2)

	assert.Equal(t, 2, u.CoverageCount("Penetration"))
	assert.Zero(t, u.CoverageCount("Pressure"))

	snap := u.Snapshot(plan.FocusPrinciples.Flat())
	require.Len(t, snap, 2)
	assert.Equal(t, domain.PrincipleCount{Name: "Penetration", Count: 2}, snap[0])
	assert.Equal(t, domain.PrincipleCount{Name: "Pressure", Count: 0}, snap[1])
}
