package training

import (
	"strings"
	"testing"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionBlock_FieldOrder(t *testing.T) {
	d := &domain.DrillInstance{
		Objective:           "Break lines through the middle third",
		ObjectivesSecondary: []string{"Receiving on the half turn"},
		Players:             domain.PlayerSetup{Arrangement: "8v8+2 neutrals"},
		Space:               domain.SpaceSpec{Dimensions: "40x35m"},
		Equipment:           []string{"Balls", "Bibs"},
		CoachingPoints:      []string{"Scan before receiving"},
		Constraints:         []string{"Two-touch in the build zone"},
		Progressions:        []string{"Add a third zone", "Limit to one touch", "Remove neutrals"},
		Regressions:         []string{"Add a neutral"},
	}

	block := instructionBlock(d)
	lines := strings.Split(block, "\n")

	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "Objective:"))
	assert.True(t, strings.HasPrefix(lines[1], "Also targets:"))
	assert.True(t, strings.HasPrefix(lines[2], "Players:"))
	assert.True(t, strings.HasPrefix(lines[3], "Space:"))
	assert.True(t, strings.HasPrefix(lines[4], "Equipment:"))
	assert.True(t, strings.HasPrefix(lines[5], "Coaching points:"))
	assert.True(t, strings.HasPrefix(lines[6], "Constraints:"))
	// Only the first two progressions make the sheet.
	assert.Equal(t, "Progressions: Add a third zone; Limit to one touch", lines[7])
	assert.True(t, strings.HasPrefix(lines[8], "Regressions:"))
}

func TestInstructionBlock_SkipsEmptyFields(t *testing.T) {
	d := &domain.DrillInstance{Objective: "Keep the ball"}
	assert.Equal(t, "Objective: Keep the ball", instructionBlock(d))
}

func TestComputeSessionIntensity(t *testing.T) {
	session := &domain.Session{Phases: []domain.Phase{
		{Drills: []domain.DrillInstance{
			{Load: domain.IntensityLow},
			{Load: domain.IntensityHigh},
			{Load: domain.IntensityHigh},
		}},
	}}

	ci := computeSessionIntensity(session)
	require.NotNil(t, ci)
	assert.InDelta(t, 2.33, ci.AverageScore, 1e-6)
	assert.Equal(t, domain.IntensityMedium, ci.Label)
}

func TestComputeSessionIntensity_Boundaries(t *testing.T) {
	build := func(loads ...domain.Intensity) *domain.Session {
		var drills []domain.DrillInstance
		for _, l := range loads {
			drills = append(drills, domain.DrillInstance{Load: l})
		}
		return &domain.Session{Phases: []domain.Phase{{Drills: drills}}}
	}

	assert.Equal(t, domain.IntensityLow, computeSessionIntensity(build(domain.IntensityLow, domain.IntensityLow)).Label)
	assert.Equal(t, domain.IntensityHigh, computeSessionIntensity(build(domain.IntensityHigh, domain.IntensityHigh)).Label)
	// Unknown loads count as medium.
	assert.Equal(t, domain.IntensityMedium, computeSessionIntensity(build("")).Label)
	assert.Nil(t, computeSessionIntensity(&domain.Session{}))
}

func TestAttachPhaseMeta_EquipmentDeduped(t *testing.T) {
	plan := &domain.Plan{Principles: []string{"Penetration"}}
	session := &domain.Session{
		OverallLoad: domain.LoadMedium,
		Phases: []domain.Phase{{
			Name: "Technical",
			Type: domain.PhaseTechnical,
			Drills: []domain.DrillInstance{
				{DurationMin: 10, Equipment: []string{"Balls", "Cones"}},
				{DurationMin: 14, Equipment: []string{"balls", "Bibs"}},
			},
		}},
	}

	attachPhaseMeta(plan, session)

	p := session.Phases[0]
	assert.Equal(t, 24, p.DurationMin)
	assert.Equal(t, "Balls, Cones, Bibs", p.Equipment)
	assert.Contains(t, p.Rationale, "Penetration")
}

func TestFilterPrinciples_PerPhaseSubsets(t *testing.T) {
	principles := []string{"Penetration", "Pressure", "Mobility", "Support", "Width", "Compactness"}

	warm := filterPrinciples(&domain.Phase{Type: domain.PhaseWarm}, principles)
	assert.Equal(t, []string{"Mobility", "Support"}, warm)

	tech := filterPrinciples(&domain.Phase{Type: domain.PhaseTechnical}, principles)
	assert.Equal(t, []string{"Penetration", "Mobility", "Support"}, tech)

	tact := filterPrinciples(&domain.Phase{Type: domain.PhaseTactical}, principles)
	assert.Len(t, tact, 3)
}

func TestDrillWarning(t *testing.T) {
	ok := &domain.Session{Phases: []domain.Phase{
		{Type: domain.PhaseWarm, Drills: []domain.DrillInstance{{ID: "a"}}},
		{Type: domain.PhaseTechnical, Drills: []domain.DrillInstance{{ID: "b"}}},
	}}
	assert.Empty(t, drillWarning(ok))

	missing := &domain.Session{Phases: []domain.Phase{
		{Type: domain.PhaseWarm, Drills: []domain.DrillInstance{{ID: "a"}}},
		{Type: domain.PhaseTactical},
	}}
	assert.NotEmpty(t, drillWarning(missing))
}
