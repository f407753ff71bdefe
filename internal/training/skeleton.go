package training

import (
	"math/rand"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/library"
)

// Core-block inclusion probabilities, keyed by session load. The structural
// randomness is intentional: similar-load days still vary in shape.
const (
	highExtraBlockChance   = 0.5 // Technical Extension vs Transition Game
	mediumExtraBlockChance = 0.4 // Applied Technical
	lowExtraBlockChance    = 0.3 // Tactical Walkthrough
)

// DeriveSkeleton turns one timeline day into a drill-less session shell.
// The RNG drives core-block variation and must come from the caller so
// plans can be reproduced from a seed.
func DeriveSkeleton(day domain.TimelineDay, rng *rand.Rand) domain.Session {
	if day.IsFixture {
		return domain.Session{
			Name:              "Match Day + Activation",
			Date:              day.Date,
			OverallLoad:       domain.LoadMatch,
			PrinciplesApplied: library.SessionPrinciples(domain.LoadMatch, true),
			Phases: []domain.Phase{
				{Name: "Activation", Focus: "Dynamic mobility & neural priming", TargetIntensity: domain.IntensityLow, Type: domain.PhaseWarm},
				{Name: "Pre-Match Tactical Review", Focus: "Set pieces & final cues", TargetIntensity: domain.IntensityLow, Type: domain.PhaseTactical},
				{Name: "Cool Down", Focus: "Recovery & down-regulation", TargetIntensity: domain.IntensityLow, Type: domain.PhaseCool},
			},
		}
	}

	load := day.LoadClass
	// Recovery and Off days use the Low skeleton; the phases themselves
	// stay light.
	if load == domain.LoadRecovery || load == domain.LoadOff {
		load = domain.LoadLow
	}

	var core []domain.Phase
	switch load {
	case domain.LoadHigh:
		core = append(core,
			domain.Phase{Name: "Technical", Focus: "High tempo ball circulation", TargetIntensity: domain.IntensityMedium, Type: domain.PhaseTechnical},
			domain.Phase{Name: "Tactical", Focus: "Pressing & transition triggers", TargetIntensity: domain.IntensityHigh, Type: domain.PhaseTactical},
		)
		if rng.Float64() < highExtraBlockChance {
			core = append(core, domain.Phase{Name: "Technical Extension", Focus: "Small-sided speed of play", TargetIntensity: domain.IntensityMedium, Type: domain.PhaseTechnical})
		} else {
			core = append(core, domain.Phase{Name: "Transition Game", Focus: "Rapid positive/negative transitions", TargetIntensity: domain.IntensityHigh, Type: domain.PhaseTransGame})
		}
	case domain.LoadMedium:
		core = append(core,
			domain.Phase{Name: "Technical", Focus: "Refinement & receiving quality", TargetIntensity: domain.IntensityLow, Type: domain.PhaseTechnical},
			domain.Phase{Name: "Tactical", Focus: "Positional play patterns", TargetIntensity: domain.IntensityMedium, Type: domain.PhaseTactical},
		)
		if rng.Float64() < mediumExtraBlockChance {
			core = append(core, domain.Phase{Name: "Applied Technical", Focus: "Pattern to goal / finishing", TargetIntensity: domain.IntensityMedium, Type: domain.PhaseTechnical})
		}
	default: // Low
		core = append(core, domain.Phase{Name: "Technical", Focus: "Light technical maintenance", TargetIntensity: domain.IntensityLow, Type: domain.PhaseTechnical})
		if rng.Float64() < lowExtraBlockChance {
			core = append(core, domain.Phase{Name: "Tactical Walkthrough", Focus: "Structural rehearsal / shape", TargetIntensity: domain.IntensityLow, Type: domain.PhaseTactical})
		}
	}

	phases := make([]domain.Phase, 0, len(core)+2)
	phases = append(phases, domain.Phase{Name: "Warm Up", Focus: "Movement prep & ball activation", TargetIntensity: domain.IntensityLow, Type: domain.PhaseWarm})
	phases = append(phases, core...)
	phases = append(phases, domain.Phase{Name: "Cool Down", Focus: "Flexibility & recovery", TargetIntensity: domain.IntensityLow, Type: domain.PhaseCool})

	return domain.Session{
		Name:              string(load) + " Load Training Day",
		Date:              day.Date,
		OverallLoad:       load,
		PrinciplesApplied: library.SessionPrinciples(load, false),
		Phases:            phases,
	}
}
