package training

import (
	"math"
	"sort"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

// maxDrillsPerCorePhase caps any single core phase; surplus budget is
// redistributed to the least-allocated phases.
const maxDrillsPerCorePhase = 2

// sessionDrillCap returns the total drill budget for a session.
func sessionDrillCap(load domain.LoadClass) int {
	switch load {
	case domain.LoadHigh:
		return 6
	case domain.LoadMedium:
		return 5
	default:
		return 4
	}
}

// phaseWeight biases core budget toward phases that serve the plan's focus:
// more attacking principles pull budget into technical work, defending into
// tactical work, transition principles into transition games.
func phaseWeight(pt domain.PhaseType, focus domain.FocusSet) float64 {
	switch pt {
	case domain.PhaseTechnical:
		return 1 + float64(len(focus.Attacking))*0.4
	case domain.PhaseTactical:
		return 1 + float64(len(focus.Defending))*0.35
	case domain.PhaseTransGame:
		return 1 + float64(len(focus.Transition))*0.6
	default:
		return 1
	}
}

// allocateCoreBudget splits the remaining drill budget (after the fixed
// warm-up and cool-down slots) across the core phases. Returns per-phase
// drill counts aligned with the input slice.
func allocateCoreBudget(core []domain.Phase, focus domain.FocusSet, remaining int) []int {
	counts := make([]int, len(core))
	if len(core) == 0 || remaining <= 0 {
		return counts
	}

	weights := make([]float64, len(core))
	var sum float64
	for i := range core {
		weights[i] = phaseWeight(core[i].Type, focus)
		sum += weights[i]
	}

	allocated := 0
	for i := range core {
		counts[i] = int(math.Round(weights[i] / sum * float64(remaining)))
		if counts[i] < 0 {
			counts[i] = 0
		}
		allocated += counts[i]
	}

	// Rounding can land on either side of the budget; trim or top up greedily.
	for allocated > remaining {
		for i := range counts {
			if counts[i] > 0 {
				counts[i]--
				allocated--
				break
			}
		}
	}
	for allocated < remaining {
		target := 0
		for i := range core {
			if core[i].TargetIntensity == domain.IntensityHigh {
				target = i
				break
			}
		}
		counts[target]++
		allocated++
	}

	// Enforce the per-phase cap and push freed slots to the least-allocated
	// phases that still have room.
	freed := 0
	for i := range counts {
		if counts[i] > maxDrillsPerCorePhase {
			freed += counts[i] - maxDrillsPerCorePhase
			counts[i] = maxDrillsPerCorePhase
		}
	}
	if freed > 0 {
		order := make([]int, len(counts))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool { return counts[order[a]] < counts[order[b]] })
		for _, i := range order {
			for freed > 0 && counts[i] < maxDrillsPerCorePhase {
				counts[i]++
				freed--
			}
		}
	}
	return counts
}
