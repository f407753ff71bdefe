package training

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/library"
)

// minCandidatePool is the floor on how many top-scored candidates feed the
// weighted draw.
const minCandidatePool = 12

// DrillGenerator produces drill instances for the named phases of a session,
// keyed by phase name, respecting the per-phase budgets. Implementations may
// fail; the selector always keeps its curated picks as the fallback.
type DrillGenerator interface {
	GenerateDrills(ctx context.Context, plan *domain.Plan, session *domain.Session, budgets map[string]int) (map[string][]domain.DrillInstance, error)
}

// Selector populates session skeletons with drills. Selection is weighted-
// stochastic: scores rank candidates, the variability setting controls how
// sharply the draw favours the top of the ranking, and the injected RNG
// makes runs reproducible from a seed.
type Selector struct {
	catalogue   *library.Catalogue
	mode        domain.GenerationMode
	variability float64
	generator   DrillGenerator
	rng         *rand.Rand
}

// NewSelector wires a selector for one plan's settings. generator may be
// nil; curated selection then covers every mode.
func NewSelector(cat *library.Catalogue, settings domain.PlanSettings, generator DrillGenerator, rng *rand.Rand) *Selector {
	return &Selector{
		catalogue:   cat,
		mode:        settings.GenerationMode,
		variability: settings.Variability.Numeric(),
		generator:   generator,
		rng:         rng,
	}
}

// PopulateSession fills the session at sessionIndex with drills and derived
// phase metadata. Populating an already-populated session is a no-op, so
// lazy per-session generation can be retried safely.
func (s *Selector) PopulateSession(ctx context.Context, plan *domain.Plan, sessionIndex int, usage *Usage) error {
	if sessionIndex < 0 || sessionIndex >= len(plan.Sessions) {
		return fmt.Errorf("session %d: %w", sessionIndex, domain.ErrSessionIndexOutOfRange)
	}
	session := &plan.Sessions[sessionIndex]
	if session.DrillsGenerated {
		return nil
	}

	usage.BeginSession(plan, sessionIndex)
	sc := scoreContext{
		usage:       usage,
		focus:       plan.FocusPrinciples.Flat(),
		rotationTag: rotationTagFor(sessionIndex),
		picked:      make(map[string]bool),
	}

	budgets := phaseBudgets(session, plan.FocusPrinciples)
	for i := range session.Phases {
		phase := &session.Phases[i]
		target := phaseTarget(session.OverallLoad, phase)
		phase.Drills = s.pickForPhase(phase.Name, target, budgets[phase.Name], sc)
	}

	s.applyGenerated(ctx, plan, session, budgets)

	attachPhaseMeta(plan, session)
	session.ComputedIntensity = computeSessionIntensity(session)
	session.CoverageSnapshot = usage.Snapshot(sc.focus)
	session.DrillWarning = drillWarning(session)
	session.DrillsGenerated = true
	now := time.Now()
	session.GeneratedAt = &now
	return nil
}

// phaseBudgets distributes the session drill cap: one slot each for warm-up
// and cool-down, the rest split across core phases by focus weighting.
func phaseBudgets(session *domain.Session, focus domain.FocusSet) map[string]int {
	budgets := make(map[string]int, len(session.Phases))
	remaining := sessionDrillCap(session.OverallLoad)

	var core []domain.Phase
	for _, p := range session.Phases {
		if p.Type == domain.PhaseWarm || p.Type == domain.PhaseCool {
			budgets[p.Name] = 1
			remaining--
		} else {
			core = append(core, p)
		}
	}
	counts := allocateCoreBudget(core, focus, remaining)
	for i, p := range core {
		budgets[p.Name] = counts[i]
	}
	return budgets
}

// phaseTarget maps the session load to a workload target for one phase.
// High-load sessions keep technical phases a step below the tactical peak.
func phaseTarget(load domain.LoadClass, phase *domain.Phase) domain.Intensity {
	if phase.Type == domain.PhaseWarm || phase.Type == domain.PhaseCool {
		return domain.IntensityLow
	}
	switch load {
	case domain.LoadHigh:
		if phase.Type == domain.PhaseTechnical {
			return domain.IntensityMedium
		}
		return domain.IntensityHigh
	case domain.LoadMedium:
		return domain.IntensityMedium
	case domain.LoadMatch:
		return phase.TargetIntensity
	default:
		return domain.IntensityLow
	}
}

type scoredCandidate struct {
	tpl   domain.DrillTemplate
	score float64
}

// pickForPhase runs the weighted draw for one phase slot.
func (s *Selector) pickForPhase(phaseName string, target domain.Intensity, budget int, sc scoreContext) []domain.DrillInstance {
	if budget <= 0 {
		return nil
	}
	candidates := s.catalogue.CandidatesForPhase(phaseName, target)
	if len(candidates) == 0 {
		return nil
	}

	scored := make([]scoredCandidate, 0, len(candidates))
	for i := range candidates {
		scored = append(scored, scoredCandidate{
			tpl:   candidates[i],
			score: scoreCandidate(&candidates[i], target, sc),
		})
	}
	sort.SliceStable(scored, func(a, b int) bool { return scored[a].score > scored[b].score })

	poolSize := max(3*budget, minCandidatePool)
	if poolSize > len(scored) {
		poolSize = len(scored)
	}
	pool := scored[:poolSize]

	minScore := pool[len(pool)-1].score
	weights := make([]float64, len(pool))
	// Flattening exponent: low variability sharpens toward the ranking,
	// high variability flattens the draw.
	exp := 1 - s.variability + 0.4
	for i, c := range pool {
		w := c.score - minScore + 0.01
		weights[i] = math.Max(1e-6, math.Pow(w, exp))
	}

	chosen := s.sampleWithoutReplacement(pool, weights, budget)
	if len(chosen) == 0 {
		// candidates exist, so the best one is always placed
		chosen = pool[:1]
	}

	out := make([]domain.DrillInstance, 0, len(chosen))
	for _, c := range chosen {
		sc.picked[c.tpl.ID] = true
		sc.usage.RecordPick(c.tpl.ID)
		out = append(out, instanceFromTemplate(&c.tpl))
	}
	return out
}

// sampleWithoutReplacement draws up to n entries, probability proportional
// to weight.
func (s *Selector) sampleWithoutReplacement(pool []scoredCandidate, weights []float64, n int) []scoredCandidate {
	remaining := make([]scoredCandidate, len(pool))
	copy(remaining, pool)
	w := make([]float64, len(weights))
	copy(w, weights)

	var out []scoredCandidate
	for len(out) < n && len(remaining) > 0 {
		var total float64
		for _, v := range w {
			total += v
		}
		r := s.rng.Float64() * total
		idx := len(remaining) - 1
		for i, v := range w {
			r -= v
			if r <= 0 {
				idx = i
				break
			}
		}
		out = append(out, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		w = append(w[:idx], w[idx+1:]...)
	}
	return out
}

// applyGenerated overlays drills from the generator when the plan asked for
// generative or hybrid content. Curated picks survive any failure.
func (s *Selector) applyGenerated(ctx context.Context, plan *domain.Plan, session *domain.Session, budgets map[string]int) {
	if s.generator == nil || s.mode == domain.ModeCurated {
		return
	}

	want := make(map[string]int, len(budgets))
	for i := range session.Phases {
		p := &session.Phases[i]
		if s.mode == domain.ModeHybrid && len(p.Drills) > 0 {
			continue // hybrid only fills gaps the library could not cover
		}
		if budgets[p.Name] > 0 {
			want[p.Name] = budgets[p.Name]
		}
	}
	if len(want) == 0 {
		return
	}

	generated, err := s.generator.GenerateDrills(ctx, plan, session, want)
	if err != nil || len(generated) == 0 {
		return
	}
	for i := range session.Phases {
		p := &session.Phases[i]
		drills, ok := generated[p.Name]
		if !ok || len(drills) == 0 {
			continue
		}
		limit := budgets[p.Name]
		if p.Type == domain.PhaseWarm || p.Type == domain.PhaseCool {
			limit = 2 // generated bookends may pair a primer with the main piece
		}
		if limit > 0 && len(drills) > limit {
			drills = drills[:limit]
		}
		p.Drills = drills
	}
}

func instanceFromTemplate(d *domain.DrillTemplate) domain.DrillInstance {
	return domain.DrillInstance{
		ID:                  d.ID,
		Name:                d.Name,
		DurationMin:         int(math.Round(float64(d.DurationMin+d.DurationMax) / 2)),
		Load:                d.Workload,
		Objective:           d.ObjectivePrimary,
		ObjectivesSecondary: d.ObjectivesSecondary,
		Equipment:           d.Equipment,
		CoachingPoints:      d.CoachingPoints,
		Constraints:         d.Constraints,
		Progressions:        d.Progressions,
		Regressions:         d.Regressions,
		Players:             d.Players,
		Space:               d.Space,
		Source:              d.Source,
	}
}
