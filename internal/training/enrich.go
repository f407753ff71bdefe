package training

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

const maxEquipmentItems = 6

// Per-phase principle filters: each phase surfaces the subset of the
// session's principles it can plausibly coach.
var (
	warmPrincipleRe = regexp.MustCompile(`(?i)Mobility|Support|Transition to Attack|Transition to Defend`)
	techPrincipleRe = regexp.MustCompile(`(?i)Support|Width|Penetration|Mobility`)
	tactPrincipleRe = regexp.MustCompile(`(?i)Pressure|Cover|Compactness|Penetration|Transition`)
	coolPrincipleRe = regexp.MustCompile(`(?i)Control|Compactness|Support`)
)

// attachPhaseMeta derives the per-phase summary fields (duration, equipment,
// rationale, applied principles) and each drill's instruction block once
// drills are in place.
func attachPhaseMeta(plan *domain.Plan, session *domain.Session) {
	for i := range session.Phases {
		p := &session.Phases[i]

		total := 0
		seen := make(map[string]bool)
		var equipment []string
		for di := range p.Drills {
			d := &p.Drills[di]
			total += d.DurationMin
			for _, e := range d.Equipment {
				key := strings.ToLower(strings.TrimSpace(e))
				if key == "" || seen[key] {
					continue
				}
				seen[key] = true
				if len(equipment) < maxEquipmentItems {
					equipment = append(equipment, strings.TrimSpace(e))
				}
			}
			d.Instructions = instructionBlock(d)
		}
		p.DurationMin = total
		p.Equipment = strings.Join(equipment, ", ")
		p.Rationale = phaseRationale(p, session.OverallLoad, plan.Principles)
		p.PrinciplesApplied = filterPrinciples(p, session.PrinciplesApplied)
	}
}

func filterPrinciples(p *domain.Phase, principles []string) []string {
	var re *regexp.Regexp
	limit := 3
	switch p.Type {
	case domain.PhaseWarm:
		re, limit = warmPrincipleRe, 2
	case domain.PhaseTechnical:
		re = techPrincipleRe
	case domain.PhaseTactical, domain.PhaseTransGame:
		re = tactPrincipleRe
	case domain.PhaseCool:
		re, limit = coolPrincipleRe, 2
	default:
		return nil
	}
	var out []string
	for _, pr := range principles {
		if re.MatchString(pr) {
			out = append(out, pr)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func phaseRationale(p *domain.Phase, load domain.LoadClass, planPrinciples []string) string {
	lead := ""
	if len(planPrinciples) > 0 {
		lead = " Emphasis: " + planPrinciples[0] + "."
	}
	switch p.Type {
	case domain.PhaseWarm:
		return fmt.Sprintf("Progressive neuromuscular activation aligned with a %s load day.%s", strings.ToLower(string(load)), lead)
	case domain.PhaseTechnical:
		return "Technical repetition under appropriate pressure to sharpen execution quality." + lead
	case domain.PhaseTactical:
		return "Tactical structure work connecting individual roles to the collective plan." + lead
	case domain.PhaseTransGame:
		return "Game-speed transition moments to train reactions in both directions." + lead
	case domain.PhaseCool:
		return "Down-regulation and flexibility to accelerate recovery."
	}
	return "Phase emphasis aligned with session objectives."
}

// instructionBlock flattens a drill's structured fields into the coach-facing
// text shown on session sheets. Field order is fixed.
func instructionBlock(d *domain.DrillInstance) string {
	var lines []string
	add := func(label, v string) {
		if strings.TrimSpace(v) != "" {
			lines = append(lines, label+": "+v)
		}
	}
	add("Objective", d.Objective)
	add("Also targets", strings.Join(d.ObjectivesSecondary, "; "))
	add("Players", d.Players.Arrangement)
	add("Space", d.Space.Dimensions)
	add("Equipment", strings.Join(d.Equipment, ", "))
	add("Coaching points", strings.Join(d.CoachingPoints, "; "))
	add("Constraints", strings.Join(d.Constraints, "; "))
	add("Progressions", strings.Join(capList(d.Progressions, 2), "; "))
	add("Regressions", strings.Join(capList(d.Regressions, 2), "; "))
	return strings.Join(lines, "\n")
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// computeSessionIntensity averages the actual drill loads. The label can
// disagree with the planned overall load when the draw skewed light or heavy.
func computeSessionIntensity(session *domain.Session) *domain.ComputedIntensity {
	count := 0
	sum := 0.0
	for pi := range session.Phases {
		for _, d := range session.Phases[pi].Drills {
			switch d.Load {
			case domain.IntensityLow:
				sum++
			case domain.IntensityHigh:
				sum += 3
			default:
				sum += 2
			}
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	label := domain.IntensityHigh
	switch {
	case avg < 1.6:
		label = domain.IntensityLow
	case avg < 2.4:
		label = domain.IntensityMedium
	}
	return &domain.ComputedIntensity{
		AverageScore: math.Round(avg*100) / 100,
		Label:        label,
	}
}

// drillWarning flags sessions where a structural phase ended up empty, which
// points at thin library coverage rather than a selection bug.
func drillWarning(session *domain.Session) string {
	for i := range session.Phases {
		p := &session.Phases[i]
		switch p.Type {
		case domain.PhaseWarm, domain.PhaseTechnical, domain.PhaseTactical:
			if len(p.Drills) == 0 {
				return "Some phases are missing drills due to limited library coverage."
			}
		}
	}
	return ""
}
