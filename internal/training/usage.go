package training

import (
	"sort"
	"strings"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

// recentWindow is how many of the most recently generated sessions count as
// "recent" for the anti-repetition penalty.
const recentWindow = 3

// Usage tracks drill repetition and principle coverage for one plan. The
// plan-wide counters live for the lifetime of the plan; the recent-window
// and per-drill frequency views are rebuilt from already-generated sessions
// each time a session is populated, so lazy generation in any order stays
// consistent.
type Usage struct {
	global map[string]int // plan-wide pick counts, survives across sessions

	recent          map[string]bool // drill ids seen in the last recentWindow generated sessions
	freq            map[string]int  // per-id picks across all prior generated sessions
	principleCounts map[string]int  // focus-principle mentions across prior sessions
}

// NewUsage returns an empty usage context for a freshly built plan.
func NewUsage() *Usage {
	return &Usage{global: make(map[string]int)}
}

// BeginSession rebuilds the recent/frequency/coverage views from the plan's
// already-generated sessions, excluding sessionIndex itself.
func (u *Usage) BeginSession(plan *domain.Plan, sessionIndex int) {
	u.recent = make(map[string]bool)
	u.freq = make(map[string]int)
	u.principleCounts = make(map[string]int)

	focus := plan.FocusPrinciples.Flat()
	for _, p := range focus {
		u.principleCounts[p] = 0
	}

	type generated struct {
		index int
		at    int64
	}
	var prior []generated
	for i := range plan.Sessions {
		s := &plan.Sessions[i]
		if i == sessionIndex || !s.DrillsGenerated {
			continue
		}
		at := int64(0)
		if s.GeneratedAt != nil {
			at = s.GeneratedAt.UnixNano()
		}
		prior = append(prior, generated{index: i, at: at})

		for pi := range s.Phases {
			for di := range s.Phases[pi].Drills {
				u.freq[s.Phases[pi].Drills[di].ID]++
			}
			for _, applied := range s.Phases[pi].PrinciplesApplied {
				for _, p := range focus {
					if strings.EqualFold(applied, p) {
						u.principleCounts[p]++
					}
				}
			}
		}
	}

	// Most recently generated first; population order, not calendar order,
	// defines recency.
	sort.Slice(prior, func(a, b int) bool { return prior[a].at > prior[b].at })
	if len(prior) > recentWindow {
		prior = prior[:recentWindow]
	}
	for _, g := range prior {
		s := &plan.Sessions[g.index]
		for pi := range s.Phases {
			for di := range s.Phases[pi].Drills {
				u.recent[s.Phases[pi].Drills[di].ID] = true
			}
		}
	}
}

// SeedGlobal primes the plan-wide counters from the plan's already-generated
// sessions. Used when a usage context is reconstructed for a plan loaded
// from storage.
func (u *Usage) SeedGlobal(plan *domain.Plan) {
	for i := range plan.Sessions {
		s := &plan.Sessions[i]
		if !s.DrillsGenerated {
			continue
		}
		for pi := range s.Phases {
			for di := range s.Phases[pi].Drills {
				u.global[s.Phases[pi].Drills[di].ID]++
			}
		}
	}
}

// RecordPick bumps the plan-wide counter for a chosen drill.
func (u *Usage) RecordPick(id string) {
	u.global[id]++
}

// GlobalCount reports how many times a drill has been picked across the
// whole plan, including the session currently being populated.
func (u *Usage) GlobalCount(id string) int { return u.global[id] }

// IsRecent reports whether a drill appeared in the last few generated
// sessions.
func (u *Usage) IsRecent(id string) bool { return u.recent[id] }

// Frequency reports how often a drill appeared in prior generated sessions.
func (u *Usage) Frequency(id string) int { return u.freq[id] }

// CoverageCount reports how often a focus principle has been applied so far.
func (u *Usage) CoverageCount(principle string) int {
	return u.principleCounts[principle]
}

// Snapshot returns the per-principle coverage counts in focus order.
func (u *Usage) Snapshot(focus []string) []domain.PrincipleCount {
	out := make([]domain.PrincipleCount, 0, len(focus))
	for _, p := range focus {
		out = append(out, domain.PrincipleCount{Name: p, Count: u.principleCounts[p]})
	}
	return out
}
