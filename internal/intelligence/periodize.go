package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/llm"
	"github.com/alexanderramin/pitchcycle/internal/periodization"
)

// LoadAssigner assigns load classes, MD labels and mesocycle phases to a
// timeline in place. Implementations must leave no day unassigned.
type LoadAssigner interface {
	Assign(ctx context.Context, timeline []domain.TimelineDay)
}

// DeterministicAssigner applies the rule-based periodization only.
type DeterministicAssigner struct {
	Tunables periodization.Tunables
}

func (a DeterministicAssigner) Assign(_ context.Context, timeline []domain.TimelineDay) {
	periodization.AssignLoads(timeline, a.Tunables)
}

// loadProposal is one model-proposed day assignment.
type loadProposal struct {
	DayIndex  int    `json:"day_index"`
	LoadClass string `json:"load_class"`
	Rationale string `json:"rationale"`
}

type loadProposalSet struct {
	Days []loadProposal `json:"days"`
}

// ModelAssigner asks the text model for day-level load proposals on top of
// the deterministic baseline. The baseline always runs first, so a partial
// or failed model response still leaves every day assigned; valid proposals
// for non-fixture days then overwrite the baseline.
type ModelAssigner struct {
	Client   llm.Client
	Tunables periodization.Tunables
}

func (a ModelAssigner) Assign(ctx context.Context, timeline []domain.TimelineDay) {
	periodization.AssignLoads(timeline, a.Tunables)
	if a.Client == nil || len(timeline) == 0 {
		return
	}

	resp, err := a.Client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPeriodization,
		SystemPrompt: periodizationSystemPrompt,
		UserPrompt:   buildPeriodizationPrompt(timeline),
	})
	if err != nil {
		return
	}

	set, err := llm.ExtractJSON(resp.Text, func(s loadProposalSet) error {
		if len(s.Days) == 0 {
			return fmt.Errorf("empty day list")
		}
		return nil
	})
	if err != nil {
		return
	}

	for _, p := range set.Days {
		if p.DayIndex < 0 || p.DayIndex >= len(timeline) {
			continue
		}
		day := &timeline[p.DayIndex]
		if day.IsFixture {
			continue // fixture days are never negotiable
		}
		lc, ok := canonicalLoadClass(p.LoadClass)
		if !ok || lc == domain.LoadMatch {
			continue
		}
		day.LoadClass = lc
		if r := strings.TrimSpace(p.Rationale); r != "" {
			day.Rationale = r
		}
	}
}

// canonicalLoadClass normalizes model casing ("HIGH", "recovery") onto the
// domain constants.
func canonicalLoadClass(raw string) (domain.LoadClass, bool) {
	for lc := range domain.ValidLoadClasses {
		if strings.EqualFold(strings.TrimSpace(raw), string(lc)) {
			return lc, true
		}
	}
	return "", false
}
