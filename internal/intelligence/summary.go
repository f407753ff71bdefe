package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/llm"
)

// SummaryService writes the plan's narrative overview.
type SummaryService interface {
	// Narrative returns a short prose summary of the plan. It never fails;
	// when the text model is unavailable the deterministic summary is used.
	Narrative(ctx context.Context, plan *domain.Plan) string
}

type summaryService struct {
	client  llm.Client
	enabled bool
}

// NewSummaryService creates a SummaryService. client may be nil when the
// model path is disabled.
func NewSummaryService(client llm.Client, enabled bool) SummaryService {
	return &summaryService{client: client, enabled: enabled}
}

func (s *summaryService) Narrative(ctx context.Context, plan *domain.Plan) string {
	if !s.enabled || s.client == nil {
		return DeterministicSummary(plan)
	}
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSummary,
		SystemPrompt: summarySystemPrompt,
		UserPrompt:   buildSummaryPrompt(plan),
	})
	if err != nil {
		return DeterministicSummary(plan)
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return DeterministicSummary(plan)
	}
	return text
}

// DeterministicSummary composes the fallback narrative from timeline stats.
// It reads naturally enough to stand on its own when no model is configured.
func DeterministicSummary(plan *domain.Plan) string {
	counts := map[domain.LoadClass]int{}
	for _, d := range plan.Timeline {
		counts[d.LoadClass]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "A %d-week periodized block for %s covering %d days",
		plan.Weeks, plan.TeamName, plan.TotalDays)
	switch len(plan.Matches) {
	case 0:
		b.WriteString(" with no scheduled fixtures, built around a standard weekly rhythm.")
	case 1:
		fmt.Fprintf(&b, " around one fixture (vs %s).", plan.Matches[0].Opponent)
	default:
		fmt.Fprintf(&b, " around %d fixtures.", len(plan.Matches))
	}

	fmt.Fprintf(&b, " Training distributes %d high, %d medium and %d low intensity days with %d dedicated to recovery, tapering into match days and regenerating after them.",
		counts[domain.LoadHigh], counts[domain.LoadMedium], counts[domain.LoadLow], counts[domain.LoadRecovery])

	if focus := plan.FocusPrinciples.Flat(); len(focus) > 0 {
		fmt.Fprintf(&b, " The block develops %s.", joinNatural(focus))
	}
	if plan.Settings.Objective != "" {
		fmt.Fprintf(&b, " Primary objective: %s.", strings.TrimRight(plan.Settings.Objective, "."))
	}
	return b.String()
}

func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
