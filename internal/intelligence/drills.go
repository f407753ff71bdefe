package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/llm"
)

const (
	maxGeneratedPerPhase = 4
	minDrillDuration     = 4
	maxDrillDuration     = 40
	defaultDrillDuration = 10
	maxDrillNameLen      = 80
)

// generatedDrill is the model's wire shape for one drill.
type generatedDrill struct {
	Name           string   `json:"name"`
	DurationMin    int      `json:"duration_min"`
	Load           string   `json:"load"`
	Objective      string   `json:"objective"`
	Equipment      []string `json:"equipment"`
	CoachingPoints []string `json:"coaching_points"`
}

type generatedDrillSet struct {
	Phases map[string][]generatedDrill `json:"phases"`
}

// DrillService synthesizes session drills via the text model. It satisfies
// the selector's generator contract; callers fall back to curated content on
// any error.
type DrillService struct {
	client llm.Client
}

// NewDrillService creates a DrillService. client must be non-nil.
func NewDrillService(client llm.Client) *DrillService {
	return &DrillService{client: client}
}

// GenerateDrills asks the model for drills covering the budgeted phases and
// normalizes the response into drill instances. Durations, names and loads
// are clamped to safe ranges; unrecognized phases are dropped.
func (s *DrillService) GenerateDrills(ctx context.Context, plan *domain.Plan, session *domain.Session, budgets map[string]int) (map[string][]domain.DrillInstance, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDrills,
		SystemPrompt: drillsSystemPrompt,
		UserPrompt:   buildDrillsPrompt(plan, session, budgets),
	})
	if err != nil {
		return nil, err
	}

	set, err := llm.ExtractJSON(resp.Text, func(g generatedDrillSet) error {
		if len(g.Phases) == 0 {
			return fmt.Errorf("no phases in response")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sessionIdx := sessionIndexOf(plan, session)
	out := make(map[string][]domain.DrillInstance, len(set.Phases))
	for i := range session.Phases {
		phase := &session.Phases[i]
		raw, ok := lookupPhase(set.Phases, phase.Name)
		if !ok {
			continue
		}
		if len(raw) > maxGeneratedPerPhase {
			raw = raw[:maxGeneratedPerPhase]
		}
		var drills []domain.DrillInstance
		for j, g := range raw {
			name := strings.TrimSpace(g.Name)
			if name == "" {
				continue
			}
			if len(name) > maxDrillNameLen {
				name = name[:maxDrillNameLen]
			}
			drills = append(drills, domain.DrillInstance{
				ID:             fmt.Sprintf("gen_%d_%s_%d", sessionIdx, phaseSlug(phase.Name), j),
				Name:           name,
				DurationMin:    clampDuration(g.DurationMin),
				Load:           normalizeLoad(g.Load, phase.TargetIntensity),
				Objective:      strings.TrimSpace(g.Objective),
				Equipment:      g.Equipment,
				CoachingPoints: g.CoachingPoints,
				Source:         domain.DrillSource{Name: "ai-generated", QualityWeight: 0.5},
			})
		}
		if len(drills) > 0 {
			out[phase.Name] = drills
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no usable drills", llm.ErrInvalidOutput)
	}
	return out, nil
}

func sessionIndexOf(plan *domain.Plan, session *domain.Session) int {
	for i := range plan.Sessions {
		if &plan.Sessions[i] == session {
			return i
		}
	}
	return 0
}

// lookupPhase matches model phase keys case-insensitively; models routinely
// re-case phase names.
func lookupPhase(phases map[string][]generatedDrill, name string) ([]generatedDrill, bool) {
	if d, ok := phases[name]; ok {
		return d, true
	}
	for k, d := range phases {
		if strings.EqualFold(k, name) {
			return d, true
		}
	}
	return nil, false
}

func phaseSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func clampDuration(d int) int {
	switch {
	case d <= 0:
		return defaultDrillDuration
	case d < minDrillDuration:
		return minDrillDuration
	case d > maxDrillDuration:
		return maxDrillDuration
	}
	return d
}

func normalizeLoad(raw string, fallback domain.Intensity) domain.Intensity {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return domain.IntensityLow
	case "medium":
		return domain.IntensityMedium
	case "high":
		return domain.IntensityHigh
	}
	if fallback != "" {
		return fallback
	}
	return domain.IntensityMedium
}
