package domain

import "time"

// FocusSet groups the plan's focus principles by category.
type FocusSet struct {
	Attacking  []string `json:"attacking,omitempty"`
	Defending  []string `json:"defending,omitempty"`
	Transition []string `json:"transition,omitempty"`
}

// Flat returns all focus principles in category order.
func (f FocusSet) Flat() []string {
	out := make([]string, 0, len(f.Attacking)+len(f.Defending)+len(f.Transition))
	out = append(out, f.Attacking...)
	out = append(out, f.Defending...)
	out = append(out, f.Transition...)
	return out
}

// MatchRef is the denormalized match listing attached to a plan.
type MatchRef struct {
	Date             time.Time `json:"date"`
	Opponent         string    `json:"opponent"`
	Home             bool      `json:"home"`
	MatchNumber      int       `json:"match_number"`
	ImportanceWeight float64   `json:"importance_weight"`
	Competition      string    `json:"competition,omitempty"`
}

// PlanSettings are the generation knobs the plan was created with.
type PlanSettings struct {
	Variability        Variability    `json:"variability"`
	Objective          string         `json:"objective,omitempty"`
	SelectedPrinciples []string       `json:"selected_principles,omitempty"`
	GenerationMode     GenerationMode `json:"generation_mode"`
	Seed               int64          `json:"seed,omitempty"`
}

// Plan is the complete periodization plan: timeline, session skeletons (and
// drills, once generated lazily), weekly analytics, and the narrative
// summary. Sessions[i] always corresponds to Timeline[i].
type Plan struct {
	ID       string `json:"id,omitempty"`
	TeamID   string `json:"team_id"`
	TeamName string `json:"team"`
	Title    string `json:"title,omitempty"`

	Summary         string   `json:"summary"`
	Principles      []string `json:"principles,omitempty"`
	FocusPrinciples FocusSet `json:"focus_principles"`

	Timeline      []TimelineDay  `json:"timeline"`
	Sessions      []Session      `json:"sessions"`
	Matches       []MatchRef     `json:"matches,omitempty"`
	WeeklyMetrics []WeeklyMetric `json:"weekly_metrics"`
	Warnings      []string       `json:"warnings,omitempty"`

	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	TotalDays   int        `json:"total_days"`
	Weeks       int        `json:"weeks,omitempty"`
	GeneratedAt time.Time  `json:"generated_at"`

	Settings PlanSettings `json:"settings"`
}

// GeneratedSessionCount reports how many sessions have drills populated.
// Partially populated plans are valid, resumable state.
func (p *Plan) GeneratedSessionCount() int {
	n := 0
	for i := range p.Sessions {
		if p.Sessions[i].DrillsGenerated {
			n++
		}
	}
	return n
}
