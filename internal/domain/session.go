package domain

import "time"

// Phase is a named segment of a session. Drills are absent until the
// selector populates the session.
type Phase struct {
	Name              string          `json:"name"`
	Focus             string          `json:"focus,omitempty"`
	TargetIntensity   Intensity       `json:"target_intensity"`
	Type              PhaseType       `json:"phase_type"`
	DurationMin       int             `json:"duration_min,omitempty"` // sum of drill durations once populated
	Rationale         string          `json:"rationale,omitempty"`
	Equipment         string          `json:"equipment,omitempty"` // deduped summary, populated with drills
	PrinciplesApplied []string        `json:"principles_applied,omitempty"`
	Drills            []DrillInstance `json:"drills,omitempty"`
}

// ComputedIntensity is derived from actual drill loads once a session is
// populated.
type ComputedIntensity struct {
	AverageScore float64   `json:"average_score"`
	Label        Intensity `json:"label"`
}

// PrincipleCount is one entry of a session's coverage snapshot.
type PrincipleCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Session is the training content for one timeline day.
type Session struct {
	Name              string     `json:"name"`
	Date              time.Time  `json:"date"`
	OverallLoad       LoadClass  `json:"overall_load"`
	PrinciplesApplied []string   `json:"principles_applied,omitempty"`
	Phases            []Phase    `json:"phases"`
	DrillsGenerated   bool       `json:"drills_generated"`
	GeneratedAt       *time.Time `json:"drill_generation_at,omitempty"`

	ComputedIntensity *ComputedIntensity `json:"computed_intensity,omitempty"`
	CoverageSnapshot  []PrincipleCount   `json:"principle_coverage_snapshot,omitempty"`
	DrillWarning      string             `json:"drill_warning,omitempty"`

	// UserRenamed marks a session whose name was edited by the user; load
	// overrides rebuild the skeleton but keep the name.
	UserRenamed bool `json:"user_renamed,omitempty"`
}

// Invalidate clears generated drill content so the session can be
// repopulated. Phase shells are kept.
func (s *Session) Invalidate() {
	s.DrillsGenerated = false
	s.GeneratedAt = nil
	s.ComputedIntensity = nil
	s.CoverageSnapshot = nil
	s.DrillWarning = ""
	for i := range s.Phases {
		s.Phases[i].Drills = nil
		s.Phases[i].DurationMin = 0
		s.Phases[i].Equipment = ""
	}
}
