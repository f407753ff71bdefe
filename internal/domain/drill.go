package domain

import "time"

// DrillSource records where a catalogued drill came from and how much it is
// trusted. QualityWeight is in [0,1].
type DrillSource struct {
	Name          string  `json:"name"`
	QualityWeight float64 `json:"quality_weight"`
}

// PlayerSetup describes the player arrangement for a drill.
type PlayerSetup struct {
	Arrangement string `json:"arrangement,omitempty"`
}

// SpaceSpec describes the physical area a drill needs.
type SpaceSpec struct {
	Dimensions string `json:"dimensions,omitempty"`
}

// DrillTemplate is a catalogued, reusable drill from the content library.
// Templates are read-only reference data; sessions receive copies.
type DrillTemplate struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Phase               string      `json:"phase"` // phase-name affinity, e.g. "Warm Up", "Tactical"
	Workload            Intensity   `json:"workload"`
	Category            []string    `json:"category,omitempty"`
	Tags                []string    `json:"tags,omitempty"`
	ObjectivePrimary    string      `json:"objective_primary"`
	ObjectivesSecondary []string    `json:"objectives_secondary,omitempty"`
	DurationMin         int         `json:"duration_min"`
	DurationMax         int         `json:"duration_max"`
	Equipment           []string    `json:"equipment,omitempty"`
	CoachingPoints      []string    `json:"coaching_points,omitempty"`
	Constraints         []string    `json:"constraints,omitempty"`
	Progressions        []string    `json:"progressions,omitempty"`
	Regressions         []string    `json:"regressions,omitempty"`
	Players             PlayerSetup `json:"players,omitempty"`
	Space               SpaceSpec   `json:"space,omitempty"`
	Source              DrillSource `json:"source"`
	LastReviewed        *time.Time  `json:"last_reviewed,omitempty"`
}

// DrillInstance is a drill as placed into a specific phase of a specific
// session. It is a projection of a DrillTemplate, owned by its phase and
// never shared even when the same template is chosen twice.
type DrillInstance struct {
	ID                  string      `json:"id"` // source template id, or synthetic for fallback/generated drills
	Name                string      `json:"name"`
	DurationMin         int         `json:"duration_min"` // minutes, midpoint of the template range
	Load                Intensity   `json:"load"`
	Objective           string      `json:"objective,omitempty"`
	ObjectivesSecondary []string    `json:"objectives_secondary,omitempty"`
	Equipment           []string    `json:"equipment,omitempty"`
	CoachingPoints      []string    `json:"coaching_points,omitempty"`
	Constraints         []string    `json:"constraints,omitempty"`
	Progressions        []string    `json:"progressions,omitempty"`
	Regressions         []string    `json:"regressions,omitempty"`
	Players             PlayerSetup `json:"players,omitempty"`
	Space               SpaceSpec   `json:"space,omitempty"`
	Source              DrillSource `json:"source"`
	Instructions        string      `json:"instructions,omitempty"` // derived human-readable block
}
