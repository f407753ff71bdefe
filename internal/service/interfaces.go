package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/repository"
)

// PlanOptions are the user-facing knobs for plan generation.
type PlanOptions struct {
	TeamName  string
	StartDate time.Time
	EndDate   *time.Time // nil derives the end from Weeks
	Weeks     int        // 0 uses the default horizon

	Objective          string
	SelectedPrinciples []string
	Variability        domain.Variability
	GenerationMode     domain.GenerationMode
	Seed               int64 // 0 draws a fresh seed
}

type PlanService interface {
	// GenerateHighLevelPlan builds the timeline, session skeletons, metrics
	// and narrative, leaving drills for lazy per-session generation.
	GenerateHighLevelPlan(ctx context.Context, opts PlanOptions) (*domain.Plan, error)

	// GeneratePlan runs the high-level pass and then populates every
	// session, returning the fully assembled plan.
	GeneratePlan(ctx context.Context, opts PlanOptions) (*domain.Plan, error)

	GetPlan(ctx context.Context, id string) (*domain.Plan, error)
	ListPlans(ctx context.Context, teamName string) ([]repository.PlanListing, error)
	DeletePlan(ctx context.Context, id string) error
	UpdateTitle(ctx context.Context, id, title string) error

	// GenerateSessionDrills populates one session. Populating an already
	// populated session is a no-op.
	GenerateSessionDrills(ctx context.Context, planID string, sessionIndex int) (*domain.Plan, error)

	// RegenerateSession discards a session's drills and repopulates it,
	// keeping the plan-wide usage counters so repetition penalties still
	// apply.
	RegenerateSession(ctx context.Context, planID string, sessionIndex int) (*domain.Plan, error)

	// UpdateDayLoad overrides a non-fixture day's load class, rebuilds that
	// day's session skeleton (preserving user-edited names), discards its
	// drills and recomputes weekly metrics.
	UpdateDayLoad(ctx context.Context, planID string, dayIndex int, load domain.LoadClass) (*domain.Plan, error)

	// RenameSession sets a session name and marks it user-edited so later
	// load overrides keep it.
	RenameSession(ctx context.Context, planID string, sessionIndex int, name string) (*domain.Plan, error)
}

type TeamService interface {
	// Ensure returns the team with the given name, creating it on first use.
	// Write paths (plan generation, fixture ingestion) go through Ensure.
	Ensure(ctx context.Context, name string) (*domain.Team, error)

	// Lookup returns the team with the given name or domain.ErrTeamNotFound.
	// Read paths use Lookup so a mistyped name fails instead of minting a
	// team row.
	Lookup(ctx context.Context, name string) (*domain.Team, error)

	List(ctx context.Context) ([]*domain.Team, error)
}

// ImportReport summarizes a fixture file import.
type ImportReport struct {
	Imported int
	Warnings []string
}

type FixtureService interface {
	Add(ctx context.Context, teamName string, f domain.Fixture) (*domain.Fixture, error)
	List(ctx context.Context, teamName string) ([]domain.Fixture, error)

	// ImportFile ingests a fixture JSON export, normalizing the
	// heterogeneous field names sources use. Unparseable entries are
	// skipped and reported.
	ImportFile(ctx context.Context, teamName string, data []byte) (*ImportReport, error)
}
