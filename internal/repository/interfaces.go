package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

// PlanListing is the denormalized view of a stored plan, used for listing
// without deserializing the full document.
type PlanListing struct {
	ID           string
	TeamID       string
	Title        string
	StartDate    time.Time
	EndDate      time.Time
	DurationDays int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type TeamRepo interface {
	Create(ctx context.Context, t *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
}

type PlanRepo interface {
	Save(ctx context.Context, teamID string, plan *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context, teamID string) ([]PlanListing, error)
	UpdateTitle(ctx context.Context, id, title string) error
	Delete(ctx context.Context, id string) error
}

type FixtureRepo interface {
	Create(ctx context.Context, teamID string, f *domain.Fixture) error
	ListByTeam(ctx context.Context, teamID string) ([]domain.Fixture, error)
	ListRange(ctx context.Context, teamID string, from, to time.Time) ([]domain.Fixture, error)
	Delete(ctx context.Context, id string) error
}
