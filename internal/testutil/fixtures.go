package testutil

import (
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/google/uuid"
)

// FixtureOption mutates a test fixture.
type FixtureOption func(*domain.Fixture)

func WithCompetition(c string) FixtureOption {
	return func(f *domain.Fixture) { f.Competition = c }
}

func WithNotes(n string) FixtureOption {
	return func(f *domain.Fixture) { f.Notes = n }
}

func Away() FixtureOption {
	return func(f *domain.Fixture) { f.IsHome = false }
}

// NewFixture builds a home league fixture on the given date.
func NewFixture(date time.Time, opponent string, opts ...FixtureOption) domain.Fixture {
	f := domain.Fixture{
		ID:          uuid.NewString(),
		Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Opponent:    opponent,
		IsHome:      true,
		Competition: "League",
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// NewTeam builds a team with a fresh id.
func NewTeam(name string) *domain.Team {
	now := time.Now().UTC()
	return &domain.Team{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
