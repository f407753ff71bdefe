package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/library"
	"github.com/alexanderramin/pitchcycle/internal/periodization"
	"github.com/alexanderramin/pitchcycle/internal/repository"
	"github.com/google/uuid"
)

type fixtureService struct {
	fixtures repository.FixtureRepo
	teams    TeamService
	tun      periodization.Tunables
}

// NewFixtureService creates a FixtureService.
func NewFixtureService(fixtures repository.FixtureRepo, teams TeamService, tun periodization.Tunables) FixtureService {
	return &fixtureService{fixtures: fixtures, teams: teams, tun: tun}
}

func (s *fixtureService) Add(ctx context.Context, teamName string, f domain.Fixture) (*domain.Fixture, error) {
	team, err := s.teams.Ensure(ctx, teamName)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(f.Opponent) == "" {
		return nil, fmt.Errorf("fixture opponent must not be empty")
	}
	if f.Date.IsZero() {
		return nil, fmt.Errorf("fixture date must be set")
	}
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.Date = time.Date(f.Date.Year(), f.Date.Month(), f.Date.Day(), 0, 0, 0, 0, time.UTC)
	f.ImportanceWeight = periodization.ImportanceWeight(f, s.tun)

	if err := s.fixtures.Create(ctx, team.ID, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *fixtureService) List(ctx context.Context, teamName string) ([]domain.Fixture, error) {
	team, err := s.teams.Lookup(ctx, teamName)
	if err != nil {
		return nil, err
	}
	return s.fixtures.ListByTeam(ctx, team.ID)
}

func (s *fixtureService) ImportFile(ctx context.Context, teamName string, data []byte) (*ImportReport, error) {
	team, err := s.teams.Ensure(ctx, teamName)
	if err != nil {
		return nil, err
	}
	fixtures, warnings, err := library.ParseFixtureFile(data, teamName)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{Warnings: warnings}
	for i := range fixtures {
		f := fixtures[i]
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		f.ImportanceWeight = periodization.ImportanceWeight(f, s.tun)
		if err := s.fixtures.Create(ctx, team.ID, &f); err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("fixture vs %s on %s not saved: %v",
				f.Opponent, f.Date.Format("2006-01-02"), err))
			continue
		}
		report.Imported++
	}
	return report, nil
}
