package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/repository"
	"github.com/google/uuid"
)

type teamService struct {
	teams repository.TeamRepo
}

// NewTeamService creates a TeamService.
func NewTeamService(teams repository.TeamRepo) TeamService {
	return &teamService{teams: teams}
}

func (s *teamService) Ensure(ctx context.Context, name string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("team name must not be empty")
	}
	team, err := s.teams.GetByName(ctx, name)
	if err == nil {
		return team, nil
	}
	if !errors.Is(err, domain.ErrTeamNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	team = &domain.Team{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *teamService) Lookup(ctx context.Context, name string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("team name must not be empty")
	}
	return s.teams.GetByName(ctx, name)
}

func (s *teamService) List(ctx context.Context) ([]*domain.Team, error) {
	return s.teams.List(ctx)
}
