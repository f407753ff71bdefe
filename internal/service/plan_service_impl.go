package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/intelligence"
	"github.com/alexanderramin/pitchcycle/internal/library"
	"github.com/alexanderramin/pitchcycle/internal/periodization"
	"github.com/alexanderramin/pitchcycle/internal/repository"
	"github.com/alexanderramin/pitchcycle/internal/training"
	"github.com/google/uuid"
)

const (
	defaultPlanWeeks = 5
	maxTitleLen      = 50
)

type planService struct {
	plans     repository.PlanRepo
	fixtures  repository.FixtureRepo
	teams     TeamService
	catalogue *library.Catalogue
	assigner  intelligence.LoadAssigner
	summaries intelligence.SummaryService
	generator training.DrillGenerator // nil when model drills are off
	tun       periodization.Tunables

	mu     sync.Mutex
	usages map[string]*training.Usage // plan id -> usage context
}

// NewPlanService wires the plan assembler. generator may be nil.
func NewPlanService(
	plans repository.PlanRepo,
	fixtures repository.FixtureRepo,
	teams TeamService,
	catalogue *library.Catalogue,
	assigner intelligence.LoadAssigner,
	summaries intelligence.SummaryService,
	generator training.DrillGenerator,
	tun periodization.Tunables,
) PlanService {
	return &planService{
		plans:     plans,
		fixtures:  fixtures,
		teams:     teams,
		catalogue: catalogue,
		assigner:  assigner,
		summaries: summaries,
		generator: generator,
		tun:       tun,
		usages:    make(map[string]*training.Usage),
	}
}

func (s *planService) GenerateHighLevelPlan(ctx context.Context, opts PlanOptions) (*domain.Plan, error) {
	team, err := s.teams.Ensure(ctx, opts.TeamName)
	if err != nil {
		return nil, err
	}

	weeks := opts.Weeks
	if weeks <= 0 {
		weeks = defaultPlanWeeks
	}

	start := opts.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}
	end := start.AddDate(0, 0, weeks*7-1)
	if opts.EndDate != nil {
		end = *opts.EndDate
	}

	fixtures, err := s.fixtures.ListRange(ctx, team.ID, start, end)
	if err != nil {
		return nil, err
	}

	// The builder owns horizon truncation so over-long requests keep their
	// warning. Fixtures past the horizon simply never match a timeline day.
	timeline, warnings, err := periodization.BuildTimeline(fixtures, periodization.BuildOptions{
		StartDate: start,
		EndDate:   opts.EndDate,
		Weeks:     weeks,
	}, s.tun)
	if err != nil {
		return nil, err
	}

	s.assigner.Assign(ctx, timeline)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	variability := opts.Variability
	if variability == "" {
		variability = domain.VariabilityMedium
	}
	mode := opts.GenerationMode
	if mode == "" {
		mode = domain.ModeCurated
	}
	focus := library.DeriveFocusPrinciples(opts.SelectedPrinciples)

	rng := rand.New(rand.NewSource(seed))
	sessions := make([]domain.Session, 0, len(timeline))
	for _, day := range timeline {
		sessions = append(sessions, training.DeriveSkeleton(day, rng))
	}

	metrics := periodization.ComputeWeeklyMetrics(timeline, s.tun)
	warnings = append(warnings, monotonyWarnings(metrics)...)

	plan := &domain.Plan{
		ID:              uuid.NewString(),
		TeamID:          team.ID,
		TeamName:        team.Name,
		Principles:      focus.Flat(),
		FocusPrinciples: focus,
		Timeline:        timeline,
		Sessions:        sessions,
		Matches:         matchRefs(timeline),
		WeeklyMetrics:   metrics,
		Warnings:        warnings,
		StartDate:       timeline[0].Date,
		EndDate:         timeline[len(timeline)-1].Date,
		TotalDays:       len(timeline),
		Weeks:           (len(timeline) + 6) / 7,
		GeneratedAt:     time.Now().UTC(),
		Settings: domain.PlanSettings{
			Variability:        variability,
			Objective:          opts.Objective,
			SelectedPrinciples: opts.SelectedPrinciples,
			GenerationMode:     mode,
			Seed:               seed,
		},
	}

	plan.Summary = s.summaries.Narrative(ctx, plan)
	plan.Title = titleFromSummary(plan.Summary, plan.TeamName)

	if err := s.plans.Save(ctx, team.ID, plan); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.usages[plan.ID] = training.NewUsage()
	s.mu.Unlock()

	return plan, nil
}

func (s *planService) GeneratePlan(ctx context.Context, opts PlanOptions) (*domain.Plan, error) {
	plan, err := s.GenerateHighLevelPlan(ctx, opts)
	if err != nil {
		return nil, err
	}
	usage := s.usageFor(plan)
	for i := range plan.Sessions {
		sel := s.selectorFor(plan, i)
		if err := sel.PopulateSession(ctx, plan, i, usage); err != nil {
			return nil, err
		}
	}
	if err := s.plans.Save(ctx, plan.TeamID, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) GetPlan(ctx context.Context, id string) (*domain.Plan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) ListPlans(ctx context.Context, teamName string) ([]repository.PlanListing, error) {
	team, err := s.teams.Lookup(ctx, teamName)
	if err != nil {
		return nil, err
	}
	return s.plans.List(ctx, team.ID)
}

func (s *planService) DeletePlan(ctx context.Context, id string) error {
	if err := s.plans.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.usages, id)
	s.mu.Unlock()
	return nil
}

func (s *planService) UpdateTitle(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title must not be empty")
	}
	return s.plans.UpdateTitle(ctx, id, title)
}

func (s *planService) GenerateSessionDrills(ctx context.Context, planID string, sessionIndex int) (*domain.Plan, error) {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	usage := s.usageFor(plan)
	sel := s.selectorFor(plan, sessionIndex)
	if err := sel.PopulateSession(ctx, plan, sessionIndex, usage); err != nil {
		return nil, err
	}
	if err := s.plans.Save(ctx, plan.TeamID, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) RegenerateSession(ctx context.Context, planID string, sessionIndex int) (*domain.Plan, error) {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if sessionIndex < 0 || sessionIndex >= len(plan.Sessions) {
		return nil, fmt.Errorf("session %d: %w", sessionIndex, domain.ErrSessionIndexOutOfRange)
	}

	// Plan-wide usage counters deliberately survive regeneration: a drill
	// the squad has already trained stays penalized even if its session is
	// rebuilt.
	usage := s.usageFor(plan)
	plan.Sessions[sessionIndex].Invalidate()

	sel := s.selectorFor(plan, sessionIndex)
	if err := sel.PopulateSession(ctx, plan, sessionIndex, usage); err != nil {
		return nil, err
	}
	if err := s.plans.Save(ctx, plan.TeamID, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) UpdateDayLoad(ctx context.Context, planID string, dayIndex int, load domain.LoadClass) (*domain.Plan, error) {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if dayIndex < 0 || dayIndex >= len(plan.Timeline) {
		return nil, fmt.Errorf("day %d: %w", dayIndex, domain.ErrDayIndexOutOfRange)
	}
	if !domain.ValidLoadClasses[load] || load == domain.LoadMatch {
		return nil, fmt.Errorf("invalid load class %q", load)
	}
	day := &plan.Timeline[dayIndex]
	if day.IsFixture {
		return nil, fmt.Errorf("day %d is a fixture day; its load is fixed", dayIndex)
	}

	day.LoadClass = load
	day.Rationale = "Manually adjusted"

	// Rebuild the skeleton for the new load; a user-edited session name
	// survives the rebuild.
	old := plan.Sessions[dayIndex]
	rng := rand.New(rand.NewSource(plan.Settings.Seed + int64(dayIndex)*7919))
	fresh := training.DeriveSkeleton(*day, rng)
	if old.UserRenamed {
		fresh.Name = old.Name
		fresh.UserRenamed = true
	}
	plan.Sessions[dayIndex] = fresh

	plan.WeeklyMetrics = periodization.ComputeWeeklyMetrics(plan.Timeline, s.tun)
	plan.Warnings = refreshMonotonyWarnings(plan.Warnings, plan.WeeklyMetrics)

	if err := s.plans.Save(ctx, plan.TeamID, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) RenameSession(ctx context.Context, planID string, sessionIndex int, name string) (*domain.Plan, error) {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if sessionIndex < 0 || sessionIndex >= len(plan.Sessions) {
		return nil, fmt.Errorf("session %d: %w", sessionIndex, domain.ErrSessionIndexOutOfRange)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("session name must not be empty")
	}
	plan.Sessions[sessionIndex].Name = name
	plan.Sessions[sessionIndex].UserRenamed = true

	if err := s.plans.Save(ctx, plan.TeamID, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// usageFor returns the plan's usage context, reconstructing counters from
// the stored plan when the service has no live context (fresh process).
func (s *planService) usageFor(plan *domain.Plan) *training.Usage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.usages[plan.ID]; ok {
		return u
	}
	u := training.NewUsage()
	u.SeedGlobal(plan)
	s.usages[plan.ID] = u
	return u
}

// selectorFor builds a selector whose RNG is derived from the plan seed and
// the session index, so each session's draw is reproducible regardless of
// generation order.
func (s *planService) selectorFor(plan *domain.Plan, sessionIndex int) *training.Selector {
	seed := plan.Settings.Seed + int64(sessionIndex+1)*0x9E3779B9
	return training.NewSelector(s.catalogue, plan.Settings, s.generator, rand.New(rand.NewSource(seed)))
}

func matchRefs(timeline []domain.TimelineDay) []domain.MatchRef {
	var refs []domain.MatchRef
	for _, d := range timeline {
		if !d.IsFixture || d.Fixture == nil {
			continue
		}
		refs = append(refs, domain.MatchRef{
			Date:             d.Fixture.Date,
			Opponent:         d.Fixture.Opponent,
			Home:             d.Fixture.IsHome,
			MatchNumber:      d.Fixture.MatchNumber,
			ImportanceWeight: d.Fixture.ImportanceWeight,
			Competition:      d.Fixture.Competition,
		})
	}
	return refs
}

const monotonyWarningPrefix = "High training monotony"

func monotonyWarnings(metrics []domain.WeeklyMetric) []string {
	var out []string
	for _, m := range metrics {
		if m.FlagMonotony == domain.FlagHigh {
			out = append(out, fmt.Sprintf("%s in week %d; consider varying daily loads.", monotonyWarningPrefix, m.WeekIndex+1))
		}
	}
	return out
}

// refreshMonotonyWarnings replaces stale monotony warnings after a metrics
// recompute, keeping unrelated warnings (e.g. horizon truncation) intact.
func refreshMonotonyWarnings(warnings []string, metrics []domain.WeeklyMetric) []string {
	var kept []string
	for _, w := range warnings {
		if !strings.HasPrefix(w, monotonyWarningPrefix) {
			kept = append(kept, w)
		}
	}
	return append(kept, monotonyWarnings(metrics)...)
}

// titleFromSummary derives the default plan title: the summary's first
// sentence, truncated.
func titleFromSummary(summary, teamName string) string {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return teamName + " training plan"
	}
	title := summary
	if i := strings.Index(summary, ". "); i > 0 {
		title = summary[:i]
	} else {
		title = strings.TrimRight(title, ".")
	}
	if len(title) > maxTitleLen {
		title = strings.TrimSpace(title[:maxTitleLen])
	}
	return title
}
