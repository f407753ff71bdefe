package periodization

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

// MaxPlanDays caps the plan horizon. Longer requests are truncated with a
// warning rather than rejected.
const MaxPlanDays = 42

// BuildOptions define the plan horizon: either Weeks or EndDate; EndDate
// wins when both are set.
type BuildOptions struct {
	StartDate time.Time
	EndDate   *time.Time
	Weeks     int
}

// Competition/notes keyword heuristics for match importance.
var (
	stageRe    = regexp.MustCompile(`(?i)semi|quarter|final`)
	cupRe      = regexp.MustCompile(`(?i)cup|champions|playoff|knockout`)
	friendlyRe = regexp.MustCompile(`(?i)friendly|preseason`)
	rivalryRe  = regexp.MustCompile(`(?i)derby|rival|relegation`)
)

// ImportanceWeight scores a fixture's relative importance from its
// competition and notes text. Baseline 1.0 (league), floored at
// tun.ImportanceFloor, rounded to two decimals.
func ImportanceWeight(f domain.Fixture, tun Tunables) float64 {
	score := 1.0
	if stageRe.MatchString(f.Competition) {
		score += 0.4
	}
	if cupRe.MatchString(f.Competition) {
		score += 0.3
	}
	if friendlyRe.MatchString(f.Competition) {
		score -= 0.3
	}
	if rivalryRe.MatchString(f.Notes) {
		score += 0.2
	}
	if score < tun.ImportanceFloor {
		score = tun.ImportanceFloor
	}
	return math.Round(score*100) / 100
}

// BuildTimeline produces one TimelineDay per calendar day in the requested
// range, matching fixtures by normalized date key. Load classes are left
// unset for the assigner. Returns the timeline plus any warnings.
func BuildTimeline(fixtures []domain.Fixture, opts BuildOptions, tun Tunables) ([]domain.TimelineDay, []string, error) {
	if opts.StartDate.IsZero() {
		return nil, nil, fmt.Errorf("%w: missing start date", domain.ErrInvalidDateRange)
	}
	start := truncateToDay(opts.StartDate)

	var totalDays int
	switch {
	case opts.EndDate != nil:
		end := truncateToDay(*opts.EndDate)
		if end.Before(start) {
			return nil, nil, fmt.Errorf("%w: end date before start date", domain.ErrInvalidDateRange)
		}
		totalDays = int(end.Sub(start).Hours()/24) + 1
	case opts.Weeks > 0:
		totalDays = opts.Weeks * 7
	default:
		return nil, nil, fmt.Errorf("%w: need weeks or end date", domain.ErrInvalidDateRange)
	}

	var warnings []string
	if totalDays > MaxPlanDays {
		warnings = append(warnings, fmt.Sprintf(
			"Requested span of %d days exceeds the %d-day planning horizon; truncated.", totalDays, MaxPlanDays))
		totalDays = MaxPlanDays
	}

	// Normalize fixture dates to calendar-date keys once; first fixture per
	// date wins, duplicates are ignored.
	fixtureByDate := make(map[string]domain.Fixture, len(fixtures))
	ordered := make([]domain.Fixture, len(fixtures))
	copy(ordered, fixtures)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Date.Before(ordered[j].Date) })
	for _, f := range ordered {
		key := domain.DateKey(f.Date)
		if _, exists := fixtureByDate[key]; !exists {
			fixtureByDate[key] = f
		}
	}

	timeline := make([]domain.TimelineDay, 0, totalDays)
	matchCounter := 0
	for i := 0; i < totalDays; i++ {
		date := start.AddDate(0, 0, i)
		day := domain.TimelineDay{Date: date, DayIndex: i}
		if f, ok := fixtureByDate[domain.DateKey(date)]; ok {
			matchCounter++
			f.MatchNumber = matchCounter
			f.ImportanceWeight = ImportanceWeight(f, tun)
			day.IsFixture = true
			day.Fixture = &f
		}
		timeline = append(timeline, day)
	}
	return timeline, warnings, nil
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
