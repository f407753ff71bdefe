package periodization

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

// mdSearchForward and mdSearchBackward bound the match-day labelling
// windows: MD-6..MD-1 ahead of a fixture, MD+1..MD+3 after one. When a day
// sits in both windows the forward label wins.
const (
	mdSearchForward  = 6
	mdSearchBackward = 3
)

// congestionGapDays triggers the compressed template when two fixtures are
// this close or closer.
const congestionGapDays = 3

// AssignLoads populates LoadClass, MDLabel and Mesocycle for every day of
// the timeline using the deterministic match-day-relative template. It is
// the always-available fallback for the model-assisted assigner and never
// leaves a day unset.
func AssignLoads(timeline []domain.TimelineDay, tun Tunables) {
	fixtureIdxs := make([]int, 0, 4)
	for i := range timeline {
		if timeline[i].IsFixture {
			fixtureIdxs = append(fixtureIdxs, i)
		}
	}
	nextFixture := func(idx int) int {
		for _, f := range fixtureIdxs {
			if f > idx {
				return f
			}
		}
		return -1
	}
	prevFixture := func(idx int) int {
		prev := -1
		for _, f := range fixtureIdxs {
			if f <= idx {
				prev = f
			} else {
				break
			}
		}
		return prev
	}

	for i := range timeline {
		day := &timeline[i]
		day.Mesocycle = domain.MesocycleForWeek(day.WeekIndex())

		if day.IsFixture {
			day.LoadClass = domain.LoadMatch
			day.MDLabel = "MD"
			continue
		}

		prev := prevFixture(i)
		next := nextFixture(i)

		mdLabel := ""
		if next >= 0 {
			if until := next - i; until >= 1 && until <= mdSearchForward {
				mdLabel = fmt.Sprintf("MD-%d", until)
			}
		}
		if mdLabel == "" && prev >= 0 {
			if after := i - prev; after >= 1 && after <= mdSearchBackward {
				mdLabel = fmt.Sprintf("MD+%d", after)
			}
		}

		upcomingImportance := 1.0
		if next >= 0 && timeline[next].Fixture != nil {
			upcomingImportance = timeline[next].Fixture.ImportanceWeight
		}

		var load domain.LoadClass
		switch mdLabel {
		case "MD-6", "MD-5", "MD-4":
			load = domain.LoadHigh
		case "MD-3":
			load = domain.LoadMedium
		case "MD-2":
			// Taper harder ahead of important matches.
			if upcomingImportance > tun.TaperImportance {
				load = domain.LoadLow
			} else {
				load = domain.LoadMedium
			}
		case "MD-1":
			if upcomingImportance > tun.TaperImportance {
				load = domain.LoadRecovery
			} else {
				load = domain.LoadLow
			}
		case "MD+1":
			load = domain.LoadRecovery
		case "MD+2":
			load = domain.LoadLow
		case "MD+3":
			load = domain.LoadMedium
		}

		// Fixture congestion: two matches within 72h compress the pattern to
		// recovery, then medium, then a light pre-match day.
		if prev >= 0 && next >= 0 && next-prev <= congestionGapDays {
			switch i {
			case prev + 1:
				load = domain.LoadRecovery
			case next - 1:
				load = domain.LoadLow
			default:
				load = domain.LoadMedium
			}
		}

		if load == "" {
			load = weekdayFallback(day.Date)
		}

		day.LoadClass = load
		day.MDLabel = mdLabel
	}
}

// weekdayFallback patterns days isolated from any fixture.
func weekdayFallback(date time.Time) domain.LoadClass {
	switch date.UTC().Weekday() {
	case time.Monday, time.Wednesday:
		return domain.LoadHigh
	case time.Tuesday, time.Thursday:
		return domain.LoadMedium
	case time.Friday, time.Saturday:
		return domain.LoadLow
	case time.Sunday:
		return domain.LoadRecovery
	}
	return domain.LoadMedium
}
