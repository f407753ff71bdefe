package domain

import "time"

// Fixture is a scheduled match, normalized at ingestion so the rest of the
// core never re-sniffs source field names.
type Fixture struct {
	ID               string
	Date             time.Time // calendar date, time-of-day stripped
	Opponent         string
	IsHome           bool
	Competition      string
	Notes            string
	ImportanceWeight float64
	MatchNumber      int // 1-based chronological order within the plan, 0 if unset
}

// TimelineDay is one calendar day within the plan horizon.
type TimelineDay struct {
	Date     time.Time
	DayIndex int // 0-based offset from plan start

	IsFixture bool
	Fixture   *Fixture

	LoadClass LoadClass
	MDLabel   string // e.g. "MD-2", "MD+1", "MD"; empty when isolated from fixtures
	Mesocycle MesocyclePhase
	Rationale string // optional, set by the model-assisted assigner
}

// WeekIndex derives the zero-based week this day falls in.
func (d TimelineDay) WeekIndex() int {
	return d.DayIndex / 7
}

const dateLayout = "2006-01-02"

// DateKey renders the day's date as a YYYY-MM-DD key.
func (d TimelineDay) DateKey() string {
	return d.Date.Format(dateLayout)
}

// DateKey normalizes any timestamp to its YYYY-MM-DD calendar key in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
