package library

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

// RawFixture mirrors the loosely-typed fixture shapes seen across feed
// sources. Field naming is inconsistent (home_team vs home vs host etc.);
// Normalize resolves everything once, at ingestion, so downstream code only
// ever sees domain.Fixture.
type RawFixture struct {
	ID   string `json:"id,omitempty"`
	Date string `json:"date"`

	HomeTeam string `json:"home_team,omitempty"`
	Home     string `json:"home,omitempty"`
	Host     string `json:"host,omitempty"`
	TeamHome string `json:"team_home,omitempty"`

	AwayTeam string `json:"away_team,omitempty"`
	Away     string `json:"away,omitempty"`
	Opponent string `json:"opponent,omitempty"`
	TeamAway string `json:"team_away,omitempty"`

	IsHome *bool `json:"is_home,omitempty"`

	Competition     string `json:"competition,omitempty"`
	Comp            string `json:"comp,omitempty"`
	CompetitionName string `json:"competition_name,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// ParseFixtureFile decodes a JSON array of heterogeneous fixtures and
// normalizes each against the given team name. Fixtures with unparsable
// dates are skipped and reported as warnings.
func ParseFixtureFile(data []byte, teamName string) ([]domain.Fixture, []string, error) {
	var raws []RawFixture
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, nil, fmt.Errorf("parsing fixture file: %w", err)
	}
	fixtures := make([]domain.Fixture, 0, len(raws))
	var warnings []string
	for i, r := range raws {
		f, err := NormalizeFixture(r, teamName)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("fixture %d skipped: %v", i, err))
			continue
		}
		fixtures = append(fixtures, f)
	}
	return fixtures, warnings, nil
}

// NormalizeFixture resolves a raw fixture's date, opponent, venue and
// competition into the canonical shape.
func NormalizeFixture(r RawFixture, teamName string) (domain.Fixture, error) {
	date, err := parseFixtureDate(r.Date)
	if err != nil {
		return domain.Fixture{}, err
	}

	home := coalesce(r.HomeTeam, r.Home, r.Host, r.TeamHome)
	away := coalesce(r.AwayTeam, r.Away, r.Opponent, r.TeamAway)

	isHome := (home != "" && home == teamName)
	if r.IsHome != nil {
		isHome = *r.IsHome
	}

	var opponent string
	switch {
	case home != "" && away != "":
		if isHome {
			opponent = away
		} else {
			opponent = home
		}
	default:
		opponent = coalesce(r.Opponent, r.AwayTeam, r.Away, r.HomeTeam, "Opponent")
	}

	return domain.Fixture{
		ID:          r.ID,
		Date:        date,
		Opponent:    opponent,
		IsHome:      isHome,
		Competition: coalesce(r.Competition, r.Comp, r.CompetitionName),
		Notes:       r.Notes,
	}, nil
}

// parseFixtureDate accepts timestamps or plain dates and strips them to a
// UTC calendar date, avoiding timezone-induced off-by-one shifts.
func parseFixtureDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			u := t.UTC()
			return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	// Last resort: take anything ahead of a "T" separator.
	if idx := strings.IndexByte(raw, 'T'); idx > 0 {
		if t, err := time.Parse("2006-01-02", raw[:idx]); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", raw)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
