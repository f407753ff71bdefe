package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pitchcycle/internal/domain"
	"github.com/alexanderramin/pitchcycle/internal/repository"
)

// FormatPlanOverview renders the plan header block: title, horizon,
// narrative summary and any warnings.
func FormatPlanOverview(p *domain.Plan) string {
	var b strings.Builder

	b.WriteString(Header(p.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s → %s  (%d days, %d weeks)\n",
		Bold(p.TeamName),
		p.StartDate.Format("Mon 02 Jan"),
		p.EndDate.Format("Mon 02 Jan"),
		p.TotalDays, p.Weeks)
	fmt.Fprintf(&b, "%s %s\n", Dim("plan"), Dim(p.ID))

	if len(p.Principles) > 0 {
		fmt.Fprintf(&b, "Focus: %s\n", strings.Join(p.Principles, ", "))
	}
	if p.Summary != "" {
		b.WriteString("\n" + p.Summary + "\n")
	}
	for _, w := range p.Warnings {
		fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("!"), w)
	}
	return b.String()
}

// FormatTimeline renders the day-by-day table with colored load badges.
func FormatTimeline(p *domain.Plan) string {
	headers := []string{"DAY", "DATE", "LOAD", "MD", "PHASE", "SESSION"}
	rows := make([][]string, 0, len(p.Timeline))
	for i, d := range p.Timeline {
		name := ""
		if i < len(p.Sessions) {
			name = p.Sessions[i].Name
		}
		if d.IsFixture && d.Fixture != nil {
			venue := "A"
			if d.Fixture.IsHome {
				venue = "H"
			}
			name = fmt.Sprintf("vs %s (%s)", d.Fixture.Opponent, venue)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", d.DayIndex+1),
			d.Date.Format("Mon 02 Jan"),
			LoadBadge(d.LoadClass),
			d.MDLabel,
			string(d.Mesocycle),
			name,
		})
	}
	return RenderTable(headers, rows)
}

// FormatMetrics renders weekly monotony/strain analytics with flag colors.
func FormatMetrics(p *domain.Plan) string {
	headers := []string{"WEEK", "TOTAL", "MEAN", "SD", "MONOTONY", "STRAIN"}
	rows := make([][]string, 0, len(p.WeeklyMetrics))
	for _, m := range p.WeeklyMetrics {
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.WeekIndex+1),
			fmt.Sprintf("%.1f", m.TotalLoad),
			fmt.Sprintf("%.2f", m.Mean),
			fmt.Sprintf("%.2f", m.SD),
			FlagStyle(m.FlagMonotony).Render(fmt.Sprintf("%.2f %s", m.Monotony, m.FlagMonotony)),
			FlagStyle(m.FlagStrain).Render(fmt.Sprintf("%.1f %s", m.Strain, m.FlagStrain)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSession renders one session in full: phases, drills, coverage.
func FormatSession(p *domain.Plan, idx int) string {
	s := p.Sessions[idx]
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Day %d — %s", idx+1, s.Name)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s", s.Date.Format("Mon 02 Jan"), LoadBadge(s.OverallLoad))
	if s.ComputedIntensity != nil {
		fmt.Fprintf(&b, "  %s", Dim(fmt.Sprintf("intensity %s (%.2f)",
			s.ComputedIntensity.Label, s.ComputedIntensity.AverageScore)))
	}
	b.WriteString("\n")
	if len(s.PrinciplesApplied) > 0 {
		fmt.Fprintf(&b, "%s %s\n", Dim("principles:"), strings.Join(s.PrinciplesApplied, ", "))
	}
	if s.DrillWarning != "" {
		fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("!"), s.DrillWarning)
	}

	if !s.DrillsGenerated {
		b.WriteString(Dim("\nDrills not generated yet. Run: plan session drills\n"))
		return b.String()
	}

	for _, ph := range s.Phases {
		fmt.Fprintf(&b, "\n%s %s\n", StyleBlue.Render("▸"), Bold(phaseHeading(ph)))
		if ph.Equipment != "" {
			fmt.Fprintf(&b, "  %s\n", Dim("equipment: "+ph.Equipment))
		}
		for _, d := range ph.Drills {
			fmt.Fprintf(&b, "  • %s %s\n", d.Name, Dim(fmt.Sprintf("(%d min, %s)", d.DurationMin, d.Load)))
		}
	}
	return b.String()
}

func phaseHeading(ph domain.Phase) string {
	h := ph.Name
	if ph.DurationMin > 0 {
		h = fmt.Sprintf("%s — %d min", h, ph.DurationMin)
	}
	return h
}

// FormatPlanList renders stored plan listings for a team.
func FormatPlanList(listings []repository.PlanListing) string {
	headers := []string{"ID", "TITLE", "START", "DAYS", "CREATED"}
	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, []string{
			TruncID(l.ID),
			l.Title,
			l.StartDate.Format("2006-01-02"),
			fmt.Sprintf("%d", l.DurationDays),
			l.CreatedAt.Format("2006-01-02"),
		})
	}
	return RenderTable(headers, rows)
}

// FormatFixtures renders a team's fixture list.
func FormatFixtures(fixtures []domain.Fixture) string {
	headers := []string{"DATE", "OPPONENT", "VENUE", "COMPETITION", "WEIGHT"}
	rows := make([][]string, 0, len(fixtures))
	for _, f := range fixtures {
		venue := "Away"
		if f.IsHome {
			venue = "Home"
		}
		rows = append(rows, []string{
			f.Date.Format("2006-01-02"),
			f.Opponent,
			venue,
			f.Competition,
			fmt.Sprintf("%.2f", f.ImportanceWeight),
		})
	}
	return RenderTable(headers, rows)
}

// TruncID shortens a UUID for table display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
