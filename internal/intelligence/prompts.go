package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

const summarySystemPrompt = `You are an assistant coach writing for a head coach.
Write a short narrative overview (3-5 sentences) of a training plan.
Mention the periodization shape around fixtures, the main principles of play
being developed, and any load-management concerns. Plain text only, no
markdown, no lists.`

const periodizationSystemPrompt = `You are a sports scientist assigning training
load classes to the days of a plan. Fixture days are fixed and must not be
changed. For every other day propose one of: High, Medium, Low, Recovery, Off.
Respect match proximity: the day before a fixture is light, the day after is
recovery, peak stimulus sits 3-5 days out.
Respond with JSON only, in the form:
{"days":[{"day_index":0,"load_class":"High","rationale":"..."}]}
No commentary outside the JSON.`

const drillsSystemPrompt = `You are an elite football coach designing training
drills. For each requested session phase, propose drills that fit the phase
intent and target intensity. Respond with JSON only, in the form:
{"phases":{"<phase name>":[{"name":"...","duration_min":12,"load":"Medium",
"objective":"...","equipment":["..."],"coaching_points":["..."]}]}}
No commentary outside the JSON.`

func buildSummaryPrompt(plan *domain.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Team: %s\n", plan.TeamName)
	fmt.Fprintf(&b, "Duration: %d days (%d weeks), %s to %s\n",
		plan.TotalDays, plan.Weeks,
		plan.StartDate.Format("2006-01-02"), plan.EndDate.Format("2006-01-02"))
	if plan.Settings.Objective != "" {
		fmt.Fprintf(&b, "Objective: %s\n", plan.Settings.Objective)
	}
	if len(plan.Principles) > 0 {
		fmt.Fprintf(&b, "Principles of play: %s\n", strings.Join(plan.Principles, ", "))
	}
	if len(plan.Matches) > 0 {
		b.WriteString("Fixtures:\n")
		for _, m := range plan.Matches {
			venue := "away"
			if m.Home {
				venue = "home"
			}
			fmt.Fprintf(&b, "- %s vs %s (%s, importance %.2f)\n",
				m.Date.Format("Jan 2"), m.Opponent, venue, m.ImportanceWeight)
		}
	}
	counts := map[domain.LoadClass]int{}
	for _, d := range plan.Timeline {
		counts[d.LoadClass]++
	}
	fmt.Fprintf(&b, "Load distribution: %d high, %d medium, %d low, %d recovery days\n",
		counts[domain.LoadHigh], counts[domain.LoadMedium], counts[domain.LoadLow], counts[domain.LoadRecovery])
	b.WriteString("\nWrite the narrative overview.")
	return b.String()
}

func buildPeriodizationPrompt(timeline []domain.TimelineDay) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The plan has %d days (day_index 0..%d).\n", len(timeline), len(timeline)-1)
	b.WriteString("Fixture days (fixed):\n")
	for _, d := range timeline {
		if d.IsFixture {
			fmt.Fprintf(&b, "- day_index %d: %s vs %s\n", d.DayIndex, d.Date.Format("Mon Jan 2"), d.Fixture.Opponent)
		}
	}
	b.WriteString("Assign a load class to every non-fixture day.")
	return b.String()
}

func buildDrillsPrompt(plan *domain.Plan, session *domain.Session, budgets map[string]int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session: %s on %s, overall load %s.\n",
		session.Name, session.Date.Format("2006-01-02"), session.OverallLoad)
	if len(session.PrinciplesApplied) > 0 {
		fmt.Fprintf(&b, "Principles to coach: %s\n", strings.Join(session.PrinciplesApplied, ", "))
	}
	if plan.Settings.Objective != "" {
		fmt.Fprintf(&b, "Plan objective: %s\n", plan.Settings.Objective)
	}
	b.WriteString("Phases:\n")
	for i := range session.Phases {
		p := &session.Phases[i]
		n, ok := budgets[p.Name]
		if !ok || n <= 0 {
			continue
		}
		fmt.Fprintf(&b, "- %q (%s focus, target intensity %s): %d drill(s)\n",
			p.Name, p.Focus, p.TargetIntensity, n)
	}
	return b.String()
}
