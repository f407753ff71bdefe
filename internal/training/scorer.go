package training

import (
	"strings"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

// Scoring weights. Quality is the base; everything else nudges.
const (
	workloadMismatchPenalty = 0.18

	principleBoostUncovered = 0.35 // focus principle not yet applied in the plan
	principleBoostLow       = 0.22 // applied exactly once
	principleBoostBase      = 0.12

	rotationBonus = 0.18

	recentPenalty    = 0.25 // drill seen in the last few generated sessions
	freqPenaltyStep  = 0.15
	freqPenaltyCap   = 0.45
	globalStep       = 0.07
	globalPenaltyCap = 0.42

	withinSessionPenalty = 0.5 // same drill twice in one session
)

// rotationTags cycle session by session so thematic emphasis drifts across
// the plan instead of settling on whatever scores highest.
var rotationTags = []string{
	"pressing", "transition", "passing", "receiving",
	"mobility", "recovery", "finishing", "possession",
}

func rotationTagFor(sessionIndex int) string {
	return rotationTags[sessionIndex%len(rotationTags)]
}

type scoreContext struct {
	usage       *Usage
	focus       []string
	rotationTag string
	picked      map[string]bool // ids already placed in the current session
}

// scoreCandidate rates one template for one phase slot. Higher is better;
// scores may go negative for heavily repeated drills.
func scoreCandidate(d *domain.DrillTemplate, target domain.Intensity, sc scoreContext) float64 {
	score := d.Source.QualityWeight

	if d.Workload != target {
		score -= workloadMismatchPenalty
	}

	if d.LastReviewed != nil {
		score += float64(d.LastReviewed.UnixMilli()) / 1e12
	}

	text := strings.ToLower(d.ObjectivePrimary + " " + strings.Join(d.ObjectivesSecondary, " ") + " " + strings.Join(d.Category, " "))
	for _, p := range sc.focus {
		token := firstWord(p)
		if token == "" || !strings.Contains(text, token) {
			continue
		}
		switch sc.usage.CoverageCount(p) {
		case 0:
			score += principleBoostUncovered
		case 1:
			score += principleBoostLow
		default:
			score += principleBoostBase
		}
	}

	for _, tag := range d.Tags {
		if strings.EqualFold(tag, sc.rotationTag) {
			score += rotationBonus
			break
		}
	}

	if sc.usage.IsRecent(d.ID) {
		score -= recentPenalty
	}
	if f := sc.usage.Frequency(d.ID); f > 0 {
		score -= min(freqPenaltyStep*float64(f), freqPenaltyCap)
	}
	if g := sc.usage.GlobalCount(d.ID); g > 0 {
		score -= min(globalStep*float64(g), globalPenaltyCap)
	}
	if sc.picked[d.ID] {
		score -= withinSessionPenalty
	}
	return score
}

func firstWord(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, " /("); i >= 0 {
		s = s[:i]
	}
	return s
}
