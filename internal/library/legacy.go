package library

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

// legacyDrill is the flat schema of the first-generation drill list, kept
// only as a fallback pool for phases the enriched library covers thinly.
type legacyDrill struct {
	Name         string           `json:"name"`
	Instructions string           `json:"instructions"`
	Goals        string           `json:"goals"`
	Duration     int              `json:"duration"`
	Load         domain.Intensity `json:"load"`
	Equipment    string           `json:"equipment"`
	Visual       string           `json:"visual"`
}

func (c *Catalogue) loadLegacy() error {
	data, err := dataFS.ReadFile("data/legacy_drills.json")
	if err != nil {
		return fmt.Errorf("reading legacy drills: %w", err)
	}
	if err := json.Unmarshal(data, &c.legacy); err != nil {
		return fmt.Errorf("parsing legacy drills: %w", err)
	}
	return nil
}

var (
	legacyWarmRe = regexp.MustCompile(`warm|rondo`)
	legacyCoolRe = regexp.MustCompile(`stretch|cool`)
	legacyTechRe = regexp.MustCompile(`pass|possession|shoot|cross`)
	legacyTactRe = regexp.MustCompile(`press|transition|shape`)
)

// adaptLegacy wraps matching legacy drills as synthetic low-trust templates
// for the given phase.
func (c *Catalogue) adaptLegacy(phaseName string, target domain.Intensity) []domain.DrillTemplate {
	phaseKey := strings.ToLower(phaseName)
	var out []domain.DrillTemplate
	for i, ld := range c.legacy {
		name := strings.ToLower(ld.Name)
		var match bool
		switch {
		case strings.Contains(phaseKey, "warm"), strings.Contains(phaseKey, "activation"):
			match = legacyWarmRe.MatchString(name)
		case strings.Contains(phaseKey, "cool"):
			match = legacyCoolRe.MatchString(name)
		case strings.Contains(phaseKey, "technical"):
			match = legacyTechRe.MatchString(name)
		case strings.Contains(phaseKey, "tactic"), strings.Contains(phaseKey, "transition"):
			match = legacyTactRe.MatchString(name)
		default:
			match = true
		}
		if !match {
			continue
		}

		workload := ld.Load
		if workload == "" {
			workload = target
		}
		durMin := ld.Duration - 3
		if durMin <= 0 {
			durMin = max(5, ld.Duration*6/10)
		}
		var secondary []string
		for _, g := range strings.FieldsFunc(ld.Goals, func(r rune) bool { return r == ';' || r == ',' }) {
			if g = strings.TrimSpace(g); g != "" {
				secondary = append(secondary, g)
			}
		}
		var equipment []string
		for _, e := range strings.Split(ld.Equipment, ",") {
			if e = strings.TrimSpace(e); e != "" {
				equipment = append(equipment, e)
			}
		}

		out = append(out, domain.DrillTemplate{
			ID:                  syntheticLegacyID(phaseKey, i, ld.Name),
			Name:                ld.Name,
			Phase:               phaseName,
			Workload:            workload,
			Category:            []string{phaseKey},
			ObjectivePrimary:    ld.Instructions,
			ObjectivesSecondary: secondary,
			DurationMin:         durMin,
			DurationMax:         ld.Duration,
			Equipment:           equipment,
			Space:               domain.SpaceSpec{Dimensions: ld.Visual},
			Source:              domain.DrillSource{Name: "legacy", QualityWeight: 0.4},
		})
	}
	return out
}

func syntheticLegacyID(phaseKey string, idx int, name string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "_"))
	return fmt.Sprintf("legacy_%s_%d_%s", strings.ReplaceAll(phaseKey, " ", "_"), idx, slug)
}
