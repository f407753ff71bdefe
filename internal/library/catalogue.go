package library

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

//go:embed data/drills.json data/legacy_drills.json data/principles_of_play.json
var dataFS embed.FS

// minPhasePool is the candidate count below which the legacy fallback pool
// is blended in for a phase.
const minPhasePool = 4

// catalogueSchema is the JSON file structure for the drill library.
type catalogueSchema struct {
	Version string                 `json:"version"`
	Drills  []domain.DrillTemplate `json:"drills"`
}

// Catalogue is the read-only drill template library.
type Catalogue struct {
	Version string
	Drills  []domain.DrillTemplate

	byPhase map[string][]domain.DrillTemplate
	legacy  []legacyDrill
}

// LoadCatalogue reads a drill library from the given JSON file, or the
// embedded starter library when path is empty.
func LoadCatalogue(path string) (*Catalogue, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = dataFS.ReadFile("data/drills.json")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading drill library: %w", err)
	}

	var schema catalogueSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing drill library: %w", err)
	}

	c := &Catalogue{
		Version: schema.Version,
		Drills:  schema.Drills,
		byPhase: make(map[string][]domain.DrillTemplate),
	}
	for _, d := range schema.Drills {
		key := strings.ToLower(d.Phase)
		c.byPhase[key] = append(c.byPhase[key], d)
	}
	if err := c.loadLegacy(); err != nil {
		return nil, err
	}
	if err := ValidateCatalogue(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Len reports the number of enriched templates.
func (c *Catalogue) Len() int { return len(c.Drills) }

// ForPhase returns the templates whose phase affinity matches the given
// phase name (case-insensitive exact match).
func (c *Catalogue) ForPhase(phaseName string) []domain.DrillTemplate {
	return c.byPhase[strings.ToLower(phaseName)]
}

// CandidatesForPhase returns the selection pool for a phase: the
// phase-tagged templates, topped up with adapted legacy drills when fewer
// than minPhasePool exist.
func (c *Catalogue) CandidatesForPhase(phaseName string, target domain.Intensity) []domain.DrillTemplate {
	candidates := c.ForPhase(phaseName)
	if len(candidates) >= minPhasePool {
		return candidates
	}
	out := make([]domain.DrillTemplate, len(candidates))
	copy(out, candidates)
	return append(out, c.adaptLegacy(phaseName, target)...)
}

// PhaseNames lists the distinct phase affinities present in the library.
func (c *Catalogue) PhaseNames() []string {
	names := make([]string, 0, len(c.byPhase))
	for k := range c.byPhase {
		names = append(names, k)
	}
	return names
}
