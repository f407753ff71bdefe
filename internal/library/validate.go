package library

import (
	"fmt"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

var validWorkloads = map[domain.Intensity]bool{
	domain.IntensityLow: true, domain.IntensityMedium: true, domain.IntensityHigh: true,
}

// ValidateCatalogue checks the structural integrity of a loaded library.
func ValidateCatalogue(c *Catalogue) error {
	seen := make(map[string]bool, len(c.Drills))
	for i, d := range c.Drills {
		where := fmt.Sprintf("drill %d (%q)", i, d.Name)
		if d.ID == "" {
			return fmt.Errorf("%s: missing id", where)
		}
		if seen[d.ID] {
			return fmt.Errorf("%s: duplicate id %q", where, d.ID)
		}
		seen[d.ID] = true
		if d.Name == "" {
			return fmt.Errorf("drill %d: missing name", i)
		}
		if d.Phase == "" {
			return fmt.Errorf("%s: missing phase affinity", where)
		}
		if !validWorkloads[d.Workload] {
			return fmt.Errorf("%s: invalid workload %q", where, d.Workload)
		}
		if d.DurationMin <= 0 || d.DurationMax < d.DurationMin {
			return fmt.Errorf("%s: invalid duration range %d-%d", where, d.DurationMin, d.DurationMax)
		}
		if d.Source.QualityWeight < 0 || d.Source.QualityWeight > 1 {
			return fmt.Errorf("%s: quality weight %v out of [0,1]", where, d.Source.QualityWeight)
		}
	}
	return nil
}
