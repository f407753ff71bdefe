package periodization

// Tunables collects the heuristic thresholds of the periodization layer.
// The values are conventions carried over from the original planning model,
// not derived from a sports-science source; callers may override them but
// the defaults are the reference behavior.
type Tunables struct {
	// ImportanceFloor is the minimum match importance weight.
	ImportanceFloor float64
	// TaperImportance is the importance weight above which MD-2/MD-1
	// taper one step harder.
	TaperImportance float64

	// Weekly metric flag thresholds.
	MonotonyHigh     float64
	MonotonyModerate float64
	StrainHigh       float64
	StrainModerate   float64
}

// DefaultTunables returns the reference thresholds.
func DefaultTunables() Tunables {
	return Tunables{
		ImportanceFloor:  0.6,
		TaperImportance:  1.15,
		MonotonyHigh:     2.0,
		MonotonyModerate: 1.5,
		StrainHigh:       160,
		StrainModerate:   120,
	}
}
