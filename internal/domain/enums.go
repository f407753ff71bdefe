package domain

// LoadClass is the categorical training intensity assigned to a day.
type LoadClass string

const (
	LoadMatch    LoadClass = "Match"
	LoadHigh     LoadClass = "High"
	LoadMedium   LoadClass = "Medium"
	LoadLow      LoadClass = "Low"
	LoadRecovery LoadClass = "Recovery"
	LoadOff      LoadClass = "Off"
)

// ValidLoadClasses is the canonical set of accepted load class strings.
var ValidLoadClasses = map[LoadClass]bool{
	LoadMatch: true, LoadHigh: true, LoadMedium: true,
	LoadLow: true, LoadRecovery: true, LoadOff: true,
}

// Color returns the display color key for a load class.
func (lc LoadClass) Color() string {
	switch lc {
	case LoadMatch:
		return "purple"
	case LoadHigh:
		return "red"
	case LoadMedium:
		return "yellow"
	case LoadLow, LoadRecovery:
		return "green"
	case LoadOff:
		return "grey"
	}
	return "grey"
}

// Label returns the display label for a load class.
func (lc LoadClass) Label() string {
	switch lc {
	case LoadMatch:
		return "Match Day"
	case LoadHigh:
		return "High Intensity Training"
	case LoadMedium:
		return "Medium Load Training"
	case LoadLow:
		return "Low Load Training"
	case LoadRecovery:
		return "Recovery & Regeneration"
	case LoadOff:
		return "Rest / Off Feet"
	}
	return string(lc)
}

// MesocyclePhase is a multi-week periodization stage.
type MesocyclePhase string

const (
	PhaseAccumulation    MesocyclePhase = "Accumulation"
	PhaseIntensification MesocyclePhase = "Intensification"
	PhaseTaper           MesocyclePhase = "Taper"
	PhaseTransition      MesocyclePhase = "Transition"
	PhaseMaintenance     MesocyclePhase = "Maintenance"
)

// MesocycleForWeek maps a zero-based week index to its default phase.
func MesocycleForWeek(weekIdx int) MesocyclePhase {
	switch {
	case weekIdx <= 1:
		return PhaseAccumulation
	case weekIdx <= 3:
		return PhaseIntensification
	case weekIdx == 4:
		return PhaseTaper
	case weekIdx == 5:
		return PhaseTransition
	}
	return PhaseMaintenance
}

// Intensity is the target or actual intensity of a phase or drill.
type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

// PhaseType classifies session phases for budgeting and candidate filtering.
type PhaseType string

const (
	PhaseWarm       PhaseType = "warm"
	PhaseTechnical  PhaseType = "technical"
	PhaseTactical   PhaseType = "tactical"
	PhaseTransGame  PhaseType = "transition"
	PhaseCool       PhaseType = "cool"
)

// Variability controls how exploratory drill sampling is.
type Variability string

const (
	VariabilityLow    Variability = "low"
	VariabilityMedium Variability = "medium"
	VariabilityHigh   Variability = "high"
)

// Numeric maps the user-facing knob onto the sampling temperature scale.
func (v Variability) Numeric() float64 {
	switch v {
	case VariabilityLow:
		return 0.35
	case VariabilityHigh:
		return 0.85
	}
	return 0.6
}

// GenerationMode selects how session drills are produced.
type GenerationMode string

const (
	// ModeCurated selects drills from the content library only.
	ModeCurated GenerationMode = "curated"
	// ModeGenerative synthesizes every phase's drills via the text model.
	ModeGenerative GenerationMode = "generative"
	// ModeHybrid uses the library first, generating only for empty phases.
	ModeHybrid GenerationMode = "hybrid"
)
