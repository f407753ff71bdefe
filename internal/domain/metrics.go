package domain

// MetricFlag grades a weekly monotony or strain value.
type MetricFlag string

const (
	FlagOK       MetricFlag = "OK"
	FlagModerate MetricFlag = "Moderate"
	FlagHigh     MetricFlag = "High"
)

// WeeklyMetric aggregates one week of the timeline into load analytics.
// Monotony is mean/sd (Foster method approximation); strain is
// totalLoad * monotony.
type WeeklyMetric struct {
	WeekIndex    int        `json:"week_index"`
	TotalLoad    float64    `json:"total_load"`
	Mean         float64    `json:"mean"`
	SD           float64    `json:"sd"`
	Monotony     float64    `json:"monotony"`
	Strain       float64    `json:"strain"`
	FlagMonotony MetricFlag `json:"flag_monotony"`
	FlagStrain   MetricFlag `json:"flag_strain"`
}
