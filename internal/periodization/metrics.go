package periodization

import (
	"math"
	"sort"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

// sdFloor avoids division by zero for perfectly uniform weeks.
const sdFloor = 0.0001

// LoadScore maps a load class onto the arbitrary daily load scale used by
// the weekly analytics.
func LoadScore(lc domain.LoadClass) float64 {
	switch lc {
	case domain.LoadHigh:
		return 3
	case domain.LoadMedium:
		return 2
	case domain.LoadLow:
		return 1
	case domain.LoadRecovery:
		return 0.5
	case domain.LoadOff:
		return 0
	case domain.LoadMatch:
		return 3.5
	}
	return 1
}

// ComputeWeeklyMetrics aggregates the timeline into per-week totals,
// monotony and strain. Pure function of the timeline; callers re-run it in
// full after any load change.
func ComputeWeeklyMetrics(timeline []domain.TimelineDay, tun Tunables) []domain.WeeklyMetric {
	byWeek := make(map[int][]float64)
	for i := range timeline {
		w := timeline[i].WeekIndex()
		byWeek[w] = append(byWeek[w], LoadScore(timeline[i].LoadClass))
	}

	weeks := make([]int, 0, len(byWeek))
	for w := range byWeek {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	metrics := make([]domain.WeeklyMetric, 0, len(weeks))
	for _, w := range weeks {
		scores := byWeek[w]
		total := 0.0
		for _, s := range scores {
			total += s
		}
		mean := total / float64(len(scores))
		variance := 0.0
		for _, s := range scores {
			variance += (s - mean) * (s - mean)
		}
		variance /= float64(len(scores))
		sd := math.Sqrt(variance)
		if sd < sdFloor {
			sd = sdFloor
		}
		monotony := round2(mean / sd)
		strain := round2(total * monotony)

		metrics = append(metrics, domain.WeeklyMetric{
			WeekIndex:    w,
			TotalLoad:    total,
			Mean:         mean,
			SD:           sd,
			Monotony:     monotony,
			Strain:       strain,
			FlagMonotony: flagFor(monotony, tun.MonotonyModerate, tun.MonotonyHigh),
			FlagStrain:   flagFor(strain, tun.StrainModerate, tun.StrainHigh),
		})
	}
	return metrics
}

func flagFor(v, moderate, high float64) domain.MetricFlag {
	switch {
	case v > high:
		return domain.FlagHigh
	case v > moderate:
		return domain.FlagModerate
	}
	return domain.FlagOK
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
