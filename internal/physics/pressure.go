package physics

import (
	"sort"
	"time"

	"fishcast/internal/types"
)

// Pressure trend thresholds in hPa over a 3h window.
const (
	trendFastHPa = 2.0
	trendSlowHPa = 0.7
)

// PressureResult is the outcome of the barometric trend primitive.
type PressureResult struct {
	Score    float64
	Trend    types.PressureTrend
	Delta3h  float64
	Delta6h  float64
	HasData  bool
	StormDue bool
}

// PressureTrend derives 3h/6h deltas from the history series and classifies
// the barometric movement. A slow fall ahead of weather is the classic bite
// trigger; a fast post-frontal rise is the classic shutdown. Missing or
// unusable history yields the neutral midpoint, labeled as such, because an
// unknown barometer is not a bad barometer.
func PressureTrend(now time.Time, state *types.PressureState) PressureResult {
	if state == nil || len(state.History) == 0 {
		return PressureResult{Score: 0.5, Trend: types.TrendUnknown}
	}

	samples := make([]types.PressureSample, 0, len(state.History))
	for _, s := range state.History {
		if s.HPa > 0 && !s.At.After(now) {
			samples = append(samples, s)
		}
	}
	if len(samples) == 0 {
		return PressureResult{Score: 0.5, Trend: types.TrendUnknown}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].At.Before(samples[j].At) })

	d3, ok3 := deltaOver(now, state.CurrentHPa, samples, 3*time.Hour)
	d6, _ := deltaOver(now, state.CurrentHPa, samples, 6*time.Hour)
	if !ok3 {
		return PressureResult{Score: 0.5, Trend: types.TrendUnknown}
	}

	res := PressureResult{Delta3h: d3, Delta6h: d6, HasData: true}

	switch {
	case d3 <= -trendFastHPa:
		// Hard fall: a front is close. Short strong bite window, then weather.
		res.Trend = types.TrendFallingFast
		res.Score = 0.7
		res.StormDue = true
	case d3 <= -trendSlowHPa:
		res.Trend = types.TrendFalling
		res.Score = 0.9
	case d3 < trendSlowHPa:
		res.Trend = types.TrendSteady
		res.Score = 0.75
	case d3 < trendFastHPa:
		res.Trend = types.TrendRising
		res.Score = 0.5
	default:
		// Fast post-frontal rise: lockjaw conditions.
		res.Trend = types.TrendRisingFast
		res.Score = 0.25
	}

	return res
}

// deltaOver returns current minus the sample closest to (now - window).
// ok=false when no sample is old enough to anchor the window.
func deltaOver(now time.Time, current float64, sorted []types.PressureSample, window time.Duration) (delta float64, ok bool) {
	target := now.Add(-window)

	var best *types.PressureSample
	bestDist := time.Duration(1<<63 - 1)
	for i := range sorted {
		d := sorted[i].At.Sub(target)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			bestDist = d
			best = &sorted[i]
		}
	}
	if best == nil || bestDist > window/2 {
		return 0, false
	}
	return current - best.HPa, true
}
