package physics

import (
	"math"
	"time"
)

// Solunar approximation constants. The lunar-age model counts days from a
// reference new moon and wraps on the synodic month; transit time is then
// estimated from the rule of thumb that the moon lags the sun by ~50 minutes
// per day of age. This is a deliberately rough heuristic, not an ephemeris:
// the species weight tables were tuned against exactly this behavior, so its
// precision must not be "improved".
const (
	synodicMonthDays = 29.530588
	lunarLagMinPerDay = 50.47
)

// lunarEpoch is a known new moon (2000-01-06 18:14 UTC).
var lunarEpoch = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// SolunarResult is the outcome of the moon-transit proximity primitive.
type SolunarResult struct {
	Score float64
	Label string
	// MoonAgeDays is the estimated lunar age in [0, 29.53).
	MoonAgeDays float64
	// MinutesToMajor is the unsigned distance to the nearest estimated major
	// period center (upper or lower transit).
	MinutesToMajor float64
}

// Solunar scores proximity to the estimated moon transit (major feeding
// period). The moon's upper transit is approximated as local solar noon plus
// ~50 minutes per day of lunar age; the lower transit is 12h24m opposite.
// Within an hour of either center the score is high, decaying to a baseline
// in between. Major periods around the new and full moon get a small bump.
func Solunar(ts time.Time) SolunarResult {
	age := math.Mod(ts.Sub(lunarEpoch).Hours()/24, synodicMonthDays)
	if age < 0 {
		age += synodicMonthDays
	}

	// Estimated upper transit as minutes after local midnight. Using clock
	// noon rather than true solar noon is within the accuracy this model
	// pretends to.
	transitMin := math.Mod(12*60+age*lunarLagMinPerDay, 24*60)

	nowMin := float64(ts.Hour()*60 + ts.Minute())

	// Distance to the nearest of the upper transit and the opposing lower
	// transit (12h24m later), on a wrapping day.
	toMajor := math.Min(
		wrapMinutes(nowMin-transitMin),
		wrapMinutes(nowMin-transitMin-744),
	)

	res := SolunarResult{MoonAgeDays: age, MinutesToMajor: toMajor}

	switch {
	case toMajor <= 60:
		res.Score = 0.9 - toMajor*0.002 // 0.9 at center, 0.78 at the edge
		res.Label = "major_period"
	case toMajor <= 150:
		res.Score = 0.65
		res.Label = "near_major"
	default:
		res.Score = 0.45
		res.Label = "between_periods"
	}

	// New/full alignment concentrates the bite.
	phaseDist := math.Min(age, math.Abs(age-synodicMonthDays/2))
	phaseDist = math.Min(phaseDist, synodicMonthDays-age)
	if phaseDist <= 2 {
		res.Score = clamp01(res.Score + 0.1)
	}

	return res
}

// wrapMinutes folds a minute offset onto a 24h circle and returns the
// unsigned distance in [0, 720].
func wrapMinutes(m float64) float64 {
	m = math.Mod(m, 24*60)
	if m < 0 {
		m += 24 * 60
	}
	if m > 12*60 {
		m = 24*60 - m
	}
	return m
}
