package physics

import (
	"time"

	"fishcast/internal/types"
)

// Freshet thresholds. Rain totals are 24h millimeters; the 24h max air
// temperature is a crude snowmelt proxy during the melt window, when a warm
// spell pushes snowpack into the rivers and the estuaries go brown.
const (
	heavyRainMM    = 25.0
	moderateRainMM = 10.0
	lightRainMM    = 3.0
	snowmeltTempC  = 20.0
)

// meltMonths is the window in which high air temps imply snowmelt discharge.
var meltMonths = map[time.Month]bool{
	time.April: true, time.May: true, time.June: true, time.July: true,
}

// FreshetResult is the outcome of the freshet/turbidity primitive.
type FreshetResult struct {
	Score float64
	// Clarity is the classified water visibility.
	Clarity types.WaterClarity
	// VisualFeedMultiplier is applied by species that feed by sight. It is
	// 1.0 in clear water and collapses toward 0.3 when blown out.
	VisualFeedMultiplier float64
	SnowmeltLikely       bool
}

// Freshet classifies effective water clarity from the trailing 24h
// precipitation total, the 24h max air temperature, and the calendar month.
// Heavy rain on top of likely snowmelt is the worst case: blown-out water
// that shuts down visual feeding entirely.
func Freshet(precip24hMM, maxAirTemp24C float64, month time.Month) FreshetResult {
	precip24hMM = clampMin(precip24hMM, 0)

	snowmelt := meltMonths[month] && maxAirTemp24C >= snowmeltTempC

	var res FreshetResult
	res.SnowmeltLikely = snowmelt

	switch {
	case precip24hMM >= heavyRainMM && snowmelt:
		res.Clarity = types.ClarityBlownOut
		res.Score = 0.05
		res.VisualFeedMultiplier = 0.3
	case precip24hMM >= heavyRainMM:
		res.Clarity = types.ClarityMurky
		res.Score = 0.25
		res.VisualFeedMultiplier = 0.5
	case precip24hMM >= moderateRainMM || snowmelt:
		res.Clarity = types.ClarityStained
		res.Score = 0.6
		res.VisualFeedMultiplier = 0.8
	case precip24hMM >= lightRainMM:
		// A little color in the water is not a negative; it can embolden fish.
		res.Clarity = types.ClarityClear
		res.Score = 0.9
		res.VisualFeedMultiplier = 1.0
	default:
		res.Clarity = types.ClarityClear
		res.Score = 1.0
		res.VisualFeedMultiplier = 1.0
	}

	return res
}
