package physics

import "fmt"

// Swell comfort thresholds, expressed as a period-to-height ratio (s/m).
// Long-period low swell rolls under the hull; short steep swell breaks.
const (
	// swellGentleRatio and above is fully comfortable water.
	swellGentleRatio = 12.0
	// swellSteepRatio and below is steep, potentially breaking swell.
	swellSteepRatio = 5.0
	// swellHeightCapM caps the score regardless of period once the absolute
	// height alone makes small-craft work marginal.
	swellHeightCapM = 2.5
	// swellDangerHeightM is an unconditional danger call.
	swellDangerHeightM = 3.0
)

// SwellResult is the outcome of the swell comfort primitive.
type SwellResult struct {
	Score   float64
	Label   string
	Ratio   float64
	Warning string
}

// SwellComfort scores sea state from swell height (meters) and period
// (seconds). The period/height ratio drives the score: a high ratio (long,
// gentle swell) approaches 1.0, while a ratio at or below the steepness
// threshold scores near zero and emits a danger warning. Independently of
// the ratio, an absolute-height ceiling caps the score; nothing about a long
// period makes 3 meters of water comfortable in a 22-foot boat.
func SwellComfort(heightM, periodS float64) SwellResult {
	heightM = clampMin(heightM, 0)
	periodS = clampMin(periodS, 0)

	if heightM < 0.1 {
		// Effectively flat; period is meaningless.
		return SwellResult{Score: 1.0, Label: "flat", Ratio: 0}
	}

	ratio := periodS / heightM
	res := SwellResult{Ratio: ratio}

	switch {
	case ratio >= swellGentleRatio:
		res.Score = 1.0
		res.Label = "long_gentle_swell"
	case ratio <= swellSteepRatio:
		res.Score = clamp01(0.1 * ratio / swellSteepRatio)
		res.Label = "steep_breaking_swell"
		res.Warning = fmt.Sprintf(
			"steep swell: %.1fm at %.0fs (ratio %.1f) can break without warning", heightM, periodS, ratio)
	default:
		// Linear blend between the steep and gentle anchors.
		res.Score = 0.1 + 0.9*(ratio-swellSteepRatio)/(swellGentleRatio-swellSteepRatio)
		res.Label = "moderate_swell"
	}

	// Absolute height ceiling is independent of ratio.
	if heightM >= swellHeightCapM {
		if res.Score > 0.15 {
			res.Score = 0.15
		}
		res.Label = "excessive_height"
		if heightM >= swellDangerHeightM && res.Warning == "" {
			res.Warning = fmt.Sprintf("swell height %.1fm exceeds small-craft limits", heightM)
		}
	}

	return res
}
