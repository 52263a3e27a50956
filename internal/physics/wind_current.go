package physics

import "fmt"

// Wind-current interaction thresholds. Opposition begins where the angle
// between the wind-from bearing and the current set exceeds opposingAngleDeg;
// combined energy above washingMachineKts in opposition produces standing
// chop dangerous to small craft.
const (
	opposingAngleDeg  = 135.0
	alignedAngleDeg   = 45.0
	washingMachineKts = 18.0
	// currentEnergyFactor converts current knots to wind-equivalent energy.
	// Water is denser; a knot of current roughly matches four of wind.
	currentEnergyFactor = 4.0
)

// WindCurrentResult is the outcome of the wind-vs-current interaction
// primitive.
type WindCurrentResult struct {
	Score             float64
	Label             string
	IsOpposing        bool
	AngleDeg          float64
	CombinedEnergyKts float64
	Warning           string
}

// WindCurrent scores the interaction between surface wind and tidal current.
// windFromDeg is the bearing the wind blows from; currentToDeg is the bearing
// the current sets toward. An angular difference beyond ~135 degrees
// classifies the pair as opposing; opposing flow at high combined energy is
// the "washing machine" condition and scores near zero with a danger warning.
// Aligned flow under moderate wind is the best case and scores near 1.0.
func WindCurrent(windKts, windFromDeg, currentKts, currentToDeg float64) WindCurrentResult {
	windKts = clampMin(windKts, 0)
	currentKts = clampMin(currentKts, 0)

	angle := AngularDiff(windFromDeg, currentToDeg)
	energy := windKts + currentKts*currentEnergyFactor

	res := WindCurrentResult{
		AngleDeg:          angle,
		CombinedEnergyKts: energy,
		IsOpposing:        angle > opposingAngleDeg,
	}

	switch {
	case res.IsOpposing && energy >= washingMachineKts:
		// Wind against tide with real energy behind it: steep standing chop.
		res.Score = clamp01(0.2 - (energy-washingMachineKts)/100)
		res.Label = "wind_against_tide"
		res.Warning = fmt.Sprintf(
			"wind opposing current at %.0f degrees with %.0f kt combined energy: steep standing chop likely",
			angle, energy)
	case res.IsOpposing:
		// Opposed but gentle. Uncomfortable, fishable.
		res.Score = 0.45
		res.Label = "light_chop_opposed"
	case angle <= alignedAngleDeg && windKts >= 4 && windKts <= 15:
		// Aligned moderate wind: a following ripple, ideal presentation.
		res.Score = 1.0 - (windKts/15)*0.05
		res.Label = "aligned_favorable"
	case angle <= alignedAngleDeg:
		if windKts < 4 {
			res.Score = 0.8
			res.Label = "aligned_calm"
		} else {
			// Aligned but heavy; drift speed becomes the limiter.
			res.Score = clamp01(0.8 - (windKts-15)*0.03)
			res.Label = "aligned_heavy"
		}
	default:
		// Crosswind regime: grade down gently with wind speed.
		res.Score = clamp01(0.75 - windKts*0.015)
		res.Label = "cross_flow"
	}

	return res
}
