package physics

import (
	"fmt"
	"math"
)

// Drift model constants. Wind drift on a typical sport hull runs a few
// percent of wind speed, directed downwind.
const (
	windDriftFactor = 0.035
	// driftHoldCeilingKts is the resultant drift above which holding over
	// structure is not practical with an engine-assist.
	driftHoldCeilingKts = 2.0
	driftEasyKts        = 0.5
)

// DriftResult is the outcome of the position-holding primitive.
type DriftResult struct {
	Score float64
	Label string
	// ResultantKts is the estimated resultant boat drift speed.
	ResultantKts float64
	CanHold      bool
	Warning      string
}

// DriftHolding estimates resultant boat drift by vector-summing an
// approximated wind-drift contribution (3.5% of wind speed, downwind) with
// the tidal current vector, then scores the ability to hold position over
// structure. Below half a knot the boat effectively parks; above the hard
// ceiling the score collapses and the cannot-hold flag is set.
func DriftHolding(windKts, windFromDeg, currentKts, currentToDeg float64) DriftResult {
	windKts = clampMin(windKts, 0)
	currentKts = clampMin(currentKts, 0)

	// Wind pushes the boat downwind: toward windFrom+180.
	windDriftKts := windKts * windDriftFactor
	windToRad := normalizeDeg(windFromDeg+180) * math.Pi / 180
	currentToRad := normalizeDeg(currentToDeg) * math.Pi / 180

	x := windDriftKts*math.Sin(windToRad) + currentKts*math.Sin(currentToRad)
	y := windDriftKts*math.Cos(windToRad) + currentKts*math.Cos(currentToRad)
	resultant := math.Hypot(x, y)

	res := DriftResult{ResultantKts: resultant}

	switch {
	case resultant <= driftEasyKts:
		res.Score = 1.0
		res.Label = "holds_easily"
		res.CanHold = true
	case resultant < driftHoldCeilingKts:
		// Linear decay between the easy and ceiling anchors.
		res.Score = 1.0 - 0.85*(resultant-driftEasyKts)/(driftHoldCeilingKts-driftEasyKts)
		res.Label = "workable_drift"
		res.CanHold = true
	default:
		res.Score = clamp01(0.1 - (resultant-driftHoldCeilingKts)*0.05)
		res.Label = "cannot_hold"
		res.CanHold = false
		res.Warning = fmt.Sprintf("resultant drift %.1f kt: cannot hold position over structure", resultant)
	}

	return res
}
