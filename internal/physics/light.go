package physics

import (
	"fmt"
	"math"
	"time"
)

// DepthBand is a recommended gear-depth window in feet.
type DepthBand struct {
	MinFt int
	MaxFt int
}

// LightResult is the outcome of the light-penetration primitive.
type LightResult struct {
	Score float64
	Label string
	// EffectiveElevationDeg is the cloud-adjusted sun elevation used for the
	// depth mapping. Negative means the sun is below the horizon.
	EffectiveElevationDeg float64
	Band                  DepthBand
	Advice                string
}

// SunElevation approximates the solar elevation at ts from the day's sunrise
// and sunset instants and the site latitude. The model is a half-sine between
// sunrise and sunset whose noon peak shrinks with latitude; it is nowhere
// near ephemeris-grade and does not need to be, since only the coarse
// low/medium/high light regime feeds the scoring.
func SunElevation(ts, sunrise, sunset time.Time, latitude float64) float64 {
	if sunset.Before(sunrise) || sunrise.IsZero() || sunset.IsZero() {
		// Unusable solar data: assume mid-morning light.
		return 25
	}

	dayLen := sunset.Sub(sunrise)
	if dayLen <= 0 {
		return 25
	}

	// Peak noon elevation shrinks with latitude. 90-|lat| is exact only at
	// the equinoxes, which is close enough for a light-regime classifier.
	peak := 90 - math.Abs(latitude)
	if peak < 10 {
		peak = 10
	}

	elapsed := ts.Sub(sunrise)
	if elapsed < 0 {
		// Pre-dawn: degrees below horizon proportional to time before sunrise.
		hoursBefore := -elapsed.Hours()
		return clampRange(-hoursBefore*8, -40, 0)
	}
	if elapsed > dayLen {
		hoursAfter := (elapsed - dayLen).Hours()
		return clampRange(-hoursAfter*8, -40, 0)
	}

	frac := elapsed.Seconds() / dayLen.Seconds()
	return peak * math.Sin(frac*math.Pi)
}

// LightPenetration maps a sun elevation (degrees, cloud cover as 0-100%) to a
// light-regime score, an effective fish-depth band and a textual depth
// recommendation. Low-angle light (dawn/dusk) always scores highest: fish
// feed shallow and aggressively in low light, and the score falls
// monotonically as the cloud-adjusted elevation climbs and pushes fish deep.
func LightPenetration(elevationDeg, cloudCoverPct float64) LightResult {
	cloudCoverPct = clampRange(cloudCoverPct, 0, 100)

	// Cloud cover attenuates penetration; full overcast halves the
	// effective elevation.
	effective := elevationDeg
	if effective > 0 {
		effective *= 1 - 0.5*(cloudCoverPct/100)
	}

	res := LightResult{EffectiveElevationDeg: effective}

	switch {
	case effective < -12:
		res.Score = 0.35
		res.Label = "night"
		res.Band = DepthBand{MinFt: 0, MaxFt: 30}
	case effective < 5:
		// Dawn/dusk window: prime low-light feeding.
		res.Score = 1.0
		res.Label = "low_light_prime"
		res.Band = DepthBand{MinFt: 10, MaxFt: 40}
	case effective < 20:
		res.Score = 0.8
		res.Label = "morning_evening"
		res.Band = DepthBand{MinFt: 30, MaxFt: 70}
	case effective < 40:
		res.Score = 0.55
		res.Label = "midday_moderate"
		res.Band = DepthBand{MinFt: 60, MaxFt: 110}
	default:
		res.Score = 0.35
		res.Label = "high_sun"
		res.Band = DepthBand{MinFt: 90, MaxFt: 150}
	}

	res.Advice = fmt.Sprintf("fish %d-%d ft", res.Band.MinFt, res.Band.MaxFt)
	return res
}
