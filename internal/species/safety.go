package species

import (
	"fmt"

	"fishcast/internal/engine"
	"fishcast/internal/physics"
)

// Shared safety rules. Severity orders warnings in the result, highest first.

// galeWind flags sustained wind at or above the threshold.
func galeWind(thresholdKts float64) engine.SafetyRule {
	return engine.SafetyRule{
		Name:     "gale_wind",
		Severity: 5,
		Check: func(ev *engine.Evaluation) (bool, string) {
			if ev.Ctx.Wind == nil || ev.Ctx.Wind.SpeedKts < thresholdKts {
				return false, ""
			}
			return true, fmt.Sprintf("sustained wind %.0f kt at or above the %.0f kt small-craft limit",
				ev.Ctx.Wind.SpeedKts, thresholdKts)
		},
	}
}

// gustSpread flags gusts at or above the threshold even when sustained wind
// is workable; the spread is what knocks people down.
func gustSpread(thresholdKts float64) engine.SafetyRule {
	return engine.SafetyRule{
		Name:     "gust_spread",
		Severity: 4,
		Check: func(ev *engine.Evaluation) (bool, string) {
			if ev.Ctx.Wind == nil || ev.Ctx.Wind.GustKts < thresholdKts {
				return false, ""
			}
			return true, fmt.Sprintf("gusts to %.0f kt", ev.Ctx.Wind.GustKts)
		},
	}
}

// washingMachine flags wind hard against current with dangerous combined
// energy: short steep standing waves.
func washingMachine() engine.SafetyRule {
	return engine.SafetyRule{
		Name:     "wind_against_current",
		Severity: 5,
		Check: func(ev *engine.Evaluation) (bool, string) {
			c := ev.Ctx
			if c.Wind == nil || c.Tide == nil {
				return false, ""
			}
			res := physics.WindCurrent(c.Wind.SpeedKts, c.Wind.DirectionDeg, c.Tide.CurrentSpeedKts, c.Tide.SetDirectionDeg)
			if res.Warning == "" {
				return false, ""
			}
			return true, res.Warning
		},
	}
}

// dangerousSwell flags swell past the hard height ceiling or steep enough to
// break.
func dangerousSwell() engine.SafetyRule {
	return engine.SafetyRule{
		Name:     "dangerous_swell",
		Severity: 5,
		Check: func(ev *engine.Evaluation) (bool, string) {
			if ev.Ctx.Swell == nil {
				return false, ""
			}
			res := physics.SwellComfort(ev.Ctx.Swell.HeightM, ev.Ctx.Swell.PeriodS)
			if res.Warning == "" {
				return false, ""
			}
			return true, res.Warning
		},
	}
}

// nightVisibility flags running in the dark with real wind up: night
// navigation is a visibility risk, not a fish problem.
func nightVisibility(windThresholdKts float64) engine.SafetyRule {
	return engine.SafetyRule{
		Name:     "night_visibility",
		Severity: 2,
		Check: func(ev *engine.Evaluation) (bool, string) {
			c := ev.Ctx
			if c.Sunrise.IsZero() || c.Sunset.IsZero() {
				return false, ""
			}
			dark := c.Timestamp.Before(c.Sunrise) || c.Timestamp.After(c.Sunset)
			if !dark {
				return false, ""
			}
			if c.Wind == nil || c.Wind.SpeedKts < windThresholdKts {
				return false, ""
			}
			return true, fmt.Sprintf("running in darkness with %.0f kt of wind", c.Wind.SpeedKts)
		},
	}
}
