package species

import (
	"fmt"

	"fishcast/internal/engine"
	"fishcast/internal/physics"
	"fishcast/internal/season"
	"fishcast/internal/types"
)

// Halibut steep-swell gate. Anchoring a scent line on an open flat in short
// steep swell is how boats get swamped; past these thresholds the day is
// simply off, whatever the rest of the numbers say.
const (
	halibutGateMinHeightM = 0.75
	halibutGateRatio      = 6.0
)

// newHalibutSpec builds the large-flatfish spec. Halibut fishing is drift or
// anchor work on open flats: resultant drift and swell dominate, flat calm is
// a bonus rather than a penalty, and steep swell is a hard gatekeeper.
func newHalibutSpec(schedule season.Schedule) *engine.Spec {
	return &engine.Spec{
		Species:     types.SpeciesHalibut,
		Description: "open-flat scent fishery on spring openings",
		Schedule:    schedule,
		Factors: map[string]engine.FactorFunc{
			"drift_holding": driftFactor,
			"tide_slack":    slackFactor,
			"swell":         swellFactor,
			"wind_current":  windCurrentFactor,
			"pressure":      pressureFactor,
			"solunar":       solunarFactor,
		},
		Modifiers: []engine.Modifier{
			glassCalmBonus(0.3),
			weekendCrowdPenalty(0.5),
		},
		Safety: []engine.SafetyRule{
			galeWind(20),
			gustSpread(25),
			washingMachine(),
			dangerousSwell(),
			nightVisibility(8),
		},
		Gatekeepers: []engine.Gatekeeper{
			{
				Name:  "steep_swell",
				Floor: 0,
				Check: func(ev *engine.Evaluation) (bool, string) {
					s := ev.Ctx.Swell
					if s == nil || s.HeightM < halibutGateMinHeightM {
						return false, ""
					}
					ratio := s.PeriodS / s.HeightM
					if ratio >= halibutGateRatio {
						return false, ""
					}
					return true, fmt.Sprintf(
						"steep swell (%.1fm at %.0fs): anchoring the flats is off regardless of other conditions",
						s.HeightM, s.PeriodS)
				},
			},
		},
		UnsafeCeiling: 2.0,
		Advise:        halibutAdvice,
	}
}

func halibutAdvice(ev *engine.Evaluation, factors map[string]types.FactorScore) []string {
	var advice []string

	if ev.Ctx.Tide != nil && ev.Ctx.Wind != nil {
		drift := physics.DriftHolding(ev.Ctx.Wind.SpeedKts, ev.Ctx.Wind.DirectionDeg,
			ev.Ctx.Tide.CurrentSpeedKts, ev.Ctx.Tide.SetDirectionDeg)
		if drift.CanHold {
			advice = append(advice, "anchor up and build a scent line")
		} else {
			advice = append(advice, "too much drift to anchor: drag bait across the flat instead")
		}
	}
	if minutes, ok := ev.Ctx.MinutesToSlack(); ok && minutes <= 30 {
		advice = append(advice, "fish the slack hard: halibut ride the flats as the current dies")
	}

	return advice
}
