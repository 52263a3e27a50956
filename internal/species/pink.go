package species

import (
	"fmt"

	"fishcast/internal/engine"
	"fishcast/internal/season"
	"fishcast/internal/types"
)

// newPinkSpec builds the schooling-surface-feeder spec. The run exists only
// in odd calendar years; the parity gatekeeper zeroes everything in even
// years regardless of conditions. Inside the run the fishery is shallow,
// visual and school-driven.
func newPinkSpec(schedule season.Schedule) *engine.Spec {
	return &engine.Spec{
		Species:     types.SpeciesPink,
		Description: "odd-year surface schools on a sharp late-August peak",
		Schedule:    schedule,
		Factors: map[string]engine.FactorFunc{
			"wind_current": windCurrentFactor,
			"tide_slack":   slackFactor,
			"bait":         baitFactor,
			"light":        lightFactor,
			"clarity":      clarityFactor,
			"pressure":     pressureFactor,
			"solunar":      solunarFactor,
			"run_strength": runFactor,
		},
		Modifiers: []engine.Modifier{
			predatorSuppression(),
			weekendCrowdPenalty(0.5),
			// Last so no penalty can drag the total back below the floor.
			baitOverrideFloor(6.0),
		},
		Safety: []engine.SafetyRule{
			galeWind(25),
			gustSpread(30),
			washingMachine(),
			dangerousSwell(),
			nightVisibility(10),
		},
		Gatekeepers: []engine.Gatekeeper{
			{
				Name:  "even_year_no_run",
				Floor: 0,
				Check: func(ev *engine.Evaluation) (bool, string) {
					if !ev.Selection.ParityBlocked {
						return false, ""
					}
					return true, fmt.Sprintf("%d is an even year: the pink run is negligible", ev.Ctx.Timestamp.Year())
				},
			},
		},
		UnsafeCeiling: 2.5,
		Advise:        pinkAdvice,
	}
}

func pinkAdvice(ev *engine.Evaluation, factors map[string]types.FactorScore) []string {
	var advice []string

	if ev.Selection.RampMultiplier >= 0.8 {
		advice = append(advice, "peak of the run: small pink jigs under the surface schools")
	} else if ev.Selection.InSeason {
		advice = append(advice, "edge of the run window: cover water until you find a school")
	}
	if ev.Run.Strength == types.RunStrong {
		advice = append(advice, "run reported strong: fish the beach seams on the flood")
	}

	return advice
}
