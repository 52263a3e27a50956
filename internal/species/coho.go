package species

import (
	"fishcast/internal/engine"
	"fishcast/internal/season"
	"fishcast/internal/types"
)

// newCohoSpec builds the visual-hunting-migratory-predator spec. Coho feed
// by sight high in the water column: light, clarity and bait carry the
// weights, turbid water multiplies the score down on top of the clarity
// factor, and dead-flat water makes them boat-shy.
func newCohoSpec(schedule season.Schedule) *engine.Spec {
	return &engine.Spec{
		Species:     types.SpeciesCoho,
		Description: "surface-oriented sight feeders riding the summer-fall run ramp",
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
			visualFeedPenalty(),
			predatorSuppression(),
			glassCalmPenalty(0.8),
			// Last so no penalty can drag the total back below the floor.
			baitOverrideFloor(6.5),
		},
		Safety: []engine.SafetyRule{
			galeWind(25),
			gustSpread(30),
			washingMachine(),
			dangerousSwell(),
			nightVisibility(10),
		},
		UnsafeCeiling: 3.0,
		Advise:        cohoAdvice,
	}
}

func cohoAdvice(ev *engine.Evaluation, factors map[string]types.FactorScore) []string {
	var advice []string

	if f, ok := factors["clarity"]; ok {
		switch types.WaterClarity(f.Description) {
		case types.ClarityBlownOut:
			advice = append(advice, "water blown out: find the clear side of the tide rip or stay home")
		case types.ClarityMurky:
			advice = append(advice, "murky water: run bright or dark patterns, slow down")
		}
	}

	if ev.Ctx.Wind != nil && ev.Ctx.Wind.SpeedKts >= 4 && ev.Ctx.Wind.SpeedKts <= 15 {
		advice = append(advice, "good ripple on the water: fish the top 30 ft")
	}
	if ev.Bait.Override {
		advice = append(advice, "bait everywhere: stay with the schools and keep gear shallow")
	}

	return advice
}
