package species

import (
	"fishcast/internal/engine"
	"fishcast/internal/physics"
	"fishcast/internal/season"
	"fishcast/internal/types"
)

// Chinook water preferences in Celsius.
const (
	chinookTempLoC = 8.0
	chinookTempHiC = 13.5
)

// newChinookSpec builds the large-migratory-predator spec. Chinook are a
// deep, tide-driven fishery: trollability and slack timing dominate the
// weight tables, massive bait floors the score, and confirmed orca presence
// is close to a shutdown.
func newChinookSpec(schedule season.Schedule) *engine.Spec {
	return &engine.Spec{
		Species:     types.SpeciesChinook,
		Description: "deep-trolling tide-line fishery, year-round resident plus summer run",
		Schedule:    schedule,
		Factors: map[string]engine.FactorFunc{
			"wind_current": windCurrentFactor,
			"tide_slack":   slackFactor,
			"trollability": trollabilityFactor,
			"bait":         baitFactor,
			"light":        lightFactor,
			"pressure":     pressureFactor,
			"solunar":      solunarFactor,
			"run_strength": runFactor,
			"water_temp":   tempFactor(chinookTempLoC, chinookTempHiC),
		},
		Modifiers: []engine.Modifier{
			predatorSuppression(),
			stormTriggerBonus(0.5),
			weekendCrowdPenalty(0.3),
			// Last so no penalty can drag the total back below the floor.
			baitOverrideFloor(7.0),
		},
		Safety: []engine.SafetyRule{
			galeWind(25),
			gustSpread(30),
			washingMachine(),
			dangerousSwell(),
			nightVisibility(10),
		},
		UnsafeCeiling: 3.0,
		Advise:        chinookAdvice,
	}
}

func chinookAdvice(ev *engine.Evaluation, factors map[string]types.FactorScore) []string {
	var advice []string

	elev, ok := ev.Ctx.SunElevationOverride()
	if !ok {
		elev = physics.SunElevation(ev.Ctx.Timestamp, ev.Ctx.Sunrise, ev.Ctx.Sunset, ev.Ctx.Latitude)
	}
	light := physics.LightPenetration(elev, ev.Ctx.CloudCoverPct)
	advice = append(advice, light.Advice+" on the downrigger")

	if f, ok := factors["trollability"]; ok {
		switch f.Description {
		case "prime_time":
			advice = append(advice, "big exchange going slack: work the tide line hard")
		case "heavy_blowback":
			advice = append(advice, "heavy blowback: go to 15lb balls or wait for the turn")
		}
	}

	if ev.Bait.Level == types.BaitMassive || ev.Bait.Level == types.BaitAbundant {
		advice = append(advice, "match the bait: fish spoons sized to the schools")
	}
	if ev.Predator.Level == types.PredatorConfirmed {
		advice = append(advice, "orcas reported: move several miles before setting gear")
	}

	return advice
}
