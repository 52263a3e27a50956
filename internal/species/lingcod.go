package species

import (
	"fmt"
	"time"

	"fishcast/internal/engine"
	"fishcast/internal/season"
	"fishcast/internal/types"
)

// Lingcod retention window: May 1 through June 15.
const lingcodSeasonCloseDOY = 166 // June 15 in a non-leap year

const (
	lingcodTempLoC = 7.0
	lingcodTempHiC = 12.0
)

// newLingcodSpec builds the deep-bottom-dweller spec. Lingcod are an ambush
// fishery over hard structure: holding position through the drift is nearly
// everything, slack timing is most of the rest, and the short retention
// season is a hard gatekeeper. The bait override is deliberately absent;
// lingcod do not chase bait clouds the way salmon do.
func newLingcodSpec(schedule season.Schedule) *engine.Spec {
	return &engine.Spec{
		Species:     types.SpeciesLingcod,
		Description: "structure ambush fishery inside a six-week retention season",
		Schedule:    schedule,
		Factors: map[string]engine.FactorFunc{
			"drift_holding": driftFactor,
			"tide_slack":    slackFactor,
			"swell":         swellFactor,
			"wind_current":  windCurrentFactor,
			"pressure":      pressureFactor,
			"solunar":       solunarFactor,
			"water_temp":    tempFactor(lingcodTempLoC, lingcodTempHiC),
		},
		Modifiers: []engine.Modifier{
			slackWindowBonus(0.5),
			weekendCrowdPenalty(0.5),
		},
		Safety: []engine.SafetyRule{
			// Offshore structure: tighter wind limits than the inside salmon
			// fishery.
			galeWind(20),
			gustSpread(25),
			washingMachine(),
			dangerousSwell(),
			nightVisibility(8),
		},
		Gatekeepers: []engine.Gatekeeper{
			{
				Name:  "retention_closed",
				Floor: 0,
				Check: func(ev *engine.Evaluation) (bool, string) {
					ts := ev.Ctx.Timestamp
					open := ts.Month() == time.May ||
						(ts.Month() == time.June && ts.YearDay() <= lingcodSeasonCloseDOY+leapShift(ts.Year()))
					if open {
						return false, ""
					}
					return true, fmt.Sprintf("lingcod retention closed on %s: season runs May 1 - June 15",
						ts.Format("Jan 2"))
				},
			},
		},
		UnsafeCeiling: 2.0,
		Advise:        lingcodAdvice,
	}
}

// leapShift returns 1 in leap years so the day-of-year close date stays
// pinned to June 15.
func leapShift(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 1
	}
	return 0
}

func lingcodAdvice(ev *engine.Evaluation, factors map[string]types.FactorScore) []string {
	var advice []string

	if f, ok := factors["drift_holding"]; ok {
		switch f.Description {
		case "holds_easily":
			advice = append(advice, "boat parks on the spot: pin large baits tight to structure")
		case "cannot_hold":
			advice = append(advice, "drift too fast to hold: set up long upwind drifts over the pinnacle")
		}
	}
	if minutes, ok := ev.Ctx.MinutesToSlack(); ok && minutes <= 20 {
		advice = append(advice, "slack window open: biggest fish move in the last of the current")
	}

	return advice
}
