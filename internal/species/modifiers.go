package species

import (
	"fmt"

	"fishcast/internal/engine"
	"fishcast/internal/physics"
	"fishcast/internal/types"
)

// Shared modifier builders. Each species declares its own ordered list;
// ordering is part of the species' contract.

// baitOverrideFloor floors the total when the bait signal hits the top
// category: bait that thick pulls fish in regardless of conditions. Species
// honoring the override declare it as their final modifier so no penalty can
// drag the total back below the floor. The floor cannot beat the safety cap;
// the engine applies safety after modifiers.
func baitOverrideFloor(floor float64) engine.Modifier {
	return engine.Modifier{
		Name: "massive_bait_override",
		Apply: func(ev *engine.Evaluation, total float64) (float64, types.ModifierEffect) {
			if !ev.Bait.Override || total >= floor {
				return total, types.ModifierEffect{Kind: "floor", FloorTo: floor}
			}
			return floor, types.ModifierEffect{
				Fired:   true,
				Kind:    "floor",
				FloorTo: floor,
				Reason:  "massive bait presence floors the score",
			}
		},
	}
}

// predatorSuppression multiplies the total down when apex predators are
// working the area. Confirmed orca presence is close to a shutdown for
// salmon.
func predatorSuppression() engine.Modifier {
	return engine.Modifier{
		Name: "apex_predator_suppression",
		Apply: func(ev *engine.Evaluation, total float64) (float64, types.ModifierEffect) {
			if ev.Predator.Suppression >= 1.0 {
				return total, types.ModifierEffect{Kind: "multiply", Factor: 1.0}
			}
			return total * ev.Predator.Suppression, types.ModifierEffect{
				Fired:  true,
				Kind:   "multiply",
				Factor: ev.Predator.Suppression,
				Reason: fmt.Sprintf("%s apex predator presence", ev.Predator.Level),
			}
		},
	}
}

// stormTriggerBonus adds a flat bonus during a fast pre-frontal pressure
// fall: the short hard bite before weather arrives.
func stormTriggerBonus(bonus float64) engine.Modifier {
	return engine.Modifier{
		Name: "storm_trigger_bonus",
		Apply: func(ev *engine.Evaluation, total float64) (float64, types.ModifierEffect) {
			res := physics.PressureTrend(ev.Ctx.Timestamp, ev.Ctx.Pressure)
			if !res.StormDue {
				return total, types.ModifierEffect{Kind: "add", Delta: bonus}
			}
			return total + bonus, types.ModifierEffect{
				Fired:  true,
				Kind:   "add",
				Delta:  bonus,
				Reason: "pre-frontal pressure fall",
			}
		},
	}
}

// glassCalmPenalty multiplies the total down in dead-flat conditions for
// species that go boat-shy without a ripple.
func glassCalmPenalty(factor float64) engine.Modifier {
	return engine.Modifier{
		Name: "glass_calm_penalty",
		Apply: func(ev *engine.Evaluation, total float64) (float64, types.ModifierEffect) {
			if !isGlassCalm(ev.Ctx) {
				return total, types.ModifierEffect{Kind: "multiply", Factor: factor}
			}
			return total * factor, types.ModifierEffect{
				Fired:  true,
				Kind:   "multiply",
				Factor: factor,
				Reason: "glass calm: fish are boat-shy",
			}
		},
	}
}

// glassCalmBonus is the flatfish inverse: dead-flat water is ideal drift
// fishing and earns a flat bonus.
func glassCalmBonus(bonus float64) engine.Modifier {
	return engine.Modifier{
		Name: "glass_calm_bonus",
		Apply: func(ev *engine.Evaluation, total float64) (float64, types.ModifierEffect) {
			if !isGlassCalm(ev.Ctx) {
				return total, types.ModifierEffect{Kind: "add", Delta: bonus}
			}
			return total + bonus, types.ModifierEffect{
				Fired:  true,
				Kind:   "add",
				Delta:  bonus,
				Reason: "flat calm: ideal drift conditions",
			}
		},
	}
}

// weekendCrowdPenalty subtracts a flat penalty on Saturdays and Sundays:
// pressure from the fleet moves fish off the obvious spots.
func weekendCrowdPenalty(penalty float64) engine.Modifier {
	return engine.Modifier{
		Name: "weekend_crowd_penalty",
		Apply: func(ev *engine.Evaluation, total float64) (float64, types.ModifierEffect) {
			wd := ev.Ctx.Timestamp.Weekday()
			if wd != 0 && wd != 6 { // Sunday, Saturday
				return total, types.ModifierEffect{Kind: "add", Delta: -penalty}
			}
			return total - penalty, types.ModifierEffect{
				Fired:  true,
				Kind:   "add",
				Delta:  -penalty,
				Reason: "weekend fleet pressure",
			}
		},
	}
}

// visualFeedPenalty multiplies the total by the freshet visual-feed
// multiplier for sight-feeding species; blown-out water shuts them down on
// top of whatever the clarity factor already cost.
func visualFeedPenalty() engine.Modifier {
	return engine.Modifier{
		Name: "turbidity_visual_penalty",
		Apply: func(ev *engine.Evaluation, total float64) (float64, types.ModifierEffect) {
			if ev.Ctx.Precip == nil {
				return total, types.ModifierEffect{Kind: "multiply", Factor: 1.0}
			}
			res := physics.Freshet(ev.Ctx.Precip.Total24hMM, ev.Ctx.Precip.MaxAirTemp24C, ev.Ctx.Timestamp.Month())
			if res.VisualFeedMultiplier >= 1.0 {
				return total, types.ModifierEffect{Kind: "multiply", Factor: 1.0}
			}
			return total * res.VisualFeedMultiplier, types.ModifierEffect{
				Fired:  true,
				Kind:   "multiply",
				Factor: res.VisualFeedMultiplier,
				Reason: fmt.Sprintf("%s water suppresses visual feeding", res.Clarity),
			}
		},
	}
}

// slackWindowBonus adds a flat bonus when the evaluation instant sits inside
// the slack window; bottom fish feed hardest as the current dies.
func slackWindowBonus(bonus float64) engine.Modifier {
	return engine.Modifier{
		Name: "slack_window_bonus",
		Apply: func(ev *engine.Evaluation, total float64) (float64, types.ModifierEffect) {
			minutes, ok := ev.Ctx.MinutesToSlack()
			if !ok || minutes > 20 {
				return total, types.ModifierEffect{Kind: "add", Delta: bonus}
			}
			return total + bonus, types.ModifierEffect{
				Fired:  true,
				Kind:   "add",
				Delta:  bonus,
				Reason: "inside the slack window",
			}
		},
	}
}

func isGlassCalm(c *types.EnvironmentalContext) bool {
	windCalm := c.Wind == nil || c.Wind.SpeedKts < 2
	swellFlat := c.Swell == nil || c.Swell.HeightM < 0.3
	return windCalm && swellFlat
}
