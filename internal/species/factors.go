package species

import (
	"fishcast/internal/engine"
	"fishcast/internal/physics"
	"fishcast/internal/types"
)

// Shared factor wiring from EnvironmentalContext fields to physics
// primitives. Neutral defaults per factor, applied when the context lacks
// the data a primitive needs:
//
//	wind_current   0.5  no_wind_data / no_tide_data
//	swell          0.5  no_swell_data
//	clarity        0.5  no_precip_data
//	light          derived sun elevation (override wins), cloud assumed given
//	tide_slack     0.5  no_tide_data
//	trollability   0.5  no_tide_data
//	drift_holding  0.5  no_data (wind missing treated as calm if tide known)
//	pressure       0.5  no_pressure_history (handled inside the primitive)
//	water_temp     0.5  no_water_temp
//	bait/run       classifier "no signal" levels (handled in biointel)
//	solunar        always computable from the timestamp

func neutral(desc string) types.FactorScore {
	return types.FactorScore{Score: 0.5, Description: desc}
}

func windCurrentFactor(ev *engine.Evaluation) types.FactorScore {
	c := ev.Ctx
	if c.Wind == nil {
		return neutral("no_wind_data")
	}
	if c.Tide == nil {
		return neutral("no_tide_data")
	}
	res := physics.WindCurrent(c.Wind.SpeedKts, c.Wind.DirectionDeg, c.Tide.CurrentSpeedKts, c.Tide.SetDirectionDeg)
	return types.FactorScore{Value: res.AngleDeg, Score: res.Score, Description: res.Label}
}

func swellFactor(ev *engine.Evaluation) types.FactorScore {
	c := ev.Ctx
	if c.Swell == nil {
		return neutral("no_swell_data")
	}
	res := physics.SwellComfort(c.Swell.HeightM, c.Swell.PeriodS)
	return types.FactorScore{Value: c.Swell.HeightM, Score: res.Score, Description: res.Label}
}

func clarityFactor(ev *engine.Evaluation) types.FactorScore {
	c := ev.Ctx
	if c.Precip == nil {
		return neutral("no_precip_data")
	}
	res := physics.Freshet(c.Precip.Total24hMM, c.Precip.MaxAirTemp24C, c.Timestamp.Month())
	return types.FactorScore{Value: c.Precip.Total24hMM, Score: res.Score, Description: string(res.Clarity)}
}

func lightFactor(ev *engine.Evaluation) types.FactorScore {
	c := ev.Ctx
	elev, ok := c.SunElevationOverride()
	if !ok {
		elev = physics.SunElevation(c.Timestamp, c.Sunrise, c.Sunset, c.Latitude)
	}
	res := physics.LightPenetration(elev, c.CloudCoverPct)
	return types.FactorScore{Value: res.EffectiveElevationDeg, Score: res.Score, Description: res.Label}
}

func slackFactor(ev *engine.Evaluation) types.FactorScore {
	minutes, ok := ev.Ctx.MinutesToSlack()
	if !ok {
		return neutral("no_tide_data")
	}
	score, label := physics.SlackProximity(minutes)
	return types.FactorScore{Value: minutes, Score: score, Description: label}
}

func trollabilityFactor(ev *engine.Evaluation) types.FactorScore {
	c := ev.Ctx
	if c.Tide == nil {
		return neutral("no_tide_data")
	}
	minutes, ok := c.MinutesToSlack()
	if !ok {
		return neutral("no_tide_data")
	}
	res := physics.Trollability(c.Tide.ExchangeFt, minutes, c.Tide.CurrentSpeedKts)
	return types.FactorScore{Value: res.BlowbackPct, Score: res.Score, Description: res.Label}
}

func driftFactor(ev *engine.Evaluation) types.FactorScore {
	c := ev.Ctx
	if c.Tide == nil && c.Wind == nil {
		return neutral("no_data")
	}
	var windKts, windFrom, currentKts, currentTo float64
	if c.Wind != nil {
		windKts, windFrom = c.Wind.SpeedKts, c.Wind.DirectionDeg
	}
	if c.Tide != nil {
		currentKts, currentTo = c.Tide.CurrentSpeedKts, c.Tide.SetDirectionDeg
	}
	res := physics.DriftHolding(windKts, windFrom, currentKts, currentTo)
	return types.FactorScore{Value: res.ResultantKts, Score: res.Score, Description: res.Label}
}

func pressureFactor(ev *engine.Evaluation) types.FactorScore {
	res := physics.PressureTrend(ev.Ctx.Timestamp, ev.Ctx.Pressure)
	return types.FactorScore{Value: res.Delta3h, Score: res.Score, Description: string(res.Trend)}
}

func solunarFactor(ev *engine.Evaluation) types.FactorScore {
	res := physics.Solunar(ev.Ctx.Timestamp)
	return types.FactorScore{Value: res.MinutesToMajor, Score: res.Score, Description: res.Label}
}

func baitFactor(ev *engine.Evaluation) types.FactorScore {
	return types.FactorScore{Value: ev.Bait.Score, Score: ev.Bait.Score, Description: "bait_" + string(ev.Bait.Level)}
}

func runFactor(ev *engine.Evaluation) types.FactorScore {
	return types.FactorScore{Value: ev.Run.Score, Score: ev.Run.Score, Description: "run_" + string(ev.Run.Strength)}
}

// tempFactor binds a species' preferred water-temperature band.
func tempFactor(loC, hiC float64) engine.FactorFunc {
	return func(ev *engine.Evaluation) types.FactorScore {
		if ev.Ctx.Tide == nil {
			return neutral("no_water_temp")
		}
		res := physics.TempSuitability(ev.Ctx.Tide.WaterTempC, loC, hiC)
		return types.FactorScore{Value: ev.Ctx.Tide.WaterTempC, Score: res.Score, Description: res.Label}
	}
}
