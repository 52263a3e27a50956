package species

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fishcast/internal/engine"
	"fishcast/internal/types"
)

func mustSpec(t *testing.T, sp types.Species) *engine.Spec {
	t.Helper()
	reg, err := Load()
	require.NoError(t, err)
	spec, ok := reg.Get(sp)
	require.True(t, ok)
	return spec
}

// calmContext builds a benign mid-season context for the given instant.
func calmContext(ts time.Time) *types.EnvironmentalContext {
	return &types.EnvironmentalContext{
		Timestamp: ts,
		Sunrise:   time.Date(ts.Year(), ts.Month(), ts.Day(), 5, 30, 0, 0, time.UTC),
		Sunset:    time.Date(ts.Year(), ts.Month(), ts.Day(), 21, 0, 0, 0, time.UTC),
		Latitude:  48.1,
		Longitude: -122.8,
		Wind:      &types.WindState{SpeedKts: 7, DirectionDeg: 220, GustKts: 10},
		Swell:     &types.SwellState{HeightM: 0.5, PeriodS: 9},
		Tide: &types.TideState{
			CurrentSpeedKts: 1.0,
			SetDirectionDeg: 200,
			ExchangeFt:      7,
			Rising:          true,
			MinutesToSlack:  40,
			WaterTempC:      11,
		},
	}
}

func TestHalibut_SteepSwellGatekeeper(t *testing.T) {
	spec := mustSpec(t, types.SpeciesHalibut)
	e := engine.New(nil)

	// In season (May), otherwise good conditions, but 5s at 1.0m is a steep
	// swell: the gatekeeper zeroes everything.
	ectx := calmContext(time.Date(2025, 5, 14, 7, 0, 0, 0, time.UTC))
	ectx.Swell = &types.SwellState{HeightM: 1.0, PeriodS: 5}

	res := e.Score(spec, ectx)

	assert.Equal(t, 0.0, res.Total)
	assert.Equal(t, "steep_swell", res.Provenance.Gatekeeper)
	require.Len(t, res.Recommendations, 1)
	assert.Contains(t, res.Recommendations[0], "steep swell")
}

func TestHalibut_GentleSwellNoGate(t *testing.T) {
	spec := mustSpec(t, types.SpeciesHalibut)
	e := engine.New(nil)

	ectx := calmContext(time.Date(2025, 5, 14, 7, 0, 0, 0, time.UTC))
	ectx.Swell = &types.SwellState{HeightM: 1.0, PeriodS: 12}

	res := e.Score(spec, ectx)

	assert.Empty(t, res.Provenance.Gatekeeper)
	assert.Greater(t, res.Total, 0.0)
}

func TestPink_EvenYearGatekeeper(t *testing.T) {
	spec := mustSpec(t, types.SpeciesPink)
	e := engine.New(nil)

	// Peak run date in an even year: hard zero, out of season.
	res := e.Score(spec, calmContext(time.Date(2026, 8, 25, 6, 0, 0, 0, time.UTC)))

	assert.Equal(t, 0.0, res.Total)
	assert.False(t, res.InSeason)
	assert.Equal(t, "even_year_no_run", res.Provenance.Gatekeeper)
}

func TestPink_OddYearScores(t *testing.T) {
	spec := mustSpec(t, types.SpeciesPink)
	e := engine.New(nil)

	res := e.Score(spec, calmContext(time.Date(2025, 8, 25, 6, 0, 0, 0, time.UTC)))

	assert.True(t, res.InSeason)
	assert.Empty(t, res.Provenance.Gatekeeper)
	assert.Greater(t, res.Total, 0.0)
	assert.Equal(t, "odd_year_run", res.SeasonalMode)
	assert.Equal(t, 1.0, res.Provenance.RampMultiplier)
}

func TestChinook_MassiveBaitOverrideFloor(t *testing.T) {
	spec := mustSpec(t, types.SpeciesChinook)
	e := engine.New(nil)

	// Midweek, midday, far from slack, fast-rising barometer: a poor day on
	// the numbers. Massive bait floors it anyway.
	ts := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC) // Wednesday
	ectx := &types.EnvironmentalContext{
		Timestamp: ts,
		Sunrise:   time.Date(2025, 1, 15, 7, 50, 0, 0, time.UTC),
		Sunset:    time.Date(2025, 1, 15, 16, 40, 0, 0, time.UTC),
		Latitude:  48.1,
		Longitude: -122.8,
		Tide: &types.TideState{
			CurrentSpeedKts: 2.5,
			SetDirectionDeg: 180,
			ExchangeFt:      11,
			MinutesToSlack:  180,
			WaterTempC:      8.5,
		},
		Pressure: &types.PressureState{
			CurrentHPa: 1022,
			History: []types.PressureSample{
				{At: ts.Add(-3 * time.Hour), HPa: 1018},
				{At: ts.Add(-6 * time.Hour), HPa: 1016},
			},
		},
		BioIntelText: "herring balls everywhere off the point",
	}

	res := e.Score(spec, ectx)

	require.True(t, res.IsSafe)
	assert.GreaterOrEqual(t, res.Total, 7.0)

	var overrideRecorded bool
	for _, m := range res.Provenance.Modifiers {
		if m.Name == "massive_bait_override" {
			overrideRecorded = true
		}
	}
	assert.True(t, overrideRecorded)
}

func TestChinook_BaitFloorHoldsOnWeekend(t *testing.T) {
	spec := mustSpec(t, types.SpeciesChinook)
	e := engine.New(nil)

	// Same poor midwinter numbers, but on a Saturday: the crowd penalty
	// fires and still cannot drag the total below the bait floor.
	ts := time.Date(2025, 1, 18, 12, 0, 0, 0, time.UTC) // Saturday
	ectx := &types.EnvironmentalContext{
		Timestamp: ts,
		Sunrise:   time.Date(2025, 1, 18, 7, 50, 0, 0, time.UTC),
		Sunset:    time.Date(2025, 1, 18, 16, 40, 0, 0, time.UTC),
		Latitude:  48.1,
		Longitude: -122.8,
		Tide: &types.TideState{
			CurrentSpeedKts: 2.5,
			SetDirectionDeg: 180,
			ExchangeFt:      11,
			MinutesToSlack:  180,
			WaterTempC:      8.5,
		},
		BioIntelText: "herring balls everywhere off the point",
	}

	res := e.Score(spec, ectx)

	require.True(t, res.IsSafe)
	assert.GreaterOrEqual(t, res.Total, 7.0)

	fired := map[string]bool{}
	for _, m := range res.Provenance.Modifiers {
		if m.Fired {
			fired[m.Name] = true
		}
	}
	assert.True(t, fired["weekend_crowd_penalty"])
	assert.True(t, fired["massive_bait_override"])
}

func TestPink_BaitFloorHoldsOnWeekend(t *testing.T) {
	spec := mustSpec(t, types.SpeciesPink)
	e := engine.New(nil)

	ectx := calmContext(time.Date(2025, 8, 23, 6, 0, 0, 0, time.UTC)) // Saturday
	ectx.BioIntelText = "bait balls everywhere along the beach"

	res := e.Score(spec, ectx)

	require.True(t, res.IsSafe)
	assert.GreaterOrEqual(t, res.Total, 6.0)

	var weekendFired bool
	for _, m := range res.Provenance.Modifiers {
		if m.Name == "weekend_crowd_penalty" && m.Fired {
			weekendFired = true
		}
	}
	assert.True(t, weekendFired)
}

func TestChinook_HeavyBlowbackAdvice(t *testing.T) {
	spec := mustSpec(t, types.SpeciesChinook)
	e := engine.New(nil)

	// Big exchange, far from slack, hard current: heavy blowback.
	ectx := calmContext(time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC))
	ectx.Tide.ExchangeFt = 11
	ectx.Tide.MinutesToSlack = 180
	ectx.Tide.CurrentSpeedKts = 2.5

	res := e.Score(spec, ectx)

	require.Contains(t, res.Factors, "trollability")
	assert.Equal(t, "heavy_blowback", res.Factors["trollability"].Description)

	var found bool
	for _, r := range res.Recommendations {
		if strings.Contains(r, "heavy blowback") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestChinook_OrcaSuppression(t *testing.T) {
	spec := mustSpec(t, types.SpeciesChinook)
	e := engine.New(nil)

	base := calmContext(time.Date(2025, 7, 9, 6, 0, 0, 0, time.UTC))
	withOrcas := calmContext(time.Date(2025, 7, 9, 6, 0, 0, 0, time.UTC))
	withOrcas.BioIntelText = "pod of orcas pushed through the pass"

	clean := e.Score(spec, base)
	suppressed := e.Score(spec, withOrcas)

	assert.Less(t, suppressed.Total, clean.Total)

	var fired bool
	for _, m := range suppressed.Provenance.Modifiers {
		if m.Name == "apex_predator_suppression" && m.Fired {
			fired = true
			assert.Equal(t, 0.3, m.Factor)
		}
	}
	assert.True(t, fired)
}

func TestChinook_SlackProximityFactor(t *testing.T) {
	spec := mustSpec(t, types.SpeciesChinook)
	e := engine.New(nil)

	ectx := calmContext(time.Date(2025, 7, 9, 6, 0, 0, 0, time.UTC))
	ectx.Tide.MinutesToSlack = 10

	res := e.Score(spec, ectx)

	require.Contains(t, res.Factors, "tide_slack")
	assert.GreaterOrEqual(t, res.Factors["tide_slack"].Score, 0.9)
}

func TestChinook_SafetyCapDominates(t *testing.T) {
	spec := mustSpec(t, types.SpeciesChinook)
	e := engine.New(nil)

	// Great bite conditions, gale-force wind: capped regardless.
	ectx := calmContext(time.Date(2025, 7, 9, 6, 0, 0, 0, time.UTC))
	ectx.Wind = &types.WindState{SpeedKts: 28, DirectionDeg: 220, GustKts: 34}
	ectx.BioIntelText = "herring balls everywhere, wide open bite"

	res := e.Score(spec, ectx)

	assert.False(t, res.IsSafe)
	assert.LessOrEqual(t, res.Total, spec.UnsafeCeiling)
	assert.NotEmpty(t, res.SafetyWarnings)
	assert.True(t, res.Provenance.SafetyCapApplied)
}

func TestLingcod_SeasonGatekeeper(t *testing.T) {
	spec := mustSpec(t, types.SpeciesLingcod)
	e := engine.New(nil)

	tests := []struct {
		name string
		ts   time.Time
		open bool
	}{
		{"may opener", time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC), true},
		{"last open day", time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), true},
		{"day after close", time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC), false},
		{"leap year last open day", time.Date(2028, 6, 15, 8, 0, 0, 0, time.UTC), true},
		{"midwinter", time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Score(spec, calmContext(tt.ts))
			if tt.open {
				assert.Empty(t, res.Provenance.Gatekeeper)
				assert.Greater(t, res.Total, 0.0)
			} else {
				assert.Equal(t, 0.0, res.Total)
				assert.Equal(t, "retention_closed", res.Provenance.Gatekeeper)
			}
		})
	}
}

func TestCoho_BlownOutWaterSuppresses(t *testing.T) {
	spec := mustSpec(t, types.SpeciesCoho)
	e := engine.New(nil)

	clear := calmContext(time.Date(2025, 9, 15, 6, 30, 0, 0, time.UTC))
	blown := calmContext(time.Date(2025, 9, 15, 6, 30, 0, 0, time.UTC))
	blown.Precip = &types.PrecipState{Total24hMM: 40, MaxAirTemp24C: 24}

	clearRes := e.Score(spec, clear)
	blownRes := e.Score(spec, blown)

	assert.Less(t, blownRes.Total, clearRes.Total)

	var fired bool
	for _, m := range blownRes.Provenance.Modifiers {
		if m.Name == "turbidity_visual_penalty" && m.Fired {
			fired = true
		}
	}
	assert.True(t, fired)
}

func TestAllSpecies_RangeInvariantAcrossContexts(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)
	e := engine.New(nil)

	contexts := []*types.EnvironmentalContext{
		{Timestamp: time.Date(2025, 8, 25, 6, 0, 0, 0, time.UTC)}, // empty optionals
		calmContext(time.Date(2025, 5, 10, 6, 0, 0, 0, time.UTC)),
		func() *types.EnvironmentalContext {
			c := calmContext(time.Date(2026, 12, 25, 23, 0, 0, 0, time.UTC))
			c.Wind = &types.WindState{SpeedKts: 50, DirectionDeg: 10, GustKts: 70}
			c.Swell = &types.SwellState{HeightM: 6, PeriodS: 4}
			c.BioIntelText = "herring balls everywhere, orcas, shut down"
			return c
		}(),
	}

	for _, spec := range reg.All() {
		for i, ectx := range contexts {
			res := e.Score(spec, ectx)
			assert.GreaterOrEqualf(t, res.Total, 0.0, "%s ctx %d", spec.Species, i)
			assert.LessOrEqualf(t, res.Total, types.MaxScale, "%s ctx %d", spec.Species, i)
		}
	}
}

func TestAllSpecies_Determinism(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)
	e := engine.New(nil)

	ectx := calmContext(time.Date(2025, 8, 25, 5, 45, 0, 0, time.UTC))
	ectx.BioIntelText = "scattered herring, steady picking away, seals around"
	ectx.Pressure = &types.PressureState{
		CurrentHPa: 1011,
		History: []types.PressureSample{
			{At: ectx.Timestamp.Add(-3 * time.Hour), HPa: 1012},
			{At: ectx.Timestamp.Add(-6 * time.Hour), HPa: 1013},
		},
	}

	for _, spec := range reg.All() {
		a := e.Score(spec, ectx)
		b := e.Score(spec, ectx)
		assert.Equalf(t, a, b, "species %s", spec.Species)
	}
}

func TestMissingOptionalFieldsNeverPanic(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)
	e := engine.New(nil)

	bare := &types.EnvironmentalContext{Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	for _, spec := range reg.All() {
		assert.NotPanics(t, func() {
			res := e.Score(spec, bare)
			assert.GreaterOrEqual(t, res.Total, 0.0)
		})
	}
}

func TestOverride_MinutesToSlackWins(t *testing.T) {
	spec := mustSpec(t, types.SpeciesChinook)
	e := engine.New(nil)

	ectx := calmContext(time.Date(2025, 7, 9, 6, 0, 0, 0, time.UTC))
	ectx.Tide.MinutesToSlack = 200
	pinned := 5.0
	ectx.Overrides = &types.Overrides{MinutesToSlack: &pinned}

	res := e.Score(spec, ectx)

	assert.GreaterOrEqual(t, res.Factors["tide_slack"].Score, 0.9)
}
