// Command validate performs integrity checks across the species catalog:
// weight-table closure, factor wiring, schedule coverage for every month of
// the calendar, and scoring-engine invariants (range, determinism) against a
// grid of sampled contexts. It exits non-zero when any phase fails, making it
// suitable as a CI gate for profile edits.
//
// Usage:
//
//	go run ./cmd/validate
package main

import (
	"fmt"
	"os"
	"time"

	"fishcast/internal/engine"
	"fishcast/internal/species"
	"fishcast/internal/types"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Println("=== Species Catalog Validation ===")
	fmt.Println()

	reg, err := species.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load species registry: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateWeightClosure(reg),
		validateScheduleCoverage(reg),
		validateScoreInvariants(reg),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	fmt.Println()
	if allPassed {
		fmt.Printf("All validations passed (%d species).\n", len(reg.Names()))
		return 0
	}
	fmt.Println("Validation FAILED.")
	return 1
}

// ── Phase 1: Weight Closure ──
// Every profile's weights must sum to 1.0 and reference only wired factors.
// Load() already enforces this; re-checking here keeps the command honest
// when the registry's own checks change.

func validateWeightClosure(reg *species.Registry) *phase {
	p := &phase{name: "Phase 1: Weight Closure"}

	for _, spec := range reg.All() {
		profiles := []types.SeasonalProfile{spec.Schedule.OffSeason}
		for _, e := range spec.Schedule.Entries {
			profiles = append(profiles, e.Profile)
		}
		for _, prof := range profiles {
			if err := prof.ValidateWeights(); err != nil {
				p.errorf("%s: %v", spec.Species, err)
			}
			for name := range prof.Weights {
				if _, ok := spec.Factors[name]; !ok {
					p.errorf("%s: profile %q weights unwired factor %q", spec.Species, prof.Mode, name)
				}
			}
		}
	}
	return p
}

// ── Phase 2: Schedule Coverage ──
// Every calendar date must resolve to a profile with a sane ramp multiplier.

func validateScheduleCoverage(reg *species.Registry) *phase {
	p := &phase{name: "Phase 2: Schedule Coverage"}

	// An odd and an even year, including a leap year.
	for _, year := range []int{2027, 2028} {
		for _, spec := range reg.All() {
			for d := time.Date(year, 1, 1, 12, 0, 0, 0, time.UTC); d.Year() == year; d = d.AddDate(0, 0, 1) {
				sel := spec.Schedule.Select(d)
				if sel.Profile.Mode == "" {
					p.errorf("%s %s: no profile selected", spec.Species, d.Format("2006-01-02"))
				}
				if sel.RampMultiplier <= 0 || sel.RampMultiplier > 1.0 {
					p.errorf("%s %s: ramp multiplier %f out of (0,1]", spec.Species, d.Format("2006-01-02"), sel.RampMultiplier)
				}
			}
		}
	}
	return p
}

// ── Phase 3: Score Invariants ──
// Scores stay in [0,10] and repeat calls are bit-identical across a grid of
// hostile and benign contexts and a spread of dates.

func validateScoreInvariants(reg *species.Registry) *phase {
	p := &phase{name: "Phase 3: Score Invariants"}

	eng := engine.New(nil)
	dates := []time.Time{
		time.Date(2025, time.January, 15, 7, 0, 0, 0, time.UTC),
		time.Date(2025, time.May, 10, 6, 0, 0, 0, time.UTC),
		time.Date(2025, time.August, 25, 5, 30, 0, 0, time.UTC),
		time.Date(2026, time.August, 25, 5, 30, 0, 0, time.UTC),
		time.Date(2026, time.December, 31, 12, 0, 0, 0, time.UTC),
	}

	for _, ts := range dates {
		for name, ectx := range sampleContexts(ts) {
			for _, spec := range reg.All() {
				first := eng.Score(spec, ectx)
				second := eng.Score(spec, ectx)

				if first.Total < 0 || first.Total > types.MaxScale {
					p.errorf("%s %s/%s: total %f out of [0,%g]", spec.Species, ts.Format("2006-01-02"), name, first.Total, types.MaxScale)
				}
				if first.Total != second.Total {
					p.errorf("%s %s/%s: nondeterministic total (%f vs %f)", spec.Species, ts.Format("2006-01-02"), name, first.Total, second.Total)
				}
			}
		}
	}
	return p
}

// sampleContexts builds a labeled grid of contexts from benign to hostile.
func sampleContexts(ts time.Time) map[string]*types.EnvironmentalContext {
	base := func() *types.EnvironmentalContext {
		return &types.EnvironmentalContext{
			Timestamp: ts,
			Latitude:  48.5,
			Longitude: -123.1,
			Sunrise:   time.Date(ts.Year(), ts.Month(), ts.Day(), 6, 0, 0, 0, time.UTC),
			Sunset:    time.Date(ts.Year(), ts.Month(), ts.Day(), 20, 0, 0, 0, time.UTC),
		}
	}

	benign := base()
	benign.Wind = &types.WindState{SpeedKts: 5, GustKts: 7, DirectionDeg: 200}
	benign.Swell = &types.SwellState{HeightM: 0.4, PeriodS: 10}
	benign.Tide = &types.TideState{CurrentSpeedKts: 1, SetDirectionDeg: 190, ExchangeFt: 7, MinutesToSlack: 20, WaterTempC: 10}

	gale := base()
	gale.Wind = &types.WindState{SpeedKts: 35, GustKts: 45, DirectionDeg: 180}
	gale.Swell = &types.SwellState{HeightM: 3.5, PeriodS: 6}
	gale.Tide = &types.TideState{CurrentSpeedKts: 3, SetDirectionDeg: 0, ExchangeFt: 14, MinutesToSlack: 200, WaterTempC: 9}
	gale.BioIntelText = "herring balls everywhere, fish boiling on bait"

	blown := base()
	blown.Precip = &types.PrecipState{Total24hMM: 40, MaxAirTemp24C: 24}
	blown.Pressure = &types.PressureState{
		CurrentHPa: 998,
		History: []types.PressureSample{
			{At: ts.Add(-3 * time.Hour), HPa: 1006},
		},
	}

	return map[string]*types.EnvironmentalContext{
		"benign":  benign,
		"gale":    gale,
		"empty":   base(),
		"freshet": blown,
	}
}
