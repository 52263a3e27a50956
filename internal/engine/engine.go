// Package engine implements the shared four-stage scoring pipeline that every
// species module runs: core weighted evaluation, ordered modifiers, safety
// gating, and hard gatekeepers. The pipeline itself is generic; everything
// species-specific arrives as declarative configuration in a Spec.
//
// The engine is synchronous, stateless and total: a scoring call is a pure
// computation over its EnvironmentalContext, never returns an error for a
// syntactically valid context, and holds no cross-call state. Concurrent
// calls need no coordination.
package engine

import (
	"math"
	"sort"

	"fishcast/internal/biointel"
	"fishcast/internal/season"
	"fishcast/internal/types"
)

// Evaluation bundles the per-call inputs handed to factor functions,
// modifiers, safety rules and gatekeepers: the raw context plus the bio-intel
// signals extracted once per call and the active seasonal selection.
type Evaluation struct {
	Ctx       *types.EnvironmentalContext
	Bait      biointel.BaitSignal
	Predator  biointel.PredatorSignal
	Run       biointel.RunSignal
	Selection season.Selection
}

// FactorFunc computes one named factor from the evaluation. Implementations
// must be pure and must return a score in [0,1]; the pipeline clamps anyway.
type FactorFunc func(ev *Evaluation) types.FactorScore

// Modifier is one ordered stage-2 adjustment. Apply receives the running
// total on the 0-10 scale and returns the adjusted total plus an effect
// record (with Fired=false when the modifier did not apply).
type Modifier struct {
	Name  string
	Apply func(ev *Evaluation, total float64) (float64, types.ModifierEffect)
}

// SafetyRule is one stage-3 predicate. Severity orders warnings in the
// result, highest first.
type SafetyRule struct {
	Name     string
	Severity int
	Check    func(ev *Evaluation) (unsafe bool, warning string)
}

// Gatekeeper is a hard override evaluated independently of the numeric
// pipeline. A triggered gatekeeper forces the total to Floor and wins over
// every other stage.
type Gatekeeper struct {
	Name  string
	Floor float64
	Check func(ev *Evaluation) (triggered bool, reason string)
}

// Spec is the complete declarative configuration for one species: weight
// schedule, factor wiring, ordered modifiers, safety rules and gatekeepers.
// Specs are built once at startup and never mutated at call time.
type Spec struct {
	Species     types.Species
	Description string

	Schedule season.Schedule
	Factors  map[string]FactorFunc

	// Modifiers run in declaration order; the order is part of the species'
	// contract, not an implementation detail.
	Modifiers   []Modifier
	Safety      []SafetyRule
	Gatekeepers []Gatekeeper

	// UnsafeCeiling caps the total when any safety rule fails.
	UnsafeCeiling float64

	// Advise builds tactical recommendations after the numeric stages. May be
	// nil. It is skipped entirely when a gatekeeper triggers.
	Advise func(ev *Evaluation, factors map[string]types.FactorScore) []string
}

// Engine runs Specs against contexts. The classifier is injected so the
// text-matching strategy can be swapped without touching scoring logic.
type Engine struct {
	classifier biointel.Classifier
}

// New creates an Engine with the given classifier. A nil classifier falls
// back to the default keyword matcher.
func New(classifier biointel.Classifier) *Engine {
	if classifier == nil {
		classifier = biointel.NewKeywordClassifier()
	}
	return &Engine{classifier: classifier}
}

// Score runs the full pipeline for one species against one context.
//
// Stage order: gatekeepers are checked first because a triggered gatekeeper
// forces the floor before the modifier and safety stages run and
// short-circuits advice generation; the numeric stages then run core ->
// modifiers -> safety. The safety cap is applied after modifiers, so no
// modifier (bait override included) can lift a total above the unsafe
// ceiling.
func (e *Engine) Score(spec *Spec, ectx *types.EnvironmentalContext) types.ScoreResult {
	ev := &Evaluation{
		Ctx:       ectx,
		Bait:      e.classifier.ClassifyBaitPresence(ectx.BioIntelText),
		Predator:  e.classifier.DetectPredator(ectx.BioIntelText),
		Run:       e.classifier.AssessRunStrength(ectx.BioIntelText),
		Selection: spec.Schedule.Select(ectx.Timestamp),
	}

	res := types.ScoreResult{
		Species:      spec.Species,
		Factors:      map[string]types.FactorScore{},
		IsSafe:       true,
		SeasonalMode: ev.Selection.Profile.Mode,
		InSeason:     ev.Selection.InSeason,
		Provenance: types.Provenance{
			Species:        spec.Species,
			SeasonalMode:   ev.Selection.Profile.Mode,
			Weights:        ev.Selection.Profile.Weights,
			RampMultiplier: ev.Selection.RampMultiplier,
			UnsafeCeiling:  spec.UnsafeCeiling,
		},
	}

	// Gatekeeper stage, evaluated first: a trigger wins over everything.
	for _, g := range spec.Gatekeepers {
		triggered, reason := g.Check(ev)
		if !triggered {
			continue
		}
		res.Total = round2(clampScale(g.Floor))
		res.Provenance.Gatekeeper = g.Name
		res.Provenance.GatekeeperReason = reason
		res.Recommendations = []string{reason}
		// Safety predicates still run: the water does not care that the
		// season is closed.
		e.applySafety(spec, ev, &res)
		res.Total = round2(clampScale(g.Floor))
		return res
	}

	// Core evaluation. Factor names are iterated in sorted order so float
	// summation order (and therefore the result) is bit-stable.
	base := e.coreScore(spec, ev, &res)
	total := base * types.MaxScale * ev.Selection.RampMultiplier
	res.Provenance.BaseScore = round2(total)

	// Modifier stage, in declared order.
	for _, m := range spec.Modifiers {
		newTotal, effect := m.Apply(ev, total)
		effect.Name = m.Name
		res.Provenance.Modifiers = append(res.Provenance.Modifiers, effect)
		if effect.Fired {
			total = newTotal
		}
	}

	res.Total = total

	// Safety stage caps the running total.
	e.applySafety(spec, ev, &res)

	res.Total = round2(clampScale(res.Total))

	if spec.Advise != nil {
		res.Recommendations = append(res.Recommendations, spec.Advise(ev, res.Factors)...)
	}

	return res
}

// coreScore computes the weighted base score in [0,1] and records every
// factor on the result.
func (e *Engine) coreScore(spec *Spec, ev *Evaluation, res *types.ScoreResult) float64 {
	names := make([]string, 0, len(ev.Selection.Profile.Weights))
	for name := range ev.Selection.Profile.Weights {
		names = append(names, name)
	}
	sort.Strings(names)

	var base float64
	for _, name := range names {
		weight := ev.Selection.Profile.Weights[name]

		fn, ok := spec.Factors[name]
		var fs types.FactorScore
		if !ok {
			// A weight with no wired calculator scores neutrally rather than
			// failing; cmd/validate flags this at build time.
			fs = types.FactorScore{Score: 0.5, Description: "no_calculator"}
		} else {
			fs = fn(ev)
		}

		fs.Weight = weight
		fs.Score = clamp01(fs.Score)
		res.Factors[name] = fs
		base += fs.Weighted()
	}
	return base
}

// applySafety evaluates all safety rules, orders warnings most severe first,
// and caps the total at the species' unsafe ceiling when any rule fails.
func (e *Engine) applySafety(spec *Spec, ev *Evaluation, res *types.ScoreResult) {
	type violation struct {
		severity int
		order    int
		warning  string
	}
	var violations []violation

	for i, rule := range spec.Safety {
		unsafe, warning := rule.Check(ev)
		if unsafe {
			violations = append(violations, violation{severity: rule.Severity, order: i, warning: warning})
		}
	}
	if len(violations) == 0 {
		return
	}

	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].severity != violations[j].severity {
			return violations[i].severity > violations[j].severity
		}
		return violations[i].order < violations[j].order
	})

	res.IsSafe = false
	for _, v := range violations {
		res.SafetyWarnings = append(res.SafetyWarnings, v.warning)
	}
	if res.Total > spec.UnsafeCeiling {
		res.Total = spec.UnsafeCeiling
		res.Provenance.SafetyCapApplied = true
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampScale(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > types.MaxScale {
		return types.MaxScale
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
