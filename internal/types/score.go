package types

import "fmt"

// MaxScale is the top of the suitability scale used by every species module.
const MaxScale = 10.0

// FactorScore is the atomic output of every physics primitive and per-species
// sub-calculation. Score is always in [0,1]; Description is a short enum-like
// label, never free prose.
type FactorScore struct {
	Value       float64 `json:"value"`
	Weight      float64 `json:"weight"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// Weighted returns the factor's contribution to the base score.
func (f FactorScore) Weighted() float64 {
	return f.Score * f.Weight
}

// ModifierEffect records one modifier-stage adjustment for explainability.
// Exactly one of Factor/Delta/FloorTo is meaningful depending on Kind.
type ModifierEffect struct {
	Name    string  `json:"name"`
	Fired   bool    `json:"fired"`
	Kind    string  `json:"kind,omitempty"` // "multiply", "add" or "floor"
	Factor  float64 `json:"factor,omitempty"`
	Delta   float64 `json:"delta,omitempty"`
	FloorTo float64 `json:"floor_to,omitempty"`
	Reason  string  `json:"reason,omitempty"`
}

// Provenance is the structured, always-present record of how a total was
// produced: which weight table, which modifiers fired, which gatekeeper (if
// any), and whether the safety cap clipped the result.
type Provenance struct {
	Species          Species            `json:"species"`
	SeasonalMode     string             `json:"seasonal_mode"`
	Weights          map[string]float64 `json:"weights"`
	BaseScore        float64            `json:"base_score"`
	RampMultiplier   float64            `json:"ramp_multiplier"`
	Modifiers        []ModifierEffect   `json:"modifiers"`
	Gatekeeper       string             `json:"gatekeeper,omitempty"`
	GatekeeperReason string             `json:"gatekeeper_reason,omitempty"`
	SafetyCapApplied bool               `json:"safety_cap_applied"`
	UnsafeCeiling    float64            `json:"unsafe_ceiling"`
}

// ScoreResult is the complete output of one scoring call. It is ephemeral:
// the engine persists nothing across calls.
type ScoreResult struct {
	Species         Species                `json:"species"`
	Total           float64                `json:"total"`
	Factors         map[string]FactorScore `json:"factors"`
	IsSafe          bool                   `json:"is_safe"`
	SafetyWarnings  []string               `json:"safety_warnings"`
	Recommendations []string               `json:"recommendations"`
	SeasonalMode    string                 `json:"seasonal_mode"`
	InSeason        bool                   `json:"in_season"`
	Provenance      Provenance             `json:"provenance"`
}

// SeasonalProfile names a behavioral mode and the factor-weight table active
// while that mode holds. Weights must sum to 1.0 within WeightEpsilon.
type SeasonalProfile struct {
	Mode     string             `json:"mode" yaml:"mode"`
	Behavior string             `json:"behavior" yaml:"behavior"`
	Weights  map[string]float64 `json:"weights" yaml:"weights"`
}

// WeightEpsilon is the tolerated rounding slack for weight-closure checks.
const WeightEpsilon = 0.001

// ValidateWeights checks the weight-closure invariant for a profile.
func (p SeasonalProfile) ValidateWeights() error {
	var sum float64
	for name, w := range p.Weights {
		if w < 0 {
			return fmt.Errorf("profile %q: negative weight for %q: %f", p.Mode, name, w)
		}
		sum += w
	}
	if diff := sum - 1.0; diff > WeightEpsilon || diff < -WeightEpsilon {
		return fmt.Errorf("profile %q: weights sum to %.4f, must sum to 1.0", p.Mode, sum)
	}
	return nil
}
