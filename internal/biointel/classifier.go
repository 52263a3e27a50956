// Package biointel extracts structured signals from free-text situational
// reports: bait presence, apex-predator presence, and run strength. The text
// is opaque and untrusted; extraction never fails, and empty or unintelligible
// input simply yields the "no signal" level for every signal.
//
// The Classifier interface decouples the matching strategy from scoring so a
// smarter extractor can be swapped in without touching the species modules.
// The default implementation is curated case-insensitive keyword matching.
package biointel

import "fishcast/internal/types"

// BaitSignal is the structured bait-presence extraction result.
type BaitSignal struct {
	Level types.BaitLevel `json:"level"`
	// Score is the deterministic numeric mapping of Level, in [0,1].
	Score float64 `json:"score"`
	// Override is set only at the top category: bait so thick it floors the
	// suitability score for species that honor it, regardless of conditions.
	Override bool     `json:"override"`
	Matched  []string `json:"matched,omitempty"`
}

// PredatorSignal is the structured apex-predator extraction result.
type PredatorSignal struct {
	Level types.PredatorLevel `json:"level"`
	// Suppression is the multiplicative penalty for species the predator
	// shuts down: 1.0 at none, down to 0.3 at confirmed presence.
	Suppression float64  `json:"suppression"`
	Shutdown    bool     `json:"shutdown"`
	Matched     []string `json:"matched,omitempty"`
}

// RunSignal is the structured run-strength extraction result.
type RunSignal struct {
	Strength types.RunStrength `json:"strength"`
	Score    float64           `json:"score"`
	Matched  []string          `json:"matched,omitempty"`
}

// Classifier turns raw report text into structured signals. Implementations
// must be pure: identical text yields identical signals.
type Classifier interface {
	ClassifyBaitPresence(text string) BaitSignal
	DetectPredator(text string) PredatorSignal
	AssessRunStrength(text string) RunSignal
}

// baitLevelScores maps each categorical level to its deterministic score.
var baitLevelScores = map[types.BaitLevel]float64{
	types.BaitNone:      0.3, // no report is not the same as no bait
	types.BaitScattered: 0.45,
	types.BaitPresent:   0.7,
	types.BaitAbundant:  0.9,
	types.BaitMassive:   1.0,
}

// predatorSuppression maps predator presence to the score multiplier.
var predatorSuppression = map[types.PredatorLevel]float64{
	types.PredatorNone:      1.0,
	types.PredatorSuspected: 0.7,
	types.PredatorConfirmed: 0.3,
}

// runStrengthScores maps run strength to its deterministic score.
var runStrengthScores = map[types.RunStrength]float64{
	types.RunUnknown:  0.5,
	types.RunWeak:     0.2,
	types.RunModerate: 0.65,
	types.RunStrong:   1.0,
}
