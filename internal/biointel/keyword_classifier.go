package biointel

import (
	"strings"

	"fishcast/internal/types"
)

// Compile-time assertion that KeywordClassifier implements Classifier.
var _ Classifier = (*KeywordClassifier)(nil)

// KeywordClassifier is the default Classifier: curated case-insensitive
// keyword matching. It is stateless and safe for concurrent use.
type KeywordClassifier struct{}

// NewKeywordClassifier returns the default keyword-matching classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// ClassifyBaitPresence extracts the bait-presence level. A bait species name
// must match before intensity modifiers apply; intensity then escalates or
// demotes the category. The top category sets the override flag.
func (c *KeywordClassifier) ClassifyBaitPresence(text string) BaitSignal {
	lower := strings.ToLower(text)

	species := matchAny(lower, baitSpeciesKeywords)
	if len(species) == 0 {
		sig := BaitSignal{Level: types.BaitNone}
		sig.Score = baitLevelScores[sig.Level]
		return sig
	}

	sig := BaitSignal{Level: types.BaitPresent, Matched: species}

	if massive := matchAny(lower, baitMassiveKeywords); len(massive) > 0 {
		sig.Level = types.BaitMassive
		sig.Override = true
		sig.Matched = append(sig.Matched, massive...)
	} else if abundant := matchAny(lower, baitAbundantKeywords); len(abundant) > 0 {
		sig.Level = types.BaitAbundant
		sig.Matched = append(sig.Matched, abundant...)
	} else if scattered := matchAny(lower, baitScatteredKeywords); len(scattered) > 0 {
		sig.Level = types.BaitScattered
		sig.Matched = append(sig.Matched, scattered...)
	}

	sig.Score = baitLevelScores[sig.Level]
	return sig
}

// DetectPredator extracts apex-predator presence. Apex sightings are
// confirmed-level; nuisance predators alone are suspected-level; shutdown
// phrasing escalates to confirmed even without a named predator.
func (c *KeywordClassifier) DetectPredator(text string) PredatorSignal {
	lower := strings.ToLower(text)

	sig := PredatorSignal{Level: types.PredatorNone}

	if apex := matchAny(lower, predatorKeywords); len(apex) > 0 {
		sig.Level = types.PredatorConfirmed
		sig.Matched = apex
	} else if minor := matchAny(lower, predatorMinorKeywords); len(minor) > 0 {
		sig.Level = types.PredatorSuspected
		sig.Matched = minor
	}

	if shut := matchAny(lower, shutdownKeywords); len(shut) > 0 {
		sig.Level = types.PredatorConfirmed
		sig.Shutdown = true
		sig.Matched = append(sig.Matched, shut...)
	}

	sig.Suppression = predatorSuppression[sig.Level]
	return sig
}

// AssessRunStrength extracts the run-strength signal. Strong beats moderate
// beats weak when phrases conflict: anglers undersell more than they oversell.
func (c *KeywordClassifier) AssessRunStrength(text string) RunSignal {
	lower := strings.ToLower(text)

	sig := RunSignal{Strength: types.RunUnknown}

	if strong := matchAny(lower, runStrongKeywords); len(strong) > 0 {
		sig.Strength = types.RunStrong
		sig.Matched = strong
	} else if moderate := matchAny(lower, runModerateKeywords); len(moderate) > 0 {
		sig.Strength = types.RunModerate
		sig.Matched = moderate
	} else if weak := matchAny(lower, runWeakKeywords); len(weak) > 0 {
		sig.Strength = types.RunWeak
		sig.Matched = weak
	}

	sig.Score = runStrengthScores[sig.Strength]
	return sig
}

// matchAny returns the keywords present in lower-cased text, in set order.
func matchAny(lower string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}
