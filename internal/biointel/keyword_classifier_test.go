package biointel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fishcast/internal/types"
)

func TestClassifyBaitPresence(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name     string
		text     string
		level    types.BaitLevel
		override bool
	}{
		{"empty text is no signal", "", types.BaitNone, false},
		{"no bait mention", "flat calm out there, nobody around", types.BaitNone, false},
		{"plain mention", "marked some herring near the point", types.BaitPresent, false},
		{"massive with override", "herring balls everywhere", types.BaitMassive, true},
		{"intensity without species ignored", "massive crowds everywhere", types.BaitNone, false},
		{"abundant", "lots of candlefish on the flats", types.BaitAbundant, false},
		{"scattered", "scattered bait, spotty marks", types.BaitScattered, false},
		{"case insensitive", "HERRING BOILING on the surface", types.BaitMassive, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := c.ClassifyBaitPresence(tt.text)
			assert.Equal(t, tt.level, sig.Level)
			assert.Equal(t, tt.override, sig.Override)
		})
	}
}

func TestClassifyBaitPresence_ScoresAreMonotonic(t *testing.T) {
	c := NewKeywordClassifier()

	none := c.ClassifyBaitPresence("")
	scattered := c.ClassifyBaitPresence("scattered herring")
	present := c.ClassifyBaitPresence("some herring around")
	abundant := c.ClassifyBaitPresence("lots of herring")
	massive := c.ClassifyBaitPresence("herring balls everywhere")

	require.Less(t, none.Score, scattered.Score)
	require.Less(t, scattered.Score, present.Score)
	require.Less(t, present.Score, abundant.Score)
	require.Less(t, abundant.Score, massive.Score)
	assert.Equal(t, 1.0, massive.Score)
}

func TestDetectPredator(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name     string
		text     string
		level    types.PredatorLevel
		shutdown bool
	}{
		{"empty", "", types.PredatorNone, false},
		{"orcas confirmed", "pod of orcas moved through around noon", types.PredatorConfirmed, false},
		{"seals suspected", "seals working the creek mouth", types.PredatorSuspected, false},
		{"shutdown phrase alone", "bite died completely after 9", types.PredatorConfirmed, true},
		{"killer whale phrase", "Killer Whales off the lighthouse, shut it down", types.PredatorConfirmed, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := c.DetectPredator(tt.text)
			assert.Equal(t, tt.level, sig.Level)
			assert.Equal(t, tt.shutdown, sig.Shutdown)
		})
	}
}

func TestDetectPredator_SuppressionMapping(t *testing.T) {
	c := NewKeywordClassifier()

	assert.Equal(t, 1.0, c.DetectPredator("").Suppression)
	assert.Equal(t, 0.7, c.DetectPredator("seal on the haulout").Suppression)
	assert.Equal(t, 0.3, c.DetectPredator("orcas in the pass").Suppression)
}

func TestAssessRunStrength(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name     string
		text     string
		strength types.RunStrength
	}{
		{"empty is unknown", "", types.RunUnknown},
		{"strong", "wide open bite, everyone got limits", types.RunStrong},
		{"moderate", "steady picking away all morning", types.RunModerate},
		{"weak", "slow day, mostly skunked", types.RunWeak},
		{"strong wins over weak", "slow start then it went wide open", types.RunStrong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.strength, c.AssessRunStrength(tt.text).Strength)
		})
	}
}

func TestClassifier_Deterministic(t *testing.T) {
	c := NewKeywordClassifier()
	text := "herring balls everywhere, orcas in the pass, wide open until the seals showed"

	assert.Equal(t, c.ClassifyBaitPresence(text), c.ClassifyBaitPresence(text))
	assert.Equal(t, c.DetectPredator(text), c.DetectPredator(text))
	assert.Equal(t, c.AssessRunStrength(text), c.AssessRunStrength(text))
}
