package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlackProximity(t *testing.T) {
	tests := []struct {
		name    string
		minutes float64
		minWant float64
		maxWant float64
		label   string
	}{
		{"at slack", 0, 1.0, 1.0, "at_slack"},
		{"ten minutes out", 10, 0.9, 1.0, "at_slack"},
		{"half hour out", 30, 0.7, 0.8, "approaching_slack"},
		{"two hours out", 120, 0.2, 0.3, "mid_exchange"},
		{"four hours out", 240, 0.13, 0.2, "far_from_slack"},
		{"negative treated as at slack", -5, 1.0, 1.0, "at_slack"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, label := SlackProximity(tt.minutes)
			assert.GreaterOrEqual(t, score, tt.minWant)
			assert.LessOrEqual(t, score, tt.maxWant)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestTrollability_PrimeWindow(t *testing.T) {
	// A 12 ft exchange 20 minutes from slack is the prime window, not a
	// penalty. The non-monotonic exception must hold.
	res := Trollability(12, 20, 2.5)

	assert.True(t, res.PrimeWindow)
	assert.Equal(t, 1.0, res.Score)
	assert.Equal(t, "prime_time", res.Label)
}

func TestTrollability_HeavyBlowbackFarFromSlack(t *testing.T) {
	res := Trollability(12, 180, 3.0)

	assert.False(t, res.PrimeWindow)
	assert.Less(t, res.Score, 0.35)
	assert.Equal(t, "heavy_blowback", res.Label)
	assert.InDelta(t, 45, res.BlowbackPct, 1)
	assert.Contains(t, res.Advice, "blowback")
}

func TestTrollability_SameExchangeBetterAtSlack(t *testing.T) {
	// The identical big exchange scores strictly higher inside the slack
	// window than mid-exchange.
	atSlack := Trollability(11, 10, 2)
	midExchange := Trollability(11, 150, 2)

	assert.Greater(t, atSlack.Score, midExchange.Score)
}

func TestTrollability_SmallExchange(t *testing.T) {
	res := Trollability(3, 200, 0.4)
	assert.Equal(t, "small_exchange", res.Label)
	assert.Equal(t, 0.7, res.Score)
}
