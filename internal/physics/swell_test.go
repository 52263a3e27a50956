package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwellComfort_LongGentle(t *testing.T) {
	// 14s period at 1.0m: classic rolling groundswell.
	res := SwellComfort(1.0, 14)

	assert.Equal(t, 1.0, res.Score)
	assert.Equal(t, "long_gentle_swell", res.Label)
	assert.Empty(t, res.Warning)
}

func TestSwellComfort_SteepBreaking(t *testing.T) {
	// 5s at 1.0m is ratio 5: steep wind swell that breaks.
	res := SwellComfort(1.0, 5)

	assert.LessOrEqual(t, res.Score, 0.1)
	assert.Equal(t, "steep_breaking_swell", res.Label)
	assert.NotEmpty(t, res.Warning)
}

func TestSwellComfort_HeightCeilingIndependentOfRatio(t *testing.T) {
	// 3.0m at 40s would be ratio 13.3 (gentle), but the absolute height
	// ceiling must cap the score regardless.
	res := SwellComfort(3.0, 40)

	assert.LessOrEqual(t, res.Score, 0.15)
	assert.Equal(t, "excessive_height", res.Label)
	assert.NotEmpty(t, res.Warning)
}

func TestSwellComfort_Flat(t *testing.T) {
	res := SwellComfort(0, 0)
	assert.Equal(t, 1.0, res.Score)
	assert.Equal(t, "flat", res.Label)
}

func TestSwellComfort_HeightMonotonicityPastDanger(t *testing.T) {
	// Increasing height beyond the danger ceiling never increases the score.
	prev := 2.0
	for h := 2.5; h <= 8; h += 0.5 {
		res := SwellComfort(h, 10)
		require.LessOrEqualf(t, res.Score, prev, "score rose at height=%.1f", h)
		prev = res.Score
	}
}

func TestSwellComfort_NegativeInputsClamp(t *testing.T) {
	res := SwellComfort(-1, -5)
	assert.Equal(t, "flat", res.Label)
}
