package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngularDiff_Wraparound(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"identical", 90, 90, 0},
		{"simple", 0, 90, 90},
		{"wrap at north", 350, 10, 20},
		{"opposite", 0, 180, 180},
		{"negative input", -10, 10, 20},
		{"over 360", 370, 350, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AngularDiff(tt.a, tt.b), 1e-9)
		})
	}
}

func TestWindCurrent_OpposingHighEnergy(t *testing.T) {
	// 25 kt wind directly opposing a 2 kt current: washing machine.
	res := WindCurrent(25, 180, 2, 0)

	require.True(t, res.IsOpposing)
	assert.LessOrEqual(t, res.Score, 0.2)
	assert.Equal(t, "wind_against_tide", res.Label)
	assert.NotEmpty(t, res.Warning)
}

func TestWindCurrent_OpposingGentle(t *testing.T) {
	res := WindCurrent(5, 0, 1, 180)

	require.True(t, res.IsOpposing)
	assert.Empty(t, res.Warning)
	assert.Greater(t, res.Score, 0.2)
}

func TestWindCurrent_AlignedModerate(t *testing.T) {
	res := WindCurrent(10, 45, 1.5, 45)

	assert.False(t, res.IsOpposing)
	assert.GreaterOrEqual(t, res.Score, 0.9)
	assert.Equal(t, "aligned_favorable", res.Label)
	assert.Empty(t, res.Warning)
}

func TestWindCurrent_OpposingMonotonicity(t *testing.T) {
	// Increasing opposing wind speed must never increase the score.
	prev := 2.0
	for wind := 0.0; wind <= 50; wind += 1 {
		res := WindCurrent(wind, 0, 2, 180)
		require.LessOrEqualf(t, res.Score, prev, "score rose at wind=%.0f", wind)
		prev = res.Score
	}
}

func TestWindCurrent_NegativeSpeedsClamp(t *testing.T) {
	res := WindCurrent(-5, 0, -1, 0)
	calm := WindCurrent(0, 0, 0, 0)
	assert.Equal(t, calm.Score, res.Score)
}
