package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTempSuitability(t *testing.T) {
	tests := []struct {
		name  string
		temp  float64
		score float64
		label string
	}{
		{"in band", 11, 1.0, "optimal_temp"},
		{"two degrees cold", 7, 0.76, "cold_water"},
		{"two degrees warm", 16, 0.76, "warm_water"},
		{"far outside floors", 30, 0.1, "warm_water"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := TempSuitability(tt.temp, 9, 14)
			assert.InDelta(t, tt.score, res.Score, 1e-9)
			assert.Equal(t, tt.label, res.Label)
		})
	}
}

func TestTempSuitability_SwappedBounds(t *testing.T) {
	res := TempSuitability(11, 14, 9)
	assert.Equal(t, 1.0, res.Score)
}
