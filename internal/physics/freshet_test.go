package physics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fishcast/internal/types"
)

func TestFreshet(t *testing.T) {
	tests := []struct {
		name       string
		precipMM   float64
		maxTempC   float64
		month      time.Month
		clarity    types.WaterClarity
		multiplier float64
	}{
		{"dry and cool", 0, 12, time.February, types.ClarityClear, 1.0},
		{"light rain", 5, 12, time.October, types.ClarityClear, 1.0},
		{"moderate rain", 15, 10, time.November, types.ClarityStained, 0.8},
		{"heavy rain no melt", 30, 8, time.December, types.ClarityMurky, 0.5},
		{"heavy rain plus snowmelt", 30, 24, time.June, types.ClarityBlownOut, 0.3},
		{"warm melt window no rain", 0, 25, time.May, types.ClarityStained, 0.8},
		{"warm outside melt window", 0, 25, time.September, types.ClarityClear, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Freshet(tt.precipMM, tt.maxTempC, tt.month)
			assert.Equal(t, tt.clarity, res.Clarity)
			assert.InDelta(t, tt.multiplier, res.VisualFeedMultiplier, 1e-9)
		})
	}
}

func TestFreshet_BlownOutIsWorstCase(t *testing.T) {
	blown := Freshet(40, 25, time.June)
	murky := Freshet(40, 5, time.June)

	assert.True(t, blown.SnowmeltLikely)
	assert.Less(t, blown.Score, murky.Score)
	assert.Less(t, blown.VisualFeedMultiplier, murky.VisualFeedMultiplier)
}

func TestFreshet_NegativePrecipClamps(t *testing.T) {
	res := Freshet(-10, 10, time.January)
	assert.Equal(t, types.ClarityClear, res.Clarity)
	assert.Equal(t, 1.0, res.Score)
}
