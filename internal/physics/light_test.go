package physics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSunElevation(t *testing.T) {
	sunrise := time.Date(2025, 7, 10, 5, 30, 0, 0, time.UTC)
	sunset := time.Date(2025, 7, 10, 21, 0, 0, 0, time.UTC)

	t.Run("noon peaks", func(t *testing.T) {
		noon := sunrise.Add(sunset.Sub(sunrise) / 2)
		elev := SunElevation(noon, sunrise, sunset, 47.6)
		assert.InDelta(t, 90-47.6, elev, 0.5)
	})

	t.Run("sunrise is zero", func(t *testing.T) {
		elev := SunElevation(sunrise, sunrise, sunset, 47.6)
		assert.InDelta(t, 0, elev, 0.5)
	})

	t.Run("pre-dawn is negative", func(t *testing.T) {
		elev := SunElevation(sunrise.Add(-time.Hour), sunrise, sunset, 47.6)
		assert.Less(t, elev, 0.0)
	})

	t.Run("unusable solar data defaults to mid-morning", func(t *testing.T) {
		elev := SunElevation(sunrise, time.Time{}, time.Time{}, 47.6)
		assert.Equal(t, 25.0, elev)
	})
}

func TestLightPenetration(t *testing.T) {
	tests := []struct {
		name     string
		elev     float64
		cloudPct float64
		score    float64
		label    string
	}{
		{"dawn is prime", 2, 0, 1.0, "low_light_prime"},
		{"night", -20, 0, 0.35, "night"},
		{"high sun clear", 60, 0, 0.35, "high_sun"},
		{"high sun full overcast drops a band", 60, 100, 0.55, "midday_moderate"},
		{"morning", 12, 0, 0.8, "morning_evening"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := LightPenetration(tt.elev, tt.cloudPct)
			assert.InDelta(t, tt.score, res.Score, 1e-9)
			assert.Equal(t, tt.label, res.Label)
			assert.Contains(t, res.Advice, "ft")
		})
	}
}

func TestLightPenetration_DawnDuskAlwaysHighest(t *testing.T) {
	dawn := LightPenetration(2, 0)
	for _, elev := range []float64{10, 25, 45, 70} {
		assert.Less(t, LightPenetration(elev, 0).Score, dawn.Score)
	}
}

func TestLightPenetration_CloudClampsTo100(t *testing.T) {
	over := LightPenetration(60, 250)
	full := LightPenetration(60, 100)
	assert.Equal(t, full.Score, over.Score)
}
