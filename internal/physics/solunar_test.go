package physics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolunar_Deterministic(t *testing.T) {
	ts := time.Date(2025, 8, 14, 6, 30, 0, 0, time.UTC)
	a := Solunar(ts)
	b := Solunar(ts)
	assert.Equal(t, a, b)
}

func TestSolunar_BoundsOverFullDay(t *testing.T) {
	// Scan a whole day at 10-minute resolution: scores stay in [0,1], the
	// lunar age stays on the synodic circle, and at least one major period
	// center is visible during the day.
	day := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)

	sawMajor := false
	for m := 0; m < 24*60; m += 10 {
		res := Solunar(day.Add(time.Duration(m) * time.Minute))
		require.GreaterOrEqual(t, res.Score, 0.0)
		require.LessOrEqual(t, res.Score, 1.0)
		require.GreaterOrEqual(t, res.MoonAgeDays, 0.0)
		require.Less(t, res.MoonAgeDays, synodicMonthDays)
		require.LessOrEqual(t, res.MinutesToMajor, 721.0)
		if res.Label == "major_period" {
			sawMajor = true
		}
	}
	assert.True(t, sawMajor, "expected at least one major period in a day")
}

func TestSolunar_ScoreRisesTowardMajorCenter(t *testing.T) {
	// Walk toward the nearest major center: the score at the center must be
	// at least the score 3 hours away from it.
	day := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	var center time.Time
	best := -1.0
	for m := 0; m < 24*60; m += 5 {
		ts := day.Add(time.Duration(m) * time.Minute)
		if res := Solunar(ts); res.Score > best {
			best = res.Score
			center = ts
		}
	}

	off := Solunar(center.Add(3 * time.Hour))
	assert.GreaterOrEqual(t, best, off.Score)
}

func TestSolunar_PreEpochTimestampsWrap(t *testing.T) {
	res := Solunar(time.Date(1999, 6, 1, 12, 0, 0, 0, time.UTC))
	assert.GreaterOrEqual(t, res.MoonAgeDays, 0.0)
	assert.Less(t, res.MoonAgeDays, synodicMonthDays)
}
