package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriftHolding_CalmHoldsEasily(t *testing.T) {
	res := DriftHolding(5, 0, 0.2, 90)

	assert.True(t, res.CanHold)
	assert.Equal(t, "holds_easily", res.Label)
	assert.Equal(t, 1.0, res.Score)
}

func TestDriftHolding_AboveCeilingCannotHold(t *testing.T) {
	// 2.5 kt of current alone exceeds the hold ceiling.
	res := DriftHolding(0, 0, 2.5, 0)

	assert.False(t, res.CanHold)
	assert.LessOrEqual(t, res.Score, 0.1)
	assert.Equal(t, "cannot_hold", res.Label)
	assert.NotEmpty(t, res.Warning)
}

func TestDriftHolding_OpposedVectorsPartiallyCancel(t *testing.T) {
	// Wind drift pushing against the current reduces the resultant.
	// Wind from 0 pushes the boat toward 180; current sets toward 0.
	opposed := DriftHolding(30, 0, 1.2, 0)
	aligned := DriftHolding(30, 180, 1.2, 0)

	assert.Less(t, opposed.ResultantKts, aligned.ResultantKts)
	assert.Greater(t, opposed.Score, aligned.Score)
}

func TestDriftHolding_ResultantMagnitude(t *testing.T) {
	// 20 kt wind from the north, no current: drift = 0.7 kt due south.
	res := DriftHolding(20, 0, 0, 0)
	assert.InDelta(t, 0.7, res.ResultantKts, 0.01)
}
