package species

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fishcast/internal/types"
)

func TestLoad_AllSpeciesPresent(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	names := reg.Names()
	assert.Equal(t, []types.Species{
		types.SpeciesChinook,
		types.SpeciesCoho,
		types.SpeciesHalibut,
		types.SpeciesLingcod,
		types.SpeciesPink,
	}, names)

	for _, sp := range names {
		spec, ok := reg.Get(sp)
		require.True(t, ok)
		assert.NotEmpty(t, spec.Description)
		assert.Greater(t, spec.UnsafeCeiling, 0.0)
	}
}

func TestLoad_WeightClosureOnEveryProfile(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	for _, spec := range reg.All() {
		for _, e := range spec.Schedule.Entries {
			assert.NoErrorf(t, e.Profile.ValidateWeights(), "%s/%s", spec.Species, e.Profile.Mode)
		}
		assert.NoErrorf(t, spec.Schedule.OffSeason.ValidateWeights(), "%s/off_season", spec.Species)
	}
}

func TestLoad_EveryWeightedFactorIsWired(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	for _, spec := range reg.All() {
		for _, e := range spec.Schedule.Entries {
			for name := range e.Profile.Weights {
				_, ok := spec.Factors[name]
				assert.Truef(t, ok, "%s/%s: factor %q has no calculator", spec.Species, e.Profile.Mode, name)
			}
		}
	}
}

func TestRegistry_GetUnknownSpecies(t *testing.T) {
	reg, err := Load()
	require.NoError(t, err)

	_, ok := reg.Get(types.Species("kraken"))
	assert.False(t, ok)
}
