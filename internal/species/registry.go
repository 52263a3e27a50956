package species

import (
	"fmt"
	"sort"

	"fishcast/internal/engine"
	"fishcast/internal/season"
	"fishcast/internal/types"
)

// Registry holds the built spec for every supported species. It is assembled
// once at startup and read-only afterwards.
type Registry struct {
	specs map[types.Species]*engine.Spec
}

// builders wires each species to its spec constructor.
var builders = map[types.Species]func(season.Schedule) *engine.Spec{
	types.SpeciesChinook: newChinookSpec,
	types.SpeciesCoho:    newCohoSpec,
	types.SpeciesPink:    newPinkSpec,
	types.SpeciesLingcod: newLingcodSpec,
	types.SpeciesHalibut: newHalibutSpec,
}

// Load parses the embedded profiles, validates them, and builds the spec for
// every species. Any inconsistency (missing schedule, weight-closure failure,
// weight with no wired calculator) fails loudly: a registry that loads is a
// registry that scores.
func Load() (*Registry, error) {
	schedules, err := loadSchedules()
	if err != nil {
		return nil, err
	}

	specs := make(map[types.Species]*engine.Spec, len(builders))
	for sp, build := range builders {
		schedule, ok := schedules[sp]
		if !ok {
			return nil, fmt.Errorf("species: no schedule configured for %s", sp)
		}
		spec := build(schedule)
		if err := checkFactorWiring(spec); err != nil {
			return nil, err
		}
		specs[sp] = spec
	}

	return &Registry{specs: specs}, nil
}

// checkFactorWiring verifies that every weighted factor name in every profile
// has a wired calculator, and that modifier names are unique.
func checkFactorWiring(spec *engine.Spec) error {
	check := func(p types.SeasonalProfile) error {
		for name := range p.Weights {
			if _, ok := spec.Factors[name]; !ok {
				return fmt.Errorf("species: %s: profile %q weights %q but no calculator is wired",
					spec.Species, p.Mode, name)
			}
		}
		return nil
	}

	for _, e := range spec.Schedule.Entries {
		if err := check(e.Profile); err != nil {
			return err
		}
	}
	if err := check(spec.Schedule.OffSeason); err != nil {
		return err
	}

	seen := map[string]bool{}
	for _, m := range spec.Modifiers {
		if seen[m.Name] {
			return fmt.Errorf("species: %s: duplicate modifier %q", spec.Species, m.Name)
		}
		seen[m.Name] = true
	}
	return nil
}

// Get returns the spec for a species, or ok=false for an unknown name.
func (r *Registry) Get(sp types.Species) (*engine.Spec, bool) {
	spec, ok := r.specs[sp]
	return spec, ok
}

// All returns every spec, ordered by species name for stable iteration.
func (r *Registry) All() []*engine.Spec {
	out := make([]*engine.Spec, 0, len(r.specs))
	for _, spec := range r.specs {
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Species < out[j].Species })
	return out
}

// Names returns the supported species names, sorted.
func (r *Registry) Names() []types.Species {
	out := make([]types.Species, 0, len(r.specs))
	for sp := range r.specs {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
