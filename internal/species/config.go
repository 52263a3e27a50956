// Package species assembles the per-species scoring specs: declarative
// weight tables and seasonal schedules from embedded YAML, plus the Go-side
// wiring of context fields to physics primitives, ordered modifiers, safety
// rules and gatekeepers. Each species file is a thin composition layer over
// the generic pipeline in internal/engine.
package species

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"fishcast/internal/season"
	"fishcast/internal/types"
)

//go:embed profiles.yaml
var profilesYAML []byte

// loadSchedules parses the embedded profile configuration and validates
// weight closure for every profile it contains.
func loadSchedules() (map[types.Species]season.Schedule, error) {
	var raw map[types.Species]season.Schedule
	if err := yaml.Unmarshal(profilesYAML, &raw); err != nil {
		return nil, fmt.Errorf("species: parse profiles: %w", err)
	}

	for sp, schedule := range raw {
		if len(schedule.Entries) == 0 {
			return nil, fmt.Errorf("species: %s: no schedule entries", sp)
		}
		if err := schedule.Validate(); err != nil {
			return nil, fmt.Errorf("species: %s: %w", sp, err)
		}
	}
	return raw, nil
}
