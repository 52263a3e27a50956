// Package batch evaluates one EnvironmentalContext against many species
// specs as a fork-join. Every per-species scoring call is independent and
// side-effect-free, so the fan-out needs no coordination beyond the group
// itself.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fishcast/internal/engine"
	"fishcast/internal/types"
)

// Evaluator fans one context out across species specs.
type Evaluator struct {
	Engine *engine.Engine

	// MaxParallel bounds concurrent evaluations; zero or negative means one
	// goroutine per spec.
	MaxParallel int
}

// Evaluate scores every spec against the context in parallel and returns the
// results keyed by species. Scoring calls cannot fail, so the only error is
// context cancellation between evaluations.
func (e *Evaluator) Evaluate(ctx context.Context, specs []*engine.Spec, ectx *types.EnvironmentalContext) (map[types.Species]types.ScoreResult, error) {
	results := make([]types.ScoreResult, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	if e.MaxParallel > 0 {
		g.SetLimit(e.MaxParallel)
	}

	for i, spec := range specs {
		i, spec := i, spec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.Engine.Score(spec, ectx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[types.Species]types.ScoreResult, len(results))
	for _, r := range results {
		out[r.Species] = r
	}
	return out, nil
}
