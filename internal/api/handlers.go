package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"fishcast/internal/types"
)

// speciesInfo is the public shape for the species catalog endpoint.
type speciesInfo struct {
	Name        types.Species `json:"name"`
	Description string        `json:"description"`
	Modes       []string      `json:"modes"`
}

// HandleListSpecies returns the species catalog with their seasonal modes.
// Mounted at GET /v1/species.
func (s *Server) HandleListSpecies(w http.ResponseWriter, r *http.Request) {
	infos := make([]speciesInfo, 0, len(s.Registry.Names()))
	for _, spec := range s.Registry.All() {
		modes := make([]string, 0, len(spec.Schedule.Entries)+1)
		for _, e := range spec.Schedule.Entries {
			modes = append(modes, e.Profile.Mode)
		}
		modes = append(modes, spec.Schedule.OffSeason.Mode)
		infos = append(infos, speciesInfo{
			Name:        spec.Species,
			Description: spec.Description,
			Modes:       modes,
		})
	}
	writeJSON(w, http.StatusOK, APIResponse{Data: infos})
}

// HandleScoreSpecies evaluates one species against the posted context.
// Mounted at POST /v1/score/{species}.
func (s *Server) HandleScoreSpecies(w http.ResponseWriter, r *http.Request) {
	name := types.Species(chi.URLParam(r, "species"))
	spec, ok := s.Registry.Get(name)
	if !ok {
		s.countOutcome(string(name), "unknown_species")
		writeError(w, r, http.StatusNotFound, codeUnknownSpecies,
			"species is not in the catalog", map[string]string{"species": string(name)})
		return
	}

	ectx, ok := s.decodeContext(w, r, string(name))
	if !ok {
		return
	}

	start := time.Now()
	res := s.Engine.Score(spec, ectx)
	s.observe(res, time.Since(start))

	writeJSON(w, http.StatusOK, APIResponse{Data: res})
}

// HandleScoreAll evaluates every catalog species against the posted context.
// Mounted at POST /v1/score.
func (s *Server) HandleScoreAll(w http.ResponseWriter, r *http.Request) {
	ectx, ok := s.decodeContext(w, r, "all")
	if !ok {
		return
	}

	specs := s.Registry.All()
	start := time.Now()
	results, err := s.Batch.Evaluate(r.Context(), specs, ectx)
	if err != nil {
		s.Logger.ErrorContext(r.Context(), "batch evaluation failed", slog.Any("error", err))
		writeError(w, r, http.StatusInternalServerError, codeInternal,
			"batch evaluation failed", nil)
		return
	}
	elapsed := time.Since(start)

	if s.Metrics != nil {
		s.Metrics.BatchRequests.Inc()
		s.Metrics.BatchDuration.Observe(elapsed.Seconds())
		s.Metrics.BatchBatchSize.Observe(float64(len(specs)))
	}
	perSpecies := elapsed / time.Duration(max(len(specs), 1))
	for _, res := range results {
		s.observe(res, perSpecies)
	}

	writeJSON(w, http.StatusOK, APIResponse{Data: results})
}

// HandleHealth reports liveness. The engine holds no external dependencies,
// so a loaded registry is the only readiness condition. Mounted at GET /health.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"species": len(s.Registry.Names()),
		"version": s.Config.Build.Version,
	})
}

// decodeContext decodes and validates the posted EnvironmentalContext. On
// failure it writes the error response and returns ok=false.
func (s *Server) decodeContext(w http.ResponseWriter, r *http.Request, speciesLabel string) (*types.EnvironmentalContext, bool) {
	var ectx types.EnvironmentalContext
	if err := s.decodeJSON(w, r, &ectx); err != nil {
		s.countOutcome(speciesLabel, "bad_request")
		writeError(w, r, http.StatusBadRequest, codeInvalidJSON, err.Error(), nil)
		return nil, false
	}

	if err := s.Validate.Struct(&ectx); err != nil {
		details := map[string]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				details[fe.Namespace()] = fe.Tag()
			}
		}
		s.countOutcome(speciesLabel, "bad_request")
		writeError(w, r, http.StatusBadRequest, codeValidation,
			"context failed validation", details)
		return nil, false
	}
	return &ectx, true
}

func (s *Server) observe(res types.ScoreResult, elapsed time.Duration) {
	if s.Metrics == nil {
		return
	}
	s.Metrics.ObserveResult(string(res.Species), res.Total, res.IsSafe,
		res.Provenance.Gatekeeper, elapsed.Seconds())
}

func (s *Server) countOutcome(speciesLabel, outcome string) {
	if s.Metrics == nil {
		return
	}
	s.Metrics.ScoreRequests.WithLabelValues(speciesLabel, outcome).Inc()
}
