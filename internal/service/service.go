// Package service orchestrates the per-request flow: parameter resolution,
// physics computation, narrative rendering, and best-effort persistence.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/impact-effects-service/internal/domain"
	"github.com/couchcryptid/impact-effects-service/internal/observability"
)

// Sentinel errors the HTTP layer maps onto status codes.
var (
	ErrBadPayload     = errors.New("request body is not valid JSON")
	ErrSavingDisabled = errors.New("record persistence is not enabled")
)

// Service wires the domain core to its collaborators. Both collaborators are
// optional: a nil catalog disables enrichment, a nil store disables saving.
type Service struct {
	catalog   domain.NeoCatalog
	store     domain.RecordStore
	keyPrefix string
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Service.
func New(catalog domain.NeoCatalog, store domain.RecordStore, keyPrefix string, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		catalog:   catalog,
		store:     store,
		keyPrefix: keyPrefix,
		logger:    logger,
		metrics:   metrics,
	}
}

// Simulate resolves the raw request into a complete parameter set and
// computes the derived impact effects. Enrichment failures never surface
// here; the resolver degrades to the already-resolved diameter.
func (s *Service) Simulate(ctx context.Context, req domain.SimulationRequest) domain.SimulationResponse {
	params := domain.ResolveParameters(ctx, req, s.catalog, s.logger)
	results := domain.ComputeImpact(params)

	return domain.SimulationResponse{
		Input:   params,
		Results: results,
		Notes:   domain.SimulationNotes,
	}
}

// storyEnvelope is the accepted story body: either a full simulate response
// or a bare results object. Coordinates come only from the input wrapper.
type storyEnvelope struct {
	Input *struct {
		ImpactLat *float64 `json:"impact_lat"`
		ImpactLon *float64 `json:"impact_lon"`
	} `json:"input"`
	Results *domain.ImpactResults `json:"results"`
}

// Story renders the narrative for a simulate envelope or a bare results
// object. Returns ErrBadPayload when the body is not a JSON object.
func (s *Service) Story(body []byte) (string, error) {
	var env storyEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	var results domain.ImpactResults
	if env.Results != nil {
		results = *env.Results
	} else if err := json.Unmarshal(body, &results); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	var lat, lon *float64
	if env.Input != nil {
		lat, lon = env.Input.ImpactLat, env.Input.ImpactLon
	}
	return domain.RenderStory(results, lat, lon), nil
}

// Save persists the verbatim payload under a generated key. The payload must
// be valid JSON; beyond that it is opaque.
func (s *Service) Save(ctx context.Context, body []byte) (string, error) {
	if s.store == nil {
		return "", ErrSavingDisabled
	}
	if !json.Valid(body) {
		return "", ErrBadPayload
	}

	key := domain.NewRecordKey(s.keyPrefix)
	if err := s.store.Save(ctx, key, body, "application/json"); err != nil {
		s.metrics.RecordSaveErrors.Inc()
		return "", fmt.Errorf("save record: %w", err)
	}

	s.metrics.RecordsSaved.Inc()
	s.logger.Info("record saved", "key", key, "bytes", len(body))
	return key, nil
}

// CheckReadiness reports whether the collaborators needed to serve traffic
// are reachable. The physics core has no dependencies; only the record store
// is pinged, and only when saving is enabled.
func (s *Service) CheckReadiness(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Ping(ctx)
}
