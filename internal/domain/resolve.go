package domain

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
)

// ResolveParameters normalizes a raw request into a complete parameter set,
// applying per-field defaults and, when a neo_id is present, overwriting the
// diameter with the catalog's maximum estimated diameter. Lookup failures
// degrade silently: the request proceeds with whatever diameter was already
// resolved.
func ResolveParameters(ctx context.Context, req SimulationRequest, catalog NeoCatalog, logger *slog.Logger) ImpactParameters {
	params := ImpactParameters{
		DiameterM:    parseFloatOrDefault(req.DiameterM, DefaultDiameterM),
		VelocityMS:   parseFloatOrDefault(req.VelocityMS, DefaultVelocityMS),
		Density:      parseFloatOrDefault(req.Density, DefaultDensity),
		DeflectionMS: parseFloatOrDefault(req.DeflectionMS, DefaultDeflectionMS),
		WaterDepthM:  parseFloatOrDefault(req.WaterDepthM, DefaultWaterDepthM),
		ImpactLat:    parseOptionalFloat(req.ImpactLat),
		ImpactLon:    parseOptionalFloat(req.ImpactLon),
	}

	if req.NeoID == "" || catalog == nil {
		return params
	}

	obj, err := catalog.Lookup(ctx, req.NeoID)
	if err != nil {
		logger.Warn("neo lookup failed, keeping resolved diameter",
			"neo_id", req.NeoID,
			"outcome", NeoLookupOutcome(err),
			"diameter_m", params.DiameterM,
			"error", err,
		)
		return params
	}

	// The catalog diameter takes precedence over any client-supplied value.
	params.DiameterM = obj.MaxDiameterM
	return params
}

// parseFloatOrDefault coerces a raw JSON value to float64, returning def when
// the value is absent, null, or not readable as a number.
func parseFloatOrDefault(raw json.RawMessage, def float64) float64 {
	v, ok := parseFloat(raw)
	if !ok {
		return def
	}
	return v
}

// parseOptionalFloat coerces an optional coordinate, returning nil when the
// value is absent or unreadable.
func parseOptionalFloat(raw json.RawMessage) *float64 {
	v, ok := parseFloat(raw)
	if !ok {
		return nil
	}
	return &v
}

// parseFloat reads a JSON number or a numeric string. Range validation is
// deliberately absent: negative and zero values pass through.
func parseFloat(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
