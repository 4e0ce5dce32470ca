package domain

import "encoding/json"

// Defaults substituted for request fields that are absent, null, or not
// readable as a number.
const (
	DefaultDiameterM    = 50.0
	DefaultVelocityMS   = 20000.0
	DefaultDensity      = 3000.0
	DefaultDeflectionMS = 0.0
	DefaultWaterDepthM  = 4000.0
)

// SimulationNotes is the fixed advisory attached to every simulation response.
const SimulationNotes = "All estimates are rough heuristics for demo/educational purposes."

// SimulationRequest is the wire form of a simulation request. Numeric fields
// stay raw so each one is coerced independently: one malformed field falls
// back to its default instead of rejecting the whole request.
type SimulationRequest struct {
	DiameterM    json.RawMessage `json:"diameter_m"`
	VelocityMS   json.RawMessage `json:"velocity_m_s"`
	Density      json.RawMessage `json:"density"`
	DeflectionMS json.RawMessage `json:"deflection_m_s"`
	WaterDepthM  json.RawMessage `json:"water_depth_m"`
	ImpactLat    json.RawMessage `json:"impact_lat"`
	ImpactLon    json.RawMessage `json:"impact_lon"`
	NeoID        string          `json:"neo_id"`
}

// ImpactParameters is the fully resolved input set, echoed back to clients
// alongside the results. Coordinates are pointers so absent values render as
// JSON null rather than a fabricated zero position.
type ImpactParameters struct {
	DiameterM    float64  `json:"diameter_m"`
	VelocityMS   float64  `json:"velocity_m_s"`
	Density      float64  `json:"density"`
	DeflectionMS float64  `json:"deflection_m_s"`
	ImpactLat    *float64 `json:"impact_lat"`
	ImpactLon    *float64 `json:"impact_lon"`
	WaterDepthM  float64  `json:"water_depth_m"`
}

// EffectiveVelocityMS returns the impact velocity remaining after the
// deflection burn, floored at zero.
func (p ImpactParameters) EffectiveVelocityMS() float64 {
	v := p.VelocityMS - p.DeflectionMS
	if v < 0 {
		return 0
	}
	return v
}

// ImpactResults holds the derived impact-effect estimates. A value is
// computed fresh per request and never mutated after construction.
type ImpactResults struct {
	MassKg                float64 `json:"mass_kg"`
	EnergyJoules          float64 `json:"energy_joules"`
	TNTMegatons           float64 `json:"tnt_megatons"`
	CraterDiameterM       float64 `json:"crater_diameter_m"`
	SeismicMwEquivalent   float64 `json:"seismic_mw_equivalent"`
	TsunamiInitialHeightM float64 `json:"tsunami_initial_height_m"`
	TsunamiRadiusKm       float64 `json:"tsunami_radius_km"`
}

// SimulationResponse is the envelope returned by the simulate operation.
type SimulationResponse struct {
	Input   ImpactParameters `json:"input"`
	Results ImpactResults    `json:"results"`
	Notes   string           `json:"notes"`
}
