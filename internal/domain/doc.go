// Package domain models asteroid impact-effect estimation.
//
// # Physics Heuristics
//
// All derived quantities are closed-form heuristics intended for
// demonstration and education, not survey-grade predictions:
//
//	Mass:              solid-sphere approximation, (4/3)·π·(D/2)³·ρ
//	Kinetic energy:    0.5·m·v², with v the velocity remaining after any
//	                   deflection burn (floored at zero)
//	TNT equivalent:    E / 4.184e15 J per megaton
//	Crater diameter:   0.07·E^(1/3), a cube-root energy scaling law
//	Seismic magnitude: (log10(E) − 5.24) / 1.44, zero for non-positive E
//	Tsunami height:    0.5·(E/1e15)^0.25 scaled by a water-depth factor,
//	                   hard-clamped to [0.01 m, 200 m]
//	Tsunami radius:    100·tnt^0.25 km with the megaton base floored at
//	                   0.001, capped at 5000 km
//
// The engine is total over finite inputs: degenerate values (zero diameter,
// negative density supplied by a caller that bypasses request defaulting)
// flow through the formulas rather than raising. Negative energies are legal
// pass-through values; only the logarithm and the clamped formulas guard
// their own domains.
//
// # Parameter Defaulting
//
// Request fields are coerced permissively and independently: a field that is
// absent, null, or unreadable as a number falls back to its documented
// default (50 m diameter, 20 km/s velocity, 3000 kg/m³ density, 0 m/s
// deflection, 4000 m water depth). No field is required and no range
// validation is applied. Impact coordinates are display metadata and pass
// through untouched.
//
// # NEO Enrichment
//
// A request carrying a neo_id is enriched through the NASA NeoWs catalog:
// the object's maximum estimated diameter in meters replaces the requested
// diameter. Enrichment is strictly best-effort — any lookup failure keeps
// the diameter that was already resolved and never fails the request. The
// failure variants (not found, transport, decode) exist for logs and
// metrics only; the resolver treats them identically.
//
// # Record Keys
//
// Persisted payloads are keyed as
//
//	<prefix><UTC timestamp>-<8-char random suffix>.json
//
// e.g. "impacts/20260830T151005Z-a1b2c3d4.json". The suffix disambiguates
// requests that land within the same second. Keys are generated with the
// package clock so tests can freeze the timestamp, see [NewRecordKey].
package domain
