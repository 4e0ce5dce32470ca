package domain

import "math"

// TNTJoulesPerMegaton is the standard TNT-joule conversion factor.
const TNTJoulesPerMegaton = 4.184e15

// SphereMass returns the mass in kg of a solid sphere of the given diameter
// (m) and bulk density (kg/m³).
func SphereMass(diameterM, density float64) float64 {
	r := diameterM / 2.0
	return (4.0 / 3.0) * math.Pi * r * r * r * density
}

// KineticEnergy returns 0.5·m·v² in joules.
func KineticEnergy(massKg, velocityMS float64) float64 {
	return 0.5 * massKg * velocityMS * velocityMS
}

// TNTEquivalentMegatons converts impact energy in joules to megatons of TNT.
func TNTEquivalentMegatons(energyJ float64) float64 {
	return energyJ / TNTJoulesPerMegaton
}

// CraterDiameter estimates the crater diameter in meters from impact energy
// using a cube-root scaling law.
func CraterDiameter(energyJ float64) float64 {
	return 0.07 * math.Cbrt(energyJ)
}

// SeismicMagnitude maps impact energy to a moment-magnitude-like scalar.
// Non-positive energy yields 0 so the logarithm stays inside its domain.
func SeismicMagnitude(energyJ float64) float64 {
	if energyJ <= 0 {
		return 0
	}
	return (math.Log10(energyJ) - 5.24) / 1.44
}

// TsunamiInitialHeight estimates the initial wave height in meters for an
// impact of the given energy at the given water depth. Shallower water
// amplifies the wave; the depth factor and the final height are both
// hard-clamped.
func TsunamiInitialHeight(energyJ, waterDepthM float64) float64 {
	scale := math.Pow(energyJ/1e15, 0.25)
	depthFactor := clamp(4000.0/math.Max(1.0, waterDepthM), 0.5, 2.0)
	return clamp(0.5*scale*depthFactor, 0.01, 200.0)
}

// TsunamiRadius estimates the radius of coastal effects in km from the TNT
// equivalent. The megaton base is floored at 0.001 so near-zero or negative
// yields never feed a fractional power; the radius is capped at 5000 km.
func TsunamiRadius(tntMegatons float64) float64 {
	r := 100.0 * math.Pow(math.Max(0.001, tntMegatons), 0.25)
	return math.Min(5000.0, r)
}

// ComputeImpact derives the full result set from resolved parameters.
// Pure and stateless: equal parameters always produce equal results.
func ComputeImpact(p ImpactParameters) ImpactResults {
	mass := SphereMass(p.DiameterM, p.Density)
	energy := KineticEnergy(mass, p.EffectiveVelocityMS())
	tnt := TNTEquivalentMegatons(energy)

	return ImpactResults{
		MassKg:                mass,
		EnergyJoules:          energy,
		TNTMegatons:           tnt,
		CraterDiameterM:       CraterDiameter(energy),
		SeismicMwEquivalent:   SeismicMagnitude(energy),
		TsunamiInitialHeightM: TsunamiInitialHeight(energy, p.WaterDepthM),
		TsunamiRadiusKm:       TsunamiRadius(tnt),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
