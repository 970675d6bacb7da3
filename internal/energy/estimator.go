package energy

// Fixed engineering constants for the suitability formulas.
const (
	SolarPanelEfficiency  = 0.15
	WindTurbineEfficiency = 0.4
	AirDensity            = 1.225 // kg/m³ at sea level
	BatteryScalingFactor  = 0.01

	hoursPerYear = 8760
	daysPerYear  = 365
)

// Usable-area fractions are policy defaults, not physical derivations.
const (
	DefaultSolarFraction = 0.5
	DefaultWindFraction  = 0.1
)

// Input holds the ambient parameters for one estimate.
type Input struct {
	TotalAreaM2     float64 // > 0
	SolarIrradiance float64 // kWh/m²/day
	WindSpeed       float64 // m/s
	GridDistance    float64 // meters
}

// Metrics is the computed suitability snapshot.
type Metrics struct {
	TotalAreaM2             float64 `json:"total_area_m2"`
	UsableAreaSolarM2       float64 `json:"usable_area_solar_m2"`
	UsableAreaWindM2        float64 `json:"usable_area_wind_m2"`
	SolarPotentialKWhYear   float64 `json:"solar_energy_potential_kwh_per_year"`
	WindPotentialKWhYear    float64 `json:"wind_energy_potential_kwh_per_year"`
	BatterySuitabilityScore float64 `json:"battery_suitability_score"`
}

// Estimate computes solar, wind and battery suitability for a parcel area.
// Pure and deterministic; identical inputs yield identical outputs.
func Estimate(in Input) Metrics {
	return EstimateWithFractions(in, DefaultSolarFraction, DefaultWindFraction)
}

// EstimateWithFractions is Estimate with explicit usable-area fractions.
func EstimateWithFractions(in Input, solarFraction, windFraction float64) Metrics {
	usableSolar := in.TotalAreaM2 * solarFraction
	usableWind := in.TotalAreaM2 * windFraction

	solarPotential := usableSolar * in.SolarIrradiance * daysPerYear * SolarPanelEfficiency

	windPotential := 0.5 * AirDensity * usableWind *
		in.WindSpeed * in.WindSpeed * in.WindSpeed *
		WindTurbineEfficiency * hoursPerYear

	// Zero grid distance means no grid reference, not infinite suitability.
	battery := 0.0
	if in.GridDistance > 0 {
		battery = usableSolar / in.GridDistance * BatteryScalingFactor
	}

	return Metrics{
		TotalAreaM2:             in.TotalAreaM2,
		UsableAreaSolarM2:       usableSolar,
		UsableAreaWindM2:        usableWind,
		SolarPotentialKWhYear:   solarPotential,
		WindPotentialKWhYear:    windPotential,
		BatterySuitabilityScore: battery,
	}
}

// Map flattens the metrics to name -> value, the shape embedded in report
// data snapshots.
func (m Metrics) Map() map[string]float64 {
	return map[string]float64{
		"total_area_m2":                       m.TotalAreaM2,
		"usable_area_solar_m2":                m.UsableAreaSolarM2,
		"usable_area_wind_m2":                 m.UsableAreaWindM2,
		"solar_energy_potential_kwh_per_year": m.SolarPotentialKWhYear,
		"wind_energy_potential_kwh_per_year":  m.WindPotentialKWhYear,
		"battery_suitability_score":           m.BatterySuitabilityScore,
	}
}
