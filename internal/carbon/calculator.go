package carbon

import "math"

// AvoidedCO2 returns kg CO2 avoided by producing kWh of clean energy instead of
// drawing it from a grid with the given emission factor (kg CO2 per kWh).
func AvoidedCO2(kWh, emissionFactor float64) float64 {
	return kWh * emissionFactor
}

// SimpleOffset returns kg CO2 offset by moving userKWh of consumption from a
// dirty grid mix to a clean one. Solar production is not considered.
func SimpleOffset(userKWh, dirtyMix, cleanMix float64) float64 {
	return userKWh * (dirtyMix - cleanMix)
}

// ProductionAwareOffset returns the emissions of userKWh on the dirty grid minus
// the emissions attributed to solarKWh of production at the clean factor.
// This is the formula served by the offset API.
func ProductionAwareOffset(userKWh, dirtyFactor, cleanFactor, solarKWh float64) float64 {
	return userKWh*dirtyFactor - solarKWh*cleanFactor
}

// AnnualSolarSavings returns kg CO2 saved per year by a solar installation
// producing the given kWh per year.
func AnnualSolarSavings(annualProductionKWh, gridFactor float64) float64 {
	return AvoidedCO2(annualProductionKWh, gridFactor)
}

// EfficiencySavings returns kg CO2 saved by an efficiency improvement.
func EfficiencySavings(energySavedKWh, gridFactor float64) float64 {
	return AvoidedCO2(energySavedKWh, gridFactor)
}

// TreesEquivalent expresses kg CO2 as the number of trees absorbing it in a year.
func TreesEquivalent(kg float64) float64 {
	return math.Round(kg / TreeAbsorptionKgPerYear)
}

// FlightsEquivalent expresses kg CO2 as a number of reference flights.
func FlightsEquivalent(kg float64) float64 {
	return kg / FlightEmissionsKg
}

// FactorSource resolves the grid electricity emission factor of a country.
type FactorSource interface {
	ElectricityEmissionFactor(code string) (float64, bool)
}

// AvoidanceFactor returns the grid factor the avoidance calculator applies for
// code. An empty code or DefaultCountryCode gives BrazilEmissionFactor, as does
// a code src cannot resolve. The bool reports whether src supplied the value.
func AvoidanceFactor(src FactorSource, code string) (float64, bool) {
	if code == "" || code == DefaultCountryCode {
		return BrazilEmissionFactor, false
	}
	if f, ok := src.ElectricityEmissionFactor(code); ok {
		return f, true
	}
	return BrazilEmissionFactor, false
}
