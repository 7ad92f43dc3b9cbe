package emissions

import "slices"

// Latest scans code's history from the most recent year backwards and returns
// the first entry that has a value for metric.
// Returns (Reading{}, false) if code is empty, unknown, or never has that metric.
func (s *Store) Latest(code string, metric Metric) (Reading, bool) {
	if code == "" {
		return Reading{}, false
	}
	rec, ok := s.countries[code]
	if !ok {
		return Reading{}, false
	}
	for i := len(rec.YearlyData) - 1; i >= 0; i-- {
		entry := rec.YearlyData[i]
		if v, ok := entry.Value(metric); ok {
			return Reading{ISOCode: code, Year: entry.Year, Value: v}, true
		}
	}
	return Reading{}, false
}

// ElectricityEmissionFactor returns the most recent electricity emission factor
// for code in kg CO2 per kWh.
func (s *Store) ElectricityEmissionFactor(code string) (float64, bool) {
	r, ok := s.Latest(code, MetricElectricityFactor)
	return r.Value, ok
}

// CO2PerUnitEnergy returns the most recent co2_per_unit_energy value for code.
// The offset calculation resolves its factors through this field.
func (s *Store) CO2PerUnitEnergy(code string) (float64, bool) {
	r, ok := s.Latest(code, MetricCO2PerUnitEnergy)
	return r.Value, ok
}

// LatestCO2Intensity estimates kg CO2 per kWh from ReferenceYear per-capita
// emissions: tons per person converted to kg, divided by AverageAnnualKWhPerCapita.
//
// Unlike ElectricityEmissionFactor this does not fall back to earlier years:
// a country without a ReferenceYear per-capita value is reported as not found.
func (s *Store) LatestCO2Intensity(code string) (float64, bool) {
	if code == "" {
		return 0, false
	}
	rec, ok := s.countries[code]
	if !ok {
		return 0, false
	}
	entry, ok := rec.entryForYear(ReferenceYear)
	if !ok {
		return 0, false
	}
	perCapita, ok := entry.Value(MetricCO2PerCapita)
	if !ok {
		return 0, false
	}
	return perCapita * TonsToKg / AverageAnnualKWhPerCapita, true
}

// AvailableCountries returns the countries that have an electricity emission
// factor for ReferenceYear, sorted by name. The slice is a copy.
func (s *Store) AvailableCountries() []Country {
	return slices.Clone(s.available)
}

// LatestFactors returns every country's most recent electricity emission factor
// keyed by ISO code. Countries without any factor are omitted.
func (s *Store) LatestFactors() map[string]float64 {
	factors := make(map[string]float64, len(s.countries))
	for code := range s.countries {
		if v, ok := s.ElectricityEmissionFactor(code); ok {
			factors[code] = v
		}
	}
	return factors
}
