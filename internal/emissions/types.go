// Package emissions provides the per-country emission factor dataset and the
// lookups that resolve a usable factor from it.
package emissions

import "fmt"

// YearEntry holds the metrics recorded for a country in a single year.
// A nil field means the dataset has no value for that year.
type YearEntry struct {
	// Year is the calendar year of the entry.
	Year int `json:"year"`

	// ElectricityEmissionFactor is the grid emission factor in kg CO2 per kWh.
	ElectricityEmissionFactor *float64 `json:"electricity_emissions_factor"`

	// CO2PerUnitEnergy is the legacy name used by one dataset variant for the same concept (kg CO2 per kWh).
	CO2PerUnitEnergy *float64 `json:"co2_per_unit_energy"`

	// CO2PerCapita is annual emissions in metric tons CO2 per person.
	CO2PerCapita *float64 `json:"co2_per_capita"`
}

// Value returns the entry's value for metric and whether it is present.
func (e YearEntry) Value(m Metric) (float64, bool) {
	var v *float64
	switch m {
	case MetricElectricityFactor:
		v = e.ElectricityEmissionFactor
	case MetricCO2PerUnitEnergy:
		v = e.CO2PerUnitEnergy
	case MetricCO2PerCapita:
		v = e.CO2PerCapita
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// empty reports whether the entry carries no metric at all.
func (e YearEntry) empty() bool {
	return e.ElectricityEmissionFactor == nil && e.CO2PerUnitEnergy == nil && e.CO2PerCapita == nil
}

// CountryRecord is one country's yearly history.
type CountryRecord struct {
	ISOCode    string      `json:"iso_code"`
	Name       string      `json:"country"`
	YearlyData []YearEntry `json:"data"`
}

// Country is the name/code pair used to populate selection lists.
type Country struct {
	Name    string `json:"name"`
	ISOCode string `json:"iso_code"`
}

// Reading is a resolved metric value together with the year it came from.
type Reading struct {
	ISOCode string  `json:"iso_code"`
	Year    int     `json:"year"`
	Value   float64 `json:"value"`
}

// Metric selects which YearEntry field a lookup resolves.
type Metric int

const (
	// MetricElectricityFactor resolves electricity_emissions_factor.
	MetricElectricityFactor Metric = iota
	// MetricCO2PerUnitEnergy resolves co2_per_unit_energy.
	MetricCO2PerUnitEnergy
	// MetricCO2PerCapita resolves co2_per_capita.
	MetricCO2PerCapita
)

var metricNames = map[Metric]string{
	MetricElectricityFactor: "electricity",
	MetricCO2PerUnitEnergy:  "co2_per_unit_energy",
	MetricCO2PerCapita:      "co2_per_capita",
}

func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric converts a metric name as accepted on the command line.
func ParseMetric(s string) (Metric, error) {
	for m, name := range metricNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}
