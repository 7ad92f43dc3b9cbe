package emissions

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawOWID = `{
  "Brazil": {"iso_code": "BRA", "data": [
    {"year": 2014, "co2_per_unit_energy": 0.15, "gdp": 123},
    {"year": 2020, "co2_per_unit_energy": 0.14, "co2_per_capita": 2.1},
    {"year": 2023, "electricity_emissions_factor": 0.13}
  ]},
  "Atlantis": {"iso_code": "ATL", "data": [
    {"year": 2010, "co2_per_capita": 1.0}
  ]},
  "Kenya": {"iso_code": "KEN", "country": "Kenya", "data": [
    {"year": 2021, "population": 53000000},
    {"year": 2022, "co2_per_unit_energy": 0.095}
  ]}
}`

func TestTrim(t *testing.T) {
	raw, err := DecodeRaw(strings.NewReader(rawOWID))
	require.NoError(t, err)

	t.Run("keep years", func(t *testing.T) {
		got := Trim(raw, TrimOptions{Years: []int{2020, 2021, 2022, 2023}})

		require.Len(t, got, 2)
		assert.NotContains(t, got, "Atlantis")

		bra := got["Brazil"]
		assert.Equal(t, "BRA", bra.ISOCode)
		assert.Equal(t, "Brazil", bra.Name, "name should fall back to the key")
		require.Len(t, bra.YearlyData, 2)
		assert.Equal(t, 2020, bra.YearlyData[0].Year)

		ken := got["Kenya"]
		require.Len(t, ken.YearlyData, 1, "entries without metrics should be dropped")
		assert.Equal(t, 2022, ken.YearlyData[0].Year)
	})

	t.Run("year range with required metric", func(t *testing.T) {
		metric := MetricCO2PerUnitEnergy
		got := Trim(raw, TrimOptions{FromYear: 2015, ToYear: 2023, RequireMetric: &metric})

		require.Len(t, got, 2)
		require.Len(t, got["Brazil"].YearlyData, 1)
		assert.Equal(t, 2020, got["Brazil"].YearlyData[0].Year)
	})

	t.Run("input untouched", func(t *testing.T) {
		_ = Trim(raw, TrimOptions{Years: []int{2023}})
		assert.Len(t, raw["Brazil"].YearlyData, 3)
		assert.Empty(t, raw["Brazil"].Name)
	})
}

func TestEncodeRaw_RoundTripsThroughLoad(t *testing.T) {
	raw, err := DecodeRaw(strings.NewReader(rawOWID))
	require.NoError(t, err)
	trimmed := Trim(raw, TrimOptions{FromYear: 2020})

	var buf bytes.Buffer
	require.NoError(t, EncodeRaw(&buf, trimmed))

	s, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"BRA", "KEN"}, s.Codes())

	v, ok := s.ElectricityEmissionFactor("BRA")
	require.True(t, ok)
	assert.InDelta(t, 0.13, v, 1e-9)
}
