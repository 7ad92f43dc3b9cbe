package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarwise/solarwise-carbon/internal/emissions"
)

const owidSample = `{
  "Brazil": {
    "iso_code": "BRA",
    "data": [
      {"year": 1990, "electricity_emissions_factor": 0.09, "co2_per_capita": 1.4},
      {"year": 2022, "electricity_emissions_factor": 0.1, "co2_per_capita": 2.3},
      {"year": 2023, "electricity_emissions_factor": 0.13, "co2_per_capita": 2.4}
    ]
  },
  "Atlantis": {
    "iso_code": "ATL",
    "country": "Atlantis",
    "data": [{"year": 1990, "co2_per_capita": 9.9}]
  }
}`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "owid.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun(t *testing.T) {
	output := filepath.Join(t.TempDir(), "trimmed.json")
	opts := options{
		input:    writeSample(t, owidSample),
		output:   output,
		trim:     emissions.TrimOptions{FromYear: 2015, ToYear: 2023},
		validate: true,
	}

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), opts, &stdout))
	assert.Contains(t, stdout.String(), "Kept 1 of 2 entries")

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	store, err := emissions.Load(f)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	rec, ok := store.Lookup("BRA")
	require.True(t, ok)
	assert.Equal(t, "Brazil", rec.Name, "name falls back to the dataset key")
	assert.Len(t, rec.YearlyData, 2)
}

func TestRun_DryRunDoesNotWrite(t *testing.T) {
	output := filepath.Join(t.TempDir(), "trimmed.json")
	opts := options{
		input:  writeSample(t, owidSample),
		output: output,
		dryRun: true,
	}

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), opts, &stdout))
	assert.Contains(t, stdout.String(), "Dry run")
	assert.NoFileExists(t, output)
}

func TestRun_ValidationFailure(t *testing.T) {
	bad := `{"Mars": {"iso_code": "MRS", "data": [{"year": 2023, "electricity_emissions_factor": 7.5}]}}`
	opts := options{
		input:    writeSample(t, bad),
		output:   filepath.Join(t.TempDir(), "out.json"),
		validate: true,
	}

	err := run(context.Background(), opts, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mars 2023")
}

func TestRun_MissingInput(t *testing.T) {
	opts := options{input: filepath.Join(t.TempDir(), "missing.json")}
	assert.Error(t, run(context.Background(), opts, &bytes.Buffer{}))
}

func TestParseYears(t *testing.T) {
	years, err := parseYears("2020, 2021,,2023")
	require.NoError(t, err)
	assert.Equal(t, []int{2020, 2021, 2023}, years)

	_, err = parseYears("2020,twenty")
	assert.Error(t, err)
}
