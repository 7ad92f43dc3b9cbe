// Package main provides a tool to rebuild the bundled emission factor dataset
// from the Our World in Data (OWID) CO2 dataset.
//
// The tool reads the full OWID JSON, keeps the selected years and the three
// metrics the resolver uses, and writes the trimmed file that is embedded into
// internal/emissions.
//
// Usage:
//
//	go run ./tools/trim-dataset [--input path|url] [--output path] [--dry-run]
//
// Flags:
//
//	--input      OWID JSON file or http(s) URL (default: OWID public URL)
//	--output     Path of the trimmed dataset (default: ./internal/emissions/data/owid-co2-data.json)
//	--from-year  First year to keep (default: 2015)
//	--to-year    Last year to keep (default: 2023)
//	--years      Comma-separated list of years; overrides the range
//	--require    Drop entries without this metric (electricity, co2_per_unit_energy, co2_per_capita)
//	--validate   Check electricity factors are within the expected range
//	--dry-run    Print a summary without writing the file
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/solarwise/solarwise-carbon/internal/emissions"
)

const (
	owidDatasetURL = "https://nyc3.digitaloceanspaces.com/owid-public/data/co2/owid-co2-data.json"

	// Valid range for grid factors, in kg CO2 per kWh.
	minValidFactor = 0.0
	maxValidFactor = 2.0
)

type options struct {
	input    string
	output   string
	trim     emissions.TrimOptions
	validate bool
	dryRun   bool
}

func main() {
	input := flag.String("input", owidDatasetURL, "OWID JSON file or http(s) URL")
	output := flag.String("output", "./internal/emissions/data/owid-co2-data.json", "Path of the trimmed dataset")
	fromYear := flag.Int("from-year", 2015, "First year to keep")
	toYear := flag.Int("to-year", emissions.ReferenceYear, "Last year to keep")
	years := flag.String("years", "", "Comma-separated years to keep; overrides the range")
	require := flag.String("require", "", "Drop entries without this metric")
	validate := flag.Bool("validate", true, "Validate electricity factors are within expected range")
	dryRun := flag.Bool("dry-run", false, "Print a summary without writing the file")
	flag.Parse()

	opts := options{
		input:    *input,
		output:   *output,
		validate: *validate,
		dryRun:   *dryRun,
		trim:     emissions.TrimOptions{FromYear: *fromYear, ToYear: *toYear},
	}

	if *years != "" {
		list, err := parseYears(*years)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.trim = emissions.TrimOptions{Years: list}
	}
	if *require != "" {
		m, err := emissions.ParseMetric(*require)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.trim.RequireMetric = &m
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run trims opts.input and writes the result to opts.output.
func run(ctx context.Context, opts options, stdout io.Writer) error {
	fmt.Fprintf(stdout, "Reading OWID dataset from %s\n", opts.input)

	src, err := openInput(ctx, opts.input)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	raw, err := emissions.DecodeRaw(src)
	if err != nil {
		return err
	}

	trimmed := emissions.Trim(raw, opts.trim)
	fmt.Fprintf(stdout, "Kept %d of %d entries\n", len(trimmed), len(raw))

	if opts.validate {
		if err := validateFactors(trimmed); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Validation passed")
	}

	var buf bytes.Buffer
	if err := emissions.EncodeRaw(&buf, trimmed); err != nil {
		return err
	}

	// The output must load as a Store: unique ISO codes, valid JSON.
	store, err := emissions.Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return fmt.Errorf("trimmed dataset does not load: %w", err)
	}
	fmt.Fprintf(stdout, "%d countries, %d with %d electricity factors\n",
		store.Len(), len(store.AvailableCountries()), emissions.ReferenceYear)

	if opts.dryRun {
		fmt.Fprintln(stdout, "Dry run: not writing output")
		return nil
	}

	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", opts.output, err)
	}
	fmt.Fprintf(stdout, "Wrote %s (%d bytes)\n", opts.output, buf.Len())
	fmt.Fprintln(stdout, "Run 'go test ./internal/emissions/...' to verify the changes")
	return nil
}

func openInput(ctx context.Context, input string) (io.ReadCloser, error) {
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, input, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

func parseYears(s string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		y, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q: %w", part, err)
		}
		years = append(years, y)
	}
	return years, nil
}

// validateFactors checks that every electricity factor is within range.
func validateFactors(raw map[string]emissions.CountryRecord) error {
	var problems []string
	for key, rec := range raw {
		for _, e := range rec.YearlyData {
			f := e.ElectricityEmissionFactor
			if f == nil {
				continue
			}
			if *f < minValidFactor || *f > maxValidFactor {
				problems = append(problems, fmt.Sprintf(
					"%s %d: factor %.4f is outside valid range [%.1f, %.1f]",
					key, e.Year, *f, minValidFactor, maxValidFactor,
				))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("validation failed:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}
