package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/solarwise/solarwise-carbon/internal/emissions"
)

// errNoData is returned when a country has no value for the requested metric.
var errNoData = errors.New("no data available")

func newCountriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List countries with a 2023 electricity emission factor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := opts.openStore(cmd)
			if err != nil {
				return err
			}

			countries := store.AvailableCountries()
			if opts.jsonOutput {
				if countries == nil {
					countries = []emissions.Country{}
				}
				return writeJSON(cmd.OutOrStdout(), countries)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ISO\tNAME")
			for _, c := range countries {
				fmt.Fprintf(tw, "%s\t%s\n", c.ISOCode, c.Name)
			}
			return tw.Flush()
		},
	}
}

func newFactorCmd(opts *rootOptions) *cobra.Command {
	var metricName string

	cmd := &cobra.Command{
		Use:   "factor <ISO>",
		Short: "Show the latest available value of a metric for a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metric, err := emissions.ParseMetric(metricName)
			if err != nil {
				return err
			}

			store, _, err := opts.openStore(cmd)
			if err != nil {
				return err
			}

			code := strings.ToUpper(args[0])
			reading, ok := store.Latest(code, metric)
			if !ok {
				return fmt.Errorf("%s %s: %w", code, metric, errNoData)
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), reading)
			}
			printer().Fprintf(cmd.OutOrStdout(), "%s %s %.3f (%d)\n",
				reading.ISOCode, metric, reading.Value, reading.Year)
			return nil
		},
	}

	cmd.Flags().StringVar(&metricName, "metric", emissions.MetricElectricityFactor.String(),
		"metric to resolve: electricity, co2_per_unit_energy, or co2_per_capita")
	return cmd
}

func newIntensityCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "intensity <ISO>",
		Short: "Show the 2023 per-capita CO2 intensity in kg CO2 per kWh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := opts.openStore(cmd)
			if err != nil {
				return err
			}

			code := strings.ToUpper(args[0])
			v, ok := store.LatestCO2Intensity(code)
			if !ok {
				return fmt.Errorf("%s %d intensity: %w", code, emissions.ReferenceYear, errNoData)
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]float64{"co2_per_unit_energy": v})
			}
			printer().Fprintf(cmd.OutOrStdout(), "%s %.4f kg CO2/kWh\n", code, v)
			return nil
		},
	}
}
