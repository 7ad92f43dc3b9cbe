package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solarwise/solarwise-carbon/internal/carbon"
	"github.com/solarwise/solarwise-carbon/internal/emissions"
)

type avoidResult struct {
	CountryCode     string  `json:"countryCode"`
	EmissionFactor  float64 `json:"emissionFactor"`
	AvoidedCO2      float64 `json:"avoidedCO2"`
	TreesEquivalent float64 `json:"treesEquivalent"`
}

type offsetResult struct {
	Formula           string  `json:"formula"`
	DirtyFactor       float64 `json:"dirtyFactor"`
	CleanFactor       float64 `json:"cleanFactor"`
	OffsetCO2         float64 `json:"offsetCO2"`
	FlightsEquivalent float64 `json:"flightsEquivalent"`
}

func newAvoidCmd(opts *rootOptions) *cobra.Command {
	var (
		kWh     float64
		country string
	)

	cmd := &cobra.Command{
		Use:   "avoid",
		Short: "CO2 avoided by producing clean energy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, logger, err := opts.openStore(cmd)
			if err != nil {
				return err
			}

			code := strings.ToUpper(country)
			if code == "" {
				code = carbon.DefaultCountryCode
			}
			factor, resolved := carbon.AvoidanceFactor(store, code)
			if !resolved && code != carbon.DefaultCountryCode {
				logger.Warn().Str("iso_code", code).Msg("no electricity factor, using default")
			}

			avoided := carbon.AvoidedCO2(kWh, factor)
			res := avoidResult{
				CountryCode:     code,
				EmissionFactor:  factor,
				AvoidedCO2:      avoided,
				TreesEquivalent: carbon.TreesEquivalent(avoided),
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), res)
			}

			p := printer()
			out := cmd.OutOrStdout()
			p.Fprintf(out, "Country:          %s (factor %.3f kg CO2/kWh)\n", res.CountryCode, res.EmissionFactor)
			p.Fprintf(out, "Avoided CO2:      %.2f kg\n", res.AvoidedCO2)
			p.Fprintf(out, "Trees equivalent: %.0f\n", res.TreesEquivalent)
			return nil
		},
	}

	cmd.Flags().Float64Var(&kWh, "kwh", 0, "clean energy produced, in kWh")
	cmd.Flags().StringVar(&country, "country", "", "ISO country code of the displaced grid (default BRA)")
	_ = cmd.MarkFlagRequired("kwh")
	return cmd
}

func newOffsetCmd(opts *rootOptions) *cobra.Command {
	var (
		userKWh, solarKWh float64
		dirty, clean      string
		simple            bool
	)

	cmd := &cobra.Command{
		Use:   "offset",
		Short: "CO2 offset by moving consumption from a dirty grid to a clean one",
		Long: `Computes the offset with the production-aware formula
  userKWh * dirtyFactor - solarKWh * cleanFactor
or, with --simple, userKWh * (dirtyFactor - cleanFactor).
Both factors are the latest co2_per_unit_energy values of each country.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := opts.openStore(cmd)
			if err != nil {
				return err
			}

			dirtyCode, cleanCode := strings.ToUpper(dirty), strings.ToUpper(clean)
			dirtyFactor, ok := store.CO2PerUnitEnergy(dirtyCode)
			if !ok {
				return noFactorError(dirtyCode)
			}
			cleanFactor, ok := store.CO2PerUnitEnergy(cleanCode)
			if !ok {
				return noFactorError(cleanCode)
			}

			res := offsetResult{
				Formula:     "production-aware",
				DirtyFactor: dirtyFactor,
				CleanFactor: cleanFactor,
				OffsetCO2:   carbon.ProductionAwareOffset(userKWh, dirtyFactor, cleanFactor, solarKWh),
			}
			if simple {
				res.Formula = "simple"
				res.OffsetCO2 = carbon.SimpleOffset(userKWh, dirtyFactor, cleanFactor)
			}
			res.FlightsEquivalent = carbon.FlightsEquivalent(res.OffsetCO2)

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), res)
			}

			p := printer()
			out := cmd.OutOrStdout()
			p.Fprintf(out, "Formula:            %s\n", res.Formula)
			p.Fprintf(out, "Dirty grid:         %s (%.3f kg CO2/kWh)\n", dirtyCode, res.DirtyFactor)
			p.Fprintf(out, "Clean grid:         %s (%.3f kg CO2/kWh)\n", cleanCode, res.CleanFactor)
			p.Fprintf(out, "Offset CO2:         %.2f kg\n", res.OffsetCO2)
			p.Fprintf(out, "Flights equivalent: %.1f\n", res.FlightsEquivalent)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&userKWh, "user-kwh", 0, "annual consumption, in kWh")
	flags.Float64Var(&solarKWh, "solar-kwh", 0, "annual solar production, in kWh")
	flags.StringVar(&dirty, "dirty", "", "ISO code of the current grid")
	flags.StringVar(&clean, "clean", "", "ISO code of the clean grid")
	flags.BoolVar(&simple, "simple", false, "ignore solar production and use the mix difference")
	_ = cmd.MarkFlagRequired("user-kwh")
	_ = cmd.MarkFlagRequired("dirty")
	_ = cmd.MarkFlagRequired("clean")
	return cmd
}

func newOffsetOptionsCmd(opts *rootOptions) *cobra.Command {
	var (
		footprintKg float64
		method      string
	)

	cmd := &cobra.Command{
		Use:   "offset-options",
		Short: "Price offsetting a footprint with trees, renewables, conservation, or methane capture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			quotes := carbon.QuoteAllOffsets(footprintKg)
			if method != "" {
				q, err := carbon.QuoteOffset(footprintKg, carbon.OffsetMethod(strings.ToLower(method)))
				if err != nil {
					return err
				}
				quotes = []carbon.OffsetQuote{q}
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), quotes)
			}

			p := printer()
			out := cmd.OutOrStdout()
			for _, q := range quotes {
				p.Fprintf(out, "%-34s $%.2f  %.2f %s\n", q.Name, q.Cost, q.Quantity, q.Unit)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&footprintKg, "footprint-kg", 0, "footprint to offset, in kg CO2")
	cmd.Flags().StringVar(&method, "method", "", "trees, renewable, conservation, or methane (default all)")
	_ = cmd.MarkFlagRequired("footprint-kg")
	return cmd
}

func noFactorError(code string) error {
	return fmt.Errorf("%s %s: %w", code, emissions.MetricCO2PerUnitEnergy, errNoData)
}
