// Package cli implements the solarwise command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/solarwise/solarwise-carbon/internal/config"
	"github.com/solarwise/solarwise-carbon/internal/emissions"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath  string
	logLevel    string
	datasetPath string
	jsonOutput  bool

	lookupEnv func(string) (string, bool)
}

// NewRootCmd creates the root command for the solarwise CLI.
func NewRootCmd(version string) *cobra.Command {
	return NewRootCmdWithEnv(version, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit environment
// lookup so tests do not depend on the process environment.
func NewRootCmdWithEnv(version string, lookupEnv func(string) (string, bool)) *cobra.Command {
	opts := &rootOptions{lookupEnv: lookupEnv}

	cmd := &cobra.Command{
		Use:           "solarwise",
		Short:         "Carbon avoidance, offset, and footprint calculators",
		Long:          "solarwise serves and runs carbon calculators backed by per-country grid emission factors.",
		Version:       version,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (overrides config and environment)")
	flags.StringVar(&opts.datasetPath, "dataset", "", "emission factor dataset (defaults to the bundled dataset)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")

	cmd.AddCommand(
		newServeCmd(opts),
		newCountriesCmd(opts),
		newFactorCmd(opts),
		newIntensityCmd(opts),
		newAvoidCmd(opts),
		newOffsetCmd(opts),
		newOffsetOptionsCmd(opts),
	)

	return cmd
}

const rootCmdExample = `  # Start the HTTP API
  solarwise serve --config solarwise.yaml

  # List countries with a 2023 grid factor
  solarwise countries

  # CO2 avoided by 8000 kWh of solar in the United States
  solarwise avoid --kwh 8000 --country USA

  # Offset from moving consumption between two grids
  solarwise offset --user-kwh 8000 --solar-kwh 5000 --dirty USA --clean BRA

  # Price offsetting a 5 t footprint
  solarwise offset-options --footprint-kg 5000`

// loadConfig resolves configuration from defaults, the config file, the
// environment, and finally the command-line flags.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}

	logger := config.NewLogger(cfg.Logging, cmd.ErrOrStderr())
	cfg.ApplyEnv(o.lookupEnv, logger)

	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.datasetPath != "" {
		cfg.DatasetPath = o.datasetPath
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, zerolog.Nop(), fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, config.NewLogger(cfg.Logging, cmd.ErrOrStderr()), nil
}

// openStore loads configuration and the emission factor store.
func (o *rootOptions) openStore(cmd *cobra.Command) (*emissions.Store, zerolog.Logger, error) {
	cfg, logger, err := o.loadConfig(cmd)
	if err != nil {
		return nil, logger, err
	}

	store, err := emissions.Open(cfg.DatasetPath)
	if err != nil {
		return nil, logger, fmt.Errorf("loading emission factors: %w", err)
	}
	logger.Debug().
		Str("dataset", cfg.DatasetPath).
		Int("countries", store.Len()).
		Msg("emission factors loaded")

	return store, logger, nil
}
