package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/helperx/foundation/core/log"
	"github.com/msto63/helperx/foundation/utils/calendarx"
	"github.com/msto63/helperx/pkg/core/config"
	"github.com/msto63/helperx/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
)

// state prepared by the root command before any subcommand runs
var (
	cfg       *config.Config
	logger    *mdwlog.Logger
	converter *calendarx.Converter
	runID     string
)

var rootCmd = &cobra.Command{
	Use:   "helperx",
	Short: "helperx - calendar, validation and text helpers",
	Long: `helperx exposes the helper packages on the command line.

Commands:
  persian    - Gregorian date to Persian calendar
  gregorian  - Persian date to Gregorian calendar
  validate   - value against an allow-list, with default
  number     - numeric validation with bounds, with default
  bool       - strict boolean coercion
  digits     - extract all digits
  format     - {placeholder} formatting
  debug      - framed JSON debug block
  switch     - first matching case`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HELPERX_CONFIG or ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// setup loads the configuration and prepares logger and converter
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	level := cfg.General.LogLevel
	if verbose {
		level = "debug"
	}

	runID = uuid.NewString()
	logger = logging.NewLogger(logging.LoggerConfig{
		Name:          cfg.General.Name,
		Level:         level,
		Format:        cfg.General.LogFormat,
		Output:        cmd.ErrOrStderr(),
		CorrelationID: runID,
	})

	loc, err := cfg.Calendar.Location()
	if err != nil {
		return fmt.Errorf("loading time zone: %w", err)
	}
	converter = calendarx.NewConverter(
		calendarx.WithLocation(loc),
		calendarx.WithLogger(logger),
	)

	logger.Debug("command started", mdwlog.Fields{
		"command":  cmd.Name(),
		"timezone": loc.String(),
	})
	return nil
}
