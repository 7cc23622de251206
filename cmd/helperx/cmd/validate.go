package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/helperx/foundation/core/log"
	"github.com/msto63/helperx/foundation/utils/slicex"
	"github.com/msto63/helperx/foundation/utils/stringx"
	"github.com/msto63/helperx/foundation/utils/validationx"
)

var (
	validateDefault string

	numberFloat   bool
	numberMin     string
	numberMax     string
	numberDefault string
)

var validateCmd = &cobra.Command{
	Use:   "validate <value> [allowed...]",
	Short: "Print the value if it is allowed, otherwise the default",
	Long: `Prints the value when it is non-empty and, if an allow-list is given, one of
the allowed values. Otherwise the default is printed. Numeric strings are
compared loosely, so "5" matches "5.0".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

var numberCmd = &cobra.Command{
	Use:   "number <value> [allowed...]",
	Short: "Print the value as a number if it passes the checks, otherwise the default",
	Long: `Parses the value as an integer (or a float with --float) and prints it when it
lies within --min/--max and, if an allow-list is given, is one of the allowed
values. Non-numeric bounds are ignored.

Examples:
  helperx number 42 --min 1 --max 100
  helperx number 2.5 --float --default 1.0
  helperx number 7 1 2 3 --default 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNumber,
}

var boolCmd = &cobra.Command{
	Use:   "bool <value>",
	Short: "Print true only for 1, true, on or yes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), validationx.AsBoolean(args[0]))
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateDefault, "default", "d", "", "value printed when validation fails")

	numberCmd.Flags().BoolVar(&numberFloat, "float", false, "parse as float instead of integer")
	numberCmd.Flags().StringVar(&numberMin, "min", "", "lower bound (inclusive)")
	numberCmd.Flags().StringVar(&numberMax, "max", "", "upper bound (inclusive)")
	numberCmd.Flags().StringVarP(&numberDefault, "default", "d", "", "value printed when validation fails")

	rootCmd.AddCommand(validateCmd, numberCmd, boolCmd)
}

// allowList converts trailing arguments to an allow-list, nil if none
func allowList(args []string) []interface{} {
	if len(args) == 0 {
		return nil
	}
	return slicex.ToAny(args)
}

// bound returns nil for an unset bound so it is skipped
func bound(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func runValidate(cmd *cobra.Command, args []string) error {
	result := validationx.ValidateOrDefault(args[0], allowList(args[1:]), validateDefault)
	fmt.Fprintln(cmd.OutOrStdout(), stringx.ToText(result))
	return nil
}

func runNumber(cmd *cobra.Command, args []string) error {
	result := validationx.ValidateNumberOrDefault(
		args[0],
		numberFloat,
		bound(numberMin),
		bound(numberMax),
		allowList(args[1:]),
		numberDefault,
	)
	logger.Debug("number validated", mdwlog.Fields{
		"value":  args[0],
		"result": result,
	})
	fmt.Fprintln(cmd.OutOrStdout(), stringx.ToText(result))
	return nil
}
