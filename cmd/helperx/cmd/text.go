package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/helperx/foundation/utils/slicex"
	"github.com/msto63/helperx/foundation/utils/stringx"
)

var formatNamed bool

var digitsCmd = &cobra.Command{
	Use:   "digits <value>",
	Short: "Print only the digits contained in the value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), stringx.ExtractNumbers(args[0]))
	},
}

var formatCmd = &cobra.Command{
	Use:   "format <pattern> [args...]",
	Short: "Replace {placeholders} in a pattern",
	Long: `Replaces {0}, {1}, ... with the positional arguments, or {name} with
name=value arguments when --named is set. Unknown placeholders are kept.

Examples:
  helperx format "{0} has {1} items" cart 3
  helperx format "Hello {name}" name=Sara --named`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().BoolVarP(&formatNamed, "named", "n", false, "arguments are name=value pairs")
	rootCmd.AddCommand(digitsCmd, formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	pattern, rest := args[0], args[1:]

	if !formatNamed {
		fmt.Fprintln(cmd.OutOrStdout(), stringx.FormatArgs(pattern, slicex.ToAny(rest)...))
		return nil
	}

	named := make(map[string]interface{}, len(rest))
	for _, a := range rest {
		key, value, ok := strings.Cut(a, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid argument %q: expected name=value", a)
		}
		named[key] = value
	}
	fmt.Fprintln(cmd.OutOrStdout(), stringx.Format(pattern, named))
	return nil
}
