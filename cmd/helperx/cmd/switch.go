package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/helperx/foundation/utils/condx"
)

var switchCmd = &cobra.Command{
	Use:   "switch <default> [result=condition...]",
	Short: "Print the result of the first case whose condition is truthy",
	Long: `Evaluates result=condition pairs in order and prints the result of the first
pair whose condition is truthy. Empty, "0" and "false" conditions are falsy.
When no case matches the default is printed.

Example:
  helperx switch none small=0 medium=1 large=1   # prints medium`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSwitch,
}

func init() {
	rootCmd.AddCommand(switchCmd)
}

func runSwitch(cmd *cobra.Command, args []string) error {
	cases := make([]condx.Case[string], 0, len(args)-1)
	for _, a := range args[1:] {
		result, cond, ok := strings.Cut(a, "=")
		if !ok {
			return fmt.Errorf("invalid case %q: expected result=condition", a)
		}
		cases = append(cases, condx.On(result, truthy(cond)))
	}

	fmt.Fprintln(cmd.OutOrStdout(), condx.QuickSwitch(cases, args[0]))
	return nil
}

// truthy reads a command-line condition
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "off", "no":
		return false
	}
	return true
}
