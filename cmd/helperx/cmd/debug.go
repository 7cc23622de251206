package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/helperx/foundation/utils/debugx"
	"github.com/msto63/helperx/foundation/utils/slicex"
)

var (
	debugHeader    string
	debugSeparator string
	debugLength    int
	debugColor     bool
)

var debugCmd = &cobra.Command{
	Use:   "debug [value...]",
	Short: "Print values as a framed, pretty-printed JSON block",
	Long: `Prints the values inside a header and footer line. Arguments that are valid
JSON are decoded first, anything else is kept as a string. Several arguments
are printed as one array. Without arguments the value is read from stdin.

Examples:
  helperx debug '{"user":"sara","roles":["admin"]}'
  helperx debug a b c --header values --separator -`,
	RunE: runDebug,
}

func init() {
	debugCmd.Flags().StringVar(&debugHeader, "header", "", "header text (default from config)")
	debugCmd.Flags().StringVar(&debugSeparator, "separator", "", "separator character (default from config)")
	debugCmd.Flags().IntVar(&debugLength, "length", 0, "frame width (default from config)")
	debugCmd.Flags().BoolVar(&debugColor, "color", false, "color the frame lines")
	rootCmd.AddCommand(debugCmd)
}

var frameStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7D56F4")).
	Bold(true)

// debugOptions merges flags over the configured defaults
func debugOptions() debugx.Options {
	opts := cfg.Debug.Options()
	if debugHeader != "" {
		opts.Header = debugHeader
	}
	if debugSeparator != "" {
		opts.Separator = debugSeparator
	}
	if debugLength > 0 {
		opts.Length = debugLength
	}
	if debugColor || cfg.Debug.Color {
		opts.Style = func(line string) string { return frameStyle.Render(line) }
	}
	return opts
}

// decodeArg decodes JSON input, falling back to the raw string
func decodeArg(s string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

func runDebug(cmd *cobra.Command, args []string) error {
	var value interface{}
	switch len(args) {
	case 0:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		value = decodeArg(strings.TrimSpace(string(data)))
	case 1:
		value = decodeArg(args[0])
	default:
		value = slicex.Map(args, decodeArg)
	}

	return debugx.Fprint(cmd.OutOrStdout(), value, debugOptions())
}
