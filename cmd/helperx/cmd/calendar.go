package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	calendarPattern string
	calendarUnix    bool
)

// errUnconvertible is returned when the input cannot be read as a date
var errUnconvertible = errors.New("could not interpret input as a date")

var persianCmd = &cobra.Command{
	Use:   "persian [date]",
	Short: "Convert a Gregorian date to the Persian calendar",
	Long: `Converts a Gregorian date to the Persian calendar and prints it with a
PHP date() pattern. Without a date the current time is converted.

Examples:
  helperx persian 2023-08-03
  helperx persian "2023-08-03 10:20:30" --pattern "l j F Y"
  helperx persian 1691058030 --unix`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPersian,
}

var gregorianCmd = &cobra.Command{
	Use:   "gregorian [date]",
	Short: "Convert a Persian date to the Gregorian calendar",
	Long: `Converts a Persian date (Y-m-d or Y/m/d, optional H:i[:s], Persian digits
allowed) to the Gregorian calendar. Without a date the current time is converted.

Examples:
  helperx gregorian 1402/05/12
  helperx gregorian "۱۴۰۲/۰۵/۱۲ ۱۰:۲۰" --pattern "D, d M Y H:i"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGregorian,
}

func init() {
	for _, c := range []*cobra.Command{persianCmd, gregorianCmd} {
		c.Flags().StringVarP(&calendarPattern, "pattern", "p", "", "PHP date() pattern (default from config)")
		c.Flags().BoolVar(&calendarUnix, "unix", false, "read the date as Unix seconds")
		rootCmd.AddCommand(c)
	}
}

// dateInput turns the optional argument into converter input
func dateInput(args []string) (interface{}, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if !calendarUnix {
		return args[0], nil
	}
	sec, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid unix timestamp %q", args[0])
	}
	return sec, nil
}

func pattern() string {
	if calendarPattern != "" {
		return calendarPattern
	}
	return cfg.Calendar.Pattern
}

func runPersian(cmd *cobra.Command, args []string) error {
	input, err := dateInput(args)
	if err != nil {
		return err
	}

	s, ok := converter.ToPersianString(input, pattern())
	if !ok {
		return errUnconvertible
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}

func runGregorian(cmd *cobra.Command, args []string) error {
	input, err := dateInput(args)
	if err != nil {
		return err
	}

	s, ok := converter.ToGregorianString(input, pattern())
	if !ok {
		return errUnconvertible
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}
