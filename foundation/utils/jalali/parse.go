// File: parse.go
// Title: Persian Date Parsing
// Description: Parsing of Persian date strings with ASCII, Persian or Arabic-Indic digits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package jalali

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	mdwerror "github.com/msto63/helperx/foundation/core/error"
)

var datePattern = regexp.MustCompile(
	`^(-?\d{1,4})[-/](\d{1,2})[-/](\d{1,2})(?:(?:\s+|T)(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?)?$`)

// digitMapper maps Persian and Arabic-Indic digits to ASCII
var digitMapper = runes.Map(func(r rune) rune {
	switch {
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰')
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠')
	default:
		return r
	}
})

// NormalizeDigits replaces Persian and Arabic-Indic digits in s with ASCII digits
func NormalizeDigits(s string) string {
	out, _, err := transform.String(digitMapper, s)
	if err != nil {
		return s
	}
	return out
}

// Parse parses a Persian date in UTC. See ParseInLocation.
func Parse(value string) (Date, error) {
	return ParseInLocation(value, time.UTC)
}

// ParseInLocation parses a Persian date of the form Y-m-d or Y/m/d, optionally
// followed by H:i or H:i:s after a space or T. The clock time is read in loc,
// a nil location means UTC.
func ParseInLocation(value string, loc *time.Location) (Date, error) {
	normalized := strings.TrimSpace(NormalizeDigits(value))
	if normalized == "" {
		return Date{}, mdwerror.New("empty persian date string").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("jalali.Parse")
	}

	m := datePattern.FindStringSubmatch(normalized)
	if m == nil {
		return Date{}, mdwerror.New("invalid persian date string").
			WithCode(mdwerror.CodeInvalidFormat).
			WithDetail("input", value).
			WithOperation("jalali.Parse")
	}

	fields := make([]int, 6)
	for i, s := range m[1:] {
		if s == "" {
			continue
		}
		// the pattern guarantees short digit runs
		fields[i], _ = strconv.Atoi(s)
	}

	d, err := New(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], 0, loc)
	if err != nil {
		return Date{}, withOperation(err, "jalali.Parse")
	}
	return d, nil
}
