// File: timex.go
// Title: Gregorian Date Parsing
// Description: Layout constants and multi-layout parsing of Gregorian date strings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-07-26 v0.1.1: Enhanced European date parsing support (DD.MM.YYYY format)
// - 2026-10-12 v0.2.0: ParseInLocation reads zone-less layouts in the location,
//                       structured parse errors

package timex

import (
	"strings"
	"time"

	mdwerror "github.com/msto63/helperx/foundation/core/error"
)

// Common time layouts
const (
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601DateTime = "2006-01-02T15:04:05"

	BusinessDate     = "2006-01-02"
	BusinessDateTime = "2006-01-02 15:04:05"
	BusinessMinute   = "2006-01-02 15:04"

	SlashDate     = "2006/01/02"
	SlashDateTime = "2006/01/02 15:04:05"

	DisplayDate     = "January 2, 2006"
	DisplayDateTime = "January 2, 2006 at 3:04 PM"

	ShortDate     = "01/02/2006"
	ShortDateTime = "01/02/2006 15:04"

	EuropeanDate = "02.01.2006"

	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"

	LogTimestamp = "2006-01-02 15:04:05.000"
)

// DefaultPattern is the PHP-style pattern used when no pattern is given
const DefaultPattern = "Y-m-d H:i:s"

// parseLayouts lists the layouts tried by Parse, most specific first
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	ISO8601DateTime,
	LogTimestamp,
	BusinessDateTime,
	BusinessMinute,
	BusinessDate,
	SlashDateTime,
	SlashDate,
	ShortDateTime,
	ShortDate,
	EuropeanDate,
	DisplayDateTime,
	DisplayDate,
	CompactDateTime,
	CompactDate,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC850,
}

// Parse attempts to parse a time string using the common layouts.
// Layouts without zone information are read as UTC.
func Parse(value string) (time.Time, error) {
	return ParseInLocation(value, time.UTC)
}

// ParseInLocation attempts to parse a time string using the common layouts.
// Layouts without zone information are read in location; a nil location means UTC.
func ParseInLocation(value string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, mdwerror.New("empty time string").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timex.Parse")
	}

	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, location); err == nil {
			return t, nil
		}
	}

	return time.Time{}, mdwerror.New("unable to parse time string").
		WithCode(mdwerror.CodeParseFailed).
		WithDetail("input", value).
		WithOperation("timex.Parse")
}
