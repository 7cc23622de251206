// Package timex implements Gregorian date parsing and PHP-style date pattern formatting.
//
// Package: timex
// Title: Time Parsing and Pattern Formatting
// Description: Parsing of Gregorian date strings in the common layouts and a date
//              pattern formatter that works for any calendar system implementing the
//              Calendar interface. The Persian calendar in package jalali formats
//              through the same code path as time.Time.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-12 v0.2.0: Calendar interface and FormatPattern, removed business-day helpers
//
// # Parsing
//
//   - Parse: tries the common layouts in order, UTC for layouts without zone
//   - ParseInLocation: same, layouts without zone are read in the given location
//
// # Pattern formatting
//
// FormatPattern understands the PHP date() letters
//
//	d D j l N S w z    day
//	F M m n t          month
//	L Y y              year
//	a A g G h H i s u v time
//	e T P O U          zone and Unix time
//
// A backslash prints the next character literally; every other character is copied.
//
//	timex.FormatPattern(timex.Gregorian(t), "Y-m-d H:i:s")   // 2023-08-03 10:20:30
//	timex.FormatPattern(timex.Gregorian(t), `l \t\h\e jS`)    // Thursday the 3rd
package timex
