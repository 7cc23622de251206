// Package jalali implements the Persian (solar Hijri) calendar.
//
// Package: jalali
// Title: Persian Calendar Dates
// Description: A Date type in the Persian calendar anchored to a time.Time instant,
//              calendar arithmetic based on the 33-year leap cycle break table,
//              parsing of Persian date strings and PHP-style pattern formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
//
// # Calendar arithmetic
//
// Leap years follow the break table used by the Iranian calendar authorities,
// valid for Persian years -61 through 3177. Outside that range the conversion
// functions return an error with code CodeValueOutOfRange.
//
//	jalali.IsLeapYear(1403)                  // true
//	jalali.MonthLength(1402, 12)             // 29
//	jalali.FromGregorian(2024, 3, 20)        // 1403, 1, 1
//	jalali.ToGregorian(1402, 5, 12)          // 2023, 8, 3
//
// # Dates
//
// A Date carries both calendars: the Persian fields and the time.Time instant.
// Converting between the calendars never changes the instant.
//
//	d := jalali.FromTime(time.Now())
//	d.Format("Y/m/d l")                      // 1405/07/23 پنجشنبه
//	t := d.Time()
//
// Parse accepts Persian and Arabic-Indic digits in addition to ASCII digits.
package jalali
