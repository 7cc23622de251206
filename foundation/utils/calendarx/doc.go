// Package calendarx converts dates between the Gregorian and Persian calendars.
//
// Package: calendarx
// Title: Calendar Conversion
// Description: Conversion of loosely typed date input between the Gregorian calendar
//              (time.Time) and the Persian calendar (jalali.Date) through the shared
//              instant. Strict methods return errors, best-effort functions return
//              ok == false instead and never panic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
//
// # Input
//
// Both directions accept
//
//	nil                       the current time
//	string                    parsed in the source calendar
//	time.Time, *time.Time     a Gregorian instant
//	jalali.Date, *jalali.Date a Persian instant
//	int and uint kinds        Unix seconds
//
// Gregorian strings are parsed with timex.ParseInLocation, Persian strings with
// jalali.ParseInLocation. Strings without a zone are read in the converter's
// location and every result is expressed in that location.
//
// # Usage
//
//	s, ok := calendarx.ToPersianString("2023-08-03 10:20:30", "Y/m/d")   // "1402/05/12", true
//	t, ok := calendarx.ToGregorianDate("۱۴۰۲/۰۵/۱۲")
//
//	conv := calendarx.NewConverter(calendarx.WithLocation(tehran))
//	d, err := conv.Persian(time.Now())
//
// Failures of the best-effort functions are logged at debug level.
package calendarx
