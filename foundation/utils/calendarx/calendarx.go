// File: calendarx.go
// Title: Package-Level Conversion
// Description: Best-effort conversion functions backed by a default Converter.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package calendarx

import (
	"time"

	"github.com/msto63/helperx/foundation/utils/jalali"
)

// defaultConverter uses time.Local, the wall clock and the default logger
var defaultConverter = NewConverter()

// Default returns the converter behind the package-level functions
func Default() *Converter {
	return defaultConverter
}

// ToPersianDate converts date to the Persian calendar, see Converter.ToPersianDate
func ToPersianDate(date interface{}) (jalali.Date, bool) {
	return defaultConverter.ToPersianDate(date)
}

// ToPersianString converts and formats date, see Converter.ToPersianString
func ToPersianString(date interface{}, pattern string) (string, bool) {
	return defaultConverter.ToPersianString(date, pattern)
}

// ToGregorianDate converts date to the Gregorian calendar, see Converter.ToGregorianDate
func ToGregorianDate(date interface{}) (time.Time, bool) {
	return defaultConverter.ToGregorianDate(date)
}

// ToGregorianString converts and formats date, see Converter.ToGregorianString
func ToGregorianString(date interface{}, pattern string) (string, bool) {
	return defaultConverter.ToGregorianString(date, pattern)
}
