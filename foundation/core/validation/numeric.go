// File: numeric.go
// Title: Numeric Detection and Coercion
// Description: Decides whether a value looks like a number and coerces it to float64
//              or int64.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: ConvertToFloat64 helper
// - 2026-10-12 v0.2.0: IsNumeric, ToFloat, ToInt with truncation and saturation

package validation

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// asciiSpace is the whitespace accepted around numeric strings
const asciiSpace = " \t\n\r\v\f"

var numericPattern = regexp.MustCompile(`^[ \t\n\r\v\f]*[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?[ \t\n\r\v\f]*$`)

// IsNumeric reports whether value is a number or a numeric-looking string.
func IsNumeric(value interface{}) bool {
	if value == nil {
		return false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.String:
		return numericPattern.MatchString(rv.String())
	default:
		return false
	}
}

// ToFloat coerces a numeric value to float64. Overflowing strings become ±Inf.
func ToFloat(value interface{}) (float64, bool) {
	if !IsNumeric(value) {
		return 0, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		f, err := strconv.ParseFloat(strings.Trim(rv.String(), asciiSpace), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return f, true
	}
}

// ToInt coerces a numeric value to int64, truncating toward zero.
// NaN and infinities become 0, finite values beyond the int64 range saturate.
func ToInt(value interface{}) (int64, bool) {
	if !IsNumeric(value) {
		return 0, false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		return truncateFloat(rv.Float()), true
	default:
		s := strings.Trim(rv.String(), asciiSpace)
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return i, true
		}
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(s, "-") {
				return math.MinInt64, true
			}
			return math.MaxInt64, true
		}
		f, ok := ToFloat(s)
		if !ok {
			return 0, false
		}
		return truncateFloat(f), true
	}
}

// truncateFloat truncates f toward zero into the int64 range
func truncateFloat(f float64) int64 {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(math.Trunc(f))
	}
}

// exactInt returns the integer value of integer kinds and integer strings
func exactInt(value interface{}) (int64, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.String:
		i, err := strconv.ParseInt(strings.Trim(rv.String(), asciiSpace), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
