// File: validationx.go
// Title: Validation Helpers
// Description: ValidateOrDefault, ValidateNumberOrDefault, NumberRule and AsBoolean.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-12 v0.2.0: Default-returning helpers replace validator chains

package validationx

import (
	"reflect"

	"github.com/msto63/helperx/foundation/core/validation"
)

// ValidateOrDefault returns value unless it is empty or, with a non-nil
// allow-list, not a member of allowed. Otherwise def is returned.
func ValidateOrDefault(value interface{}, allowed []interface{}, def interface{}) interface{} {
	if validation.IsEmptyLike(value) {
		return def
	}
	if allowed != nil && !validation.Contains(allowed, value) {
		return def
	}
	return value
}

// ValidateOrDefaultOf is the typed form of ValidateOrDefault. Membership uses ==.
func ValidateOrDefaultOf[T comparable](value T, allowed []T, def T) T {
	if validation.IsEmptyLike(value) {
		return def
	}
	if allowed == nil {
		return value
	}
	for _, a := range allowed {
		if a == value {
			return value
		}
	}
	return def
}

// NumberRule describes the checks of ValidateNumberOrDefault.
// Nil or non-numeric bounds are ignored, a nil Allowed disables the membership check.
type NumberRule struct {
	Float   bool
	Min     interface{}
	Max     interface{}
	Allowed []interface{}
}

// Apply coerces value to int64 or float64 and returns it when it satisfies the
// rule, def otherwise. Non-numeric values yield def.
func (r NumberRule) Apply(value interface{}, def interface{}) interface{} {
	if !validation.IsNumeric(value) {
		return def
	}

	if r.Float {
		f, ok := validation.ToFloat(value)
		if !ok {
			return def
		}
		if lo, ok := floatBound(r.Min); ok && f < lo {
			return def
		}
		if hi, ok := floatBound(r.Max); ok && f > hi {
			return def
		}
		if r.Allowed != nil && !validation.Contains(r.Allowed, f) {
			return def
		}
		return f
	}

	n, ok := validation.ToInt(value)
	if !ok {
		return def
	}
	if lo, ok := intBound(r.Min); ok && n < lo {
		return def
	}
	if hi, ok := intBound(r.Max); ok && n > hi {
		return def
	}
	if r.Allowed != nil && !validation.Contains(r.Allowed, n) {
		return def
	}
	return n
}

// ValidateNumberOrDefault is NumberRule{useFloat, min, max, allowed}.Apply(value, def)
func ValidateNumberOrDefault(value interface{}, useFloat bool, min, max interface{}, allowed []interface{}, def interface{}) interface{} {
	return NumberRule{Float: useFloat, Min: min, Max: max, Allowed: allowed}.Apply(value, def)
}

func floatBound(bound interface{}) (float64, bool) {
	if !validation.IsNumeric(bound) {
		return 0, false
	}
	return validation.ToFloat(bound)
}

func intBound(bound interface{}) (int64, bool) {
	if !validation.IsNumeric(bound) {
		return 0, false
	}
	return validation.ToInt(bound)
}

// AsBoolean reports whether value is one of the accepted true representations:
// the integer 1 of any integer kind, "1", true, "true", "on" or "yes".
// Strings are matched case-sensitively.
func AsBoolean(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v == "1" || v == "true" || v == "on" || v == "yes"
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 1
	default:
		return false
	}
}
