// File: common.go
// Title: Emptiness and Truthiness Predicates
// Description: Explicit predicates for emptiness and truthiness of loosely typed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework utilities
// - 2026-10-12 v0.2.0: IsEmptyLike/IsTruthyLike replace IsNilOrEmpty

package validation

import (
	"reflect"
)

// IsEmptyLike reports whether value is empty: nil, false, numeric zero, "", "0",
// an empty slice, array or map, or a nil pointer, interface, func or chan.
func IsEmptyLike(value interface{}) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() == 0
	case reflect.String:
		s := rv.String()
		return s == "" || s == "0"
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// IsTruthyLike reports whether value is truthy, the exact negation of IsEmptyLike.
func IsTruthyLike(value interface{}) bool {
	return !IsEmptyLike(value)
}

// Contains reports whether list holds an element LooseEqual to value.
func Contains(list []interface{}, value interface{}) bool {
	for _, item := range list {
		if LooseEqual(item, value) {
			return true
		}
	}
	return false
}

// LooseEqual compares numeric values by value and everything else with reflect.DeepEqual.
func LooseEqual(a, b interface{}) bool {
	if IsNumeric(a) && IsNumeric(b) {
		if ai, ok := exactInt(a); ok {
			if bi, ok := exactInt(b); ok {
				return ai == bi
			}
		}
		af, _ := ToFloat(a)
		bf, _ := ToFloat(b)
		return af == bf
	}
	return reflect.DeepEqual(a, b)
}
