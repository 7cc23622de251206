// File: slicex.go
// Title: Slice Conversion Utilities
// Description: Generic element mapping and conversion to []interface{} for
//              APIs that take untyped values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2026-10-14 v0.2.0: Reduced to Map and ToAny

package slicex

// Map transforms each element of a slice using the provided function.
// A nil slice or mapper yields nil.
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// ToAny converts a typed slice to []interface{}, preserving nil
func ToAny[T any](slice []T) []interface{} {
	return Map(slice, func(v T) interface{} { return v })
}
