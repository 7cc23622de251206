// Package validationx provides fallback-to-default validation helpers.
//
// Package: validationx
// Title: Validation Helpers
// Description: Validation of loosely typed values against emptiness, allow-lists
//              and numeric bounds. Invalid input is never an error: the helpers
//              return the caller's default instead. Inputs are never modified.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validation utilities
// - 2026-10-12 v0.2.0: Rebuilt around default values; validator chains removed
//
// # Allow-lists
//
// A nil allow-list disables the membership check. A non-nil empty allow-list
// rejects every value. Membership uses validation.LooseEqual, so 2, int64(2),
// 2.0 and "2" are the same member.
//
//	validationx.ValidateOrDefault(5, []any{1, 2, 3}, 0)   // 0
//	validationx.ValidateOrDefault(2, []any{1, 2, 3}, 0)   // 2
//	validationx.ValidateOrDefault(nil, nil, "x")          // "x"
//
// # Numbers
//
// ValidateNumberOrDefault accepts numbers and numeric strings, coerces them to
// int64 (truncating toward zero) or float64, and checks inclusive bounds. Bounds
// that are nil or not numeric are ignored.
//
//	validationx.ValidateNumberOrDefault("7", false, 1, 10, nil, -1)    // int64(7)
//	validationx.ValidateNumberOrDefault("15", false, 1, 10, nil, -1)   // -1
//
// # Booleans
//
// AsBoolean is an allow-list, not a cast: only 1, "1", true, "true", "on" and
// "yes" are true.
package validationx
