// File: doc.go
// Title: Loose-Typed Validation Predicates
// Description: Package documentation for the validation predicates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2026-10-12 v0.2.0: Reduced to explicit emptiness, truthiness and numeric predicates

/*
Package validation holds the predicates that decide how loosely typed values behave in
the helper packages: what counts as empty, what counts as true, what looks like a number,
and when two values are equal.

The rules are enumerated instead of relying on implicit conversions:

	IsEmptyLike    nil, false, numeric zero, "", "0", empty slice/array/map,
	               nil pointer/interface/func/chan
	IsTruthyLike   !IsEmptyLike
	IsNumeric      any int/uint/float kind, or a decimal string with optional sign,
	               fraction and exponent, surrounded by optional ASCII whitespace
	LooseEqual     numeric values compare by value (2 == int64(2) == 2.0 == "2"),
	               everything else with reflect.DeepEqual

Integer coercion truncates toward zero. NaN and infinities coerce to 0; finite values
outside the int64 range saturate.
*/
package validation
