// Package slicex provides generic slice helpers.
//
// Values coming from typed sources, such as command-line arguments, often
// need to be handed to functions taking []interface{}:
//
//	allowed := slicex.ToAny([]string{"a", "b"})
//	validationx.ValidateOrDefault("a", allowed, "")
package slicex
