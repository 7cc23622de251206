// File: condx.go
// Title: Conditional Dispatch
// Description: Condition tagged union, QuickSwitch and the fluent Switch builder.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package condx

import (
	"github.com/msto63/helperx/foundation/core/validation"
)

// Condition is either a predicate or a plain value
type Condition struct {
	predicate func() bool
	value     interface{}
}

// When returns a Condition that holds when fn returns true.
// A nil fn never holds.
func When(fn func() bool) Condition {
	if fn == nil {
		return Condition{value: false}
	}
	return Condition{predicate: fn}
}

// Is returns a Condition that holds when v is truthy
func Is(v interface{}) Condition {
	return Condition{value: v}
}

// Cond builds a Condition from v. A func() bool becomes a predicate, a
// func() interface{} becomes a predicate over the truthiness of its result, a
// Condition is used as is, and any other value is evaluated for truthiness.
func Cond(v interface{}) Condition {
	switch c := v.(type) {
	case Condition:
		return c
	case func() bool:
		return When(c)
	case func() interface{}:
		if c == nil {
			return Is(false)
		}
		return When(func() bool { return validation.IsTruthyLike(c()) })
	default:
		return Is(v)
	}
}

// Holds evaluates the condition
func (c Condition) Holds() bool {
	if c.predicate != nil {
		return c.predicate()
	}
	return validation.IsTruthyLike(c.value)
}

// Case pairs a result with the condition selecting it
type Case[K any] struct {
	Result K
	Cond   Condition
}

// On returns a Case for result guarded by cond, see Cond
func On[K any](result K, cond interface{}) Case[K] {
	return Case[K]{Result: result, Cond: Cond(cond)}
}

// QuickSwitch returns the Result of the first case whose condition holds,
// or def when no case holds.
func QuickSwitch[K any](cases []Case[K], def K) K {
	for _, c := range cases {
		if c.Cond.Holds() {
			return c.Result
		}
	}
	return def
}

// Switch is a fluent builder over QuickSwitch
type Switch[K any] struct {
	cases []Case[K]
	def   K
}

// NewSwitch returns an empty Switch whose default is the zero value of K
func NewSwitch[K any]() *Switch[K] {
	return &Switch[K]{}
}

// Case appends a case, see On
func (s *Switch[K]) Case(result K, cond interface{}) *Switch[K] {
	s.cases = append(s.cases, On(result, cond))
	return s
}

// Default sets the result returned when no case holds
func (s *Switch[K]) Default(def K) *Switch[K] {
	s.def = def
	return s
}

// Eval evaluates the cases in the order they were added
func (s *Switch[K]) Eval() K {
	return QuickSwitch(s.cases, s.def)
}
