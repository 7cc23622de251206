// Package condx provides first-match conditional value selection.
//
// Package: condx
// Title: Conditional Dispatch
// Description: Selection of a result value from an ordered list of cases, each
//              guarded by either a predicate or a plain value evaluated for
//              truthiness. The first holding case wins.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
//
// # Usage
//
//	size := condx.QuickSwitch([]condx.Case[string]{
//		condx.On("large", n > 100),
//		condx.On("medium", func() bool { return n > 10 }),
//		condx.On("small", true),
//	}, "none")
//
// or with the builder
//
//	size := condx.NewSwitch[string]().
//		Case("large", n > 100).
//		Case("medium", n > 10).
//		Default("small").
//		Eval()
//
// Conditions that are plain values use the emptiness rules of
// validation.IsTruthyLike: 0, "", "0", nil, false and empty collections do not hold.
// Predicates after the first holding case are never invoked.
package condx
