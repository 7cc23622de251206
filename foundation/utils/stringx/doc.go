// Package stringx provides text helpers for loosely typed values.
//
// Package: stringx
// Title: Text Helpers
// Description: Textual coercion of arbitrary values, digit extraction, placeholder
//              formatting and centered padding. All functions are pure and safe
//              for concurrent use.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-12 v0.3.0: ToText, ExtractNumbers, Format and PadBoth; case conversion and
//                       random strings removed
//
// # Textual form
//
// ToText is the single coercion used by every helper here: nil and false become "",
// true becomes "1", byte slices are taken verbatim and everything else goes through
// spf13/cast with a fmt %v fallback.
//
// # Digits
//
//	stringx.ExtractNumbers("Price: $1,234.56")   // "123456"
//	stringx.ExtractNumbers(-12.5)                // "125"
//
// # Placeholders
//
// Format replaces {key} with the textual form of args[key]. Keys are literal, there
// is no escaping, and replaced text is never scanned again.
//
//	stringx.Format("Hello {name}, {name}!", map[string]any{"name": "Ada"})
//	stringx.FormatArgs("{0} + {1} = {2}", 1, 2, 3)
//
// # Padding
//
// PadBoth centers a string the way PHP's str_pad with STR_PAD_BOTH does, counting
// runes rather than bytes.
package stringx
