// Package error provides the structured error type used across the helperx foundation.
//
// Package: error
// Title: helperx Error Handling
// Description: Structured errors with codes, severity levels, details and causes. Parse and
//              conversion failures inside the helper packages are reported with this type
//              before the best-effort boundaries turn them into "no value" results.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Reduced code set to parsing, conversion and configuration failures
//
// Usage:
//   import mdwerror "github.com/msto63/helperx/foundation/core/error"
//
//   err := mdwerror.New("invalid persian date").
//     WithCode(mdwerror.CodeInvalidFormat).
//     WithDetail("input", "1402-13-01").
//     WithOperation("jalali.Parse")
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
//     // fall back to the default
//   }
package error
