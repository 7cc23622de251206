// Package log provides structured logging for the helperx packages and CLI.
//
// Package: log
// Title: helperx Structured Logging
// Description: A small structured logging API (levels, fields, contextual loggers)
//              backed by go.uber.org/zap. Loggers are immutable: every With* call
//              returns a clone, so a logger can be shared between goroutines.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-12 v0.2.0: Replaced the hand-written formatters with zap encoders
//
// Usage:
//   import mdwlog "github.com/msto63/helperx/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelDebug,
//     Format: mdwlog.FormatText,
//     Name:   "helperx",
//   })
//
//   logger.Debug("conversion failed", mdwlog.Fields{"input": "not-a-date"})
//   logger.LogError(err)
package log
