// ============================================================================
// helperx - Calendar, validation and text helpers
// ============================================================================
//
// Package:     version
// Description: Central version management for the helper packages and the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for helperx
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	CLI        = "0.1.0"
	Calendar   = "0.1.0"
	Validation = "0.2.0"
	Text       = "0.3.0"
	Debug      = "0.1.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/helperx/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli":
		return CLI
	case "calendar":
		return Calendar
	case "validation":
		return Validation
	case "text":
		return Text
	case "debug":
		return Debug
	default:
		return Platform
	}
}

// Info returns a one-line description of the build
func Info() string {
	return fmt.Sprintf("helperx %s (commit %s, built %s)", Platform, Commit, BuildDate)
}
