// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the helperx packages. Codes classify
//              failures so callers and logs can tell parse problems from range problems
//              and configuration problems.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Parse/conversion codes, dropped service and database codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parsing and conversion
	CodeParseFailed      Code = "PARSE_FAILED"
	CodeConversionFailed Code = "CONVERSION_FAILED"
	CodeUnsupportedType  Code = "UNSUPPORTED_TYPE"

	// Validation
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeParseFailed, CodeConversionFailed, CodeUnsupportedType,
		CodeInvalidFormat, CodeValueOutOfRange,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeParseFailed, CodeConversionFailed, CodeUnsupportedType:
		return "conversion"
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
