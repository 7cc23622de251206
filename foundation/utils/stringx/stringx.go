// File: stringx.go
// Title: Textual Coercion and Digit Extraction
// Description: ToText, ExtractNumbers and blank checks.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-12 v0.3.0: ToText and ExtractNumbers

package stringx

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// ToText returns the textual form of value
func ToText(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return ""
	case []byte:
		return string(v)
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return s
}

// ExtractNumbers returns all ASCII digits of the textual form of value,
// concatenated in order. Signs, separators and decimal points are dropped.
func ExtractNumbers(value interface{}) string {
	text := ToText(value)

	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
