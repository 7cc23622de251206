// File: fields.go
// Title: Structured Log Fields
// Description: Field maps attached to log entries and their conversion to zap fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12

package log

import (
	"sort"

	"go.uber.org/zap"
)

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// zapFields converts the field sets into zap fields sorted by key.
// Later sets override earlier ones.
func zapFields(sets ...Fields) []zap.Field {
	merged := make(Fields)
	for _, set := range sets {
		for k, v := range set {
			merged[k] = v
		}
	}
	if len(merged) == 0 {
		return nil
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		if err, ok := merged[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, merged[k]))
	}
	return out
}
