// File: format.go
// Title: Placeholder Formatting
// Description: Literal {key} substitution from a map or positional arguments.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-12
// Modified: 2026-10-12

package stringx

import (
	"strconv"
	"strings"

	"github.com/msto63/helperx/foundation/utils/mapx"
)

// Format replaces every {key} in pattern with the textual form of args[key].
// Placeholders without an argument are left untouched.
func Format(pattern string, args map[string]interface{}) string {
	if len(args) == 0 || pattern == "" {
		return pattern
	}

	keys := mapx.SortedKeys(args)
	oldnew := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		oldnew = append(oldnew, "{"+k+"}", ToText(args[k]))
	}

	return strings.NewReplacer(oldnew...).Replace(pattern)
}

// FormatArgs is Format with positional keys 0, 1, 2, ...
func FormatArgs(pattern string, args ...interface{}) string {
	named := make(map[string]interface{}, len(args))
	for i, arg := range args {
		named[strconv.Itoa(i)] = arg
	}
	return Format(pattern, named)
}
