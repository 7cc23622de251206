// File: filex.go
// Title: File Lookup Utilities
// Description: Path expansion and existence checks used to locate configuration
//              and .env files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-14 v0.2.0: Reduced to path expansion and lookup helpers

package filex

import (
	"os"
	"path/filepath"
	"strings"
)

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ExpandPath expands environment variables and a leading "~" to the user's
// home directory. The "~" is kept when the home directory is unknown.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// FirstFile returns the first candidate that is a regular file, or "" if none is
func FirstFile(candidates ...string) string {
	for _, p := range candidates {
		if p != "" && IsFile(ExpandPath(p)) {
			return ExpandPath(p)
		}
	}
	return ""
}
