// File: pad.go
// Title: Centered Padding
// Description: PadBoth with str_pad STR_PAD_BOTH semantics, rune based.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: PadLeft, PadRight and Center with single rune padding
// - 2026-10-12 v0.3.0: PadBoth with multi-rune pad strings

package stringx

import (
	"strings"
	"unicode/utf8"
)

// PadBoth pads s on both sides to length runes. The left side receives the
// smaller half. pad is repeated and cut to fit. s is returned unchanged when it
// is already long enough or pad is empty.
func PadBoth(s string, length int, pad string) string {
	total := length - utf8.RuneCountInString(s)
	if total <= 0 || pad == "" {
		return s
	}

	left := total / 2
	right := total - left

	var b strings.Builder
	b.Grow(len(s) + total*len(pad))
	writePad(&b, pad, left)
	b.WriteString(s)
	writePad(&b, pad, right)
	return b.String()
}

func writePad(b *strings.Builder, pad string, count int) {
	for count > 0 {
		for _, r := range pad {
			if count == 0 {
				return
			}
			b.WriteRune(r)
			count--
		}
	}
}
