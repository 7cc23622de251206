// File: stringx_test.go
// Title: Text Helper Tests
// Description: Tests for ToText, ExtractNumbers, Format, FormatArgs, PadBoth and IsBlank.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12

package stringx

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type point struct{ X, Y int }

func TestToText(t *testing.T) {
	testCases := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"nil", nil, ""},
		{"true", true, "1"},
		{"false", false, ""},
		{"string", "abc", "abc"},
		{"bytes", []byte("raw"), "raw"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"uint8", uint8(200), "200"},
		{"float", 12.5, "12.5"},
		{"whole float", 3.0, "3"},
		{"error", errors.New("boom"), "boom"},
		{"stringer", time.Duration(1500) * time.Millisecond, "1.5s"},
		{"struct fallback", point{1, 2}, "{1 2}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ToText(tc.input))
		})
	}
}

func TestExtractNumbers(t *testing.T) {
	testCases := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"price", "Price: $1,234.56", "123456"},
		{"negative decimal string", "-12.5", "125"},
		{"negative float", -12.5, "125"},
		{"int", 2024, "2024"},
		{"no digits", "abc", ""},
		{"empty", "", ""},
		{"nil", nil, ""},
		{"true", true, "1"},
		{"phone", "+98 (21) 555-0199", "98215550199"},
		{"persian digits ignored", "۱۲۳ and 45", "45"},
		{"runs concatenated", "a1b22c333", "122333"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractNumbers(tc.input))
		})
	}
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		pattern  string
		args     map[string]interface{}
		expected string
	}{
		{"single", "Hello {name}", map[string]interface{}{"name": "Ada"}, "Hello Ada"},
		{"repeated", "{x}-{x}-{x}", map[string]interface{}{"x": 1}, "1-1-1"},
		{"several keys", "{a}{b}", map[string]interface{}{"a": "A", "b": "B"}, "AB"},
		{"missing key kept", "{a} {missing}", map[string]interface{}{"a": "A"}, "A {missing}"},
		{"no args", "{a}", nil, "{a}"},
		{"empty pattern", "", map[string]interface{}{"a": 1}, ""},
		{"bool and nil", "[{t}][{f}][{n}]", map[string]interface{}{"t": true, "f": false, "n": nil}, "[1][][]"},
		{"replacement not rescanned", "{a}", map[string]interface{}{"a": "{b}", "b": "B"}, "{b}"},
		{"literal braces untouched", "{ a } {a}", map[string]interface{}{"a": "x"}, "{ a } x"},
		{"unicode", "سلام {name}", map[string]interface{}{"name": "دنیا"}, "سلام دنیا"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Format(tc.pattern, tc.args))
		})
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "1 + 2 = 3", FormatArgs("{0} + {1} = {2}", 1, 2, 3))
	assert.Equal(t, "b a b", FormatArgs("{1} {0} {1}", "a", "b"))
	assert.Equal(t, "{0}", FormatArgs("{0}"))
	assert.Equal(t, "x {1}", FormatArgs("{0} {1}", "x"))
	// substituted text is not expanded again
	assert.Equal(t, "{1}x", FormatArgs("{0}{1}", "{1}", "x"))
	assert.Equal(t, "{a}", Format("{b}", map[string]interface{}{"a": "A", "b": "{a}"}))
}

func TestPadBoth(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		length   int
		pad      string
		expected string
	}{
		{"even split", "ab", 6, "=", "==ab=="},
		{"odd split favours right", "ab", 5, "=", "=ab=="},
		{"already long", "abcdef", 4, "=", "abcdef"},
		{"exact length", "abcd", 4, "=", "abcd"},
		{"empty pad", "ab", 10, "", "ab"},
		{"multi rune pad cut", "x", 8, "ab", "abaxabab"},
		{"unicode input", "سلام", 8, "-", "--سلام--"},
		{"unicode pad", "a", 4, "★", "★a★★"},
		{"empty input", "", 3, "*", "***"},
		{"negative length", "ab", -1, "*", "ab"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PadBoth(tc.input, tc.length, tc.pad))
		})
	}

	header := PadBoth(" DEBUG ", 50, "=")
	assert.Equal(t, strings.Repeat("=", 21)+" DEBUG "+strings.Repeat("=", 22), header)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" a "))
}
