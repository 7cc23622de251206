// File: validation_test.go
// Title: Validation Predicate Tests
// Description: Tests for emptiness, truthiness, numeric detection, coercion and
//              loose equality.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12

package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct{ Name string }

func TestIsEmptyLike(t *testing.T) {
	var nilPtr *sample
	var nilMap map[string]int
	var nilFunc func()

	testCases := []struct {
		name  string
		value interface{}
		empty bool
	}{
		{"nil", nil, true},
		{"false", false, true},
		{"true", true, false},
		{"zero int", 0, true},
		{"zero int64", int64(0), true},
		{"zero uint8", uint8(0), true},
		{"zero float", 0.0, true},
		{"negative zero float", math.Copysign(0, -1), true},
		{"non-zero int", 5, false},
		{"NaN", math.NaN(), false},
		{"empty string", "", true},
		{"string zero", "0", true},
		{"string zero point zero", "0.0", false},
		{"space", " ", false},
		{"text", "abc", false},
		{"empty slice", []int{}, true},
		{"slice", []int{0}, false},
		{"empty map", map[string]int{}, true},
		{"nil map", nilMap, true},
		{"empty array", [0]int{}, true},
		{"nil pointer", nilPtr, true},
		{"pointer", &sample{}, false},
		{"struct", sample{}, false},
		{"nil func", nilFunc, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.empty, IsEmptyLike(tc.value))
			assert.Equal(t, !tc.empty, IsTruthyLike(tc.value))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	testCases := []struct {
		value   interface{}
		numeric bool
	}{
		{7, true},
		{uint16(7), true},
		{-3.5, true},
		{float32(1.25), true},
		{"7", true},
		{"-7", true},
		{"+7", true},
		{"7.5", true},
		{".5", true},
		{"5.", true},
		{"1e3", true},
		{"1.5E-3", true},
		{"  42  ", true},
		{"\t42\n", true},
		{"", false},
		{" ", false},
		{"abc", false},
		{"12abc", false},
		{"0x1A", false},
		{"1_000", false},
		{"inf", false},
		{"NaN", false},
		{"1e", false},
		{".", false},
		{"--1", false},
		{true, false},
		{nil, false},
		{[]int{1}, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.numeric, IsNumeric(tc.value), "IsNumeric(%#v)", tc.value)
	}
}

func TestToInt(t *testing.T) {
	testCases := []struct {
		value interface{}
		want  int64
		ok    bool
	}{
		{"7", 7, true},
		{" 7 ", 7, true},
		{"+7", 7, true},
		{"7.9", 7, true},
		{"-7.9", -7, true},
		{"1e3", 1000, true},
		{7.9, 7, true},
		{-7.9, -7, true},
		{uint64(math.MaxUint64), math.MaxInt64, true},
		{"99999999999999999999", math.MaxInt64, true},
		{"-99999999999999999999", math.MinInt64, true},
		{1e300, math.MaxInt64, true},
		{math.NaN(), 0, true},
		{math.Inf(1), 0, true},
		{"abc", 0, false},
		{nil, 0, false},
	}

	for _, tc := range testCases {
		got, ok := ToInt(tc.value)
		assert.Equal(t, tc.ok, ok, "ToInt(%#v) ok", tc.value)
		assert.Equal(t, tc.want, got, "ToInt(%#v)", tc.value)
	}
}

func TestToFloat(t *testing.T) {
	testCases := []struct {
		value interface{}
		want  float64
		ok    bool
	}{
		{"7", 7, true},
		{"7.25", 7.25, true},
		{" .5", 0.5, true},
		{int8(-3), -3, true},
		{uint(3), 3, true},
		{"1e400", math.Inf(1), true},
		{"x", 0, false},
	}

	for _, tc := range testCases {
		got, ok := ToFloat(tc.value)
		assert.Equal(t, tc.ok, ok, "ToFloat(%#v) ok", tc.value)
		assert.Equal(t, tc.want, got, "ToFloat(%#v)", tc.value)
	}
}

func TestLooseEqual(t *testing.T) {
	testCases := []struct {
		name  string
		a, b  interface{}
		equal bool
	}{
		{"same int", 2, 2, true},
		{"int and int64", 2, int64(2), true},
		{"int and float", 2, 2.0, true},
		{"int and numeric string", 2, "2", true},
		{"float string and int", "2.0", 2, true},
		{"large ints stay exact", int64(9007199254740993), int64(9007199254740992), false},
		{"different numbers", 2, 3, false},
		{"strings", "a", "a", true},
		{"string vs number", "a", 0, false},
		{"bools", true, true, true},
		{"bool vs int", true, 1, false},
		{"nil vs nil", nil, nil, true},
		{"nil vs empty", nil, "", false},
		{"slices", []int{1}, []int{1}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.equal, LooseEqual(tc.a, tc.b))
		})
	}
}

func TestContains(t *testing.T) {
	allowed := []interface{}{1, 2, 3}
	assert.True(t, Contains(allowed, 2))
	assert.True(t, Contains(allowed, "3"))
	assert.False(t, Contains(allowed, 5))
	assert.False(t, Contains(nil, 1))
	assert.False(t, Contains([]interface{}{}, 1))
}
