// File: condx_test.go
// Title: Conditional Dispatch Tests
// Description: Tests for Condition evaluation, QuickSwitch ordering and the Switch builder.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package condx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCondition_Holds(t *testing.T) {
	testCases := []struct {
		name     string
		cond     Condition
		expected bool
	}{
		{"true value", Is(true), true},
		{"false value", Is(false), false},
		{"nil value", Is(nil), false},
		{"zero int", Is(0), false},
		{"non-zero int", Is(7), true},
		{"empty string", Is(""), false},
		{"zero string", Is("0"), false},
		{"text", Is("yes"), true},
		{"empty slice", Is([]int{}), false},
		{"filled map", Is(map[string]int{"a": 1}), true},
		{"predicate true", When(func() bool { return true }), true},
		{"predicate false", When(func() bool { return false }), false},
		{"nil predicate", When(nil), false},
		{"cond func bool", Cond(func() bool { return true }), true},
		{"cond func any truthy", Cond(func() interface{} { return "x" }), true},
		{"cond func any empty", Cond(func() interface{} { return 0 }), false},
		{"cond plain value", Cond(1.5), true},
		{"cond passes condition through", Cond(Is(false)), false},
		{"zero condition", Condition{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cond.Holds())
		})
	}
}

func TestQuickSwitch(t *testing.T) {
	t.Run("empty cases return default", func(t *testing.T) {
		assert.Equal(t, "def", QuickSwitch(nil, "def"))
		assert.Equal(t, "def", QuickSwitch([]Case[string]{}, "def"))
	})

	t.Run("no holding case returns default", func(t *testing.T) {
		cases := []Case[string]{On("a", false), On("b", 0), On("c", "")}
		assert.Equal(t, "def", QuickSwitch(cases, "def"))
	})

	t.Run("single holding case wins regardless of position", func(t *testing.T) {
		for pos := 0; pos < 3; pos++ {
			cases := []Case[int]{On(1, false), On(2, false), On(3, false)}
			cases[pos].Cond = Is(true)
			assert.Equal(t, pos+1, QuickSwitch(cases, -1))
		}
	})

	t.Run("first holding case wins", func(t *testing.T) {
		cases := []Case[string]{On("a", false), On("b", true), On("c", true)}
		assert.Equal(t, "b", QuickSwitch(cases, "def"))
	})

	t.Run("later predicates are not invoked", func(t *testing.T) {
		var calls []string
		track := func(name string, result bool) func() bool {
			return func() bool {
				calls = append(calls, name)
				return result
			}
		}

		cases := []Case[string]{
			On("a", track("a", false)),
			On("b", track("b", true)),
			On("c", track("c", true)),
		}
		assert.Equal(t, "b", QuickSwitch(cases, "def"))
		assert.Equal(t, []string{"a", "b"}, calls)
	})

	t.Run("non-comparable results", func(t *testing.T) {
		cases := []Case[[]int]{On([]int{1}, false), On([]int{2, 3}, 1)}
		assert.Equal(t, []int{2, 3}, QuickSwitch(cases, nil))
	})
}

func TestSwitch(t *testing.T) {
	classify := func(n int) string {
		return NewSwitch[string]().
			Case("large", n > 100).
			Case("medium", func() bool { return n > 10 }).
			Default("small").
			Eval()
	}

	assert.Equal(t, "large", classify(500))
	assert.Equal(t, "medium", classify(50))
	assert.Equal(t, "small", classify(5))

	assert.Equal(t, 0, NewSwitch[int]().Case(1, false).Eval())
}
