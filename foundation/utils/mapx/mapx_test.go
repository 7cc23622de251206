package mapx

import (
	"fmt"
	"reflect"
	"sort"
	"testing"
)

func TestKeys(t *testing.T) {
	testCases := []struct {
		name     string
		input    map[string]int
		expected []string
	}{
		{"normal map", map[string]int{"a": 1, "b": 2, "c": 3}, []string{"a", "b", "c"}},
		{"empty map", map[string]int{}, []string{}},
		{"nil map", nil, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Keys(tc.input)
			if result != nil {
				sort.Strings(result)
			}
			if !reflect.DeepEqual(result, tc.expected) {
				t.Errorf("Keys() = %v, want %v", result, tc.expected)
			}
		})
	}
}

func TestSortedKeys(t *testing.T) {
	t.Run("strings", func(t *testing.T) {
		result := SortedKeys(map[string]bool{"b": true, "10": true, "a": true, "1": true})
		expected := []string{"1", "10", "a", "b"}
		if !reflect.DeepEqual(result, expected) {
			t.Errorf("SortedKeys() = %v, want %v", result, expected)
		}
	})

	t.Run("ints", func(t *testing.T) {
		result := SortedKeys(map[int]string{3: "c", -1: "z", 2: "b"})
		expected := []int{-1, 2, 3}
		if !reflect.DeepEqual(result, expected) {
			t.Errorf("SortedKeys() = %v, want %v", result, expected)
		}
	})

	t.Run("nil", func(t *testing.T) {
		if result := SortedKeys[string, int](nil); result != nil {
			t.Errorf("SortedKeys(nil) = %v, want nil", result)
		}
	})
}

func ExampleSortedKeys() {
	fmt.Println(SortedKeys(map[string]int{"year": 1402, "day": 12, "month": 5}))
	// Output: [day month year]
}
