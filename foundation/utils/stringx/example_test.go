// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-12

package stringx_test

import (
	"fmt"

	"github.com/msto63/helperx/foundation/utils/stringx"
)

func ExampleExtractNumbers() {
	fmt.Println(stringx.ExtractNumbers("Price: $1,234.56"))
	fmt.Println(stringx.ExtractNumbers(-12.5))
	// Output:
	// 123456
	// 125
}

func ExampleFormat() {
	fmt.Println(stringx.Format("Hello {name}, welcome back {name}!", map[string]interface{}{
		"name": "Ada",
	}))
	// Output: Hello Ada, welcome back Ada!
}

func ExampleFormatArgs() {
	fmt.Println(stringx.FormatArgs("{0} + {1} = {2}", 1, 2, 3))
	// Output: 1 + 2 = 3
}

func ExamplePadBoth() {
	fmt.Println(stringx.PadBoth(" DEBUG ", 21, "="))
	// Output: ======= DEBUG =======
}
