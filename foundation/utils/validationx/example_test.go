package validationx_test

import (
	"fmt"

	"github.com/msto63/helperx/foundation/utils/validationx"
)

func ExampleValidateOrDefault() {
	fmt.Println(validationx.ValidateOrDefault(5, []interface{}{1, 2, 3}, 0))
	fmt.Println(validationx.ValidateOrDefault(2, []interface{}{1, 2, 3}, 0))
	fmt.Println(validationx.ValidateOrDefault(nil, nil, "x"))
	// Output:
	// 0
	// 2
	// x
}

func ExampleValidateNumberOrDefault() {
	fmt.Println(validationx.ValidateNumberOrDefault("7", false, 1, 10, nil, -1))
	fmt.Println(validationx.ValidateNumberOrDefault("15", false, 1, 10, nil, -1))
	fmt.Println(validationx.ValidateNumberOrDefault("abc", false, nil, nil, nil, 0))
	// Output:
	// 7
	// -1
	// 0
}

func ExampleAsBoolean() {
	fmt.Println(validationx.AsBoolean("true"), validationx.AsBoolean("TRUE"), validationx.AsBoolean(1))
	// Output: true false true
}
