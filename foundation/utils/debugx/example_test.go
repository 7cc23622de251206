package debugx_test

import (
	"os"

	"github.com/msto63/helperx/foundation/utils/debugx"
)

func ExampleFprint() {
	opts := debugx.Options{Header: "state", Separator: "=", Length: 20}
	_ = debugx.Fprint(os.Stdout, map[string]int{"a": 1}, opts)
	// Output:
	// ====== STATE =======
	// {
	//     "a": 1
	// }
	// ====================
}
