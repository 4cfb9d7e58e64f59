package resolve_test

import (
	"fmt"

	"github.com/katalvlaran/semalg/resolve"
	"github.com/katalvlaran/semalg/sement"
)

func ExampleGroup() {
	classes := resolve.Group([]sement.Equality{
		{"x1", "x2"},
		{"x3", "x4"},
		{"x1", "x4"},
		{"x5", "x6"},
	})
	for _, c := range classes {
		fmt.Println(c, "→", resolve.Representative(c))
	}
	// Output:
	// [x1 x2 x3 x4] → x1
	// [x5 x6] → x5
}
