package curve_test

import (
	"fmt"

	"github.com/dispersiv/khuri/curve"
)

// ExamplePiecewise_Eval demonstrates a three-knot linear contour.
func ExamplePiecewise_Eval() {
	p, _ := curve.NewPiecewise([]complex128{0, complex(1, 1), complex(2, 2)}, curve.AllLinear(2))
	value, _ := p.Eval(0.5)
	fmt.Println(value)
	// Output:
	// (0.5+0.5i)
}
