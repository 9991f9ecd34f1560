package amplitude_test

import (
	"fmt"
	"math/cmplx"

	"github.com/dispersiv/khuri/amplitude"
)

func ExampleChptLO() {
	mass := 0.1396
	decay := 0.0924
	threshold := 4.0 * mass * mass
	value := amplitude.ChptLO(mass, complex(threshold, 0), decay)
	fmt.Println(value == 0)
	// Output:
	// true
}

func ExampleIAM() {
	mass := 0.1396
	decay := 0.0924
	lDiff := 4.0
	s := complex(0.3, 0)
	value := amplitude.IAM(mass, s, decay, lDiff)
	fmt.Println(value != 0)
	// Output:
	// true
}

func ExampleSecondSheet() {
	mass := 0.1396
	amp := func(s complex128) complex128 { return complex(0.1, 0.02) }
	second := amplitude.SecondSheet(mass, amp)
	first := amplitude.FirstSheet(mass, second)
	s := complex(0.5, 0.1)
	recovered := amp(s) - first(s)
	fmt.Printf("%.6f\n", cmplx.Abs(recovered))
	// Output:
	// 0.000000
}
