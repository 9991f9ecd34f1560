package ktbasis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dispersiv/khuri/curve"
	"github.com/dispersiv/khuri/grid"
	"github.com/dispersiv/khuri/ktbasis"
	"github.com/dispersiv/khuri/ktkernel"
	"github.com/dispersiv/khuri/numeric"
	"github.com/dispersiv/khuri/omnes"
)

func BenchmarkBasis_EvalOffContour(b *testing.B) {
	b.ReportAllocs()
	c, err := curve.VectorDecay(testPionMass, testVirtuality, testCut)
	require.NoError(b, err)
	g, err := grid.NewGrid(c, []int{2, 2, 2, 2, 2}, 2)
	require.NoError(b, err)

	phase := func(s float64) float64 { return 0.3 }
	o, err := omnes.NewInfiniteCut(phase, 4.0*testPionMass*testPionMass, 1e-10, numeric.DefaultSettings())
	require.NoError(b, err)
	piPi := func(complex128) complex128 { return complex(0.05, 0.02) }

	basis, err := ktbasis.New(o, piPi, 1, g, testPionMass, testVirtuality, ktkernel.Inverse, 0, 0)
	require.NoError(b, err)

	s := complex(10.0, 5.0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := basis.Eval(0, s); err != nil {
			b.Fatal(err)
		}
	}
}
