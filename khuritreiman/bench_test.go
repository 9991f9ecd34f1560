package khuritreiman_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dispersiv/khuri/khuritreiman"
	"github.com/dispersiv/khuri/ktkernel"
)

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	cfg := khuritreiman.Config{
		Phase:             flatPhase,
		Amplitude:         flatAmplitude,
		PionMass:          testPionMass,
		Virtuality:        testVirtuality,
		Subtractions:      1,
		Contour:           khuritreiman.VectorDecayContour,
		Cut:               testCut,
		SegmentKnotCounts: []int{2, 2, 2, 2, 2},
		ZKnotCount:        2,
		Solver:            ktkernel.Inverse,
	}
	for i := 0; i < b.N; i++ {
		if _, err := khuritreiman.Solve(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBasis_Eval(b *testing.B) {
	b.ReportAllocs()
	basis, err := khuritreiman.Solve(khuritreiman.Config{
		Phase:             flatPhase,
		Amplitude:         flatAmplitude,
		PionMass:          testPionMass,
		Virtuality:        testVirtuality,
		Subtractions:      1,
		Contour:           khuritreiman.VectorDecayContour,
		Cut:               testCut,
		SegmentKnotCounts: []int{2, 2, 2, 2, 2},
		ZKnotCount:        2,
		Solver:            ktkernel.Inverse,
	})
	require.NoError(b, err)
	s := complex(10.0, 5.0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := basis.Eval(0, s); err != nil {
			b.Fatal(err)
		}
	}
}
