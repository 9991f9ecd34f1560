package omnes_test

import (
	"testing"

	"github.com/dispersiv/khuri/numeric"
	"github.com/dispersiv/khuri/omnes"
)

func BenchmarkOmnes_Eval(b *testing.B) {
	b.ReportAllocs()
	phase := func(s float64) float64 { return 1.0 + 2.0/s }
	o, err := omnes.NewInfiniteCut(phase, 4.0, 1e-10, numeric.DefaultSettings())
	if err != nil {
		b.Fatal(err)
	}
	s := complex(10.0, 1.0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := o.Eval(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOmnes_SecondSheet(b *testing.B) {
	b.ReportAllocs()
	phase := func(s float64) float64 { return 1.0 + 2.0/s }
	o, err := omnes.NewInfiniteCut(phase, 4.0, 1e-10, numeric.DefaultSettings())
	if err != nil {
		b.Fatal(err)
	}
	amplitude := func(complex128) complex128 { return complex(0.1, 0.2) }
	s := complex(10.0, 0.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := o.SecondSheet(s, amplitude); err != nil {
			b.Fatal(err)
		}
	}
}
