package ztensor

import (
	"testing"
)

func cgrid(i, j int64) complex128 {
	return complex(float64(i), float64(j))
}

func TestConjTrans(t *testing.T) {
	m := NewMatrix(FiniteRange(0, 2), FiniteRange(0, 3), cgrid)
	ct := ConjTrans[complex128](m)

	ext := ct.Extents()
	if !ext[0].Equal(FiniteRange(0, 3)) || !ext[1].Equal(FiniteRange(0, 2)) {
		t.Errorf("ConjTrans extents = %v, want swapped", ext)
	}

	for i := int64(0); i < 2; i++ {
		for j := int64(0); j < 3; j++ {
			want := complex(real(m.At(i, j)), -imag(m.At(i, j)))
			if got := ct.At(j, i); got != want {
				t.Errorf("ct.At(%d, %d) = %v, want %v", j, i, got, want)
			}
		}
	}
}

func TestConjTransInvolution(t *testing.T) {
	m := NewMatrix(FiniteRange(-2, 2), FiniteRange(0, 3), cgrid)
	back := ConjTrans[complex128](ConjTrans[complex128](m))

	ext := back.Extents()
	orig := m.Extents()
	for d := range orig {
		if !ext[d].Equal(orig[d]) {
			t.Errorf("extent %d = %v, want %v", d, ext[d], orig[d])
		}
	}
	for i := int64(-2); i < 2; i++ {
		for j := int64(0); j < 3; j++ {
			if back.At(i, j) != m.At(i, j) {
				t.Errorf("double transpose changed element (%d, %d)", i, j)
			}
		}
	}
}

func TestConjTransNarrowComplex(t *testing.T) {
	m := NewMatrix(FiniteRange(0, 2), FiniteRange(0, 2), func(i, j int64) complex64 {
		return complex(float32(i), float32(j))
	})
	ct := ConjTrans[complex64](m)
	if got, want := ct.At(1, 0), complex(float32(0), float32(-1)); got != want {
		t.Errorf("complex64 ct.At(1, 0) = %v, want %v", got, want)
	}
}

func TestConjTransRankPanics(t *testing.T) {
	v := NewVector(FiniteRange(0, 3), func(i int64) complex128 { return complex(float64(i), 0) })
	assertPanics(t, "rank-1 conjugate transpose", func() { ConjTrans[complex128](v) })
}
