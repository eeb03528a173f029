package ztensor

import (
	"math/cmplx"

	"golang.org/x/exp/constraints"
)

// Rank-specific constructors. A scalar is a rank-0 tensor, a vector rank 1,
// a matrix rank 2; the rank is carried by the range slice at runtime.

// NewScalar creates a rank-0 tensor whose single element is computed by gen.
func NewScalar[T any](gen func() T) *Tensor[T] {
	return New(nil, func([]int64) T { return gen() })
}

// NewVector creates a rank-1 tensor over the range r.
func NewVector[T any](r Range, gen func(i int64) T) *Tensor[T] {
	return New([]Range{r}, func(indices []int64) T {
		return gen(indices[0])
	})
}

// NewMatrix creates a rank-2 tensor over the row range rows and column
// range cols.
func NewMatrix[T any](rows, cols Range, gen func(i, j int64) T) *Tensor[T] {
	return New([]Range{rows, cols}, func(indices []int64) T {
		return gen(indices[0], indices[1])
	})
}

// ConjTrans returns the conjugate transpose of a rank-2 tensor: the two
// extents are swapped and the element at (i, j) is the complex conjugate
// of m's element at (j, i). Panics if m is not rank 2.
func ConjTrans[T constraints.Complex](m TensorLike[T]) *Tensor[T] {
	ext := m.Extents()
	if len(ext) != 2 {
		panic("ztensor: conjugate transpose requires a rank-2 tensor")
	}
	return New([]Range{ext[1], ext[0]}, func(indices []int64) T {
		return conj(m.At(indices[1], indices[0]))
	})
}

func conj[T constraints.Complex](v T) T {
	return T(cmplx.Conj(complex128(v)))
}
