// Copyright 2025 The ZTensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ztensor re-exports the lazy tensor engine.
package ztensor

import (
	"golang.org/x/exp/constraints"

	"github.com/omega-ml/ztensor/internal/ztensor"
)

// FiniteIndex is the integer type used for concrete element indices.
type FiniteIndex = ztensor.FiniteIndex

// Index is an extended index value: a finite int64, ω, or -ω.
type Index = ztensor.Index

// Range is a half-open, possibly unbounded index interval along one
// dimension.
type Range = ztensor.Range

// Generator computes the element at a finite index tuple. It must be pure
// and total over all finite tuples of the tensor's rank.
type Generator[T any] = ztensor.Generator[T]

// Tensor is an immutable, lazily evaluated N-dimensional value.
type Tensor[T any] = ztensor.Tensor[T]

// TensorLike is the minimal read capability: element access plus extents.
type TensorLike[T any] = ztensor.TensorLike[T]

// Elem is the default element type for the matrix helpers and the dense
// bridge.
type Elem = ztensor.Elem

// NewRange returns the half-open range [start, end).
func NewRange(start, end Index) Range {
	return ztensor.NewRange(start, end)
}

// FiniteRange returns the half-open range [start, end) with finite bounds.
func FiniteRange(start, end int64) Range {
	return ztensor.FiniteRange(start, end)
}

// All returns the unbounded range [-ω, ω).
func All() Range {
	return ztensor.All()
}

// New creates a tensor from per-dimension ranges and a generator. No
// element is evaluated.
func New[T any](ranges []Range, gen Generator[T]) *Tensor[T] {
	return ztensor.New(ranges, gen)
}

// NewScalar creates a rank-0 tensor.
func NewScalar[T any](gen func() T) *Tensor[T] {
	return ztensor.NewScalar(gen)
}

// NewVector creates a rank-1 tensor over the range r.
func NewVector[T any](r Range, gen func(i int64) T) *Tensor[T] {
	return ztensor.NewVector(r, gen)
}

// NewMatrix creates a rank-2 tensor over row and column ranges.
func NewMatrix[T any](rows, cols Range, gen func(i, j int64) T) *Tensor[T] {
	return ztensor.NewMatrix(rows, cols, gen)
}

// Slice derives a tensor with replacement ranges and an unchanged element
// rule from any TensorLike.
func Slice[T any](t TensorLike[T], ranges ...Range) *Tensor[T] {
	return ztensor.Slice(t, ranges...)
}

// ConjTrans returns the conjugate transpose of a rank-2 tensor.
func ConjTrans[T constraints.Complex](m TensorLike[T]) *Tensor[T] {
	return ztensor.ConjTrans(m)
}
