package ztensor

import (
	"fmt"

	"github.com/omega-ml/ztensor/indexing"
)

// Elem is the default element type for the matrix-oriented helpers and the
// dense-matrix bridge.
type Elem = complex128

// Generator computes the element at a finite index tuple.
//
// A generator must be pure: deterministic, side-effect free, and total over
// every finite tuple of the tensor's rank. It may not assume the indices
// lie inside the tensor's advertised ranges.
type Generator[T any] func(indices []int64) T

// Tensor is an immutable, lazily evaluated N-dimensional value.
//
// A tensor stores only its per-dimension ranges and a generator; no element
// is ever materialized by the tensor itself, which is what lets a dimension
// be unbounded at O(1) construction cost. Derived tensors (slices,
// transposes) are new values sharing the generator; a tensor is never
// mutated in place, so values may be shared freely across goroutines for
// reads as long as the generator itself captures no mutable state.
type Tensor[T any] struct {
	ranges []Range
	gen    Generator[T]
}

// New creates a tensor with the given per-dimension ranges and generator.
// The rank is fixed as len(ranges) for the life of the value. No element
// is evaluated. Panics if gen is nil.
func New[T any](ranges []Range, gen Generator[T]) *Tensor[T] {
	if gen == nil {
		panic("ztensor: nil generator")
	}
	rs := make([]Range, len(ranges))
	copy(rs, ranges)
	return &Tensor[T]{ranges: rs, gen: gen}
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return len(t.ranges)
}

// Extents returns a copy of the per-dimension ranges.
func (t *Tensor[T]) Extents() []Range {
	rs := make([]Range, len(t.ranges))
	copy(rs, t.ranges)
	return rs
}

// At evaluates the generator at the given index tuple.
//
// Panics if the number of indices does not match the tensor's rank.
// Indices outside the advertised ranges are not rejected; the ranges are
// advisory and the generator is total.
func (t *Tensor[T]) At(indices ...int64) T {
	if len(indices) != len(t.ranges) {
		panic(fmt.Sprintf("ztensor: got %d indices for a rank-%d tensor", len(indices), len(t.ranges)))
	}
	return t.gen(indices)
}

// Index returns a read handle on the element at the given index tuple.
//
// The handle wraps the computed value rather than a reference: lazy
// elements have no address until evaluated. This is the indexing.Indexer
// capability; the mutable counterpart does not apply to lazy tensors.
func (t *Tensor[T]) Index(indices []int64) indexing.Ref[T] {
	return indexing.NewRef(t.At(indices...))
}

// Clone returns an independent tensor value with the same ranges and the
// same generator. Cloning evaluates nothing.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return New(t.ranges, t.gen)
}
