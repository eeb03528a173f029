package ztensor

import "fmt"

// TensorLike is the minimal read capability of a tensor: element access
// plus extent metadata. Slicing, conjugate transposition, and the dense
// bridge are all defined against it rather than against the concrete
// Tensor type.
type TensorLike[T any] interface {
	// At returns the element at a finite index tuple.
	At(indices ...int64) T
	// Extents returns the per-dimension index ranges.
	Extents() []Range
}

// Slice derives a tensor with the given replacement ranges and an
// unchanged element rule: the new tensor's generator simply delegates to
// t, so the element at any index tuple is identical before and after.
// Slicing narrows (or widens) the advertised extent only; it performs no
// index translation and no clipping.
//
// This is the generic default for any TensorLike. Panics if the number of
// ranges does not match t's rank.
func Slice[T any](t TensorLike[T], ranges ...Range) *Tensor[T] {
	if rank := len(t.Extents()); len(ranges) != rank {
		panic(fmt.Sprintf("ztensor: got %d ranges for a rank-%d tensor", len(ranges), rank))
	}
	return New(ranges, func(indices []int64) T {
		return t.At(indices...)
	})
}

// Slice is a convenience method over the package-level Slice.
func (t *Tensor[T]) Slice(ranges ...Range) *Tensor[T] {
	return Slice[T](t, ranges...)
}
