package ztensor

import (
	"fmt"

	"github.com/omega-ml/ztensor/internal/omega"
)

// FiniteIndex is the integer type used for concrete element indices.
type FiniteIndex = int64

// Index is an extended index value: a finite int64, ω, or -ω.
type Index = omega.Int[int64]

// Range is a half-open index interval [Start, End) along one tensor
// dimension. Either endpoint may be infinite.
//
// Ranges are advisory metadata about a tensor's intended extent; element
// access is never clipped against them.
type Range struct {
	Start Index
	End   Index
}

// NewRange returns the half-open range [start, end).
func NewRange(start, end Index) Range {
	return Range{Start: start, End: end}
}

// FiniteRange returns the half-open range [start, end) with finite bounds.
func FiniteRange(start, end int64) Range {
	return Range{Start: omega.Finite(start), End: omega.Finite(end)}
}

// All returns the unbounded range [-ω, ω), covering every finite index.
func All() Range {
	return Range{Start: omega.NegInf[int64](), End: omega.PosInf[int64]()}
}

// Len returns End - Start as an extended integer. It fails when the
// difference is indeterminate, e.g. for [ω, ω).
func (r Range) Len() (Index, error) {
	return r.End.CheckedSub(r.Start)
}

// IsFinite reports whether both endpoints are finite.
func (r Range) IsFinite() bool {
	return r.Start.IsFinite() && r.End.IsFinite()
}

// Equal reports whether two ranges have identical endpoints.
func (r Range) Equal(other Range) bool {
	return r == other
}

// String renders the range in half-open interval notation.
func (r Range) String() string {
	return fmt.Sprintf("[%v, %v)", r.Start, r.End)
}
