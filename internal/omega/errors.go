package omega

import "errors"

var (
	// ErrOverflow indicates a finite-finite operation exceeded the range of
	// the underlying integer type.
	ErrOverflow = errors.New("omega: result exceeds the range of the underlying integer type")
	// ErrIndeterminate indicates the operands combine into a mathematically
	// undefined form, such as ω + (-ω), ω × 0, ω ÷ ω, or 0 ÷ 0.
	ErrIndeterminate = errors.New("omega: operation has no defined result")
)
