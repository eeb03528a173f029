package omega

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// UInt is an unsigned integer extended with a single infinity (ω).
//
// A value is exactly one of Natural(n) or Inf; because the underlying
// domain is non-negative, only one infinite value exists. UInt values are
// comparable with ==.
//
// The checked/unchecked split mirrors Int: checked operations return
// (UInt[N], error), unchecked ones panic.
type UInt[N constraints.Unsigned] struct {
	inf bool
	n   N
}

// Natural returns the extended value holding the finite natural number n.
func Natural[N constraints.Unsigned](n N) UInt[N] {
	return UInt[N]{n: n}
}

// Inf returns the infinite value ω.
func Inf[N constraints.Unsigned]() UInt[N] {
	return UInt[N]{inf: true}
}

// UZero returns the additive identity. Infinity is never zero.
func UZero[N constraints.Unsigned]() UInt[N] {
	return UInt[N]{}
}

// UOne returns the multiplicative identity. Infinity is never one.
func UOne[N constraints.Unsigned]() UInt[N] {
	return UInt[N]{n: 1}
}

// IsOmega reports whether the value is ω.
func (x UInt[N]) IsOmega() bool {
	return x.inf
}

// IsFinite reports whether the value is finite.
func (x UInt[N]) IsFinite() bool {
	return !x.inf
}

// Finite returns the finite payload. ok is false for ω.
func (x UInt[N]) Finite() (n N, ok bool) {
	return x.n, !x.inf
}

// IsZero reports whether the value is the finite zero.
func (x UInt[N]) IsZero() bool {
	return !x.inf && x.n == 0
}

// IsOne reports whether the value is the finite one.
func (x UInt[N]) IsOne() bool {
	return !x.inf && x.n == 1
}

// SetOmega overwrites the value with ω.
func (x *UInt[N]) SetOmega() {
	*x = Inf[N]()
}

// String renders finite values in decimal and infinity as ω.
func (x UInt[N]) String() string {
	if x.inf {
		return "ω"
	}
	return fmt.Sprintf("%d", x.n)
}

// CheckedAdd returns x + y. Any infinite operand makes the sum infinite,
// and a finite sum that escapes the range of N saturates to ω as well.
func (x UInt[N]) CheckedAdd(y UInt[N]) (UInt[N], error) {
	if x.inf || y.inf {
		return Inf[N](), nil
	}
	s, ok := checkedAddU(x.n, y.n)
	if !ok {
		return Inf[N](), nil
	}
	return Natural(s), nil
}

// CheckedSub returns x - y.
//
// ω minus any finite value is ω. A finite value minus ω has no
// representation (there are no negative magnitudes), ω - ω is
// indeterminate, and a finite difference below zero overflows.
func (x UInt[N]) CheckedSub(y UInt[N]) (UInt[N], error) {
	switch {
	case x.inf && y.inf:
		return UInt[N]{}, fmt.Errorf("%v - %v: %w", x, y, ErrIndeterminate)
	case x.inf:
		return Inf[N](), nil
	case y.inf:
		return UInt[N]{}, fmt.Errorf("%v - %v: %w", x, y, ErrOverflow)
	}
	d, ok := checkedSubU(x.n, y.n)
	if !ok {
		return UInt[N]{}, fmt.Errorf("%v - %v: %w", x, y, ErrOverflow)
	}
	return Natural(d), nil
}

// CheckedMul returns x × y.
//
// Zero times ω is indeterminate in either operand order; any other
// product with an infinite operand is ω. Finite operands delegate to the
// underlying checked multiply.
func (x UInt[N]) CheckedMul(y UInt[N]) (UInt[N], error) {
	if x.inf || y.inf {
		if x.IsZero() || y.IsZero() {
			return UInt[N]{}, fmt.Errorf("%v × %v: %w", x, y, ErrIndeterminate)
		}
		return Inf[N](), nil
	}
	p, ok := checkedMulU(x.n, y.n)
	if !ok {
		return UInt[N]{}, fmt.Errorf("%v × %v: %w", x, y, ErrOverflow)
	}
	return Natural(p), nil
}

// CheckedDiv returns x ÷ y.
//
// ω divided by anything finite is ω, anything finite divided by ω is
// zero, and ω ÷ ω, x ÷ 0 for finite non-zero x, and 0 ÷ 0 all fail.
func (x UInt[N]) CheckedDiv(y UInt[N]) (UInt[N], error) {
	switch {
	case x.inf && y.inf:
		return UInt[N]{}, fmt.Errorf("%v ÷ %v: %w", x, y, ErrIndeterminate)
	case x.inf:
		return Inf[N](), nil
	case y.inf:
		return UZero[N](), nil
	}
	q, ok := checkedDivU(x.n, y.n)
	if !ok {
		return UInt[N]{}, fmt.Errorf("%v ÷ %v: %w", x, y, ErrIndeterminate)
	}
	return Natural(q), nil
}

// CheckedRem returns x % y for finite operands.
//
// As with Int, an infinite operand is a contract violation and panics even
// in the checked form; a zero divisor is reported as ErrIndeterminate.
func (x UInt[N]) CheckedRem(y UInt[N]) (UInt[N], error) {
	if x.inf || y.inf {
		panic(fmt.Sprintf("omega: remainder of %v %% %v: operands must be finite", x, y))
	}
	r, ok := checkedRemU(x.n, y.n)
	if !ok {
		return UInt[N]{}, fmt.Errorf("%v %% %v: %w", x, y, ErrIndeterminate)
	}
	return Natural(r), nil
}

// Add is the unchecked form of CheckedAdd.
func (x UInt[N]) Add(y UInt[N]) UInt[N] {
	z, err := x.CheckedAdd(y)
	if err != nil {
		panic(err)
	}
	return z
}

// Sub is the unchecked form of CheckedSub.
func (x UInt[N]) Sub(y UInt[N]) UInt[N] {
	z, err := x.CheckedSub(y)
	if err != nil {
		panic(err)
	}
	return z
}

// Mul is the unchecked form of CheckedMul.
func (x UInt[N]) Mul(y UInt[N]) UInt[N] {
	z, err := x.CheckedMul(y)
	if err != nil {
		panic(err)
	}
	return z
}

// Div is the unchecked form of CheckedDiv.
func (x UInt[N]) Div(y UInt[N]) UInt[N] {
	z, err := x.CheckedDiv(y)
	if err != nil {
		panic(err)
	}
	return z
}

// Rem is the unchecked form of CheckedRem.
func (x UInt[N]) Rem(y UInt[N]) UInt[N] {
	z, err := x.CheckedRem(y)
	if err != nil {
		panic(err)
	}
	return z
}
