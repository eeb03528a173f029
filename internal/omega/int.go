package omega

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Int is a signed integer extended with positive and negative infinity.
//
// A value is exactly one of Finite(n), PosInf, or NegInf. Int values are
// comparable with ==; the infinities carry no payload.
//
// Checked operations return (Int[N], error) and never produce an in-band
// sentinel such as NaN: an undefined combination of operands is reported
// as ErrIndeterminate and a range escape of the underlying type as
// ErrOverflow. The unchecked operations (Add, Sub, ...) panic where the
// checked form would return an error.
type Int[N constraints.Signed] struct {
	inf Sign // SignZero for finite values; payload is zero otherwise
	n   N
}

// Finite returns the extended value holding the finite integer n.
func Finite[N constraints.Signed](n N) Int[N] {
	return Int[N]{n: n}
}

// PosInf returns positive infinity (ω).
func PosInf[N constraints.Signed]() Int[N] {
	return Int[N]{inf: SignPositive}
}

// NegInf returns negative infinity (-ω).
func NegInf[N constraints.Signed]() Int[N] {
	return Int[N]{inf: SignNegative}
}

// Zero returns the additive identity. Neither infinity is ever zero.
func Zero[N constraints.Signed]() Int[N] {
	return Int[N]{}
}

// One returns the multiplicative identity. Neither infinity is ever one.
func One[N constraints.Signed]() Int[N] {
	return Int[N]{n: 1}
}

// IsInf reports which infinity the value is: SignPositive for ω,
// SignNegative for -ω, and SignZero for any finite value.
func (x Int[N]) IsInf() Sign {
	return x.inf
}

// IsFinite reports whether the value is finite.
func (x Int[N]) IsFinite() bool {
	return x.inf == SignZero
}

// Finite returns the finite payload. ok is false for either infinity.
func (x Int[N]) Finite() (n N, ok bool) {
	return x.n, x.inf == SignZero
}

// Sign returns the sign class of the value: the infinities map to ±1 and
// finite values to their numeric sign.
func (x Int[N]) Sign() Sign {
	if x.inf != SignZero {
		return x.inf
	}
	return SignOf(x.n)
}

// IsZero reports whether the value is the finite zero.
func (x Int[N]) IsZero() bool {
	return x.inf == SignZero && x.n == 0
}

// IsOne reports whether the value is the finite one.
func (x Int[N]) IsOne() bool {
	return x.inf == SignZero && x.n == 1
}

// String renders finite values in decimal and the infinities as ω and -ω.
func (x Int[N]) String() string {
	switch x.inf {
	case SignPositive:
		return "ω"
	case SignNegative:
		return "-ω"
	default:
		return fmt.Sprintf("%d", x.n)
	}
}

// CheckedAdd returns x + y.
//
// An infinity absorbs any finite operand; same-signed infinities combine to
// that infinity; opposite-signed infinities are indeterminate. Finite
// operands delegate to the underlying checked add.
func (x Int[N]) CheckedAdd(y Int[N]) (Int[N], error) {
	if x.inf != SignZero || y.inf != SignZero {
		switch {
		case x.inf == SignZero:
			return Int[N]{inf: y.inf}, nil
		case y.inf == SignZero:
			return Int[N]{inf: x.inf}, nil
		case x.inf == y.inf:
			return Int[N]{inf: x.inf}, nil
		default:
			return Int[N]{}, fmt.Errorf("%v + %v: %w", x, y, ErrIndeterminate)
		}
	}
	s, ok := checkedAdd(x.n, y.n)
	if !ok {
		return Int[N]{}, fmt.Errorf("%v + %v: %w", x, y, ErrOverflow)
	}
	return Finite(s), nil
}

// CheckedSub returns x - y, defined as x + (-y); consequently ω - ω is
// indeterminate and ω - (-ω) = ω.
func (x Int[N]) CheckedSub(y Int[N]) (Int[N], error) {
	if x.inf != SignZero || y.inf != SignZero {
		// Negating y only flips its tag here: whenever an operand is
		// infinite the finite payloads play no part in the sum.
		z, err := x.CheckedAdd(Int[N]{inf: -y.inf})
		if err != nil {
			return Int[N]{}, fmt.Errorf("%v - %v: %w", x, y, ErrIndeterminate)
		}
		return z, nil
	}
	d, ok := checkedSub(x.n, y.n)
	if !ok {
		return Int[N]{}, fmt.Errorf("%v - %v: %w", x, y, ErrOverflow)
	}
	return Finite(d), nil
}

// CheckedMul returns x × y.
//
// Infinities multiply by ordinary sign rules; an infinity times zero is
// indeterminate. Finite operands delegate to the underlying checked
// multiply.
func (x Int[N]) CheckedMul(y Int[N]) (Int[N], error) {
	if x.inf != SignZero || y.inf != SignZero {
		s := x.Sign() * y.Sign()
		if s == SignZero {
			return Int[N]{}, fmt.Errorf("%v × %v: %w", x, y, ErrIndeterminate)
		}
		return Int[N]{inf: s}, nil
	}
	p, ok := checkedMul(x.n, y.n)
	if !ok {
		return Int[N]{}, fmt.Errorf("%v × %v: %w", x, y, ErrOverflow)
	}
	return Finite(p), nil
}

// CheckedDiv returns x ÷ y.
//
// A finite dividend divided by either infinity is zero. An infinite
// dividend divided by a finite non-zero divisor is the infinity whose sign
// is the product of the operand signs. ω ÷ ω, division by a finite zero,
// and the underlying type's min ÷ -1 all fail.
func (x Int[N]) CheckedDiv(y Int[N]) (Int[N], error) {
	switch {
	case x.inf != SignZero && y.inf != SignZero:
		return Int[N]{}, fmt.Errorf("%v ÷ %v: %w", x, y, ErrIndeterminate)
	case x.inf != SignZero:
		s := x.inf * y.Sign()
		if s == SignZero {
			return Int[N]{}, fmt.Errorf("%v ÷ %v: %w", x, y, ErrIndeterminate)
		}
		return Int[N]{inf: s}, nil
	case y.inf != SignZero:
		return Zero[N](), nil
	}
	if y.n == 0 {
		return Int[N]{}, fmt.Errorf("%v ÷ %v: %w", x, y, ErrIndeterminate)
	}
	q, ok := checkedDiv(x.n, y.n)
	if !ok {
		return Int[N]{}, fmt.Errorf("%v ÷ %v: %w", x, y, ErrOverflow)
	}
	return Finite(q), nil
}

// CheckedRem returns x % y for finite operands.
//
// Remainder is only defined on finite values; calling it with an infinite
// operand is a contract violation and panics even in the checked form.
// A zero divisor is reported as ErrIndeterminate.
func (x Int[N]) CheckedRem(y Int[N]) (Int[N], error) {
	if x.inf != SignZero || y.inf != SignZero {
		panic(fmt.Sprintf("omega: remainder of %v %% %v: operands must be finite", x, y))
	}
	r, ok := checkedRem(x.n, y.n)
	if !ok {
		return Int[N]{}, fmt.Errorf("%v %% %v: %w", x, y, ErrIndeterminate)
	}
	return Finite(r), nil
}

// CheckedNeg returns -x. It fails only for the minimum finite value of N.
func (x Int[N]) CheckedNeg() (Int[N], error) {
	if x.inf != SignZero {
		return Int[N]{inf: -x.inf}, nil
	}
	n, ok := checkedNeg(x.n)
	if !ok {
		return Int[N]{}, fmt.Errorf("-(%v): %w", x, ErrOverflow)
	}
	return Finite(n), nil
}

// CheckedAbs returns the absolute value; the absolute value of either
// infinity is ω. It fails only for the minimum finite value of N.
func (x Int[N]) CheckedAbs() (Int[N], error) {
	if x.Sign() != SignNegative {
		return x, nil
	}
	return x.CheckedNeg()
}

// Add is the unchecked form of CheckedAdd.
func (x Int[N]) Add(y Int[N]) Int[N] {
	z, err := x.CheckedAdd(y)
	if err != nil {
		panic(err)
	}
	return z
}

// Sub is the unchecked form of CheckedSub.
func (x Int[N]) Sub(y Int[N]) Int[N] {
	z, err := x.CheckedSub(y)
	if err != nil {
		panic(err)
	}
	return z
}

// Mul is the unchecked form of CheckedMul.
func (x Int[N]) Mul(y Int[N]) Int[N] {
	z, err := x.CheckedMul(y)
	if err != nil {
		panic(err)
	}
	return z
}

// Div is the unchecked form of CheckedDiv.
func (x Int[N]) Div(y Int[N]) Int[N] {
	z, err := x.CheckedDiv(y)
	if err != nil {
		panic(err)
	}
	return z
}

// Rem is the unchecked form of CheckedRem.
func (x Int[N]) Rem(y Int[N]) Int[N] {
	z, err := x.CheckedRem(y)
	if err != nil {
		panic(err)
	}
	return z
}

// Neg is the unchecked form of CheckedNeg.
func (x Int[N]) Neg() Int[N] {
	z, err := x.CheckedNeg()
	if err != nil {
		panic(err)
	}
	return z
}

// Abs is the unchecked form of CheckedAbs.
func (x Int[N]) Abs() Int[N] {
	z, err := x.CheckedAbs()
	if err != nil {
		panic(err)
	}
	return z
}

// AbsSub returns |x - y|, panicking where the subtraction or the absolute
// value is undefined.
func (x Int[N]) AbsSub(y Int[N]) Int[N] {
	return x.Sub(y).Abs()
}

// Signum returns the finite value +1, -1, or 0 matching the sign class of
// x; the infinities yield ±1.
func (x Int[N]) Signum() Int[N] {
	return Finite(N(x.Sign()))
}
