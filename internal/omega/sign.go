package omega

import "golang.org/x/exp/constraints"

// Sign classifies a value as negative, zero, or positive.
// The infinities classify as SignNegative and SignPositive; every finite
// value classifies by its ordinary numeric sign.
type Sign int8

// Sign classes.
const (
	SignNegative Sign = -1
	SignZero     Sign = 0
	SignPositive Sign = 1
)

// String returns "-", "0", or "+".
func (s Sign) String() string {
	switch s {
	case SignNegative:
		return "-"
	case SignPositive:
		return "+"
	default:
		return "0"
	}
}

// SignOf returns the sign of a finite signed integer.
func SignOf[N constraints.Signed](n N) Sign {
	switch {
	case n > 0:
		return SignPositive
	case n < 0:
		return SignNegative
	default:
		return SignZero
	}
}
