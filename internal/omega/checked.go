package omega

import "golang.org/x/exp/constraints"

// Checked arithmetic over the raw machine integers. The signed overflow
// tests work on the sign bits of the inputs and result, so they hold for
// every width in the constraints.Signed type set; no per-width limit
// tables are needed.

func checkedAdd[N constraints.Signed](a, b N) (N, bool) {
	s := a + b
	if (s^a)&(s^b) < 0 {
		return 0, false
	}
	return s, true
}

func checkedSub[N constraints.Signed](a, b N) (N, bool) {
	d := a - b
	if (d^a) & ^(d^b) < 0 {
		return 0, false
	}
	return d, true
}

// checkedNeg fails only for the minimum value of N.
func checkedNeg[N constraints.Signed](a N) (N, bool) {
	if a < 0 && -a < 0 {
		return 0, false
	}
	return -a, true
}

func checkedMul[N constraints.Signed](a, b N) (N, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// Factor out -1 so the division back-check below can never divide the
	// minimum value by -1.
	if a == -1 {
		return checkedNeg(b)
	}
	if b == -1 {
		return checkedNeg(a)
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

func checkedDiv[N constraints.Signed](a, b N) (N, bool) {
	if b == 0 {
		return 0, false
	}
	if b == -1 {
		return checkedNeg(a)
	}
	return a / b, true
}

func checkedRem[N constraints.Signed](a, b N) (N, bool) {
	if b == 0 {
		return 0, false
	}
	if b == -1 {
		// a % -1 is always 0, but the hardware remainder faults on min % -1.
		return 0, true
	}
	return a % b, true
}

func checkedAddU[N constraints.Unsigned](a, b N) (N, bool) {
	s := a + b
	if s < a {
		return 0, false
	}
	return s, true
}

func checkedSubU[N constraints.Unsigned](a, b N) (N, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

func checkedMulU[N constraints.Unsigned](a, b N) (N, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

func checkedDivU[N constraints.Unsigned](a, b N) (N, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

func checkedRemU[N constraints.Unsigned](a, b N) (N, bool) {
	if b == 0 {
		return 0, false
	}
	return a % b, true
}
