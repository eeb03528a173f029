// Copyright 2025 The ZTensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package omega provides integer types extended with infinity values.
//
// # Overview
//
// Two families of extended integers are provided:
//   - Int[N]: a signed integer extended with ω and -ω
//   - UInt[N]: an unsigned integer extended with a single ω
//
// Every arithmetic operation has a checked form returning (value, error)
// and an unchecked form that panics where the checked form fails. Failures
// are explicit; there is no NaN-style in-band propagation:
//   - ErrOverflow: a finite result escaped the underlying type's range
//   - ErrIndeterminate: the operands form an undefined combination,
//     such as ω + (-ω), ω × 0, ω ÷ ω, or 0 ÷ 0
//
// Remainder is defined only on finite operands; an infinite operand is a
// usage error and panics even in the checked form.
//
// # Basic Usage
//
//	x := omega.Finite(int64(41)).Add(omega.One[int64]()) // Finite(42)
//	w := omega.PosInf[int64]().Add(x)                    // ω
//
//	if _, err := omega.PosInf[int64]().CheckedAdd(omega.NegInf[int64]()); err != nil {
//	    // errors.Is(err, omega.ErrIndeterminate)
//	}
package omega
