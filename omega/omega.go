// Copyright 2025 The ZTensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package omega re-exports the extended-integer core.
package omega

import (
	"golang.org/x/exp/constraints"

	"github.com/omega-ml/ztensor/internal/omega"
)

// Sign classifies a value as negative, zero, or positive; the infinities
// classify as ±1.
type Sign = omega.Sign

// Sign classes.
const (
	SignNegative = omega.SignNegative
	SignZero     = omega.SignZero
	SignPositive = omega.SignPositive
)

// Int is a signed integer extended with ω and -ω.
type Int[N constraints.Signed] = omega.Int[N]

// UInt is an unsigned integer extended with a single ω.
type UInt[N constraints.Unsigned] = omega.UInt[N]

// Failure sentinels for checked arithmetic.
var (
	ErrOverflow      = omega.ErrOverflow
	ErrIndeterminate = omega.ErrIndeterminate
)

// SignOf returns the sign of a finite signed integer.
func SignOf[N constraints.Signed](n N) Sign {
	return omega.SignOf(n)
}

// Finite returns the extended value holding the finite integer n.
func Finite[N constraints.Signed](n N) Int[N] {
	return omega.Finite(n)
}

// PosInf returns positive infinity (ω).
func PosInf[N constraints.Signed]() Int[N] {
	return omega.PosInf[N]()
}

// NegInf returns negative infinity (-ω).
func NegInf[N constraints.Signed]() Int[N] {
	return omega.NegInf[N]()
}

// Zero returns the signed additive identity.
func Zero[N constraints.Signed]() Int[N] {
	return omega.Zero[N]()
}

// One returns the signed multiplicative identity.
func One[N constraints.Signed]() Int[N] {
	return omega.One[N]()
}

// Natural returns the extended value holding the finite natural number n.
func Natural[N constraints.Unsigned](n N) UInt[N] {
	return omega.Natural(n)
}

// Inf returns the unsigned infinity ω.
func Inf[N constraints.Unsigned]() UInt[N] {
	return omega.Inf[N]()
}

// UZero returns the unsigned additive identity.
func UZero[N constraints.Unsigned]() UInt[N] {
	return omega.UZero[N]()
}

// UOne returns the unsigned multiplicative identity.
func UOne[N constraints.Unsigned]() UInt[N] {
	return omega.UOne[N]()
}
