// Copyright 2025 The ZTensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dense converts between lazy tensors and gonum dense matrices.
//
// The conversion to a dense matrix materializes a rank-2 tensor over its
// advertised ranges, so both extents must be finite and non-empty. Handing
// the bridge a tensor with an infinite extent is a usage error and panics
// before any element is evaluated. The reverse direction wraps a gonum
// matrix in a tensor with zero-based ranges whose generator indexes
// straight into the matrix.
package dense

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/omega-ml/ztensor/ztensor"
)

// window validates a rank-2 extent set and returns the dense dimensions
// together with the start offset of each range. A wrong rank or an
// infinite extent is a usage error and panics; no element is evaluated and
// no partial conversion is performed.
func window(ext []ztensor.Range) (n [2]int, start [2]int64, err error) {
	if len(ext) != 2 {
		panic(fmt.Sprintf("dense: conversion requires a rank-2 tensor, got rank %d", len(ext)))
	}
	for d, r := range ext {
		length, lerr := r.Len()
		if lerr != nil {
			panic(fmt.Sprintf("dense: dimension %d has extent %v with no finite length", d, r))
		}
		ln, ok := length.Finite()
		if !ok {
			panic(fmt.Sprintf("dense: dimension %d has infinite extent %v", d, r))
		}
		if ln <= 0 {
			return n, start, fmt.Errorf("dense: dimension %d has non-positive length %d", d, ln)
		}
		if ln > math.MaxInt {
			return n, start, fmt.Errorf("dense: dimension %d length %d exceeds the addressable range", d, ln)
		}
		// Len being finite implies both endpoints are finite.
		start[d], _ = r.Start.Finite()
		n[d] = int(ln)
	}
	return n, start, nil
}

// ToCDense materializes a rank-2 complex tensor as a gonum CDense matrix
// with the same shape and element values, row-major over the advertised
// ranges. An infinite extent panics before any element is evaluated; an
// empty or unaddressably large extent is reported as an error.
func ToCDense(t ztensor.TensorLike[complex128]) (*mat.CDense, error) {
	n, start, err := window(t.Extents())
	if err != nil {
		return nil, err
	}
	m := mat.NewCDense(n[0], n[1], nil)
	for i := 0; i < n[0]; i++ {
		for j := 0; j < n[1]; j++ {
			m.Set(i, j, t.At(start[0]+int64(i), start[1]+int64(j)))
		}
	}
	return m, nil
}

// ToDense is ToCDense for real-valued tensors, producing a gonum Dense.
func ToDense(t ztensor.TensorLike[float64]) (*mat.Dense, error) {
	n, start, err := window(t.Extents())
	if err != nil {
		return nil, err
	}
	m := mat.NewDense(n[0], n[1], nil)
	for i := 0; i < n[0]; i++ {
		for j := 0; j < n[1]; j++ {
			m.Set(i, j, t.At(start[0]+int64(i), start[1]+int64(j)))
		}
	}
	return m, nil
}

// MustToCDense is the unchecked form of ToCDense.
func MustToCDense(t ztensor.TensorLike[complex128]) *mat.CDense {
	m, err := ToCDense(t)
	if err != nil {
		panic(err)
	}
	return m
}

// MustToDense is the unchecked form of ToDense.
func MustToDense(t ztensor.TensorLike[float64]) *mat.Dense {
	m, err := ToDense(t)
	if err != nil {
		panic(err)
	}
	return m
}

// FromCDense wraps a gonum complex matrix in a lazy tensor with zero-based
// finite ranges matching the matrix dimensions. The tensor's generator
// reads through to the matrix, so the matrix must not be mutated while the
// tensor is in use.
func FromCDense(m mat.CMatrix) *ztensor.Tensor[complex128] {
	r, c := m.Dims()
	return ztensor.NewMatrix(
		ztensor.FiniteRange(0, int64(r)),
		ztensor.FiniteRange(0, int64(c)),
		func(i, j int64) complex128 { return m.At(int(i), int(j)) },
	)
}

// FromDense is FromCDense for real-valued gonum matrices.
func FromDense(m mat.Matrix) *ztensor.Tensor[float64] {
	r, c := m.Dims()
	return ztensor.NewMatrix(
		ztensor.FiniteRange(0, int64(r)),
		ztensor.FiniteRange(0, int64(c)),
		func(i, j int64) float64 { return m.At(int(i), int(j)) },
	)
}
