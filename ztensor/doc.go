// Copyright 2025 The ZTensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ztensor provides lazily evaluated tensors with potentially
// infinite extents.
//
// # Overview
//
// A Tensor[T] stores no elements: it holds a pure generator function and a
// half-open range per dimension, bounded by extended integers from the
// omega package. Elements are computed on demand, so a tensor over the
// whole index grid costs O(1) to build and only the portion actually
// queried is ever evaluated. Ranges are advisory: access is never clipped
// against them.
//
// Tensors are immutable. Slicing and conjugate transposition derive new
// tensor values that delegate to the original's generator.
//
// # Basic Usage
//
//	t := ztensor.NewMatrix(
//	    ztensor.FiniteRange(0, 3),
//	    ztensor.FiniteRange(0, 4),
//	    func(i, j int64) complex128 { return complex(float64(i+10*j), 0) },
//	)
//	v := t.At(2, 3) // (32+0i), computed on demand
//
//	// A matrix over all of ℤ²; only queried cells are evaluated.
//	grid := ztensor.NewMatrix(ztensor.All(), ztensor.All(),
//	    func(i, j int64) complex128 { return complex(float64(i), float64(j)) })
//	window := grid.Slice(ztensor.FiniteRange(-4, 4), ztensor.FiniteRange(-5, 8))
package ztensor
