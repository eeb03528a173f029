// Copyright 2025 The ZTensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package indexing defines a generic indexing capability whose element
// access returns a small value-wrapping handle instead of a raw reference.
//
// The indirection exists for containers whose elements are not addressable:
// a lazy tensor's elements do not exist in memory until computed, so there
// is no element to point at. Storage-backed containers can share the
// same contract and additionally offer the mutable form.
package indexing

// Ref is a read-only handle on an element. It holds the element by value;
// reading it never re-evaluates the source container.
type Ref[T any] struct {
	v T
}

// NewRef wraps a computed element value in a read handle.
func NewRef[T any](v T) Ref[T] {
	return Ref[T]{v: v}
}

// Value returns the contained element.
func (r Ref[T]) Value() T {
	return r.v
}

// MutRef is a read-write handle on an element backed by caller-owned
// storage. Set writes through to that storage.
type MutRef[T any] struct {
	p *T
}

// NewMutRef wraps a storage location in a read-write handle.
func NewMutRef[T any](p *T) MutRef[T] {
	return MutRef[T]{p: p}
}

// Value returns the element currently held in the backing storage.
func (r MutRef[T]) Value() T {
	return *r.p
}

// Set overwrites the element in the backing storage.
func (r MutRef[T]) Set(v T) {
	*r.p = v
}

// Indexer is the read capability: an index maps to a read handle.
type Indexer[Idx, T any] interface {
	Index(idx Idx) Ref[T]
}

// MutIndexer extends Indexer with read-write access. Containers whose
// elements are computed rather than stored implement only Indexer.
type MutIndexer[Idx, T any] interface {
	Indexer[Idx, T]
	IndexMut(idx Idx) MutRef[T]
}
