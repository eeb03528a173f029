// Package ztensor provides the lazy tensor engine: immutable N-dimensional
// values whose elements are computed on demand by a pure generator function
// and whose per-dimension extents are half-open ranges bounded by extended
// integers, so a dimension may be unbounded in either direction.
package ztensor
