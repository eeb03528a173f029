package dense_test

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/omega-ml/ztensor/dense"
	"github.com/omega-ml/ztensor/omega"
	"github.com/omega-ml/ztensor/ztensor"
)

func cgrid(i, j int64) complex128 {
	return complex(float64(i), float64(j))
}

func TestToCDense(t *testing.T) {
	tn := ztensor.NewMatrix(ztensor.FiniteRange(0, 2), ztensor.FiniteRange(0, 3),
		func(i, j int64) complex128 { return complex(float64(i+10*j), 1) })

	m, err := dense.ToCDense(tn)
	require.NoError(t, err)

	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.Equal(t, complex(float64(i+10*j), 1), m.At(i, j))
		}
	}
}

func TestCDenseRoundTrip(t *testing.T) {
	m := mat.NewCDense(2, 3, []complex128{1, 2, 3, 4, 5, 6})

	tn := dense.FromCDense(m)
	ext := tn.Extents()
	require.True(t, ext[0].Equal(ztensor.FiniteRange(0, 2)))
	require.True(t, ext[1].Equal(ztensor.FiniteRange(0, 3)))

	back, err := dense.ToCDense(tn)
	require.NoError(t, err)
	assert.True(t, mat.CEqual(m, back))
}

func TestDenseRoundTrip(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})

	tn := dense.FromDense(m)
	assert.Equal(t, 4.0, tn.At(1, 1))

	back, err := dense.ToDense(tn)
	require.NoError(t, err)
	assert.True(t, mat.Equal(m, back))
}

// Materializing a window of an unbounded tensor: the dense cell (i, j)
// holds the element at the window's start offset plus (i, j).
func TestUnboundedWindow(t *testing.T) {
	grid := ztensor.NewMatrix(ztensor.All(), ztensor.All(), cgrid)
	window := grid.Slice(ztensor.FiniteRange(-4, 4), ztensor.FiniteRange(-5, 8))

	m, err := dense.ToCDense(window)
	require.NoError(t, err)

	r, c := m.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 13, c)
	assert.Equal(t, complex(-2.0, -2.0), m.At(2, 3))
}

// An infinite extent is a contract violation: the conversion panics and
// never calls the generator.
func TestInfiniteExtentPanics(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols ztensor.Range
	}{
		{"unbounded rows", ztensor.All(), ztensor.FiniteRange(0, 3)},
		{"unbounded cols", ztensor.FiniteRange(0, 3), ztensor.All()},
		{"half-bounded rows", ztensor.NewRange(omega.Finite[int64](0), omega.PosInf[int64]()), ztensor.FiniteRange(0, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			tn := ztensor.NewMatrix(tt.rows, tt.cols, func(i, j int64) complex128 {
				calls++
				return cgrid(i, j)
			})

			assert.Panics(t, func() { _, _ = dense.ToCDense(tn) })
			assert.Zero(t, calls)
		})
	}
}

func TestEmptyExtentRejected(t *testing.T) {
	tn := ztensor.NewMatrix(ztensor.FiniteRange(0, 0), ztensor.FiniteRange(0, 3), cgrid)
	_, err := dense.ToCDense(tn)
	require.Error(t, err)
}

func TestExtentBeyondIntRejected(t *testing.T) {
	if bits.UintSize == 64 {
		t.Skip("int covers every finite length on 64-bit platforms")
	}
	tn := ztensor.NewMatrix(ztensor.FiniteRange(0, math.MaxInt64), ztensor.FiniteRange(0, 3), cgrid)
	_, err := dense.ToCDense(tn)
	require.Error(t, err)
}

func TestMustToCDensePanics(t *testing.T) {
	tn := ztensor.NewMatrix(ztensor.FiniteRange(2, 2), ztensor.FiniteRange(0, 3), cgrid)
	assert.Panics(t, func() { dense.MustToCDense(tn) })
}

func TestRankContract(t *testing.T) {
	v := ztensor.NewVector(ztensor.FiniteRange(0, 3), func(i int64) complex128 { return cgrid(i, 0) })
	assert.Panics(t, func() { _, _ = dense.ToCDense(v) })
}

func TestConjTransThroughBridge(t *testing.T) {
	tn := ztensor.NewMatrix(ztensor.FiniteRange(0, 2), ztensor.FiniteRange(0, 3), cgrid)

	m, err := dense.ToCDense(ztensor.ConjTrans[complex128](tn))
	require.NoError(t, err)

	r, c := m.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	assert.Equal(t, complex(1.0, -2.0), m.At(2, 1))
}
