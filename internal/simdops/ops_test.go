package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_Float64(t *testing.T) {
	ops := For[float64]()
	require.NotNil(t, ops)

	a := []float64{1, 2, 3, 4}
	b := []float64{4, 3, 2, 1}
	assert.InDelta(t, 20.0, ops.DotProductUnsafe(a, b), 1e-12)
	assert.InDelta(t, 10.0, ops.Sum(a), 1e-12)
}

func TestFor_Float32(t *testing.T) {
	ops := For[float32]()
	require.NotNil(t, ops)

	a := []float32{0.5, 1.5, 2.5}
	b := []float32{2, 2, 2}
	assert.InDelta(t, 9.0, float64(ops.DotProductUnsafe(a, b)), 1e-6)
	assert.InDelta(t, 4.5, float64(ops.Sum(a)), 1e-6)
}

// TestFor_ReturnsSharedInstance verifies For does not allocate per call.
func TestFor_ReturnsSharedInstance(t *testing.T) {
	assert.Same(t, For[float64](), For[float64]())
	assert.Same(t, For[float32](), For[float32]())
}

func TestWiden(t *testing.T) {
	in := []complex64{complex(1.5, -2), complex(0, 0.25)}
	out := Widen(in)
	require.Len(t, out, len(in))
	assert.Equal(t, complex(1.5, -2), out[0])
	assert.Equal(t, complex(0, 0.25), out[1])
	assert.Empty(t, Widen([]complex128{}))
}

func TestFromReal(t *testing.T) {
	assert.Equal(t, complex64(complex(2.5, 0)), FromReal[complex64](float32(2.5)))
	assert.Equal(t, complex(-3.0, 0), FromReal[complex128](-3.0))
}
