package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestComplexClose tests the absolute and relative acceptance paths.
func TestComplexClose(t *testing.T) {
	assert.True(t, ComplexClose(1e-12, 0, 1e-10))
	assert.True(t, ComplexClose(complex(1e6, 1), complex(1e6+1e-5, 1), 1e-10))
	assert.False(t, ComplexClose(1, 1.1, 1e-3))

	assert.False(t, ComplexRelClose(1e-12, 0, 1e-10))
	assert.True(t, ComplexRelClose(complex(1e-20, 1e-20), complex(1e-20, 1e-20), 1e-12))
}

// TestAssertions_FormattedMessages tests that every helper accepts a
// printf-style message with arguments.
func TestAssertions_FormattedMessages(t *testing.T) {
	for n := range 3 {
		AssertRelativeError(t, 2, 2, 1e-12, "order %d", n)
		AssertRelativeError(t, 0, 1e-15, 1e-12, "order %d", n)
		AssertComplexClose(t, complex(1, 2), complex(1, 2), 1e-12, "a%d", n)
		AssertComplexRelative(t, complex(1, 2), complex(1, 2), 1e-12, "b%d", n)
		AssertComplexSlicesClose(t, []complex128{1, 2}, []complex128{1, 2}, 1e-12, "z=%v n=%d", 1i, n)
		AssertFiniteComplex(t, []complex128{1, 1i}, "Psi z=%v", complex(float64(n), 0))
		AssertMagnitudeAtMost(t, []complex128{5, 0.5}, 1, 1, "order %d", n)
		AssertInRange(t, math.Pi, 3, 4, "grid point %d", n)
	}
}
