// Package testutil provides reusable test helper functions for Mie coefficient tests.
package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	SingleTolerance  = 1e-4
)

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	if scalar.EqualWithinRel(expected, actual, tolerance) {
		return true
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.Fail(t, fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
		relError, tolerance, expected, actual), msgAndArgs...)
}

// ComplexClose reports whether |a-b| is within tolerance, either absolutely
// or relative to the larger magnitude.
func ComplexClose(a, b complex128, tolerance float64) bool {
	diff := cmplx.Abs(a - b)
	if diff <= tolerance {
		return true
	}
	return diff <= tolerance*math.Max(cmplx.Abs(a), cmplx.Abs(b))
}

// ComplexRelClose is like ComplexClose without the absolute fallback, for
// values that are legitimately tiny.
func ComplexRelClose(a, b complex128, tolerance float64) bool {
	return cmplx.Abs(a-b) <= tolerance*math.Max(cmplx.Abs(a), cmplx.Abs(b))
}

// AssertComplexClose verifies that two complex values agree within tolerance.
func AssertComplexClose(t *testing.T, expected, actual complex128, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if ComplexClose(expected, actual, tolerance) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("complex values differ: expected=%v actual=%v |diff|=%e tolerance=%e",
		expected, actual, cmplx.Abs(expected-actual), tolerance), msgAndArgs...)
}

// AssertComplexRelative verifies relative agreement of two complex values.
func AssertComplexRelative(t *testing.T, expected, actual complex128, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if ComplexRelClose(expected, actual, tolerance) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("complex values differ: expected=%v actual=%v relative=%e tolerance=%e",
		expected, actual, cmplx.Abs(expected-actual)/cmplx.Abs(expected), tolerance), msgAndArgs...)
}

// AssertComplexSlicesClose verifies element-wise agreement of two complex sequences.
func AssertComplexSlicesClose(t *testing.T, expected, actual []complex128, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !ComplexClose(expected[i], actual[i], tolerance) {
			return assert.Fail(t, fmt.Sprintf("complex sequences differ at index %d: expected=%v actual=%v tolerance=%e",
				i, expected[i], actual[i], tolerance), msgAndArgs...)
		}
	}
	return true
}

// AssertFiniteComplex verifies that no element has a NaN or Inf component.
func AssertFiniteComplex(t *testing.T, s []complex128, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if cmplx.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d]", i), msgAndArgs...)
		}
		if cmplx.IsInf(v) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d]", i), msgAndArgs...)
		}
	}
	return true
}

// AssertMagnitudeAtMost verifies |s[i]| <= bound for i >= from.
func AssertMagnitudeAtMost(t *testing.T, s []complex128, from int, bound float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := from; i < len(s); i++ {
		if cmplx.Abs(s[i]) > bound {
			return assert.Fail(t, fmt.Sprintf("magnitude out of range: |s[%d]| = %g exceeds %g",
				i, cmplx.Abs(s[i]), bound), msgAndArgs...)
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value %f is outside range [%f, %f]", value, minVal, maxVal),
			msgAndArgs...)
	}
	return true
}
