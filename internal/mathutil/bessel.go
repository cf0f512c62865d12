// Package mathutil provides the special functions used by Mie coefficient kernels.
package mathutil

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/go-mesomie/internal/simdops"
)

// Sequences holds the Riccati–Bessel functions of one complex argument for
// orders 0..nmax.
type Sequences[C simdops.Complex] struct {
	// Psi is the Riccati–Bessel function of the first kind, ψn(z) = z·jn(z).
	Psi []C

	// Zeta is the Riccati–Bessel function of the third kind, ζn(z) = z·hn⁽¹⁾(z).
	Zeta []C

	// D1 is the logarithmic derivative ψn'(z)/ψn(z).
	D1 []C

	// D3 is the logarithmic derivative ζn'(z)/ζn(z).
	D3 []C
}

// Len returns the number of orders held, nmax+1.
func (s *Sequences[C]) Len() int {
	return len(s.Psi)
}

// EvalPsiZetaD1D3 computes ψn, ζn and their logarithmic derivatives for
// n = 0..nmax at the complex argument z.
//
// The algorithm follows Peña & Pal (2009):
//   - D1 by downward recurrence (eq. 16), started well above nmax
//   - ψn by upward recurrence from ψ0 = sin z using D1 (eq. 20)
//   - ψn·ζn and D3 by upward recurrence (eqs. 18, 19)
//   - ζn = (ψn·ζn) / ψn
//
// The convention is ζn = ψn + i·χn with χ0(z) = -cos z, hence
// ζ0 = sin z - i·cos z and D3_0 = i.
//
// z must be nonzero and nmax non-negative; neither is checked.
func EvalPsiZetaD1D3[C simdops.Complex](z C, nmax int) Sequences[C] {
	s := Sequences[C]{
		Psi:  make([]C, nmax+1),
		Zeta: make([]C, nmax+1),
		D1:   evalDownwardD1(z, nmax),
		D3:   make([]C, nmax+1),
	}

	evalUpwardPsi(z, s.D1, s.Psi)
	psiZeta := evalUpwardD3(z, s.D1, s.D3)

	for n := range s.Zeta {
		s.Zeta[n] = psiZeta[n] / s.Psi[n]
	}

	return s
}

// evalDownwardD1 returns D1[0..nmax] computed by
//
//	D1[n-1] = n/z - 1/(D1[n] + n/z)
//
// starting from D1 = 0 at DownwardStart(|z|, nmax).
func evalDownwardD1[C simdops.Complex](z C, nmax int) []C {
	start := DownwardStart(cmplx.Abs(complex128(z)), nmax)

	d1 := make([]C, start+1)
	d1[start] = downwardStartValue
	for n := start; n > 0; n-- {
		nz := simdops.FromReal[C](float64(n)) / z
		d1[n-1] = nz - 1/(d1[n]+nz)
	}

	return d1[:nmax+1:nmax+1]
}

// evalUpwardPsi fills psi using ψn = ψn-1·(n/z - D1[n-1]).
func evalUpwardPsi[C simdops.Complex](z C, d1, psi []C) {
	psi[0] = C(cmplx.Sin(complex128(z)))
	for n := 1; n < len(psi); n++ {
		nz := simdops.FromReal[C](float64(n)) / z
		psi[n] = psi[n-1] * (nz - d1[n-1])
	}
}

// evalUpwardD3 fills d3 and returns the products ψn·ζn.
func evalUpwardD3[C simdops.Complex](z C, d1, d3 []C) []C {
	zc := complex128(z)
	psiZeta := make([]C, len(d3))

	// exp(2iz) = (cos 2x + i sin 2x)·exp(-2y) for z = x + iy
	phase := cmplx.Rect(math.Exp(-doubleArgFactor*imag(zc)), doubleArgFactor*real(zc))
	psiZeta[0] = C(psiZetaZeroScale * (1 - phase))
	d3[0] = 1i

	for n := 1; n < len(d3); n++ {
		nz := simdops.FromReal[C](float64(n)) / z
		psiZeta[n] = psiZeta[n-1] * (nz - d1[n-1]) * (nz - d3[n-1])
		d3[n] = d1[n] + 1i/psiZeta[n]
	}

	return psiZeta
}

// DownwardStart returns the order at which the downward D1 recurrence starts
// for an argument of magnitude az:
//
//	max(nmax, ceil(az + 15·az^(1/3))) + 16
//
// The margin above az grows with the width of the transition region of the
// Bessel functions, so the start error has decayed below working precision by
// the time the recurrence reaches order max(nmax, az).
func DownwardStart(az float64, nmax int) int {
	margin := az + downwardTransitionCoeff*math.Pow(az, cubeRootExponent)
	return max(nmax, int(math.Ceil(margin))) + downwardExtraOrders
}

// OrderCount returns the number of multipole orders needed for a converged
// series at size parameter x, using Wiscombe's criterion:
//   - x ≤ 8:        x + 4·x^(1/3) + 1
//   - 8 < x ≤ 4200: x + 4.05·x^(1/3) + 2
//   - x > 4200:     x + 4·x^(1/3) + 2
//
// The result is rounded to the nearest integer. Negative x is treated as |x|.
func OrderCount(x float64) int {
	ax := math.Abs(x)
	root := math.Pow(ax, cubeRootExponent)

	var n float64
	switch {
	case ax <= wiscombeSmallLimit:
		n = ax + wiscombeCoeff*root + wiscombeSmallOffset
	case ax <= wiscombeMediumLimit:
		n = ax + wiscombeMediumCoeff*root + wiscombeLargeOffset
	default:
		n = ax + wiscombeCoeff*root + wiscombeLargeOffset
	}

	return int(math.Round(n))
}
