// Package farfield reduces scattering-coefficient sequences to the
// orientation-averaged efficiency factors of a sphere.
//
// Inputs follow the coefficient layout of package engine: index n holds the
// order-n coefficient and index 0 is ignored. Per-order terms are assembled
// in complex128 and the real reductions run through simdops at precision F.
package farfield

import (
	"github.com/tphakala/go-mesomie/internal/simdops"
	"github.com/tphakala/simd/c128"
)

// Efficiencies holds the far-field efficiency factors of a sphere,
// normalised by its geometric cross-section πr².
type Efficiencies[F simdops.Float] struct {
	Qext   F // Extinction efficiency
	Qsca   F // Scattering efficiency
	Qabs   F // Absorption efficiency, Qext − Qsca
	Qbk    F // Backscattering efficiency
	Qpr    F // Radiation-pressure efficiency, Qext − g·Qsca
	G      F // Asymmetry parameter ⟨cos θ⟩, 0 when Qsca is 0
	Albedo F // Single-scattering albedo, Qsca/Qext, 0 when Qext is 0
}

// Compute evaluates the efficiency factors for host size parameter x from
// coefficients an and bn of equal length. Orders 1..len(an)-1 contribute;
// callers must supply at least one physical order.
//
//	Qext = 2/x² Σ (2n+1) Re(an + bn)
//	Qsca = 2/x² Σ (2n+1) (|an|² + |bn|²)
//	Qbk  = |Σ (2n+1)(−1)ⁿ (an − bn)|² / x²
//	g    = 4/(x² Qsca) Σ [n(n+2)/(n+1) Re(an a*ₙ₊₁ + bn b*ₙ₊₁) + (2n+1)/(n(n+1)) Re(an b*ₙ)]
func Compute[F simdops.Float, C simdops.Complex](an, bn []C, x F) Efficiencies[F] {
	a := simdops.Widen(an[1:])
	b := simdops.Widen(bn[1:])
	orders := len(a)

	weights := make([]F, orders)
	ext := make([]F, orders)
	sca := make([]F, orders)
	var back complex128

	for i := range orders {
		n := float64(i + 1)
		w := 2*n + 1
		weights[i] = F(w)
		ext[i] = F(real(a[i]) + real(b[i]))
		sca[i] = F(abs2(a[i]) + abs2(b[i]))

		diff := complex(w, 0) * (a[i] - b[i])
		if i%2 == 0 {
			back -= diff // odd n
		} else {
			back += diff
		}
	}

	ops := simdops.For[F]()
	x2 := float64(x) * float64(x)

	var out Efficiencies[F]
	out.Qext = F(2 / x2 * float64(ops.DotProductUnsafe(weights, ext)))
	out.Qsca = F(2 / x2 * float64(ops.DotProductUnsafe(weights, sca)))
	out.Qabs = out.Qext - out.Qsca
	out.Qbk = F(abs2(back) / x2)
	if out.Qsca != 0 {
		out.G = F(4 / (x2 * float64(out.Qsca)) * float64(ops.Sum(asymmetryTerms[F](a, b))))
	}
	out.Qpr = out.Qext - out.G*out.Qsca
	if out.Qext != 0 {
		out.Albedo = out.Qsca / out.Qext
	}

	return out
}

// asymmetryTerms returns the per-order summands of the asymmetry parameter.
// The neighbouring-order products an·a*ₙ₊₁ stop at the last available order.
func asymmetryTerms[F simdops.Float](a, b []complex128) []F {
	orders := len(a)
	terms := make([]F, orders)

	cross := make([]complex128, orders)
	c128.Mul(cross, a, conjugate(b))

	if orders > 1 {
		aNext := make([]complex128, orders-1)
		bNext := make([]complex128, orders-1)
		c128.Mul(aNext, a[:orders-1], conjugate(a[1:]))
		c128.Mul(bNext, b[:orders-1], conjugate(b[1:]))

		for i := range orders - 1 {
			n := float64(i + 1)
			terms[i] = F(n * (n + 2) / (n + 1) * real(aNext[i]+bNext[i]))
		}
	}

	for i := range orders {
		n := float64(i + 1)
		terms[i] += F((2*n + 1) / (n * (n + 1)) * real(cross[i]))
	}

	return terms
}

func conjugate(s []complex128) []complex128 {
	out := make([]complex128, len(s))
	for i, v := range s {
		out[i] = complex(real(v), -imag(v))
	}
	return out
}

func abs2(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
