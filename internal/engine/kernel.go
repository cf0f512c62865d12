// Package engine implements the Lorenz–Mie scattering-coefficient kernels.
//
// Two boundary conditions are supported:
//   - classical: a homogeneous sphere in a non-absorbing host
//   - surface-corrected: a sphere whose interface carries Feibelman
//     d-parameters (d⊥, d∥), giving first-order nonlocal corrections
//
// Kernels are pure: every call asks the Provider for fresh sequences and
// returns freshly allocated coefficient slices. No input validation happens
// here; the public package checks inputs before calling in.
package engine

import (
	"fmt"

	"github.com/tphakala/go-mesomie/internal/simdops"
)

// Variant selects the boundary condition applied at the sphere surface.
type Variant int

const (
	// VariantClassical uses the standard single-layer Lorenz–Mie formula.
	VariantClassical Variant = iota

	// VariantSurfaceCorrected adds the d⊥/d∥ surface-response terms.
	VariantSurfaceCorrected
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantClassical:
		return "classical"
	case VariantSurfaceCorrected:
		return "surface"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Grouping selects how the final coefficient ratio is evaluated.
type Grouping int

const (
	// GroupingProduct evaluates ψ·NUM / (ζ·DEN), the Lorenz–Mie ratio.
	GroupingProduct Grouping = iota

	// GroupingLegacy evaluates ψ·NUM / ζ · DEN left to right, reproducing
	// output of the historical implementation bit for bit.
	GroupingLegacy
)

// String returns the grouping name.
func (g Grouping) String() string {
	switch g {
	case GroupingProduct:
		return "product"
	case GroupingLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Grouping(%d)", int(g))
	}
}

// Coefficients holds the electric-type (An) and magnetic-type (Bn)
// scattering coefficients, indexed by multipole order n = 0..nmax.
type Coefficients[C simdops.Complex] struct {
	An []C
	Bn []C
}

func newCoefficients[C simdops.Complex](nmax int) Coefficients[C] {
	return Coefficients[C]{
		An: make([]C, nmax+1),
		Bn: make([]C, nmax+1),
	}
}

// Params gathers the inputs of either variant.
//
// VariantClassical reads X and M. VariantSurfaceCorrected reads Radius, XD,
// XM, EpsD, EpsM, DParallel and DPerp.
type Params[F simdops.Float, C simdops.Complex] struct {
	Orders int

	// Classical sphere: size parameter and relative refractive index.
	X F
	M C

	// Surface-corrected sphere.
	Radius    F
	XD        C // Size parameter on the host (dielectric) side
	XM        C // Size parameter on the particle side
	EpsD      C // Host permittivity
	EpsM      C // Particle permittivity
	DParallel C // Tangential surface polarizability density d∥
	DPerp     C // Normal surface polarizability density d⊥
}

// Kernel computes scattering coefficients at precision F/C.
//
// A Kernel holds no mutable state and is safe for concurrent use.
type Kernel[F simdops.Float, C simdops.Complex] struct {
	provider Provider[C]
	grouping Grouping
}

// NewKernel creates a kernel. A nil provider selects RiccatiProvider.
func NewKernel[F simdops.Float, C simdops.Complex](provider Provider[C], grouping Grouping) *Kernel[F, C] {
	if provider == nil {
		provider = RiccatiProvider[C]{}
	}
	return &Kernel[F, C]{
		provider: provider,
		grouping: grouping,
	}
}

// Grouping returns the ratio grouping used by the kernel.
func (k *Kernel[F, C]) Grouping() Grouping {
	return k.grouping
}

// Compute dispatches to the formula of the given variant.
// It panics on an unknown variant.
func (k *Kernel[F, C]) Compute(variant Variant, p *Params[F, C]) Coefficients[C] {
	switch variant {
	case VariantClassical:
		return k.Classical(p.Orders, p.X, p.M)
	case VariantSurfaceCorrected:
		return k.SurfaceCorrected(p.Orders, p.Radius, p.XD, p.XM, p.EpsD, p.EpsM, p.DParallel, p.DPerp)
	default:
		panic(fmt.Sprintf("engine: unknown variant %d", int(variant)))
	}
}

// Classical computes the Lorenz–Mie coefficients of a homogeneous sphere
// with size parameter x and relative refractive index m, for n = 0..nmax:
//
//	an = ψn(x)·(m·D1n(x) − D1n(mx)) / (ζn(x)·(m·D3n(x) − D1n(mx)))
//	bn = ψn(x)·(D1n(x) − m·D1n(mx)) / (ζn(x)·(D3n(x) − m·D1n(mx)))
//
// Instabilities of the special-function recurrence propagate unchecked.
func (k *Kernel[F, C]) Classical(nmax int, x F, m C) Coefficients[C] {
	cx := simdops.FromReal[C](x)
	sx := k.provider.Evaluate(cx, nmax)
	smx := k.provider.Evaluate(cx*m, nmax)

	out := newCoefficients[C](nmax)
	for n := range nmax + 1 {
		psi, zeta := sx.Psi[n], sx.Zeta[n]
		d1x, d3x, d1mx := sx.D1[n], sx.D3[n], smx.D1[n]

		out.An[n] = k.ratio(psi, m*d1x-d1mx, zeta, m*d3x-d1mx)
		out.Bn[n] = k.ratio(psi, d1x-m*d1mx, zeta, d3x-m*d1mx)
	}

	return out
}

// SurfaceCorrected computes coefficients for a sphere of radius r whose
// boundary carries the surface-response coefficients dParallel and dPerp
// (Gonçalves et al., Nat. Commun. 11, 366, 2020). For n = 1..nmax:
//
//	an = ψn(xd)·NUMa / (ζn(xd)·DENa)
//	NUMa = εm·xd·D1n(xd) − εd·xm·D1n(xm) + (εm − εd)·(n(n+1)·d⊥ + xd·D1n(xd)·xm·D1n(xm)·d∥)/r
//	DENa = εm·xd·D3n(xd) − εd·xm·D1n(xm) + (εm − εd)·(n(n+1)·d⊥ + xd·D3n(xd)·xm·D1n(xm)·d∥)/r
//
//	bn = ψn(xd)·NUMb / (ζn(xd)·DENb)
//	NUMb = xd·D1n(xd) − xm·D1n(xm) + (xm² − xd²)·d∥/r
//	DENb = xd·D3n(xd) − xm·D1n(xm) + (xm² − xd²)·d∥/r
//
// The dipole term starts at n = 1; index 0 of both slices is always 0.
// r must be nonzero.
func (k *Kernel[F, C]) SurfaceCorrected(nmax int, r F, xd, xm, epsD, epsM, dParallel, dPerp C) Coefficients[C] {
	sd := k.provider.Evaluate(xd, nmax)
	sm := k.provider.Evaluate(xm, nmax)

	rc := simdops.FromReal[C](r)
	contrast := epsM - epsD
	magnetic := (xm*xm - xd*xd) * dParallel / rc

	out := newCoefficients[C](nmax)
	for n := 1; n <= nmax; n++ {
		psi, zeta := sd.Psi[n], sd.Zeta[n]
		d1d, d3d, d1m := sd.D1[n], sd.D3[n], sm.D1[n]
		perp := simdops.FromReal[C](float64(n*(n+1))) * dPerp

		numA := epsM*xd*d1d - epsD*xm*d1m + contrast*(perp+xd*d1d*xm*d1m*dParallel)/rc
		denA := epsM*xd*d3d - epsD*xm*d1m + contrast*(perp+xd*d3d*xm*d1m*dParallel)/rc
		out.An[n] = k.ratio(psi, numA, zeta, denA)

		numB := xd*d1d - xm*d1m + magnetic
		denB := xd*d3d - xm*d1m + magnetic
		out.Bn[n] = k.ratio(psi, numB, zeta, denB)
	}

	return out
}

// SurfaceCorrectedReal is the real-parameter form of SurfaceCorrected for
// lossless media. Every parameter is promoted to C and the complex formula
// is applied, so output length and indexing are identical.
func (k *Kernel[F, C]) SurfaceCorrectedReal(nmax int, r, xd, xm, epsD, epsM, dParallel, dPerp F) Coefficients[C] {
	return k.SurfaceCorrected(nmax, r,
		simdops.FromReal[C](xd), simdops.FromReal[C](xm),
		simdops.FromReal[C](epsD), simdops.FromReal[C](epsM),
		simdops.FromReal[C](dParallel), simdops.FromReal[C](dPerp))
}

// ratio combines ψ·num and ζ·den according to the kernel grouping.
func (k *Kernel[F, C]) ratio(psi, num, zeta, den C) C {
	if k.grouping == GroupingLegacy {
		return psi * num / zeta * den
	}
	return psi * num / (zeta * den)
}
