package mesomie

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-mesomie/internal/mathutil"
	"github.com/tphakala/go-mesomie/internal/simdops"
	"github.com/tphakala/simd/cpu"
)

// Classical computes the Lorenz–Mie coefficients of a homogeneous sphere with
// size parameter x and relative refractive index m, using the default config.
func Classical[F Float, C Complex](orders int, x F, m C) (*Result[F, C], error) {
	return Solve(nil, &Problem[F, C]{
		Variant: VariantClassical,
		Orders:  orders,
		Sphere:  Sphere[F, C]{X: x, M: m},
	})
}

// SurfaceCorrected computes the coefficients of a sphere with surface
// response, using the default config.
func SurfaceCorrected[F Float, C Complex](orders int, s Surface[F, C]) (*Result[F, C], error) {
	return Solve(nil, &Problem[F, C]{
		Variant: VariantSurfaceCorrected,
		Orders:  orders,
		Surface: s,
	})
}

// SurfaceCorrectedReal is the real-parameter form of SurfaceCorrected.
// Inputs are promoted to C; output length and indexing are identical to
// the complex form.
//
//	res, err := mesomie.SurfaceCorrectedReal[float64, complex128](8, s)
func SurfaceCorrectedReal[F Float, C Complex](orders int, s SurfaceReal[F]) (*Result[F, C], error) {
	p := &Problem[F, C]{
		Variant: VariantSurfaceCorrected,
		Orders:  orders,
		Surface: promoteSurface[F, C](s),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	k := newKernel[F, C](&Config{})
	coeffs := k.SurfaceCorrectedReal(p.orders(), s.Radius, s.XD, s.XM, s.EpsD, s.EpsM, s.DParallel, s.DPerp)

	return &Result[F, C]{
		Variant: VariantSurfaceCorrected,
		X:       s.XD,
		An:      coeffs.An,
		Bn:      coeffs.Bn,
	}, nil
}

// promoteSurface converts real surface parameters to their complex form.
func promoteSurface[F Float, C Complex](s SurfaceReal[F]) Surface[F, C] {
	return Surface[F, C]{
		Radius:    s.Radius,
		XD:        simdops.FromReal[C](s.XD),
		XM:        simdops.FromReal[C](s.XM),
		EpsD:      simdops.FromReal[C](s.EpsD),
		EpsM:      simdops.FromReal[C](s.EpsM),
		DParallel: simdops.FromReal[C](s.DParallel),
		DPerp:     simdops.FromReal[C](s.DPerp),
	}
}

// NewSurface builds surface-corrected parameters for a sphere of the given
// radius illuminated at vacuum wavelength λ: k = 2π/λ, xd = k·R·√εd and
// xm = k·R·√εm with principal square roots. Wavelength, radius and the
// d-parameters must use the same length unit.
func NewSurface(wavelength, radius float64, epsD, epsM, dParallel, dPerp complex128) (Surface[float64, complex128], error) {
	if !(wavelength > 0) || math.IsInf(wavelength, 0) {
		return Surface[float64, complex128]{}, fmt.Errorf("%w: wavelength must be positive and finite, got %v", ErrInvalidArgument, wavelength)
	}

	if radius == 0 {
		return Surface[float64, complex128]{}, ErrZeroRadius
	}

	kr := complex(2*math.Pi/wavelength*radius, 0)

	return Surface[float64, complex128]{
		Radius:    radius,
		XD:        kr * cmplx.Sqrt(epsD),
		XM:        kr * cmplx.Sqrt(epsM),
		EpsD:      epsD,
		EpsM:      epsM,
		DParallel: dParallel,
		DPerp:     dPerp,
	}, nil
}

// OrderCount returns Wiscombe's multipole truncation order for size
// parameter x.
func OrderCount(x float64) int {
	return mathutil.OrderCount(x)
}

// SIMDInfo returns a description of the SIMD instruction set in use.
func SIMDInfo() string {
	return cpu.Info()
}
