// Package mesomie computes Lorenz–Mie scattering coefficients of a sphere in
// pure Go.
//
// Two boundary conditions are supported: the classical homogeneous sphere,
// and a surface-corrected ("mesoscopic") sphere whose interface carries the
// Feibelman d-parameters d⊥ and d∥. The surface-corrected formula follows
// Gonçalves et al., Nat. Commun. 11, 366 (2020). With both d-parameters set to
// zero it reduces to the classical result.
//
// # Features
//
//   - Classical and surface-corrected multipole coefficients an, bn
//   - Generic precision: float64/complex128 or float32/complex64
//   - Riccati–Bessel functions by the Peña & Pal (2009) recurrences
//   - Wiscombe order-count criterion via [OrderCount] and [AutoOrders]
//   - Far-field efficiencies (Qext, Qsca, Qabs, Qbk, Qpr, g, albedo)
//   - Parallel parameter sweeps with structured logging via [Sweep]
//   - YAML sweep descriptions via [ParseSweepSpec]
//   - Optional SIMD acceleration (AVX2/NEON) via github.com/tphakala/simd
//
// # Quick Start
//
// For a single classical sphere:
//
//	res, err := mesomie.Classical(mesomie.AutoOrders, 1.0, complex(1.5, 0.01))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	eff, _ := res.Efficiencies()
//	fmt.Println(res.An[1], res.Bn[1], eff.Qext)
//
// For a metal sphere with surface response, derive the size parameters from
// wavelength and radius:
//
//	surf, err := mesomie.NewSurface(500, 5, 1, complex(-9.5, 1.2), -0.2, complex(0.3, 0.1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := mesomie.SurfaceCorrected(mesomie.AutoOrders, surf)
//
// Wavelength, radius and the d-parameters must share one length unit.
//
// # Indexing
//
// Coefficient slices have nmax+1 entries indexed by multipole order n. The
// dipole term is n = 1. Classical results fill index 0 from the same formula;
// surface-corrected results leave it at 0. Index 0 is never summed.
//
// # Operator Grouping
//
// The historical mesomie implementation evaluated the final ratio left to
// right as ψ·NUM / ζ · DEN. [GroupingProduct], the default, divides by the
// product ζ·DEN instead, which is the physical Lorenz–Mie coefficient.
// [GroupingLegacy] keeps the old evaluation for reproducing archived output.
//
// # Numerical Limits
//
// The kernels perform no stability checks. Very large or strongly absorbing
// spheres may overflow the upward recurrences; use [Result.Finite] to detect
// non-finite coefficients.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Every call allocates its own
// output, and no state is shared between calls.
package mesomie
