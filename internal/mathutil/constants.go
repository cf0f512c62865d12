package mathutil

// Riccati–Bessel recurrence constants.
// Equation numbers follow Peña & Pal, "Scattering of electromagnetic radiation
// by a multilayered sphere", Comput. Phys. Commun. 180 (2009) 2348-2354.

const (
	// Extra orders above max(nmax, |z| + 15·|z|^(1/3)) at which the downward
	// D1 recurrence starts from zero (eq. 20).
	downwardExtraOrders = 16

	// Multiple of |z|^(1/3), the Bessel transition width, added above |z|.
	downwardTransitionCoeff = 15.0

	// Value of D1 at the starting order of the downward recurrence.
	downwardStartValue = 0

	// PsiZeta_0(z) = (1 - exp(2iz)) / 2
	psiZetaZeroScale = 0.5
	doubleArgFactor  = 2.0
)

// Wiscombe truncation criterion constants
// (W. J. Wiscombe, "Improved Mie scattering algorithms", Appl. Opt. 19, 1980).
const (
	wiscombeSmallLimit  = 8.0    // Upper bound of the small-particle branch
	wiscombeMediumLimit = 4200.0 // Upper bound of the medium branch

	wiscombeCoeff       = 4.0  // Cube-root coefficient, small and large branches
	wiscombeMediumCoeff = 4.05 // Cube-root coefficient, medium branch
	wiscombeSmallOffset = 1.0  // Additive term, small branch
	wiscombeLargeOffset = 2.0  // Additive term, medium and large branches

	cubeRootExponent = 1.0 / 3.0
)
