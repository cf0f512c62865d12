package mesomie

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-mesomie/internal/engine"
	"github.com/tphakala/go-mesomie/internal/farfield"
	"github.com/tphakala/go-mesomie/internal/mathutil"
	"github.com/tphakala/go-mesomie/internal/simdops"
)

// Float is the constraint for the real scalar type: float32 or float64.
type Float = simdops.Float

// Complex is the constraint for the complex scalar type: complex64 or
// complex128. Pair complex64 with float32 and complex128 with float64.
type Complex = simdops.Complex

// Efficiencies holds the far-field efficiency factors of a solved sphere.
type Efficiencies[F Float] = farfield.Efficiencies[F]

// Variant selects the boundary condition at the sphere surface.
type Variant = engine.Variant

const (
	// VariantClassical is the homogeneous Lorenz–Mie sphere.
	VariantClassical = engine.VariantClassical

	// VariantSurfaceCorrected adds Feibelman d-parameter surface response.
	VariantSurfaceCorrected = engine.VariantSurfaceCorrected
)

// Grouping selects how the final coefficient ratio is evaluated.
type Grouping = engine.Grouping

const (
	// GroupingProduct divides ψ·NUM by the product ζ·DEN. This is the
	// physical Lorenz–Mie ratio and the default.
	GroupingProduct = engine.GroupingProduct

	// GroupingLegacy evaluates ψ·NUM / ζ · DEN left to right, matching
	// historical scattnlay mesomie output bit for bit.
	GroupingLegacy = engine.GroupingLegacy
)

// AutoOrders requests the Wiscombe order count for the problem's size
// parameter instead of an explicit nmax.
const AutoOrders = -1

// Common errors returned by the solver.
var (
	// ErrInvalidArgument indicates a structurally invalid input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrZeroRadius indicates a surface-corrected problem with R = 0,
	// for which the surface terms are undefined.
	ErrZeroRadius = fmt.Errorf("%w: radius must be nonzero", ErrInvalidArgument)

	// ErrNoPhysicalOrders indicates a result holding no order n >= 1.
	ErrNoPhysicalOrders = fmt.Errorf("%w: no multipole orders to sum", ErrInvalidArgument)
)

// Config holds solver configuration. The zero value is ready to use.
type Config struct {
	// Grouping selects the ratio evaluation. Zero value is GroupingProduct.
	Grouping Grouping
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Grouping {
	case GroupingProduct, GroupingLegacy:
		return nil
	default:
		return fmt.Errorf("%w: unknown grouping %v", ErrInvalidArgument, c.Grouping)
	}
}

// Sphere describes a homogeneous sphere for the classical variant.
type Sphere[F Float, C Complex] struct {
	// X is the size parameter k·R in the host medium. Must be positive.
	X F

	// M is the particle refractive index relative to the host.
	M C
}

// Surface describes a sphere with a surface-response boundary for the
// surface-corrected variant. XD and XM are the size parameters on the host
// and particle side; NewSurface derives them from wavelength and radius.
type Surface[F Float, C Complex] struct {
	Radius    F // Sphere radius R, in the length unit of the d-parameters
	XD        C // Host-side size parameter
	XM        C // Particle-side size parameter
	EpsD      C // Host permittivity εd
	EpsM      C // Particle permittivity εm
	DParallel C // Tangential surface-response coefficient d∥
	DPerp     C // Normal surface-response coefficient d⊥
}

// SurfaceReal is the real-valued counterpart of Surface for lossless media.
type SurfaceReal[F Float] struct {
	Radius    F
	XD        F
	XM        F
	EpsD      F
	EpsM      F
	DParallel F
	DPerp     F
}

// Problem is a single coefficient computation.
type Problem[F Float, C Complex] struct {
	// Variant selects the boundary condition.
	Variant Variant

	// Orders is the highest multipole order nmax, or AutoOrders.
	Orders int

	// Sphere is read by VariantClassical.
	Sphere Sphere[F, C]

	// Surface is read by VariantSurfaceCorrected.
	Surface Surface[F, C]
}

// Validate checks if the problem can be solved.
func (p *Problem[F, C]) Validate() error {
	if p.Orders < AutoOrders {
		return fmt.Errorf("%w: orders must be non-negative or AutoOrders, got %d", ErrInvalidArgument, p.Orders)
	}

	if p.Orders > maxOrders {
		return fmt.Errorf("%w: too many orders (max %d)", ErrInvalidArgument, maxOrders)
	}

	switch p.Variant {
	case VariantClassical:
		return p.Sphere.validate()
	case VariantSurfaceCorrected:
		return p.Surface.validate()
	default:
		return fmt.Errorf("%w: unknown variant %v", ErrInvalidArgument, p.Variant)
	}
}

func (s *Sphere[F, C]) validate() error {
	x := float64(s.X)
	if !(x > 0) || math.IsInf(x, 0) {
		return fmt.Errorf("%w: size parameter must be positive and finite, got %v", ErrInvalidArgument, x)
	}
	return nil
}

func (s *Surface[F, C]) validate() error {
	r := float64(s.Radius)
	if r == 0 {
		return ErrZeroRadius
	}

	if math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("%w: radius must be finite, got %v", ErrInvalidArgument, r)
	}

	if complex128(s.XD) == 0 || complex128(s.XM) == 0 {
		return fmt.Errorf("%w: size parameters xd and xm must be nonzero", ErrInvalidArgument)
	}

	return nil
}

// orders resolves AutoOrders against the problem's size parameter.
func (p *Problem[F, C]) orders() int {
	if p.Orders != AutoOrders {
		return p.Orders
	}
	return mathutil.OrderCount(p.sizeParameter())
}

// sizeParameter returns the host size parameter used for order counts and
// far-field normalisation.
func (p *Problem[F, C]) sizeParameter() float64 {
	if p.Variant == VariantSurfaceCorrected {
		return cmplx.Abs(complex128(p.Surface.XD))
	}
	return float64(p.Sphere.X)
}

// params flattens the problem into kernel parameters.
func (p *Problem[F, C]) params() *engine.Params[F, C] {
	return &engine.Params[F, C]{
		Orders:    p.orders(),
		X:         p.Sphere.X,
		M:         p.Sphere.M,
		Radius:    p.Surface.Radius,
		XD:        p.Surface.XD,
		XM:        p.Surface.XM,
		EpsD:      p.Surface.EpsD,
		EpsM:      p.Surface.EpsM,
		DParallel: p.Surface.DParallel,
		DPerp:     p.Surface.DPerp,
	}
}

// Result holds the scattering coefficients of a solved problem.
type Result[F Float, C Complex] struct {
	// Variant is the boundary condition that produced the coefficients.
	Variant Variant

	// X is the real host size parameter used to normalise efficiencies:
	// Sphere.X for classical problems, Re(XD) for surface-corrected ones.
	X F

	// An and Bn are indexed by order n = 0..nmax. Index 0 carries no
	// physical meaning; for VariantSurfaceCorrected it is always 0.
	An []C
	Bn []C
}

// Orders returns nmax.
func (r *Result[F, C]) Orders() int {
	return len(r.An) - 1
}

// Efficiencies computes the far-field efficiency factors from orders 1..nmax.
func (r *Result[F, C]) Efficiencies() (Efficiencies[F], error) {
	if len(r.An) < 2 || len(r.Bn) != len(r.An) {
		return Efficiencies[F]{}, ErrNoPhysicalOrders
	}
	return farfield.Compute(r.An, r.Bn, r.X), nil
}

// Finite reports whether every coefficient of order n >= 1 is finite.
// Large or strongly absorbing spheres can overflow the recurrences; the
// kernels do not check for this.
func (r *Result[F, C]) Finite() bool {
	for n := 1; n < len(r.An); n++ {
		if !finite(complex128(r.An[n])) || !finite(complex128(r.Bn[n])) {
			return false
		}
	}
	return true
}

func finite(z complex128) bool {
	return !cmplx.IsNaN(z) && !cmplx.IsInf(z)
}

// Solve validates the problem and computes its coefficients.
// A nil config uses the defaults.
func Solve[F Float, C Complex](config *Config, p *Problem[F, C]) (*Result[F, C], error) {
	if p == nil {
		return nil, fmt.Errorf("%w: problem is nil", ErrInvalidArgument)
	}

	if config == nil {
		config = &Config{}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return solve(newKernel[F, C](config), p), nil
}

// solve runs a validated problem.
func solve[F Float, C Complex](k *engine.Kernel[F, C], p *Problem[F, C]) *Result[F, C] {
	coeffs := k.Compute(p.Variant, p.params())

	x := p.Sphere.X
	if p.Variant == VariantSurfaceCorrected {
		x = F(real(complex128(p.Surface.XD)))
	}

	return &Result[F, C]{
		Variant: p.Variant,
		X:       x,
		An:      coeffs.An,
		Bn:      coeffs.Bn,
	}
}

func newKernel[F Float, C Complex](config *Config) *engine.Kernel[F, C] {
	return engine.NewKernel[F, C](nil, config.Grouping)
}
