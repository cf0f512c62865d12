package mesomie

import (
	"bytes"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

// Range is an evenly spaced grid of Points values from Min to Max inclusive.
// Points of 0 or 1 yields the single value Min.
type Range struct {
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Points int     `yaml:"points"`
}

// Values expands the range into its grid points.
func (r Range) Values() []float64 {
	n := r.Points
	if n <= defaultGridPoints {
		return []float64{r.Min}
	}
	return floats.Span(make([]float64, n), r.Min, r.Max)
}

// ComplexValue is a complex number written as {re: ..., im: ...}.
type ComplexValue struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

// Complex returns the value as complex128.
func (v ComplexValue) Complex() complex128 {
	return complex(v.Re, v.Im)
}

// SweepSpec describes a family of problems over a grid of sphere sizes.
//
// Classical sweeps read Size and Index. Surface sweeps read Wavelength,
// Radius, EpsD, EpsM, DParallel and DPerp, and derive size parameters with
// NewSurface. A nil Orders selects AutoOrders for every point.
type SweepSpec struct {
	Variant  string `yaml:"variant"`
	Grouping string `yaml:"grouping"`
	Orders   *int   `yaml:"orders"`

	// Classical
	Size  Range        `yaml:"size"`
	Index ComplexValue `yaml:"index"`

	// Surface-corrected
	Wavelength float64      `yaml:"wavelength"`
	Radius     Range        `yaml:"radius"`
	EpsD       ComplexValue `yaml:"eps_d"`
	EpsM       ComplexValue `yaml:"eps_m"`
	DParallel  ComplexValue `yaml:"d_parallel"`
	DPerp      ComplexValue `yaml:"d_perp"`
}

// ParseSweepSpec decodes and validates a YAML sweep description.
// Unknown fields are rejected.
func ParseSweepSpec(data []byte) (*SweepSpec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var spec SweepSpec
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%w: decode sweep spec: %w", ErrInvalidArgument, err)
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return &spec, nil
}

// Validate checks if the sweep description is complete and consistent.
func (s *SweepSpec) Validate() error {
	variant, err := parseVariant(s.Variant)
	if err != nil {
		return err
	}

	if _, err := parseGrouping(s.Grouping); err != nil {
		return err
	}

	if s.Orders != nil && (*s.Orders < 0 || *s.Orders > maxOrders) {
		return fmt.Errorf("%w: orders must be in [0, %d], got %d", ErrInvalidArgument, maxOrders, *s.Orders)
	}

	switch variant {
	case VariantClassical:
		if err := s.Size.validate("size"); err != nil {
			return err
		}
		if !(s.Size.Min > 0) {
			return fmt.Errorf("%w: size min must be positive, got %v", ErrInvalidArgument, s.Size.Min)
		}
		if s.Size.Points > defaultGridPoints && !(s.Size.Max > 0) {
			return fmt.Errorf("%w: size max must be positive, got %v", ErrInvalidArgument, s.Size.Max)
		}
	case VariantSurfaceCorrected:
		if !(s.Wavelength > 0) {
			return fmt.Errorf("%w: wavelength must be positive, got %v", ErrInvalidArgument, s.Wavelength)
		}
		if err := s.Radius.validate("radius"); err != nil {
			return err
		}
	}

	return nil
}

func (r Range) validate(name string) error {
	if r.Points < 0 {
		return fmt.Errorf("%w: %s points must be non-negative, got %d", ErrInvalidArgument, name, r.Points)
	}
	if r.Points > maxOrders {
		return fmt.Errorf("%w: %s has too many points (max %d)", ErrInvalidArgument, name, maxOrders)
	}
	return nil
}

// Config returns the solver configuration selected by the description.
func (s *SweepSpec) Config() (Config, error) {
	g, err := parseGrouping(s.Grouping)
	if err != nil {
		return Config{}, err
	}
	return Config{Grouping: g}, nil
}

// Problems expands the description into one problem per grid point, in
// grid order. Every problem is validated.
func (s *SweepSpec) Problems() ([]Problem[float64, complex128], error) {
	variant, err := parseVariant(s.Variant)
	if err != nil {
		return nil, err
	}

	orders := AutoOrders
	if s.Orders != nil {
		orders = *s.Orders
	}

	var problems []Problem[float64, complex128]

	switch variant {
	case VariantClassical:
		m := s.Index.Complex()
		for _, x := range s.Size.Values() {
			problems = append(problems, Problem[float64, complex128]{
				Variant: VariantClassical,
				Orders:  orders,
				Sphere:  Sphere[float64, complex128]{X: x, M: m},
			})
		}
	case VariantSurfaceCorrected:
		for _, r := range s.Radius.Values() {
			surf, err := NewSurface(s.Wavelength, r,
				s.EpsD.Complex(), s.EpsM.Complex(), s.DParallel.Complex(), s.DPerp.Complex())
			if err != nil {
				return nil, fmt.Errorf("radius %v: %w", r, err)
			}
			problems = append(problems, Problem[float64, complex128]{
				Variant: VariantSurfaceCorrected,
				Orders:  orders,
				Surface: surf,
			})
		}
	}

	for i := range problems {
		if err := problems[i].Validate(); err != nil {
			return nil, fmt.Errorf("grid point %d: %w", i, err)
		}
	}

	return problems, nil
}

func parseVariant(s string) (Variant, error) {
	switch s {
	case "classical":
		return VariantClassical, nil
	case "surface":
		return VariantSurfaceCorrected, nil
	default:
		return 0, fmt.Errorf("%w: unknown variant %q", ErrInvalidArgument, s)
	}
}

func parseGrouping(s string) (Grouping, error) {
	switch s {
	case "", "product":
		return GroupingProduct, nil
	case "legacy":
		return GroupingLegacy, nil
	default:
		return 0, fmt.Errorf("%w: unknown grouping %q", ErrInvalidArgument, s)
	}
}
