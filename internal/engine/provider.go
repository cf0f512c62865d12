package engine

import (
	"github.com/tphakala/go-mesomie/internal/mathutil"
	"github.com/tphakala/go-mesomie/internal/simdops"
)

// Provider supplies the Riccati–Bessel sequences ψn, ζn, D1 and D3 of a
// complex argument for n = 0..nmax. Kernels treat the result as
// authoritative and never re-derive or re-validate it.
type Provider[C simdops.Complex] interface {
	Evaluate(z C, nmax int) mathutil.Sequences[C]
}

// ProviderFunc adapts an ordinary function to the Provider interface.
type ProviderFunc[C simdops.Complex] func(z C, nmax int) mathutil.Sequences[C]

// Evaluate calls f(z, nmax).
func (f ProviderFunc[C]) Evaluate(z C, nmax int) mathutil.Sequences[C] {
	return f(z, nmax)
}

// RiccatiProvider is the default Provider, backed by the downward/upward
// recurrences of mathutil.EvalPsiZetaD1D3.
type RiccatiProvider[C simdops.Complex] struct{}

// Evaluate implements Provider.
func (RiccatiProvider[C]) Evaluate(z C, nmax int) mathutil.Sequences[C] {
	return mathutil.EvalPsiZetaD1D3(z, nmax)
}

// Ensure implementations satisfy the interface
var (
	_ Provider[complex128] = RiccatiProvider[complex128]{}
	_ Provider[complex64]  = RiccatiProvider[complex64]{}
	_ Provider[complex128] = ProviderFunc[complex128](nil)
)
