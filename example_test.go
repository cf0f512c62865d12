package mesomie_test

import (
	"context"
	"fmt"
	"math"

	"github.com/tphakala/go-mesomie"
)

func ExampleClassical() {
	res, err := mesomie.Classical(mesomie.AutoOrders, 1.0, complex(1.5, 0.01))
	if err != nil {
		panic(err)
	}

	eff, err := res.Efficiencies()
	if err != nil {
		panic(err)
	}

	fmt.Printf("orders: %d\n", res.Orders())
	fmt.Printf("a1: %.4f\n", res.An[1])
	fmt.Printf("b1: %.4f\n", res.Bn[1])
	fmt.Printf("Qext: %.4f Qsca: %.4f\n", eff.Qext, eff.Qsca)
	// Output:
	// orders: 6
	// a1: (0.0383-0.1821i)
	// b1: (0.0016-0.0282i)
	// Qext: 0.2425 Qsca: 0.2136
}

func ExampleNewSurface() {
	// A sphere with k·R = 0.5 in vacuum and a Drude-like permittivity.
	surf, err := mesomie.NewSurface(20*math.Pi, 5, 1, complex(-9.5, 1.2), -0.2, complex(0.3, 0.1))
	if err != nil {
		panic(err)
	}

	res, err := mesomie.SurfaceCorrected(3, surf)
	if err != nil {
		panic(err)
	}

	fmt.Printf("a1: %.4f\n", res.An[1])
	fmt.Printf("b1: %.4f\n", res.Bn[1])
	// Output:
	// a1: (0.0930-0.1903i)
	// b1: (0.0004+0.0045i)
}

func ExampleSweep() {
	spec, err := mesomie.ParseSweepSpec([]byte(`
variant: classical
size: {min: 1, max: 3, points: 3}
index: {re: 1.33}
`))
	if err != nil {
		panic(err)
	}

	problems, err := spec.Problems()
	if err != nil {
		panic(err)
	}

	results, err := mesomie.Sweep(context.Background(), &mesomie.SweepConfig{Workers: 2}, problems)
	if err != nil {
		panic(err)
	}

	for _, res := range results {
		fmt.Printf("x=%.0f orders=%d\n", res.X, res.Orders())
	}
	// Output:
	// x=1 orders=6
	// x=2 orders=8
	// x=3 orders=10
}
