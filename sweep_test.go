package mesomie

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// sweepProblems returns a mix of classical and surface problems.
func sweepProblems() []Problem[float64, complex128] {
	var problems []Problem[float64, complex128]
	for i := range 12 {
		x := 0.5 + float64(i)
		problems = append(problems, *classicalProblem(AutoOrders, x, complex(1.5, 0.01*float64(i))))

		surf, err := NewSurface(500, 5+float64(i)*10, 1, complex(-9.5, 1.2), -0.2, complex(0.3, 0.1))
		if err != nil {
			panic(err)
		}
		problems = append(problems, Problem[float64, complex128]{
			Variant: VariantSurfaceCorrected,
			Orders:  AutoOrders,
			Surface: surf,
		})
	}
	return problems
}

// TestSweep_MatchesSequential tests that parallel results are bit-identical
// to solving each problem in turn.
func TestSweep_MatchesSequential(t *testing.T) {
	problems := sweepProblems()

	for _, cfg := range []Config{{Grouping: GroupingProduct}, {Grouping: GroupingLegacy}} {
		want := make([]*Result[float64, complex128], len(problems))
		for i := range problems {
			res, err := Solve(&cfg, &problems[i])
			require.NoError(t, err)
			want[i] = res
		}

		for _, workers := range []int{0, 1, 3, 16} {
			t.Run(fmt.Sprintf("%s/workers=%d", cfg.Grouping, workers), func(t *testing.T) {
				got, err := Sweep(t.Context(), &SweepConfig{Config: cfg, Workers: workers}, problems)
				require.NoError(t, err)

				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("Sweep(workers=%d) mismatch (-want +got):\n%s", workers, diff)
				}
			})
		}
	}
}

// TestSweep_Float32 tests a single-precision sweep.
func TestSweep_Float32(t *testing.T) {
	problems := []Problem[float32, complex64]{
		{Variant: VariantClassical, Orders: 3, Sphere: Sphere[float32, complex64]{X: 1, M: complex(1.5, 0.01)}},
		{Variant: VariantClassical, Orders: 3, Sphere: Sphere[float32, complex64]{X: 2, M: complex(1.5, 0.01)}},
	}

	got, err := Sweep(t.Context(), nil, problems)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, float32(2), got[1].X, 0)
}

// TestSweep_Empty tests that an empty list yields an empty result.
func TestSweep_Empty(t *testing.T) {
	got, err := Sweep(t.Context(), nil, []Problem[float64, complex128]{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestSweep_Errors tests rejection before any work starts.
func TestSweep_Errors(t *testing.T) {
	_, err := Sweep[float64, complex128](t.Context(), nil, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	problems := sweepProblems()
	problems[5].Surface.Radius = 0

	_, err = Sweep(t.Context(), nil, problems)
	require.ErrorIs(t, err, ErrZeroRadius)
	assert.Contains(t, err.Error(), "problem 5")

	_, err = Sweep(t.Context(), &SweepConfig{Config: Config{Grouping: Grouping(4)}}, sweepProblems())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// TestSweep_Cancelled tests that a cancelled context stops the sweep.
func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	results, err := Sweep(ctx, &SweepConfig{Workers: 2}, sweepProblems())
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

// TestSweep_Logging tests the structured log records of a sweep.
func TestSweep_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	problems := sweepProblems()[:4]
	problems = append(problems, Problem[float64, complex128]{
		Variant: VariantSurfaceCorrected,
		Orders:  4,
		Surface: Surface[float64, complex128]{
			Radius: 1,
			XD:     complex(1, 800),
			XM:     complex(1.5, 1),
			EpsD:   1,
			EpsM:   2.25,
		},
	})

	results, err := Sweep(t.Context(), &SweepConfig{Workers: 2, Logger: zap.New(core)}, problems)
	require.NoError(t, err)
	require.False(t, results[4].Finite())

	assert.Equal(t, len(problems), logs.FilterMessage("problem solved").Len())

	warnings := logs.FilterMessage("non-finite coefficients").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, zapcore.WarnLevel, warnings[0].Level)
	assert.Equal(t, int64(4), warnings[0].ContextMap()["index"])

	summary := logs.FilterMessage("sweep complete").All()
	require.Len(t, summary, 1)
	fields := summary[0].ContextMap()
	assert.Equal(t, int64(len(problems)), fields["problems"])
	assert.Equal(t, int64(2), fields["workers"])
	assert.Equal(t, "product", fields["grouping"])
}

// BenchmarkSweep benchmarks a mixed sweep at default parallelism.
func BenchmarkSweep(b *testing.B) {
	problems := sweepProblems()
	cfg := &SweepConfig{}
	for b.Loop() {
		if _, err := Sweep(context.Background(), cfg, problems); err != nil {
			b.Fatal(err)
		}
	}
}
