package mesomie

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SweepConfig configures a parallel sweep.
type SweepConfig struct {
	// Config is applied to every problem.
	Config Config

	// Workers bounds the number of problems solved concurrently.
	// Set to 0 to use runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives per-problem debug records, warnings for non-finite
	// results and a summary. Nil disables logging.
	Logger *zap.Logger
}

func (c *SweepConfig) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (c *SweepConfig) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

// Sweep solves independent problems concurrently. results[i] belongs to
// problems[i] and is bit-identical to Solve(&config.Config, &problems[i]).
//
// All problems are validated before any work starts. Cancelling ctx stops
// new problems from being scheduled; a problem already running completes.
// A nil config uses the defaults.
func Sweep[F Float, C Complex](ctx context.Context, config *SweepConfig, problems []Problem[F, C]) ([]*Result[F, C], error) {
	if problems == nil {
		return nil, fmt.Errorf("%w: problem list is nil", ErrInvalidArgument)
	}

	if config == nil {
		config = &SweepConfig{}
	}

	if err := config.Config.Validate(); err != nil {
		return nil, err
	}

	for i := range problems {
		if err := problems[i].Validate(); err != nil {
			return nil, fmt.Errorf("problem %d: %w", i, err)
		}
	}

	log := config.logger()
	workers := config.workers()
	k := newKernel[F, C](&config.Config)
	results := make([]*Result[F, C], len(problems))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range problems {
		if err := gctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			p := &problems[i]
			res := solve(k, p)
			results[i] = res

			log.Debug("problem solved",
				zap.Int("index", i),
				zap.Stringer("variant", p.Variant),
				zap.Int("orders", res.Orders()))

			if !res.Finite() {
				log.Warn("non-finite coefficients",
					zap.Int("index", i),
					zap.Stringer("variant", p.Variant),
					zap.Float64("size_parameter", p.sizeParameter()))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Scheduling can stop before any task observes the cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Info("sweep complete",
		zap.Int("problems", len(problems)),
		zap.Int("workers", workers),
		zap.Stringer("grouping", config.Config.Grouping),
		zap.Duration("elapsed", time.Since(start)))

	return results, nil
}
