package arith

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Operation is a unit of work run by Stress.
// Implementations must be safe for concurrent execution.
type Operation func(ctx context.Context) error

// StressConfig controls Stress execution.
type StressConfig struct {
	Workers    int // Concurrent goroutines
	Iterations int // Calls per worker
}

// DefaultStressConfig returns 8 workers running 1000 calls each.
func DefaultStressConfig() StressConfig {
	return StressConfig{
		Workers:    8,
		Iterations: 1000,
	}
}

// StressResult summarizes a Stress run.
type StressResult struct {
	Workers    int
	Operations int64         // Calls that returned nil
	Duration   time.Duration // Wall time of the run
}

// Throughput returns successful operations per second.
func (r StressResult) Throughput() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Operations) / r.Duration.Seconds()
}

// Stress runs op concurrently on cfg.Workers goroutines, cfg.Iterations
// times each. The first error cancels the remaining workers and is
// returned along with the partial result.
func Stress(ctx context.Context, op Operation, cfg StressConfig) (StressResult, error) {
	if cfg.Workers <= 0 || cfg.Iterations <= 0 {
		return StressResult{}, fmt.Errorf("invalid stress config: workers=%d iterations=%d",
			cfg.Workers, cfg.Iterations)
	}

	var operations int64
	g, gctx := errgroup.WithContext(ctx)

	start := time.Now()
	for w := 0; w < cfg.Workers; w++ {
		workerID := w
		g.Go(func() error {
			for i := 0; i < cfg.Iterations; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := op(gctx); err != nil {
					return fmt.Errorf("worker %d iteration %d: %w", workerID, i, err)
				}
				atomic.AddInt64(&operations, 1)
			}
			return nil
		})
	}
	err := g.Wait()

	return StressResult{
		Workers:    cfg.Workers,
		Operations: atomic.LoadInt64(&operations),
		Duration:   time.Since(start),
	}, err
}
