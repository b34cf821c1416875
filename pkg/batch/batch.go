// Package batch runs kernel queries over many rays or points in parallel.
// Work is split into fixed-size chunks, each chunk writing its own range of
// the result slice, so results come back in input order.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"github.com/df07/go-shapemath/pkg/core"
	"github.com/df07/go-shapemath/pkg/geometry"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const defaultChunkSize = 256

// Options controls how a batch is split across goroutines
type Options struct {
	Workers   int // Concurrent chunks; runtime.NumCPU() when <= 0
	ChunkSize int // Items per chunk; 256 when <= 0
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = defaultChunkSize
	}
	return o
}

// Hit is the closest crossing of one ray. OK is false for a miss, in which
// case T and Normal are zero.
type Hit[T core.Real] struct {
	T      T
	Normal core.Vec3[T]
	OK     bool
}

// Cast finds the closest hit and its normal for every ray. A ray with a zero
// direction fails the whole batch.
func Cast[T core.Real, S geometry.Shape[T]](ctx context.Context, rays []core.Ray[T], shape S, rot core.Rotation[T], opts Options) ([]Hit[T], error) {
	hits := make([]Hit[T], len(rays))
	err := run(ctx, len(rays), opts, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if err := rays[i].Validate(); err != nil {
				return fmt.Errorf("while casting ray %d: %w", i, err)
			}
			t, ok := geometry.ClosestTValueOfRotated(rays[i], shape, rot)
			if !ok {
				continue
			}
			normal, _ := geometry.NormalOfRotated(rays[i], shape, rot)
			hits[i] = Hit[T]{T: t, Normal: normal, OK: true}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hits, nil
}

// Sample evaluates the signed distance from every point to the shape
func Sample[T core.Real, S geometry.Shape[T]](ctx context.Context, points []core.Vec3[T], shape S, rot core.Rotation[T], opts Options) ([]T, error) {
	distances := make([]T, len(points))
	err := run(ctx, len(points), opts, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			distances[i] = geometry.SDFValueOfRotated(points[i], shape, rot)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return distances, nil
}

// run calls fn on consecutive [lo, hi) ranges covering n items, at most
// opts.Workers at a time
func run(ctx context.Context, n int, opts Options, fn func(lo, hi int) error) error {
	opts = opts.withDefaults()

	eg, egCtx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(opts.Workers))

	for lo := 0; lo < n; lo += opts.ChunkSize {
		hi := min(lo+opts.ChunkSize, n)

		// Acquire only fails once egCtx is done: a chunk failed or ctx was
		// cancelled
		if err := sem.Acquire(egCtx, 1); err != nil {
			break
		}

		eg.Go(func() error {
			defer sem.Release(1)
			if err := egCtx.Err(); err != nil {
				return err
			}
			return fn(lo, hi)
		})
	}

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("while waiting for batch workers: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}
	return nil
}
