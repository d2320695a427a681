package transform

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Apply runs fn over points and returns the transformed points in input
// order. points is not modified.
//
// Points are split into chunks handled by at most WithConcurrency workers.
// When ctx is canceled, Apply stops scheduling work and returns ctx.Err().
func Apply(ctx context.Context, points []Point, fn Func, optFns ...Option) ([]Point, error) {
	if fn == nil {
		return nil, ErrNilTransform
	}

	o := applyOptions(optFns)
	start := time.Now()

	out := make([]Point, len(points))
	chunks := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for lo := 0; lo < len(points); lo += o.chunkSize {
		hi := min(lo+o.chunkSize, len(points))
		if gctx.Err() != nil {
			break
		}
		chunks++

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			chunkStart := time.Now()
			for i := lo; i < hi; i++ {
				out[i] = PointOf(fn(points[i].Multivector()))
			}
			o.metrics.RecordChunk(hi-lo, time.Since(chunkStart))

			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	o.metrics.RecordBatch(len(points), time.Since(start), err)
	o.logger.WithOp("apply").WithCount(len(points)).LogBatch(ctx, chunks, err)

	if err != nil {
		return nil, err
	}

	return out, nil
}
