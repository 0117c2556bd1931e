// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/sourcegraph/conc/stream"

	"microtpct/internal/engine"
	"microtpct/internal/fasta"
)

// Config controls the query loop.
type Config struct {
	Threads   int // number of worker goroutines (>=1)
	BatchSize int // queries handed to one MatchBatch call (>=1)
}

var errStopped = errors.New("pipeline stopped")

// ForEachQuery streams the records of queryPath through m and calls visit
// once per query, in input order, with Index set to the query's ordinal.
// Batches are matched concurrently; visit calls are serialized. It stops
// feeding at the first error (including context cancellation) and returns
// it, along with the number of empty query records skipped.
func ForEachQuery(
	ctx context.Context,
	cfg Config,
	queryPath string,
	ts *engine.TargetSet,
	m Matcher,
	visit func(engine.QueryResult) error,
) (int, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}

	s := stream.New().WithMaxGoroutines(cfg.Threads)
	var (
		cerr error // written by callbacks only; they run serially
		stop atomic.Bool
	)
	fail := func(err error) {
		cerr = err
		stop.Store(true)
	}
	submit := func(batch []fasta.Record, base int) {
		s.Go(func() stream.Callback {
			if stop.Load() || ctx.Err() != nil {
				return func() {}
			}
			res, err := m.MatchBatch(batch, ts)
			return func() {
				if cerr != nil || ctx.Err() != nil {
					return
				}
				if err != nil {
					fail(err)
					return
				}
				for i := range res {
					res[i].Index = base + i
					if err := visit(res[i]); err != nil {
						fail(err)
						return
					}
				}
			}
		})
	}

	next := 0
	batch := make([]fasta.Record, 0, cfg.BatchSize)
	skipped, serr := fasta.StreamPathCtx(ctx, queryPath, func(r fasta.Record) error {
		if stop.Load() {
			return errStopped
		}
		batch = append(batch, r)
		if len(batch) == cfg.BatchSize {
			submit(batch, next)
			next += len(batch)
			batch = make([]fasta.Record, 0, cfg.BatchSize)
		}
		return nil
	})
	if serr == nil && len(batch) > 0 {
		submit(batch, next)
	}
	s.Wait()

	if ctx.Err() != nil {
		return skipped, ctx.Err()
	}
	if cerr != nil {
		return skipped, cerr
	}
	if serr != nil && !errors.Is(serr, errStopped) {
		return skipped, serr
	}
	return skipped, nil
}
