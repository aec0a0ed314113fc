// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"nanofeat/core/errs"
	"nanofeat/core/feature"
	"nanofeat/internal/metrics"
	"nanofeat/internal/runutil"
	"nanofeat/internal/writers"
)

// Config controls the extraction pipeline.
type Config struct {
	Threads   int   // process budget; workers = max(1, Threads-1)
	BatchSize int   // read files per batch; <=0 means one batch
	Seed      int64 // run seed; batch i samples with Seed+i
}

// Summary reports what a run did.
type Summary struct {
	Batches     int // batches whose result reached the writer
	LostBatches int // batches whose worker panicked
	Reads       int
	FailedReads int
	Records     int
	Elapsed     time.Duration
}

type batch struct {
	idx   int
	files []string
}

type outcome struct {
	idx     int
	files   int
	res     feature.BatchResult
	lost    bool
	cause   string
	elapsed time.Duration
}

// Run extracts every file in files and writes the records to sink, one
// WriteBatch+Flush per batch in completion order. A panicking batch is
// logged and counted, never fatal. The first sink error aborts the run.
// The caller owns sink and closes it afterwards. m may be nil.
func Run(
	ctx context.Context,
	cfg Config,
	files []string,
	ex Extractor,
	sink writers.Sink,
	log zerolog.Logger,
	m *metrics.Metrics,
) (Summary, error) {
	start := time.Now()
	if m == nil {
		m = metrics.New(nil)
	}

	// Everything is queued up front; workers drain until the queue closes.
	all := runutil.Batches(files, cfg.BatchSize)
	jobs := make(chan batch, len(all))
	for i, fs := range all {
		jobs <- batch{idx: i, files: fs}
	}
	close(jobs)

	workers := runutil.EffectiveWorkers(cfg.Threads)
	results := make(chan outcome, workers)
	log.Info().
		Int("files", len(files)).
		Int("batches", len(all)).
		Int("workers", workers).
		Msg("extraction started")

	g, gctx := errgroup.WithContext(ctx)
	writerDone := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			defer wg.Done()
			for gctx.Err() == nil {
				b, ok := <-jobs
				if !ok {
					return nil
				}
				// An in-flight batch is still delivered after cancellation;
				// only a dead writer drops it.
				out := runBatch(ex, b, cfg.Seed)
				select {
				case results <- out:
				case <-writerDone:
					return nil
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var sum Summary
	g.Go(func() error {
		defer close(writerDone)
		for out := range results {
			if out.lost {
				sum.LostBatches++
				m.LostBatches.Inc()
				log.Error().
					Int("batch", out.idx).
					Int("files", out.files).
					Str("panic", out.cause).
					Msg("batch lost")
				continue
			}
			res := out.res
			if err := sink.WriteBatch(res.Records); err != nil {
				return fmt.Errorf("write batch %d: %v: %w", out.idx, err, errs.ErrIO)
			}
			if err := sink.Flush(); err != nil {
				return fmt.Errorf("flush batch %d: %v: %w", out.idx, err, errs.ErrIO)
			}

			sum.Batches++
			sum.Reads += res.Total
			sum.FailedReads += res.Failed
			sum.Records += len(res.Records)
			m.Batches.Inc()
			m.Reads.Add(float64(res.Total))
			m.Records.Add(float64(len(res.Records)))
			m.BatchDuration.Observe(out.elapsed.Seconds())
			for class, n := range res.Classes {
				m.FailedReads.WithLabelValues(class).Add(float64(n))
			}

			ev := log.Info().Int("batch", out.idx).Int("records", len(res.Records))
			if res.Failed > 0 {
				ev = ev.Interface("failed", res.Classes)
			}
			ev.Msgf("extracted success %d of %d", res.Success(), res.Total)
		}
		return nil
	})

	err := g.Wait()
	sum.Elapsed = time.Since(start)
	if err == nil {
		err = ctx.Err()
	}
	log.Info().
		Dur("elapsed", sum.Elapsed).
		Int("reads", sum.Reads).
		Int("failed_reads", sum.FailedReads).
		Int("records", sum.Records).
		Int("lost_batches", sum.LostBatches).
		Msg("extraction finished")
	return sum, err
}

func runBatch(ex Extractor, b batch, seed int64) (out outcome) {
	out.idx, out.files = b.idx, len(b.files)
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out.lost, out.cause = true, fmt.Sprint(r)
		}
		out.elapsed = time.Since(start)
	}()
	rng := rand.New(rand.NewSource(runutil.BatchSeed(seed, b.idx)))
	out.res = ex.ProcessFiles(b.files, rng)
	return out
}
