// Package metrics holds the prometheus instruments of an extraction run.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nanofeat"

// Metrics are the pipeline counters. The zero value is not usable; call New.
type Metrics struct {
	Batches       prometheus.Counter
	LostBatches   prometheus.Counter
	Reads         prometheus.Counter
	FailedReads   *prometheus.CounterVec // by error class
	Records       prometheus.Counter
	BatchDuration prometheus.Histogram
}

// New creates the instruments and registers them with reg when non-nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "batches_total",
			Help: "Batches of read files processed",
		}),
		LostBatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "batches_lost_total",
			Help: "Batches whose worker failed before producing a result",
		}),
		Reads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "reads_total",
			Help: "Read files attempted",
		}),
		FailedReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "reads_failed_total",
			Help: "Read files skipped on error",
		}, []string{"class"}),
		Records: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "records_written_total",
			Help: "Feature records written to the output sink",
		}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "batch_duration_seconds",
			Help:    "Time spent extracting one batch",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Batches, m.LostBatches, m.Reads, m.FailedReads, m.Records, m.BatchDuration)
	}
	return m
}

// Serve exposes g on addr at /metrics until ctx is done.
func Serve(ctx context.Context, addr string, g prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
