// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"nanofeat/core/errs"
	"nanofeat/core/feature"
	"nanofeat/core/motif"
	"nanofeat/core/signal"
	"nanofeat/internal/cli"
	"nanofeat/internal/cliutil"
	"nanofeat/internal/logging"
	"nanofeat/internal/metrics"
	"nanofeat/internal/pipeline"
	"nanofeat/internal/reads"
	"nanofeat/internal/reference"
	"nanofeat/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitConfig   = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// Main parses argv and runs the selected command.
func Main(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	code := ExitOK
	root := cli.NewRootCommand(func(cmd *cobra.Command, o cli.Options) error {
		code = Run(cmd.Context(), o, stdout, stderr)
		return nil
	})
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
		return ExitConfig
	}
	return code
}

// Run performs one extraction. It returns ExitOK even when every read
// failed; per-read failures are counted and logged, not fatal.
func Run(ctx context.Context, o cli.Options, stdout, stderr io.Writer) int {
	log, err := logging.New(stderr, o.LogLevel, !o.LogJSON)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitConfig
	}
	log = log.With().Str("run_id", uuid.NewString()).Logger()

	p, err := Params(o)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return ExitConfig
	}

	lens, err := reference.Load(ctx, o.Reference)
	if err == nil && len(lens) == 0 {
		err = fmt.Errorf("reference %s has no contigs", o.Reference)
	}
	if err != nil {
		return fail(ctx, log, err, "load reference")
	}
	log.Info().Str("reference", o.Reference).Int("contigs", len(lens)).Msg("reference loaded")

	dec := reads.NewJSONDecoder(o.CorrectedGroup, o.BasecallSubgroup)
	asm, err := feature.New(p, dec, lens)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return ExitConfig
	}

	files, err := cliutil.ListReadFiles(o.ReadsDir, o.Recursive, reads.Match)
	if err != nil {
		return fail(ctx, log, err, "list read files")
	}
	if len(files) == 0 {
		log.Warn().Str("dir", o.ReadsDir).Msg("no read files found")
	}

	sink, err := openSink(o, stdout)
	if err != nil {
		return fail(ctx, log, err, "open output")
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	if o.MetricsAddr != "" {
		mctx, stop := context.WithCancel(ctx)
		defer stop()
		go func() {
			if err := metrics.Serve(mctx, o.MetricsAddr, reg); err != nil {
				log.Warn().Err(err).Str("addr", o.MetricsAddr).Msg("metrics endpoint stopped")
			}
		}()
	}

	sum, perr := pipeline.Run(ctx, pipeline.Config{
		Threads:   o.Threads,
		BatchSize: o.BatchSize,
		Seed:      o.Seed,
	}, files, asm, sink, log, m)
	cerr := sink.Close()

	if perr != nil {
		return fail(ctx, log, perr, "extraction")
	}
	if cerr != nil {
		return fail(ctx, log, cerr, "close output")
	}
	if sum.FailedReads > 0 || sum.LostBatches > 0 {
		log.Warn().
			Int("failed_reads", sum.FailedReads).
			Int("reads", sum.Reads).
			Int("lost_batches", sum.LostBatches).
			Msg("some reads produced no features")
	}
	return ExitOK
}

// Params turns the option surface into validated extraction parameters.
func Params(o cli.Options) (feature.Params, error) {
	method, err := signal.ParseMethod(o.Normalize)
	if err != nil {
		return feature.Params{}, fmt.Errorf("%v: %w", err, errs.ErrConfig)
	}
	motifs, err := motif.Expand(o.Motifs)
	if err != nil {
		return feature.Params{}, err
	}
	p := feature.Params{
		Motifs:       motifs,
		TargetOffset: o.ModLoc,
		KmerLen:      o.KmerLen,
		SignalLen:    o.CentSignalsLen,
		Label:        o.MethyLabel,
		Method:       method,
		MaxSignalSum: o.MaxSignalSum,
	}
	return p, p.Validate()
}

func openSink(o cli.Options, stdout io.Writer) (writers.Sink, error) {
	if o.WritePath == "-" {
		return writers.New(o.Format, stdout)
	}
	return writers.Open(o.Format, o.WritePath)
}

// fail logs err and maps it to an exit code.
func fail(ctx context.Context, log zerolog.Logger, err error, stage string) int {
	switch {
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		log.Warn().Str("stage", stage).Msg("canceled")
		return ExitCanceled
	case writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, errs.ErrConfig):
		log.Error().Err(err).Str("stage", stage).Msg("invalid configuration")
		return ExitConfig
	default:
		log.Error().Err(err).Str("stage", stage).Msg("failed")
		return ExitIO
	}
}
