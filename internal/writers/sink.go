package writers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"github.com/shenwei356/xopen"

	"nanofeat/core/feature"
)

// Sink receives record batches.
type Sink interface {
	WriteBatch(recs []feature.Record) error
	Flush() error
	Close() error
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Factory builds a Sink over an already-open writer.
type Factory func(w io.Writer) Sink

var formats = map[string]Factory{}

// Register adds a named output format (last registration wins).
func Register(name string, f Factory) { formats[name] = f }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(formats))
	for name := range formats {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// New wraps w in the named format.
func New(format string, w io.Writer) (Sink, error) {
	f, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return f(w), nil
}

// Open creates path ("-" for stdout; .gz/.xz/.zst/.bz2 compress) and wraps
// it in the named format. Closing the Sink closes the file.
func Open(format, path string) (Sink, error) {
	f, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	w, err := xopen.Wopen(path)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}
	return &fileSink{Sink: f(w), file: w}, nil
}

type fileSink struct {
	Sink
	file *xopen.Writer
}

func (s *fileSink) Flush() error {
	if err := s.Sink.Flush(); err != nil {
		return err
	}
	return s.file.Flush()
}

func (s *fileSink) Close() error {
	err := s.Sink.Close()
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// buffered is the shared bufio plumbing of the line formats.
type buffered struct {
	bw *bufio.Writer
}

func newBuffered(w io.Writer) buffered { return buffered{bw: bufio.NewWriterSize(w, 256<<10)} }

func (b buffered) Flush() error { return b.bw.Flush() }

func (b buffered) Close() error { return b.bw.Flush() }
