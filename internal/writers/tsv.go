package writers

import (
	"io"
	"strings"

	"nanofeat/core/feature"
	"nanofeat/internal/output"
)

func init() {
	Register("tsv", func(w io.Writer) Sink { return NewTSV(w) })
}

// TSV writes one output.FormatRecord line per record.
type TSV struct {
	buffered
	line strings.Builder
}

func NewTSV(w io.Writer) *TSV { return &TSV{buffered: newBuffered(w)} }

func (t *TSV) WriteBatch(recs []feature.Record) error {
	for _, r := range recs {
		t.line.Reset()
		output.AppendRecord(&t.line, r)
		t.line.WriteByte('\n')
		if _, err := t.bw.WriteString(t.line.String()); err != nil {
			return err
		}
	}
	return nil
}
