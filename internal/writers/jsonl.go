package writers

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"

	"nanofeat/core/feature"
	"nanofeat/internal/output"
)

func init() {
	Register("jsonl", func(w io.Writer) Sink { return NewJSONL(w) })
}

// jsonRecord is the JSONL wire form; field names follow the TSV columns.
type jsonRecord struct {
	Chrom       string     `json:"chrom"`
	Pos         int        `json:"pos"`
	AlignStrand string     `json:"alignstrand"`
	PosInStrand int        `json:"pos_in_strand"`
	ReadName    string     `json:"readname"`
	ReadStrand  string     `json:"read_strand"`
	Kmer        string     `json:"k_mer"`
	Means       jsonFloats `json:"signal_means"`
	Stds        jsonFloats `json:"signal_stds"`
	Lens        []int      `json:"signal_lens"`
	CentSignals jsonFloats `json:"cent_signals"`
	Label       int        `json:"methy_label"`
}

// jsonFloats renders like the TSV columns; non-finite values become the
// strings "nan", "inf" and "-inf".
type jsonFloats []float64

func (fs jsonFloats) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 2+8*len(fs))
	b = append(b, '[')
	for i, x := range fs {
		if i > 0 {
			b = append(b, ',')
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			b = strconv.AppendQuote(b, output.Float(x))
			continue
		}
		b = append(b, output.Float(x)...)
	}
	return append(b, ']'), nil
}

// JSONL writes one JSON object per record. A batch is encoded in full
// before any of it reaches the output.
type JSONL struct {
	buffered
	scratch bytes.Buffer
	enc     *json.Encoder
}

func NewJSONL(w io.Writer) *JSONL {
	j := &JSONL{buffered: newBuffered(w)}
	j.enc = json.NewEncoder(&j.scratch)
	return j
}

func (j *JSONL) WriteBatch(recs []feature.Record) error {
	j.scratch.Reset()
	for _, r := range recs {
		err := j.enc.Encode(jsonRecord{
			Chrom:       r.Chrom,
			Pos:         r.Pos,
			AlignStrand: string(r.AlignStrand),
			PosInStrand: r.PosInStrand,
			ReadName:    r.ReadName,
			ReadStrand:  r.ReadStrand,
			Kmer:        r.Kmer,
			Means:       r.Means,
			Stds:        r.Stds,
			Lens:        r.Lens,
			CentSignals: r.CentSignals,
			Label:       r.Label,
		})
		if err != nil {
			return err
		}
	}
	_, err := j.bw.Write(j.scratch.Bytes())
	return err
}
