// Package feature assembles per-site methylation feature records from a
// decoded read: normalization, segmentation, motif location, coordinate
// mapping and central-signal sampling.
package feature

import (
	"nanofeat/core/coord"
	"nanofeat/core/signal"
)

// RawRead is one decoded read. It is read-only once decoded.
type RawRead struct {
	Samples     []float64
	Events      []signal.Event
	ReadName    string
	Strand      string // "t" (template) or "c" (complement)
	AlignStrand coord.AlignStrand
	Chrom       string
	ChromStart  int // alignment start in read-sequence orientation
}

// Record is one feature record for one candidate site.
//
// Pos is on the forward reference strand; PosInStrand is the same site
// counted along AlignStrand.
type Record struct {
	Chrom       string
	Pos         int
	AlignStrand coord.AlignStrand
	PosInStrand int
	ReadName    string
	ReadStrand  string
	Kmer        string
	Means       []float64
	Stds        []float64
	Lens        []int
	CentSignals []float64
	Label       int
}

// Decoder loads one read file. Implementations open and close the file
// within the call.
type Decoder interface {
	Decode(path string) (RawRead, error)
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(path string) (RawRead, error)

func (f DecoderFunc) Decode(path string) (RawRead, error) { return f(path) }

// LengthTable reports reference contig lengths.
type LengthTable interface {
	Len(chrom string) (int, bool)
}

// Lengths is a map-backed LengthTable.
type Lengths map[string]int

func (l Lengths) Len(chrom string) (int, bool) {
	n, ok := l[chrom]
	return n, ok
}
