// Package output renders feature records as text.
package output

import (
	"math"
	"strconv"
	"strings"

	"nanofeat/core/feature"
)

// NumFields is the number of tab-separated fields per record line.
const NumFields = 12

// FormatRecord renders r as one line (no trailing newline):
// chrom, pos, alignstrand, pos_in_strand, readname, read_strand, k_mer,
// signal_means, signal_stds, signal_lens, cent_signals, methy_label.
func FormatRecord(r feature.Record) string {
	var b strings.Builder
	b.Grow(64 + 10*len(r.CentSignals))
	AppendRecord(&b, r)
	return b.String()
}

// AppendRecord writes the FormatRecord line for r into b.
func AppendRecord(b *strings.Builder, r feature.Record) {
	b.WriteString(r.Chrom)
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(r.Pos))
	b.WriteByte('\t')
	b.WriteString(string(r.AlignStrand))
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(r.PosInStrand))
	b.WriteByte('\t')
	b.WriteString(r.ReadName)
	b.WriteByte('\t')
	b.WriteString(r.ReadStrand)
	b.WriteByte('\t')
	b.WriteString(r.Kmer)
	b.WriteByte('\t')
	floatsCSV(b, r.Means)
	b.WriteByte('\t')
	floatsCSV(b, r.Stds)
	b.WriteByte('\t')
	for i, n := range r.Lens {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte('\t')
	floatsCSV(b, r.CentSignals)
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(r.Label))
}

func floatsCSV(b *strings.Builder, xs []float64) {
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(Float(x))
	}
}

// Float renders x the way Python's repr does: shortest round-trip digits,
// exponent form when the decimal exponent is below -4 or at least 16,
// a trailing ".0" on integral values, and inf, -inf and nan.
func Float(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	if x != 0 {
		e := strconv.FormatFloat(x, 'e', -1, 64)
		exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
		if exp < -4 || exp >= 16 {
			return e
		}
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
