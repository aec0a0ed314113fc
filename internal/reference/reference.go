// Package reference loads reference contig lengths from a FASTA file, a
// samtools .fai index, or the @SQ header of a SAM/BAM file.
package reference

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/shenwei356/xopen"

	"nanofeat/core/fasta"
	"nanofeat/core/feature"
)

// Load picks a loader from the path suffix; anything unrecognised is read as
// (optionally compressed) FASTA.
func Load(ctx context.Context, path string) (feature.Lengths, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".fai"):
		return loadFAI(path)
	case strings.HasSuffix(lower, ".bam"):
		return loadBAM(path)
	case strings.HasSuffix(lower, ".sam"):
		return loadSAM(path)
	default:
		m, err := fasta.LengthsCtx(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("reference %s: %w", path, err)
		}
		return m, nil
	}
}

// loadFAI reads the first two columns (name, length) of a samtools index.
func loadFAI(path string) (feature.Lengths, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("reference index %s: %w", path, err)
	}
	defer r.Close()

	out := make(feature.Lengths)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			return nil, fmt.Errorf("%s:%d: want ≥2 tab-separated columns", path, lineNo)
		}
		n, err := strconv.Atoi(cols[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s:%d: bad length %q", path, lineNo, cols[1])
		}
		out[cols[0]] = n
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reference index %s: %w", path, err)
	}
	return out, nil
}

func loadSAM(path string) (feature.Lengths, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("reference header %s: %w", path, err)
	}
	defer r.Close()
	sr, err := sam.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("reference header %s: %w", path, err)
	}
	return fromHeader(sr.Header()), nil
}

func loadBAM(path string) (feature.Lengths, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reference header %s: %w", path, err)
	}
	defer f.Close()
	br, err := bam.NewReader(f, 1)
	if err != nil {
		return nil, fmt.Errorf("reference header %s: %w", path, err)
	}
	defer br.Close()
	return fromHeader(br.Header()), nil
}

func fromHeader(h *sam.Header) feature.Lengths {
	out := make(feature.Lengths, len(h.Refs()))
	for _, ref := range h.Refs() {
		out[ref.Name()] = ref.Len()
	}
	return out
}
