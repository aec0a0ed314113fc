package feature

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"nanofeat/core/central"
	"nanofeat/core/coord"
	"nanofeat/core/errs"
	"nanofeat/core/motif"
	"nanofeat/core/signal"
)

// Assembler turns reads into feature records. It holds no per-read state and
// is safe for concurrent use; randomness comes from the caller's source.
type Assembler struct {
	p    Params
	loc  *motif.Locator
	dec  Decoder
	lens LengthTable
}

// New validates p and builds an Assembler.
func New(p Params, dec Decoder, lens LengthTable) (*Assembler, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Assembler{
		p:    p,
		loc:  motif.NewLocator(p.Motifs, p.TargetOffset),
		dec:  dec,
		lens: lens,
	}, nil
}

// Process extracts every in-bounds site of one read. Sites closer than
// HalfWidth to either end of the read are skipped silently.
func (a *Assembler) Process(read RawRead, rng *rand.Rand) ([]Record, error) {
	norm, err := signal.Normalize(read.Samples, a.p.Method)
	if err != nil {
		return nil, err
	}
	seq, signals, err := signal.Segment(norm, read.Events)
	if err != nil {
		return nil, err
	}
	chromLen, ok := a.lens.Len(read.Chrom)
	if !ok {
		return nil, fmt.Errorf("read %s: chromosome %q not in reference: %w", read.ReadName, read.Chrom, errs.ErrStructure)
	}

	half := a.p.HalfWidth()
	var out []Record
	for _, site := range a.loc.Sites(seq) {
		if site < half || site >= len(seq)-half {
			continue
		}
		win := signals[site-half : site+half+1]
		lens := make([]int, len(win))
		sum := 0
		for i, s := range win {
			lens[i] = len(s)
			sum += len(s)
		}
		if a.p.MaxSignalSum > 0 && sum > a.p.MaxSignalSum {
			continue
		}
		means := make([]float64, len(win))
		stds := make([]float64, len(win))
		for i, s := range win {
			m, sd := stat.PopMeanStdDev(s, nil)
			means[i], stds[i] = signal.Round(m), signal.Round(sd)
		}
		cent, err := central.Sample(win, a.p.SignalLen, rng)
		if err != nil {
			return nil, err
		}
		inAlign, inStrand := coord.MapToReference(site, len(seq), read.AlignStrand, read.ChromStart, chromLen)
		out = append(out, Record{
			Chrom:       read.Chrom,
			Pos:         inStrand,
			AlignStrand: read.AlignStrand,
			PosInStrand: inAlign,
			ReadName:    read.ReadName,
			ReadStrand:  read.Strand,
			Kmer:        seq[site-half : site+half+1],
			Means:       means,
			Stds:        stds,
			Lens:        lens,
			CentSignals: cent,
			Label:       a.p.Label,
		})
	}
	return out, nil
}

// BatchResult is what one batch of read files produced.
type BatchResult struct {
	Records []Record
	Total   int            // reads attempted
	Failed  int            // reads skipped on error
	Classes map[string]int // failures by error class
}

// Success is the number of reads processed without error.
func (r BatchResult) Success() int { return r.Total - r.Failed }

// ProcessFiles decodes and processes each path in order. A read that fails,
// including by panicking, is counted and skipped; it never aborts the batch.
func (a *Assembler) ProcessFiles(paths []string, rng *rand.Rand) BatchResult {
	res := BatchResult{Total: len(paths)}
	for _, p := range paths {
		recs, err := a.processFile(p, rng)
		if err != nil {
			res.Failed++
			if res.Classes == nil {
				res.Classes = make(map[string]int)
			}
			res.Classes[errs.Class(err)]++
			continue
		}
		res.Records = append(res.Records, recs...)
	}
	return res
}

func (a *Assembler) processFile(path string, rng *rand.Rand) (recs []Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			recs, err = nil, fmt.Errorf("read %s: panic: %v", path, r)
		}
	}()
	read, err := a.dec.Decode(path)
	if err != nil {
		return nil, err
	}
	return a.Process(read, rng)
}
