package feature

import (
	"fmt"

	"nanofeat/core/errs"
	"nanofeat/core/signal"
)

// Params are the extraction settings shared by every read of a run.
type Params struct {
	Motifs       []string      // concrete motifs (already IUPAC-expanded)
	TargetOffset int           // 0-based target base within each motif
	KmerLen      int           // odd window width in bases
	SignalLen    int           // length of every CentSignals vector
	Label        int           // methylation label, 0 or 1
	Method       signal.Method // read-level normalization
	MaxSignalSum int           // skip sites whose k-mer spans more samples (0 = no cap)
}

// Validate reports the first invalid setting, wrapping errs.ErrConfig.
func (p Params) Validate() error {
	switch {
	case p.KmerLen <= 0 || p.KmerLen%2 == 0:
		return fmt.Errorf("kmer length %d must be odd and positive: %w", p.KmerLen, errs.ErrConfig)
	case p.SignalLen < 0:
		return fmt.Errorf("central signal length %d must be ≥ 0: %w", p.SignalLen, errs.ErrConfig)
	case p.Label != 0 && p.Label != 1:
		return fmt.Errorf("methylation label %d must be 0 or 1: %w", p.Label, errs.ErrConfig)
	case len(p.Motifs) == 0:
		return fmt.Errorf("no motifs: %w", errs.ErrConfig)
	case p.MaxSignalSum < 0:
		return fmt.Errorf("max signal sum %d must be ≥ 0: %w", p.MaxSignalSum, errs.ErrConfig)
	}
	if _, err := signal.ParseMethod(string(p.Method)); err != nil {
		return fmt.Errorf("%v: %w", err, errs.ErrConfig)
	}
	for _, m := range p.Motifs {
		if p.TargetOffset < 0 || p.TargetOffset >= len(m) {
			return fmt.Errorf("target offset %d outside motif %q: %w", p.TargetOffset, m, errs.ErrConfig)
		}
	}
	return nil
}

// HalfWidth is the number of bases on each side of the site.
func (p Params) HalfWidth() int { return (p.KmerLen - 1) / 2 }
