// internal/cli/options.go
package cli

import (
	"fmt"
	"strings"

	"nanofeat/core/errs"
	"nanofeat/core/signal"
	"nanofeat/internal/writers"
)

// Options holds every setting of an extract run, after flags, environment
// and the optional config file have been merged.
type Options struct {
	// Input
	ReadsDir         string `mapstructure:"reads-dir"`
	Recursive        bool   `mapstructure:"recursively"`
	CorrectedGroup   string `mapstructure:"corrected-group"`
	BasecallSubgroup string `mapstructure:"basecall-subgroup"`
	Reference        string `mapstructure:"reference-path"`

	// Features
	Normalize      string `mapstructure:"normalize-method"`
	MethyLabel     int    `mapstructure:"methy-label"`
	KmerLen        int    `mapstructure:"kmer-len"`
	CentSignalsLen int    `mapstructure:"cent-signals-len"`
	Motifs         string `mapstructure:"motifs"`
	ModLoc         int    `mapstructure:"mod-loc"`
	MaxSignalSum   int    `mapstructure:"max-signal-sum"`
	Seed           int64  `mapstructure:"seed"`

	// Performance
	Threads   int `mapstructure:"nproc"`
	BatchSize int `mapstructure:"batch-num"`

	// Output
	WritePath string `mapstructure:"write-path"`
	Format    string `mapstructure:"format"`

	// Observability
	MetricsAddr string `mapstructure:"metrics-addr"`
	LogLevel    string `mapstructure:"log-level"`
	LogJSON     bool   `mapstructure:"log-json"`
}

// Validate checks the settings that can be checked without touching any
// file. Every error wraps errs.ErrConfig.
func (o Options) Validate() error {
	bad := func(format string, a ...any) error {
		return fmt.Errorf(format+": %w", append(a, errs.ErrConfig)...)
	}
	switch {
	case o.ReadsDir == "":
		return bad("--reads-dir is required")
	case o.Reference == "":
		return bad("--reference-path is required")
	case o.WritePath == "":
		return bad("--write-path is required")
	case o.KmerLen <= 0 || o.KmerLen%2 == 0:
		return bad("--kmer-len %d must be odd and positive", o.KmerLen)
	case o.CentSignalsLen < 0:
		return bad("--cent-signals-len must be ≥ 0")
	case o.MethyLabel != 0 && o.MethyLabel != 1:
		return bad("--methy-label must be 0 or 1")
	case strings.TrimSpace(o.Motifs) == "":
		return bad("--motifs must not be empty")
	case o.ModLoc < 0:
		return bad("--mod-loc must be ≥ 0")
	case o.MaxSignalSum < 0:
		return bad("--max-signal-sum must be ≥ 0")
	case o.Threads < 1:
		return bad("--nproc must be ≥ 1")
	case o.BatchSize < 1:
		return bad("--batch-num must be ≥ 1")
	case o.CorrectedGroup == "" || o.BasecallSubgroup == "":
		return bad("--corrected-group and --basecall-subgroup must be set")
	}
	if _, err := signal.ParseMethod(o.Normalize); err != nil {
		return bad("--normalize-method: %v", err)
	}
	if !knownFormat(o.Format) {
		return bad("invalid --format %q (want one of %s)", o.Format, strings.Join(writers.Formats(), ", "))
	}
	return nil
}

func knownFormat(f string) bool {
	for _, name := range writers.Formats() {
		if name == f {
			return true
		}
	}
	return false
}
