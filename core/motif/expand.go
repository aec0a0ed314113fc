package motif

import (
	"fmt"
	"strings"

	"nanofeat/core/errs"
)

// Expand turns a comma-separated motif specification into every concrete
// motif it denotes: each element is the cartesian product of its bases'
// IUPAC expansions. Results keep element order; within an element the
// leftmost position varies slowest.
func Expand(spec string) ([]string, error) {
	var out []string
	for _, m := range strings.Split(spec, ",") {
		m = strings.TrimSpace(m)
		if m == "" {
			return nil, fmt.Errorf("empty motif in %q: %w", spec, errs.ErrConfig)
		}
		seqs, err := expandOne(m)
		if err != nil {
			return nil, err
		}
		out = append(out, seqs...)
	}
	return out, nil
}

func expandOne(m string) ([]string, error) {
	seqs := []string{""}
	for i := 0; i < len(m); i++ {
		bases := Bases(m[i])
		if bases == nil {
			return nil, fmt.Errorf("motif %q: unknown base %q at %d: %w", m, m[i], i, errs.ErrConfig)
		}
		next := make([]string, 0, len(seqs)*len(bases))
		for _, s := range seqs {
			for _, b := range bases {
				next = append(next, s+string(b))
			}
		}
		seqs = next
	}
	return seqs, nil
}
