// Package fasta scans FASTA references for contig names and lengths.
package fasta

import (
	"io"

	"github.com/shenwei356/xopen"
)

// openReader keeps "-" (stdin) behavior; gzip, xz, zstd and bzip2 are
// detected by xopen.
func openReader(path string) (io.ReadCloser, error) {
	return xopen.Ropen(path)
}
