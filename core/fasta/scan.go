package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one FASTA entry, measured but not kept.
type Record struct {
	ID  string
	Len int
}

// ScanCtx parses FASTA from r and calls emit once per record.
// It is cancelable: it returns promptly when ctx is Done, even mid-record.
func ScanCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		cur    Record
		inRec  bool
		lineNo int
	)
	flush := func() error {
		if !inRec {
			return nil
		}
		return emit(cur)
	}

	for sc.Scan() {
		lineNo++
		if lineNo%4096 == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			cur = Record{ID: parseHeaderID(line[1:])}
			inRec = true
			continue
		}
		if !inRec {
			return fmt.Errorf("fasta line %d: sequence before first header", lineNo)
		}
		line = bytes.TrimSpace(line)
		cur.Len += len(line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// LengthsCtx returns the length of every contig in the FASTA file at path.
// Duplicate contig names are an error.
func LengthsCtx(ctx context.Context, path string) (map[string]int, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	out := make(map[string]int)
	err = ScanCtx(ctx, rc, func(r Record) error {
		if _, dup := out[r.ID]; dup {
			return fmt.Errorf("fasta %s: duplicate contig %q", path, r.ID)
		}
		out[r.ID] = r.Len
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
