// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"nanofeat/core/errs"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v: %w", a, err, errs.ErrConfig)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q: %w", a, errs.ErrIO)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListReadFiles returns the read files under root, sorted. A root that is a
// regular file is returned as is; a directory contributes the entries
// accepted by match (all entries when match is nil), descending into
// subdirectories only when recursive is set. root may also be a glob.
func ListReadFiles(root string, recursive bool, match func(string) bool) ([]string, error) {
	roots, err := ExpandPositionals([]string{root})
	if err != nil {
		return nil, err
	}
	var out []string
	for _, r := range roots {
		files, err := listOne(r, recursive, match)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	sort.Strings(out)
	return out, nil
}

func listOne(root string, recursive bool, match func(string) bool) ([]string, error) {
	st, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reads input: %v: %w", err, errs.ErrIO)
	}
	if !st.IsDir() {
		return []string{root}, nil
	}
	accept := func(p string) bool { return match == nil || match(p) }

	var out []string
	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("reads dir: %v: %w", err, errs.ErrIO)
		}
		for _, e := range entries {
			p := filepath.Join(root, e.Name())
			if e.Type().IsRegular() && accept(p) {
				out = append(out, p)
			}
		}
		return out, nil
	}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && accept(p) {
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk reads dir: %v: %w", err, errs.ErrIO)
	}
	return out, nil
}
