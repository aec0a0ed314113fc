package cliutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanofeat/core/errs"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
}

func isJSON(p string) bool { return strings.HasSuffix(p, ".json") }

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.json"))
	touch(t, filepath.Join(dir, "b.json"))
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.json"), "plain"})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "plain", got[2])

	_, err = ExpandPositionals([]string{filepath.Join(dir, "*.none")})
	assert.True(t, errors.Is(err, errs.ErrIO))
}

func TestListReadFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "r2.json"))
	touch(t, filepath.Join(dir, "r1.json"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "sub", "r3.json"))

	flat, err := ListReadFiles(dir, false, isJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "r1.json"),
		filepath.Join(dir, "r2.json"),
	}, flat)

	deep, err := ListReadFiles(dir, true, isJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "r1.json"),
		filepath.Join(dir, "r2.json"),
		filepath.Join(dir, "sub", "r3.json"),
	}, deep)

	all, err := ListReadFiles(dir, false, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListReadFilesSingleFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "one.json")
	touch(t, p)
	got, err := ListReadFiles(p, false, isJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{p}, got)
}

func TestListReadFilesMissing(t *testing.T) {
	_, err := ListReadFiles(filepath.Join(t.TempDir(), "nope"), true, nil)
	assert.True(t, errors.Is(err, errs.ErrIO))
}

func TestListReadFilesEmptyDir(t *testing.T) {
	got, err := ListReadFiles(t.TempDir(), true, isJSON)
	require.NoError(t, err)
	assert.Empty(t, got)
}
