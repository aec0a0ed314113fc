package motif

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanofeat/core/errs"
)

func TestBasesMask(t *testing.T) {
	assert.Equal(t, []byte("A"), Bases('A'))
	assert.Equal(t, []byte("AG"), Bases('R'))
	assert.Equal(t, []byte("AG"), Bases('r'))
	assert.Equal(t, []byte("T"), Bases('U'))
	assert.Equal(t, []byte("ACGT"), Bases('N'))
	assert.Nil(t, Bases('X'))
}

func TestExpandSingle(t *testing.T) {
	got, err := Expand("CG")
	require.NoError(t, err)
	assert.Equal(t, []string{"CG"}, got)
}

func TestExpandAmbiguous(t *testing.T) {
	got, err := Expand("CR")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"CA", "CG"}, got)

	got, err = Expand("NCG")
	require.NoError(t, err)
	assert.Len(t, got, 4)

	got, err = Expand("RGY")
	require.NoError(t, err)
	assert.Equal(t, []string{"AGC", "AGT", "GGC", "GGT"}, got)
}

func TestExpandList(t *testing.T) {
	got, err := Expand("CG, GATC")
	require.NoError(t, err)
	assert.Equal(t, []string{"CG", "GATC"}, got)
}

func TestExpandRejects(t *testing.T) {
	for _, spec := range []string{"", "CG,", "CXG"} {
		_, err := Expand(spec)
		require.Error(t, err, spec)
		assert.True(t, errors.Is(err, errs.ErrConfig), spec)
	}
}

func TestFindSites(t *testing.T) {
	assert.Equal(t, []int{2}, FindSites("AACGT", "CG", 0))
	assert.Equal(t, []int{3}, FindSites("AACGT", "CG", 1))
	assert.Equal(t, []int{0, 1, 2}, FindSites("AAAA", "AA", 0))
	assert.Nil(t, FindSites("ACGT", "TT", 0))
	assert.Nil(t, FindSites("ACGT", "", 0))
}

func TestLocatorMatchesFindSites(t *testing.T) {
	seq := "CGCGATCGGATCCGAAACG"
	motifs := []string{"CG", "GATC", "CGA", "A"}
	for _, off := range []int{0, 1} {
		var want []int
		for _, m := range motifs {
			want = append(want, FindSites(seq, m, off)...)
		}
		got := NewLocator(motifs, off).Sites(seq)
		assert.Equal(t, want, got, "offset %d", off)
	}
}

func TestLocatorKeepsDuplicateMotifs(t *testing.T) {
	l := NewLocator([]string{"CG", "CG"}, 0)
	assert.Equal(t, []int{2, 2}, l.Sites("AACGT"))
}

func TestLocatorNoMotifs(t *testing.T) {
	assert.Empty(t, NewLocator(nil, 0).Sites("ACGT"))
}
