package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanofeat/core/errs"
)

func TestNormalizeZScore(t *testing.T) {
	got, err := Normalize([]float64{1, 2, 3, 4, 5}, MethodZScore)
	require.NoError(t, err)
	// mean 3, population std sqrt(2)
	want := []float64{-1.414214, -0.707107, 0, 0.707107, 1.414214}
	assert.InDeltaSlice(t, want, got, 1e-9)
}

func TestNormalizeZScoreIdempotent(t *testing.T) {
	in := []float64{-1, 1, -1, 1}
	got, err := Normalize(in, MethodZScore)
	require.NoError(t, err)
	assert.InDeltaSlice(t, in, got, 1e-6)

	again, err := Normalize(got, MethodZScore)
	require.NoError(t, err)
	assert.InDeltaSlice(t, got, again, 1e-6)
}

func TestNormalizeMAD(t *testing.T) {
	in := []float64{1, 2, 3, 4, 100}
	got, err := Normalize(in, MethodMAD)
	require.NoError(t, err)
	// median 3, raw MAD 1, scaled MAD 1/0.6744897501960817
	scale := 1 / 0.6744897501960817
	for i, x := range in {
		assert.InDelta(t, (x-3)/scale, got[i], 1e-6)
	}
	assert.Equal(t, 0.0, got[2])
}

func TestNormalizeZeroScalePropagates(t *testing.T) {
	got, err := Normalize([]float64{5, 5, 5}, MethodZScore)
	require.NoError(t, err)
	for _, v := range got {
		assert.True(t, math.IsNaN(v), "want NaN, got %v", v)
	}

	got, err = Normalize([]float64{5, 5, 5, 7}, MethodMAD)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsInf(got[3], 1))
}

func TestNormalizeUnknownMethod(t *testing.T) {
	_, err := Normalize([]float64{1, 2}, Method("minmax"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDomain))

	_, err = ParseMethod("minmax")
	assert.True(t, errors.Is(err, errs.ErrDomain))

	m, err := ParseMethod("mad")
	require.NoError(t, err)
	assert.Equal(t, MethodMAD, m)
}

func TestRoundHalfEven(t *testing.T) {
	assert.Equal(t, 0.123457, Round(0.1234567))
	assert.Equal(t, -0.5, Round(-0.5))
	assert.True(t, math.IsInf(Round(math.Inf(-1)), -1))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.Equal(t, 3.0, Median([]float64{5, 3, 1}))
	assert.True(t, math.IsNaN(Median(nil)))
}

func TestSegment(t *testing.T) {
	norm := []float64{0, 1, 2, 3, 4, 5, 6}
	events := []Event{{0, 2, 'A'}, {2, 1, 'C'}, {4, 3, 'G'}}
	seq, sigs, err := Segment(norm, events)
	require.NoError(t, err)
	assert.Equal(t, "ACG", seq)
	require.Len(t, sigs, 3)
	assert.Equal(t, []float64{0, 1}, sigs[0])
	assert.Equal(t, []float64{2}, sigs[1])
	assert.Equal(t, []float64{4, 5, 6}, sigs[2])
}

func TestSegmentOutOfRange(t *testing.T) {
	_, _, err := Segment([]float64{0, 1}, []Event{{1, 5, 'A'}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrStructure))
}

func TestEventsColumnMismatch(t *testing.T) {
	_, err := Events([]int{0, 1}, []int{1}, "AC")
	assert.True(t, errors.Is(err, errs.ErrStructure))

	ev, err := Events([]int{0, 3}, []int{3, 2}, "AT")
	require.NoError(t, err)
	assert.Equal(t, []Event{{0, 3, 'A'}, {3, 2, 'T'}}, ev)
}
