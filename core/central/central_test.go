package central

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanofeat/core/errs"
)

func seq(from, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(from + i)
	}
	return out
}

func TestSamplePadsShortWindow(t *testing.T) {
	got, err := Sample([][]float64{{1, 2}, {3}, {4, 5}}, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 0, 0, 0}, got)
}

func TestSampleExactTotal(t *testing.T) {
	got, err := Sample([][]float64{{1, 2}, {3}, {4, 5}}, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)
}

func TestSampleCentralCovers(t *testing.T) {
	center := seq(100, 50)
	signals := [][]float64{seq(0, 5), center, seq(200, 5)}
	rng := rand.New(rand.NewSource(7))
	got, err := Sample(signals, 20, rng)
	require.NoError(t, err)
	require.Len(t, got, 20)
	assert.IsIncreasing(t, got, "indices are sorted so values from an increasing vector stay increasing")
	for _, v := range got {
		assert.Contains(t, center, v)
	}
}

func TestSampleCentralExactlyTarget(t *testing.T) {
	center := seq(10, 6)
	got, err := Sample([][]float64{{1}, center, {2}}, 6, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, center, got)
}

func TestSampleSplitBalanced(t *testing.T) {
	// mid=1, center len 2, target 6 → left 2, right 4
	signals := [][]float64{seq(0, 5), seq(5, 2), seq(7, 5)}
	got, err := Sample(signals, 6, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5, 6, 7, 8}, got)
}

func TestSampleSplitLeftShortfall(t *testing.T) {
	// left has 1 sample, nominal left share 3 → 2 moved right
	signals := [][]float64{{0}, seq(1, 2), seq(3, 10)}
	got, err := Sample(signals, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7}, got)
}

func TestSampleSplitRightShortfall(t *testing.T) {
	// right (center + after) has 3 samples, nominal right share 5 → 2 moved left
	signals := [][]float64{seq(0, 10), seq(10, 2), {12}}
	got, err := Sample(signals, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7, 8, 9, 10, 11, 12}, got)
}

func TestSampleEvenListUsesFloorMidpoint(t *testing.T) {
	// 4 vectors → mid index 1
	signals := [][]float64{seq(0, 3), seq(3, 1), seq(4, 3), seq(7, 3)}
	got, err := Sample(signals, 5, nil)
	require.NoError(t, err)
	// left share (5-1)/2 = 2 → [1 2], right 3 → [3 4 5]
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)
}

func TestSampleFixedWidthProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 500; trial++ {
		k := 1 + 2*rng.Intn(8)
		signals := make([][]float64, k)
		for i := range signals {
			signals[i] = seq(i*1000, rng.Intn(60))
		}
		target := rng.Intn(200)
		got, err := Sample(signals, target, rng)
		require.NoError(t, err)
		require.Len(t, got, target, "trial %d", trial)
	}
}

func TestSampleZeroTarget(t *testing.T) {
	got, err := Sample([][]float64{{1, 2}}, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSampleRejects(t *testing.T) {
	_, err := Sample(nil, 3, nil)
	assert.True(t, errors.Is(err, errs.ErrDomain))
	_, err = Sample([][]float64{{1}}, -1, nil)
	assert.True(t, errors.Is(err, errs.ErrDomain))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		target, center, left, right int
		wantL, wantR                int
	}{
		{10, 4, 10, 10, 3, 7},
		{10, 4, 1, 20, 1, 9},
		{10, 4, 20, 5, 5, 5},
		{10, 0, 0, 10, 0, 10},
	}
	for _, tt := range tests {
		l, r := Split(tt.target, tt.center, tt.left, tt.right)
		assert.Equal(t, tt.wantL, l)
		assert.Equal(t, tt.wantR, r)
		assert.Equal(t, tt.target, l+r)
	}
}
