// Package signal rescales raw nanopore traces and slices them into per-base
// signal vectors following a read's base-call segmentation.
package signal

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"nanofeat/core/errs"
)

// Decimals is the rounding precision applied to every normalized sample.
const Decimals = 6

// Method selects the shift/scale pair used by Normalize.
type Method string

const (
	MethodZScore Method = "zscore" // mean / population std dev
	MethodMAD    Method = "mad"    // median / scaled median absolute deviation
)

// madConsistency rescales the raw MAD so it estimates the std dev of normal data.
var madConsistency = 1 / distuv.UnitNormal.Quantile(0.75)

// ParseMethod maps a config string onto a Method.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodZScore, MethodMAD:
		return m, nil
	default:
		return "", fmt.Errorf("normalize method %q (want zscore|mad): %w", s, errs.ErrDomain)
	}
}

// Normalize returns round((x-shift)/scale, 6) for every sample.
// A zero scale is not guarded: the result carries ±Inf/NaN.
func Normalize(samples []float64, method Method) ([]float64, error) {
	var shift, scale float64
	switch method {
	case MethodZScore:
		shift, scale = stat.PopMeanStdDev(samples, nil)
	case MethodMAD:
		shift = Median(samples)
		scale = MAD(samples, shift) * madConsistency
	default:
		return nil, fmt.Errorf("normalize method %q: %w", method, errs.ErrDomain)
	}
	out := make([]float64, len(samples))
	for i, x := range samples {
		out[i] = Round((x - shift) / scale)
	}
	return out, nil
}

// Round rounds half-to-even at Decimals places.
func Round(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return scalar.RoundEven(x, Decimals)
}

// Median averages the two middle values for even-length input. NaN for empty input.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	s := slices.Clone(xs)
	slices.Sort(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// MAD is the unscaled median absolute deviation around center.
func MAD(xs []float64, center float64) float64 {
	dev := make([]float64, len(xs))
	for i, x := range xs {
		dev[i] = math.Abs(x - center)
	}
	return Median(dev)
}
