// Package central reduces the variable-length signal span of a k-mer window
// to a fixed-length vector centered on the middle base.
package central

import (
	"fmt"
	"math/rand"
	"slices"

	"nanofeat/core/errs"
)

// Sample returns exactly targetLen values drawn from signals:
//
//   - fewer samples than targetLen in total: concatenate and zero-pad on the right;
//   - central vector alone covers targetLen: pick targetLen indexes from it at
//     random (rng, or the global source when nil), kept in ascending order;
//   - otherwise: the last samples before the central vector and the first
//     samples from it onward, split (targetLen-mid)/2 : rest, with any
//     shortfall on one side moved to the other.
func Sample(signals [][]float64, targetLen int, rng *rand.Rand) ([]float64, error) {
	if targetLen < 0 {
		return nil, fmt.Errorf("target length %d: %w", targetLen, errs.ErrDomain)
	}
	if len(signals) == 0 {
		return nil, fmt.Errorf("central signals: empty signal list: %w", errs.ErrDomain)
	}

	total := 0
	for _, s := range signals {
		total += len(s)
	}
	if total < targetLen {
		out := make([]float64, 0, targetLen)
		for _, s := range signals {
			out = append(out, s...)
		}
		return append(out, make([]float64, targetLen-total)...), nil
	}

	mid := (len(signals) - 1) / 2
	center := signals[mid]
	if len(center) >= targetLen {
		perm := rand.Perm
		if rng != nil {
			perm = rng.Perm
		}
		idx := perm(len(center))[:targetLen]
		slices.Sort(idx)
		out := make([]float64, targetLen)
		for i, j := range idx {
			out[i] = center[j]
		}
		return out, nil
	}

	left := concat(signals[:mid])
	right := concat(signals[mid:])
	leftLen, rightLen := Split(targetLen, len(center), len(left), len(right))

	out := make([]float64, 0, targetLen)
	out = append(out, left[len(left)-leftLen:]...)
	return append(out, right[:rightLen]...), nil
}

// Split divides targetLen between the left and right spans. The central
// base's length only decides the nominal left share; any shortfall against
// the available samples is carried to the other side.
func Split(targetLen, centerLen, leftAvail, rightAvail int) (leftLen, rightLen int) {
	leftLen = (targetLen - centerLen) / 2
	rightLen = targetLen - leftLen
	switch {
	case leftLen > leftAvail:
		rightLen += leftLen - leftAvail
		leftLen = leftAvail
	case rightLen > rightAvail:
		leftLen += rightLen - rightAvail
		rightLen = rightAvail
	}
	return leftLen, rightLen
}

func concat(vs [][]float64) []float64 {
	n := 0
	for _, v := range vs {
		n += len(v)
	}
	out := make([]float64, 0, n)
	for _, v := range vs {
		out = append(out, v...)
	}
	return out
}
