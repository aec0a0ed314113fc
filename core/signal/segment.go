package signal

import (
	"fmt"
	"strings"

	"nanofeat/core/errs"
)

// Event locates one called base's samples within the trace.
type Event struct {
	Start  int
	Length int
	Base   byte
}

// Segment concatenates the event bases and slices norm into one vector per
// event, in event order. The vectors alias norm.
func Segment(norm []float64, events []Event) (string, [][]float64, error) {
	var sb strings.Builder
	sb.Grow(len(events))
	signals := make([][]float64, len(events))
	for i, e := range events {
		end := e.Start + e.Length
		if e.Start < 0 || e.Length < 0 || end > len(norm) {
			return "", nil, fmt.Errorf("event %d [%d,%d) outside trace of %d samples: %w",
				i, e.Start, end, len(norm), errs.ErrStructure)
		}
		sb.WriteByte(e.Base)
		signals[i] = norm[e.Start:end:end]
	}
	return sb.String(), signals, nil
}

// Events zips parallel start/length/base columns. Mismatched column lengths
// are a hard precondition failure.
func Events(starts, lengths []int, bases string) ([]Event, error) {
	if len(starts) != len(lengths) || len(lengths) != len(bases) {
		return nil, fmt.Errorf("event columns differ: %d starts, %d lengths, %d bases: %w",
			len(starts), len(lengths), len(bases), errs.ErrStructure)
	}
	out := make([]Event, len(starts))
	for i := range starts {
		out[i] = Event{Start: starts[i], Length: lengths[i], Base: bases[i]}
	}
	return out, nil
}
