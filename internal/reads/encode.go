package reads

import (
	"encoding/json"
	"io"

	"nanofeat/core/feature"
)

// Encode writes read in the layout Decode expects, under d's group
// identifiers. Event starts are written relative to a zero raw offset.
func (d JSONDecoder) Encode(w io.Writer, read feature.RawRead) error {
	ev := &events{
		Start:  make([]int, len(read.Events)),
		Length: make([]int, len(read.Events)),
	}
	bases := make([]byte, len(read.Events))
	for i, e := range read.Events {
		ev.Start[i], ev.Length[i], bases[i] = e.Start, e.Length, e.Base
	}
	ev.Base = string(bases)

	doc := document{
		ReadID: read.ReadName,
		Raw:    &raw{Signal: read.Samples},
		Analyses: map[string]map[string]*subgroup{
			d.CorrectedGroup: {d.BasecallSubgroup: {
				Events: ev,
				Alignment: &alignment{
					MappedStrand: string(read.AlignStrand),
					MappedChrom:  read.Chrom,
					MappedStart:  read.ChromStart,
				},
			}},
		},
	}
	return json.NewEncoder(w).Encode(doc)
}
