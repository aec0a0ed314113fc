// Package reads decodes per-read signal exports into feature.RawRead.
//
// A read file is one JSON document laid out like the resquiggled fast5
// container it was exported from:
//
//	{
//	  "read_id": "…",
//	  "raw": {"signal": [int, …]},
//	  "analyses": {
//	    "<corrected group>": {
//	      "<basecall subgroup>": {
//	        "events": {"read_start_rel_to_raw": int, "start": [int], "length": [int], "base": "ACGT…"},
//	        "alignment": {"mapped_strand": "+", "mapped_chrom": "chr1", "mapped_start": int}
//	      }
//	    }
//	  }
//	}
//
// Files may be gzip/xz/zstd/bzip2 compressed.
package reads

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shenwei356/xopen"

	"nanofeat/core/coord"
	"nanofeat/core/errs"
	"nanofeat/core/feature"
	"nanofeat/core/signal"
)

// Defaults used by the resquiggler.
const (
	DefaultCorrectedGroup   = "RawGenomeCorrected_000"
	DefaultBasecallSubgroup = "BaseCalled_template"
)

type document struct {
	ReadID   string                          `json:"read_id"`
	Raw      *raw                            `json:"raw"`
	Analyses map[string]map[string]*subgroup `json:"analyses"`
}

type raw struct {
	Signal []float64 `json:"signal"`
}

type subgroup struct {
	Events    *events    `json:"events"`
	Alignment *alignment `json:"alignment"`
}

type events struct {
	ReadStartRelToRaw int    `json:"read_start_rel_to_raw"`
	Start             []int  `json:"start"`
	Length            []int  `json:"length"`
	Base              string `json:"base"`
}

type alignment struct {
	MappedStrand string `json:"mapped_strand"`
	MappedChrom  string `json:"mapped_chrom"`
	MappedStart  int    `json:"mapped_start"`
}

// JSONDecoder implements feature.Decoder for JSON read exports.
type JSONDecoder struct {
	CorrectedGroup   string
	BasecallSubgroup string
}

// NewJSONDecoder fills empty group identifiers with the defaults.
func NewJSONDecoder(correctedGroup, basecallSubgroup string) JSONDecoder {
	if correctedGroup == "" {
		correctedGroup = DefaultCorrectedGroup
	}
	if basecallSubgroup == "" {
		basecallSubgroup = DefaultBasecallSubgroup
	}
	return JSONDecoder{CorrectedGroup: correctedGroup, BasecallSubgroup: basecallSubgroup}
}

// Decode opens path, decodes it and closes it again.
func (d JSONDecoder) Decode(path string) (feature.RawRead, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return feature.RawRead{}, fmt.Errorf("open %s: %v: %w", path, err, errs.ErrIO)
	}
	defer r.Close()

	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return feature.RawRead{}, fmt.Errorf("decode %s: %v: %w", path, err, errs.ErrIO)
	}
	return d.fromDocument(path, doc)
}

func (d JSONDecoder) fromDocument(path string, doc document) (feature.RawRead, error) {
	if doc.Raw == nil || len(doc.Raw.Signal) == 0 {
		return feature.RawRead{}, fmt.Errorf("%s: no raw signal: %w", path, errs.ErrStructure)
	}
	sg := doc.Analyses[d.CorrectedGroup][d.BasecallSubgroup]
	if sg == nil || sg.Events == nil {
		return feature.RawRead{}, fmt.Errorf("%s: no events under %s/%s: %w",
			path, d.CorrectedGroup, d.BasecallSubgroup, errs.ErrStructure)
	}
	if sg.Alignment == nil {
		return feature.RawRead{}, fmt.Errorf("%s: no alignment under %s/%s: %w",
			path, d.CorrectedGroup, d.BasecallSubgroup, errs.ErrStructure)
	}

	ev := sg.Events
	starts := make([]int, len(ev.Start))
	for i, s := range ev.Start {
		starts[i] = s + ev.ReadStartRelToRaw
	}
	events, err := signal.Events(starts, ev.Length, ev.Base)
	if err != nil {
		return feature.RawRead{}, fmt.Errorf("%s: %w", path, err)
	}

	return feature.RawRead{
		Samples:     doc.Raw.Signal,
		Events:      events,
		ReadName:    doc.ReadID,
		Strand:      d.Strand(),
		AlignStrand: coord.AlignStrand(sg.Alignment.MappedStrand),
		Chrom:       sg.Alignment.MappedChrom,
		ChromStart:  sg.Alignment.MappedStart,
	}, nil
}

// Strand is "t" for a template subgroup and "c" otherwise.
func (d JSONDecoder) Strand() string {
	if strings.HasSuffix(d.BasecallSubgroup, "template") {
		return "t"
	}
	return "c"
}

var suffixes = []string{".json", ".json.gz", ".json.xz", ".json.zst", ".json.bz2"}

// Match reports whether path looks like a read export.
func Match(path string) bool {
	lower := strings.ToLower(path)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}
