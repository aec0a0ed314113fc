// Package coord maps in-read base offsets onto reference-genome positions.
package coord

// AlignStrand is the genome strand a read's base-call sequence aligns to.
type AlignStrand string

const (
	Forward AlignStrand = "+"
	Reverse AlignStrand = "-"
)

// StartInAlignStrand is the reference offset of the read's first base,
// counted along the aligned strand. Any strand other than "+" is treated as
// reverse here, matching the extractor's historical behavior.
func StartInAlignStrand(strand AlignStrand, chromStart, seqLen, chromLen int) int {
	if strand == Forward {
		return chromStart
	}
	return chromLen - (chromStart + seqLen)
}

// MapToReference converts offset (0-based, in the read) into the position
// along the aligned strand and the position on the forward reference strand.
func MapToReference(offset, seqLen int, strand AlignStrand, chromStart, chromLen int) (inAlign, inStrand int) {
	inAlign = offset + StartInAlignStrand(strand, chromStart, seqLen, chromLen)
	return inAlign, Flip(inAlign, strand, chromLen)
}

// Flip converts an aligned-strand position to a forward-strand one for "-"
// reads; other strands pass through. Flip is its own inverse.
func Flip(pos int, strand AlignStrand, chromLen int) int {
	if strand == Reverse {
		return chromLen - 1 - pos
	}
	return pos
}
