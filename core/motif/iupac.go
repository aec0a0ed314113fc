// Package motif expands IUPAC motif specifications into concrete base strings
// and locates their occurrences within a read's base-call sequence.
package motif

/* -------------------------- IUPAC lookup table -------------------------- */

var iupacMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) {
		iupacMask[c] = bits
		iupacMask[c|0x20] = bits // lowercase mirrors uppercase
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

var canonical = [4]byte{'A', 'C', 'G', 'T'}

// Bases returns the concrete bases an IUPAC code stands for, in A,C,G,T order.
// An unknown code yields nil.
func Bases(code byte) []byte {
	m := iupacMask[code]
	if m == 0 {
		return nil
	}
	out := make([]byte, 0, 4)
	for i, b := range canonical {
		if m&(1<<i) != 0 {
			out = append(out, b)
		}
	}
	return out
}
