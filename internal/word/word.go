package word

// Bits is the width of a storage word in bits.
const Bits = 64

// Index returns the word index holding logical bit i.
func Index(i int) int {
	return i >> 6
}

// Offset returns the bit position of logical bit i within its word.
func Offset(i int) uint {
	return uint(i) & 63
}

// Count returns the number of words needed to hold nbits bits.
func Count(nbits int) int {
	return (nbits + 63) >> 6
}

// Mask returns a word with the low n bits set, for n in [0, 64].
func Mask(n int) uint64 {
	if n >= Bits {
		return ^uint64(0)
	}
	return (1 << uint(n)) - 1
}

// Bit reports whether the bit at off is set in w.
func Bit(w uint64, off uint) bool {
	return w&(1<<off) != 0
}

// WithBit returns w with the bit at off set to v.
func WithBit(w uint64, off uint, v bool) uint64 {
	if v {
		return w | 1<<off
	}
	return w &^ (1 << off)
}

// Get extracts n bits of w starting at off, right-aligned.
func Get(w uint64, off uint, n int) uint64 {
	return (w >> off) & Mask(n)
}

// With returns w with the n bits starting at off replaced by the low
// n bits of v.
func With(w uint64, off uint, n int, v uint64) uint64 {
	m := Mask(n) << off
	return w&^m | (v<<off)&m
}

// GetRange extracts n bits starting at logical bit start from ws as a
// little-endian integer. The range may span two adjacent words.
func GetRange(ws []uint64, start, n int) uint64 {
	if n == 0 {
		return 0
	}

	wi, off := Index(start), Offset(start)
	margin := Bits - int(off)
	if n <= margin {
		return Get(ws[wi], off, n)
	}

	low := Get(ws[wi], off, margin)
	high := Get(ws[wi+1], 0, n-margin)

	return high<<uint(margin) | low
}

// SetRange writes the low n bits of v into ws starting at logical bit
// start. The range may span two adjacent words.
func SetRange(ws []uint64, start, n int, v uint64) {
	if n == 0 {
		return
	}

	wi, off := Index(start), Offset(start)
	margin := Bits - int(off)
	if n <= margin {
		ws[wi] = With(ws[wi], off, n, v)
		return
	}

	ws[wi] = With(ws[wi], off, margin, v)
	ws[wi+1] = With(ws[wi+1], 0, n-margin, v>>uint(margin))
}
