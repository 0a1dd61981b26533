package bitvec

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitvec/internal/word"
)

// ToRoaring returns a compressed bitmap holding the positions of the
// vector's set bits. Useful for handing dense flag vectors to systems
// that consume roaring bitmaps; set algebra stays on the bitmap side.
//
// Positions beyond the 32-bit index space panic with
// ErrIndexOutOfBounds.
func (v *Vector) ToRoaring() *roaring.Bitmap {
	if uint64(v.nbits) > 1<<32 {
		panic(&ErrIndexOutOfBounds{Index: v.nbits - 1, Len: v.nbits})
	}

	rb := roaring.New()
	i := 0
	for b := range v.Bits() {
		if b {
			rb.Add(uint32(i))
		}
		i++
	}

	return rb
}

// FromRoaring creates a Vector of length n with the bits named by rb
// set. Positions at or beyond n are ignored.
func FromRoaring(rb *roaring.Bitmap, n int) *Vector {
	if n < 0 {
		panic(&ErrInvalidRange{Start: n, End: n, Len: 0})
	}

	v := &Vector{words: make([]uint64, word.Count(n)), nbits: n}
	it := rb.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if i >= n {
			break
		}
		v.setBit(i, true)
	}

	return v
}
