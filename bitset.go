package bitvec

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// BitSet adapts the first n bits of a bits-and-blooms bitset as a
// fixed-length Readable+Writable.
type BitSet struct {
	s *bitset.BitSet
	n int
}

var _ Writable = (*BitSet)(nil)

// NewBitSet creates an adapter over a fresh zeroed bitset of n bits.
func NewBitSet(n int) *BitSet {
	if n < 0 {
		panic(&ErrInvalidRange{Start: n, End: n, Len: 0})
	}
	return &BitSet{s: bitset.New(uint(n)), n: n}
}

// WrapBitSet adapts the first n bits of s in place; writes through
// the adapter mutate s. It panics with ErrInvalidRange if n exceeds
// the bitset's capacity.
func WrapBitSet(s *bitset.BitSet, n int) *BitSet {
	if n < 0 || uint(n) > s.Len() {
		panic(&ErrInvalidRange{Start: 0, End: n, Len: int(s.Len())})
	}
	return &BitSet{s: s, n: n}
}

// Unwrap returns the underlying bitset.
func (b *BitSet) Unwrap() *bitset.BitSet {
	return b.s
}

// Len returns the adapted length in bits.
func (b *BitSet) Len() int {
	return b.n
}

// Get returns the bit at index i.
func (b *BitSet) Get(i int) bool {
	checkIndex(i, b.n)
	return b.s.Test(uint(i))
}

// Set sets the bit at index i to v.
func (b *BitSet) Set(i int, v bool) {
	checkIndex(i, b.n)
	b.s.SetTo(uint(i), v)
}

// GetBits returns the bits in [start, end) as a little-endian integer.
func (b *BitSet) GetBits(start, end int) uint64 {
	return getBitsByBit(b, start, end)
}

// SetBits writes the low end-start bits of value into [start, end).
func (b *BitSet) SetBits(start, end int, value uint64) {
	setBitsByBit(b, start, end, value)
}

// Fill sets every bit to v.
func (b *BitSet) Fill(v bool) {
	for i := 0; i < b.n; i++ {
		b.s.SetTo(uint(i), v)
	}
}

// CopyFrom copies n bits of src starting at srcStart into the bitset
// starting at dstStart. See Copy.
func (b *BitSet) CopyFrom(src Readable, srcStart, dstStart, n int) {
	Copy(b, dstStart, src, srcStart, n)
}

// Bits returns a lazy traversal of all bits in index order.
func (b *BitSet) Bits() iter.Seq[bool] {
	return bitsSeq(b)
}

// String renders the bits in index order, bit 0 first.
func (b *BitSet) String() string {
	return bitString(b)
}

// Backing identifies the underlying bitset.
func (b *BitSet) Backing() (any, int) {
	return b.s, 0
}
