package bitvec

import (
	"iter"

	"github.com/prysmaticlabs/go-bitfield"
)

// Bitlist adapts a go-bitfield bitlist as a fixed-length
// Readable+Writable, so Ethereum-style bitlists and packed vectors
// interoperate through Copy. The bitlist's byte layout is LSB-first
// per byte, matching the package convention.
//
// A bitlist's length is fixed at construction; no Growable capability
// exists.
type Bitlist struct {
	b bitfield.Bitlist
}

var _ Writable = (*Bitlist)(nil)

// NewBitlist creates an adapter over a fresh zeroed bitlist of n bits.
func NewBitlist(n int) *Bitlist {
	if n < 0 {
		panic(&ErrInvalidRange{Start: n, End: n, Len: 0})
	}
	return &Bitlist{b: bitfield.NewBitlist(uint64(n))}
}

// WrapBitlist adapts an existing bitlist in place; writes through the
// adapter mutate b.
func WrapBitlist(b bitfield.Bitlist) *Bitlist {
	return &Bitlist{b: b}
}

// Unwrap returns the underlying bitlist.
func (l *Bitlist) Unwrap() bitfield.Bitlist {
	return l.b
}

// Len returns the bitlist length in bits.
func (l *Bitlist) Len() int {
	return int(l.b.Len())
}

// Get returns the bit at index i.
func (l *Bitlist) Get(i int) bool {
	checkIndex(i, l.Len())
	return l.b.BitAt(uint64(i))
}

// Set sets the bit at index i to v.
func (l *Bitlist) Set(i int, v bool) {
	checkIndex(i, l.Len())
	l.b.SetBitAt(uint64(i), v)
}

// GetBits returns the bits in [start, end) as a little-endian integer.
func (l *Bitlist) GetBits(start, end int) uint64 {
	return getBitsByBit(l, start, end)
}

// SetBits writes the low end-start bits of value into [start, end).
func (l *Bitlist) SetBits(start, end int, value uint64) {
	setBitsByBit(l, start, end, value)
}

// Fill sets every bit to v.
func (l *Bitlist) Fill(v bool) {
	for i := 0; i < l.Len(); i++ {
		l.b.SetBitAt(uint64(i), v)
	}
}

// CopyFrom copies n bits of src starting at srcStart into the bitlist
// starting at dstStart. See Copy.
func (l *Bitlist) CopyFrom(src Readable, srcStart, dstStart, n int) {
	Copy(l, dstStart, src, srcStart, n)
}

// Bits returns a lazy traversal of all bits in index order.
func (l *Bitlist) Bits() iter.Seq[bool] {
	return bitsSeq(l)
}

// String renders the bits in index order, bit 0 first.
func (l *Bitlist) String() string {
	return bitString(l)
}

// Backing identifies the adapter. Two adapters wrapping the same
// bitlist bytes have distinct identities; overlap between them is not
// detected.
func (l *Bitlist) Backing() (any, int) {
	return l, 0
}
