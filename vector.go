package bitvec

import (
	"iter"
	"math"
	"math/bits"

	"github.com/hupe1980/bitvec/internal/word"
)

// maxBits bounds the representable bit-index space so word counts
// never overflow int.
const maxBits = math.MaxInt - 63

// Vector is a growable sequence of bits packed into 64-bit words.
//
// The zero value is an empty vector ready for use. Bits beyond Len()
// up to the word capacity are always zero, so equality and hashing of
// the backing words never depend on unused trailing bits. Capacity
// doubles on demand and never shrinks implicitly.
type Vector struct {
	words []uint64
	nbits int
	guard viewGuard
}

var _ Growable = (*Vector)(nil)

// New creates an empty Vector.
func New() *Vector {
	return &Vector{}
}

// WithCapacity creates an empty Vector with preallocated room for n
// bits. It returns ErrCapacityOverflow if n is negative or exceeds
// the representable bit-index space.
func WithCapacity(n int) (*Vector, error) {
	if n < 0 || n > maxBits {
		return nil, &ErrCapacityOverflow{Bits: n}
	}
	return &Vector{words: make([]uint64, word.Count(n))}, nil
}

// FromBools creates a Vector holding the given bits in order.
func FromBools(bs []bool) *Vector {
	v := &Vector{words: make([]uint64, word.Count(len(bs))), nbits: len(bs)}
	for i, b := range bs {
		if b {
			v.words[word.Index(i)] |= 1 << word.Offset(i)
		}
	}
	return v
}

// FromWords creates a Vector of length n backed by a copy of ws,
// using the canonical layout (bit i in word i/64 at bit i%64,
// LSB-first). It panics with ErrInvalidRange if n does not fit ws.
func FromWords(ws []uint64, n int) *Vector {
	if n < 0 || n > len(ws)*word.Bits {
		panic(&ErrInvalidRange{Start: 0, End: n, Len: len(ws) * word.Bits})
	}
	v := &Vector{words: append([]uint64(nil), ws...), nbits: n}
	v.clearTail()
	return v
}

// Len returns the number of bits in the vector.
func (v *Vector) Len() int {
	return v.nbits
}

// Cap returns the number of bits the vector can hold without
// reallocating.
func (v *Vector) Cap() int {
	return len(v.words) * word.Bits
}

// Get returns the bit at index i. It panics with ErrIndexOutOfBounds
// if i is out of range.
func (v *Vector) Get(i int) bool {
	checkIndex(i, v.nbits)
	return v.getBit(i)
}

// Set sets the bit at index i to b. It panics with
// ErrIndexOutOfBounds if i is out of range and with ErrAliasing if
// the bit is covered by an outstanding mutable view.
func (v *Vector) Set(i int, b bool) {
	checkIndex(i, v.nbits)
	v.guard.checkWrite(i, i+1)
	v.setBit(i, b)
}

// GetBits returns the bits in [start, end) as a little-endian
// integer. It panics with ErrInvalidRange if the range is out of
// bounds and with ErrRangeTooWide if it spans more than 64 bits.
func (v *Vector) GetBits(start, end int) uint64 {
	checkRange(start, end, v.nbits)
	checkWidth(start, end)
	return word.GetRange(v.words, start, end-start)
}

// SetBits writes the low end-start bits of value into [start, end).
// Higher bits of value are ignored. Panics mirror GetBits, plus
// ErrAliasing when the range overlaps an outstanding mutable view.
func (v *Vector) SetBits(start, end int, value uint64) {
	checkRange(start, end, v.nbits)
	checkWidth(start, end)
	v.guard.checkWrite(start, end)
	word.SetRange(v.words, start, end-start, value)
}

// Fill sets every bit to b.
func (v *Vector) Fill(b bool) {
	v.guard.checkWrite(0, v.nbits)
	var w uint64
	if b {
		w = ^uint64(0)
	}
	for i := range v.words {
		v.words[i] = w
	}
	v.clearTail()
}

// Push appends a bit, growing the capacity by doubling when needed.
// Amortized O(1). It panics with ErrAliasing while mutable views are
// outstanding and with ErrCapacityOverflow if the bit-index space is
// exhausted.
func (v *Vector) Push(b bool) {
	v.guard.checkGrow()
	v.grow(v.nbits + 1)
	if b {
		v.words[word.Index(v.nbits)] |= 1 << word.Offset(v.nbits)
	}
	v.nbits++
}

// Pop removes and returns the last bit. The second result is false if
// the vector is empty.
func (v *Vector) Pop() (bool, bool) {
	v.guard.checkGrow()
	if v.nbits == 0 {
		return false, false
	}

	v.nbits--
	wi, off := word.Index(v.nbits), word.Offset(v.nbits)
	b := word.Bit(v.words[wi], off)
	v.words[wi] &^= 1 << off

	return b, true
}

// Truncate shortens the vector to n bits. It is a no-op if n >= Len.
// Capacity is unchanged.
func (v *Vector) Truncate(n int) {
	if n < 0 {
		panic(&ErrInvalidRange{Start: n, End: n, Len: v.nbits})
	}
	if n >= v.nbits {
		return
	}
	v.guard.checkGrow()
	v.nbits = n
	v.clearTail()
}

// Resize sets the length to n, appending fill bits when growing.
func (v *Vector) Resize(n int, fill bool) {
	if n < 0 {
		panic(&ErrInvalidRange{Start: n, End: n, Len: v.nbits})
	}
	v.guard.checkGrow()

	if n <= v.nbits {
		v.nbits = n
		v.clearTail()
		return
	}

	v.grow(n)
	old := v.nbits
	v.nbits = n
	if fill {
		v.fillRange(old, n)
	}
}

// Extend appends all bits of src. src may be the vector itself.
func (v *Vector) Extend(src Readable) {
	v.guard.checkGrow()
	n := src.Len()
	v.grow(v.nbits + n)
	old := v.nbits
	v.nbits += n
	Copy(v, old, src, 0, n)
}

// Align appends fill bits until the length is a multiple of 64.
func (v *Vector) Align(fill bool) {
	if rem := v.nbits % word.Bits; rem != 0 {
		v.Resize(v.nbits+(word.Bits-rem), fill)
	}
}

// PushWord aligns the vector to a word boundary with zero bits, then
// appends all 64 bits of w.
func (v *Vector) PushWord(w uint64) {
	v.guard.checkGrow()
	v.Align(false)
	v.grow(v.nbits + word.Bits)
	v.words[word.Index(v.nbits)] = w
	v.nbits += word.Bits
}

// Reserve ensures capacity for at least n bits without changing the
// length. It returns ErrCapacityOverflow if n is not representable.
func (v *Vector) Reserve(n int) error {
	if n < 0 || n > maxBits {
		return &ErrCapacityOverflow{Bits: n}
	}
	if nw := word.Count(n); nw > len(v.words) {
		ws := make([]uint64, nw)
		copy(ws, v.words)
		v.words = ws
	}
	return nil
}

// CopyFrom copies n bits of src starting at srcStart into the vector
// starting at dstStart. See Copy.
func (v *Vector) CopyFrom(src Readable, srcStart, dstStart, n int) {
	Copy(v, dstStart, src, srcStart, n)
}

// Bits returns a lazy traversal of all bits in index order. Each call
// starts a fresh traversal over the live vector.
func (v *Vector) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < v.nbits; i++ {
			if !yield(v.getBit(i)) {
				return
			}
		}
	}
}

// Count returns the number of set bits.
func (v *Vector) Count() int {
	var c int
	for _, w := range v.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// Clone returns a deep copy. Outstanding view registrations are not
// carried over.
func (v *Vector) Clone() *Vector {
	return &Vector{words: append([]uint64(nil), v.words...), nbits: v.nbits}
}

// Equal reports whether both vectors hold the same bit sequence.
// Thanks to the zero-padding invariant this is a plain word compare.
func (v *Vector) Equal(o *Vector) bool {
	if v.nbits != o.nbits {
		return false
	}
	for i := 0; i < word.Count(v.nbits); i++ {
		if v.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// Words returns a copy of the backing words holding the logical bits,
// in the canonical layout. Padding bits are zero.
func (v *Vector) Words() []uint64 {
	return append([]uint64(nil), v.words[:word.Count(v.nbits)]...)
}

// String renders the bits in index order, bit 0 first.
func (v *Vector) String() string {
	return bitString(v)
}

// Backing identifies the vector as its own storage root.
func (v *Vector) Backing() (any, int) {
	return v, 0
}

func (v *Vector) getBit(i int) bool {
	return word.Bit(v.words[word.Index(i)], word.Offset(i))
}

func (v *Vector) setBit(i int, b bool) {
	wi := word.Index(i)
	v.words[wi] = word.WithBit(v.words[wi], word.Offset(i), b)
}

// grow ensures capacity for n bits, doubling the word count so that N
// pushes cost O(log N) reallocations.
func (v *Vector) grow(n int) {
	if n <= len(v.words)*word.Bits {
		return
	}
	if n > maxBits {
		panic(&ErrCapacityOverflow{Bits: n})
	}

	nw := max(1, 2*len(v.words), word.Count(n))
	ws := make([]uint64, nw)
	copy(ws, v.words)
	v.words = ws
}

// clearTail re-establishes the zero-padding invariant for all bits at
// and beyond nbits.
func (v *Vector) clearTail() {
	nw := word.Count(v.nbits)
	if off := word.Offset(v.nbits); off != 0 {
		v.words[nw-1] &= word.Mask(int(off))
	}
	for i := nw; i < len(v.words); i++ {
		v.words[i] = 0
	}
}

func (v *Vector) fillRange(start, end int) {
	for off := start; off < end; off += word.Bits {
		chunk := min(word.Bits, end-off)
		word.SetRange(v.words, off, chunk, ^uint64(0))
	}
}
