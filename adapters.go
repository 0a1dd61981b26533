package bitvec

import (
	"iter"
	"math/bits"

	"github.com/hupe1980/bitvec/internal/word"
)

// Words adapts a raw slice of 64-bit words as a fixed-length
// Readable+Writable, using the same canonical layout as Vector. Its
// length is always len(w) * 64.
type Words []uint64

var _ Writable = Words(nil)

// Len returns the number of bits, 64 per word.
func (w Words) Len() int {
	return len(w) * word.Bits
}

// Get returns the bit at index i.
func (w Words) Get(i int) bool {
	checkIndex(i, w.Len())
	return word.Bit(w[word.Index(i)], word.Offset(i))
}

// Set sets the bit at index i to b.
func (w Words) Set(i int, b bool) {
	checkIndex(i, w.Len())
	wi := word.Index(i)
	w[wi] = word.WithBit(w[wi], word.Offset(i), b)
}

// GetBits returns the bits in [start, end) as a little-endian integer.
func (w Words) GetBits(start, end int) uint64 {
	checkRange(start, end, w.Len())
	checkWidth(start, end)
	return word.GetRange(w, start, end-start)
}

// SetBits writes the low end-start bits of value into [start, end).
func (w Words) SetBits(start, end int, value uint64) {
	checkRange(start, end, w.Len())
	checkWidth(start, end)
	word.SetRange(w, start, end-start, value)
}

// Fill sets every bit to b.
func (w Words) Fill(b bool) {
	var v uint64
	if b {
		v = ^uint64(0)
	}
	for i := range w {
		w[i] = v
	}
}

// CopyFrom copies n bits of src starting at srcStart into the words
// starting at dstStart. See Copy.
func (w Words) CopyFrom(src Readable, srcStart, dstStart, n int) {
	Copy(w, dstStart, src, srcStart, n)
}

// Bits returns a lazy traversal of all bits in index order.
func (w Words) Bits() iter.Seq[bool] {
	return bitsSeq(w)
}

// String renders the bits in index order, bit 0 first.
func (w Words) String() string {
	return bitString(w)
}

// Backing identifies the underlying array via its first word, so
// self-overlapping copies between the same Words value, or between
// views of it created with Slice and SliceMut, pick a safe direction.
// A Go-level re-slice such as w[1:] starts at a different word and is
// a distinct identity; overlap with it is not detected.
func (w Words) Backing() (any, int) {
	if len(w) == 0 {
		return nil, 0
	}
	return &w[0], 0
}

// Bools adapts an unpacked []bool, one element per bit, as a
// Growable. It lets packed and unpacked representations interoperate
// through the shared interfaces; no packing is performed.
type Bools []bool

var _ Growable = (*Bools)(nil)

// Len returns the number of bits.
func (b *Bools) Len() int {
	return len(*b)
}

// Get returns the bit at index i.
func (b *Bools) Get(i int) bool {
	checkIndex(i, len(*b))
	return (*b)[i]
}

// Set sets the bit at index i to v.
func (b *Bools) Set(i int, v bool) {
	checkIndex(i, len(*b))
	(*b)[i] = v
}

// GetBits returns the bits in [start, end) as a little-endian integer.
func (b *Bools) GetBits(start, end int) uint64 {
	return getBitsByBit(b, start, end)
}

// SetBits writes the low end-start bits of value into [start, end).
func (b *Bools) SetBits(start, end int, value uint64) {
	setBitsByBit(b, start, end, value)
}

// Fill sets every bit to v.
func (b *Bools) Fill(v bool) {
	for i := range *b {
		(*b)[i] = v
	}
}

// CopyFrom copies n bits of src starting at srcStart into the slice
// starting at dstStart. See Copy.
func (b *Bools) CopyFrom(src Readable, srcStart, dstStart, n int) {
	Copy(b, dstStart, src, srcStart, n)
}

// Push appends a bit.
func (b *Bools) Push(v bool) {
	*b = append(*b, v)
}

// Pop removes and returns the last bit. The second result is false if
// the slice is empty.
func (b *Bools) Pop() (bool, bool) {
	if len(*b) == 0 {
		return false, false
	}
	v := (*b)[len(*b)-1]
	*b = (*b)[:len(*b)-1]
	return v, true
}

// Truncate shortens the slice to n bits. It is a no-op if n >= Len.
func (b *Bools) Truncate(n int) {
	if n < 0 {
		panic(&ErrInvalidRange{Start: n, End: n, Len: len(*b)})
	}
	if n < len(*b) {
		*b = (*b)[:n]
	}
}

// Resize sets the length to n, appending fill bits when growing.
func (b *Bools) Resize(n int, fill bool) {
	if n < 0 {
		panic(&ErrInvalidRange{Start: n, End: n, Len: len(*b)})
	}
	if n <= len(*b) {
		*b = (*b)[:n]
		return
	}
	for len(*b) < n {
		*b = append(*b, fill)
	}
}

// Extend appends all bits of src.
func (b *Bools) Extend(src Readable) {
	n := src.Len()
	for i := 0; i < n; i++ {
		*b = append(*b, src.Get(i))
	}
}

// Bits returns a lazy traversal of all bits in index order.
func (b *Bools) Bits() iter.Seq[bool] {
	return bitsSeq(b)
}

// String renders the bits in index order, bit 0 first.
func (b *Bools) String() string {
	return bitString(b)
}

// Backing identifies the adapter itself; the identity survives
// reallocation of the underlying slice.
func (b *Bools) Backing() (any, int) {
	return b, 0
}

// unsignedT covers the primitive unsigned integer types usable as a
// fixed-width bit container.
type unsignedT interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Uint adapts a primitive unsigned integer in place as a fixed-size
// Readable+Writable. Its length is the type's bit width; the width is
// immutable, so no Growable capability exists. Bit i is the bit of
// value 1<<i, matching the package-wide LSB-first convention.
type Uint[T unsignedT] struct {
	p     *T
	width int
}

// NewUint adapts the integer pointed to by p.
func NewUint[T unsignedT](p *T) *Uint[T] {
	return &Uint[T]{p: p, width: bits.Len64(uint64(^T(0)))}
}

// Len returns the bit width of T.
func (u *Uint[T]) Len() int {
	return u.width
}

// Get returns the bit at index i.
func (u *Uint[T]) Get(i int) bool {
	checkIndex(i, u.width)
	return *u.p>>uint(i)&1 == 1
}

// Set sets the bit at index i to v.
func (u *Uint[T]) Set(i int, v bool) {
	checkIndex(i, u.width)
	if v {
		*u.p |= 1 << uint(i)
	} else {
		*u.p &^= 1 << uint(i)
	}
}

// GetBits returns the bits in [start, end) as a little-endian integer.
func (u *Uint[T]) GetBits(start, end int) uint64 {
	checkRange(start, end, u.width)
	checkWidth(start, end)
	return uint64(*u.p) >> uint(start) & word.Mask(end-start)
}

// SetBits writes the low end-start bits of value into [start, end).
func (u *Uint[T]) SetBits(start, end int, value uint64) {
	checkRange(start, end, u.width)
	checkWidth(start, end)
	*u.p = T(word.With(uint64(*u.p), uint(start), end-start, value))
}

// Fill sets every bit to v.
func (u *Uint[T]) Fill(v bool) {
	if v {
		*u.p = ^T(0)
	} else {
		*u.p = 0
	}
}

// CopyFrom copies n bits of src starting at srcStart into the integer
// starting at dstStart. See Copy.
func (u *Uint[T]) CopyFrom(src Readable, srcStart, dstStart, n int) {
	Copy(u, dstStart, src, srcStart, n)
}

// Bits returns a lazy traversal of all bits in index order.
func (u *Uint[T]) Bits() iter.Seq[bool] {
	return bitsSeq(u)
}

// String renders the bits in index order, bit 0 first.
func (u *Uint[T]) String() string {
	return bitString(u)
}

// Backing identifies the adapted integer.
func (u *Uint[T]) Backing() (any, int) {
	return u.p, 0
}
