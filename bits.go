package bitvec

import (
	"iter"
	"strings"
)

// Readable is the read-only capability of a bits-like value.
//
// Indices are logical bit positions in [0, Len). GetBits returns the
// range [start, end) as a little-endian integer and is limited to 64
// bits per call. Bits returns a fresh, restartable traversal of all
// bits in index order.
type Readable interface {
	Len() int
	Get(i int) bool
	GetBits(start, end int) uint64
	Bits() iter.Seq[bool]
}

// Writable is the read-write capability of a bits-like value. It does
// not allow length changes.
//
// SetBits writes the low end-start bits of value into [start, end);
// higher bits of value are ignored. CopyFrom copies n bits from src
// starting at srcStart into the receiver starting at dstStart, with
// the same semantics as the package-level Copy.
type Writable interface {
	Readable
	Set(i int, v bool)
	SetBits(start, end int, value uint64)
	Fill(v bool)
	CopyFrom(src Readable, srcStart, dstStart, n int)
}

// Growable is the full capability of a bits-like value whose length
// can change.
//
// Pop returns the last bit and true, or false if the value is empty.
// Truncate with n >= Len is a no-op. Resize grows with fill bits or
// shrinks to n. Extend appends all bits of src.
type Growable interface {
	Writable
	Push(v bool)
	Pop() (bool, bool)
	Truncate(n int)
	Resize(n int, fill bool)
	Extend(src Readable)
}

// Backed is implemented by values that can identify the storage they
// read and write. Copy uses it to detect self-overlap: when source
// and destination report the same owner, it compares absolute bit
// offsets and picks a safe copy direction.
//
// The owner must be comparable (typically a pointer); offset is the
// absolute bit offset of the value's bit 0 within that storage. A nil
// owner means the storage cannot be identified.
type Backed interface {
	Backing() (owner any, offset int)
}

// Equal reports whether a and b hold the same bit sequence. Only the
// logical [0, Len) bits are compared.
func Equal(a, b Readable) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for start := 0; start < n; start += 64 {
		end := min(start+64, n)
		if a.GetBits(start, end) != b.GetBits(start, end) {
			return false
		}
	}
	return true
}

// getBitsByBit assembles a range one bit at a time. Slow reference
// path for adapters without word-level access.
func getBitsByBit(r Readable, start, end int) uint64 {
	checkRange(start, end, r.Len())
	checkWidth(start, end)

	var v uint64
	for i := end - 1; i >= start; i-- {
		v <<= 1
		if r.Get(i) {
			v |= 1
		}
	}

	return v
}

// setBitsByBit writes a range one bit at a time. Slow reference path
// for adapters without word-level access.
func setBitsByBit(w Writable, start, end int, value uint64) {
	checkRange(start, end, w.Len())
	checkWidth(start, end)

	for i := start; i < end; i++ {
		w.Set(i, value&1 != 0)
		value >>= 1
	}
}

// bitsSeq yields all bits of r in index order via Get.
func bitsSeq(r Readable) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < r.Len(); i++ {
			if !yield(r.Get(i)) {
				return
			}
		}
	}
}

// bitString renders r as '0'/'1' runes in index order, bit 0 first.
func bitString(r Readable) string {
	var sb strings.Builder
	sb.Grow(r.Len())

	for b := range r.Bits() {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
