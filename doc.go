// Package bitvec provides a packed, growable bit-vector for Go.
//
// The core type is Vector, which stores bits packed into 64-bit words
// and grows amortized O(1) per appended bit. Non-owning windows over a
// bit range are available as View (read-only) and ViewMut (read-write).
//
// # Capabilities
//
// Three nested interfaces describe what a bits-like value can do:
//
//	Readable  — Len, Get, GetBits, Bits
//	Writable  — Readable + Set, SetBits, Fill, CopyFrom
//	Growable  — Writable + Push, Pop, Truncate, Resize, Extend
//
// Vector implements Growable. Views implement Readable or Writable.
// Adapters make other representations participate through the same
// interfaces: Words (a raw []uint64), Bools (an unpacked []bool, one
// element per bit), Uint (any primitive unsigned integer), Bitlist
// (an Ethereum-style go-bitfield bitlist) and BitSet (a
// bits-and-blooms bitset). Copy moves bits between any Readable and
// any Writable regardless of alignment or representation.
//
// # Bit Order
//
// Logical bit i lives in word i/64 at bit i%64, with bit 0 of a word
// in the least significant position (LSB-first). GetBits returns a
// range as a little-endian integer: the bit at the lowest logical
// index becomes bit 0 of the result. This convention is applied
// uniformly across Vector, views, and all adapters, so bits copied
// from a uint8 holding 0b10110010 read back as 0b10110010.
//
// # Layout
//
// The canonical in-memory form of a Vector is its logical length plus
// a contiguous []uint64 in the order returned by Words(). Bits at
// positions >= Len() are always zero, so word-wise comparison and
// hashing of Words() never depend on unused trailing bits. External
// serializers can be written against exactly this layout.
//
// # Errors
//
// Index, range, and aliasing violations are caller bugs and panic
// with a typed error (ErrIndexOutOfBounds, ErrInvalidRange,
// ErrRangeTooWide, ErrAliasing). Only capacity overflow is returned
// as an ordinary error.
//
// # Concurrency
//
// A Vector is not synchronized. Any number of readers may share it;
// a writer needs exclusive access to the bits it touches. Overlapping
// mutable views are rejected at construction time by a runtime guard
// (see SliceMut).
package bitvec
