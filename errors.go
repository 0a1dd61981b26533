package bitvec

import "fmt"

// ErrIndexOutOfBounds indicates a single-bit access at or beyond the
// logical length. It is used as a panic value: an out-of-bounds index
// is a caller bug, not a runtime condition.
type ErrIndexOutOfBounds struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfBounds) Error() string {
	return fmt.Sprintf("bitvec: index %d out of bounds for length %d", e.Index, e.Len)
}

// ErrInvalidRange indicates a bit range with Start > End or End > Len.
// It is used as a panic value.
type ErrInvalidRange struct {
	Start int
	End   int
	Len   int
}

func (e *ErrInvalidRange) Error() string {
	if e.Start > e.End {
		return fmt.Sprintf("bitvec: invalid range [%d, %d): start exceeds end", e.Start, e.End)
	}
	return fmt.Sprintf("bitvec: range [%d, %d) out of bounds for length %d", e.Start, e.End, e.Len)
}

// ErrRangeTooWide indicates a GetBits/SetBits range wider than one
// 64-bit word. It is used as a panic value.
type ErrRangeTooWide struct {
	Start int
	End   int
}

func (e *ErrRangeTooWide) Error() string {
	return fmt.Sprintf("bitvec: range [%d, %d) spans %d bits, limit is 64", e.Start, e.End, e.End-e.Start)
}

// ErrAliasing indicates an attempt to mutate bits covered by an
// outstanding mutable view, or to create a view overlapping one.
// Start and End describe the conflicting outstanding span. It is used
// as a panic value.
type ErrAliasing struct {
	Start int
	End   int
}

func (e *ErrAliasing) Error() string {
	return fmt.Sprintf("bitvec: operation overlaps outstanding mutable view [%d, %d)", e.Start, e.End)
}

// ErrCapacityOverflow indicates a requested length or capacity beyond
// the representable bit-index space. It is the only recoverable error
// in the package.
type ErrCapacityOverflow struct {
	Bits int
}

func (e *ErrCapacityOverflow) Error() string {
	return fmt.Sprintf("bitvec: capacity of %d bits overflows the representable index space", e.Bits)
}

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(&ErrIndexOutOfBounds{Index: i, Len: n})
	}
}

func checkRange(start, end, n int) {
	if start < 0 || start > end || end > n {
		panic(&ErrInvalidRange{Start: start, End: end, Len: n})
	}
}

func checkWidth(start, end int) {
	if end-start > 64 {
		panic(&ErrRangeTooWide{Start: start, End: end})
	}
}
