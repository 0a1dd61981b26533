package bitvec

import (
	"iter"

	"github.com/hupe1980/bitvec/internal/word"
)

type span struct {
	start, end int
}

// viewGuard tracks outstanding mutable view spans over a Vector. Go
// has no compile-time borrow checking, so exclusivity is enforced at
// runtime: creating an overlapping view, mutating covered bits, or
// changing the length while a mutable span is outstanding panics with
// ErrAliasing.
type viewGuard struct {
	spans []span
}

func (g *viewGuard) checkWrite(start, end int) {
	for _, s := range g.spans {
		if start < s.end && s.start < end {
			panic(&ErrAliasing{Start: s.start, End: s.end})
		}
	}
}

func (g *viewGuard) checkGrow() {
	if len(g.spans) > 0 {
		s := g.spans[0]
		panic(&ErrAliasing{Start: s.start, End: s.end})
	}
}

func (g *viewGuard) acquire(start, end int) {
	g.checkWrite(start, end)
	g.spans = append(g.spans, span{start: start, end: end})
}

func (g *viewGuard) release(start, end int) {
	for i, s := range g.spans {
		if s.start == start && s.end == end {
			g.spans = append(g.spans[:i], g.spans[i+1:]...)
			return
		}
	}
}

// View is a non-owning read-only window over a bit range of some
// backing storage. All indices are relative to the view and checked
// against the view's own length.
//
// A view does not own storage and does not track later length changes
// of its backing: growth of the backing Vector is safe (the view
// reads through the owner, never through a captured word slice), and
// bits truncated away read as zero.
type View struct {
	r       Readable
	vec     *Vector // fast path when backed by a Vector
	owner   any
	rootOff int // bit offset of r within owner
	start   int // bit offset of the view within r
	length  int
}

var _ Readable = (*View)(nil)

// Slice creates a read-only view of [start, end) of r. Slicing a view
// composes offsets onto the original backing. It panics with
// ErrInvalidRange when the range exceeds r and with ErrAliasing when
// the range overlaps an outstanding mutable view of the same Vector.
func Slice(r Readable, start, end int) *View {
	switch t := r.(type) {
	case *Vector:
		return t.Slice(start, end)
	case *View:
		return t.Slice(start, end)
	case *ViewMut:
		return t.Slice(start, end)
	}

	checkRange(start, end, r.Len())

	var owner any
	var rootOff int
	if b, ok := r.(Backed); ok {
		owner, rootOff = b.Backing()
	}

	return &View{r: r, owner: owner, rootOff: rootOff, start: start, length: end - start}
}

// Slice creates a read-only view of [start, end) of the vector.
func (v *Vector) Slice(start, end int) *View {
	checkRange(start, end, v.nbits)
	v.guard.checkWrite(start, end)
	return &View{r: v, vec: v, owner: v, start: start, length: end - start}
}

// Slice re-slices the view; the child range is relative to the view
// and must lie within it.
func (v *View) Slice(start, end int) *View {
	checkRange(start, end, v.length)
	if v.vec != nil {
		v.vec.guard.checkWrite(v.start+start, v.start+end)
	}
	return &View{
		r:       v.r,
		vec:     v.vec,
		owner:   v.owner,
		rootOff: v.rootOff,
		start:   v.start + start,
		length:  end - start,
	}
}

// Len returns the view length in bits.
func (v *View) Len() int {
	return v.length
}

// Get returns the bit at view-relative index i.
func (v *View) Get(i int) bool {
	checkIndex(i, v.length)
	if v.vec != nil {
		return v.vec.getBit(v.start + i)
	}
	return v.r.Get(v.start + i)
}

// GetBits returns the view-relative range [start, end) as a
// little-endian integer.
func (v *View) GetBits(start, end int) uint64 {
	checkRange(start, end, v.length)
	checkWidth(start, end)
	if v.vec != nil {
		return word.GetRange(v.vec.words, v.start+start, end-start)
	}
	return v.r.GetBits(v.start+start, v.start+end)
}

// Bits returns a lazy traversal of the view's bits in index order.
func (v *View) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.Get(i)) {
				return
			}
		}
	}
}

// String renders the view's bits in index order, bit 0 first.
func (v *View) String() string {
	return bitString(v)
}

// Backing identifies the storage behind the view and the absolute bit
// offset of its first bit.
func (v *View) Backing() (any, int) {
	return v.owner, v.rootOff + v.start
}

// ViewMut is a non-owning read-write window over a bit range. At most
// one mutable view may cover any bit of a Vector at a time; the
// conflict is detected at construction time (see SliceMut).
//
// A Vector-backed ViewMut must be released with Release once the
// caller is done with it; until then, overlapping views, overlapping
// direct mutation, and all length-changing operations on the backing
// Vector panic with ErrAliasing.
type ViewMut struct {
	w        Writable
	vec      *Vector
	owner    any
	rootOff  int
	start    int
	length   int
	released bool
}

var _ Writable = (*ViewMut)(nil)

// SliceMut creates a mutable view of [start, end) of w. For a Vector
// backing, the range is registered with the vector's exclusivity
// guard and construction panics with ErrAliasing if it overlaps an
// outstanding mutable view. Slicing a ViewMut narrows it and consumes
// the parent. For other backings no runtime guard exists; exclusivity
// is the caller's contract.
func SliceMut(w Writable, start, end int) *ViewMut {
	switch t := w.(type) {
	case *Vector:
		return t.SliceMut(start, end)
	case *ViewMut:
		return t.SliceMut(start, end)
	}

	checkRange(start, end, w.Len())

	var owner any
	var rootOff int
	if b, ok := w.(Backed); ok {
		owner, rootOff = b.Backing()
	}

	return &ViewMut{w: w, owner: owner, rootOff: rootOff, start: start, length: end - start}
}

// SliceMut creates a mutable view of [start, end) of the vector.
func (v *Vector) SliceMut(start, end int) *ViewMut {
	checkRange(start, end, v.nbits)
	v.guard.acquire(start, end)
	return &ViewMut{w: v, vec: v, owner: v, start: start, length: end - start}
}

// SliceMut narrows the view to the view-relative range [start, end).
// The parent is consumed: its span is handed over to the child and
// the parent must not be used afterwards.
func (m *ViewMut) SliceMut(start, end int) *ViewMut {
	m.active()
	checkRange(start, end, m.length)

	child := &ViewMut{
		w:       m.w,
		vec:     m.vec,
		owner:   m.owner,
		rootOff: m.rootOff,
		start:   m.start + start,
		length:  end - start,
	}
	if m.vec != nil {
		m.vec.guard.release(m.start, m.start+m.length)
		m.vec.guard.acquire(child.start, child.start+child.length)
	}
	m.released = true

	return child
}

// Slice creates a read-only view of the view-relative range
// [start, end). The read view shares the caller's exclusive window,
// so it bypasses the aliasing guard; it must not be used after the
// mutable view is released.
func (m *ViewMut) Slice(start, end int) *View {
	m.active()
	checkRange(start, end, m.length)
	return &View{
		r:       m.w,
		vec:     m.vec,
		owner:   m.owner,
		rootOff: m.rootOff,
		start:   m.start + start,
		length:  end - start,
	}
}

// Release ends the view's exclusive claim on its range. Releasing
// twice is a no-op; any other use after Release panics.
func (m *ViewMut) Release() {
	if m.released {
		return
	}
	if m.vec != nil {
		m.vec.guard.release(m.start, m.start+m.length)
	}
	m.released = true
}

// Len returns the view length in bits.
func (m *ViewMut) Len() int {
	return m.length
}

// Get returns the bit at view-relative index i.
func (m *ViewMut) Get(i int) bool {
	m.active()
	checkIndex(i, m.length)
	if m.vec != nil {
		return m.vec.getBit(m.start + i)
	}
	return m.w.Get(m.start + i)
}

// Set sets the bit at view-relative index i.
func (m *ViewMut) Set(i int, b bool) {
	m.active()
	checkIndex(i, m.length)
	if m.vec != nil {
		m.vec.setBit(m.start+i, b)
		return
	}
	m.w.Set(m.start+i, b)
}

// GetBits returns the view-relative range [start, end) as a
// little-endian integer.
func (m *ViewMut) GetBits(start, end int) uint64 {
	m.active()
	checkRange(start, end, m.length)
	checkWidth(start, end)
	if m.vec != nil {
		return word.GetRange(m.vec.words, m.start+start, end-start)
	}
	return m.w.GetBits(m.start+start, m.start+end)
}

// SetBits writes the low end-start bits of value into the
// view-relative range [start, end).
func (m *ViewMut) SetBits(start, end int, value uint64) {
	m.active()
	checkRange(start, end, m.length)
	checkWidth(start, end)
	if m.vec != nil {
		word.SetRange(m.vec.words, m.start+start, end-start, value)
		return
	}
	m.w.SetBits(m.start+start, m.start+end, value)
}

// Fill sets every bit of the view to b.
func (m *ViewMut) Fill(b bool) {
	m.active()
	var v uint64
	if b {
		v = ^uint64(0)
	}
	for off := 0; off < m.length; off += word.Bits {
		chunk := min(word.Bits, m.length-off)
		m.SetBits(off, off+chunk, v)
	}
}

// CopyFrom copies n bits of src starting at srcStart into the view
// starting at view-relative dstStart. See Copy.
func (m *ViewMut) CopyFrom(src Readable, srcStart, dstStart, n int) {
	Copy(m, dstStart, src, srcStart, n)
}

// Bits returns a lazy traversal of the view's bits in index order.
func (m *ViewMut) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < m.length; i++ {
			if !yield(m.Get(i)) {
				return
			}
		}
	}
}

// String renders the view's bits in index order, bit 0 first.
func (m *ViewMut) String() string {
	return bitString(m)
}

// Backing identifies the storage behind the view and the absolute bit
// offset of its first bit.
func (m *ViewMut) Backing() (any, int) {
	return m.owner, m.rootOff + m.start
}

func (m *ViewMut) active() {
	if m.released {
		panic("bitvec: mutable view used after Release")
	}
}
