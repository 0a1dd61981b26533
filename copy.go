package bitvec

// Copy copies n bits from src starting at srcStart into dst starting
// at dstStart. Source and destination may use different backing
// representations and need not be word-aligned relative to each
// other; bits move in chunks of up to 64 through GetBits/SetBits.
//
// When src and dst report the same backing storage (see Backed) and
// the two ranges overlap, the copy proceeds back to front whenever
// the destination starts above the source, so every source bit is
// read before it can be overwritten. The result is always the same as
// copying through an intermediate buffer.
//
// Copy panics with ErrInvalidRange if either range falls outside its
// operand.
func Copy(dst Writable, dstStart int, src Readable, srcStart, n int) {
	if n < 0 {
		panic(&ErrInvalidRange{Start: srcStart, End: srcStart + n, Len: src.Len()})
	}
	checkRange(srcStart, srcStart+n, src.Len())
	checkRange(dstStart, dstStart+n, dst.Len())

	// The whole destination span must be claimable up front so an
	// aliasing conflict in a later chunk cannot leave earlier chunks
	// already written.
	if v, ok := dst.(*Vector); ok {
		v.guard.checkWrite(dstStart, dstStart+n)
	}

	if n == 0 {
		return
	}

	if copyBackward(dst, dstStart, src, srcStart, n) {
		for rem := n; rem > 0; {
			chunk := min(64, rem)
			rem -= chunk
			dst.SetBits(dstStart+rem, dstStart+rem+chunk, src.GetBits(srcStart+rem, srcStart+rem+chunk))
		}
		return
	}

	for off := 0; off < n; off += 64 {
		chunk := min(64, n-off)
		dst.SetBits(dstStart+off, dstStart+off+chunk, src.GetBits(srcStart+off, srcStart+off+chunk))
	}
}

// copyBackward reports whether the copy must run back to front: same
// backing storage, overlapping ranges, destination above source.
func copyBackward(dst Writable, dstStart int, src Readable, srcStart, n int) bool {
	db, ok := dst.(Backed)
	if !ok {
		return false
	}
	sb, ok := src.(Backed)
	if !ok {
		return false
	}

	dOwner, dOff := db.Backing()
	sOwner, sOff := sb.Backing()
	if dOwner == nil || dOwner != sOwner {
		return false
	}

	ad, as := dOff+dstStart, sOff+srcStart

	return ad > as && ad < as+n
}
