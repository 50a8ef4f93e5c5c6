package arena

import "github.com/memfit/memfit/internal/format"

// Alloc reserves n bytes and returns the allocation's Ref together with
// a slice covering exactly the granted payload. Requests smaller than
// the minimum allocation size are clamped up (the granted slice reflects
// that), so freeing any allocation always yields a representable free
// block. Returns ErrNoSpace when no free block can satisfy the request;
// a failed call leaves the arena unchanged.
func (a *Arena) Alloc(n int64) (Ref, []byte, error) {
	if n < 0 {
		return NilRef, nil, ErrBadSize
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.AllocCalls++

	if n < format.MinAllocSize {
		n = format.MinAllocSize
	}

	// No request larger than the whole region can ever fit. Rejecting
	// here also keeps needed from wrapping negative for absurd sizes.
	if n > int64(len(a.data)) {
		a.stats.AllocFails++
		return NilRef, nil, ErrNoSpace
	}
	needed := n + format.UsedHeaderSize

	// First-fit: walk the address-ordered list from the lowest offset
	// and take the first block with enough room.
	prev := format.EndOfList
	for off := a.head; off != format.EndOfList; prev, off = off, format.FreeNext(a.data, off) {
		length := format.FreeLength(a.data, off)
		if length < needed {
			continue
		}

		blockEnd := off + length
		leftover := length - needed

		if leftover < format.MinBlockSize {
			// The remainder cannot stand as a free block. Hand it to the
			// caller and consume the block entirely; no fragment is left
			// behind.
			n += leftover
			needed += leftover
			a.unlink(prev, off)
			a.stats.Absorbs++
		} else {
			// Shrink in place. The free header keeps its offset, so the
			// list links and ordering are untouched.
			format.SetFreeLength(a.data, off, leftover)
			a.stats.Splits++
		}

		// Carve the used block from the high end of the chosen block.
		usedOff := blockEnd - needed
		format.SetUsedLength(a.data, usedOff, n)
		a.stats.BytesAllocated += needed

		ref := usedOff + format.UsedHeaderSize
		return ref, a.data[ref : ref+n : ref+n], nil
	}

	a.stats.AllocFails++
	return NilRef, nil, ErrNoSpace
}
