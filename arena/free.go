package arena

import "github.com/memfit/memfit/internal/format"

// Free returns the allocation at ref to the pool, merging it with any
// address-adjacent free neighbor. Free(NilRef) is a no-op. Beyond cheap
// bounds checks (ErrBadRef) the arena trusts its caller: double-free and
// stale refs are undefined behavior.
func (a *Arena) Free(ref Ref) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// The nil fast path still takes and releases the lock so that every
	// return obeys the same discipline.
	if ref == NilRef {
		return nil
	}

	end := int64(len(a.data))
	if ref < format.UsedHeaderSize || ref > end {
		return ErrBadRef
	}
	usedOff := ref - format.UsedHeaderSize

	span := format.UsedHeaderSize + format.UsedLength(a.data, usedOff)
	if span < format.MinBlockSize || usedOff+span > end {
		return ErrBadRef
	}

	a.stats.FreeCalls++
	a.stats.BytesFreed += span

	// One pass over the free list finds everything the merge needs:
	// the block ending exactly at usedOff, the block starting exactly
	// at usedOff+span, and the insertion point that keeps the list
	// address-ordered. The gapless partition invariant guarantees no
	// other free block can touch the freed span.
	before := format.EndOfList
	after := format.EndOfList
	insertPrev := format.EndOfList

	for off := a.head; off != format.EndOfList; off = format.FreeNext(a.data, off) {
		switch {
		case off+format.FreeLength(a.data, off) == usedOff:
			before = off
		case off == usedOff+span:
			after = off
		}
		if off < usedOff {
			insertPrev = off
		}
	}

	switch {
	case before == format.EndOfList && after == format.EndOfList:
		// Neither neighbor is free: the span becomes a new free block.
		format.SetFreeLength(a.data, usedOff, span)
		a.insert(insertPrev, usedOff)

	case before != format.EndOfList && after == format.EndOfList:
		// The freed span vanishes into its predecessor; no list change.
		format.SetFreeLength(a.data, before, format.FreeLength(a.data, before)+span)
		a.stats.CoalesceBackward++

	case before == format.EndOfList:
		// Merge with the successor: the new header at usedOff takes over
		// after's span and its place in the chain. insertPrev is also
		// after's list predecessor, since no free block can sit inside
		// the freed span.
		merged := span + format.FreeLength(a.data, after)
		next := format.FreeNext(a.data, after)
		format.WriteFreeHeader(a.data, usedOff, merged, next)
		if insertPrev == format.EndOfList {
			a.head = usedOff
		} else {
			format.SetFreeNext(a.data, insertPrev, usedOff)
		}
		a.stats.CoalesceForward++

	default:
		// Both neighbors are free: before swallows the span and after.
		// before is after's list predecessor for the same adjacency
		// reason, so unlinking after is a single link update.
		merged := format.FreeLength(a.data, before) + span + format.FreeLength(a.data, after)
		a.unlink(before, after)
		format.SetFreeLength(a.data, before, merged)
		a.stats.CoalesceBoth++
	}

	return nil
}
