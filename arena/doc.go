// Package arena implements a thread-safe first-fit free-list allocator
// over a caller-supplied contiguous byte region.
//
// # Overview
//
// The caller hands New a region once; the allocator carves allocations
// out of it and returns freed spans to a reusable pool, merging them
// with address-adjacent free neighbors. The region is never grown,
// relocated, or handed back to the runtime: the sum of all block spans
// (free and used, headers included) is the region length at all times.
//
// # Block model
//
// Every byte of the region belongs to exactly one block. A used block is
// an 8-byte header (payload length) followed by the payload. A free
// block is a 16-byte header carrying its total span and the offset of
// the next free block. Free blocks form a singly linked list threaded
// through the region itself, kept in strictly ascending offset order.
// Address order, not size order, is the structural invariant: it turns
// the neighbor test during Free into two equality comparisons.
//
// # Allocation policy
//
// Alloc scans the free list from the lowest offset and takes the first
// block large enough (first-fit). The used block is carved from the
// high end of the chosen free block, so the free header stays at its
// original offset across repeated splits. A leftover too small to stand
// as a free block is absorbed into the allocation instead of being left
// behind as an unusable fragment.
//
// # Usage
//
//	backing := make([]byte, 1<<20)
//	a, err := arena.New(backing)
//	if err != nil {
//	    return err
//	}
//
//	ref, buf, err := a.Alloc(256)
//	if err != nil {
//	    return err // arena.ErrNoSpace when nothing fits
//	}
//	copy(buf, payload)
//
//	// Later, return the block to the pool.
//	if err := a.Free(ref); err != nil {
//	    return err
//	}
//
// # Thread safety
//
// A single mutex inside Arena serializes every operation, including the
// diagnostics. Distinct Arena values are fully independent; there is no
// package-level state. The lock is not reentrant: callers must not call
// back into the same arena from code running under one of its
// operations.
//
// # Caller contract
//
// The allocator trusts its caller. Freeing a reference that was not
// returned by Alloc on the same arena, freeing twice, or writing through
// a payload slice after Free are not detected beyond cheap bounds
// checks and leave the arena in an undefined state. NilRef is the one
// sanctioned exception: Free(NilRef) is a no-op.
package arena
