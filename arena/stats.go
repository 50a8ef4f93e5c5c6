package arena

// Stats is a snapshot of allocator counters. Byte counters include
// header overhead, so for any quiescent arena
// BytesAllocated - BytesFreed equals the region bytes currently held by
// used blocks.
type Stats struct {
	AllocCalls int64 // total Alloc invocations
	AllocFails int64 // Alloc calls that returned ErrNoSpace
	FreeCalls  int64 // Free invocations that released a block

	BytesAllocated int64 // total bytes handed out, headers included
	BytesFreed     int64 // total bytes returned, headers included

	Splits  int64 // allocations that shrank a free block in place
	Absorbs int64 // allocations that consumed a free block whole

	CoalesceForward  int64 // frees merged with the following free block
	CoalesceBackward int64 // frees merged into the preceding free block
	CoalesceBoth     int64 // frees that fused three spans into one
}

// Stats returns a consistent snapshot of the counters.
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}
