package arena

import (
	"fmt"
	"sync"

	"github.com/memfit/memfit/internal/format"
)

// Ref identifies a live allocation: the offset of its payload within the
// arena region. Refs are stable for the lifetime of the allocation and
// are the only token Free accepts.
type Ref = int64

// NilRef is the failure/absent reference. No payload can start at offset
// zero because at least one used-block header precedes it, so the zero
// value is unambiguous.
const NilRef Ref = 0

// Header sizes of the on-region block model, exported so callers can
// reason about overhead: an allocation of n payload bytes consumes
// n+UsedHeaderSize bytes of the region, and requests below MinAllocSize
// are clamped up to it.
const (
	UsedHeaderSize = format.UsedHeaderSize
	FreeHeaderSize = format.FreeHeaderSize
	MinAllocSize   = format.MinAllocSize
)

// Arena is a first-fit free-list allocator over one contiguous region.
// All methods are safe for concurrent use; a single mutex serializes
// every operation.
type Arena struct {
	mu    sync.Mutex
	data  []byte
	head  int64 // offset of the lowest-addressed free block, format.EndOfList when exhausted
	stats Stats
}

// New takes ownership of region and seeds the allocator with one free
// block spanning all of it. The region must not be accessed directly by
// the caller afterwards, except through payload slices returned by Alloc.
func New(region []byte) (*Arena, error) {
	if len(region) < format.MinBlockSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d",
			ErrRegionTooSmall, len(region), format.MinBlockSize)
	}
	a := &Arena{data: region, head: 0}
	format.WriteFreeHeader(region, 0, int64(len(region)), format.EndOfList)
	return a, nil
}

// Len returns the total region length in bytes. Constant for the arena's
// lifetime.
func (a *Arena) Len() int64 {
	return int64(len(a.data))
}

// Size returns the number of entries on the free list. It is a
// fragmentation indicator, not a byte count.
func (a *Arena) Size() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := 0
	for off := a.head; off != format.EndOfList; off = format.FreeNext(a.data, off) {
		n++
	}
	return n
}
