package arena

import (
	"fmt"
	"io"
)

// Block describes one free block: its offset within the region and its
// total span, header included.
type Block struct {
	Off int64
	Len int64
}

// Dump returns a snapshot of the free list in address order. Diagnostic
// only; the output carries no promise beyond the ordering.
func (a *Arena) Dump() []Block {
	a.mu.Lock()
	defer a.mu.Unlock()

	var blocks []Block
	a.eachFree(func(off, length int64) bool {
		blocks = append(blocks, Block{Off: off, Len: length})
		return true
	})
	return blocks
}

// DumpTo writes a human-readable free-list listing to w, one block per
// line. Callers must not parse the output.
func (a *Arena) DumpTo(w io.Writer) {
	for _, b := range a.Dump() {
		fmt.Fprintf(w, "\t%#x %d\n", b.Off, b.Len)
	}
}

// FreeBytes returns the total bytes currently on the free list, free
// headers included.
func (a *Arena) FreeBytes() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	var total int64
	a.eachFree(func(_, length int64) bool {
		total += length
		return true
	})
	return total
}

// LargestFree returns the span of the largest free block, or 0 when the
// region is fully allocated. An allocation of LargestFree()-UsedHeaderSize
// payload bytes or less is guaranteed to succeed in the absence of
// concurrent callers.
func (a *Arena) LargestFree() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	var largest int64
	a.eachFree(func(_, length int64) bool {
		if length > largest {
			largest = length
		}
		return true
	})
	return largest
}
