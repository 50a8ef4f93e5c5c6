package arena

import "github.com/memfit/memfit/internal/format"

// Free-list maintenance. The list is singly linked through the region
// bytes and kept in strictly ascending offset order; every mutation here
// preserves that order. Callers hold a.mu.

// insert links the free block at off into the chain directly after prev,
// or at the head when prev is format.EndOfList. The header at off must
// already carry its length; its next link is overwritten here.
func (a *Arena) insert(prev, off int64) {
	if prev == format.EndOfList {
		format.SetFreeNext(a.data, off, a.head)
		a.head = off
	} else {
		format.SetFreeNext(a.data, off, format.FreeNext(a.data, prev))
		format.SetFreeNext(a.data, prev, off)
	}
}

// unlink removes the free block at off from the chain. prev is its list
// predecessor, or format.EndOfList when off is the head.
func (a *Arena) unlink(prev, off int64) {
	next := format.FreeNext(a.data, off)
	if prev == format.EndOfList {
		a.head = next
	} else {
		format.SetFreeNext(a.data, prev, next)
	}
}

// eachFree calls fn for every free block in address order until fn
// returns false.
func (a *Arena) eachFree(fn func(off, length int64) bool) {
	for off := a.head; off != format.EndOfList; off = format.FreeNext(a.data, off) {
		if !fn(off, format.FreeLength(a.data, off)) {
			return
		}
	}
}
