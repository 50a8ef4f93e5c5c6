package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// threeAdjacent allocates three equally sized blocks. Refs come back in
// allocation order; because blocks are carved top-down, c sits at the
// lowest offset and a at the highest.
func threeAdjacent(t *testing.T, a *Arena, n int64) (x, y, z Ref) {
	t.Helper()
	x, _, err := a.Alloc(n)
	require.NoError(t, err)
	y, _, err = a.Alloc(n)
	require.NoError(t, err)
	z, _, err = a.Alloc(n)
	require.NoError(t, err)
	return x, y, z
}

func Test_FreeWithNoFreeNeighbors(t *testing.T) {
	a, err := New(make([]byte, 1024))
	require.NoError(t, err)

	_, mid, _ := threeAdjacent(t, a, 100)

	// mid's neighbors are both used: freeing it adds one list entry.
	require.NoError(t, a.Free(mid))
	require.Equal(t, 2, a.Size())
	require.Equal(t, []Block{{Off: 0, Len: 700}, {Off: 808, Len: 108}}, a.Dump())
}

func Test_FreeCoalescesIntoPredecessor(t *testing.T) {
	a, err := New(make([]byte, 1024))
	require.NoError(t, err)

	hi, mid, _ := threeAdjacent(t, a, 100)
	require.NoError(t, a.Free(mid))

	// hi sits directly above the hole left by mid: it vanishes into it.
	require.NoError(t, a.Free(hi))
	require.Equal(t, 2, a.Size())
	require.Equal(t, []Block{{Off: 0, Len: 700}, {Off: 808, Len: 216}}, a.Dump())
	require.Equal(t, int64(1), a.Stats().CoalesceBackward)
}

func Test_FreeCoalescesWithSuccessor(t *testing.T) {
	a, err := New(make([]byte, 1024))
	require.NoError(t, err)

	hi, mid, lo := threeAdjacent(t, a, 100)
	require.NoError(t, a.Free(hi))

	// mid's successor is now free while lo below it is still used: the
	// freed block takes over the successor's span and list position.
	require.NoError(t, a.Free(mid))
	require.Equal(t, 2, a.Size())
	require.Equal(t, []Block{{Off: 0, Len: 700}, {Off: 808, Len: 216}}, a.Dump())
	require.Equal(t, int64(1), a.Stats().CoalesceForward)

	require.NoError(t, a.Free(lo))
	require.Equal(t, []Block{{Off: 0, Len: 1024}}, a.Dump())
}

func Test_FreeCoalescesBothDirections(t *testing.T) {
	a, err := New(make([]byte, 1024))
	require.NoError(t, err)

	hi, mid, lo := threeAdjacent(t, a, 100)
	require.NoError(t, a.Free(hi))
	require.NoError(t, a.Free(lo)) // merges into the block below mid
	require.Equal(t, []Block{{Off: 0, Len: 808}, {Off: 916, Len: 108}}, a.Dump())

	// Freeing the middle block fuses its span with both neighbors into
	// a single entry.
	require.NoError(t, a.Free(mid))
	require.Equal(t, 1, a.Size())
	require.Equal(t, []Block{{Off: 0, Len: 1024}}, a.Dump())
	require.Equal(t, int64(1), a.Stats().CoalesceBoth)
}

// Freeing the middle allocation grows the list by one; releasing its
// neighbors afterwards collapses everything back into the original
// spanning block.
func Test_MiddleFreeThenNeighborsRestoreRegion(t *testing.T) {
	a, err := New(make([]byte, 1024))
	require.NoError(t, err)

	first, mid, last := threeAdjacent(t, a, 100)

	old := a.Size()
	require.NoError(t, a.Free(mid))
	require.Equal(t, old+1, a.Size())

	require.NoError(t, a.Free(first))
	require.NoError(t, a.Free(last))
	require.Equal(t, 1, a.Size())
	require.Equal(t, []Block{{Off: 0, Len: 1024}}, a.Dump())
}

func Test_FreeListStaysAddressOrdered(t *testing.T) {
	a, err := New(make([]byte, 8192))
	require.NoError(t, err)

	refs := make([]Ref, 0, 16)
	for i := 0; i < 16; i++ {
		ref, _, allocErr := a.Alloc(200)
		require.NoError(t, allocErr)
		refs = append(refs, ref)
	}

	// Free every other allocation, deliberately out of address order.
	for _, i := range []int{9, 1, 13, 5, 3, 11, 7, 15} {
		require.NoError(t, a.Free(refs[i]))
	}

	blocks := a.Dump()
	for i := 1; i < len(blocks); i++ {
		require.Greater(t, blocks[i].Off, blocks[i-1].Off,
			"free list must be strictly ascending, got %+v", blocks)
		require.Greater(t, blocks[i].Off, blocks[i-1].Off+blocks[i-1].Len-1,
			"free blocks must not overlap, got %+v", blocks)
	}
}

func Test_AllocFreeRoundTripRestoresList(t *testing.T) {
	a, err := New(make([]byte, 4096))
	require.NoError(t, err)

	// Fragment the arena a little before the round trip.
	keep, _, err := a.Alloc(300)
	require.NoError(t, err)
	hole, _, err := a.Alloc(300)
	require.NoError(t, err)
	_, _, err = a.Alloc(300)
	require.NoError(t, err)
	require.NoError(t, a.Free(hole))

	size := a.Size()
	free := a.FreeBytes()

	for _, n := range []int64{8, 64, 300} {
		ref, _, allocErr := a.Alloc(n)
		require.NoError(t, allocErr)
		require.NoError(t, a.Free(ref))
		require.Equal(t, size, a.Size(), "Alloc(%d)+Free round trip", n)
		require.Equal(t, free, a.FreeBytes(), "Alloc(%d)+Free round trip", n)
	}
	_ = keep
}
