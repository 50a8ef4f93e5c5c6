package format

// Block header layout constants.
//
// Both header kinds are overlaid on the arena region itself: a used block
// is a UsedHeaderSize-byte header followed by its payload, a free block is
// a FreeHeaderSize-byte header describing the whole span it covers. All
// fields are little-endian 64-bit integers read and written through the
// codec in encoding.go, so nothing in the region needs any particular
// alignment.

const (
	// UsedHeaderSize is the size of a used-block header: a single length
	// field counting payload bytes (the header itself is excluded).
	UsedHeaderSize = 8

	// FreeHeaderSize is the size of a free-block header: a length field
	// counting the total span of the block (header included) followed by
	// the next link of the address-ordered free list.
	FreeHeaderSize = 16

	// MinAllocSize is the smallest payload the allocator will grant.
	// Requests below it are clamped up so that when the block is freed,
	// the region it occupied (payload plus used header) is always large
	// enough to hold a free-block header.
	MinAllocSize = FreeHeaderSize - UsedHeaderSize

	// MinBlockSize is the smallest span a free block may cover: it must
	// at least contain its own header.
	MinBlockSize = FreeHeaderSize
)

// EndOfList terminates the free-list chain. It is distinct from every
// valid block offset, including 0.
const EndOfList int64 = -1

// Field offsets within a free-block header.
const (
	FreeLengthOffset = 0
	FreeNextOffset   = 8
)

// Field offset within a used-block header.
const UsedLengthOffset = 0
