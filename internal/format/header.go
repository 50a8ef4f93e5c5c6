package format

// Typed accessors for the two header kinds. Offsets are int64 positions
// within the region; callers guarantee the header lies inside the buffer.

// FreeLength returns the total span of the free block at off, header included.
func FreeLength(b []byte, off int64) int64 {
	return ReadI64(b, int(off)+FreeLengthOffset)
}

// SetFreeLength updates the span of the free block at off.
func SetFreeLength(b []byte, off, length int64) {
	PutI64(b, int(off)+FreeLengthOffset, length)
}

// FreeNext returns the offset of the next free block in the chain, or EndOfList.
func FreeNext(b []byte, off int64) int64 {
	return ReadI64(b, int(off)+FreeNextOffset)
}

// SetFreeNext updates the next link of the free block at off.
func SetFreeNext(b []byte, off, next int64) {
	PutI64(b, int(off)+FreeNextOffset, next)
}

// WriteFreeHeader installs a complete free-block header at off.
func WriteFreeHeader(b []byte, off, length, next int64) {
	PutI64(b, int(off)+FreeLengthOffset, length)
	PutI64(b, int(off)+FreeNextOffset, next)
}

// UsedLength returns the payload length of the used block at off.
// The used header itself is not part of the reported length.
func UsedLength(b []byte, off int64) int64 {
	return ReadI64(b, int(off)+UsedLengthOffset)
}

// SetUsedLength installs a used-block header at off with the given payload length.
func SetUsedLength(b []byte, off, length int64) {
	PutI64(b, int(off)+UsedLengthOffset, length)
}
