package format

import "encoding/binary"

// Binary encoding utilities for little-endian integers.
//
// Header fields are fixed-width little-endian values written into the
// arena region through these helpers. encoding/binary is used directly:
// the compiler inlines LittleEndian calls, so there is nothing to gain
// from unsafe pointer tricks, and every access stays bounds-checked.

// PutU64 writes a uint64 value to the buffer at the specified offset in little-endian format.
func PutU64(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:off+8], v)
}

// ReadU64 reads a uint64 value from the buffer at the specified offset in little-endian format.
func ReadU64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+8])
}

// PutI64 writes an int64 value to the buffer at the specified offset in little-endian format.
func PutI64(b []byte, off int, v int64) {
	binary.LittleEndian.PutUint64(b[off:off+8], uint64(v))
}

// ReadI64 reads an int64 value from the buffer at the specified offset in little-endian format.
func ReadI64(b []byte, off int) int64 {
	return int64(binary.LittleEndian.Uint64(b[off : off+8]))
}
