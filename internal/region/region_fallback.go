//go:build !unix

package region

import "fmt"

// Map returns a heap-backed region of size bytes on platforms without an
// mmap implementation. The cleanup function is a no-op; the garbage
// collector reclaims the slice once the caller drops it.
func Map(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("region: invalid mapping size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
