//go:build unix

package region

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Map returns an anonymous read/write mapping of size bytes and a cleanup
// function that releases it. The pages come straight from the kernel, so
// the region is page-aligned and never moved by the Go runtime.
func Map(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("region: invalid mapping size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, fmt.Errorf("region: mmap %d bytes: %w", size, err)
	}
	cleanup := func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}
