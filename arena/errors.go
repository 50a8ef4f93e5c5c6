package arena

import "errors"

var (
	// ErrNoSpace indicates that no free block large enough was found.
	ErrNoSpace = errors.New("arena: no free block large enough")

	// ErrRegionTooSmall indicates the supplied region cannot hold even a
	// single free-block header.
	ErrRegionTooSmall = errors.New("arena: region too small for a free block header")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("arena: negative allocation size")

	// ErrBadRef indicates a reference that cannot denote a block of this
	// arena (out of bounds or inconsistent with the region length).
	ErrBadRef = errors.New("arena: bad block reference")
)
