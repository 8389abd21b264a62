package fixedarena

import (
	"errors"
	"fmt"
)

// Arena contract errors
var (
	// ErrInvalidArgument is returned for zero or negative size parameters
	// at construction, and for operations on a nil arena handle.
	ErrInvalidArgument = errors.New("fixedarena: invalid argument")

	// ErrOutOfMemory is returned when the backing allocator cannot provide
	// a new chunk, or when the requested chunk geometry overflows int.
	ErrOutOfMemory = errors.New("fixedarena: out of memory")

	// ErrReleased is returned by Alloc on an arena that has been released.
	// It matches ErrInvalidArgument under errors.Is.
	ErrReleased = fmt.Errorf("arena released: %w", ErrInvalidArgument)
)
