package soa

import (
	"errors"
	"fmt"

	"github.com/pavanmanishd/soa/internal/mmap"
)

var (
	// ErrOffHeapPointers is the cause of the panic raised when WithOffHeap is
	// combined with element types the garbage collector must trace.
	ErrOffHeapPointers = errors.New("soa: off-heap storage requires pointer-free element types")
	// ErrLayoutOverflow is the cause of the panic raised when a layout plan
	// does not fit in the address space.
	ErrLayoutOverflow = errors.New("soa: layout size overflows address space")
	// ErrUnsupported is returned by the off-heap backend on platforms without
	// anonymous memory mappings.
	ErrUnsupported = mmap.ErrUnsupported
)

// AllocError is the panic value raised when a block cannot be obtained.
// The store that raised it is left exactly as it was before the call.
type AllocError struct {
	Capacity int     // requested capacity
	Bytes    uintptr // planned block size
	Backend  Backend // backend that failed
	Err      error   // underlying cause
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("soa: allocate %d bytes for capacity %d (%s): %v", e.Bytes, e.Capacity, e.Backend, e.Err)
}

func (e *AllocError) Unwrap() error {
	return e.Err
}
