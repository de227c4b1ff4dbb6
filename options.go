package soa

import (
	"log/slog"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/pavanmanishd/soa/internal/mmap"
)

// AccessPattern is a hint about how off-heap memory will be accessed.
type AccessPattern = mmap.AccessPattern

// Access patterns accepted by WithAccessPattern.
const (
	AccessDefault    = mmap.AccessDefault
	AccessSequential = mmap.AccessSequential
	AccessRandom     = mmap.AccessRandom
	AccessWillNeed   = mmap.AccessWillNeed
)

// CacheLineSize is the cache-line size of the target CPU.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

type config struct {
	logger    *slog.Logger
	offHeap   bool
	access    AccessPattern
	cacheLine bool
	alloc     allocator
}

// Option configures a store at construction time. Clones inherit the options
// of their source.
type Option func(*config)

// WithLogger sets the logger used for reallocation and release events.
// A nil logger leaves the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOffHeap places the block in anonymous memory mapped from the operating
// system instead of the Go heap. Every element type must be pointer-free;
// constructing a store that violates this panics with ErrOffHeapPointers.
// Off-heap blocks are unmapped only by Release; a store dropped without
// Release leaks its mapping.
func WithOffHeap() Option {
	return func(c *config) {
		c.offHeap = true
	}
}

// WithAccessPattern passes an access hint to the kernel for every off-heap
// block. It has no effect on heap blocks.
func WithAccessPattern(p AccessPattern) Option {
	return func(c *config) {
		c.access = p
	}
}

// WithCacheLineAlignment starts every array on a multiple of CacheLineSize.
func WithCacheLineAlignment() Option {
	return func(c *config) {
		c.cacheLine = true
	}
}

// withAllocator replaces the backend; used by tests.
func withAllocator(a allocator) Option {
	return func(c *config) {
		c.alloc = a
	}
}

func newConfig(opts []Option) config {
	c := config{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// minAlign is the alignment every array is raised to.
func (c *config) minAlign() uintptr {
	if c.cacheLine {
		return CacheLineSize
	}
	return 1
}
