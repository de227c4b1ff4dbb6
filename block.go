package soa

import (
	"fmt"
	"math/bits"
	"reflect"
	"unsafe"

	"github.com/pavanmanishd/soa/internal/mmap"
)

// Backend identifies where a store's block lives.
type Backend uint8

const (
	// BackendHeap is a typed Go heap object; the collector traces pointers in it.
	BackendHeap Backend = iota
	// BackendBytes is an untyped Go byte slice, used when every element type is pointer-free.
	BackendBytes
	// BackendOffHeap is an anonymous memory mapping outside the Go heap.
	BackendOffHeap
)

func (b Backend) String() string {
	switch b {
	case BackendHeap:
		return "heap"
	case BackendBytes:
		return "bytes"
	case BackendOffHeap:
		return "offheap"
	default:
		return fmt.Sprintf("backend(%d)", uint8(b))
	}
}

// block is the single allocation backing a store.
type block struct {
	base  unsafe.Pointer
	bytes uintptr
	// keep holds the heap object base points into.
	keep    any
	mapping *mmap.Mapping
}

// free releases the block. Heap blocks are left to the collector.
func (b *block) free() error {
	b.base = nil
	b.keep = nil
	if b.mapping == nil {
		return nil
	}
	err := b.mapping.Close()
	b.mapping = nil
	return err
}

// allocator obtains a zeroed block laid out according to a plan.
type allocator interface {
	// blockCapacity returns the record count to plan a block for when the
	// store needs room for n records.
	blockCapacity(n int) int
	allocate(p Plan) (*block, error)
	backend() Backend
}

// exactCapacity is the blockCapacity of backends without per-capacity state.
type exactCapacity struct{}

func (exactCapacity) blockCapacity(n int) int { return n }

// selectAllocator picks the backend for a set of columns.
func selectAllocator(cols []column, cfg *config) allocator {
	var pointers []reflect.Type
	for _, col := range cols {
		if t := col.typ(); hasPointers(t) {
			pointers = append(pointers, t)
		}
	}

	switch {
	case cfg.offHeap && len(pointers) > 0:
		panic(fmt.Errorf("soa: element types %v: %w", pointers, ErrOffHeapPointers))
	case cfg.offHeap:
		return offHeapAllocator{access: cfg.access}
	case len(pointers) > 0:
		return typedHeapAllocator{cols: cols}
	default:
		return bytesAllocator{}
	}
}

// typedHeapAllocator allocates a struct type whose fields are the arrays at
// their planned offsets, so the collector sees exactly where pointers live.
type typedHeapAllocator struct {
	cols []column
}

var byteType = reflect.TypeFor[byte]()

func (a typedHeapAllocator) backend() Backend { return BackendHeap }

// blockCapacity rounds n to a size class. reflect keeps every struct type it
// builds for the life of the process, so capacities share a bounded set of
// block types: exact up to exactClassLimit, then four classes per power of two.
func (a typedHeapAllocator) blockCapacity(n int) int { return sizeClass(n) }

const exactClassLimit = 64

func sizeClass(n int) int {
	if n <= exactClassLimit {
		return n
	}
	step := 1 << (bits.Len(uint(n)) - 3)
	c := (n + step - 1) &^ (step - 1)
	if c < n {
		return n
	}
	return c
}

func (a typedHeapAllocator) allocate(p Plan) (*block, error) {
	t, err := a.blockType(p)
	if err != nil {
		return nil, err
	}
	v := reflect.New(t)
	return &block{
		base:  v.UnsafePointer(),
		bytes: t.Size(),
		keep:  v.Interface(),
	}, nil
}

// blockType builds
//
//	struct { Pad0 [o0]byte; A0 [cap]T0; Pad1 [gap]byte; A1 [cap]T1; ... }
//
// with padding fields only where the plan leaves a gap.
func (a typedHeapAllocator) blockType(p Plan) (reflect.Type, error) {
	fields := make([]reflect.StructField, 0, 2*len(a.cols))
	index := make([]int, len(a.cols))
	var end uintptr
	for k, col := range a.cols {
		if gap := p.Offsets[k] - end; gap > 0 {
			fields = append(fields, reflect.StructField{
				Name: fmt.Sprintf("Pad%d", k),
				Type: reflect.ArrayOf(int(gap), byteType),
			})
		}
		index[k] = len(fields)
		fields = append(fields, reflect.StructField{
			Name: fmt.Sprintf("A%d", k),
			Type: reflect.ArrayOf(p.Capacity, col.typ()),
		})
		end = p.End(k, col.layout())
	}

	t := reflect.StructOf(fields)
	for k, i := range index {
		if off := t.Field(i).Offset; off != p.Offsets[k] {
			return nil, fmt.Errorf("soa: array %d placed at %d, planned %d", k, off, p.Offsets[k])
		}
	}
	return t, nil
}

// bytesAllocator over-allocates a byte slice and aligns the base inside it.
type bytesAllocator struct {
	exactCapacity
}

func (bytesAllocator) backend() Backend { return BackendBytes }

func (bytesAllocator) allocate(p Plan) (*block, error) {
	buf := make([]byte, p.TotalBytes+p.Align)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	shift := alignUp(addr, p.Align) - addr
	return &block{
		base:  unsafe.Pointer(&buf[shift]),
		bytes: p.TotalBytes,
		keep:  buf,
	}, nil
}

// offHeapAllocator maps anonymous memory; page alignment covers any plan
// alignment up to the page size. A mapping is only unmapped by free: a store
// dropped without Release leaks it, so views taken from the store stay valid.
type offHeapAllocator struct {
	exactCapacity
	access AccessPattern
}

func (offHeapAllocator) backend() Backend { return BackendOffHeap }

func (a offHeapAllocator) allocate(p Plan) (*block, error) {
	m, err := mmap.MapAnon(int(p.TotalBytes))
	if err != nil {
		return nil, err
	}
	if a.access != mmap.AccessDefault {
		if err := m.Advise(a.access); err != nil {
			_ = m.Close()
			return nil, fmt.Errorf("advise %s: %w", a.access, err)
		}
	}

	data := m.Bytes()
	return &block{
		base:    unsafe.Pointer(&data[0]),
		bytes:   uintptr(len(data)),
		mapping: m,
	}, nil
}
