package soa

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// Layout is the size and alignment of an element type, in bytes.
type Layout struct {
	Size, Align uintptr
}

// LayoutOf returns the layout of T.
func LayoutOf[T any]() Layout {
	var z T
	return Layout{Size: unsafe.Sizeof(z), Align: unsafe.Alignof(z)}
}

// Plan is the byte layout of a block holding Capacity elements of every array.
//
// Array k starts at Offsets[k] from the block base. The block must be
// allocated at an address aligned to Align, which is at least the alignment
// of every array (and in particular of array 0).
type Plan struct {
	Capacity   int
	Offsets    []uintptr
	TotalBytes uintptr
	Align      uintptr
}

// PlanLayout computes the array offsets and total block size for capacity
// elements of each of the given layouts, in declaration order.
//
// Array 0 is placed at its own alignment rather than at zero. Each following
// array starts at the previous array's end rounded up to its alignment.
// PlanLayout panics if capacity is negative, no layouts are given, an
// alignment is not a power of two, or the block size overflows.
func PlanLayout(capacity int, layouts ...Layout) Plan {
	return planLayout(capacity, layouts, 1)
}

// planLayout is PlanLayout with every alignment raised to at least minAlign.
func planLayout(capacity int, layouts []Layout, minAlign uintptr) Plan {
	if capacity < 0 {
		panic(fmt.Sprintf("soa: negative capacity %d", capacity))
	}
	if len(layouts) == 0 {
		panic("soa: plan needs at least one layout")
	}

	p := Plan{
		Capacity: capacity,
		Offsets:  make([]uintptr, len(layouts)),
		Align:    1,
	}

	var off uintptr
	for k, l := range layouts {
		align := max(l.Align, minAlign, 1)
		if align&(align-1) != 0 {
			panic(fmt.Sprintf("soa: alignment %d of array %d is not a power of two", align, k))
		}
		p.Align = max(p.Align, align)

		if k == 0 {
			off = align
		} else {
			off = mustAdd(off, align-1) &^ (align - 1)
		}
		p.Offsets[k] = off

		hi, span := bits.Mul64(uint64(capacity), uint64(l.Size))
		if hi != 0 || uint64(uintptr(span)) != span {
			panic(fmt.Errorf("soa: array %d of %d elements: %w", k, capacity, ErrLayoutOverflow))
		}
		off = mustAdd(off, uintptr(span))
	}
	p.TotalBytes = off
	return p
}

// End returns the byte offset one past the last element of array k.
func (p Plan) End(k int, l Layout) uintptr {
	return p.Offsets[k] + uintptr(p.Capacity)*l.Size
}

func mustAdd(a, b uintptr) uintptr {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 || uint64(uintptr(sum)) != sum {
		panic(fmt.Errorf("soa: %w", ErrLayoutOverflow))
	}
	return uintptr(sum)
}

// alignUp rounds off up to the next multiple of align (a power of two).
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) &^ mask
}
