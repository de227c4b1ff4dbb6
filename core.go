package soa

import (
	"fmt"
	"unsafe"
)

// core is the type-independent engine shared by every StoreN. It owns one
// block holding capacity elements of each column and keeps the first size
// elements of every column constructed. Not goroutine-safe.
type core struct {
	_ noCopy

	cols    []column
	layouts []Layout
	cfg     config
	alloc   allocator

	base     unsafe.Pointer // nil iff capacity == 0
	blk      *block
	offsets  []uintptr
	total    uintptr
	size     int
	capacity int
	blockCap int // records the block is laid out for, >= capacity
	reallocs uint64
}

// noCopy lets go vet's copylocks check report stores copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func newCore(cols []column, opts []Option) core {
	cfg := newConfig(opts)
	layouts := make([]Layout, len(cols))
	for k, col := range cols {
		layouts[k] = col.layout()
	}
	alloc := cfg.alloc
	if alloc == nil {
		alloc = selectAllocator(cols, &cfg)
	}
	return core{
		cols:    cols,
		layouts: layouts,
		cfg:     cfg,
		alloc:   alloc,
	}
}

// twin returns an empty core with the same columns and configuration.
func (c *core) twin() core {
	return core{
		cols:    c.cols,
		layouts: c.layouts,
		cfg:     c.cfg,
		alloc:   c.alloc,
	}
}

// construct sizes an empty core to n zero-valued records.
func (c *core) construct(n int) {
	if n < 0 {
		panic(fmt.Sprintf("soa: negative size %d", n))
	}
	if n == 0 {
		return
	}
	c.reserve(n)
	for k, col := range c.cols {
		col.defaultConstruct(c.arrayBase(k), n)
	}
	c.size = n
}

// Len returns the number of records.
func (c *core) Len() int { return c.size }

// Cap returns the number of records the current block can hold.
func (c *core) Cap() int { return c.capacity }

// Empty reports whether the store holds no records.
func (c *core) Empty() bool { return c.size == 0 }

func (c *core) arrayBase(k int) unsafe.Pointer {
	return unsafe.Add(c.base, c.offsets[k])
}

func (c *core) slot(k, i int) unsafe.Pointer {
	return unsafe.Add(c.base, c.offsets[k]+uintptr(i)*c.layouts[k].Size)
}

func (c *core) checkIndex(i int) {
	if boundsChecks && uint(i) >= uint(c.size) {
		panic(fmt.Sprintf("soa: index %d out of range [0:%d]", i, c.size))
	}
}

// growIfFull makes room for one more record.
func (c *core) growIfFull() {
	if c.size+1 > c.capacity {
		c.reallocate(max(c.size+c.size/2+1, c.size+1))
	}
}

// RemoveLast destroys the last record. It panics on an empty store.
// Capacity is unchanged.
func (c *core) RemoveLast() {
	if c.size == 0 {
		panic("soa: RemoveLast on empty store")
	}
	last := c.size - 1
	for k, col := range c.cols {
		col.destroyOne(c.slot(k, last))
	}
	c.size = last
}

// Clear destroys every record. Capacity and the block are kept.
func (c *core) Clear() {
	if c.size > 0 {
		for k, col := range c.cols {
			col.destroy(c.arrayBase(k), c.size)
		}
	}
	c.size = 0
}

// Reserve grows the block to hold exactly n records if it holds fewer.
func (c *core) Reserve(n int) { c.reserve(n) }

func (c *core) reserve(n int) {
	if n > c.capacity {
		c.reallocate(n)
	}
}

// ShrinkToFit reallocates the block down to Len records. A store shrunk
// while empty owns no block.
func (c *core) ShrinkToFit() {
	if c.capacity > c.size {
		c.reallocate(c.size)
	}
}

// reallocate moves every live record into a new block of exactly n records.
// The new block is obtained before anything else is touched, so a failed
// allocation leaves the store intact.
func (c *core) reallocate(n int) {
	if n < c.size {
		panic(fmt.Sprintf("soa: reallocate to %d below size %d", n, c.size))
	}
	if n == 0 {
		c.freeBlock()
		return
	}

	plan := planLayout(c.alloc.blockCapacity(n), c.layouts, c.cfg.minAlign())
	blk, err := c.alloc.allocate(plan)
	if err != nil {
		aerr := &AllocError{Capacity: n, Bytes: plan.TotalBytes, Backend: c.alloc.backend(), Err: err}
		c.cfg.logger.Error("soa: allocation failed",
			"capacity", n,
			"bytes", plan.TotalBytes,
			"backend", c.alloc.backend().String(),
			"error", err,
		)
		panic(aerr)
	}

	if c.size > 0 {
		for k, col := range c.cols {
			col.relocate(c.arrayBase(k), c.size, unsafe.Add(blk.base, plan.Offsets[k]))
		}
	}

	old, oldCap := c.blk, c.capacity
	c.base = blk.base
	c.blk = blk
	c.offsets = plan.Offsets
	c.total = plan.TotalBytes
	c.capacity = n
	c.blockCap = plan.Capacity
	c.reallocs++
	if old != nil {
		c.freeOld(old)
	}

	c.cfg.logger.Debug("soa: reallocated",
		"old_capacity", oldCap,
		"capacity", n,
		"size", c.size,
		"bytes", plan.TotalBytes,
		"backend", c.alloc.backend().String(),
	)
}

func (c *core) freeOld(b *block) {
	if err := b.free(); err != nil {
		c.cfg.logger.Error("soa: free block failed", "backend", c.alloc.backend().String(), "error", err)
	}
}

// freeBlock drops the block of an empty core.
func (c *core) freeBlock() {
	if c.blk != nil {
		c.freeOld(c.blk)
	}
	c.base = nil
	c.blk = nil
	c.offsets = nil
	c.total = 0
	c.capacity = 0
	c.blockCap = 0
}

// Release destroys every record and frees the block. The store is left
// empty with no allocation and may be reused. Views and pointers obtained
// earlier must not be used afterwards.
func (c *core) Release() {
	hadBlock := c.blk != nil
	c.Clear()
	c.freeBlock()
	if hadBlock {
		c.cfg.logger.Debug("soa: released", "backend", c.alloc.backend().String())
	}
}

// copyFrom replaces c's records with copies of src's. Copying a core onto
// itself does nothing.
func (c *core) copyFrom(src *core) {
	if c == src {
		return
	}
	c.Clear()
	c.reserve(src.size)
	if src.size > 0 {
		for k, col := range c.cols {
			col.copyTo(src.arrayBase(k), src.size, c.arrayBase(k))
		}
	}
	c.size = src.size
}

// moveFrom releases c, adopts src's block and metadata, and leaves src empty.
// Moving a core onto itself does nothing.
func (c *core) moveFrom(src *core) {
	if c == src {
		return
	}
	c.Release()
	c.cols, c.layouts, c.cfg, c.alloc = src.cols, src.layouts, src.cfg, src.alloc
	c.base, c.blk, c.offsets, c.total = src.base, src.blk, src.offsets, src.total
	c.size, c.capacity, c.blockCap, c.reallocs = src.size, src.capacity, src.blockCap, src.reallocs
	*src = src.twin()
}

// Plan returns the layout of the current block. A store without a block
// returns the zero Plan. Heap blocks of pointer-bearing types are laid out
// for a size class, so Plan().Capacity may exceed Cap.
func (c *core) Plan() Plan {
	if c.capacity == 0 {
		return Plan{}
	}
	return Plan{
		Capacity:   c.blockCap,
		Offsets:    append([]uintptr(nil), c.offsets...),
		TotalBytes: c.total,
		Align:      planLayout(0, c.layouts, c.cfg.minAlign()).Align,
	}
}

// Backend reports where the store's blocks are allocated.
func (c *core) Backend() Backend { return c.alloc.backend() }
