package soa

import "unsafe"

// Array is a typed handle onto one array of a store. It stays bound to the
// store, not to a block, so it remains usable across reallocations; the
// pointers and views it hands out do not.
type Array[T any] struct {
	c *core
	k int
}

// Len returns the number of live elements, the same for every array of the store.
func (a Array[T]) Len() int { return a.c.size }

// Index returns the position of the array in the store's declaration order.
func (a Array[T]) Index() int { return a.k }

// Data returns a pointer to the first slot of the array, or nil when the store
// owns no block. Slots at or beyond Len hold zero values that are not part of
// the store.
func (a Array[T]) Data() *T {
	if a.c.base == nil {
		return nil
	}
	return (*T)(a.c.arrayBase(a.k))
}

// At returns a pointer to element i. It panics if i is out of range unless
// built with the soa_unchecked tag.
func (a Array[T]) At(i int) *T {
	a.c.checkIndex(i)
	return (*T)(a.c.slot(a.k, i))
}

// Front returns a pointer to the first element. It panics on an empty store.
func (a Array[T]) Front() *T {
	if a.c.size == 0 {
		panic("soa: Front on empty store")
	}
	return (*T)(a.c.arrayBase(a.k))
}

// Back returns a pointer to the last element. It panics on an empty store.
func (a Array[T]) Back() *T {
	if a.c.size == 0 {
		panic("soa: Back on empty store")
	}
	return (*T)(a.c.slot(a.k, a.c.size-1))
}

// View returns the live elements as a slice with len and cap equal to Len.
// The slice aliases the store's block: it is invalidated by any call that
// reallocates or changes the length (Append past Cap, RemoveLast, Clear,
// Reserve, ShrinkToFit, CopyFrom, MoveFrom, Release). Dropping the store
// without Release does not invalidate it.
func (a Array[T]) View() []T {
	if a.c.size == 0 {
		return nil
	}
	return unsafe.Slice((*T)(a.c.arrayBase(a.k)), a.c.size)
}
