// Package soa implements resizable struct-of-arrays stores backed by a single
// memory allocation.
//
// # Overview
//
// A store of N element types keeps N parallel arrays, one per type, inside one
// block of memory instead of N separate slices. Record i is element i of every
// array. This keeps each field contiguous for loops that touch one field of
// many records, and costs one allocation per growth step regardless of N.
//
// Go has no variadic type parameters, so the stores come in fixed arities,
// Store1 through Store5, generated from one template.
//
// # Basic Usage
//
//	s := soa.New3[int16, string, float64](0)
//	defer s.Release()
//
//	s.Append(0, "zero", 1.23)
//	s.Append(1, "one", 2.34)
//
//	ids := s.Array0()
//	fmt.Println(*ids.At(1))        // 1
//	fmt.Println(s.Array1().View()) // [zero one]
//
//	s.RemoveLast()
//	s.Reserve(1024)
//	s.ShrinkToFit()
//
// # Memory Layout
//
// The block holds Cap elements of every array, in declaration order. Array 0
// starts at an offset equal to its own alignment; every later array starts at
// the end of the previous one rounded up to its alignment. PlanLayout exposes
// the computation. The block is allocated aligned to the largest array
// alignment, so every array start is aligned for its type.
//
// Growth replaces the block: when an Append finds the store full, capacity
// becomes Len + Len/2 + 1, a new block is allocated, live records are moved
// into it and the old block is released. Reserve and ShrinkToFit go through
// the same path.
//
// # Backends
//
//   - Heap (default with pointer-bearing types): a typed Go heap object, so
//     strings, slices and pointers stored in the arrays are traced by the GC.
//   - Bytes (default with pointer-free types): an aligned byte slice.
//   - Off-heap (WithOffHeap): an anonymous memory mapping, pointer-free types
//     only, released by Release.
//
// # Validity
//
// Pointers from Array.At, Front, Back and Data, and slices from Array.View,
// alias the block. They are invalidated by any call that reallocates or
// changes the length. Array handles themselves stay valid.
//
// # Thread Safety
//
// Stores are not goroutine-safe. Serialize all access to one store.
//
// # Errors
//
// Misuse (index out of range, RemoveLast on an empty store) panics, like a
// slice index. A failed allocation panics with *AllocError and leaves the
// store untouched.
package soa

//go:generate go run ./internal/storegen -max 5 -o stores_gen.go
