package soa

import (
	"reflect"
	"unsafe"
)

// Cloner is implemented by element types whose copies must not share state
// with the original, such as types holding slices or maps. Copying a store
// calls Clone for every live element of such a type; other types are copied
// by plain assignment. Clone must tolerate being called on zero values.
type Cloner[T any] interface {
	Clone() T
}

// elems views n consecutive T slots starting at p.
func elems[T any](p unsafe.Pointer, n int) []T {
	return unsafe.Slice((*T)(p), n)
}

// defaultConstructRange writes the zero value into n slots starting at p.
func defaultConstructRange[T any](p unsafe.Pointer, n int) {
	clear(elems[T](p, n))
}

// constructOne stores v into the slot at p.
func constructOne[T any](p unsafe.Pointer, v T) {
	*(*T)(p) = v
}

// destroyOne zeroes the slot at p so the collector can drop anything it referenced.
func destroyOne[T any](p unsafe.Pointer) {
	var zero T
	*(*T)(p) = zero
}

// destroyRange zeroes n slots starting at p.
func destroyRange[T any](p unsafe.Pointer, n int) {
	clear(elems[T](p, n))
}

// copyRange copies n elements from src to dst, preserving order.
func copyRange[T any](src unsafe.Pointer, n int, dst unsafe.Pointer) {
	from, to := elems[T](src, n), elems[T](dst, n)
	var zero T
	if _, ok := any(zero).(Cloner[T]); ok {
		for i := range from {
			to[i] = any(from[i]).(Cloner[T]).Clone()
		}
		return
	}
	copy(to, from)
}

// relocateRange moves n elements from src to dst and destroys the originals.
func relocateRange[T any](src unsafe.Pointer, n int, dst unsafe.Pointer) {
	from := elems[T](src, n)
	copy(elems[T](dst, n), from)
	clear(from)
}

// column is the per-array element lifecycle of one element type. Store-level
// operations call the same method on every column in declaration order.
type column interface {
	layout() Layout
	typ() reflect.Type
	defaultConstruct(p unsafe.Pointer, n int)
	destroyOne(p unsafe.Pointer)
	destroy(p unsafe.Pointer, n int)
	copyTo(src unsafe.Pointer, n int, dst unsafe.Pointer)
	relocate(src unsafe.Pointer, n int, dst unsafe.Pointer)
}

type columnOf[T any] struct{}

func (columnOf[T]) layout() Layout    { return LayoutOf[T]() }
func (columnOf[T]) typ() reflect.Type { return reflect.TypeFor[T]() }

func (columnOf[T]) defaultConstruct(p unsafe.Pointer, n int) { defaultConstructRange[T](p, n) }
func (columnOf[T]) destroyOne(p unsafe.Pointer)              { destroyOne[T](p) }
func (columnOf[T]) destroy(p unsafe.Pointer, n int)          { destroyRange[T](p, n) }

func (columnOf[T]) copyTo(src unsafe.Pointer, n int, dst unsafe.Pointer) {
	copyRange[T](src, n, dst)
}

func (columnOf[T]) relocate(src unsafe.Pointer, n int, dst unsafe.Pointer) {
	relocateRange[T](src, n, dst)
}

// hasPointers reports whether values of t contain anything the garbage
// collector must trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice,
		reflect.String, reflect.Interface, reflect.Chan, reflect.Func:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
