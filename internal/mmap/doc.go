// Package mmap provides anonymous memory mappings used as off-heap blocks.
//
// # Overview
//
// A Mapping is a read-write region obtained directly from the operating
// system. The Go garbage collector neither scans nor moves it, so it may only
// hold pointer-free data. The soa store uses it for its off-heap backend.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes()
//	_ = m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON, madvise(2) for hints
//   - Windows: VirtualAlloc/VirtualFree (Advise is a no-op)
//   - Elsewhere: MapAnon returns ErrUnsupported
//
// Close is idempotent. Callers must not touch Bytes() after Close returns.
package mmap
