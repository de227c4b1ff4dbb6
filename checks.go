//go:build !soa_unchecked

package soa

// boundsChecks enables index checks on element access.
// Build with -tags soa_unchecked to compile them out.
const boundsChecks = true
