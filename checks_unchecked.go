//go:build soa_unchecked

package soa

const boundsChecks = false
