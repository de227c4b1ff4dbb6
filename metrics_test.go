package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreMetrics(t *testing.T) {
	s := New3[int64, int32, int8](0)
	defer s.Release()

	m := s.Metrics()
	assert.Equal(t, 0, m.Len)
	assert.Equal(t, 0, m.Cap)
	assert.Equal(t, 3, m.Arrays)
	assert.Zero(t, m.BytesReserved)
	assert.Zero(t, m.Utilization)
	assert.Equal(t, BackendBytes, m.Backend)

	for i := range 3 {
		s.Append(int64(i), int32(i), int8(i))
	}

	m = s.Metrics()
	assert.Equal(t, 3, m.Len)
	assert.Equal(t, 4, m.Cap)
	assert.Equal(t, uintptr(3*(8+4+1)), m.BytesUsed)
	// int64 at 8, int32 at 40, int8 at 56: 60 bytes for capacity 4.
	assert.Equal(t, uintptr(60), m.BytesReserved)
	assert.Equal(t, uint64(3), m.Reallocations)
	assert.InDelta(t, 0.75, m.Utilization, 1e-9)
}

func TestStoreMetrics_AfterRelease(t *testing.T) {
	s := New2[int, string](10)
	assert.InDelta(t, 1.0, s.Utilization(), 1e-9)

	s.Release()
	m := s.Metrics()
	assert.Equal(t, 0, m.Cap)
	assert.Zero(t, m.BytesReserved)
	assert.Zero(t, m.BytesUsed)
	assert.Zero(t, m.Utilization)
}
