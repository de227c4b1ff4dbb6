package soa

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panicValue runs f and returns what it panicked with, or nil.
func panicValue(f func()) (v any) {
	defer func() { v = recover() }()
	f()
	return nil
}

func TestLayoutOf(t *testing.T) {
	tests := []struct {
		name string
		got  Layout
		want Layout
	}{
		{"int8", LayoutOf[int8](), Layout{Size: 1, Align: 1}},
		{"int16", LayoutOf[int16](), Layout{Size: 2, Align: 2}},
		{"int32", LayoutOf[int32](), Layout{Size: 4, Align: 4}},
		{"float32 array", LayoutOf[[3]float32](), Layout{Size: 12, Align: 4}},
		{"empty struct", LayoutOf[struct{}](), Layout{Size: 0, Align: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestPlanLayout(t *testing.T) {
	i8 := Layout{Size: 1, Align: 1}
	i16 := Layout{Size: 2, Align: 2}
	i32 := Layout{Size: 4, Align: 4}
	i64 := Layout{Size: 8, Align: 8}

	tests := []struct {
		name     string
		capacity int
		layouts  []Layout
		offsets  []uintptr
		total    uintptr
		align    uintptr
	}{
		{"single", 4, []Layout{i32}, []uintptr{4}, 20, 4},
		{"array 0 at its alignment", 3, []Layout{i8, i64, i32}, []uintptr{1, 8, 32}, 44, 8},
		{"already aligned", 3, []Layout{i64, i16, i8}, []uintptr{8, 32, 38}, 41, 8},
		{"padding between arrays", 5, []Layout{i16, i32, i64}, []uintptr{2, 12, 32}, 72, 8},
		{"zero capacity", 0, []Layout{i8, i64, i32}, []uintptr{1, 8, 8}, 8, 8},
		{"zero size element", 2, []Layout{{Size: 0, Align: 1}, i16}, []uintptr{1, 2}, 6, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PlanLayout(tt.capacity, tt.layouts...)
			assert.Equal(t, tt.capacity, p.Capacity)
			assert.Equal(t, tt.offsets, p.Offsets)
			assert.Equal(t, tt.total, p.TotalBytes)
			assert.Equal(t, tt.align, p.Align)
		})
	}
}

func TestPlanLayout_Invariants(t *testing.T) {
	layouts := []Layout{
		{Size: 1, Align: 1},
		{Size: 8, Align: 8},
		{Size: 2, Align: 2},
		{Size: 12, Align: 4},
		{Size: 0, Align: 1},
		{Size: 16, Align: 8},
		{Size: 3, Align: 1},
	}

	for capacity := 0; capacity <= 33; capacity++ {
		for n := 1; n <= len(layouts); n++ {
			ls := layouts[:n]
			p := PlanLayout(capacity, ls...)
			for k, l := range ls {
				require.Zero(t, p.Offsets[k]%l.Align, "cap=%d n=%d array %d misaligned", capacity, n, k)
				require.Zero(t, p.Align%l.Align, "block alignment %d does not cover array %d", p.Align, k)
				if k > 0 {
					require.GreaterOrEqual(t, p.Offsets[k], p.End(k-1, ls[k-1]), "cap=%d arrays %d and %d overlap", capacity, k-1, k)
				}
			}
			require.Equal(t, p.End(n-1, ls[n-1]), p.TotalBytes)
			require.Equal(t, ls[0].Align, p.Offsets[0])
		}
	}
}

func TestPlanLayout_MinAlign(t *testing.T) {
	p := planLayout(5, []Layout{{Size: 1, Align: 1}, {Size: 4, Align: 4}, {Size: 8, Align: 8}}, 64)

	assert.Equal(t, uintptr(64), p.Align)
	assert.Equal(t, []uintptr{64, 128, 192}, p.Offsets)
	assert.Equal(t, uintptr(192+40), p.TotalBytes)
}

func TestPlanLayout_Panics(t *testing.T) {
	t.Run("negative capacity", func(t *testing.T) {
		assert.PanicsWithValue(t, "soa: negative capacity -1", func() {
			PlanLayout(-1, Layout{Size: 1, Align: 1})
		})
	})

	t.Run("no layouts", func(t *testing.T) {
		assert.Panics(t, func() { PlanLayout(1) })
	})

	t.Run("alignment not a power of two", func(t *testing.T) {
		assert.Panics(t, func() { PlanLayout(1, Layout{Size: 3, Align: 3}) })
	})

	t.Run("overflow", func(t *testing.T) {
		v := panicValue(func() { PlanLayout(math.MaxInt, Layout{Size: 16, Align: 8}) })
		err, ok := v.(error)
		require.True(t, ok, "panic value %v is not an error", v)
		assert.True(t, errors.Is(err, ErrLayoutOverflow))
	})

	t.Run("overflow from padding", func(t *testing.T) {
		v := panicValue(func() {
			PlanLayout(math.MaxInt/2, Layout{Size: 4, Align: 1}, Layout{Size: 1, Align: 4})
		})
		err, ok := v.(error)
		require.True(t, ok, "panic value %v is not an error", v)
		assert.ErrorIs(t, err, ErrLayoutOverflow)
	})
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		off, align, want uintptr
	}{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 4, 12},
		{63, 64, 64},
		{5, 1, 5},
	}
	for _, tt := range tests {
		if got := alignUp(tt.off, tt.align); got != tt.want {
			t.Errorf("alignUp(%d, %d) = %d, want %d", tt.off, tt.align, got, tt.want)
		}
	}
}
