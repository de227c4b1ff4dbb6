package soa

import (
	"reflect"
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

type tags []string

func (t tags) Clone() tags { return slices.Clone(t) }

type point struct {
	X, Y float32
}

func TestDefaultConstructRange(t *testing.T) {
	buf := []point{{1, 2}, {3, 4}, {5, 6}}
	defaultConstructRange[point](unsafe.Pointer(&buf[0]), 2)

	assert.Equal(t, []point{{}, {}, {5, 6}}, buf)
}

func TestConstructAndDestroyOne(t *testing.T) {
	buf := make([]string, 2)
	constructOne(unsafe.Pointer(&buf[1]), "hello")
	assert.Equal(t, []string{"", "hello"}, buf)

	destroyOne[string](unsafe.Pointer(&buf[1]))
	assert.Equal(t, []string{"", ""}, buf)
}

func TestDestroyRange(t *testing.T) {
	buf := []*point{{1, 1}, {2, 2}, {3, 3}}
	destroyRange[*point](unsafe.Pointer(&buf[1]), 2)

	assert.NotNil(t, buf[0])
	assert.Nil(t, buf[1])
	assert.Nil(t, buf[2])
}

func TestCopyRange(t *testing.T) {
	t.Run("plain values", func(t *testing.T) {
		src := []string{"a", "b", "c"}
		dst := make([]string, 3)
		copyRange[string](unsafe.Pointer(&src[0]), 3, unsafe.Pointer(&dst[0]))

		assert.Equal(t, src, dst)
	})

	t.Run("cloner", func(t *testing.T) {
		src := []tags{{"x", "y"}, nil, {"z"}}
		dst := make([]tags, 3)
		copyRange[tags](unsafe.Pointer(&src[0]), 3, unsafe.Pointer(&dst[0]))

		assert.Equal(t, src, dst)
		dst[0][0] = "changed"
		assert.Equal(t, "x", src[0][0], "clone shares backing array with source")
	})
}

func TestRelocateRange(t *testing.T) {
	src := []string{"a", "b", "c"}
	dst := make([]string, 4)
	relocateRange[string](unsafe.Pointer(&src[0]), 3, unsafe.Pointer(&dst[1]))

	assert.Equal(t, []string{"", "a", "b", "c"}, dst)
	assert.Equal(t, []string{"", "", ""}, src, "vacated slots must be destroyed")
}

func TestColumnOf(t *testing.T) {
	var col column = columnOf[int32]{}

	assert.Equal(t, Layout{Size: 4, Align: 4}, col.layout())
	assert.Equal(t, reflect.TypeFor[int32](), col.typ())
}

func TestHasPointers(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		want bool
	}{
		{reflect.TypeFor[int](), false},
		{reflect.TypeFor[float64](), false},
		{reflect.TypeFor[point](), false},
		{reflect.TypeFor[[4]uint8](), false},
		{reflect.TypeFor[struct{}](), false},
		{reflect.TypeFor[string](), true},
		{reflect.TypeFor[[]int](), true},
		{reflect.TypeFor[*int](), true},
		{reflect.TypeFor[map[int]int](), true},
		{reflect.TypeFor[any](), true},
		{reflect.TypeFor[func()](), true},
		{reflect.TypeFor[chan int](), true},
		{reflect.TypeFor[unsafe.Pointer](), true},
		{reflect.TypeFor[[0]*int](), false},
		{reflect.TypeFor[[2]string](), true},
		{reflect.TypeFor[struct {
			A int
			B []byte
		}](), true},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, hasPointers(tt.typ))
		})
	}
}
