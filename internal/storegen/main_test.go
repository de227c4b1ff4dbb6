package main

import (
	"bytes"
	"go/format"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreHelpers(t *testing.T) {
	s := store{N: 3, Idx: []int{0, 1, 2}}

	assert.Equal(t, "Store3", s.Name())
	assert.Equal(t, "T0, T1, T2 any", s.TypeParams())
	assert.Equal(t, "T0, T1, T2", s.TypeArgs())
	assert.Equal(t, "v0 T0, v1 T1, v2 T2", s.Params())
	assert.Equal(t, "columnOf[T0]{}, columnOf[T1]{}, columnOf[T2]{}", s.Columns())
	assert.Equal(t, "*(*T0)(s.slot(0, i)), *(*T1)(s.slot(1, i)), *(*T2)(s.slot(2, i))", s.Loads())
}

func TestTemplate(t *testing.T) {
	stores := []store{
		{N: 1, Idx: []int{0}},
		{N: 2, Idx: []int{0, 1}},
		{N: 3, Idx: []int{0, 1, 2}},
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, stores))

	src, err := format.Source(buf.Bytes())
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "stores_gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "soa", f.Name.Name)

	out := string(src)
	assert.Contains(t, out, "// Code generated by storegen. DO NOT EDIT.")
	assert.Contains(t, out, "func New3[T0, T1, T2 any](size int, opts ...Option) *Store3[T0, T1, T2] {")
	assert.Contains(t, out, "func (s *Store1[T0]) Get(i int) T0 {")
	assert.Contains(t, out, "func (s *Store2[T0, T1]) Get(i int) (T0, T1) {")
	assert.Contains(t, out, "func (s *Store3[T0, T1, T2]) Array2() Array[T2] {")
	assert.Contains(t, out, "\tconstructOne(s.slot(2, i), v2)\n\ts.size++")
	assert.NotContains(t, out, "Store4")
}
