// Command storegen writes the fixed-arity store types of package soa.
//
// Go has no variadic type parameters, so each StoreN is rendered from one
// template with its per-array operations unrolled.
//
//	go run ./internal/storegen -max 5 -o stores_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

type store struct {
	N   int
	Idx []int
}

func (s store) Name() string { return fmt.Sprintf("Store%d", s.N) }

// TypeParams renders "T0, T1 any".
func (s store) TypeParams() string { return s.join("T%[1]d", ", ") + " any" }

// TypeArgs renders "T0, T1".
func (s store) TypeArgs() string { return s.join("T%[1]d", ", ") }

// Params renders "v0 T0, v1 T1".
func (s store) Params() string { return s.join("v%[1]d T%[1]d", ", ") }

// Columns renders "columnOf[T0]{}, columnOf[T1]{}".
func (s store) Columns() string { return s.join("columnOf[T%[1]d]{}", ", ") }

// Loads renders "*(*T0)(s.slot(0, i)), *(*T1)(s.slot(1, i))".
func (s store) Loads() string { return s.join("*(*T%[1]d)(s.slot(%[1]d, i))", ", ") }

func (s store) join(format, sep string) string {
	parts := make([]string, len(s.Idx))
	for i, k := range s.Idx {
		parts[i] = fmt.Sprintf(format, k)
	}
	return strings.Join(parts, sep)
}

var tmpl = template.Must(template.New("stores").Parse(`// Code generated by storegen. DO NOT EDIT.

package soa
{{range .}}
// {{.Name}} is a struct-of-arrays store of {{.N}} parallel arrays sharing one
// allocation. Record i is element i of every array. Create one with New{{.N}};
// a {{.Name}} must not be copied by value, use Clone or Take instead.
type {{.Name}}[{{.TypeParams}}] struct {
	core
}

// New{{.N}} returns a {{.Name}} holding size zero-valued records.
func New{{.N}}[{{.TypeParams}}](size int, opts ...Option) *{{.Name}}[{{.TypeArgs}}] {
	s := &{{.Name}}[{{.TypeArgs}}]{core: newCore([]column{ {{- .Columns -}} }, opts)}
	s.construct(size)
	return s
}
{{$s := .}}{{range .Idx}}
// Array{{.}} returns a handle onto the T{{.}} array.
func (s *{{$s.Name}}[{{$s.TypeArgs}}]) Array{{.}}() Array[T{{.}}] {
	return Array[T{{.}}]{c: &s.core, k: {{.}}}
}
{{end}}
// Append adds a record at index Len, growing the block first when it is full.
func (s *{{.Name}}[{{.TypeArgs}}]) Append({{.Params}}) {
	s.growIfFull()
	i := s.size
{{- range .Idx}}
	constructOne(s.slot({{.}}, i), v{{.}})
{{- end}}
	s.size++
}

// Get returns record i by value.
func (s *{{.Name}}[{{.TypeArgs}}]) Get(i int) {{if eq .N 1}}T0{{else}}({{.TypeArgs}}){{end}} {
	s.checkIndex(i)
	return {{.Loads}}
}

// Set overwrites record i.
func (s *{{.Name}}[{{.TypeArgs}}]) Set(i int, {{.Params}}) {
	s.checkIndex(i)
{{- range .Idx}}
	*(*T{{.}})(s.slot({{.}}, i)) = v{{.}}
{{- end}}
}

// Clone returns a copy of s whose block is sized to s.Len().
func (s *{{.Name}}[{{.TypeArgs}}]) Clone() *{{.Name}}[{{.TypeArgs}}] {
	d := &{{.Name}}[{{.TypeArgs}}]{core: s.twin()}
	d.copyFrom(&s.core)
	return d
}

// CopyFrom replaces the records of s with copies of src's and returns s.
func (s *{{.Name}}[{{.TypeArgs}}]) CopyFrom(src *{{.Name}}[{{.TypeArgs}}]) *{{.Name}}[{{.TypeArgs}}] {
	s.copyFrom(&src.core)
	return s
}

// MoveFrom releases s, takes over src's block and records, leaves src empty
// with no block, and returns s.
func (s *{{.Name}}[{{.TypeArgs}}]) MoveFrom(src *{{.Name}}[{{.TypeArgs}}]) *{{.Name}}[{{.TypeArgs}}] {
	s.moveFrom(&src.core)
	return s
}

// Take moves the block and records of s into a new store and leaves s empty
// with no block.
func (s *{{.Name}}[{{.TypeArgs}}]) Take() *{{.Name}}[{{.TypeArgs}}] {
	d := &{{.Name}}[{{.TypeArgs}}]{core: s.twin()}
	d.moveFrom(&s.core)
	return d
}
{{end}}`))

func main() {
	maxN := flag.Int("max", 5, "largest arity to generate")
	out := flag.String("o", "stores_gen.go", "output file")
	flag.Parse()

	if *maxN < 1 {
		log.Fatalf("storegen: -max must be at least 1, got %d", *maxN)
	}

	stores := make([]store, 0, *maxN)
	for n := 1; n <= *maxN; n++ {
		s := store{N: n, Idx: make([]int, n)}
		for k := range s.Idx {
			s.Idx[k] = k
		}
		stores = append(stores, s)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, stores); err != nil {
		log.Fatalf("storegen: execute template: %v", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("storegen: format output: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("storegen: %v", err)
	}
}
