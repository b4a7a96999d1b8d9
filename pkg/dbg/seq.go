package dbg

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// The sequence and container helpers are free functions rather than methods
// because Go methods cannot carry type parameters.

// Range writes every element of seq as "{ e1 e2 ... }" followed by a newline.
// An empty sequence writes "{ }".
func Range[T any](p *Printer, seq iter.Seq[T]) {
	if !p.enabled {
		return
	}
	io.WriteString(p.w, "{ ")
	for e := range seq {
		fmt.Fprintf(p.w, "%v ", e)
	}
	io.WriteString(p.w, "}\n")
}

// Container writes an optional label, the element count and the contents of
// c: "name size = N { e1 ... eN }". An empty name is omitted entirely.
func Container[T any](p *Printer, c []T, name string) {
	if !p.enabled {
		return
	}
	if name != "" {
		fmt.Fprintf(p.w, "%s ", name)
	}
	fmt.Fprintf(p.w, "size = %d ", len(c))
	Range(p, slices.Values(c))
}

// RangeStringer writes the rendered form of every element of seq as
// "{ s1 s2 ... }" with no trailing newline. An empty sequence writes "{}".
func RangeStringer[T fmt.Stringer](p *Printer, seq iter.Seq[T]) {
	if !p.enabled {
		return
	}
	n := 0
	for s := range seq {
		if n == 0 {
			io.WriteString(p.w, "{ ")
		}
		fmt.Fprintf(p.w, "%s ", s.String())
		n++
	}
	if n == 0 {
		io.WriteString(p.w, "{}")
		return
	}
	io.WriteString(p.w, "}")
}

// ContainerStringer writes an optional label and the element count on one
// line, then the rendered contents of c.
func ContainerStringer[T fmt.Stringer](p *Printer, c []T, name string) {
	if !p.enabled {
		return
	}
	if name != "" {
		fmt.Fprintf(p.w, "%s ", name)
	}
	fmt.Fprintf(p.w, "size = %d\n", len(c))
	RangeStringer(p, slices.Values(c))
}

// VecStringer writes the rendered contents of c as "name = { s1 s2 }"
// followed by a newline. An empty name suppresses the "name = " label.
func VecStringer[T fmt.Stringer](p *Printer, c []T, name string) {
	if !p.enabled {
		return
	}
	if name != "" {
		fmt.Fprintf(p.w, "%s = ", name)
	}
	io.WriteString(p.w, "{")
	for _, s := range c {
		fmt.Fprintf(p.w, " %s", s.String())
	}
	io.WriteString(p.w, " }\n")
}

// Mapping writes each index of v on its own tab-indented line:
//
//	name
//	{
//		0 -> v0
//		1 -> v1
//	}
//
// An empty name suppresses the label line.
func Mapping[T any](p *Printer, v []T, name string) {
	if !p.enabled {
		return
	}
	if name != "" {
		fmt.Fprintf(p.w, "%s\n", name)
	}
	io.WriteString(p.w, "{\n")
	for i, e := range v {
		fmt.Fprintf(p.w, "\t%d -> %v\n", i, e)
	}
	io.WriteString(p.w, "}\n")
}

// Slice writes the half-open index range v[from:to) comma-separated as
// "{v[from], ..., v[to-1]}" followed by a newline. No bounds checking is
// performed; an invalid range panics at the first out-of-range index.
func Slice[T any](p *Printer, v []T, from, to int) {
	if !p.enabled {
		return
	}
	io.WriteString(p.w, "{")
	for i := from; i != to; i++ {
		p.Element(v[i], i == from)
	}
	io.WriteString(p.w, "}\n")
}
