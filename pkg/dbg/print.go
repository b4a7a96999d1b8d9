package dbg

import "fmt"

// DefaultSeparator is used by Split and Splitln when no separator is given.
const DefaultSeparator = ": "

// Print writes the textual form of v, with no trailing newline.
func (p *Printer) Print(v any) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%v", v)
}

// Println writes the textual form of v followed by a newline.
func (p *Printer) Println(v any) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%v\n", v)
}

// Pair writes a and b concatenated.
func (p *Printer) Pair(a, b any) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%v%v", a, b)
}

// Pairln writes a and b concatenated, followed by a newline.
func (p *Printer) Pairln(a, b any) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%v%v\n", a, b)
}

// Split writes a and b joined by sep. The separator defaults to ": " when
// none is given; only the first separator argument is used.
func (p *Printer) Split(a, b any, sep ...string) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%v%s%v", a, separator(sep), b)
}

// Splitln writes a and b joined by sep, followed by a newline.
func (p *Printer) Splitln(a, b any, sep ...string) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%v%s%v\n", a, separator(sep), b)
}

// Eq writes "a = b".
func (p *Printer) Eq(a, b any) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%v = %v", a, b)
}

// Eqln writes "a = b" followed by a newline.
func (p *Printer) Eqln(a, b any) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%v = %v\n", a, b)
}

// Vs writes "a vs b".
func (p *Printer) Vs(a, b any) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%v vs %v", a, b)
}

// Vsln writes "a vs b" followed by a newline.
func (p *Printer) Vsln(a, b any) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%v vs %v\n", a, b)
}

// Element writes e preceded by ", " unless it is the first element of an
// enclosing listing.
func (p *Printer) Element(e any, first bool) {
	if !p.enabled {
		return
	}
	if first {
		fmt.Fprintf(p.w, "%v", e)
		return
	}
	fmt.Fprintf(p.w, ", %v", e)
}

// Var writes a value labelled with its call-site name: "name: v". Go has no
// expression-text capture, so the label is passed explicitly.
func (p *Printer) Var(name string, v any) {
	p.Split(name, v)
}

// Varln writes a labelled value followed by a newline.
func (p *Printer) Varln(name string, v any) {
	p.Splitln(name, v)
}

func separator(sep []string) string {
	if len(sep) > 0 {
		return sep[0]
	}
	return DefaultSeparator
}
