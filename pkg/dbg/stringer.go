package dbg

import "fmt"

// EqStringer writes "a = " followed by the rendered form of s and a newline.
func (p *Printer) EqStringer(a any, s fmt.Stringer) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%v = %s\n", a, s.String())
}

// Stringer writes the rendered form of s followed by a newline, preceded by
// "prefix: " when a non-empty prefix is given.
func (p *Printer) Stringer(s fmt.Stringer, prefix ...string) {
	if !p.enabled {
		return
	}
	if len(prefix) > 0 && prefix[0] != "" {
		fmt.Fprintf(p.w, "%s: ", prefix[0])
	}
	fmt.Fprintf(p.w, "%s\n", s.String())
}
