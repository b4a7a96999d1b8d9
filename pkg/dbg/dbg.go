// Package dbg provides compile-time-gated debug printing helpers for
// inspecting values, pairs and containers during development.
//
// The package-level functions write to os.Stdout and are active only when
// the binary is built with the dbgprint build tag; without it Enabled is a
// false constant and every call folds away to nothing, so call sites never
// change between debug and release builds. Printers with an explicit writer
// and flag are available through New for code (and tests) that needs both
// modes at runtime.
//
// No operation synchronizes access to the sink. Output from concurrent
// callers interleaves exactly as concurrent stdout writes do.
package dbg

import "fmt"

// Print writes the textual form of v to the default sink.
func Print(v any) {
	if !Enabled {
		return
	}
	std.Print(v)
}

// Println writes the textual form of v followed by a newline.
func Println(v any) {
	if !Enabled {
		return
	}
	std.Println(v)
}

// Pair writes a and b concatenated.
func Pair(a, b any) {
	if !Enabled {
		return
	}
	std.Pair(a, b)
}

// Pairln writes a and b concatenated, followed by a newline.
func Pairln(a, b any) {
	if !Enabled {
		return
	}
	std.Pairln(a, b)
}

// Split writes a and b joined by sep, defaulting to ": ".
func Split(a, b any, sep ...string) {
	if !Enabled {
		return
	}
	std.Split(a, b, sep...)
}

// Splitln writes a and b joined by sep, followed by a newline.
func Splitln(a, b any, sep ...string) {
	if !Enabled {
		return
	}
	std.Splitln(a, b, sep...)
}

// Eq writes "a = b".
func Eq(a, b any) {
	if !Enabled {
		return
	}
	std.Eq(a, b)
}

// Eqln writes "a = b" followed by a newline.
func Eqln(a, b any) {
	if !Enabled {
		return
	}
	std.Eqln(a, b)
}

// Vs writes "a vs b".
func Vs(a, b any) {
	if !Enabled {
		return
	}
	std.Vs(a, b)
}

// Vsln writes "a vs b" followed by a newline.
func Vsln(a, b any) {
	if !Enabled {
		return
	}
	std.Vsln(a, b)
}

// Element writes e preceded by ", " unless first.
func Element(e any, first bool) {
	if !Enabled {
		return
	}
	std.Element(e, first)
}

// Var writes "name: v".
func Var(name string, v any) {
	if !Enabled {
		return
	}
	std.Var(name, v)
}

// Varln writes "name: v" followed by a newline.
func Varln(name string, v any) {
	if !Enabled {
		return
	}
	std.Varln(name, v)
}

// EqStringer writes "a = " followed by the rendered form of s and a newline.
func EqStringer(a any, s fmt.Stringer) {
	if !Enabled {
		return
	}
	std.EqStringer(a, s)
}

// Stringer writes the rendered form of s followed by a newline, preceded by
// "prefix: " when a non-empty prefix is given.
func Stringer(s fmt.Stringer, prefix ...string) {
	if !Enabled {
		return
	}
	std.Stringer(s, prefix...)
}

// FuncName writes the bare name of the calling function followed by a
// newline.
func FuncName() {
	if !Enabled {
		return
	}
	fmt.Fprintf(std.w, "%s\n", callerName(2))
}

// FuncBanner writes a separator line containing the calling function's name.
func FuncBanner() {
	if !Enabled {
		return
	}
	fmt.Fprintf(std.w, "===== %s ======\n", callerName(2))
}
