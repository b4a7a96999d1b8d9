package harness

import (
	"bytes"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/715d/dbgprint/pkg/dbg"
)

// Run executes a script against an enabled printer and compares the captured
// output against the script's expectation, then replays the same steps
// against a disabled printer and asserts it stayed silent.
func Run(t *testing.T, script Script) {
	t.Helper()
	require.NotEmpty(t, script.Steps, "script %q has no steps", script.Name)

	var out bytes.Buffer
	enabled := dbg.New(&out, true)
	for i, step := range script.Steps {
		require.NoError(t, apply(enabled, step), "script %q step %d", script.Name, i)
	}
	require.Equal(t, script.Want, out.String(), "script %q output", script.Name)

	var silent bytes.Buffer
	disabled := dbg.New(&silent, false)
	for i, step := range script.Steps {
		require.NoError(t, apply(disabled, step), "script %q step %d (disabled)", script.Name, i)
	}
	require.Empty(t, silent.String(), "script %q wrote output while disabled", script.Name)
}

// literal is a fixed rendering used to drive the Stringer-based operations
// from plain YAML values.
type literal string

func (l literal) String() string { return string(l) }

// apply dispatches a step to the corresponding dbg operation.
func apply(p *dbg.Printer, s Step) error {
	if err := checkArity(s); err != nil {
		return err
	}

	switch s.Op {
	case "print":
		p.Print(s.Args[0])
	case "println":
		p.Println(s.Args[0])
	case "pair":
		p.Pair(s.Args[0], s.Args[1])
	case "pairln":
		p.Pairln(s.Args[0], s.Args[1])
	case "split":
		if s.Sep != "" {
			p.Split(s.Args[0], s.Args[1], s.Sep)
		} else {
			p.Split(s.Args[0], s.Args[1])
		}
	case "splitln":
		if s.Sep != "" {
			p.Splitln(s.Args[0], s.Args[1], s.Sep)
		} else {
			p.Splitln(s.Args[0], s.Args[1])
		}
	case "eq":
		p.Eq(s.Args[0], s.Args[1])
	case "eqln":
		p.Eqln(s.Args[0], s.Args[1])
	case "vs":
		p.Vs(s.Args[0], s.Args[1])
	case "vsln":
		p.Vsln(s.Args[0], s.Args[1])
	case "element":
		p.Element(s.Args[0], s.First)
	case "var":
		p.Var(s.Name, s.Args[0])
	case "varln":
		p.Varln(s.Name, s.Args[0])
	case "eqstringer":
		p.EqStringer(s.Args[0], literal(fmt.Sprint(s.Args[1])))
	case "stringer":
		if s.Name != "" {
			p.Stringer(literal(fmt.Sprint(s.Args[0])), s.Name)
		} else {
			p.Stringer(literal(fmt.Sprint(s.Args[0])))
		}
	case "range":
		dbg.Range(p, slices.Values(s.Args))
	case "container":
		dbg.Container(p, s.Args, s.Name)
	case "rangestringer":
		dbg.RangeStringer(p, slices.Values(literals(s.Args)))
	case "containerstringer":
		dbg.ContainerStringer(p, literals(s.Args), s.Name)
	case "vecstringer":
		dbg.VecStringer(p, literals(s.Args), s.Name)
	case "mapping":
		dbg.Mapping(p, s.Args, s.Name)
	case "slice":
		dbg.Slice(p, s.Args, s.From, s.To)
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}

// checkArity validates the argument count for operations with fixed arity.
func checkArity(s Step) error {
	var want int
	switch s.Op {
	case "print", "println", "element", "var", "varln", "stringer":
		want = 1
	case "pair", "pairln", "split", "splitln", "eq", "eqln", "vs", "vsln", "eqstringer":
		want = 2
	default:
		return nil
	}
	if len(s.Args) != want {
		return fmt.Errorf("op %q wants %d args, got %d", s.Op, want, len(s.Args))
	}
	return nil
}

// literals converts script arguments into fixed renderings.
func literals(args []any) []literal {
	out := make([]literal, len(args))
	for i, a := range args {
		out[i] = literal(fmt.Sprint(a))
	}
	return out
}
