package dbg

import (
	"bytes"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	Range(p, slices.Values([]int{1, 2, 3}))
	require.Equal(t, "{ 1 2 3 }\n", buf.String())

	buf.Reset()
	Range(p, slices.Values([]int(nil)))
	require.Equal(t, "{ }\n", buf.String())
}

func TestContainer(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	Container(p, []string(nil), "X")
	require.Equal(t, "X size = 0 { }\n", buf.String())

	buf.Reset()
	Container(p, []int{4, 5, 6}, "")
	require.Equal(t, "size = 3 { 4 5 6 }\n", buf.String())
}

func TestMapping(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	Mapping(p, []int{10, 20}, "")
	require.Equal(t, "{\n\t0 -> 10\n\t1 -> 20\n}\n", buf.String())

	buf.Reset()
	Mapping(p, []string{"a"}, "ids")
	require.Equal(t, "ids\n{\n\t0 -> a\n}\n", buf.String())

	buf.Reset()
	Mapping(p, []int{}, "")
	require.Equal(t, "{\n}\n", buf.String())
}

func TestSlice(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	Slice(p, []int{5, 6, 7, 8}, 1, 3)
	require.Equal(t, "{6, 7}\n", buf.String())

	buf.Reset()
	Slice(p, []int{5, 6, 7, 8}, 0, 4)
	require.Equal(t, "{5, 6, 7, 8}\n", buf.String())

	buf.Reset()
	Slice(p, []int{5, 6, 7, 8}, 2, 2)
	require.Equal(t, "{}\n", buf.String())
}

func TestSliceInvalidRangePanics(t *testing.T) {
	p := New(&bytes.Buffer{}, true)
	require.Panics(t, func() {
		Slice(p, []int{1, 2}, 0, 5)
	})
}

// point is a minimal value exposing a rendering method.
type point struct{ x, y int }

func (pt point) String() string {
	return fmt.Sprintf("(%d,%d)", pt.x, pt.y)
}

func TestRangeStringer(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	RangeStringer(p, slices.Values([]point{{1, 2}, {3, 4}}))
	require.Equal(t, "{ (1,2) (3,4) }", buf.String())

	buf.Reset()
	RangeStringer(p, slices.Values([]point(nil)))
	require.Equal(t, "{}", buf.String())
}

func TestContainerStringer(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	ContainerStringer(p, []point{{0, 0}}, "origin")
	require.Equal(t, "origin size = 1\n{ (0,0) }", buf.String())

	buf.Reset()
	ContainerStringer(p, []point(nil), "")
	require.Equal(t, "size = 0\n{}", buf.String())
}

func TestVecStringer(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	VecStringer(p, []*point{{1, 2}, {3, 4}}, "pts")
	require.Equal(t, "pts = { (1,2) (3,4) }\n", buf.String())

	buf.Reset()
	VecStringer(p, []*point(nil), "")
	require.Equal(t, "{ }\n", buf.String())
}

func TestSequenceOpsDisabled(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	Range(p, slices.Values([]int{1}))
	Container(p, []int{1}, "c")
	RangeStringer(p, slices.Values([]point{{1, 1}}))
	ContainerStringer(p, []point{{1, 1}}, "c")
	VecStringer(p, []point{{1, 1}}, "c")
	Mapping(p, []int{1}, "m")
	Slice(p, []int{1}, 0, 1)

	require.Zero(t, buf.Len())
}
