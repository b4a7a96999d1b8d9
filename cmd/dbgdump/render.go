package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/715d/dbgprint/pkg/dbg"
)

// render walks a decoded YAML document and prints it through the dbg helpers.
// Mapping keys are sorted so output is stable across runs.
func render(p *dbg.Printer, label string, node any, asMapping bool) {
	switch v := node.(type) {
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(v)) {
			render(p, joinLabel(label, k), v[k], asMapping)
		}
	case []any:
		if scalarsOnly(v) {
			if asMapping {
				dbg.Mapping(p, v, label)
			} else {
				dbg.Container(p, v, label)
			}
			return
		}
		for i, e := range v {
			render(p, fmt.Sprintf("%s[%d]", label, i), e, asMapping)
		}
	default:
		if label == "" {
			p.Println(v)
			return
		}
		p.Eqln(label, v)
	}
}

// joinLabel extends a dotted key path.
func joinLabel(label, key string) string {
	if label == "" {
		return key
	}
	return label + "." + key
}

// scalarsOnly reports whether a sequence holds no nested collections.
func scalarsOnly(v []any) bool {
	for _, e := range v {
		switch e.(type) {
		case map[string]any, []any:
			return false
		}
	}
	return true
}
