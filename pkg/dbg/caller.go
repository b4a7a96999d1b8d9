package dbg

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"
)

// funcNames caches the short name for each caller PC. FuncName and
// FuncBanner tend to sit at the top of hot, repeatedly entered functions,
// and runtime.FuncForPC lookups are comparatively expensive.
var funcNames = xsync.NewMap[uintptr, string]()

// FuncName writes the bare name of the calling function followed by a
// newline.
func (p *Printer) FuncName() {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "%s\n", callerName(2))
}

// FuncBanner writes a separator line containing the calling function's name.
func (p *Printer) FuncBanner() {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "===== %s ======\n", callerName(2))
}

// callerName resolves the function name skip frames above this call.
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	if name, ok := funcNames.Load(pc); ok {
		return name
	}
	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = shortFuncName(fn.Name())
	}
	funcNames.Store(pc, name)
	return name
}

// shortFuncName reduces a fully qualified symbol such as
// "github.com/715d/dbgprint/pkg/dbg.(*Printer).FuncName" to "FuncName".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
