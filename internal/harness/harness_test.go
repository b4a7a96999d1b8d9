package harness

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScripts runs every golden script under testdata.
func TestScripts(t *testing.T) {
	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok, "get current file path")

	testdataDir := filepath.Join(filepath.Dir(filename), "testdata")

	files := DiscoverScriptFiles(t, testdataDir)
	require.NotEmpty(t, files, "no script files found")

	for _, file := range files {
		sf := LoadScriptFile(t, file)
		for _, script := range sf.Scripts {
			t.Run(filepath.Base(file)+"/"+script.Name, func(t *testing.T) {
				t.Parallel()
				Run(t, script)
			})
		}
	}
}

func TestApplyRejectsUnknownOp(t *testing.T) {
	err := apply(nil, Step{Op: "frobnicate"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "frobnicate")
}

func TestApplyRejectsBadArity(t *testing.T) {
	err := apply(nil, Step{Op: "eqln", Args: []any{1}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "eqln")
}
