package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v3"

	"github.com/stretchr/testify/require"
)

// LoadScriptFile loads a single YAML script file.
func LoadScriptFile(t *testing.T, path string) *ScriptFile {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	sf := &ScriptFile{}
	require.NoError(t, yaml.Unmarshal(data, sf), "parse %s", path)
	require.NotEmpty(t, sf.Scripts, "%s defines no scripts", path)
	return sf
}

// DiscoverScriptFiles returns the YAML script files under root, sorted by
// filename.
func DiscoverScriptFiles(t *testing.T, root string) []string {
	t.Helper()

	entries, err := os.ReadDir(root)
	require.NoError(t, err)

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		files = append(files, filepath.Join(root, entry.Name()))
	}
	return files
}
