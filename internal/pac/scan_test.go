package pac

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salchaD-27/pac-check/internal/finding"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))

	files := map[string]string{
		filepath.Join(dir, "good.pac"):  `function FindProxyForURL(url, host) { return "DIRECT"; }`,
		filepath.Join(sub, "bad.js"):    `function FindProxyForURL(url, host) { return "DIRECT";`,
		filepath.Join(dir, "blank.txt"): "  \n",
		filepath.Join(dir, "notes.md"):  "not a pac file",
	}
	for path, content := range files {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	findings, err := Scan(dir, NewChecker())
	require.NoError(t, err)

	byFile := map[string][]finding.Finding{}
	for _, f := range findings {
		byFile[f.File] = append(byFile[f.File], f)
	}

	assert.NotContains(t, byFile, filepath.Join(dir, "notes.md"))

	good := byFile[filepath.Join(dir, "good.pac")]
	require.NotEmpty(t, good)
	for _, f := range good {
		assert.Equal(t, finding.Info, f.Severity)
	}

	var badErrors []string
	for _, f := range byFile[filepath.Join(sub, "bad.js")] {
		if f.Severity == finding.Error {
			badErrors = append(badErrors, f.Message)
		}
	}
	assert.Equal(t, []string{"Missing 1 closing brace(s)"}, badErrors)

	blank := byFile[filepath.Join(dir, "blank.txt")]
	require.Len(t, blank, 1)
	assert.Equal(t, finding.Warning, blank[0].Severity)
	assert.Equal(t, "Empty file, nothing to validate", blank[0].Message)
}

func TestScanMissingPath(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"), NewChecker())
	assert.Error(t, err)
}
