package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salchaD-27/pac-check/internal/finding"
	"github.com/salchaD-27/pac-check/internal/pac"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.pac", `function FindProxyForURL(url, host) { return "DIRECT"; }`)
	writeFile(t, dir, "bad.pac", `function chooseProxy(u, h) { return "DIRECT"; }`)
	writeFile(t, dir, "blank.pac", "   \n")
	writeFile(t, dir, "suite.yaml", `
checks:
  - file: good.pac
    expect: VALID
  - file: bad.pac
    expect: invalid
  - file: blank.pac
    expect: EMPTY
  - file: good.pac
    expect: INVALID
  - file: missing.pac
    expect: VALID
  - file: good.pac
    expect: MAYBE
`)

	findings, err := Run(filepath.Join(dir, "suite.yaml"), pac.NewChecker())
	require.NoError(t, err)
	require.Len(t, findings, 6)

	// lowercase expectation tokens are accepted
	assert.Equal(t, finding.Info, findings[0].Severity)
	assert.Equal(t, finding.Info, findings[1].Severity)
	assert.Equal(t, finding.Info, findings[2].Severity)

	assert.Equal(t, finding.Error, findings[3].Severity)
	assert.Contains(t, findings[3].Message, "Expected status INVALID, got VALID")

	assert.Equal(t, finding.Error, findings[4].Severity)
	assert.Contains(t, findings[4].Message, "Failed to read file")

	assert.Equal(t, finding.Error, findings[5].Severity)
	assert.Contains(t, findings[5].Message, "Unknown expected status 'MAYBE'")
}

func TestRunFindingsCarryManifestPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.pac", `function FindProxyForURL(url, host) { return "DIRECT"; }`)
	writeFile(t, dir, "suite.yaml", "checks:\n  - file: good.pac\n    expect: VALID\n")

	findings, err := Run(filepath.Join(dir, "suite.yaml"), pac.NewChecker())
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "good.pac", findings[0].File)
}

func TestRunManifestErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Run(filepath.Join(dir, "nope.yaml"), pac.NewChecker())
	assert.Error(t, err)

	writeFile(t, dir, "broken.yaml", "checks: [not, a, mapping")
	_, err = Run(filepath.Join(dir, "broken.yaml"), pac.NewChecker())
	assert.Error(t, err)

	writeFile(t, dir, "empty.yaml", "checks: []\n")
	_, err = Run(filepath.Join(dir, "empty.yaml"), pac.NewChecker())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares no checks")
}
