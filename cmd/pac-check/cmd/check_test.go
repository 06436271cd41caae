package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salchaD-27/pac-check/internal/pac"
)

func TestCheckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxy.pac")
	content := `function FindProxyForURL(url, host) { return "DIRECT"; }`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	report, status := checkFile(pac.NewChecker(), path)

	assert.Equal(t, "VALID", status)
	assert.Contains(t, report, "📁 File: proxy.pac")
	assert.Contains(t, report, "📊 Size: 56 characters, 1 lines")
	assert.Contains(t, report, "✅ PAC file syntax appears valid!")
}

func TestCheckFileReadFailure(t *testing.T) {
	report, status := checkFile(pac.NewChecker(), filepath.Join(t.TempDir(), "missing.pac"))

	assert.Equal(t, "ERROR", status)
	assert.Contains(t, report, "❌ Error reading file:")
}
