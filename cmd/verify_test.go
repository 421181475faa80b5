package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyRepositoryCorpus(t *testing.T) {
	out, err := executeCommand(t, "verify", "..")
	require.NoError(t, err)
	assert.Contains(t, out, "All fixture files carry at least one license indicator")
}

func TestVerifyReportsBareFiles(t *testing.T) {
	target := t.TempDir()
	dir := filepath.Join(target, "fixtures", "data", "bare")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bare.go"),
		[]byte("package bare\n"), 0o644))

	out, err := executeCommand(t, "verify", target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 bare fixture files found")
	assert.Contains(t, out, "bare.go")
}

func TestVerifyAllowBare(t *testing.T) {
	target := t.TempDir()
	dir := filepath.Join(target, "fixtures", "data", "bare")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bare.go"),
		[]byte("package bare\n"), 0o644))

	_, err := executeCommand(t, "verify", target, "--allow-bare")
	require.NoError(t, err)
}

func TestVerifyEmptyCorpus(t *testing.T) {
	out, err := executeCommand(t, "verify", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Checked 0 fixture source files")
}
