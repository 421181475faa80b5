package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "scanfix dev")
	assert.NotContains(t, out, "platform:")
}

func TestVersionCommandExtended(t *testing.T) {
	out, err := executeCommand(t, "version", "--extended")
	require.NoError(t, err)
	assert.Contains(t, out, "scanfix dev")
	assert.Contains(t, out, "go: go1.")
	assert.Contains(t, out, "platform: ")
}

func TestRootVersionFlag(t *testing.T) {
	out, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "scanfix dev")
}

func TestRootHelpGroupsCommands(t *testing.T) {
	out, err := executeCommand(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "Scan Commands:")
	assert.Contains(t, out, "Support Commands:")
	for _, name := range []string{"scan", "verify", "policy", "deps", "registry", "version"} {
		assert.Contains(t, out, name)
	}
}
