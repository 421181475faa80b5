package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepsRequiresGoModule(t *testing.T) {
	_, err := executeCommand(t, "deps", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no go.mod")
}
