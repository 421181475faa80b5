package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixturelab/scanfix/internal/harness"
)

func writeResultsFile(t *testing.T) string {
	t.Helper()
	results := harness.NewRunner(filepath.Join("..", "fixtures")).Run()
	data, err := harness.MarshalResults(results)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestPolicyDefaultDeniesCopyleftFixtures(t *testing.T) {
	path := writeResultsFile(t)

	out, err := executeCommand(t, "policy", path)
	require.NoError(t, err, "denials alone do not fail the command")

	assert.Contains(t, out, "policy denials:")
	assert.Contains(t, out, "Fixture agpl_v3 has forbidden license type: copyleft")
	assert.Contains(t, out, "Fixture license_violations has forbidden license type: violation")
}

func TestPolicyFailOnAny(t *testing.T) {
	path := writeResultsFile(t)

	_, err := executeCommand(t, "policy", path, "--fail-on", "any")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "policy denied")
}

func TestPolicyCustomFile(t *testing.T) {
	resultsPath := writeResultsFile(t)
	policyPath := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(policyPath, []byte(`version: v1
licenses:
  forbidden:
    - WTFPL
`), 0o644))

	out, err := executeCommand(t, "policy", resultsPath, "--policy", policyPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No policy denials")
}

func TestPolicyMissingResultsFile(t *testing.T) {
	_, err := executeCommand(t, "policy", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run 'scanfix scan' first")
}
