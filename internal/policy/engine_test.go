package policy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixturelab/scanfix/internal/harness"
)

func sampleResults() *harness.Results {
	return &harness.Results{
		TotalModules:  3,
		ModulesTested: 3,
		ModulesLoaded: 3,
		TestDetails: map[string]*harness.ModuleResult{
			"apache_2_0": {
				ModulePath:       "fixtures/data/apacheutils",
				ExpectedLicenses: []string{"Apache-2.0"},
				LicenseType:      harness.TypePermissive,
				LoadSuccessful:   true,
			},
			"agpl_v3": {
				ModulePath:       "fixtures/data/agpldb",
				ExpectedLicenses: []string{"AGPL-3.0"},
				LicenseType:      harness.TypeCopyleft,
				LoadSuccessful:   true,
			},
			"proprietary": {
				ModulePath:       "fixtures/scraper/proprietarytools",
				ExpectedLicenses: []string{"Proprietary", "Commercial"},
				LicenseType:      harness.TypeProprietary,
				LoadSuccessful:   true,
			},
		},
	}
}

func TestEvaluateDefaultPolicy(t *testing.T) {
	engine := NewOPAEngine()
	require.NoError(t, engine.LoadPolicyBytes([]byte(DefaultPolicy)))

	denials, err := engine.Evaluate(context.Background(), BuildInput(sampleResults()))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Fixture agpl_v3 has forbidden license type: copyleft",
		"Fixture proprietary has forbidden license type: proprietary",
	}, denials)
}

func TestEvaluateForbiddenLicenses(t *testing.T) {
	engine := NewOPAEngine()
	require.NoError(t, engine.LoadPolicyBytes([]byte(`version: v1
licenses:
  forbidden:
    - AGPL-3.0
    - Commercial
`)))

	denials, err := engine.Evaluate(context.Background(), BuildInput(sampleResults()))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Fixture agpl_v3 carries forbidden license: AGPL-3.0",
		"Fixture proprietary carries forbidden license: Commercial",
	}, denials)
}

func TestEvaluateNoDenials(t *testing.T) {
	engine := NewOPAEngine()
	require.NoError(t, engine.LoadPolicyBytes([]byte(`version: v1
licenses:
  forbidden:
    - WTFPL
`)))

	denials, err := engine.Evaluate(context.Background(), BuildInput(sampleResults()))
	require.NoError(t, err)
	assert.Empty(t, denials)
}

func TestEvaluateWithoutPolicyFails(t *testing.T) {
	engine := NewOPAEngine()
	_, err := engine.Evaluate(context.Background(), BuildInput(sampleResults()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no policy loaded")
}

func TestLoadPolicyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(DefaultPolicy), 0o644))

	engine := NewOPAEngine()
	require.NoError(t, engine.LoadPolicy(path))

	denials, err := engine.Evaluate(context.Background(), BuildInput(sampleResults()))
	require.NoError(t, err)
	assert.NotEmpty(t, denials)
}

func TestLoadPolicyRejectsTraversal(t *testing.T) {
	engine := NewOPAEngine()
	err := engine.LoadPolicy("../../../etc/passwd.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "traversal")
}

func TestLoadPolicyMissingFile(t *testing.T) {
	engine := NewOPAEngine()
	err := engine.LoadPolicy(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadPolicyBytesRejectsInvalidYAML(t *testing.T) {
	engine := NewOPAEngine()
	err := engine.LoadPolicyBytes([]byte("licenses: [unclosed"))
	require.Error(t, err)
}

func TestBuildInputIsSortedByFixtureName(t *testing.T) {
	input := BuildInput(sampleResults())
	fixtures, ok := input["fixtures"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, fixtures, 3)

	assert.Equal(t, "agpl_v3", fixtures[0]["name"])
	assert.Equal(t, "apache_2_0", fixtures[1]["name"])
	assert.Equal(t, "proprietary", fixtures[2]["name"])
	assert.Equal(t, "copyleft", fixtures[0]["license_type"])
	assert.Equal(t, true, fixtures[0]["load_successful"])
}

func TestTranspileEmptyPolicyProducesNoRules(t *testing.T) {
	code, err := transpileYAMLToRego([]byte("version: v1\n"))
	require.NoError(t, err)
	assert.Contains(t, code, "package scanfix.licenses")
	assert.NotContains(t, code, "deny contains")
}

func TestFormatRegoArray(t *testing.T) {
	out := formatRegoArray([]interface{}{"GPL-3.0", "MIT"})
	assert.Equal(t, `["GPL-3.0", "MIT"]`, out)
}
