// Package policy evaluates license policies against fixture scan results.
// Policies are written as simple YAML (forbidden license identifiers and
// license-type families) and transpiled to Rego for evaluation by the
// embedded OPA engine.
package policy

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/open-policy-agent/opa/v1/rego"
	"gopkg.in/yaml.v3"

	"github.com/fixturelab/scanfix/internal/harness"
)

const denyQuery = "data.scanfix.licenses.deny"

// Engine defines the policy engine interface
type Engine interface {
	Evaluate(ctx context.Context, input interface{}) ([]string, error)
	LoadPolicy(source string) error
	LoadPolicyBytes(data []byte) error
}

// OPAEngine evaluates transpiled policies with embedded OPA
type OPAEngine struct {
	regoCode string
}

// NewOPAEngine creates a new engine with no policy loaded
func NewOPAEngine() Engine {
	return &OPAEngine{}
}

// Evaluate runs the deny query against the input and returns the denial
// messages, sorted for stable output.
func (e *OPAEngine) Evaluate(ctx context.Context, input interface{}) ([]string, error) {
	if e.regoCode == "" {
		return nil, fmt.Errorf("no policy loaded")
	}

	rs, err := rego.New(
		rego.Query(denyQuery),
		rego.Input(input),
		rego.Module("policy.rego", e.regoCode),
	).Eval(ctx)
	if err != nil {
		return nil, err
	}

	var denials []string
	for _, result := range rs {
		for _, expr := range result.Expressions {
			values, ok := expr.Value.([]interface{})
			if !ok {
				continue
			}
			for _, v := range values {
				if msg, ok := v.(string); ok {
					denials = append(denials, msg)
				}
			}
		}
	}
	sort.Strings(denials)
	return denials, nil
}

// LoadPolicy reads and transpiles a YAML policy file.
func (e *OPAEngine) LoadPolicy(source string) error {
	cleanPath := filepath.Clean(source)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("invalid path: directory traversal detected")
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to read policy file: %w", err)
	}
	return e.LoadPolicyBytes(data)
}

// LoadPolicyBytes transpiles an in-memory YAML policy.
func (e *OPAEngine) LoadPolicyBytes(data []byte) error {
	code, err := transpileYAMLToRego(data)
	if err != nil {
		return err
	}
	e.regoCode = code
	return nil
}

// BuildInput converts scan results into the document the deny rules
// evaluate: one object per fixture with its registry metadata.
func BuildInput(results *harness.Results) map[string]interface{} {
	names := make([]string, 0, len(results.TestDetails))
	for name := range results.TestDetails {
		names = append(names, name)
	}
	sort.Strings(names)

	fixtures := make([]map[string]interface{}, 0, len(names))
	for _, name := range names {
		detail := results.TestDetails[name]
		fixtures = append(fixtures, map[string]interface{}{
			"name":              name,
			"module_path":       detail.ModulePath,
			"expected_licenses": detail.ExpectedLicenses,
			"license_type":      string(detail.LicenseType),
			"load_successful":   detail.LoadSuccessful,
		})
	}
	return map[string]interface{}{"fixtures": fixtures}
}

// transpileYAMLToRego converts a simple YAML policy into Rego deny rules.
// Supported sections: licenses.forbidden (identifier match) and
// license_types.forbidden (family match).
func transpileYAMLToRego(yamlData []byte) (string, error) {
	var policy map[string]interface{}
	if err := yaml.Unmarshal(yamlData, &policy); err != nil {
		return "", fmt.Errorf("failed to parse policy YAML: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("package scanfix.licenses\n\n")

	if licenses, ok := policy["licenses"].(map[string]interface{}); ok {
		if forbidden, ok := licenses["forbidden"].([]interface{}); ok && len(forbidden) > 0 {
			buf.WriteString("deny contains msg if {\n")
			buf.WriteString("  fixture := input.fixtures[_]\n")
			buf.WriteString("  forbidden := ")
			buf.WriteString(formatRegoArray(forbidden))
			buf.WriteString("\n")
			buf.WriteString("  lic := fixture.expected_licenses[_]\n")
			buf.WriteString("  forbidden[_] == lic\n")
			buf.WriteString("  msg := sprintf(\"Fixture %s carries forbidden license: %s\", [fixture.name, lic])\n")
			buf.WriteString("}\n\n")
		}
	}

	if types, ok := policy["license_types"].(map[string]interface{}); ok {
		if forbidden, ok := types["forbidden"].([]interface{}); ok && len(forbidden) > 0 {
			buf.WriteString("deny contains msg if {\n")
			buf.WriteString("  fixture := input.fixtures[_]\n")
			buf.WriteString("  forbidden := ")
			buf.WriteString(formatRegoArray(forbidden))
			buf.WriteString("\n")
			buf.WriteString("  forbidden[_] == fixture.license_type\n")
			buf.WriteString("  msg := sprintf(\"Fixture %s has forbidden license type: %s\", [fixture.name, fixture.license_type])\n")
			buf.WriteString("}\n\n")
		}
	}

	return buf.String(), nil
}

// formatRegoArray converts a []interface{} to a properly quoted Rego array,
// e.g. [GPL-3.0, MIT] -> ["GPL-3.0", "MIT"]
func formatRegoArray(arr []interface{}) string {
	parts := make([]string, 0, len(arr))
	for _, item := range arr {
		parts = append(parts, fmt.Sprintf("%q", fmt.Sprintf("%v", item)))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DefaultPolicy is the built-in policy used when no policy file exists:
// copyleft and proprietary fixtures are expected to be flagged.
const DefaultPolicy = `version: v1
license_types:
  forbidden:
    - copyleft
    - proprietary
    - violation
`
