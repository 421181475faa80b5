package harness

import (
	"fmt"
	"strings"

	"github.com/aymerick/raymond"
)

// reportTemplate is the Markdown report skeleton. It is rendered from the
// immutable registry only, never from scan results, so repeated runs emit
// byte-identical output.
const reportTemplate = `# SCANOSS License Detection Test Report

## Overview
This report documents the intentional license diversity in this test repository
for comprehensive SCANOSS license detection testing.

## License Categories Tested

### Copyleft Licenses (Should Trigger Violations)
{{#each copyleft}}
- **{{license}}**: {{path}}
{{/each}}

### Permissive Licenses
{{#each permissive}}
- **{{license}}**: {{path}}
{{/each}}

### Weak Copyleft Licenses
{{#each weakCopyleft}}
- **{{license}}**: {{path}}
{{/each}}

### Creative Commons Licenses
{{#each creativeCommons}}
- **{{license}}**: {{path}}
{{/each}}

### Proprietary Licenses
{{#each proprietary}}
- **{{license}}**: {{path}}
{{/each}}

### Mixed License Testing
{{#each mixed}}
- **{{license}}**: {{path}}
{{/each}}

## Expected SCANOSS Behavior

### Policy Violations (copyleft detection)
The following packages should trigger SCANOSS policy violations:
{{#each violations}}
- {{path}} ({{license}})
{{/each}}

### License Compatibility Issues
- Mixed license conflicts in fixtures/mixed
- Proprietary vs. open source conflicts

### CI Integration
- PR submissions should fail CI due to copyleft detection
- SARIF output should detail all license findings
- Policy halt-on-failure should stop the build

## Testing Recommendations

1. **Submit PR**: Create PR to trigger license scanning
2. **Verify Detection**: Confirm all copyleft licenses are detected
3. **Check SARIF Output**: Review detailed license findings
4. **Validate Policy Enforcement**: Ensure CI fails appropriately
5. **Test Manual Scanning**: Use the SCANOSS CLI for local testing

## Package-by-Package License Summary

| Package | Primary License | Secondary Licenses | Risk Level |
|---------|----------------|--------------------|------------|
{{#each rows}}
| {{path}} | {{primary}} | {{secondary}} | {{risk}} |
{{/each}}

## Notes for SCANOSS Testing

- This repository is designed to test comprehensive license detection
- Multiple copyleft licenses should trigger policy violations
- Mixed license conflicts demonstrate complex scenarios
- Proprietary headers simulate enterprise scanning scenarios
- Creative Commons variants test documentation scanning

**WARNING**: This is a test repository only. Do not use in production!
`

// GenerateReport renders the static Markdown report from the fixture
// registry. The output is independent of any scan run by design; the scan
// results live in the JSON artifact instead.
func GenerateReport() (string, error) {
	registry := Registry()

	sections := map[LicenseType]string{
		TypeCopyleft:        "copyleft",
		TypePermissive:      "permissive",
		TypeWeakCopyleft:    "weakCopyleft",
		TypeCreativeCommons: "creativeCommons",
		TypeProprietary:     "proprietary",
	}

	ctx := map[string]interface{}{
		"copyleft":        []map[string]string{},
		"permissive":      []map[string]string{},
		"weakCopyleft":    []map[string]string{},
		"creativeCommons": []map[string]string{},
		"proprietary":     []map[string]string{},
		"mixed":           []map[string]string{},
		"violations":      []map[string]string{},
		"rows":            []map[string]string{},
	}

	appendEntry := func(key string, entry map[string]string) {
		ctx[key] = append(ctx[key].([]map[string]string), entry)
	}

	for _, f := range registry {
		path := "fixtures/" + f.Path
		primary := f.ExpectedLicenses[0]

		section, ok := sections[f.LicenseType]
		if !ok {
			section = "mixed"
		}
		appendEntry(section, map[string]string{
			"license": strings.Join(f.ExpectedLicenses, ", "),
			"path":    path,
		})

		if f.LicenseType == TypeCopyleft || f.LicenseType == TypeViolation {
			appendEntry("violations", map[string]string{
				"license": primary,
				"path":    path,
			})
		}

		secondary := "None"
		if len(f.ExpectedLicenses) > 1 {
			secondary = strings.Join(f.ExpectedLicenses[1:], ", ")
		}
		appendEntry("rows", map[string]string{
			"path":      path,
			"primary":   primary,
			"secondary": secondary,
			"risk":      riskLevel(f.LicenseType),
		})
	}

	out, err := raymond.Render(reportTemplate, ctx)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}

// riskLevel maps a fixture's license family to the scanner-facing risk
// label used in the summary table.
func riskLevel(t LicenseType) string {
	switch t {
	case TypeCopyleft, TypeProprietary, TypeDual:
		return "**HIGH**"
	case TypeViolation, TypeMixed:
		return "**CRITICAL**"
	case TypeWeakCopyleft, TypeCreativeCommons, TypeInternational:
		return "Medium"
	default:
		return "Low"
	}
}
