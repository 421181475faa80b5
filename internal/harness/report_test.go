package harness

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReportIsDeterministic(t *testing.T) {
	first, err := GenerateReport()
	require.NoError(t, err)
	second, err := GenerateReport()
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("report output differs between renders:\n%s", diff)
	}
}

func TestGenerateReportStructure(t *testing.T) {
	report, err := GenerateReport()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(report, "# SCANOSS License Detection Test Report"))
	assert.Contains(t, report, "## License Categories Tested")
	assert.Contains(t, report, "## Package-by-Package License Summary")
	assert.Contains(t, report, "**WARNING**: This is a test repository only. Do not use in production!")
}

func TestGenerateReportListsEveryFixture(t *testing.T) {
	report, err := GenerateReport()
	require.NoError(t, err)

	for _, f := range Registry() {
		assert.Contains(t, report, "fixtures/"+f.Path, "fixture %s missing from report", f.Name)
	}
}

func TestGenerateReportSummaryTableRows(t *testing.T) {
	report, err := GenerateReport()
	require.NoError(t, err)

	assert.Contains(t, report, "| fixtures/data/apacheutils | Apache-2.0 | None | Low |")
	assert.Contains(t, report, "| fixtures/data/agpldb | AGPL-3.0 | None | **HIGH** |")
	assert.Contains(t, report, "| fixtures/violations/licenseviolations | GPL-3.0 | Proprietary | **CRITICAL** |")
	assert.Contains(t, report, "| fixtures/security/duallicensecrypto | GPL-3.0 | Commercial | **HIGH** |")
}

func TestGenerateReportViolationsSection(t *testing.T) {
	report, err := GenerateReport()
	require.NoError(t, err)

	// Copyleft and violation fixtures land in the expected-violations list.
	for _, f := range Registry() {
		if f.LicenseType != TypeCopyleft && f.LicenseType != TypeViolation {
			continue
		}
		assert.Contains(t, report,
			"- fixtures/"+f.Path+" ("+f.ExpectedLicenses[0]+")",
			"fixture %s missing from violations list", f.Name)
	}
}

func TestRiskLevel(t *testing.T) {
	assert.Equal(t, "Low", riskLevel(TypePermissive))
	assert.Equal(t, "Medium", riskLevel(TypeWeakCopyleft))
	assert.Equal(t, "Medium", riskLevel(TypeInternational))
	assert.Equal(t, "**HIGH**", riskLevel(TypeCopyleft))
	assert.Equal(t, "**HIGH**", riskLevel(TypeDual))
	assert.Equal(t, "**CRITICAL**", riskLevel(TypeMixed))
	assert.Equal(t, "**CRITICAL**", riskLevel(TypeViolation))
}
