package harness

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalResultsFormat(t *testing.T) {
	results := NewRunner(filepath.Join("..", "..", "fixtures")).Run()

	data, err := MarshalResults(results)
	require.NoError(t, err)

	assert.True(t, bytes.HasSuffix(data, []byte("\n")), "results JSON must end with a newline")
	assert.True(t, strings.Contains(string(data), "\n  \"total_modules\""), "results JSON must use 2-space indentation")

	var roundTrip Results
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.Equal(t, results.TotalModules, roundTrip.TotalModules)
	assert.Equal(t, results.LicenseTypesFound, roundTrip.LicenseTypesFound)
}

func TestMarshalResultsIsIdempotent(t *testing.T) {
	runner := NewRunner(filepath.Join("..", "..", "fixtures"))

	first, err := MarshalResults(runner.Run())
	require.NoError(t, err)
	second, err := MarshalResults(runner.Run())
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "repeated runs must serialize byte-for-byte identically")
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	results := NewRunner(filepath.Join("..", "..", "fixtures")).Run()

	artifacts, err := WriteArtifacts(results, dir, "license_test_results.json", "SCANOSS_LICENSE_TEST_REPORT.md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "license_test_results.json"), artifacts.ResultsPath)
	assert.Equal(t, filepath.Join(dir, "SCANOSS_LICENSE_TEST_REPORT.md"), artifacts.ReportPath)

	resultsData, err := os.ReadFile(artifacts.ResultsPath)
	require.NoError(t, err)
	require.NoError(t, ValidateResultsJSON(resultsData))

	reportData, err := os.ReadFile(artifacts.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(reportData), "# SCANOSS License Detection Test Report")
}

func TestWriteArtifactsOverwritesIdentically(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(filepath.Join("..", "..", "fixtures"))

	_, err := WriteArtifacts(runner.Run(), dir, "results.json", "report.md")
	require.NoError(t, err)
	firstResults, err := os.ReadFile(filepath.Join(dir, "results.json"))
	require.NoError(t, err)
	firstReport, err := os.ReadFile(filepath.Join(dir, "report.md"))
	require.NoError(t, err)

	_, err = WriteArtifacts(runner.Run(), dir, "results.json", "report.md")
	require.NoError(t, err)
	secondResults, err := os.ReadFile(filepath.Join(dir, "results.json"))
	require.NoError(t, err)
	secondReport, err := os.ReadFile(filepath.Join(dir, "report.md"))
	require.NoError(t, err)

	assert.True(t, bytes.Equal(firstResults, secondResults))
	assert.True(t, bytes.Equal(firstReport, secondReport))
}

func TestWriteArtifactsLeavesNothingBehindOnFailure(t *testing.T) {
	dir := t.TempDir()

	// A zero-value Results serializes test_details as null, which the
	// schema rejects, so the failure fires before any file is written.
	_, err := WriteArtifacts(&Results{}, dir, "results.json", "report.md")
	require.Error(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "results.json"))
	assert.NoFileExists(t, filepath.Join(dir, "report.md"))
}

func TestValidateResultsJSONRejectsBadPayloads(t *testing.T) {
	assert.Error(t, ValidateResultsJSON([]byte(`{}`)), "missing required fields")
	assert.Error(t, ValidateResultsJSON([]byte(`{
		"total_modules": -1,
		"modules_tested": 0,
		"modules_loaded": 0,
		"license_types_found": [],
		"test_details": {},
		"summary": {
			"module_load_success_rate": 0,
			"total_unique_licenses": 0,
			"license_categories": {},
			"test_coverage": {
				"copyleft_licenses": false,
				"permissive_licenses": false,
				"proprietary_licenses": false,
				"creative_commons": false
			},
			"scanoss_detection_targets": []
		}
	}`)), "negative module count")
}
